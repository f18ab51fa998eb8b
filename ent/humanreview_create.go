// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/humanreview"
)

// HumanReviewCreate is the builder for creating a HumanReview entity.
type HumanReviewCreate struct {
	config
	mutation *HumanReviewMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *HumanReviewCreate) SetCaseID(v string) *HumanReviewCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *HumanReviewCreate) SetStage(v string) *HumanReviewCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *HumanReviewCreate) SetConfidence(v float64) *HumanReviewCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *HumanReviewCreate) SetMessage(v map[string]interface{}) *HumanReviewCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetReviewStatus sets the "review_status" field.
func (_c *HumanReviewCreate) SetReviewStatus(v humanreview.ReviewStatus) *HumanReviewCreate {
	_c.mutation.SetReviewStatus(v)
	return _c
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_c *HumanReviewCreate) SetNillableReviewStatus(v *humanreview.ReviewStatus) *HumanReviewCreate {
	if v != nil {
		_c.SetReviewStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HumanReviewCreate) SetCreatedAt(v time.Time) *HumanReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HumanReviewCreate) SetNillableCreatedAt(v *time.Time) *HumanReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *HumanReviewCreate) SetResolvedAt(v time.Time) *HumanReviewCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *HumanReviewCreate) SetNillableResolvedAt(v *time.Time) *HumanReviewCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HumanReviewCreate) SetID(v string) *HumanReviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the HumanReviewMutation object of the builder.
func (_c *HumanReviewCreate) Mutation() *HumanReviewMutation {
	return _c.mutation
}

// Save creates the HumanReview in the database.
func (_c *HumanReviewCreate) Save(ctx context.Context) (*HumanReview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HumanReviewCreate) SaveX(ctx context.Context) *HumanReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HumanReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HumanReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HumanReviewCreate) defaults() {
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		v := humanreview.DefaultReviewStatus
		_c.mutation.SetReviewStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := humanreview.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HumanReviewCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "HumanReview.case_id"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "HumanReview.stage"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "HumanReview.confidence"`)}
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		return &ValidationError{Name: "review_status", err: errors.New(`ent: missing required field "HumanReview.review_status"`)}
	}
	if v, ok := _c.mutation.ReviewStatus(); ok {
		if err := humanreview.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "HumanReview.review_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HumanReview.created_at"`)}
	}
	return nil
}

func (_c *HumanReviewCreate) sqlSave(ctx context.Context) (*HumanReview, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected HumanReview.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HumanReviewCreate) createSpec() (*HumanReview, *sqlgraph.CreateSpec) {
	var (
		_node = &HumanReview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(humanreview.Table, sqlgraph.NewFieldSpec(humanreview.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CaseID(); ok {
		_spec.SetField(humanreview.FieldCaseID, field.TypeString, value)
		_node.CaseID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(humanreview.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(humanreview.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(humanreview.FieldMessage, field.TypeJSON, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.ReviewStatus(); ok {
		_spec.SetField(humanreview.FieldReviewStatus, field.TypeEnum, value)
		_node.ReviewStatus = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(humanreview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(humanreview.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// HumanReviewCreateBulk is the builder for creating many HumanReview entities in bulk.
type HumanReviewCreateBulk struct {
	config
	err      error
	builders []*HumanReviewCreate
}

// Save creates the HumanReview entities in the database.
func (_c *HumanReviewCreateBulk) Save(ctx context.Context) ([]*HumanReview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HumanReview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HumanReviewMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *HumanReviewCreateBulk) SaveX(ctx context.Context) []*HumanReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HumanReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HumanReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

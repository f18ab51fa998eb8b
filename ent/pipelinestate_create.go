// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/pipelinestate"
)

// PipelineStateCreate is the builder for creating a PipelineState entity.
type PipelineStateCreate struct {
	config
	mutation *PipelineStateMutation
	hooks    []Hook
}

// SetCurrentStage sets the "current_stage" field.
func (_c *PipelineStateCreate) SetCurrentStage(v string) *PipelineStateCreate {
	_c.mutation.SetCurrentStage(v)
	return _c
}

// SetNextStage sets the "next_stage" field.
func (_c *PipelineStateCreate) SetNextStage(v string) *PipelineStateCreate {
	_c.mutation.SetNextStage(v)
	return _c
}

// SetNillableNextStage sets the "next_stage" field if the given value is not nil.
func (_c *PipelineStateCreate) SetNillableNextStage(v *string) *PipelineStateCreate {
	if v != nil {
		_c.SetNextStage(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *PipelineStateCreate) SetConfidence(v float64) *PipelineStateCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineStateCreate) SetCreatedAt(v time.Time) *PipelineStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineStateCreate) SetNillableCreatedAt(v *time.Time) *PipelineStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PipelineStateCreate) SetUpdatedAt(v time.Time) *PipelineStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PipelineStateCreate) SetNillableUpdatedAt(v *time.Time) *PipelineStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineStateCreate) SetID(v string) *PipelineStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PipelineStateMutation object of the builder.
func (_c *PipelineStateCreate) Mutation() *PipelineStateMutation {
	return _c.mutation
}

// Save creates the PipelineState in the database.
func (_c *PipelineStateCreate) Save(ctx context.Context) (*PipelineState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineStateCreate) SaveX(ctx context.Context) *PipelineState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineStateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinestate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pipelinestate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineStateCreate) check() error {
	if _, ok := _c.mutation.CurrentStage(); !ok {
		return &ValidationError{Name: "current_stage", err: errors.New(`ent: missing required field "PipelineState.current_stage"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "PipelineState.confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PipelineState.updated_at"`)}
	}
	return nil
}

func (_c *PipelineStateCreate) sqlSave(ctx context.Context) (*PipelineState, error) {
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
			return nil, fmt.Errorf("unexpected PipelineState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineStateCreate) createSpec() (*PipelineState, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinestate.Table, sqlgraph.NewFieldSpec(pipelinestate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CurrentStage(); ok {
		_spec.SetField(pipelinestate.FieldCurrentStage, field.TypeString, value)
		_node.CurrentStage = value
	}
	if value, ok := _c.mutation.NextStage(); ok {
		_spec.SetField(pipelinestate.FieldNextStage, field.TypeString, value)
		_node.NextStage = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(pipelinestate.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinestate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinestate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PipelineStateCreateBulk is the builder for creating many PipelineState entities in bulk.
type PipelineStateCreateBulk struct {
	config
	err      error
	builders []*PipelineStateCreate
}

// Save creates the PipelineState entities in the database.
func (_c *PipelineStateCreateBulk) Save(ctx context.Context) ([]*PipelineState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineStateMutation)
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
func (_c *PipelineStateCreateBulk) SaveX(ctx context.Context) []*PipelineState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

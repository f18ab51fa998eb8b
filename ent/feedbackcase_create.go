// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/feedbackcase"
)

// FeedbackCaseCreate is the builder for creating a FeedbackCase entity.
type FeedbackCaseCreate struct {
	config
	mutation *FeedbackCaseMutation
	hooks    []Hook
}

// SetBookingID sets the "booking_id" field.
func (_c *FeedbackCaseCreate) SetBookingID(v string) *FeedbackCaseCreate {
	_c.mutation.SetBookingID(v)
	return _c
}

// SetCaseID sets the "case_id" field.
func (_c *FeedbackCaseCreate) SetCaseID(v string) *FeedbackCaseCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetVehicleID sets the "vehicle_id" field.
func (_c *FeedbackCaseCreate) SetVehicleID(v string) *FeedbackCaseCreate {
	_c.mutation.SetVehicleID(v)
	return _c
}

// SetCeiScore sets the "cei_score" field.
func (_c *FeedbackCaseCreate) SetCeiScore(v float64) *FeedbackCaseCreate {
	_c.mutation.SetCeiScore(v)
	return _c
}

// SetValidationLabel sets the "validation_label" field.
func (_c *FeedbackCaseCreate) SetValidationLabel(v feedbackcase.ValidationLabel) *FeedbackCaseCreate {
	_c.mutation.SetValidationLabel(v)
	return _c
}

// SetRecommendedRetrain sets the "recommended_retrain" field.
func (_c *FeedbackCaseCreate) SetRecommendedRetrain(v bool) *FeedbackCaseCreate {
	_c.mutation.SetRecommendedRetrain(v)
	return _c
}

// SetTechnicianNotes sets the "technician_notes" field.
func (_c *FeedbackCaseCreate) SetTechnicianNotes(v string) *FeedbackCaseCreate {
	_c.mutation.SetTechnicianNotes(v)
	return _c
}

// SetNillableTechnicianNotes sets the "technician_notes" field if the given value is not nil.
func (_c *FeedbackCaseCreate) SetNillableTechnicianNotes(v *string) *FeedbackCaseCreate {
	if v != nil {
		_c.SetTechnicianNotes(*v)
	}
	return _c
}

// SetCustomerRating sets the "customer_rating" field.
func (_c *FeedbackCaseCreate) SetCustomerRating(v int) *FeedbackCaseCreate {
	_c.mutation.SetCustomerRating(v)
	return _c
}

// SetNillableCustomerRating sets the "customer_rating" field if the given value is not nil.
func (_c *FeedbackCaseCreate) SetNillableCustomerRating(v *int) *FeedbackCaseCreate {
	if v != nil {
		_c.SetCustomerRating(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FeedbackCaseCreate) SetStatus(v feedbackcase.Status) *FeedbackCaseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FeedbackCaseCreate) SetNillableStatus(v *feedbackcase.Status) *FeedbackCaseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeedbackCaseCreate) SetCreatedAt(v time.Time) *FeedbackCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeedbackCaseCreate) SetNillableCreatedAt(v *time.Time) *FeedbackCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FeedbackCaseCreate) SetID(v string) *FeedbackCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FeedbackCaseMutation object of the builder.
func (_c *FeedbackCaseCreate) Mutation() *FeedbackCaseMutation {
	return _c.mutation
}

// Save creates the FeedbackCase in the database.
func (_c *FeedbackCaseCreate) Save(ctx context.Context) (*FeedbackCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedbackCaseCreate) SaveX(ctx context.Context) *FeedbackCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedbackCaseCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := feedbackcase.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feedbackcase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedbackCaseCreate) check() error {
	if _, ok := _c.mutation.BookingID(); !ok {
		return &ValidationError{Name: "booking_id", err: errors.New(`ent: missing required field "FeedbackCase.booking_id"`)}
	}
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "FeedbackCase.case_id"`)}
	}
	if _, ok := _c.mutation.VehicleID(); !ok {
		return &ValidationError{Name: "vehicle_id", err: errors.New(`ent: missing required field "FeedbackCase.vehicle_id"`)}
	}
	if _, ok := _c.mutation.CeiScore(); !ok {
		return &ValidationError{Name: "cei_score", err: errors.New(`ent: missing required field "FeedbackCase.cei_score"`)}
	}
	if _, ok := _c.mutation.ValidationLabel(); !ok {
		return &ValidationError{Name: "validation_label", err: errors.New(`ent: missing required field "FeedbackCase.validation_label"`)}
	}
	if v, ok := _c.mutation.ValidationLabel(); ok {
		if err := feedbackcase.ValidationLabelValidator(v); err != nil {
			return &ValidationError{Name: "validation_label", err: fmt.Errorf(`ent: validator failed for field "FeedbackCase.validation_label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecommendedRetrain(); !ok {
		return &ValidationError{Name: "recommended_retrain", err: errors.New(`ent: missing required field "FeedbackCase.recommended_retrain"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FeedbackCase.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := feedbackcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FeedbackCase.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FeedbackCase.created_at"`)}
	}
	return nil
}

func (_c *FeedbackCaseCreate) sqlSave(ctx context.Context) (*FeedbackCase, error) {
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
			return nil, fmt.Errorf("unexpected FeedbackCase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FeedbackCaseCreate) createSpec() (*FeedbackCase, *sqlgraph.CreateSpec) {
	var (
		_node = &FeedbackCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feedbackcase.Table, sqlgraph.NewFieldSpec(feedbackcase.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BookingID(); ok {
		_spec.SetField(feedbackcase.FieldBookingID, field.TypeString, value)
		_node.BookingID = value
	}
	if value, ok := _c.mutation.CaseID(); ok {
		_spec.SetField(feedbackcase.FieldCaseID, field.TypeString, value)
		_node.CaseID = value
	}
	if value, ok := _c.mutation.VehicleID(); ok {
		_spec.SetField(feedbackcase.FieldVehicleID, field.TypeString, value)
		_node.VehicleID = value
	}
	if value, ok := _c.mutation.CeiScore(); ok {
		_spec.SetField(feedbackcase.FieldCeiScore, field.TypeFloat64, value)
		_node.CeiScore = value
	}
	if value, ok := _c.mutation.ValidationLabel(); ok {
		_spec.SetField(feedbackcase.FieldValidationLabel, field.TypeEnum, value)
		_node.ValidationLabel = value
	}
	if value, ok := _c.mutation.RecommendedRetrain(); ok {
		_spec.SetField(feedbackcase.FieldRecommendedRetrain, field.TypeBool, value)
		_node.RecommendedRetrain = value
	}
	if value, ok := _c.mutation.TechnicianNotes(); ok {
		_spec.SetField(feedbackcase.FieldTechnicianNotes, field.TypeString, value)
		_node.TechnicianNotes = value
	}
	if value, ok := _c.mutation.CustomerRating(); ok {
		_spec.SetField(feedbackcase.FieldCustomerRating, field.TypeInt, value)
		_node.CustomerRating = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(feedbackcase.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feedbackcase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// FeedbackCaseCreateBulk is the builder for creating many FeedbackCase entities in bulk.
type FeedbackCaseCreateBulk struct {
	config
	err      error
	builders []*FeedbackCaseCreate
}

// Save creates the FeedbackCase entities in the database.
func (_c *FeedbackCaseCreateBulk) Save(ctx context.Context) ([]*FeedbackCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FeedbackCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedbackCaseMutation)
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
func (_c *FeedbackCaseCreateBulk) SaveX(ctx context.Context) []*FeedbackCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

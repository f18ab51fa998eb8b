// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/engagementcase"
)

// EngagementCaseCreate is the builder for creating a EngagementCase entity.
type EngagementCaseCreate struct {
	config
	mutation *EngagementCaseMutation
	hooks    []Hook
}

// SetSchedulingID sets the "scheduling_id" field.
func (_c *EngagementCaseCreate) SetSchedulingID(v string) *EngagementCaseCreate {
	_c.mutation.SetSchedulingID(v)
	return _c
}

// SetRcaID sets the "rca_id" field.
func (_c *EngagementCaseCreate) SetRcaID(v string) *EngagementCaseCreate {
	_c.mutation.SetRcaID(v)
	return _c
}

// SetNillableRcaID sets the "rca_id" field if the given value is not nil.
func (_c *EngagementCaseCreate) SetNillableRcaID(v *string) *EngagementCaseCreate {
	if v != nil {
		_c.SetRcaID(*v)
	}
	return _c
}

// SetCaseID sets the "case_id" field.
func (_c *EngagementCaseCreate) SetCaseID(v string) *EngagementCaseCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetVehicleID sets the "vehicle_id" field.
func (_c *EngagementCaseCreate) SetVehicleID(v string) *EngagementCaseCreate {
	_c.mutation.SetVehicleID(v)
	return _c
}

// SetCustomerPhone sets the "customer_phone" field.
func (_c *EngagementCaseCreate) SetCustomerPhone(v string) *EngagementCaseCreate {
	_c.mutation.SetCustomerPhone(v)
	return _c
}

// SetNillableCustomerPhone sets the "customer_phone" field if the given value is not nil.
func (_c *EngagementCaseCreate) SetNillableCustomerPhone(v *string) *EngagementCaseCreate {
	if v != nil {
		_c.SetCustomerPhone(*v)
	}
	return _c
}

// SetCustomerName sets the "customer_name" field.
func (_c *EngagementCaseCreate) SetCustomerName(v string) *EngagementCaseCreate {
	_c.mutation.SetCustomerName(v)
	return _c
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_c *EngagementCaseCreate) SetNillableCustomerName(v *string) *EngagementCaseCreate {
	if v != nil {
		_c.SetCustomerName(*v)
	}
	return _c
}

// SetCustomerDecision sets the "customer_decision" field.
func (_c *EngagementCaseCreate) SetCustomerDecision(v engagementcase.CustomerDecision) *EngagementCaseCreate {
	_c.mutation.SetCustomerDecision(v)
	return _c
}

// SetBookingID sets the "booking_id" field.
func (_c *EngagementCaseCreate) SetBookingID(v string) *EngagementCaseCreate {
	_c.mutation.SetBookingID(v)
	return _c
}

// SetNillableBookingID sets the "booking_id" field if the given value is not nil.
func (_c *EngagementCaseCreate) SetNillableBookingID(v *string) *EngagementCaseCreate {
	if v != nil {
		_c.SetBookingID(*v)
	}
	return _c
}

// SetTranscript sets the "transcript" field.
func (_c *EngagementCaseCreate) SetTranscript(v []map[string]interface{}) *EngagementCaseCreate {
	_c.mutation.SetTranscript(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *EngagementCaseCreate) SetStatus(v engagementcase.Status) *EngagementCaseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EngagementCaseCreate) SetNillableStatus(v *engagementcase.Status) *EngagementCaseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EngagementCaseCreate) SetCreatedAt(v time.Time) *EngagementCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EngagementCaseCreate) SetNillableCreatedAt(v *time.Time) *EngagementCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EngagementCaseCreate) SetID(v string) *EngagementCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EngagementCaseMutation object of the builder.
func (_c *EngagementCaseCreate) Mutation() *EngagementCaseMutation {
	return _c.mutation
}

// Save creates the EngagementCase in the database.
func (_c *EngagementCaseCreate) Save(ctx context.Context) (*EngagementCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EngagementCaseCreate) SaveX(ctx context.Context) *EngagementCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EngagementCaseCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := engagementcase.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := engagementcase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EngagementCaseCreate) check() error {
	if _, ok := _c.mutation.SchedulingID(); !ok {
		return &ValidationError{Name: "scheduling_id", err: errors.New(`ent: missing required field "EngagementCase.scheduling_id"`)}
	}
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "EngagementCase.case_id"`)}
	}
	if _, ok := _c.mutation.VehicleID(); !ok {
		return &ValidationError{Name: "vehicle_id", err: errors.New(`ent: missing required field "EngagementCase.vehicle_id"`)}
	}
	if _, ok := _c.mutation.CustomerDecision(); !ok {
		return &ValidationError{Name: "customer_decision", err: errors.New(`ent: missing required field "EngagementCase.customer_decision"`)}
	}
	if v, ok := _c.mutation.CustomerDecision(); ok {
		if err := engagementcase.CustomerDecisionValidator(v); err != nil {
			return &ValidationError{Name: "customer_decision", err: fmt.Errorf(`ent: validator failed for field "EngagementCase.customer_decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EngagementCase.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := engagementcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EngagementCase.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EngagementCase.created_at"`)}
	}
	return nil
}

func (_c *EngagementCaseCreate) sqlSave(ctx context.Context) (*EngagementCase, error) {
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
			return nil, fmt.Errorf("unexpected EngagementCase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EngagementCaseCreate) createSpec() (*EngagementCase, *sqlgraph.CreateSpec) {
	var (
		_node = &EngagementCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(engagementcase.Table, sqlgraph.NewFieldSpec(engagementcase.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SchedulingID(); ok {
		_spec.SetField(engagementcase.FieldSchedulingID, field.TypeString, value)
		_node.SchedulingID = value
	}
	if value, ok := _c.mutation.RcaID(); ok {
		_spec.SetField(engagementcase.FieldRcaID, field.TypeString, value)
		_node.RcaID = value
	}
	if value, ok := _c.mutation.CaseID(); ok {
		_spec.SetField(engagementcase.FieldCaseID, field.TypeString, value)
		_node.CaseID = value
	}
	if value, ok := _c.mutation.VehicleID(); ok {
		_spec.SetField(engagementcase.FieldVehicleID, field.TypeString, value)
		_node.VehicleID = value
	}
	if value, ok := _c.mutation.CustomerPhone(); ok {
		_spec.SetField(engagementcase.FieldCustomerPhone, field.TypeString, value)
		_node.CustomerPhone = &value
	}
	if value, ok := _c.mutation.CustomerName(); ok {
		_spec.SetField(engagementcase.FieldCustomerName, field.TypeString, value)
		_node.CustomerName = &value
	}
	if value, ok := _c.mutation.CustomerDecision(); ok {
		_spec.SetField(engagementcase.FieldCustomerDecision, field.TypeEnum, value)
		_node.CustomerDecision = value
	}
	if value, ok := _c.mutation.BookingID(); ok {
		_spec.SetField(engagementcase.FieldBookingID, field.TypeString, value)
		_node.BookingID = &value
	}
	if value, ok := _c.mutation.Transcript(); ok {
		_spec.SetField(engagementcase.FieldTranscript, field.TypeJSON, value)
		_node.Transcript = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(engagementcase.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(engagementcase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// EngagementCaseCreateBulk is the builder for creating many EngagementCase entities in bulk.
type EngagementCaseCreateBulk struct {
	config
	err      error
	builders []*EngagementCaseCreate
}

// Save creates the EngagementCase entities in the database.
func (_c *EngagementCaseCreateBulk) Save(ctx context.Context) ([]*EngagementCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EngagementCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EngagementCaseMutation)
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
func (_c *EngagementCaseCreateBulk) SaveX(ctx context.Context) []*EngagementCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

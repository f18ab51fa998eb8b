// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/callcontext"
)

// CallContextCreate is the builder for creating a CallContext entity.
type CallContextCreate struct {
	config
	mutation *CallContextMutation
	hooks    []Hook
}

// SetCommunicationID sets the "communication_id" field.
func (_c *CallContextCreate) SetCommunicationID(v string) *CallContextCreate {
	_c.mutation.SetCommunicationID(v)
	return _c
}

// SetEngagementID sets the "engagement_id" field.
func (_c *CallContextCreate) SetEngagementID(v string) *CallContextCreate {
	_c.mutation.SetEngagementID(v)
	return _c
}

// SetCaseID sets the "case_id" field.
func (_c *CallContextCreate) SetCaseID(v string) *CallContextCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetVehicleID sets the "vehicle_id" field.
func (_c *CallContextCreate) SetVehicleID(v string) *CallContextCreate {
	_c.mutation.SetVehicleID(v)
	return _c
}

// SetCustomerPhone sets the "customer_phone" field.
func (_c *CallContextCreate) SetCustomerPhone(v string) *CallContextCreate {
	_c.mutation.SetCustomerPhone(v)
	return _c
}

// SetCustomerName sets the "customer_name" field.
func (_c *CallContextCreate) SetCustomerName(v string) *CallContextCreate {
	_c.mutation.SetCustomerName(v)
	return _c
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_c *CallContextCreate) SetNillableCustomerName(v *string) *CallContextCreate {
	if v != nil {
		_c.SetCustomerName(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CallContextCreate) SetCreatedAt(v time.Time) *CallContextCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CallContextCreate) SetNillableCreatedAt(v *time.Time) *CallContextCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CallContextCreate) SetID(v string) *CallContextCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CallContextMutation object of the builder.
func (_c *CallContextCreate) Mutation() *CallContextMutation {
	return _c.mutation
}

// Save creates the CallContext in the database.
func (_c *CallContextCreate) Save(ctx context.Context) (*CallContext, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CallContextCreate) SaveX(ctx context.Context) *CallContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallContextCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallContextCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CallContextCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := callcontext.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CallContextCreate) check() error {
	if _, ok := _c.mutation.CommunicationID(); !ok {
		return &ValidationError{Name: "communication_id", err: errors.New(`ent: missing required field "CallContext.communication_id"`)}
	}
	if _, ok := _c.mutation.EngagementID(); !ok {
		return &ValidationError{Name: "engagement_id", err: errors.New(`ent: missing required field "CallContext.engagement_id"`)}
	}
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "CallContext.case_id"`)}
	}
	if _, ok := _c.mutation.VehicleID(); !ok {
		return &ValidationError{Name: "vehicle_id", err: errors.New(`ent: missing required field "CallContext.vehicle_id"`)}
	}
	if _, ok := _c.mutation.CustomerPhone(); !ok {
		return &ValidationError{Name: "customer_phone", err: errors.New(`ent: missing required field "CallContext.customer_phone"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CallContext.created_at"`)}
	}
	return nil
}

func (_c *CallContextCreate) sqlSave(ctx context.Context) (*CallContext, error) {
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
			return nil, fmt.Errorf("unexpected CallContext.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CallContextCreate) createSpec() (*CallContext, *sqlgraph.CreateSpec) {
	var (
		_node = &CallContext{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(callcontext.Table, sqlgraph.NewFieldSpec(callcontext.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CommunicationID(); ok {
		_spec.SetField(callcontext.FieldCommunicationID, field.TypeString, value)
		_node.CommunicationID = value
	}
	if value, ok := _c.mutation.EngagementID(); ok {
		_spec.SetField(callcontext.FieldEngagementID, field.TypeString, value)
		_node.EngagementID = value
	}
	if value, ok := _c.mutation.CaseID(); ok {
		_spec.SetField(callcontext.FieldCaseID, field.TypeString, value)
		_node.CaseID = value
	}
	if value, ok := _c.mutation.VehicleID(); ok {
		_spec.SetField(callcontext.FieldVehicleID, field.TypeString, value)
		_node.VehicleID = value
	}
	if value, ok := _c.mutation.CustomerPhone(); ok {
		_spec.SetField(callcontext.FieldCustomerPhone, field.TypeString, value)
		_node.CustomerPhone = value
	}
	if value, ok := _c.mutation.CustomerName(); ok {
		_spec.SetField(callcontext.FieldCustomerName, field.TypeString, value)
		_node.CustomerName = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(callcontext.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CallContextCreateBulk is the builder for creating many CallContext entities in bulk.
type CallContextCreateBulk struct {
	config
	err      error
	builders []*CallContextCreate
}

// Save creates the CallContext entities in the database.
func (_c *CallContextCreateBulk) Save(ctx context.Context) ([]*CallContext, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CallContext, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CallContextMutation)
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
func (_c *CallContextCreateBulk) SaveX(ctx context.Context) []*CallContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallContextCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallContextCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

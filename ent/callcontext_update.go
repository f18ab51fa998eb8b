// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/callcontext"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// CallContextUpdate is the builder for updating CallContext entities.
type CallContextUpdate struct {
	config
	hooks    []Hook
	mutation *CallContextMutation
}

// Where appends a list predicates to the CallContextUpdate builder.
func (_u *CallContextUpdate) Where(ps ...predicate.CallContext) *CallContextUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCommunicationID sets the "communication_id" field.
func (_u *CallContextUpdate) SetCommunicationID(v string) *CallContextUpdate {
	_u.mutation.SetCommunicationID(v)
	return _u
}

// SetNillableCommunicationID sets the "communication_id" field if the given value is not nil.
func (_u *CallContextUpdate) SetNillableCommunicationID(v *string) *CallContextUpdate {
	if v != nil {
		_u.SetCommunicationID(*v)
	}
	return _u
}

// SetEngagementID sets the "engagement_id" field.
func (_u *CallContextUpdate) SetEngagementID(v string) *CallContextUpdate {
	_u.mutation.SetEngagementID(v)
	return _u
}

// SetNillableEngagementID sets the "engagement_id" field if the given value is not nil.
func (_u *CallContextUpdate) SetNillableEngagementID(v *string) *CallContextUpdate {
	if v != nil {
		_u.SetEngagementID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *CallContextUpdate) SetCaseID(v string) *CallContextUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CallContextUpdate) SetNillableCaseID(v *string) *CallContextUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *CallContextUpdate) SetVehicleID(v string) *CallContextUpdate {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *CallContextUpdate) SetNillableVehicleID(v *string) *CallContextUpdate {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetCustomerPhone sets the "customer_phone" field.
func (_u *CallContextUpdate) SetCustomerPhone(v string) *CallContextUpdate {
	_u.mutation.SetCustomerPhone(v)
	return _u
}

// SetNillableCustomerPhone sets the "customer_phone" field if the given value is not nil.
func (_u *CallContextUpdate) SetNillableCustomerPhone(v *string) *CallContextUpdate {
	if v != nil {
		_u.SetCustomerPhone(*v)
	}
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *CallContextUpdate) SetCustomerName(v string) *CallContextUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *CallContextUpdate) SetNillableCustomerName(v *string) *CallContextUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *CallContextUpdate) ClearCustomerName() *CallContextUpdate {
	_u.mutation.ClearCustomerName()
	return _u
}

// Mutation returns the CallContextMutation object of the builder.
func (_u *CallContextUpdate) Mutation() *CallContextMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CallContextUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallContextUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CallContextUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallContextUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CallContextUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(callcontext.Table, callcontext.Columns, sqlgraph.NewFieldSpec(callcontext.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CommunicationID(); ok {
		_spec.SetField(callcontext.FieldCommunicationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EngagementID(); ok {
		_spec.SetField(callcontext.FieldEngagementID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(callcontext.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(callcontext.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerPhone(); ok {
		_spec.SetField(callcontext.FieldCustomerPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(callcontext.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(callcontext.FieldCustomerName, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{callcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CallContextUpdateOne is the builder for updating a single CallContext entity.
type CallContextUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CallContextMutation
}

// SetCommunicationID sets the "communication_id" field.
func (_u *CallContextUpdateOne) SetCommunicationID(v string) *CallContextUpdateOne {
	_u.mutation.SetCommunicationID(v)
	return _u
}

// SetNillableCommunicationID sets the "communication_id" field if the given value is not nil.
func (_u *CallContextUpdateOne) SetNillableCommunicationID(v *string) *CallContextUpdateOne {
	if v != nil {
		_u.SetCommunicationID(*v)
	}
	return _u
}

// SetEngagementID sets the "engagement_id" field.
func (_u *CallContextUpdateOne) SetEngagementID(v string) *CallContextUpdateOne {
	_u.mutation.SetEngagementID(v)
	return _u
}

// SetNillableEngagementID sets the "engagement_id" field if the given value is not nil.
func (_u *CallContextUpdateOne) SetNillableEngagementID(v *string) *CallContextUpdateOne {
	if v != nil {
		_u.SetEngagementID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *CallContextUpdateOne) SetCaseID(v string) *CallContextUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CallContextUpdateOne) SetNillableCaseID(v *string) *CallContextUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *CallContextUpdateOne) SetVehicleID(v string) *CallContextUpdateOne {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *CallContextUpdateOne) SetNillableVehicleID(v *string) *CallContextUpdateOne {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetCustomerPhone sets the "customer_phone" field.
func (_u *CallContextUpdateOne) SetCustomerPhone(v string) *CallContextUpdateOne {
	_u.mutation.SetCustomerPhone(v)
	return _u
}

// SetNillableCustomerPhone sets the "customer_phone" field if the given value is not nil.
func (_u *CallContextUpdateOne) SetNillableCustomerPhone(v *string) *CallContextUpdateOne {
	if v != nil {
		_u.SetCustomerPhone(*v)
	}
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *CallContextUpdateOne) SetCustomerName(v string) *CallContextUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *CallContextUpdateOne) SetNillableCustomerName(v *string) *CallContextUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *CallContextUpdateOne) ClearCustomerName() *CallContextUpdateOne {
	_u.mutation.ClearCustomerName()
	return _u
}

// Mutation returns the CallContextMutation object of the builder.
func (_u *CallContextUpdateOne) Mutation() *CallContextMutation {
	return _u.mutation
}

// Where appends a list predicates to the CallContextUpdate builder.
func (_u *CallContextUpdateOne) Where(ps ...predicate.CallContext) *CallContextUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CallContextUpdateOne) Select(field string, fields ...string) *CallContextUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CallContext entity.
func (_u *CallContextUpdateOne) Save(ctx context.Context) (*CallContext, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallContextUpdateOne) SaveX(ctx context.Context) *CallContext {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CallContextUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallContextUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CallContextUpdateOne) sqlSave(ctx context.Context) (_node *CallContext, err error) {
	_spec := sqlgraph.NewUpdateSpec(callcontext.Table, callcontext.Columns, sqlgraph.NewFieldSpec(callcontext.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CallContext.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, callcontext.FieldID)
		for _, f := range fields {
			if !callcontext.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != callcontext.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CommunicationID(); ok {
		_spec.SetField(callcontext.FieldCommunicationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EngagementID(); ok {
		_spec.SetField(callcontext.FieldEngagementID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(callcontext.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(callcontext.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerPhone(); ok {
		_spec.SetField(callcontext.FieldCustomerPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(callcontext.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(callcontext.FieldCustomerName, field.TypeString)
	}
	_node = &CallContext{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{callcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

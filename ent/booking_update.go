// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/booking"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// BookingUpdate is the builder for updating Booking entities.
type BookingUpdate struct {
	config
	hooks    []Hook
	mutation *BookingMutation
}

// Where appends a list predicates to the BookingUpdate builder.
func (_u *BookingUpdate) Where(ps ...predicate.Booking) *BookingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *BookingUpdate) SetCaseID(v string) *BookingUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCaseID(v *string) *BookingUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *BookingUpdate) SetVehicleID(v string) *BookingUpdate {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableVehicleID(v *string) *BookingUpdate {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetServiceCenter sets the "service_center" field.
func (_u *BookingUpdate) SetServiceCenter(v string) *BookingUpdate {
	_u.mutation.SetServiceCenter(v)
	return _u
}

// SetNillableServiceCenter sets the "service_center" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableServiceCenter(v *string) *BookingUpdate {
	if v != nil {
		_u.SetServiceCenter(*v)
	}
	return _u
}

// SetScheduledSlot sets the "scheduled_slot" field.
func (_u *BookingUpdate) SetScheduledSlot(v time.Time) *BookingUpdate {
	_u.mutation.SetScheduledSlot(v)
	return _u
}

// SetNillableScheduledSlot sets the "scheduled_slot" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableScheduledSlot(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetScheduledSlot(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BookingUpdate) SetStatus(v booking.Status) *BookingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableStatus(v *booking.Status) *BookingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the BookingMutation object of the builder.
func (_u *BookingUpdate) Mutation() *BookingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BookingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BookingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookingUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Booking.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BookingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(booking.Table, booking.Columns, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(booking.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(booking.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ServiceCenter(); ok {
		_spec.SetField(booking.FieldServiceCenter, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduledSlot(); ok {
		_spec.SetField(booking.FieldScheduledSlot, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BookingUpdateOne is the builder for updating a single Booking entity.
type BookingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BookingMutation
}

// SetCaseID sets the "case_id" field.
func (_u *BookingUpdateOne) SetCaseID(v string) *BookingUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCaseID(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *BookingUpdateOne) SetVehicleID(v string) *BookingUpdateOne {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableVehicleID(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetServiceCenter sets the "service_center" field.
func (_u *BookingUpdateOne) SetServiceCenter(v string) *BookingUpdateOne {
	_u.mutation.SetServiceCenter(v)
	return _u
}

// SetNillableServiceCenter sets the "service_center" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableServiceCenter(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetServiceCenter(*v)
	}
	return _u
}

// SetScheduledSlot sets the "scheduled_slot" field.
func (_u *BookingUpdateOne) SetScheduledSlot(v time.Time) *BookingUpdateOne {
	_u.mutation.SetScheduledSlot(v)
	return _u
}

// SetNillableScheduledSlot sets the "scheduled_slot" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableScheduledSlot(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetScheduledSlot(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BookingUpdateOne) SetStatus(v booking.Status) *BookingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableStatus(v *booking.Status) *BookingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the BookingMutation object of the builder.
func (_u *BookingUpdateOne) Mutation() *BookingMutation {
	return _u.mutation
}

// Where appends a list predicates to the BookingUpdate builder.
func (_u *BookingUpdateOne) Where(ps ...predicate.Booking) *BookingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BookingUpdateOne) Select(field string, fields ...string) *BookingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Booking entity.
func (_u *BookingUpdateOne) Save(ctx context.Context) (*Booking, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookingUpdateOne) SaveX(ctx context.Context) *Booking {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BookingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookingUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Booking.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BookingUpdateOne) sqlSave(ctx context.Context) (_node *Booking, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(booking.Table, booking.Columns, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Booking.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, booking.FieldID)
		for _, f := range fields {
			if !booking.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != booking.FieldID {
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
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(booking.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(booking.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ServiceCenter(); ok {
		_spec.SetField(booking.FieldServiceCenter, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduledSlot(); ok {
		_spec.SetField(booking.FieldScheduledSlot, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
	}
	_node = &Booking{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

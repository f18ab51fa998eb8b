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
	"github.com/fleetsense/fleetsense/ent/predicate"
	"github.com/fleetsense/fleetsense/ent/vehicle"
)

// VehicleUpdate is the builder for updating Vehicle entities.
type VehicleUpdate struct {
	config
	hooks    []Hook
	mutation *VehicleMutation
}

// Where appends a list predicates to the VehicleUpdate builder.
func (_u *VehicleUpdate) Where(ps ...predicate.Vehicle) *VehicleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerName sets the "owner_name" field.
func (_u *VehicleUpdate) SetOwnerName(v string) *VehicleUpdate {
	_u.mutation.SetOwnerName(v)
	return _u
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableOwnerName(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetOwnerName(*v)
	}
	return _u
}

// ClearOwnerName clears the value of the "owner_name" field.
func (_u *VehicleUpdate) ClearOwnerName() *VehicleUpdate {
	_u.mutation.ClearOwnerName()
	return _u
}

// SetOwnerPhone sets the "owner_phone" field.
func (_u *VehicleUpdate) SetOwnerPhone(v string) *VehicleUpdate {
	_u.mutation.SetOwnerPhone(v)
	return _u
}

// SetNillableOwnerPhone sets the "owner_phone" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableOwnerPhone(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetOwnerPhone(*v)
	}
	return _u
}

// ClearOwnerPhone clears the value of the "owner_phone" field.
func (_u *VehicleUpdate) ClearOwnerPhone() *VehicleUpdate {
	_u.mutation.ClearOwnerPhone()
	return _u
}

// SetMake sets the "make" field.
func (_u *VehicleUpdate) SetMake(v string) *VehicleUpdate {
	_u.mutation.SetMake(v)
	return _u
}

// SetNillableMake sets the "make" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableMake(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetMake(*v)
	}
	return _u
}

// ClearMake clears the value of the "make" field.
func (_u *VehicleUpdate) ClearMake() *VehicleUpdate {
	_u.mutation.ClearMake()
	return _u
}

// SetModel sets the "model" field.
func (_u *VehicleUpdate) SetModel(v string) *VehicleUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableModel(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *VehicleUpdate) ClearModel() *VehicleUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VehicleUpdate) SetUpdatedAt(v time.Time) *VehicleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the VehicleMutation object of the builder.
func (_u *VehicleUpdate) Mutation() *VehicleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VehicleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VehicleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VehicleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VehicleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VehicleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vehicle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *VehicleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(vehicle.Table, vehicle.Columns, sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerName(); ok {
		_spec.SetField(vehicle.FieldOwnerName, field.TypeString, value)
	}
	if _u.mutation.OwnerNameCleared() {
		_spec.ClearField(vehicle.FieldOwnerName, field.TypeString)
	}
	if value, ok := _u.mutation.OwnerPhone(); ok {
		_spec.SetField(vehicle.FieldOwnerPhone, field.TypeString, value)
	}
	if _u.mutation.OwnerPhoneCleared() {
		_spec.ClearField(vehicle.FieldOwnerPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Make(); ok {
		_spec.SetField(vehicle.FieldMake, field.TypeString, value)
	}
	if _u.mutation.MakeCleared() {
		_spec.ClearField(vehicle.FieldMake, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(vehicle.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(vehicle.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vehicle.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehicle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VehicleUpdateOne is the builder for updating a single Vehicle entity.
type VehicleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VehicleMutation
}

// SetOwnerName sets the "owner_name" field.
func (_u *VehicleUpdateOne) SetOwnerName(v string) *VehicleUpdateOne {
	_u.mutation.SetOwnerName(v)
	return _u
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableOwnerName(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetOwnerName(*v)
	}
	return _u
}

// ClearOwnerName clears the value of the "owner_name" field.
func (_u *VehicleUpdateOne) ClearOwnerName() *VehicleUpdateOne {
	_u.mutation.ClearOwnerName()
	return _u
}

// SetOwnerPhone sets the "owner_phone" field.
func (_u *VehicleUpdateOne) SetOwnerPhone(v string) *VehicleUpdateOne {
	_u.mutation.SetOwnerPhone(v)
	return _u
}

// SetNillableOwnerPhone sets the "owner_phone" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableOwnerPhone(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetOwnerPhone(*v)
	}
	return _u
}

// ClearOwnerPhone clears the value of the "owner_phone" field.
func (_u *VehicleUpdateOne) ClearOwnerPhone() *VehicleUpdateOne {
	_u.mutation.ClearOwnerPhone()
	return _u
}

// SetMake sets the "make" field.
func (_u *VehicleUpdateOne) SetMake(v string) *VehicleUpdateOne {
	_u.mutation.SetMake(v)
	return _u
}

// SetNillableMake sets the "make" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableMake(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetMake(*v)
	}
	return _u
}

// ClearMake clears the value of the "make" field.
func (_u *VehicleUpdateOne) ClearMake() *VehicleUpdateOne {
	_u.mutation.ClearMake()
	return _u
}

// SetModel sets the "model" field.
func (_u *VehicleUpdateOne) SetModel(v string) *VehicleUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableModel(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *VehicleUpdateOne) ClearModel() *VehicleUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VehicleUpdateOne) SetUpdatedAt(v time.Time) *VehicleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the VehicleMutation object of the builder.
func (_u *VehicleUpdateOne) Mutation() *VehicleMutation {
	return _u.mutation
}

// Where appends a list predicates to the VehicleUpdate builder.
func (_u *VehicleUpdateOne) Where(ps ...predicate.Vehicle) *VehicleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VehicleUpdateOne) Select(field string, fields ...string) *VehicleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vehicle entity.
func (_u *VehicleUpdateOne) Save(ctx context.Context) (*Vehicle, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VehicleUpdateOne) SaveX(ctx context.Context) *Vehicle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VehicleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VehicleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VehicleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vehicle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *VehicleUpdateOne) sqlSave(ctx context.Context) (_node *Vehicle, err error) {
	_spec := sqlgraph.NewUpdateSpec(vehicle.Table, vehicle.Columns, sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vehicle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vehicle.FieldID)
		for _, f := range fields {
			if !vehicle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vehicle.FieldID {
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
	if value, ok := _u.mutation.OwnerName(); ok {
		_spec.SetField(vehicle.FieldOwnerName, field.TypeString, value)
	}
	if _u.mutation.OwnerNameCleared() {
		_spec.ClearField(vehicle.FieldOwnerName, field.TypeString)
	}
	if value, ok := _u.mutation.OwnerPhone(); ok {
		_spec.SetField(vehicle.FieldOwnerPhone, field.TypeString, value)
	}
	if _u.mutation.OwnerPhoneCleared() {
		_spec.ClearField(vehicle.FieldOwnerPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Make(); ok {
		_spec.SetField(vehicle.FieldMake, field.TypeString, value)
	}
	if _u.mutation.MakeCleared() {
		_spec.ClearField(vehicle.FieldMake, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(vehicle.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(vehicle.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vehicle.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Vehicle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehicle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/predicate"
	"github.com/fleetsense/fleetsense/ent/schedulingcase"
)

// SchedulingCaseUpdate is the builder for updating SchedulingCase entities.
type SchedulingCaseUpdate struct {
	config
	hooks    []Hook
	mutation *SchedulingCaseMutation
}

// Where appends a list predicates to the SchedulingCaseUpdate builder.
func (_u *SchedulingCaseUpdate) Where(ps ...predicate.SchedulingCase) *SchedulingCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRcaID sets the "rca_id" field.
func (_u *SchedulingCaseUpdate) SetRcaID(v string) *SchedulingCaseUpdate {
	_u.mutation.SetRcaID(v)
	return _u
}

// SetNillableRcaID sets the "rca_id" field if the given value is not nil.
func (_u *SchedulingCaseUpdate) SetNillableRcaID(v *string) *SchedulingCaseUpdate {
	if v != nil {
		_u.SetRcaID(*v)
	}
	return _u
}

// SetDiagnosisID sets the "diagnosis_id" field.
func (_u *SchedulingCaseUpdate) SetDiagnosisID(v string) *SchedulingCaseUpdate {
	_u.mutation.SetDiagnosisID(v)
	return _u
}

// SetNillableDiagnosisID sets the "diagnosis_id" field if the given value is not nil.
func (_u *SchedulingCaseUpdate) SetNillableDiagnosisID(v *string) *SchedulingCaseUpdate {
	if v != nil {
		_u.SetDiagnosisID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *SchedulingCaseUpdate) SetCaseID(v string) *SchedulingCaseUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *SchedulingCaseUpdate) SetNillableCaseID(v *string) *SchedulingCaseUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *SchedulingCaseUpdate) SetVehicleID(v string) *SchedulingCaseUpdate {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *SchedulingCaseUpdate) SetNillableVehicleID(v *string) *SchedulingCaseUpdate {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetBestSlot sets the "best_slot" field.
func (_u *SchedulingCaseUpdate) SetBestSlot(v time.Time) *SchedulingCaseUpdate {
	_u.mutation.SetBestSlot(v)
	return _u
}

// SetNillableBestSlot sets the "best_slot" field if the given value is not nil.
func (_u *SchedulingCaseUpdate) SetNillableBestSlot(v *time.Time) *SchedulingCaseUpdate {
	if v != nil {
		_u.SetBestSlot(*v)
	}
	return _u
}

// SetServiceCenter sets the "service_center" field.
func (_u *SchedulingCaseUpdate) SetServiceCenter(v string) *SchedulingCaseUpdate {
	_u.mutation.SetServiceCenter(v)
	return _u
}

// SetNillableServiceCenter sets the "service_center" field if the given value is not nil.
func (_u *SchedulingCaseUpdate) SetNillableServiceCenter(v *string) *SchedulingCaseUpdate {
	if v != nil {
		_u.SetServiceCenter(*v)
	}
	return _u
}

// SetSlotType sets the "slot_type" field.
func (_u *SchedulingCaseUpdate) SetSlotType(v schedulingcase.SlotType) *SchedulingCaseUpdate {
	_u.mutation.SetSlotType(v)
	return _u
}

// SetNillableSlotType sets the "slot_type" field if the given value is not nil.
func (_u *SchedulingCaseUpdate) SetNillableSlotType(v *schedulingcase.SlotType) *SchedulingCaseUpdate {
	if v != nil {
		_u.SetSlotType(*v)
	}
	return _u
}

// SetFallbackSlots sets the "fallback_slots" field.
func (_u *SchedulingCaseUpdate) SetFallbackSlots(v []string) *SchedulingCaseUpdate {
	_u.mutation.SetFallbackSlots(v)
	return _u
}

// AppendFallbackSlots appends value to the "fallback_slots" field.
func (_u *SchedulingCaseUpdate) AppendFallbackSlots(v []string) *SchedulingCaseUpdate {
	_u.mutation.AppendFallbackSlots(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SchedulingCaseUpdate) SetStatus(v schedulingcase.Status) *SchedulingCaseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SchedulingCaseUpdate) SetNillableStatus(v *schedulingcase.Status) *SchedulingCaseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the SchedulingCaseMutation object of the builder.
func (_u *SchedulingCaseUpdate) Mutation() *SchedulingCaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SchedulingCaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchedulingCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SchedulingCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchedulingCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchedulingCaseUpdate) check() error {
	if v, ok := _u.mutation.SlotType(); ok {
		if err := schedulingcase.SlotTypeValidator(v); err != nil {
			return &ValidationError{Name: "slot_type", err: fmt.Errorf(`ent: validator failed for field "SchedulingCase.slot_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := schedulingcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SchedulingCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SchedulingCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedulingcase.Table, schedulingcase.Columns, sqlgraph.NewFieldSpec(schedulingcase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RcaID(); ok {
		_spec.SetField(schedulingcase.FieldRcaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiagnosisID(); ok {
		_spec.SetField(schedulingcase.FieldDiagnosisID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(schedulingcase.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(schedulingcase.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestSlot(); ok {
		_spec.SetField(schedulingcase.FieldBestSlot, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ServiceCenter(); ok {
		_spec.SetField(schedulingcase.FieldServiceCenter, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlotType(); ok {
		_spec.SetField(schedulingcase.FieldSlotType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FallbackSlots(); ok {
		_spec.SetField(schedulingcase.FieldFallbackSlots, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFallbackSlots(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, schedulingcase.FieldFallbackSlots, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(schedulingcase.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedulingcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SchedulingCaseUpdateOne is the builder for updating a single SchedulingCase entity.
type SchedulingCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SchedulingCaseMutation
}

// SetRcaID sets the "rca_id" field.
func (_u *SchedulingCaseUpdateOne) SetRcaID(v string) *SchedulingCaseUpdateOne {
	_u.mutation.SetRcaID(v)
	return _u
}

// SetNillableRcaID sets the "rca_id" field if the given value is not nil.
func (_u *SchedulingCaseUpdateOne) SetNillableRcaID(v *string) *SchedulingCaseUpdateOne {
	if v != nil {
		_u.SetRcaID(*v)
	}
	return _u
}

// SetDiagnosisID sets the "diagnosis_id" field.
func (_u *SchedulingCaseUpdateOne) SetDiagnosisID(v string) *SchedulingCaseUpdateOne {
	_u.mutation.SetDiagnosisID(v)
	return _u
}

// SetNillableDiagnosisID sets the "diagnosis_id" field if the given value is not nil.
func (_u *SchedulingCaseUpdateOne) SetNillableDiagnosisID(v *string) *SchedulingCaseUpdateOne {
	if v != nil {
		_u.SetDiagnosisID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *SchedulingCaseUpdateOne) SetCaseID(v string) *SchedulingCaseUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *SchedulingCaseUpdateOne) SetNillableCaseID(v *string) *SchedulingCaseUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *SchedulingCaseUpdateOne) SetVehicleID(v string) *SchedulingCaseUpdateOne {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *SchedulingCaseUpdateOne) SetNillableVehicleID(v *string) *SchedulingCaseUpdateOne {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetBestSlot sets the "best_slot" field.
func (_u *SchedulingCaseUpdateOne) SetBestSlot(v time.Time) *SchedulingCaseUpdateOne {
	_u.mutation.SetBestSlot(v)
	return _u
}

// SetNillableBestSlot sets the "best_slot" field if the given value is not nil.
func (_u *SchedulingCaseUpdateOne) SetNillableBestSlot(v *time.Time) *SchedulingCaseUpdateOne {
	if v != nil {
		_u.SetBestSlot(*v)
	}
	return _u
}

// SetServiceCenter sets the "service_center" field.
func (_u *SchedulingCaseUpdateOne) SetServiceCenter(v string) *SchedulingCaseUpdateOne {
	_u.mutation.SetServiceCenter(v)
	return _u
}

// SetNillableServiceCenter sets the "service_center" field if the given value is not nil.
func (_u *SchedulingCaseUpdateOne) SetNillableServiceCenter(v *string) *SchedulingCaseUpdateOne {
	if v != nil {
		_u.SetServiceCenter(*v)
	}
	return _u
}

// SetSlotType sets the "slot_type" field.
func (_u *SchedulingCaseUpdateOne) SetSlotType(v schedulingcase.SlotType) *SchedulingCaseUpdateOne {
	_u.mutation.SetSlotType(v)
	return _u
}

// SetNillableSlotType sets the "slot_type" field if the given value is not nil.
func (_u *SchedulingCaseUpdateOne) SetNillableSlotType(v *schedulingcase.SlotType) *SchedulingCaseUpdateOne {
	if v != nil {
		_u.SetSlotType(*v)
	}
	return _u
}

// SetFallbackSlots sets the "fallback_slots" field.
func (_u *SchedulingCaseUpdateOne) SetFallbackSlots(v []string) *SchedulingCaseUpdateOne {
	_u.mutation.SetFallbackSlots(v)
	return _u
}

// AppendFallbackSlots appends value to the "fallback_slots" field.
func (_u *SchedulingCaseUpdateOne) AppendFallbackSlots(v []string) *SchedulingCaseUpdateOne {
	_u.mutation.AppendFallbackSlots(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SchedulingCaseUpdateOne) SetStatus(v schedulingcase.Status) *SchedulingCaseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SchedulingCaseUpdateOne) SetNillableStatus(v *schedulingcase.Status) *SchedulingCaseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the SchedulingCaseMutation object of the builder.
func (_u *SchedulingCaseUpdateOne) Mutation() *SchedulingCaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the SchedulingCaseUpdate builder.
func (_u *SchedulingCaseUpdateOne) Where(ps ...predicate.SchedulingCase) *SchedulingCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SchedulingCaseUpdateOne) Select(field string, fields ...string) *SchedulingCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SchedulingCase entity.
func (_u *SchedulingCaseUpdateOne) Save(ctx context.Context) (*SchedulingCase, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchedulingCaseUpdateOne) SaveX(ctx context.Context) *SchedulingCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SchedulingCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchedulingCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchedulingCaseUpdateOne) check() error {
	if v, ok := _u.mutation.SlotType(); ok {
		if err := schedulingcase.SlotTypeValidator(v); err != nil {
			return &ValidationError{Name: "slot_type", err: fmt.Errorf(`ent: validator failed for field "SchedulingCase.slot_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := schedulingcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SchedulingCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SchedulingCaseUpdateOne) sqlSave(ctx context.Context) (_node *SchedulingCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedulingcase.Table, schedulingcase.Columns, sqlgraph.NewFieldSpec(schedulingcase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SchedulingCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schedulingcase.FieldID)
		for _, f := range fields {
			if !schedulingcase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schedulingcase.FieldID {
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
	if value, ok := _u.mutation.RcaID(); ok {
		_spec.SetField(schedulingcase.FieldRcaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiagnosisID(); ok {
		_spec.SetField(schedulingcase.FieldDiagnosisID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(schedulingcase.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(schedulingcase.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestSlot(); ok {
		_spec.SetField(schedulingcase.FieldBestSlot, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ServiceCenter(); ok {
		_spec.SetField(schedulingcase.FieldServiceCenter, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlotType(); ok {
		_spec.SetField(schedulingcase.FieldSlotType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FallbackSlots(); ok {
		_spec.SetField(schedulingcase.FieldFallbackSlots, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFallbackSlots(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, schedulingcase.FieldFallbackSlots, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(schedulingcase.FieldStatus, field.TypeEnum, value)
	}
	_node = &SchedulingCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedulingcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

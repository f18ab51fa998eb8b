// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/engagementcase"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// EngagementCaseUpdate is the builder for updating EngagementCase entities.
type EngagementCaseUpdate struct {
	config
	hooks    []Hook
	mutation *EngagementCaseMutation
}

// Where appends a list predicates to the EngagementCaseUpdate builder.
func (_u *EngagementCaseUpdate) Where(ps ...predicate.EngagementCase) *EngagementCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSchedulingID sets the "scheduling_id" field.
func (_u *EngagementCaseUpdate) SetSchedulingID(v string) *EngagementCaseUpdate {
	_u.mutation.SetSchedulingID(v)
	return _u
}

// SetNillableSchedulingID sets the "scheduling_id" field if the given value is not nil.
func (_u *EngagementCaseUpdate) SetNillableSchedulingID(v *string) *EngagementCaseUpdate {
	if v != nil {
		_u.SetSchedulingID(*v)
	}
	return _u
}

// SetRcaID sets the "rca_id" field.
func (_u *EngagementCaseUpdate) SetRcaID(v string) *EngagementCaseUpdate {
	_u.mutation.SetRcaID(v)
	return _u
}

// SetNillableRcaID sets the "rca_id" field if the given value is not nil.
func (_u *EngagementCaseUpdate) SetNillableRcaID(v *string) *EngagementCaseUpdate {
	if v != nil {
		_u.SetRcaID(*v)
	}
	return _u
}

// ClearRcaID clears the value of the "rca_id" field.
func (_u *EngagementCaseUpdate) ClearRcaID() *EngagementCaseUpdate {
	_u.mutation.ClearRcaID()
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *EngagementCaseUpdate) SetCaseID(v string) *EngagementCaseUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *EngagementCaseUpdate) SetNillableCaseID(v *string) *EngagementCaseUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *EngagementCaseUpdate) SetVehicleID(v string) *EngagementCaseUpdate {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *EngagementCaseUpdate) SetNillableVehicleID(v *string) *EngagementCaseUpdate {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetCustomerPhone sets the "customer_phone" field.
func (_u *EngagementCaseUpdate) SetCustomerPhone(v string) *EngagementCaseUpdate {
	_u.mutation.SetCustomerPhone(v)
	return _u
}

// SetNillableCustomerPhone sets the "customer_phone" field if the given value is not nil.
func (_u *EngagementCaseUpdate) SetNillableCustomerPhone(v *string) *EngagementCaseUpdate {
	if v != nil {
		_u.SetCustomerPhone(*v)
	}
	return _u
}

// ClearCustomerPhone clears the value of the "customer_phone" field.
func (_u *EngagementCaseUpdate) ClearCustomerPhone() *EngagementCaseUpdate {
	_u.mutation.ClearCustomerPhone()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *EngagementCaseUpdate) SetCustomerName(v string) *EngagementCaseUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *EngagementCaseUpdate) SetNillableCustomerName(v *string) *EngagementCaseUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *EngagementCaseUpdate) ClearCustomerName() *EngagementCaseUpdate {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetCustomerDecision sets the "customer_decision" field.
func (_u *EngagementCaseUpdate) SetCustomerDecision(v engagementcase.CustomerDecision) *EngagementCaseUpdate {
	_u.mutation.SetCustomerDecision(v)
	return _u
}

// SetNillableCustomerDecision sets the "customer_decision" field if the given value is not nil.
func (_u *EngagementCaseUpdate) SetNillableCustomerDecision(v *engagementcase.CustomerDecision) *EngagementCaseUpdate {
	if v != nil {
		_u.SetCustomerDecision(*v)
	}
	return _u
}

// SetBookingID sets the "booking_id" field.
func (_u *EngagementCaseUpdate) SetBookingID(v string) *EngagementCaseUpdate {
	_u.mutation.SetBookingID(v)
	return _u
}

// SetNillableBookingID sets the "booking_id" field if the given value is not nil.
func (_u *EngagementCaseUpdate) SetNillableBookingID(v *string) *EngagementCaseUpdate {
	if v != nil {
		_u.SetBookingID(*v)
	}
	return _u
}

// ClearBookingID clears the value of the "booking_id" field.
func (_u *EngagementCaseUpdate) ClearBookingID() *EngagementCaseUpdate {
	_u.mutation.ClearBookingID()
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *EngagementCaseUpdate) SetTranscript(v []map[string]interface{}) *EngagementCaseUpdate {
	_u.mutation.SetTranscript(v)
	return _u
}

// AppendTranscript appends value to the "transcript" field.
func (_u *EngagementCaseUpdate) AppendTranscript(v []map[string]interface{}) *EngagementCaseUpdate {
	_u.mutation.AppendTranscript(v)
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *EngagementCaseUpdate) ClearTranscript() *EngagementCaseUpdate {
	_u.mutation.ClearTranscript()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EngagementCaseUpdate) SetStatus(v engagementcase.Status) *EngagementCaseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EngagementCaseUpdate) SetNillableStatus(v *engagementcase.Status) *EngagementCaseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the EngagementCaseMutation object of the builder.
func (_u *EngagementCaseUpdate) Mutation() *EngagementCaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EngagementCaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EngagementCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementCaseUpdate) check() error {
	if v, ok := _u.mutation.CustomerDecision(); ok {
		if err := engagementcase.CustomerDecisionValidator(v); err != nil {
			return &ValidationError{Name: "customer_decision", err: fmt.Errorf(`ent: validator failed for field "EngagementCase.customer_decision": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := engagementcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EngagementCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EngagementCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagementcase.Table, engagementcase.Columns, sqlgraph.NewFieldSpec(engagementcase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SchedulingID(); ok {
		_spec.SetField(engagementcase.FieldSchedulingID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RcaID(); ok {
		_spec.SetField(engagementcase.FieldRcaID, field.TypeString, value)
	}
	if _u.mutation.RcaIDCleared() {
		_spec.ClearField(engagementcase.FieldRcaID, field.TypeString)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(engagementcase.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(engagementcase.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerPhone(); ok {
		_spec.SetField(engagementcase.FieldCustomerPhone, field.TypeString, value)
	}
	if _u.mutation.CustomerPhoneCleared() {
		_spec.ClearField(engagementcase.FieldCustomerPhone, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(engagementcase.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(engagementcase.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerDecision(); ok {
		_spec.SetField(engagementcase.FieldCustomerDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BookingID(); ok {
		_spec.SetField(engagementcase.FieldBookingID, field.TypeString, value)
	}
	if _u.mutation.BookingIDCleared() {
		_spec.ClearField(engagementcase.FieldBookingID, field.TypeString)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(engagementcase.FieldTranscript, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTranscript(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, engagementcase.FieldTranscript, value)
		})
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(engagementcase.FieldTranscript, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(engagementcase.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagementcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EngagementCaseUpdateOne is the builder for updating a single EngagementCase entity.
type EngagementCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EngagementCaseMutation
}

// SetSchedulingID sets the "scheduling_id" field.
func (_u *EngagementCaseUpdateOne) SetSchedulingID(v string) *EngagementCaseUpdateOne {
	_u.mutation.SetSchedulingID(v)
	return _u
}

// SetNillableSchedulingID sets the "scheduling_id" field if the given value is not nil.
func (_u *EngagementCaseUpdateOne) SetNillableSchedulingID(v *string) *EngagementCaseUpdateOne {
	if v != nil {
		_u.SetSchedulingID(*v)
	}
	return _u
}

// SetRcaID sets the "rca_id" field.
func (_u *EngagementCaseUpdateOne) SetRcaID(v string) *EngagementCaseUpdateOne {
	_u.mutation.SetRcaID(v)
	return _u
}

// SetNillableRcaID sets the "rca_id" field if the given value is not nil.
func (_u *EngagementCaseUpdateOne) SetNillableRcaID(v *string) *EngagementCaseUpdateOne {
	if v != nil {
		_u.SetRcaID(*v)
	}
	return _u
}

// ClearRcaID clears the value of the "rca_id" field.
func (_u *EngagementCaseUpdateOne) ClearRcaID() *EngagementCaseUpdateOne {
	_u.mutation.ClearRcaID()
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *EngagementCaseUpdateOne) SetCaseID(v string) *EngagementCaseUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *EngagementCaseUpdateOne) SetNillableCaseID(v *string) *EngagementCaseUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *EngagementCaseUpdateOne) SetVehicleID(v string) *EngagementCaseUpdateOne {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *EngagementCaseUpdateOne) SetNillableVehicleID(v *string) *EngagementCaseUpdateOne {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetCustomerPhone sets the "customer_phone" field.
func (_u *EngagementCaseUpdateOne) SetCustomerPhone(v string) *EngagementCaseUpdateOne {
	_u.mutation.SetCustomerPhone(v)
	return _u
}

// SetNillableCustomerPhone sets the "customer_phone" field if the given value is not nil.
func (_u *EngagementCaseUpdateOne) SetNillableCustomerPhone(v *string) *EngagementCaseUpdateOne {
	if v != nil {
		_u.SetCustomerPhone(*v)
	}
	return _u
}

// ClearCustomerPhone clears the value of the "customer_phone" field.
func (_u *EngagementCaseUpdateOne) ClearCustomerPhone() *EngagementCaseUpdateOne {
	_u.mutation.ClearCustomerPhone()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *EngagementCaseUpdateOne) SetCustomerName(v string) *EngagementCaseUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *EngagementCaseUpdateOne) SetNillableCustomerName(v *string) *EngagementCaseUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *EngagementCaseUpdateOne) ClearCustomerName() *EngagementCaseUpdateOne {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetCustomerDecision sets the "customer_decision" field.
func (_u *EngagementCaseUpdateOne) SetCustomerDecision(v engagementcase.CustomerDecision) *EngagementCaseUpdateOne {
	_u.mutation.SetCustomerDecision(v)
	return _u
}

// SetNillableCustomerDecision sets the "customer_decision" field if the given value is not nil.
func (_u *EngagementCaseUpdateOne) SetNillableCustomerDecision(v *engagementcase.CustomerDecision) *EngagementCaseUpdateOne {
	if v != nil {
		_u.SetCustomerDecision(*v)
	}
	return _u
}

// SetBookingID sets the "booking_id" field.
func (_u *EngagementCaseUpdateOne) SetBookingID(v string) *EngagementCaseUpdateOne {
	_u.mutation.SetBookingID(v)
	return _u
}

// SetNillableBookingID sets the "booking_id" field if the given value is not nil.
func (_u *EngagementCaseUpdateOne) SetNillableBookingID(v *string) *EngagementCaseUpdateOne {
	if v != nil {
		_u.SetBookingID(*v)
	}
	return _u
}

// ClearBookingID clears the value of the "booking_id" field.
func (_u *EngagementCaseUpdateOne) ClearBookingID() *EngagementCaseUpdateOne {
	_u.mutation.ClearBookingID()
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *EngagementCaseUpdateOne) SetTranscript(v []map[string]interface{}) *EngagementCaseUpdateOne {
	_u.mutation.SetTranscript(v)
	return _u
}

// AppendTranscript appends value to the "transcript" field.
func (_u *EngagementCaseUpdateOne) AppendTranscript(v []map[string]interface{}) *EngagementCaseUpdateOne {
	_u.mutation.AppendTranscript(v)
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *EngagementCaseUpdateOne) ClearTranscript() *EngagementCaseUpdateOne {
	_u.mutation.ClearTranscript()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EngagementCaseUpdateOne) SetStatus(v engagementcase.Status) *EngagementCaseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EngagementCaseUpdateOne) SetNillableStatus(v *engagementcase.Status) *EngagementCaseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the EngagementCaseMutation object of the builder.
func (_u *EngagementCaseUpdateOne) Mutation() *EngagementCaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the EngagementCaseUpdate builder.
func (_u *EngagementCaseUpdateOne) Where(ps ...predicate.EngagementCase) *EngagementCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EngagementCaseUpdateOne) Select(field string, fields ...string) *EngagementCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EngagementCase entity.
func (_u *EngagementCaseUpdateOne) Save(ctx context.Context) (*EngagementCase, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementCaseUpdateOne) SaveX(ctx context.Context) *EngagementCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EngagementCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementCaseUpdateOne) check() error {
	if v, ok := _u.mutation.CustomerDecision(); ok {
		if err := engagementcase.CustomerDecisionValidator(v); err != nil {
			return &ValidationError{Name: "customer_decision", err: fmt.Errorf(`ent: validator failed for field "EngagementCase.customer_decision": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := engagementcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EngagementCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EngagementCaseUpdateOne) sqlSave(ctx context.Context) (_node *EngagementCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagementcase.Table, engagementcase.Columns, sqlgraph.NewFieldSpec(engagementcase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EngagementCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, engagementcase.FieldID)
		for _, f := range fields {
			if !engagementcase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != engagementcase.FieldID {
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
	if value, ok := _u.mutation.SchedulingID(); ok {
		_spec.SetField(engagementcase.FieldSchedulingID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RcaID(); ok {
		_spec.SetField(engagementcase.FieldRcaID, field.TypeString, value)
	}
	if _u.mutation.RcaIDCleared() {
		_spec.ClearField(engagementcase.FieldRcaID, field.TypeString)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(engagementcase.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(engagementcase.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerPhone(); ok {
		_spec.SetField(engagementcase.FieldCustomerPhone, field.TypeString, value)
	}
	if _u.mutation.CustomerPhoneCleared() {
		_spec.ClearField(engagementcase.FieldCustomerPhone, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(engagementcase.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(engagementcase.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerDecision(); ok {
		_spec.SetField(engagementcase.FieldCustomerDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BookingID(); ok {
		_spec.SetField(engagementcase.FieldBookingID, field.TypeString, value)
	}
	if _u.mutation.BookingIDCleared() {
		_spec.ClearField(engagementcase.FieldBookingID, field.TypeString)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(engagementcase.FieldTranscript, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTranscript(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, engagementcase.FieldTranscript, value)
		})
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(engagementcase.FieldTranscript, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(engagementcase.FieldStatus, field.TypeEnum, value)
	}
	_node = &EngagementCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagementcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/fleetsense/fleetsense/ent/communicationcase"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// CommunicationCaseUpdate is the builder for updating CommunicationCase entities.
type CommunicationCaseUpdate struct {
	config
	hooks    []Hook
	mutation *CommunicationCaseMutation
}

// Where appends a list predicates to the CommunicationCaseUpdate builder.
func (_u *CommunicationCaseUpdate) Where(ps ...predicate.CommunicationCase) *CommunicationCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEngagementID sets the "engagement_id" field.
func (_u *CommunicationCaseUpdate) SetEngagementID(v string) *CommunicationCaseUpdate {
	_u.mutation.SetEngagementID(v)
	return _u
}

// SetNillableEngagementID sets the "engagement_id" field if the given value is not nil.
func (_u *CommunicationCaseUpdate) SetNillableEngagementID(v *string) *CommunicationCaseUpdate {
	if v != nil {
		_u.SetEngagementID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *CommunicationCaseUpdate) SetCaseID(v string) *CommunicationCaseUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CommunicationCaseUpdate) SetNillableCaseID(v *string) *CommunicationCaseUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *CommunicationCaseUpdate) SetVehicleID(v string) *CommunicationCaseUpdate {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *CommunicationCaseUpdate) SetNillableVehicleID(v *string) *CommunicationCaseUpdate {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetCustomerPhone sets the "customer_phone" field.
func (_u *CommunicationCaseUpdate) SetCustomerPhone(v string) *CommunicationCaseUpdate {
	_u.mutation.SetCustomerPhone(v)
	return _u
}

// SetNillableCustomerPhone sets the "customer_phone" field if the given value is not nil.
func (_u *CommunicationCaseUpdate) SetNillableCustomerPhone(v *string) *CommunicationCaseUpdate {
	if v != nil {
		_u.SetCustomerPhone(*v)
	}
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *CommunicationCaseUpdate) SetCustomerName(v string) *CommunicationCaseUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *CommunicationCaseUpdate) SetNillableCustomerName(v *string) *CommunicationCaseUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *CommunicationCaseUpdate) ClearCustomerName() *CommunicationCaseUpdate {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetCallStatus sets the "call_status" field.
func (_u *CommunicationCaseUpdate) SetCallStatus(v communicationcase.CallStatus) *CommunicationCaseUpdate {
	_u.mutation.SetCallStatus(v)
	return _u
}

// SetNillableCallStatus sets the "call_status" field if the given value is not nil.
func (_u *CommunicationCaseUpdate) SetNillableCallStatus(v *communicationcase.CallStatus) *CommunicationCaseUpdate {
	if v != nil {
		_u.SetCallStatus(*v)
	}
	return _u
}

// SetConversationStage sets the "conversation_stage" field.
func (_u *CommunicationCaseUpdate) SetConversationStage(v communicationcase.ConversationStage) *CommunicationCaseUpdate {
	_u.mutation.SetConversationStage(v)
	return _u
}

// SetNillableConversationStage sets the "conversation_stage" field if the given value is not nil.
func (_u *CommunicationCaseUpdate) SetNillableConversationStage(v *communicationcase.ConversationStage) *CommunicationCaseUpdate {
	if v != nil {
		_u.SetConversationStage(*v)
	}
	return _u
}

// SetConversationTranscript sets the "conversation_transcript" field.
func (_u *CommunicationCaseUpdate) SetConversationTranscript(v []map[string]interface{}) *CommunicationCaseUpdate {
	_u.mutation.SetConversationTranscript(v)
	return _u
}

// AppendConversationTranscript appends value to the "conversation_transcript" field.
func (_u *CommunicationCaseUpdate) AppendConversationTranscript(v []map[string]interface{}) *CommunicationCaseUpdate {
	_u.mutation.AppendConversationTranscript(v)
	return _u
}

// ClearConversationTranscript clears the value of the "conversation_transcript" field.
func (_u *CommunicationCaseUpdate) ClearConversationTranscript() *CommunicationCaseUpdate {
	_u.mutation.ClearConversationTranscript()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *CommunicationCaseUpdate) SetOutcome(v communicationcase.Outcome) *CommunicationCaseUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *CommunicationCaseUpdate) SetNillableOutcome(v *communicationcase.Outcome) *CommunicationCaseUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *CommunicationCaseUpdate) ClearOutcome() *CommunicationCaseUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetBookingID sets the "booking_id" field.
func (_u *CommunicationCaseUpdate) SetBookingID(v string) *CommunicationCaseUpdate {
	_u.mutation.SetBookingID(v)
	return _u
}

// SetNillableBookingID sets the "booking_id" field if the given value is not nil.
func (_u *CommunicationCaseUpdate) SetNillableBookingID(v *string) *CommunicationCaseUpdate {
	if v != nil {
		_u.SetBookingID(*v)
	}
	return _u
}

// ClearBookingID clears the value of the "booking_id" field.
func (_u *CommunicationCaseUpdate) ClearBookingID() *CommunicationCaseUpdate {
	_u.mutation.ClearBookingID()
	return _u
}

// SetCallSid sets the "call_sid" field.
func (_u *CommunicationCaseUpdate) SetCallSid(v string) *CommunicationCaseUpdate {
	_u.mutation.SetCallSid(v)
	return _u
}

// SetNillableCallSid sets the "call_sid" field if the given value is not nil.
func (_u *CommunicationCaseUpdate) SetNillableCallSid(v *string) *CommunicationCaseUpdate {
	if v != nil {
		_u.SetCallSid(*v)
	}
	return _u
}

// ClearCallSid clears the value of the "call_sid" field.
func (_u *CommunicationCaseUpdate) ClearCallSid() *CommunicationCaseUpdate {
	_u.mutation.ClearCallSid()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommunicationCaseUpdate) SetUpdatedAt(v time.Time) *CommunicationCaseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CommunicationCaseMutation object of the builder.
func (_u *CommunicationCaseUpdate) Mutation() *CommunicationCaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommunicationCaseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommunicationCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommunicationCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommunicationCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommunicationCaseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := communicationcase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommunicationCaseUpdate) check() error {
	if v, ok := _u.mutation.CallStatus(); ok {
		if err := communicationcase.CallStatusValidator(v); err != nil {
			return &ValidationError{Name: "call_status", err: fmt.Errorf(`ent: validator failed for field "CommunicationCase.call_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConversationStage(); ok {
		if err := communicationcase.ConversationStageValidator(v); err != nil {
			return &ValidationError{Name: "conversation_stage", err: fmt.Errorf(`ent: validator failed for field "CommunicationCase.conversation_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := communicationcase.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "CommunicationCase.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *CommunicationCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(communicationcase.Table, communicationcase.Columns, sqlgraph.NewFieldSpec(communicationcase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EngagementID(); ok {
		_spec.SetField(communicationcase.FieldEngagementID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(communicationcase.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(communicationcase.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerPhone(); ok {
		_spec.SetField(communicationcase.FieldCustomerPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(communicationcase.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(communicationcase.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.CallStatus(); ok {
		_spec.SetField(communicationcase.FieldCallStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConversationStage(); ok {
		_spec.SetField(communicationcase.FieldConversationStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConversationTranscript(); ok {
		_spec.SetField(communicationcase.FieldConversationTranscript, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConversationTranscript(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, communicationcase.FieldConversationTranscript, value)
		})
	}
	if _u.mutation.ConversationTranscriptCleared() {
		_spec.ClearField(communicationcase.FieldConversationTranscript, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(communicationcase.FieldOutcome, field.TypeEnum, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(communicationcase.FieldOutcome, field.TypeEnum)
	}
	if value, ok := _u.mutation.BookingID(); ok {
		_spec.SetField(communicationcase.FieldBookingID, field.TypeString, value)
	}
	if _u.mutation.BookingIDCleared() {
		_spec.ClearField(communicationcase.FieldBookingID, field.TypeString)
	}
	if value, ok := _u.mutation.CallSid(); ok {
		_spec.SetField(communicationcase.FieldCallSid, field.TypeString, value)
	}
	if _u.mutation.CallSidCleared() {
		_spec.ClearField(communicationcase.FieldCallSid, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(communicationcase.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{communicationcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommunicationCaseUpdateOne is the builder for updating a single CommunicationCase entity.
type CommunicationCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommunicationCaseMutation
}

// SetEngagementID sets the "engagement_id" field.
func (_u *CommunicationCaseUpdateOne) SetEngagementID(v string) *CommunicationCaseUpdateOne {
	_u.mutation.SetEngagementID(v)
	return _u
}

// SetNillableEngagementID sets the "engagement_id" field if the given value is not nil.
func (_u *CommunicationCaseUpdateOne) SetNillableEngagementID(v *string) *CommunicationCaseUpdateOne {
	if v != nil {
		_u.SetEngagementID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *CommunicationCaseUpdateOne) SetCaseID(v string) *CommunicationCaseUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CommunicationCaseUpdateOne) SetNillableCaseID(v *string) *CommunicationCaseUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *CommunicationCaseUpdateOne) SetVehicleID(v string) *CommunicationCaseUpdateOne {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *CommunicationCaseUpdateOne) SetNillableVehicleID(v *string) *CommunicationCaseUpdateOne {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetCustomerPhone sets the "customer_phone" field.
func (_u *CommunicationCaseUpdateOne) SetCustomerPhone(v string) *CommunicationCaseUpdateOne {
	_u.mutation.SetCustomerPhone(v)
	return _u
}

// SetNillableCustomerPhone sets the "customer_phone" field if the given value is not nil.
func (_u *CommunicationCaseUpdateOne) SetNillableCustomerPhone(v *string) *CommunicationCaseUpdateOne {
	if v != nil {
		_u.SetCustomerPhone(*v)
	}
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *CommunicationCaseUpdateOne) SetCustomerName(v string) *CommunicationCaseUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *CommunicationCaseUpdateOne) SetNillableCustomerName(v *string) *CommunicationCaseUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *CommunicationCaseUpdateOne) ClearCustomerName() *CommunicationCaseUpdateOne {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetCallStatus sets the "call_status" field.
func (_u *CommunicationCaseUpdateOne) SetCallStatus(v communicationcase.CallStatus) *CommunicationCaseUpdateOne {
	_u.mutation.SetCallStatus(v)
	return _u
}

// SetNillableCallStatus sets the "call_status" field if the given value is not nil.
func (_u *CommunicationCaseUpdateOne) SetNillableCallStatus(v *communicationcase.CallStatus) *CommunicationCaseUpdateOne {
	if v != nil {
		_u.SetCallStatus(*v)
	}
	return _u
}

// SetConversationStage sets the "conversation_stage" field.
func (_u *CommunicationCaseUpdateOne) SetConversationStage(v communicationcase.ConversationStage) *CommunicationCaseUpdateOne {
	_u.mutation.SetConversationStage(v)
	return _u
}

// SetNillableConversationStage sets the "conversation_stage" field if the given value is not nil.
func (_u *CommunicationCaseUpdateOne) SetNillableConversationStage(v *communicationcase.ConversationStage) *CommunicationCaseUpdateOne {
	if v != nil {
		_u.SetConversationStage(*v)
	}
	return _u
}

// SetConversationTranscript sets the "conversation_transcript" field.
func (_u *CommunicationCaseUpdateOne) SetConversationTranscript(v []map[string]interface{}) *CommunicationCaseUpdateOne {
	_u.mutation.SetConversationTranscript(v)
	return _u
}

// AppendConversationTranscript appends value to the "conversation_transcript" field.
func (_u *CommunicationCaseUpdateOne) AppendConversationTranscript(v []map[string]interface{}) *CommunicationCaseUpdateOne {
	_u.mutation.AppendConversationTranscript(v)
	return _u
}

// ClearConversationTranscript clears the value of the "conversation_transcript" field.
func (_u *CommunicationCaseUpdateOne) ClearConversationTranscript() *CommunicationCaseUpdateOne {
	_u.mutation.ClearConversationTranscript()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *CommunicationCaseUpdateOne) SetOutcome(v communicationcase.Outcome) *CommunicationCaseUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *CommunicationCaseUpdateOne) SetNillableOutcome(v *communicationcase.Outcome) *CommunicationCaseUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *CommunicationCaseUpdateOne) ClearOutcome() *CommunicationCaseUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetBookingID sets the "booking_id" field.
func (_u *CommunicationCaseUpdateOne) SetBookingID(v string) *CommunicationCaseUpdateOne {
	_u.mutation.SetBookingID(v)
	return _u
}

// SetNillableBookingID sets the "booking_id" field if the given value is not nil.
func (_u *CommunicationCaseUpdateOne) SetNillableBookingID(v *string) *CommunicationCaseUpdateOne {
	if v != nil {
		_u.SetBookingID(*v)
	}
	return _u
}

// ClearBookingID clears the value of the "booking_id" field.
func (_u *CommunicationCaseUpdateOne) ClearBookingID() *CommunicationCaseUpdateOne {
	_u.mutation.ClearBookingID()
	return _u
}

// SetCallSid sets the "call_sid" field.
func (_u *CommunicationCaseUpdateOne) SetCallSid(v string) *CommunicationCaseUpdateOne {
	_u.mutation.SetCallSid(v)
	return _u
}

// SetNillableCallSid sets the "call_sid" field if the given value is not nil.
func (_u *CommunicationCaseUpdateOne) SetNillableCallSid(v *string) *CommunicationCaseUpdateOne {
	if v != nil {
		_u.SetCallSid(*v)
	}
	return _u
}

// ClearCallSid clears the value of the "call_sid" field.
func (_u *CommunicationCaseUpdateOne) ClearCallSid() *CommunicationCaseUpdateOne {
	_u.mutation.ClearCallSid()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommunicationCaseUpdateOne) SetUpdatedAt(v time.Time) *CommunicationCaseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CommunicationCaseMutation object of the builder.
func (_u *CommunicationCaseUpdateOne) Mutation() *CommunicationCaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the CommunicationCaseUpdate builder.
func (_u *CommunicationCaseUpdateOne) Where(ps ...predicate.CommunicationCase) *CommunicationCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommunicationCaseUpdateOne) Select(field string, fields ...string) *CommunicationCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CommunicationCase entity.
func (_u *CommunicationCaseUpdateOne) Save(ctx context.Context) (*CommunicationCase, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommunicationCaseUpdateOne) SaveX(ctx context.Context) *CommunicationCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommunicationCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommunicationCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommunicationCaseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := communicationcase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommunicationCaseUpdateOne) check() error {
	if v, ok := _u.mutation.CallStatus(); ok {
		if err := communicationcase.CallStatusValidator(v); err != nil {
			return &ValidationError{Name: "call_status", err: fmt.Errorf(`ent: validator failed for field "CommunicationCase.call_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConversationStage(); ok {
		if err := communicationcase.ConversationStageValidator(v); err != nil {
			return &ValidationError{Name: "conversation_stage", err: fmt.Errorf(`ent: validator failed for field "CommunicationCase.conversation_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := communicationcase.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "CommunicationCase.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *CommunicationCaseUpdateOne) sqlSave(ctx context.Context) (_node *CommunicationCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(communicationcase.Table, communicationcase.Columns, sqlgraph.NewFieldSpec(communicationcase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CommunicationCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, communicationcase.FieldID)
		for _, f := range fields {
			if !communicationcase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != communicationcase.FieldID {
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
	if value, ok := _u.mutation.EngagementID(); ok {
		_spec.SetField(communicationcase.FieldEngagementID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(communicationcase.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(communicationcase.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerPhone(); ok {
		_spec.SetField(communicationcase.FieldCustomerPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(communicationcase.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(communicationcase.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.CallStatus(); ok {
		_spec.SetField(communicationcase.FieldCallStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConversationStage(); ok {
		_spec.SetField(communicationcase.FieldConversationStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConversationTranscript(); ok {
		_spec.SetField(communicationcase.FieldConversationTranscript, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConversationTranscript(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, communicationcase.FieldConversationTranscript, value)
		})
	}
	if _u.mutation.ConversationTranscriptCleared() {
		_spec.ClearField(communicationcase.FieldConversationTranscript, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(communicationcase.FieldOutcome, field.TypeEnum, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(communicationcase.FieldOutcome, field.TypeEnum)
	}
	if value, ok := _u.mutation.BookingID(); ok {
		_spec.SetField(communicationcase.FieldBookingID, field.TypeString, value)
	}
	if _u.mutation.BookingIDCleared() {
		_spec.ClearField(communicationcase.FieldBookingID, field.TypeString)
	}
	if value, ok := _u.mutation.CallSid(); ok {
		_spec.SetField(communicationcase.FieldCallSid, field.TypeString, value)
	}
	if _u.mutation.CallSidCleared() {
		_spec.ClearField(communicationcase.FieldCallSid, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(communicationcase.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CommunicationCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{communicationcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/communicationcase"
)

// CommunicationCaseCreate is the builder for creating a CommunicationCase entity.
type CommunicationCaseCreate struct {
	config
	mutation *CommunicationCaseMutation
	hooks    []Hook
}

// SetEngagementID sets the "engagement_id" field.
func (_c *CommunicationCaseCreate) SetEngagementID(v string) *CommunicationCaseCreate {
	_c.mutation.SetEngagementID(v)
	return _c
}

// SetCaseID sets the "case_id" field.
func (_c *CommunicationCaseCreate) SetCaseID(v string) *CommunicationCaseCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetVehicleID sets the "vehicle_id" field.
func (_c *CommunicationCaseCreate) SetVehicleID(v string) *CommunicationCaseCreate {
	_c.mutation.SetVehicleID(v)
	return _c
}

// SetCustomerPhone sets the "customer_phone" field.
func (_c *CommunicationCaseCreate) SetCustomerPhone(v string) *CommunicationCaseCreate {
	_c.mutation.SetCustomerPhone(v)
	return _c
}

// SetCustomerName sets the "customer_name" field.
func (_c *CommunicationCaseCreate) SetCustomerName(v string) *CommunicationCaseCreate {
	_c.mutation.SetCustomerName(v)
	return _c
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_c *CommunicationCaseCreate) SetNillableCustomerName(v *string) *CommunicationCaseCreate {
	if v != nil {
		_c.SetCustomerName(*v)
	}
	return _c
}

// SetCallStatus sets the "call_status" field.
func (_c *CommunicationCaseCreate) SetCallStatus(v communicationcase.CallStatus) *CommunicationCaseCreate {
	_c.mutation.SetCallStatus(v)
	return _c
}

// SetNillableCallStatus sets the "call_status" field if the given value is not nil.
func (_c *CommunicationCaseCreate) SetNillableCallStatus(v *communicationcase.CallStatus) *CommunicationCaseCreate {
	if v != nil {
		_c.SetCallStatus(*v)
	}
	return _c
}

// SetConversationStage sets the "conversation_stage" field.
func (_c *CommunicationCaseCreate) SetConversationStage(v communicationcase.ConversationStage) *CommunicationCaseCreate {
	_c.mutation.SetConversationStage(v)
	return _c
}

// SetNillableConversationStage sets the "conversation_stage" field if the given value is not nil.
func (_c *CommunicationCaseCreate) SetNillableConversationStage(v *communicationcase.ConversationStage) *CommunicationCaseCreate {
	if v != nil {
		_c.SetConversationStage(*v)
	}
	return _c
}

// SetConversationTranscript sets the "conversation_transcript" field.
func (_c *CommunicationCaseCreate) SetConversationTranscript(v []map[string]interface{}) *CommunicationCaseCreate {
	_c.mutation.SetConversationTranscript(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *CommunicationCaseCreate) SetOutcome(v communicationcase.Outcome) *CommunicationCaseCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *CommunicationCaseCreate) SetNillableOutcome(v *communicationcase.Outcome) *CommunicationCaseCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetBookingID sets the "booking_id" field.
func (_c *CommunicationCaseCreate) SetBookingID(v string) *CommunicationCaseCreate {
	_c.mutation.SetBookingID(v)
	return _c
}

// SetNillableBookingID sets the "booking_id" field if the given value is not nil.
func (_c *CommunicationCaseCreate) SetNillableBookingID(v *string) *CommunicationCaseCreate {
	if v != nil {
		_c.SetBookingID(*v)
	}
	return _c
}

// SetCallSid sets the "call_sid" field.
func (_c *CommunicationCaseCreate) SetCallSid(v string) *CommunicationCaseCreate {
	_c.mutation.SetCallSid(v)
	return _c
}

// SetNillableCallSid sets the "call_sid" field if the given value is not nil.
func (_c *CommunicationCaseCreate) SetNillableCallSid(v *string) *CommunicationCaseCreate {
	if v != nil {
		_c.SetCallSid(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommunicationCaseCreate) SetCreatedAt(v time.Time) *CommunicationCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommunicationCaseCreate) SetNillableCreatedAt(v *time.Time) *CommunicationCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CommunicationCaseCreate) SetUpdatedAt(v time.Time) *CommunicationCaseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CommunicationCaseCreate) SetNillableUpdatedAt(v *time.Time) *CommunicationCaseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommunicationCaseCreate) SetID(v string) *CommunicationCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CommunicationCaseMutation object of the builder.
func (_c *CommunicationCaseCreate) Mutation() *CommunicationCaseMutation {
	return _c.mutation
}

// Save creates the CommunicationCase in the database.
func (_c *CommunicationCaseCreate) Save(ctx context.Context) (*CommunicationCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommunicationCaseCreate) SaveX(ctx context.Context) *CommunicationCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommunicationCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommunicationCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommunicationCaseCreate) defaults() {
	if _, ok := _c.mutation.CallStatus(); !ok {
		v := communicationcase.DefaultCallStatus
		_c.mutation.SetCallStatus(v)
	}
	if _, ok := _c.mutation.ConversationStage(); !ok {
		v := communicationcase.DefaultConversationStage
		_c.mutation.SetConversationStage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := communicationcase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := communicationcase.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommunicationCaseCreate) check() error {
	if _, ok := _c.mutation.EngagementID(); !ok {
		return &ValidationError{Name: "engagement_id", err: errors.New(`ent: missing required field "CommunicationCase.engagement_id"`)}
	}
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "CommunicationCase.case_id"`)}
	}
	if _, ok := _c.mutation.VehicleID(); !ok {
		return &ValidationError{Name: "vehicle_id", err: errors.New(`ent: missing required field "CommunicationCase.vehicle_id"`)}
	}
	if _, ok := _c.mutation.CustomerPhone(); !ok {
		return &ValidationError{Name: "customer_phone", err: errors.New(`ent: missing required field "CommunicationCase.customer_phone"`)}
	}
	if _, ok := _c.mutation.CallStatus(); !ok {
		return &ValidationError{Name: "call_status", err: errors.New(`ent: missing required field "CommunicationCase.call_status"`)}
	}
	if v, ok := _c.mutation.CallStatus(); ok {
		if err := communicationcase.CallStatusValidator(v); err != nil {
			return &ValidationError{Name: "call_status", err: fmt.Errorf(`ent: validator failed for field "CommunicationCase.call_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConversationStage(); !ok {
		return &ValidationError{Name: "conversation_stage", err: errors.New(`ent: missing required field "CommunicationCase.conversation_stage"`)}
	}
	if v, ok := _c.mutation.ConversationStage(); ok {
		if err := communicationcase.ConversationStageValidator(v); err != nil {
			return &ValidationError{Name: "conversation_stage", err: fmt.Errorf(`ent: validator failed for field "CommunicationCase.conversation_stage": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := communicationcase.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "CommunicationCase.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CommunicationCase.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CommunicationCase.updated_at"`)}
	}
	return nil
}

func (_c *CommunicationCaseCreate) sqlSave(ctx context.Context) (*CommunicationCase, error) {
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
			return nil, fmt.Errorf("unexpected CommunicationCase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommunicationCaseCreate) createSpec() (*CommunicationCase, *sqlgraph.CreateSpec) {
	var (
		_node = &CommunicationCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(communicationcase.Table, sqlgraph.NewFieldSpec(communicationcase.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EngagementID(); ok {
		_spec.SetField(communicationcase.FieldEngagementID, field.TypeString, value)
		_node.EngagementID = value
	}
	if value, ok := _c.mutation.CaseID(); ok {
		_spec.SetField(communicationcase.FieldCaseID, field.TypeString, value)
		_node.CaseID = value
	}
	if value, ok := _c.mutation.VehicleID(); ok {
		_spec.SetField(communicationcase.FieldVehicleID, field.TypeString, value)
		_node.VehicleID = value
	}
	if value, ok := _c.mutation.CustomerPhone(); ok {
		_spec.SetField(communicationcase.FieldCustomerPhone, field.TypeString, value)
		_node.CustomerPhone = value
	}
	if value, ok := _c.mutation.CustomerName(); ok {
		_spec.SetField(communicationcase.FieldCustomerName, field.TypeString, value)
		_node.CustomerName = &value
	}
	if value, ok := _c.mutation.CallStatus(); ok {
		_spec.SetField(communicationcase.FieldCallStatus, field.TypeEnum, value)
		_node.CallStatus = value
	}
	if value, ok := _c.mutation.ConversationStage(); ok {
		_spec.SetField(communicationcase.FieldConversationStage, field.TypeEnum, value)
		_node.ConversationStage = value
	}
	if value, ok := _c.mutation.ConversationTranscript(); ok {
		_spec.SetField(communicationcase.FieldConversationTranscript, field.TypeJSON, value)
		_node.ConversationTranscript = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(communicationcase.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = &value
	}
	if value, ok := _c.mutation.BookingID(); ok {
		_spec.SetField(communicationcase.FieldBookingID, field.TypeString, value)
		_node.BookingID = &value
	}
	if value, ok := _c.mutation.CallSid(); ok {
		_spec.SetField(communicationcase.FieldCallSid, field.TypeString, value)
		_node.CallSid = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(communicationcase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(communicationcase.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CommunicationCaseCreateBulk is the builder for creating many CommunicationCase entities in bulk.
type CommunicationCaseCreateBulk struct {
	config
	err      error
	builders []*CommunicationCaseCreate
}

// Save creates the CommunicationCase entities in the database.
func (_c *CommunicationCaseCreateBulk) Save(ctx context.Context) ([]*CommunicationCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CommunicationCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommunicationCaseMutation)
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
func (_c *CommunicationCaseCreateBulk) SaveX(ctx context.Context) []*CommunicationCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommunicationCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommunicationCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

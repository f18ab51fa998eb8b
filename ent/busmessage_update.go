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
	"github.com/fleetsense/fleetsense/ent/busmessage"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// BusMessageUpdate is the builder for updating BusMessage entities.
type BusMessageUpdate struct {
	config
	hooks    []Hook
	mutation *BusMessageMutation
}

// Where appends a list predicates to the BusMessageUpdate builder.
func (_u *BusMessageUpdate) Where(ps ...predicate.BusMessage) *BusMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *BusMessageUpdate) SetTopic(v string) *BusMessageUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *BusMessageUpdate) SetNillableTopic(v *string) *BusMessageUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *BusMessageUpdate) SetPayload(v map[string]interface{}) *BusMessageUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BusMessageUpdate) SetStatus(v busmessage.Status) *BusMessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BusMessageUpdate) SetNillableStatus(v *busmessage.Status) *BusMessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *BusMessageUpdate) SetAttempts(v int) *BusMessageUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *BusMessageUpdate) SetNillableAttempts(v *int) *BusMessageUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *BusMessageUpdate) AddAttempts(v int) *BusMessageUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetAvailableAt sets the "available_at" field.
func (_u *BusMessageUpdate) SetAvailableAt(v time.Time) *BusMessageUpdate {
	_u.mutation.SetAvailableAt(v)
	return _u
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_u *BusMessageUpdate) SetNillableAvailableAt(v *time.Time) *BusMessageUpdate {
	if v != nil {
		_u.SetAvailableAt(*v)
	}
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *BusMessageUpdate) SetClaimedBy(v string) *BusMessageUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *BusMessageUpdate) SetNillableClaimedBy(v *string) *BusMessageUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *BusMessageUpdate) ClearClaimedBy() *BusMessageUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// Mutation returns the BusMessageMutation object of the builder.
func (_u *BusMessageUpdate) Mutation() *BusMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusMessageUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := busmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BusMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BusMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(busmessage.Table, busmessage.Columns, sqlgraph.NewFieldSpec(busmessage.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(busmessage.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(busmessage.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(busmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(busmessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(busmessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvailableAt(); ok {
		_spec.SetField(busmessage.FieldAvailableAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(busmessage.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(busmessage.FieldClaimedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{busmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusMessageUpdateOne is the builder for updating a single BusMessage entity.
type BusMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusMessageMutation
}

// SetTopic sets the "topic" field.
func (_u *BusMessageUpdateOne) SetTopic(v string) *BusMessageUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *BusMessageUpdateOne) SetNillableTopic(v *string) *BusMessageUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *BusMessageUpdateOne) SetPayload(v map[string]interface{}) *BusMessageUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BusMessageUpdateOne) SetStatus(v busmessage.Status) *BusMessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BusMessageUpdateOne) SetNillableStatus(v *busmessage.Status) *BusMessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *BusMessageUpdateOne) SetAttempts(v int) *BusMessageUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *BusMessageUpdateOne) SetNillableAttempts(v *int) *BusMessageUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *BusMessageUpdateOne) AddAttempts(v int) *BusMessageUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetAvailableAt sets the "available_at" field.
func (_u *BusMessageUpdateOne) SetAvailableAt(v time.Time) *BusMessageUpdateOne {
	_u.mutation.SetAvailableAt(v)
	return _u
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_u *BusMessageUpdateOne) SetNillableAvailableAt(v *time.Time) *BusMessageUpdateOne {
	if v != nil {
		_u.SetAvailableAt(*v)
	}
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *BusMessageUpdateOne) SetClaimedBy(v string) *BusMessageUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *BusMessageUpdateOne) SetNillableClaimedBy(v *string) *BusMessageUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *BusMessageUpdateOne) ClearClaimedBy() *BusMessageUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// Mutation returns the BusMessageMutation object of the builder.
func (_u *BusMessageUpdateOne) Mutation() *BusMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the BusMessageUpdate builder.
func (_u *BusMessageUpdateOne) Where(ps ...predicate.BusMessage) *BusMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusMessageUpdateOne) Select(field string, fields ...string) *BusMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BusMessage entity.
func (_u *BusMessageUpdateOne) Save(ctx context.Context) (*BusMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusMessageUpdateOne) SaveX(ctx context.Context) *BusMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := busmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BusMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BusMessageUpdateOne) sqlSave(ctx context.Context) (_node *BusMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(busmessage.Table, busmessage.Columns, sqlgraph.NewFieldSpec(busmessage.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BusMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, busmessage.FieldID)
		for _, f := range fields {
			if !busmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != busmessage.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(busmessage.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(busmessage.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(busmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(busmessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(busmessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvailableAt(); ok {
		_spec.SetField(busmessage.FieldAvailableAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(busmessage.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(busmessage.FieldClaimedBy, field.TypeString)
	}
	_node = &BusMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{busmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

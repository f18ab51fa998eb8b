// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/busmessage"
)

// BusMessageCreate is the builder for creating a BusMessage entity.
type BusMessageCreate struct {
	config
	mutation *BusMessageMutation
	hooks    []Hook
}

// SetTopic sets the "topic" field.
func (_c *BusMessageCreate) SetTopic(v string) *BusMessageCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *BusMessageCreate) SetPayload(v map[string]interface{}) *BusMessageCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BusMessageCreate) SetStatus(v busmessage.Status) *BusMessageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BusMessageCreate) SetNillableStatus(v *busmessage.Status) *BusMessageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *BusMessageCreate) SetAttempts(v int) *BusMessageCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *BusMessageCreate) SetNillableAttempts(v *int) *BusMessageCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetAvailableAt sets the "available_at" field.
func (_c *BusMessageCreate) SetAvailableAt(v time.Time) *BusMessageCreate {
	_c.mutation.SetAvailableAt(v)
	return _c
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_c *BusMessageCreate) SetNillableAvailableAt(v *time.Time) *BusMessageCreate {
	if v != nil {
		_c.SetAvailableAt(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *BusMessageCreate) SetClaimedBy(v string) *BusMessageCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *BusMessageCreate) SetNillableClaimedBy(v *string) *BusMessageCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BusMessageCreate) SetCreatedAt(v time.Time) *BusMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BusMessageCreate) SetNillableCreatedAt(v *time.Time) *BusMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BusMessageCreate) SetID(v int64) *BusMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BusMessageMutation object of the builder.
func (_c *BusMessageCreate) Mutation() *BusMessageMutation {
	return _c.mutation
}

// Save creates the BusMessage in the database.
func (_c *BusMessageCreate) Save(ctx context.Context) (*BusMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusMessageCreate) SaveX(ctx context.Context) *BusMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusMessageCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := busmessage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := busmessage.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.AvailableAt(); !ok {
		v := busmessage.DefaultAvailableAt()
		_c.mutation.SetAvailableAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := busmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusMessageCreate) check() error {
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "BusMessage.topic"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "BusMessage.payload"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BusMessage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := busmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BusMessage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "BusMessage.attempts"`)}
	}
	if _, ok := _c.mutation.AvailableAt(); !ok {
		return &ValidationError{Name: "available_at", err: errors.New(`ent: missing required field "BusMessage.available_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BusMessage.created_at"`)}
	}
	return nil
}

func (_c *BusMessageCreate) sqlSave(ctx context.Context) (*BusMessage, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BusMessageCreate) createSpec() (*BusMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &BusMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(busmessage.Table, sqlgraph.NewFieldSpec(busmessage.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(busmessage.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(busmessage.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(busmessage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(busmessage.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.AvailableAt(); ok {
		_spec.SetField(busmessage.FieldAvailableAt, field.TypeTime, value)
		_node.AvailableAt = value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(busmessage.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(busmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BusMessageCreateBulk is the builder for creating many BusMessage entities in bulk.
type BusMessageCreateBulk struct {
	config
	err      error
	builders []*BusMessageCreate
}

// Save creates the BusMessage entities in the database.
func (_c *BusMessageCreateBulk) Save(ctx context.Context) ([]*BusMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BusMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusMessageMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
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
func (_c *BusMessageCreateBulk) SaveX(ctx context.Context) []*BusMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

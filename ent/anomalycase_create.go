// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/anomalycase"
)

// AnomalyCaseCreate is the builder for creating a AnomalyCase entity.
type AnomalyCaseCreate struct {
	config
	mutation *AnomalyCaseMutation
	hooks    []Hook
}

// SetVehicleID sets the "vehicle_id" field.
func (_c *AnomalyCaseCreate) SetVehicleID(v string) *AnomalyCaseCreate {
	_c.mutation.SetVehicleID(v)
	return _c
}

// SetAnomalyDetected sets the "anomaly_detected" field.
func (_c *AnomalyCaseCreate) SetAnomalyDetected(v bool) *AnomalyCaseCreate {
	_c.mutation.SetAnomalyDetected(v)
	return _c
}

// SetNillableAnomalyDetected sets the "anomaly_detected" field if the given value is not nil.
func (_c *AnomalyCaseCreate) SetNillableAnomalyDetected(v *bool) *AnomalyCaseCreate {
	if v != nil {
		_c.SetAnomalyDetected(*v)
	}
	return _c
}

// SetAnomalyType sets the "anomaly_type" field.
func (_c *AnomalyCaseCreate) SetAnomalyType(v anomalycase.AnomalyType) *AnomalyCaseCreate {
	_c.mutation.SetAnomalyType(v)
	return _c
}

// SetNillableAnomalyType sets the "anomaly_type" field if the given value is not nil.
func (_c *AnomalyCaseCreate) SetNillableAnomalyType(v *anomalycase.AnomalyType) *AnomalyCaseCreate {
	if v != nil {
		_c.SetAnomalyType(*v)
	}
	return _c
}

// SetSeverityScore sets the "severity_score" field.
func (_c *AnomalyCaseCreate) SetSeverityScore(v float64) *AnomalyCaseCreate {
	_c.mutation.SetSeverityScore(v)
	return _c
}

// SetNillableSeverityScore sets the "severity_score" field if the given value is not nil.
func (_c *AnomalyCaseCreate) SetNillableSeverityScore(v *float64) *AnomalyCaseCreate {
	if v != nil {
		_c.SetSeverityScore(*v)
	}
	return _c
}

// SetTelemetryEventIds sets the "telemetry_event_ids" field.
func (_c *AnomalyCaseCreate) SetTelemetryEventIds(v []string) *AnomalyCaseCreate {
	_c.mutation.SetTelemetryEventIds(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnomalyCaseCreate) SetStatus(v anomalycase.Status) *AnomalyCaseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnomalyCaseCreate) SetNillableStatus(v *anomalycase.Status) *AnomalyCaseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnomalyCaseCreate) SetCreatedAt(v time.Time) *AnomalyCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnomalyCaseCreate) SetNillableCreatedAt(v *time.Time) *AnomalyCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnomalyCaseCreate) SetID(v string) *AnomalyCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AnomalyCaseMutation object of the builder.
func (_c *AnomalyCaseCreate) Mutation() *AnomalyCaseMutation {
	return _c.mutation
}

// Save creates the AnomalyCase in the database.
func (_c *AnomalyCaseCreate) Save(ctx context.Context) (*AnomalyCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnomalyCaseCreate) SaveX(ctx context.Context) *AnomalyCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnomalyCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnomalyCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnomalyCaseCreate) defaults() {
	if _, ok := _c.mutation.AnomalyDetected(); !ok {
		v := anomalycase.DefaultAnomalyDetected
		_c.mutation.SetAnomalyDetected(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := anomalycase.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := anomalycase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnomalyCaseCreate) check() error {
	if _, ok := _c.mutation.VehicleID(); !ok {
		return &ValidationError{Name: "vehicle_id", err: errors.New(`ent: missing required field "AnomalyCase.vehicle_id"`)}
	}
	if _, ok := _c.mutation.AnomalyDetected(); !ok {
		return &ValidationError{Name: "anomaly_detected", err: errors.New(`ent: missing required field "AnomalyCase.anomaly_detected"`)}
	}
	if v, ok := _c.mutation.AnomalyType(); ok {
		if err := anomalycase.AnomalyTypeValidator(v); err != nil {
			return &ValidationError{Name: "anomaly_type", err: fmt.Errorf(`ent: validator failed for field "AnomalyCase.anomaly_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnomalyCase.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := anomalycase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnomalyCase.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnomalyCase.created_at"`)}
	}
	return nil
}

func (_c *AnomalyCaseCreate) sqlSave(ctx context.Context) (*AnomalyCase, error) {
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
			return nil, fmt.Errorf("unexpected AnomalyCase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnomalyCaseCreate) createSpec() (*AnomalyCase, *sqlgraph.CreateSpec) {
	var (
		_node = &AnomalyCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(anomalycase.Table, sqlgraph.NewFieldSpec(anomalycase.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.VehicleID(); ok {
		_spec.SetField(anomalycase.FieldVehicleID, field.TypeString, value)
		_node.VehicleID = value
	}
	if value, ok := _c.mutation.AnomalyDetected(); ok {
		_spec.SetField(anomalycase.FieldAnomalyDetected, field.TypeBool, value)
		_node.AnomalyDetected = value
	}
	if value, ok := _c.mutation.AnomalyType(); ok {
		_spec.SetField(anomalycase.FieldAnomalyType, field.TypeEnum, value)
		_node.AnomalyType = &value
	}
	if value, ok := _c.mutation.SeverityScore(); ok {
		_spec.SetField(anomalycase.FieldSeverityScore, field.TypeFloat64, value)
		_node.SeverityScore = &value
	}
	if value, ok := _c.mutation.TelemetryEventIds(); ok {
		_spec.SetField(anomalycase.FieldTelemetryEventIds, field.TypeJSON, value)
		_node.TelemetryEventIds = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(anomalycase.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(anomalycase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AnomalyCaseCreateBulk is the builder for creating many AnomalyCase entities in bulk.
type AnomalyCaseCreateBulk struct {
	config
	err      error
	builders []*AnomalyCaseCreate
}

// Save creates the AnomalyCase entities in the database.
func (_c *AnomalyCaseCreateBulk) Save(ctx context.Context) ([]*AnomalyCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnomalyCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnomalyCaseMutation)
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
func (_c *AnomalyCaseCreateBulk) SaveX(ctx context.Context) []*AnomalyCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnomalyCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnomalyCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

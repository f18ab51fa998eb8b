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
	"github.com/fleetsense/fleetsense/ent/anomalycase"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// AnomalyCaseUpdate is the builder for updating AnomalyCase entities.
type AnomalyCaseUpdate struct {
	config
	hooks    []Hook
	mutation *AnomalyCaseMutation
}

// Where appends a list predicates to the AnomalyCaseUpdate builder.
func (_u *AnomalyCaseUpdate) Where(ps ...predicate.AnomalyCase) *AnomalyCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *AnomalyCaseUpdate) SetVehicleID(v string) *AnomalyCaseUpdate {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *AnomalyCaseUpdate) SetNillableVehicleID(v *string) *AnomalyCaseUpdate {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetAnomalyDetected sets the "anomaly_detected" field.
func (_u *AnomalyCaseUpdate) SetAnomalyDetected(v bool) *AnomalyCaseUpdate {
	_u.mutation.SetAnomalyDetected(v)
	return _u
}

// SetNillableAnomalyDetected sets the "anomaly_detected" field if the given value is not nil.
func (_u *AnomalyCaseUpdate) SetNillableAnomalyDetected(v *bool) *AnomalyCaseUpdate {
	if v != nil {
		_u.SetAnomalyDetected(*v)
	}
	return _u
}

// SetAnomalyType sets the "anomaly_type" field.
func (_u *AnomalyCaseUpdate) SetAnomalyType(v anomalycase.AnomalyType) *AnomalyCaseUpdate {
	_u.mutation.SetAnomalyType(v)
	return _u
}

// SetNillableAnomalyType sets the "anomaly_type" field if the given value is not nil.
func (_u *AnomalyCaseUpdate) SetNillableAnomalyType(v *anomalycase.AnomalyType) *AnomalyCaseUpdate {
	if v != nil {
		_u.SetAnomalyType(*v)
	}
	return _u
}

// ClearAnomalyType clears the value of the "anomaly_type" field.
func (_u *AnomalyCaseUpdate) ClearAnomalyType() *AnomalyCaseUpdate {
	_u.mutation.ClearAnomalyType()
	return _u
}

// SetSeverityScore sets the "severity_score" field.
func (_u *AnomalyCaseUpdate) SetSeverityScore(v float64) *AnomalyCaseUpdate {
	_u.mutation.ResetSeverityScore()
	_u.mutation.SetSeverityScore(v)
	return _u
}

// SetNillableSeverityScore sets the "severity_score" field if the given value is not nil.
func (_u *AnomalyCaseUpdate) SetNillableSeverityScore(v *float64) *AnomalyCaseUpdate {
	if v != nil {
		_u.SetSeverityScore(*v)
	}
	return _u
}

// AddSeverityScore adds value to the "severity_score" field.
func (_u *AnomalyCaseUpdate) AddSeverityScore(v float64) *AnomalyCaseUpdate {
	_u.mutation.AddSeverityScore(v)
	return _u
}

// ClearSeverityScore clears the value of the "severity_score" field.
func (_u *AnomalyCaseUpdate) ClearSeverityScore() *AnomalyCaseUpdate {
	_u.mutation.ClearSeverityScore()
	return _u
}

// SetTelemetryEventIds sets the "telemetry_event_ids" field.
func (_u *AnomalyCaseUpdate) SetTelemetryEventIds(v []string) *AnomalyCaseUpdate {
	_u.mutation.SetTelemetryEventIds(v)
	return _u
}

// AppendTelemetryEventIds appends value to the "telemetry_event_ids" field.
func (_u *AnomalyCaseUpdate) AppendTelemetryEventIds(v []string) *AnomalyCaseUpdate {
	_u.mutation.AppendTelemetryEventIds(v)
	return _u
}

// ClearTelemetryEventIds clears the value of the "telemetry_event_ids" field.
func (_u *AnomalyCaseUpdate) ClearTelemetryEventIds() *AnomalyCaseUpdate {
	_u.mutation.ClearTelemetryEventIds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnomalyCaseUpdate) SetStatus(v anomalycase.Status) *AnomalyCaseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnomalyCaseUpdate) SetNillableStatus(v *anomalycase.Status) *AnomalyCaseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the AnomalyCaseMutation object of the builder.
func (_u *AnomalyCaseUpdate) Mutation() *AnomalyCaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnomalyCaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnomalyCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnomalyCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnomalyCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnomalyCaseUpdate) check() error {
	if v, ok := _u.mutation.AnomalyType(); ok {
		if err := anomalycase.AnomalyTypeValidator(v); err != nil {
			return &ValidationError{Name: "anomaly_type", err: fmt.Errorf(`ent: validator failed for field "AnomalyCase.anomaly_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := anomalycase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnomalyCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AnomalyCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(anomalycase.Table, anomalycase.Columns, sqlgraph.NewFieldSpec(anomalycase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(anomalycase.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnomalyDetected(); ok {
		_spec.SetField(anomalycase.FieldAnomalyDetected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AnomalyType(); ok {
		_spec.SetField(anomalycase.FieldAnomalyType, field.TypeEnum, value)
	}
	if _u.mutation.AnomalyTypeCleared() {
		_spec.ClearField(anomalycase.FieldAnomalyType, field.TypeEnum)
	}
	if value, ok := _u.mutation.SeverityScore(); ok {
		_spec.SetField(anomalycase.FieldSeverityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverityScore(); ok {
		_spec.AddField(anomalycase.FieldSeverityScore, field.TypeFloat64, value)
	}
	if _u.mutation.SeverityScoreCleared() {
		_spec.ClearField(anomalycase.FieldSeverityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TelemetryEventIds(); ok {
		_spec.SetField(anomalycase.FieldTelemetryEventIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTelemetryEventIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, anomalycase.FieldTelemetryEventIds, value)
		})
	}
	if _u.mutation.TelemetryEventIdsCleared() {
		_spec.ClearField(anomalycase.FieldTelemetryEventIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(anomalycase.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{anomalycase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnomalyCaseUpdateOne is the builder for updating a single AnomalyCase entity.
type AnomalyCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnomalyCaseMutation
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *AnomalyCaseUpdateOne) SetVehicleID(v string) *AnomalyCaseUpdateOne {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *AnomalyCaseUpdateOne) SetNillableVehicleID(v *string) *AnomalyCaseUpdateOne {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetAnomalyDetected sets the "anomaly_detected" field.
func (_u *AnomalyCaseUpdateOne) SetAnomalyDetected(v bool) *AnomalyCaseUpdateOne {
	_u.mutation.SetAnomalyDetected(v)
	return _u
}

// SetNillableAnomalyDetected sets the "anomaly_detected" field if the given value is not nil.
func (_u *AnomalyCaseUpdateOne) SetNillableAnomalyDetected(v *bool) *AnomalyCaseUpdateOne {
	if v != nil {
		_u.SetAnomalyDetected(*v)
	}
	return _u
}

// SetAnomalyType sets the "anomaly_type" field.
func (_u *AnomalyCaseUpdateOne) SetAnomalyType(v anomalycase.AnomalyType) *AnomalyCaseUpdateOne {
	_u.mutation.SetAnomalyType(v)
	return _u
}

// SetNillableAnomalyType sets the "anomaly_type" field if the given value is not nil.
func (_u *AnomalyCaseUpdateOne) SetNillableAnomalyType(v *anomalycase.AnomalyType) *AnomalyCaseUpdateOne {
	if v != nil {
		_u.SetAnomalyType(*v)
	}
	return _u
}

// ClearAnomalyType clears the value of the "anomaly_type" field.
func (_u *AnomalyCaseUpdateOne) ClearAnomalyType() *AnomalyCaseUpdateOne {
	_u.mutation.ClearAnomalyType()
	return _u
}

// SetSeverityScore sets the "severity_score" field.
func (_u *AnomalyCaseUpdateOne) SetSeverityScore(v float64) *AnomalyCaseUpdateOne {
	_u.mutation.ResetSeverityScore()
	_u.mutation.SetSeverityScore(v)
	return _u
}

// SetNillableSeverityScore sets the "severity_score" field if the given value is not nil.
func (_u *AnomalyCaseUpdateOne) SetNillableSeverityScore(v *float64) *AnomalyCaseUpdateOne {
	if v != nil {
		_u.SetSeverityScore(*v)
	}
	return _u
}

// AddSeverityScore adds value to the "severity_score" field.
func (_u *AnomalyCaseUpdateOne) AddSeverityScore(v float64) *AnomalyCaseUpdateOne {
	_u.mutation.AddSeverityScore(v)
	return _u
}

// ClearSeverityScore clears the value of the "severity_score" field.
func (_u *AnomalyCaseUpdateOne) ClearSeverityScore() *AnomalyCaseUpdateOne {
	_u.mutation.ClearSeverityScore()
	return _u
}

// SetTelemetryEventIds sets the "telemetry_event_ids" field.
func (_u *AnomalyCaseUpdateOne) SetTelemetryEventIds(v []string) *AnomalyCaseUpdateOne {
	_u.mutation.SetTelemetryEventIds(v)
	return _u
}

// AppendTelemetryEventIds appends value to the "telemetry_event_ids" field.
func (_u *AnomalyCaseUpdateOne) AppendTelemetryEventIds(v []string) *AnomalyCaseUpdateOne {
	_u.mutation.AppendTelemetryEventIds(v)
	return _u
}

// ClearTelemetryEventIds clears the value of the "telemetry_event_ids" field.
func (_u *AnomalyCaseUpdateOne) ClearTelemetryEventIds() *AnomalyCaseUpdateOne {
	_u.mutation.ClearTelemetryEventIds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnomalyCaseUpdateOne) SetStatus(v anomalycase.Status) *AnomalyCaseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnomalyCaseUpdateOne) SetNillableStatus(v *anomalycase.Status) *AnomalyCaseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the AnomalyCaseMutation object of the builder.
func (_u *AnomalyCaseUpdateOne) Mutation() *AnomalyCaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnomalyCaseUpdate builder.
func (_u *AnomalyCaseUpdateOne) Where(ps ...predicate.AnomalyCase) *AnomalyCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnomalyCaseUpdateOne) Select(field string, fields ...string) *AnomalyCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnomalyCase entity.
func (_u *AnomalyCaseUpdateOne) Save(ctx context.Context) (*AnomalyCase, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnomalyCaseUpdateOne) SaveX(ctx context.Context) *AnomalyCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnomalyCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnomalyCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnomalyCaseUpdateOne) check() error {
	if v, ok := _u.mutation.AnomalyType(); ok {
		if err := anomalycase.AnomalyTypeValidator(v); err != nil {
			return &ValidationError{Name: "anomaly_type", err: fmt.Errorf(`ent: validator failed for field "AnomalyCase.anomaly_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := anomalycase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnomalyCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AnomalyCaseUpdateOne) sqlSave(ctx context.Context) (_node *AnomalyCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(anomalycase.Table, anomalycase.Columns, sqlgraph.NewFieldSpec(anomalycase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnomalyCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, anomalycase.FieldID)
		for _, f := range fields {
			if !anomalycase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != anomalycase.FieldID {
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
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(anomalycase.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnomalyDetected(); ok {
		_spec.SetField(anomalycase.FieldAnomalyDetected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AnomalyType(); ok {
		_spec.SetField(anomalycase.FieldAnomalyType, field.TypeEnum, value)
	}
	if _u.mutation.AnomalyTypeCleared() {
		_spec.ClearField(anomalycase.FieldAnomalyType, field.TypeEnum)
	}
	if value, ok := _u.mutation.SeverityScore(); ok {
		_spec.SetField(anomalycase.FieldSeverityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverityScore(); ok {
		_spec.AddField(anomalycase.FieldSeverityScore, field.TypeFloat64, value)
	}
	if _u.mutation.SeverityScoreCleared() {
		_spec.ClearField(anomalycase.FieldSeverityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TelemetryEventIds(); ok {
		_spec.SetField(anomalycase.FieldTelemetryEventIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTelemetryEventIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, anomalycase.FieldTelemetryEventIds, value)
		})
	}
	if _u.mutation.TelemetryEventIdsCleared() {
		_spec.ClearField(anomalycase.FieldTelemetryEventIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(anomalycase.FieldStatus, field.TypeEnum, value)
	}
	_node = &AnomalyCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{anomalycase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

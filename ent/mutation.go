// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/anomalycase"
	"github.com/fleetsense/fleetsense/ent/booking"
	"github.com/fleetsense/fleetsense/ent/busmessage"
	"github.com/fleetsense/fleetsense/ent/callcontext"
	"github.com/fleetsense/fleetsense/ent/communicationcase"
	"github.com/fleetsense/fleetsense/ent/diagnosiscase"
	"github.com/fleetsense/fleetsense/ent/engagementcase"
	"github.com/fleetsense/fleetsense/ent/feedbackcase"
	"github.com/fleetsense/fleetsense/ent/humanreview"
	"github.com/fleetsense/fleetsense/ent/manufacturingcase"
	"github.com/fleetsense/fleetsense/ent/pipelinestate"
	"github.com/fleetsense/fleetsense/ent/predicate"
	"github.com/fleetsense/fleetsense/ent/rcacase"
	"github.com/fleetsense/fleetsense/ent/schedulingcase"
	"github.com/fleetsense/fleetsense/ent/telemetryevent"
	"github.com/fleetsense/fleetsense/ent/vehicle"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnomalyCase       = "AnomalyCase"
	TypeBooking           = "Booking"
	TypeBusMessage        = "BusMessage"
	TypeCallContext       = "CallContext"
	TypeCommunicationCase = "CommunicationCase"
	TypeDiagnosisCase     = "DiagnosisCase"
	TypeEngagementCase    = "EngagementCase"
	TypeFeedbackCase      = "FeedbackCase"
	TypeHumanReview       = "HumanReview"
	TypeManufacturingCase = "ManufacturingCase"
	TypePipelineState     = "PipelineState"
	TypeRcaCase           = "RcaCase"
	TypeSchedulingCase    = "SchedulingCase"
	TypeTelemetryEvent    = "TelemetryEvent"
	TypeVehicle           = "Vehicle"
)

// AnomalyCaseMutation represents an operation that mutates the AnomalyCase nodes in the graph.
type AnomalyCaseMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	vehicle_id                *string
	anomaly_detected          *bool
	anomaly_type              *anomalycase.AnomalyType
	severity_score            *float64
	addseverity_score         *float64
	telemetry_event_ids       *[]string
	appendtelemetry_event_ids []string
	status                    *anomalycase.Status
	created_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*AnomalyCase, error)
	predicates                []predicate.AnomalyCase
}

var _ ent.Mutation = (*AnomalyCaseMutation)(nil)

// anomalycaseOption allows management of the mutation configuration using functional options.
type anomalycaseOption func(*AnomalyCaseMutation)

// newAnomalyCaseMutation creates new mutation for the AnomalyCase entity.
func newAnomalyCaseMutation(c config, op Op, opts ...anomalycaseOption) *AnomalyCaseMutation {
	m := &AnomalyCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeAnomalyCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnomalyCaseID sets the ID field of the mutation.
func withAnomalyCaseID(id string) anomalycaseOption {
	return func(m *AnomalyCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *AnomalyCase
		)
		m.oldValue = func(ctx context.Context) (*AnomalyCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnomalyCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnomalyCase sets the old AnomalyCase of the mutation.
func withAnomalyCase(node *AnomalyCase) anomalycaseOption {
	return func(m *AnomalyCaseMutation) {
		m.oldValue = func(context.Context) (*AnomalyCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnomalyCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnomalyCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnomalyCase entities.
func (m *AnomalyCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnomalyCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnomalyCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnomalyCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVehicleID sets the "vehicle_id" field.
func (m *AnomalyCaseMutation) SetVehicleID(s string) {
	m.vehicle_id = &s
}

// VehicleID returns the value of the "vehicle_id" field in the mutation.
func (m *AnomalyCaseMutation) VehicleID() (r string, exists bool) {
	v := m.vehicle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleID returns the old "vehicle_id" field's value of the AnomalyCase entity.
// If the AnomalyCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyCaseMutation) OldVehicleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleID: %w", err)
	}
	return oldValue.VehicleID, nil
}

// ResetVehicleID resets all changes to the "vehicle_id" field.
func (m *AnomalyCaseMutation) ResetVehicleID() {
	m.vehicle_id = nil
}

// SetAnomalyDetected sets the "anomaly_detected" field.
func (m *AnomalyCaseMutation) SetAnomalyDetected(b bool) {
	m.anomaly_detected = &b
}

// AnomalyDetected returns the value of the "anomaly_detected" field in the mutation.
func (m *AnomalyCaseMutation) AnomalyDetected() (r bool, exists bool) {
	v := m.anomaly_detected
	if v == nil {
		return
	}
	return *v, true
}

// OldAnomalyDetected returns the old "anomaly_detected" field's value of the AnomalyCase entity.
// If the AnomalyCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyCaseMutation) OldAnomalyDetected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnomalyDetected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnomalyDetected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnomalyDetected: %w", err)
	}
	return oldValue.AnomalyDetected, nil
}

// ResetAnomalyDetected resets all changes to the "anomaly_detected" field.
func (m *AnomalyCaseMutation) ResetAnomalyDetected() {
	m.anomaly_detected = nil
}

// SetAnomalyType sets the "anomaly_type" field.
func (m *AnomalyCaseMutation) SetAnomalyType(at anomalycase.AnomalyType) {
	m.anomaly_type = &at
}

// AnomalyType returns the value of the "anomaly_type" field in the mutation.
func (m *AnomalyCaseMutation) AnomalyType() (r anomalycase.AnomalyType, exists bool) {
	v := m.anomaly_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAnomalyType returns the old "anomaly_type" field's value of the AnomalyCase entity.
// If the AnomalyCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyCaseMutation) OldAnomalyType(ctx context.Context) (v *anomalycase.AnomalyType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnomalyType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnomalyType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnomalyType: %w", err)
	}
	return oldValue.AnomalyType, nil
}

// ClearAnomalyType clears the value of the "anomaly_type" field.
func (m *AnomalyCaseMutation) ClearAnomalyType() {
	m.anomaly_type = nil
	m.clearedFields[anomalycase.FieldAnomalyType] = struct{}{}
}

// AnomalyTypeCleared returns if the "anomaly_type" field was cleared in this mutation.
func (m *AnomalyCaseMutation) AnomalyTypeCleared() bool {
	_, ok := m.clearedFields[anomalycase.FieldAnomalyType]
	return ok
}

// ResetAnomalyType resets all changes to the "anomaly_type" field.
func (m *AnomalyCaseMutation) ResetAnomalyType() {
	m.anomaly_type = nil
	delete(m.clearedFields, anomalycase.FieldAnomalyType)
}

// SetSeverityScore sets the "severity_score" field.
func (m *AnomalyCaseMutation) SetSeverityScore(f float64) {
	m.severity_score = &f
	m.addseverity_score = nil
}

// SeverityScore returns the value of the "severity_score" field in the mutation.
func (m *AnomalyCaseMutation) SeverityScore() (r float64, exists bool) {
	v := m.severity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverityScore returns the old "severity_score" field's value of the AnomalyCase entity.
// If the AnomalyCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyCaseMutation) OldSeverityScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverityScore: %w", err)
	}
	return oldValue.SeverityScore, nil
}

// AddSeverityScore adds f to the "severity_score" field.
func (m *AnomalyCaseMutation) AddSeverityScore(f float64) {
	if m.addseverity_score != nil {
		*m.addseverity_score += f
	} else {
		m.addseverity_score = &f
	}
}

// AddedSeverityScore returns the value that was added to the "severity_score" field in this mutation.
func (m *AnomalyCaseMutation) AddedSeverityScore() (r float64, exists bool) {
	v := m.addseverity_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearSeverityScore clears the value of the "severity_score" field.
func (m *AnomalyCaseMutation) ClearSeverityScore() {
	m.severity_score = nil
	m.addseverity_score = nil
	m.clearedFields[anomalycase.FieldSeverityScore] = struct{}{}
}

// SeverityScoreCleared returns if the "severity_score" field was cleared in this mutation.
func (m *AnomalyCaseMutation) SeverityScoreCleared() bool {
	_, ok := m.clearedFields[anomalycase.FieldSeverityScore]
	return ok
}

// ResetSeverityScore resets all changes to the "severity_score" field.
func (m *AnomalyCaseMutation) ResetSeverityScore() {
	m.severity_score = nil
	m.addseverity_score = nil
	delete(m.clearedFields, anomalycase.FieldSeverityScore)
}

// SetTelemetryEventIds sets the "telemetry_event_ids" field.
func (m *AnomalyCaseMutation) SetTelemetryEventIds(s []string) {
	m.telemetry_event_ids = &s
	m.appendtelemetry_event_ids = nil
}

// TelemetryEventIds returns the value of the "telemetry_event_ids" field in the mutation.
func (m *AnomalyCaseMutation) TelemetryEventIds() (r []string, exists bool) {
	v := m.telemetry_event_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldTelemetryEventIds returns the old "telemetry_event_ids" field's value of the AnomalyCase entity.
// If the AnomalyCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyCaseMutation) OldTelemetryEventIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelemetryEventIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelemetryEventIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelemetryEventIds: %w", err)
	}
	return oldValue.TelemetryEventIds, nil
}

// AppendTelemetryEventIds adds s to the "telemetry_event_ids" field.
func (m *AnomalyCaseMutation) AppendTelemetryEventIds(s []string) {
	m.appendtelemetry_event_ids = append(m.appendtelemetry_event_ids, s...)
}

// AppendedTelemetryEventIds returns the list of values that were appended to the "telemetry_event_ids" field in this mutation.
func (m *AnomalyCaseMutation) AppendedTelemetryEventIds() ([]string, bool) {
	if len(m.appendtelemetry_event_ids) == 0 {
		return nil, false
	}
	return m.appendtelemetry_event_ids, true
}

// ClearTelemetryEventIds clears the value of the "telemetry_event_ids" field.
func (m *AnomalyCaseMutation) ClearTelemetryEventIds() {
	m.telemetry_event_ids = nil
	m.appendtelemetry_event_ids = nil
	m.clearedFields[anomalycase.FieldTelemetryEventIds] = struct{}{}
}

// TelemetryEventIdsCleared returns if the "telemetry_event_ids" field was cleared in this mutation.
func (m *AnomalyCaseMutation) TelemetryEventIdsCleared() bool {
	_, ok := m.clearedFields[anomalycase.FieldTelemetryEventIds]
	return ok
}

// ResetTelemetryEventIds resets all changes to the "telemetry_event_ids" field.
func (m *AnomalyCaseMutation) ResetTelemetryEventIds() {
	m.telemetry_event_ids = nil
	m.appendtelemetry_event_ids = nil
	delete(m.clearedFields, anomalycase.FieldTelemetryEventIds)
}

// SetStatus sets the "status" field.
func (m *AnomalyCaseMutation) SetStatus(a anomalycase.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AnomalyCaseMutation) Status() (r anomalycase.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnomalyCase entity.
// If the AnomalyCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyCaseMutation) OldStatus(ctx context.Context) (v anomalycase.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnomalyCaseMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnomalyCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnomalyCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnomalyCase entity.
// If the AnomalyCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnomalyCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AnomalyCaseMutation builder.
func (m *AnomalyCaseMutation) Where(ps ...predicate.AnomalyCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnomalyCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnomalyCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnomalyCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnomalyCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnomalyCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnomalyCase).
func (m *AnomalyCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnomalyCaseMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.vehicle_id != nil {
		fields = append(fields, anomalycase.FieldVehicleID)
	}
	if m.anomaly_detected != nil {
		fields = append(fields, anomalycase.FieldAnomalyDetected)
	}
	if m.anomaly_type != nil {
		fields = append(fields, anomalycase.FieldAnomalyType)
	}
	if m.severity_score != nil {
		fields = append(fields, anomalycase.FieldSeverityScore)
	}
	if m.telemetry_event_ids != nil {
		fields = append(fields, anomalycase.FieldTelemetryEventIds)
	}
	if m.status != nil {
		fields = append(fields, anomalycase.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, anomalycase.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnomalyCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case anomalycase.FieldVehicleID:
		return m.VehicleID()
	case anomalycase.FieldAnomalyDetected:
		return m.AnomalyDetected()
	case anomalycase.FieldAnomalyType:
		return m.AnomalyType()
	case anomalycase.FieldSeverityScore:
		return m.SeverityScore()
	case anomalycase.FieldTelemetryEventIds:
		return m.TelemetryEventIds()
	case anomalycase.FieldStatus:
		return m.Status()
	case anomalycase.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnomalyCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case anomalycase.FieldVehicleID:
		return m.OldVehicleID(ctx)
	case anomalycase.FieldAnomalyDetected:
		return m.OldAnomalyDetected(ctx)
	case anomalycase.FieldAnomalyType:
		return m.OldAnomalyType(ctx)
	case anomalycase.FieldSeverityScore:
		return m.OldSeverityScore(ctx)
	case anomalycase.FieldTelemetryEventIds:
		return m.OldTelemetryEventIds(ctx)
	case anomalycase.FieldStatus:
		return m.OldStatus(ctx)
	case anomalycase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnomalyCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnomalyCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case anomalycase.FieldVehicleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleID(v)
		return nil
	case anomalycase.FieldAnomalyDetected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnomalyDetected(v)
		return nil
	case anomalycase.FieldAnomalyType:
		v, ok := value.(anomalycase.AnomalyType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnomalyType(v)
		return nil
	case anomalycase.FieldSeverityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverityScore(v)
		return nil
	case anomalycase.FieldTelemetryEventIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelemetryEventIds(v)
		return nil
	case anomalycase.FieldStatus:
		v, ok := value.(anomalycase.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case anomalycase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnomalyCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnomalyCaseMutation) AddedFields() []string {
	var fields []string
	if m.addseverity_score != nil {
		fields = append(fields, anomalycase.FieldSeverityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnomalyCaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case anomalycase.FieldSeverityScore:
		return m.AddedSeverityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnomalyCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case anomalycase.FieldSeverityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeverityScore(v)
		return nil
	}
	return fmt.Errorf("unknown AnomalyCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnomalyCaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(anomalycase.FieldAnomalyType) {
		fields = append(fields, anomalycase.FieldAnomalyType)
	}
	if m.FieldCleared(anomalycase.FieldSeverityScore) {
		fields = append(fields, anomalycase.FieldSeverityScore)
	}
	if m.FieldCleared(anomalycase.FieldTelemetryEventIds) {
		fields = append(fields, anomalycase.FieldTelemetryEventIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnomalyCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnomalyCaseMutation) ClearField(name string) error {
	switch name {
	case anomalycase.FieldAnomalyType:
		m.ClearAnomalyType()
		return nil
	case anomalycase.FieldSeverityScore:
		m.ClearSeverityScore()
		return nil
	case anomalycase.FieldTelemetryEventIds:
		m.ClearTelemetryEventIds()
		return nil
	}
	return fmt.Errorf("unknown AnomalyCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnomalyCaseMutation) ResetField(name string) error {
	switch name {
	case anomalycase.FieldVehicleID:
		m.ResetVehicleID()
		return nil
	case anomalycase.FieldAnomalyDetected:
		m.ResetAnomalyDetected()
		return nil
	case anomalycase.FieldAnomalyType:
		m.ResetAnomalyType()
		return nil
	case anomalycase.FieldSeverityScore:
		m.ResetSeverityScore()
		return nil
	case anomalycase.FieldTelemetryEventIds:
		m.ResetTelemetryEventIds()
		return nil
	case anomalycase.FieldStatus:
		m.ResetStatus()
		return nil
	case anomalycase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnomalyCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnomalyCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnomalyCaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnomalyCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnomalyCaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnomalyCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnomalyCaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnomalyCaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnomalyCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnomalyCaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnomalyCase edge %s", name)
}

// BookingMutation represents an operation that mutates the Booking nodes in the graph.
type BookingMutation struct {
	config
	op             Op
	typ            string
	id             *string
	case_id        *string
	vehicle_id     *string
	service_center *string
	scheduled_slot *time.Time
	status         *booking.Status
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Booking, error)
	predicates     []predicate.Booking
}

var _ ent.Mutation = (*BookingMutation)(nil)

// bookingOption allows management of the mutation configuration using functional options.
type bookingOption func(*BookingMutation)

// newBookingMutation creates new mutation for the Booking entity.
func newBookingMutation(c config, op Op, opts ...bookingOption) *BookingMutation {
	m := &BookingMutation{
		config:        c,
		op:            op,
		typ:           TypeBooking,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBookingID sets the ID field of the mutation.
func withBookingID(id string) bookingOption {
	return func(m *BookingMutation) {
		var (
			err   error
			once  sync.Once
			value *Booking
		)
		m.oldValue = func(ctx context.Context) (*Booking, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Booking.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBooking sets the old Booking of the mutation.
func withBooking(node *Booking) bookingOption {
	return func(m *BookingMutation) {
		m.oldValue = func(context.Context) (*Booking, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BookingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BookingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Booking entities.
func (m *BookingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BookingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BookingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Booking.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *BookingMutation) SetCaseID(s string) {
	m.case_id = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *BookingMutation) CaseID() (r string, exists bool) {
	v := m.case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *BookingMutation) ResetCaseID() {
	m.case_id = nil
}

// SetVehicleID sets the "vehicle_id" field.
func (m *BookingMutation) SetVehicleID(s string) {
	m.vehicle_id = &s
}

// VehicleID returns the value of the "vehicle_id" field in the mutation.
func (m *BookingMutation) VehicleID() (r string, exists bool) {
	v := m.vehicle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleID returns the old "vehicle_id" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldVehicleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleID: %w", err)
	}
	return oldValue.VehicleID, nil
}

// ResetVehicleID resets all changes to the "vehicle_id" field.
func (m *BookingMutation) ResetVehicleID() {
	m.vehicle_id = nil
}

// SetServiceCenter sets the "service_center" field.
func (m *BookingMutation) SetServiceCenter(s string) {
	m.service_center = &s
}

// ServiceCenter returns the value of the "service_center" field in the mutation.
func (m *BookingMutation) ServiceCenter() (r string, exists bool) {
	v := m.service_center
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceCenter returns the old "service_center" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldServiceCenter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceCenter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceCenter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceCenter: %w", err)
	}
	return oldValue.ServiceCenter, nil
}

// ResetServiceCenter resets all changes to the "service_center" field.
func (m *BookingMutation) ResetServiceCenter() {
	m.service_center = nil
}

// SetScheduledSlot sets the "scheduled_slot" field.
func (m *BookingMutation) SetScheduledSlot(t time.Time) {
	m.scheduled_slot = &t
}

// ScheduledSlot returns the value of the "scheduled_slot" field in the mutation.
func (m *BookingMutation) ScheduledSlot() (r time.Time, exists bool) {
	v := m.scheduled_slot
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledSlot returns the old "scheduled_slot" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldScheduledSlot(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledSlot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledSlot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledSlot: %w", err)
	}
	return oldValue.ScheduledSlot, nil
}

// ResetScheduledSlot resets all changes to the "scheduled_slot" field.
func (m *BookingMutation) ResetScheduledSlot() {
	m.scheduled_slot = nil
}

// SetStatus sets the "status" field.
func (m *BookingMutation) SetStatus(b booking.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BookingMutation) Status() (r booking.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldStatus(ctx context.Context) (v booking.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BookingMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BookingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BookingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BookingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BookingMutation builder.
func (m *BookingMutation) Where(ps ...predicate.Booking) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BookingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BookingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Booking, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BookingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BookingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Booking).
func (m *BookingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BookingMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.case_id != nil {
		fields = append(fields, booking.FieldCaseID)
	}
	if m.vehicle_id != nil {
		fields = append(fields, booking.FieldVehicleID)
	}
	if m.service_center != nil {
		fields = append(fields, booking.FieldServiceCenter)
	}
	if m.scheduled_slot != nil {
		fields = append(fields, booking.FieldScheduledSlot)
	}
	if m.status != nil {
		fields = append(fields, booking.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, booking.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BookingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case booking.FieldCaseID:
		return m.CaseID()
	case booking.FieldVehicleID:
		return m.VehicleID()
	case booking.FieldServiceCenter:
		return m.ServiceCenter()
	case booking.FieldScheduledSlot:
		return m.ScheduledSlot()
	case booking.FieldStatus:
		return m.Status()
	case booking.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BookingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case booking.FieldCaseID:
		return m.OldCaseID(ctx)
	case booking.FieldVehicleID:
		return m.OldVehicleID(ctx)
	case booking.FieldServiceCenter:
		return m.OldServiceCenter(ctx)
	case booking.FieldScheduledSlot:
		return m.OldScheduledSlot(ctx)
	case booking.FieldStatus:
		return m.OldStatus(ctx)
	case booking.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Booking field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BookingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case booking.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case booking.FieldVehicleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleID(v)
		return nil
	case booking.FieldServiceCenter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceCenter(v)
		return nil
	case booking.FieldScheduledSlot:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledSlot(v)
		return nil
	case booking.FieldStatus:
		v, ok := value.(booking.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case booking.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Booking field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BookingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BookingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BookingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Booking numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BookingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BookingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BookingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Booking nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BookingMutation) ResetField(name string) error {
	switch name {
	case booking.FieldCaseID:
		m.ResetCaseID()
		return nil
	case booking.FieldVehicleID:
		m.ResetVehicleID()
		return nil
	case booking.FieldServiceCenter:
		m.ResetServiceCenter()
		return nil
	case booking.FieldScheduledSlot:
		m.ResetScheduledSlot()
		return nil
	case booking.FieldStatus:
		m.ResetStatus()
		return nil
	case booking.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Booking field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BookingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BookingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BookingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BookingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BookingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BookingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BookingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Booking unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BookingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Booking edge %s", name)
}

// BusMessageMutation represents an operation that mutates the BusMessage nodes in the graph.
type BusMessageMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	topic         *string
	payload       *map[string]interface{}
	status        *busmessage.Status
	attempts      *int
	addattempts   *int
	available_at  *time.Time
	claimed_by    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BusMessage, error)
	predicates    []predicate.BusMessage
}

var _ ent.Mutation = (*BusMessageMutation)(nil)

// busmessageOption allows management of the mutation configuration using functional options.
type busmessageOption func(*BusMessageMutation)

// newBusMessageMutation creates new mutation for the BusMessage entity.
func newBusMessageMutation(c config, op Op, opts ...busmessageOption) *BusMessageMutation {
	m := &BusMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeBusMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBusMessageID sets the ID field of the mutation.
func withBusMessageID(id int64) busmessageOption {
	return func(m *BusMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *BusMessage
		)
		m.oldValue = func(ctx context.Context) (*BusMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BusMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBusMessage sets the old BusMessage of the mutation.
func withBusMessage(node *BusMessage) busmessageOption {
	return func(m *BusMessageMutation) {
		m.oldValue = func(context.Context) (*BusMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BusMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BusMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BusMessage entities.
func (m *BusMessageMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BusMessageMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BusMessageMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BusMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopic sets the "topic" field.
func (m *BusMessageMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *BusMessageMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *BusMessageMutation) ResetTopic() {
	m.topic = nil
}

// SetPayload sets the "payload" field.
func (m *BusMessageMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *BusMessageMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *BusMessageMutation) ResetPayload() {
	m.payload = nil
}

// SetStatus sets the "status" field.
func (m *BusMessageMutation) SetStatus(b busmessage.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BusMessageMutation) Status() (r busmessage.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldStatus(ctx context.Context) (v busmessage.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BusMessageMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *BusMessageMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *BusMessageMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *BusMessageMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *BusMessageMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *BusMessageMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetAvailableAt sets the "available_at" field.
func (m *BusMessageMutation) SetAvailableAt(t time.Time) {
	m.available_at = &t
}

// AvailableAt returns the value of the "available_at" field in the mutation.
func (m *BusMessageMutation) AvailableAt() (r time.Time, exists bool) {
	v := m.available_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailableAt returns the old "available_at" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldAvailableAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailableAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailableAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailableAt: %w", err)
	}
	return oldValue.AvailableAt, nil
}

// ResetAvailableAt resets all changes to the "available_at" field.
func (m *BusMessageMutation) ResetAvailableAt() {
	m.available_at = nil
}

// SetClaimedBy sets the "claimed_by" field.
func (m *BusMessageMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *BusMessageMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *BusMessageMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[busmessage.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *BusMessageMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[busmessage.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *BusMessageMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, busmessage.FieldClaimedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *BusMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BusMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BusMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BusMessageMutation builder.
func (m *BusMessageMutation) Where(ps ...predicate.BusMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BusMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BusMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BusMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BusMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BusMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BusMessage).
func (m *BusMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BusMessageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.topic != nil {
		fields = append(fields, busmessage.FieldTopic)
	}
	if m.payload != nil {
		fields = append(fields, busmessage.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, busmessage.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, busmessage.FieldAttempts)
	}
	if m.available_at != nil {
		fields = append(fields, busmessage.FieldAvailableAt)
	}
	if m.claimed_by != nil {
		fields = append(fields, busmessage.FieldClaimedBy)
	}
	if m.created_at != nil {
		fields = append(fields, busmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BusMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case busmessage.FieldTopic:
		return m.Topic()
	case busmessage.FieldPayload:
		return m.Payload()
	case busmessage.FieldStatus:
		return m.Status()
	case busmessage.FieldAttempts:
		return m.Attempts()
	case busmessage.FieldAvailableAt:
		return m.AvailableAt()
	case busmessage.FieldClaimedBy:
		return m.ClaimedBy()
	case busmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BusMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case busmessage.FieldTopic:
		return m.OldTopic(ctx)
	case busmessage.FieldPayload:
		return m.OldPayload(ctx)
	case busmessage.FieldStatus:
		return m.OldStatus(ctx)
	case busmessage.FieldAttempts:
		return m.OldAttempts(ctx)
	case busmessage.FieldAvailableAt:
		return m.OldAvailableAt(ctx)
	case busmessage.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case busmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BusMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case busmessage.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case busmessage.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case busmessage.FieldStatus:
		v, ok := value.(busmessage.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case busmessage.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case busmessage.FieldAvailableAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailableAt(v)
		return nil
	case busmessage.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case busmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BusMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BusMessageMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, busmessage.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BusMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case busmessage.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case busmessage.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown BusMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BusMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(busmessage.FieldClaimedBy) {
		fields = append(fields, busmessage.FieldClaimedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BusMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BusMessageMutation) ClearField(name string) error {
	switch name {
	case busmessage.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	}
	return fmt.Errorf("unknown BusMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BusMessageMutation) ResetField(name string) error {
	switch name {
	case busmessage.FieldTopic:
		m.ResetTopic()
		return nil
	case busmessage.FieldPayload:
		m.ResetPayload()
		return nil
	case busmessage.FieldStatus:
		m.ResetStatus()
		return nil
	case busmessage.FieldAttempts:
		m.ResetAttempts()
		return nil
	case busmessage.FieldAvailableAt:
		m.ResetAvailableAt()
		return nil
	case busmessage.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case busmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BusMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BusMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BusMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BusMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BusMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BusMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BusMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BusMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BusMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BusMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BusMessage edge %s", name)
}

// CallContextMutation represents an operation that mutates the CallContext nodes in the graph.
type CallContextMutation struct {
	config
	op               Op
	typ              string
	id               *string
	communication_id *string
	engagement_id    *string
	case_id          *string
	vehicle_id       *string
	customer_phone   *string
	customer_name    *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*CallContext, error)
	predicates       []predicate.CallContext
}

var _ ent.Mutation = (*CallContextMutation)(nil)

// callcontextOption allows management of the mutation configuration using functional options.
type callcontextOption func(*CallContextMutation)

// newCallContextMutation creates new mutation for the CallContext entity.
func newCallContextMutation(c config, op Op, opts ...callcontextOption) *CallContextMutation {
	m := &CallContextMutation{
		config:        c,
		op:            op,
		typ:           TypeCallContext,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCallContextID sets the ID field of the mutation.
func withCallContextID(id string) callcontextOption {
	return func(m *CallContextMutation) {
		var (
			err   error
			once  sync.Once
			value *CallContext
		)
		m.oldValue = func(ctx context.Context) (*CallContext, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CallContext.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCallContext sets the old CallContext of the mutation.
func withCallContext(node *CallContext) callcontextOption {
	return func(m *CallContextMutation) {
		m.oldValue = func(context.Context) (*CallContext, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CallContextMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CallContextMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CallContext entities.
func (m *CallContextMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CallContextMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CallContextMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CallContext.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCommunicationID sets the "communication_id" field.
func (m *CallContextMutation) SetCommunicationID(s string) {
	m.communication_id = &s
}

// CommunicationID returns the value of the "communication_id" field in the mutation.
func (m *CallContextMutation) CommunicationID() (r string, exists bool) {
	v := m.communication_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommunicationID returns the old "communication_id" field's value of the CallContext entity.
// If the CallContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallContextMutation) OldCommunicationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommunicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommunicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommunicationID: %w", err)
	}
	return oldValue.CommunicationID, nil
}

// ResetCommunicationID resets all changes to the "communication_id" field.
func (m *CallContextMutation) ResetCommunicationID() {
	m.communication_id = nil
}

// SetEngagementID sets the "engagement_id" field.
func (m *CallContextMutation) SetEngagementID(s string) {
	m.engagement_id = &s
}

// EngagementID returns the value of the "engagement_id" field in the mutation.
func (m *CallContextMutation) EngagementID() (r string, exists bool) {
	v := m.engagement_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementID returns the old "engagement_id" field's value of the CallContext entity.
// If the CallContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallContextMutation) OldEngagementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementID: %w", err)
	}
	return oldValue.EngagementID, nil
}

// ResetEngagementID resets all changes to the "engagement_id" field.
func (m *CallContextMutation) ResetEngagementID() {
	m.engagement_id = nil
}

// SetCaseID sets the "case_id" field.
func (m *CallContextMutation) SetCaseID(s string) {
	m.case_id = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *CallContextMutation) CaseID() (r string, exists bool) {
	v := m.case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the CallContext entity.
// If the CallContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallContextMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *CallContextMutation) ResetCaseID() {
	m.case_id = nil
}

// SetVehicleID sets the "vehicle_id" field.
func (m *CallContextMutation) SetVehicleID(s string) {
	m.vehicle_id = &s
}

// VehicleID returns the value of the "vehicle_id" field in the mutation.
func (m *CallContextMutation) VehicleID() (r string, exists bool) {
	v := m.vehicle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleID returns the old "vehicle_id" field's value of the CallContext entity.
// If the CallContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallContextMutation) OldVehicleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleID: %w", err)
	}
	return oldValue.VehicleID, nil
}

// ResetVehicleID resets all changes to the "vehicle_id" field.
func (m *CallContextMutation) ResetVehicleID() {
	m.vehicle_id = nil
}

// SetCustomerPhone sets the "customer_phone" field.
func (m *CallContextMutation) SetCustomerPhone(s string) {
	m.customer_phone = &s
}

// CustomerPhone returns the value of the "customer_phone" field in the mutation.
func (m *CallContextMutation) CustomerPhone() (r string, exists bool) {
	v := m.customer_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerPhone returns the old "customer_phone" field's value of the CallContext entity.
// If the CallContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallContextMutation) OldCustomerPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerPhone: %w", err)
	}
	return oldValue.CustomerPhone, nil
}

// ResetCustomerPhone resets all changes to the "customer_phone" field.
func (m *CallContextMutation) ResetCustomerPhone() {
	m.customer_phone = nil
}

// SetCustomerName sets the "customer_name" field.
func (m *CallContextMutation) SetCustomerName(s string) {
	m.customer_name = &s
}

// CustomerName returns the value of the "customer_name" field in the mutation.
func (m *CallContextMutation) CustomerName() (r string, exists bool) {
	v := m.customer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerName returns the old "customer_name" field's value of the CallContext entity.
// If the CallContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallContextMutation) OldCustomerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerName: %w", err)
	}
	return oldValue.CustomerName, nil
}

// ClearCustomerName clears the value of the "customer_name" field.
func (m *CallContextMutation) ClearCustomerName() {
	m.customer_name = nil
	m.clearedFields[callcontext.FieldCustomerName] = struct{}{}
}

// CustomerNameCleared returns if the "customer_name" field was cleared in this mutation.
func (m *CallContextMutation) CustomerNameCleared() bool {
	_, ok := m.clearedFields[callcontext.FieldCustomerName]
	return ok
}

// ResetCustomerName resets all changes to the "customer_name" field.
func (m *CallContextMutation) ResetCustomerName() {
	m.customer_name = nil
	delete(m.clearedFields, callcontext.FieldCustomerName)
}

// SetCreatedAt sets the "created_at" field.
func (m *CallContextMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CallContextMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CallContext entity.
// If the CallContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallContextMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CallContextMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CallContextMutation builder.
func (m *CallContextMutation) Where(ps ...predicate.CallContext) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CallContextMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CallContextMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CallContext, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CallContextMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CallContextMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CallContext).
func (m *CallContextMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CallContextMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.communication_id != nil {
		fields = append(fields, callcontext.FieldCommunicationID)
	}
	if m.engagement_id != nil {
		fields = append(fields, callcontext.FieldEngagementID)
	}
	if m.case_id != nil {
		fields = append(fields, callcontext.FieldCaseID)
	}
	if m.vehicle_id != nil {
		fields = append(fields, callcontext.FieldVehicleID)
	}
	if m.customer_phone != nil {
		fields = append(fields, callcontext.FieldCustomerPhone)
	}
	if m.customer_name != nil {
		fields = append(fields, callcontext.FieldCustomerName)
	}
	if m.created_at != nil {
		fields = append(fields, callcontext.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CallContextMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case callcontext.FieldCommunicationID:
		return m.CommunicationID()
	case callcontext.FieldEngagementID:
		return m.EngagementID()
	case callcontext.FieldCaseID:
		return m.CaseID()
	case callcontext.FieldVehicleID:
		return m.VehicleID()
	case callcontext.FieldCustomerPhone:
		return m.CustomerPhone()
	case callcontext.FieldCustomerName:
		return m.CustomerName()
	case callcontext.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CallContextMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case callcontext.FieldCommunicationID:
		return m.OldCommunicationID(ctx)
	case callcontext.FieldEngagementID:
		return m.OldEngagementID(ctx)
	case callcontext.FieldCaseID:
		return m.OldCaseID(ctx)
	case callcontext.FieldVehicleID:
		return m.OldVehicleID(ctx)
	case callcontext.FieldCustomerPhone:
		return m.OldCustomerPhone(ctx)
	case callcontext.FieldCustomerName:
		return m.OldCustomerName(ctx)
	case callcontext.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CallContext field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallContextMutation) SetField(name string, value ent.Value) error {
	switch name {
	case callcontext.FieldCommunicationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommunicationID(v)
		return nil
	case callcontext.FieldEngagementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementID(v)
		return nil
	case callcontext.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case callcontext.FieldVehicleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleID(v)
		return nil
	case callcontext.FieldCustomerPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerPhone(v)
		return nil
	case callcontext.FieldCustomerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerName(v)
		return nil
	case callcontext.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CallContext field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CallContextMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CallContextMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallContextMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CallContext numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CallContextMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(callcontext.FieldCustomerName) {
		fields = append(fields, callcontext.FieldCustomerName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CallContextMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CallContextMutation) ClearField(name string) error {
	switch name {
	case callcontext.FieldCustomerName:
		m.ClearCustomerName()
		return nil
	}
	return fmt.Errorf("unknown CallContext nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CallContextMutation) ResetField(name string) error {
	switch name {
	case callcontext.FieldCommunicationID:
		m.ResetCommunicationID()
		return nil
	case callcontext.FieldEngagementID:
		m.ResetEngagementID()
		return nil
	case callcontext.FieldCaseID:
		m.ResetCaseID()
		return nil
	case callcontext.FieldVehicleID:
		m.ResetVehicleID()
		return nil
	case callcontext.FieldCustomerPhone:
		m.ResetCustomerPhone()
		return nil
	case callcontext.FieldCustomerName:
		m.ResetCustomerName()
		return nil
	case callcontext.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CallContext field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CallContextMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CallContextMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CallContextMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CallContextMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CallContextMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CallContextMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CallContextMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CallContext unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CallContextMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CallContext edge %s", name)
}

// CommunicationCaseMutation represents an operation that mutates the CommunicationCase nodes in the graph.
type CommunicationCaseMutation struct {
	config
	op                            Op
	typ                           string
	id                            *string
	engagement_id                 *string
	case_id                       *string
	vehicle_id                    *string
	customer_phone                *string
	customer_name                 *string
	call_status                   *communicationcase.CallStatus
	conversation_stage            *communicationcase.ConversationStage
	conversation_transcript       *[]map[string]interface{}
	appendconversation_transcript []map[string]interface{}
	outcome                       *communicationcase.Outcome
	booking_id                    *string
	call_sid                      *string
	created_at                    *time.Time
	updated_at                    *time.Time
	clearedFields                 map[string]struct{}
	done                          bool
	oldValue                      func(context.Context) (*CommunicationCase, error)
	predicates                    []predicate.CommunicationCase
}

var _ ent.Mutation = (*CommunicationCaseMutation)(nil)

// communicationcaseOption allows management of the mutation configuration using functional options.
type communicationcaseOption func(*CommunicationCaseMutation)

// newCommunicationCaseMutation creates new mutation for the CommunicationCase entity.
func newCommunicationCaseMutation(c config, op Op, opts ...communicationcaseOption) *CommunicationCaseMutation {
	m := &CommunicationCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeCommunicationCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommunicationCaseID sets the ID field of the mutation.
func withCommunicationCaseID(id string) communicationcaseOption {
	return func(m *CommunicationCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *CommunicationCase
		)
		m.oldValue = func(ctx context.Context) (*CommunicationCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CommunicationCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommunicationCase sets the old CommunicationCase of the mutation.
func withCommunicationCase(node *CommunicationCase) communicationcaseOption {
	return func(m *CommunicationCaseMutation) {
		m.oldValue = func(context.Context) (*CommunicationCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommunicationCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommunicationCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CommunicationCase entities.
func (m *CommunicationCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommunicationCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommunicationCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CommunicationCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEngagementID sets the "engagement_id" field.
func (m *CommunicationCaseMutation) SetEngagementID(s string) {
	m.engagement_id = &s
}

// EngagementID returns the value of the "engagement_id" field in the mutation.
func (m *CommunicationCaseMutation) EngagementID() (r string, exists bool) {
	v := m.engagement_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementID returns the old "engagement_id" field's value of the CommunicationCase entity.
// If the CommunicationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunicationCaseMutation) OldEngagementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementID: %w", err)
	}
	return oldValue.EngagementID, nil
}

// ResetEngagementID resets all changes to the "engagement_id" field.
func (m *CommunicationCaseMutation) ResetEngagementID() {
	m.engagement_id = nil
}

// SetCaseID sets the "case_id" field.
func (m *CommunicationCaseMutation) SetCaseID(s string) {
	m.case_id = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *CommunicationCaseMutation) CaseID() (r string, exists bool) {
	v := m.case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the CommunicationCase entity.
// If the CommunicationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunicationCaseMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *CommunicationCaseMutation) ResetCaseID() {
	m.case_id = nil
}

// SetVehicleID sets the "vehicle_id" field.
func (m *CommunicationCaseMutation) SetVehicleID(s string) {
	m.vehicle_id = &s
}

// VehicleID returns the value of the "vehicle_id" field in the mutation.
func (m *CommunicationCaseMutation) VehicleID() (r string, exists bool) {
	v := m.vehicle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleID returns the old "vehicle_id" field's value of the CommunicationCase entity.
// If the CommunicationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunicationCaseMutation) OldVehicleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleID: %w", err)
	}
	return oldValue.VehicleID, nil
}

// ResetVehicleID resets all changes to the "vehicle_id" field.
func (m *CommunicationCaseMutation) ResetVehicleID() {
	m.vehicle_id = nil
}

// SetCustomerPhone sets the "customer_phone" field.
func (m *CommunicationCaseMutation) SetCustomerPhone(s string) {
	m.customer_phone = &s
}

// CustomerPhone returns the value of the "customer_phone" field in the mutation.
func (m *CommunicationCaseMutation) CustomerPhone() (r string, exists bool) {
	v := m.customer_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerPhone returns the old "customer_phone" field's value of the CommunicationCase entity.
// If the CommunicationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunicationCaseMutation) OldCustomerPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerPhone: %w", err)
	}
	return oldValue.CustomerPhone, nil
}

// ResetCustomerPhone resets all changes to the "customer_phone" field.
func (m *CommunicationCaseMutation) ResetCustomerPhone() {
	m.customer_phone = nil
}

// SetCustomerName sets the "customer_name" field.
func (m *CommunicationCaseMutation) SetCustomerName(s string) {
	m.customer_name = &s
}

// CustomerName returns the value of the "customer_name" field in the mutation.
func (m *CommunicationCaseMutation) CustomerName() (r string, exists bool) {
	v := m.customer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerName returns the old "customer_name" field's value of the CommunicationCase entity.
// If the CommunicationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunicationCaseMutation) OldCustomerName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerName: %w", err)
	}
	return oldValue.CustomerName, nil
}

// ClearCustomerName clears the value of the "customer_name" field.
func (m *CommunicationCaseMutation) ClearCustomerName() {
	m.customer_name = nil
	m.clearedFields[communicationcase.FieldCustomerName] = struct{}{}
}

// CustomerNameCleared returns if the "customer_name" field was cleared in this mutation.
func (m *CommunicationCaseMutation) CustomerNameCleared() bool {
	_, ok := m.clearedFields[communicationcase.FieldCustomerName]
	return ok
}

// ResetCustomerName resets all changes to the "customer_name" field.
func (m *CommunicationCaseMutation) ResetCustomerName() {
	m.customer_name = nil
	delete(m.clearedFields, communicationcase.FieldCustomerName)
}

// SetCallStatus sets the "call_status" field.
func (m *CommunicationCaseMutation) SetCallStatus(cs communicationcase.CallStatus) {
	m.call_status = &cs
}

// CallStatus returns the value of the "call_status" field in the mutation.
func (m *CommunicationCaseMutation) CallStatus() (r communicationcase.CallStatus, exists bool) {
	v := m.call_status
	if v == nil {
		return
	}
	return *v, true
}

// OldCallStatus returns the old "call_status" field's value of the CommunicationCase entity.
// If the CommunicationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunicationCaseMutation) OldCallStatus(ctx context.Context) (v communicationcase.CallStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallStatus: %w", err)
	}
	return oldValue.CallStatus, nil
}

// ResetCallStatus resets all changes to the "call_status" field.
func (m *CommunicationCaseMutation) ResetCallStatus() {
	m.call_status = nil
}

// SetConversationStage sets the "conversation_stage" field.
func (m *CommunicationCaseMutation) SetConversationStage(cs communicationcase.ConversationStage) {
	m.conversation_stage = &cs
}

// ConversationStage returns the value of the "conversation_stage" field in the mutation.
func (m *CommunicationCaseMutation) ConversationStage() (r communicationcase.ConversationStage, exists bool) {
	v := m.conversation_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationStage returns the old "conversation_stage" field's value of the CommunicationCase entity.
// If the CommunicationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunicationCaseMutation) OldConversationStage(ctx context.Context) (v communicationcase.ConversationStage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationStage: %w", err)
	}
	return oldValue.ConversationStage, nil
}

// ResetConversationStage resets all changes to the "conversation_stage" field.
func (m *CommunicationCaseMutation) ResetConversationStage() {
	m.conversation_stage = nil
}

// SetConversationTranscript sets the "conversation_transcript" field.
func (m *CommunicationCaseMutation) SetConversationTranscript(value []map[string]interface{}) {
	m.conversation_transcript = &value
	m.appendconversation_transcript = nil
}

// ConversationTranscript returns the value of the "conversation_transcript" field in the mutation.
func (m *CommunicationCaseMutation) ConversationTranscript() (r []map[string]interface{}, exists bool) {
	v := m.conversation_transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationTranscript returns the old "conversation_transcript" field's value of the CommunicationCase entity.
// If the CommunicationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunicationCaseMutation) OldConversationTranscript(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationTranscript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationTranscript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationTranscript: %w", err)
	}
	return oldValue.ConversationTranscript, nil
}

// AppendConversationTranscript adds value to the "conversation_transcript" field.
func (m *CommunicationCaseMutation) AppendConversationTranscript(value []map[string]interface{}) {
	m.appendconversation_transcript = append(m.appendconversation_transcript, value...)
}

// AppendedConversationTranscript returns the list of values that were appended to the "conversation_transcript" field in this mutation.
func (m *CommunicationCaseMutation) AppendedConversationTranscript() ([]map[string]interface{}, bool) {
	if len(m.appendconversation_transcript) == 0 {
		return nil, false
	}
	return m.appendconversation_transcript, true
}

// ClearConversationTranscript clears the value of the "conversation_transcript" field.
func (m *CommunicationCaseMutation) ClearConversationTranscript() {
	m.conversation_transcript = nil
	m.appendconversation_transcript = nil
	m.clearedFields[communicationcase.FieldConversationTranscript] = struct{}{}
}

// ConversationTranscriptCleared returns if the "conversation_transcript" field was cleared in this mutation.
func (m *CommunicationCaseMutation) ConversationTranscriptCleared() bool {
	_, ok := m.clearedFields[communicationcase.FieldConversationTranscript]
	return ok
}

// ResetConversationTranscript resets all changes to the "conversation_transcript" field.
func (m *CommunicationCaseMutation) ResetConversationTranscript() {
	m.conversation_transcript = nil
	m.appendconversation_transcript = nil
	delete(m.clearedFields, communicationcase.FieldConversationTranscript)
}

// SetOutcome sets the "outcome" field.
func (m *CommunicationCaseMutation) SetOutcome(c communicationcase.Outcome) {
	m.outcome = &c
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *CommunicationCaseMutation) Outcome() (r communicationcase.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the CommunicationCase entity.
// If the CommunicationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunicationCaseMutation) OldOutcome(ctx context.Context) (v *communicationcase.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ClearOutcome clears the value of the "outcome" field.
func (m *CommunicationCaseMutation) ClearOutcome() {
	m.outcome = nil
	m.clearedFields[communicationcase.FieldOutcome] = struct{}{}
}

// OutcomeCleared returns if the "outcome" field was cleared in this mutation.
func (m *CommunicationCaseMutation) OutcomeCleared() bool {
	_, ok := m.clearedFields[communicationcase.FieldOutcome]
	return ok
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *CommunicationCaseMutation) ResetOutcome() {
	m.outcome = nil
	delete(m.clearedFields, communicationcase.FieldOutcome)
}

// SetBookingID sets the "booking_id" field.
func (m *CommunicationCaseMutation) SetBookingID(s string) {
	m.booking_id = &s
}

// BookingID returns the value of the "booking_id" field in the mutation.
func (m *CommunicationCaseMutation) BookingID() (r string, exists bool) {
	v := m.booking_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBookingID returns the old "booking_id" field's value of the CommunicationCase entity.
// If the CommunicationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunicationCaseMutation) OldBookingID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBookingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBookingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBookingID: %w", err)
	}
	return oldValue.BookingID, nil
}

// ClearBookingID clears the value of the "booking_id" field.
func (m *CommunicationCaseMutation) ClearBookingID() {
	m.booking_id = nil
	m.clearedFields[communicationcase.FieldBookingID] = struct{}{}
}

// BookingIDCleared returns if the "booking_id" field was cleared in this mutation.
func (m *CommunicationCaseMutation) BookingIDCleared() bool {
	_, ok := m.clearedFields[communicationcase.FieldBookingID]
	return ok
}

// ResetBookingID resets all changes to the "booking_id" field.
func (m *CommunicationCaseMutation) ResetBookingID() {
	m.booking_id = nil
	delete(m.clearedFields, communicationcase.FieldBookingID)
}

// SetCallSid sets the "call_sid" field.
func (m *CommunicationCaseMutation) SetCallSid(s string) {
	m.call_sid = &s
}

// CallSid returns the value of the "call_sid" field in the mutation.
func (m *CommunicationCaseMutation) CallSid() (r string, exists bool) {
	v := m.call_sid
	if v == nil {
		return
	}
	return *v, true
}

// OldCallSid returns the old "call_sid" field's value of the CommunicationCase entity.
// If the CommunicationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunicationCaseMutation) OldCallSid(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallSid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallSid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallSid: %w", err)
	}
	return oldValue.CallSid, nil
}

// ClearCallSid clears the value of the "call_sid" field.
func (m *CommunicationCaseMutation) ClearCallSid() {
	m.call_sid = nil
	m.clearedFields[communicationcase.FieldCallSid] = struct{}{}
}

// CallSidCleared returns if the "call_sid" field was cleared in this mutation.
func (m *CommunicationCaseMutation) CallSidCleared() bool {
	_, ok := m.clearedFields[communicationcase.FieldCallSid]
	return ok
}

// ResetCallSid resets all changes to the "call_sid" field.
func (m *CommunicationCaseMutation) ResetCallSid() {
	m.call_sid = nil
	delete(m.clearedFields, communicationcase.FieldCallSid)
}

// SetCreatedAt sets the "created_at" field.
func (m *CommunicationCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommunicationCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CommunicationCase entity.
// If the CommunicationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunicationCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommunicationCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CommunicationCaseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CommunicationCaseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CommunicationCase entity.
// If the CommunicationCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunicationCaseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CommunicationCaseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CommunicationCaseMutation builder.
func (m *CommunicationCaseMutation) Where(ps ...predicate.CommunicationCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommunicationCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommunicationCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CommunicationCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommunicationCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommunicationCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CommunicationCase).
func (m *CommunicationCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommunicationCaseMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.engagement_id != nil {
		fields = append(fields, communicationcase.FieldEngagementID)
	}
	if m.case_id != nil {
		fields = append(fields, communicationcase.FieldCaseID)
	}
	if m.vehicle_id != nil {
		fields = append(fields, communicationcase.FieldVehicleID)
	}
	if m.customer_phone != nil {
		fields = append(fields, communicationcase.FieldCustomerPhone)
	}
	if m.customer_name != nil {
		fields = append(fields, communicationcase.FieldCustomerName)
	}
	if m.call_status != nil {
		fields = append(fields, communicationcase.FieldCallStatus)
	}
	if m.conversation_stage != nil {
		fields = append(fields, communicationcase.FieldConversationStage)
	}
	if m.conversation_transcript != nil {
		fields = append(fields, communicationcase.FieldConversationTranscript)
	}
	if m.outcome != nil {
		fields = append(fields, communicationcase.FieldOutcome)
	}
	if m.booking_id != nil {
		fields = append(fields, communicationcase.FieldBookingID)
	}
	if m.call_sid != nil {
		fields = append(fields, communicationcase.FieldCallSid)
	}
	if m.created_at != nil {
		fields = append(fields, communicationcase.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, communicationcase.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommunicationCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case communicationcase.FieldEngagementID:
		return m.EngagementID()
	case communicationcase.FieldCaseID:
		return m.CaseID()
	case communicationcase.FieldVehicleID:
		return m.VehicleID()
	case communicationcase.FieldCustomerPhone:
		return m.CustomerPhone()
	case communicationcase.FieldCustomerName:
		return m.CustomerName()
	case communicationcase.FieldCallStatus:
		return m.CallStatus()
	case communicationcase.FieldConversationStage:
		return m.ConversationStage()
	case communicationcase.FieldConversationTranscript:
		return m.ConversationTranscript()
	case communicationcase.FieldOutcome:
		return m.Outcome()
	case communicationcase.FieldBookingID:
		return m.BookingID()
	case communicationcase.FieldCallSid:
		return m.CallSid()
	case communicationcase.FieldCreatedAt:
		return m.CreatedAt()
	case communicationcase.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommunicationCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case communicationcase.FieldEngagementID:
		return m.OldEngagementID(ctx)
	case communicationcase.FieldCaseID:
		return m.OldCaseID(ctx)
	case communicationcase.FieldVehicleID:
		return m.OldVehicleID(ctx)
	case communicationcase.FieldCustomerPhone:
		return m.OldCustomerPhone(ctx)
	case communicationcase.FieldCustomerName:
		return m.OldCustomerName(ctx)
	case communicationcase.FieldCallStatus:
		return m.OldCallStatus(ctx)
	case communicationcase.FieldConversationStage:
		return m.OldConversationStage(ctx)
	case communicationcase.FieldConversationTranscript:
		return m.OldConversationTranscript(ctx)
	case communicationcase.FieldOutcome:
		return m.OldOutcome(ctx)
	case communicationcase.FieldBookingID:
		return m.OldBookingID(ctx)
	case communicationcase.FieldCallSid:
		return m.OldCallSid(ctx)
	case communicationcase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case communicationcase.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CommunicationCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommunicationCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case communicationcase.FieldEngagementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementID(v)
		return nil
	case communicationcase.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case communicationcase.FieldVehicleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleID(v)
		return nil
	case communicationcase.FieldCustomerPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerPhone(v)
		return nil
	case communicationcase.FieldCustomerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerName(v)
		return nil
	case communicationcase.FieldCallStatus:
		v, ok := value.(communicationcase.CallStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallStatus(v)
		return nil
	case communicationcase.FieldConversationStage:
		v, ok := value.(communicationcase.ConversationStage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationStage(v)
		return nil
	case communicationcase.FieldConversationTranscript:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationTranscript(v)
		return nil
	case communicationcase.FieldOutcome:
		v, ok := value.(communicationcase.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case communicationcase.FieldBookingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBookingID(v)
		return nil
	case communicationcase.FieldCallSid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallSid(v)
		return nil
	case communicationcase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case communicationcase.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CommunicationCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommunicationCaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommunicationCaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommunicationCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CommunicationCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommunicationCaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(communicationcase.FieldCustomerName) {
		fields = append(fields, communicationcase.FieldCustomerName)
	}
	if m.FieldCleared(communicationcase.FieldConversationTranscript) {
		fields = append(fields, communicationcase.FieldConversationTranscript)
	}
	if m.FieldCleared(communicationcase.FieldOutcome) {
		fields = append(fields, communicationcase.FieldOutcome)
	}
	if m.FieldCleared(communicationcase.FieldBookingID) {
		fields = append(fields, communicationcase.FieldBookingID)
	}
	if m.FieldCleared(communicationcase.FieldCallSid) {
		fields = append(fields, communicationcase.FieldCallSid)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommunicationCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommunicationCaseMutation) ClearField(name string) error {
	switch name {
	case communicationcase.FieldCustomerName:
		m.ClearCustomerName()
		return nil
	case communicationcase.FieldConversationTranscript:
		m.ClearConversationTranscript()
		return nil
	case communicationcase.FieldOutcome:
		m.ClearOutcome()
		return nil
	case communicationcase.FieldBookingID:
		m.ClearBookingID()
		return nil
	case communicationcase.FieldCallSid:
		m.ClearCallSid()
		return nil
	}
	return fmt.Errorf("unknown CommunicationCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommunicationCaseMutation) ResetField(name string) error {
	switch name {
	case communicationcase.FieldEngagementID:
		m.ResetEngagementID()
		return nil
	case communicationcase.FieldCaseID:
		m.ResetCaseID()
		return nil
	case communicationcase.FieldVehicleID:
		m.ResetVehicleID()
		return nil
	case communicationcase.FieldCustomerPhone:
		m.ResetCustomerPhone()
		return nil
	case communicationcase.FieldCustomerName:
		m.ResetCustomerName()
		return nil
	case communicationcase.FieldCallStatus:
		m.ResetCallStatus()
		return nil
	case communicationcase.FieldConversationStage:
		m.ResetConversationStage()
		return nil
	case communicationcase.FieldConversationTranscript:
		m.ResetConversationTranscript()
		return nil
	case communicationcase.FieldOutcome:
		m.ResetOutcome()
		return nil
	case communicationcase.FieldBookingID:
		m.ResetBookingID()
		return nil
	case communicationcase.FieldCallSid:
		m.ResetCallSid()
		return nil
	case communicationcase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case communicationcase.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CommunicationCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommunicationCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommunicationCaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommunicationCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommunicationCaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommunicationCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommunicationCaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommunicationCaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CommunicationCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommunicationCaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CommunicationCase edge %s", name)
}

// DiagnosisCaseMutation represents an operation that mutates the DiagnosisCase nodes in the graph.
type DiagnosisCaseMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	case_id                 *string
	vehicle_id              *string
	component               *string
	failure_probability     *float64
	addfailure_probability  *float64
	estimated_rul_days      *int
	addestimated_rul_days   *int
	severity                *diagnosiscase.Severity
	context_event_ids       *[]string
	appendcontext_event_ids []string
	status                  *diagnosiscase.Status
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*DiagnosisCase, error)
	predicates              []predicate.DiagnosisCase
}

var _ ent.Mutation = (*DiagnosisCaseMutation)(nil)

// diagnosiscaseOption allows management of the mutation configuration using functional options.
type diagnosiscaseOption func(*DiagnosisCaseMutation)

// newDiagnosisCaseMutation creates new mutation for the DiagnosisCase entity.
func newDiagnosisCaseMutation(c config, op Op, opts ...diagnosiscaseOption) *DiagnosisCaseMutation {
	m := &DiagnosisCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeDiagnosisCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDiagnosisCaseID sets the ID field of the mutation.
func withDiagnosisCaseID(id string) diagnosiscaseOption {
	return func(m *DiagnosisCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *DiagnosisCase
		)
		m.oldValue = func(ctx context.Context) (*DiagnosisCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DiagnosisCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDiagnosisCase sets the old DiagnosisCase of the mutation.
func withDiagnosisCase(node *DiagnosisCase) diagnosiscaseOption {
	return func(m *DiagnosisCaseMutation) {
		m.oldValue = func(context.Context) (*DiagnosisCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DiagnosisCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DiagnosisCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DiagnosisCase entities.
func (m *DiagnosisCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DiagnosisCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DiagnosisCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DiagnosisCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *DiagnosisCaseMutation) SetCaseID(s string) {
	m.case_id = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *DiagnosisCaseMutation) CaseID() (r string, exists bool) {
	v := m.case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the DiagnosisCase entity.
// If the DiagnosisCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisCaseMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *DiagnosisCaseMutation) ResetCaseID() {
	m.case_id = nil
}

// SetVehicleID sets the "vehicle_id" field.
func (m *DiagnosisCaseMutation) SetVehicleID(s string) {
	m.vehicle_id = &s
}

// VehicleID returns the value of the "vehicle_id" field in the mutation.
func (m *DiagnosisCaseMutation) VehicleID() (r string, exists bool) {
	v := m.vehicle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleID returns the old "vehicle_id" field's value of the DiagnosisCase entity.
// If the DiagnosisCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisCaseMutation) OldVehicleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleID: %w", err)
	}
	return oldValue.VehicleID, nil
}

// ResetVehicleID resets all changes to the "vehicle_id" field.
func (m *DiagnosisCaseMutation) ResetVehicleID() {
	m.vehicle_id = nil
}

// SetComponent sets the "component" field.
func (m *DiagnosisCaseMutation) SetComponent(s string) {
	m.component = &s
}

// Component returns the value of the "component" field in the mutation.
func (m *DiagnosisCaseMutation) Component() (r string, exists bool) {
	v := m.component
	if v == nil {
		return
	}
	return *v, true
}

// OldComponent returns the old "component" field's value of the DiagnosisCase entity.
// If the DiagnosisCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisCaseMutation) OldComponent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComponent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComponent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComponent: %w", err)
	}
	return oldValue.Component, nil
}

// ResetComponent resets all changes to the "component" field.
func (m *DiagnosisCaseMutation) ResetComponent() {
	m.component = nil
}

// SetFailureProbability sets the "failure_probability" field.
func (m *DiagnosisCaseMutation) SetFailureProbability(f float64) {
	m.failure_probability = &f
	m.addfailure_probability = nil
}

// FailureProbability returns the value of the "failure_probability" field in the mutation.
func (m *DiagnosisCaseMutation) FailureProbability() (r float64, exists bool) {
	v := m.failure_probability
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureProbability returns the old "failure_probability" field's value of the DiagnosisCase entity.
// If the DiagnosisCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisCaseMutation) OldFailureProbability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureProbability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureProbability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureProbability: %w", err)
	}
	return oldValue.FailureProbability, nil
}

// AddFailureProbability adds f to the "failure_probability" field.
func (m *DiagnosisCaseMutation) AddFailureProbability(f float64) {
	if m.addfailure_probability != nil {
		*m.addfailure_probability += f
	} else {
		m.addfailure_probability = &f
	}
}

// AddedFailureProbability returns the value that was added to the "failure_probability" field in this mutation.
func (m *DiagnosisCaseMutation) AddedFailureProbability() (r float64, exists bool) {
	v := m.addfailure_probability
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailureProbability resets all changes to the "failure_probability" field.
func (m *DiagnosisCaseMutation) ResetFailureProbability() {
	m.failure_probability = nil
	m.addfailure_probability = nil
}

// SetEstimatedRulDays sets the "estimated_rul_days" field.
func (m *DiagnosisCaseMutation) SetEstimatedRulDays(i int) {
	m.estimated_rul_days = &i
	m.addestimated_rul_days = nil
}

// EstimatedRulDays returns the value of the "estimated_rul_days" field in the mutation.
func (m *DiagnosisCaseMutation) EstimatedRulDays() (r int, exists bool) {
	v := m.estimated_rul_days
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedRulDays returns the old "estimated_rul_days" field's value of the DiagnosisCase entity.
// If the DiagnosisCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisCaseMutation) OldEstimatedRulDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedRulDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedRulDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedRulDays: %w", err)
	}
	return oldValue.EstimatedRulDays, nil
}

// AddEstimatedRulDays adds i to the "estimated_rul_days" field.
func (m *DiagnosisCaseMutation) AddEstimatedRulDays(i int) {
	if m.addestimated_rul_days != nil {
		*m.addestimated_rul_days += i
	} else {
		m.addestimated_rul_days = &i
	}
}

// AddedEstimatedRulDays returns the value that was added to the "estimated_rul_days" field in this mutation.
func (m *DiagnosisCaseMutation) AddedEstimatedRulDays() (r int, exists bool) {
	v := m.addestimated_rul_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedRulDays resets all changes to the "estimated_rul_days" field.
func (m *DiagnosisCaseMutation) ResetEstimatedRulDays() {
	m.estimated_rul_days = nil
	m.addestimated_rul_days = nil
}

// SetSeverity sets the "severity" field.
func (m *DiagnosisCaseMutation) SetSeverity(d diagnosiscase.Severity) {
	m.severity = &d
}

// Severity returns the value of the "severity" field in the mutation.
func (m *DiagnosisCaseMutation) Severity() (r diagnosiscase.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the DiagnosisCase entity.
// If the DiagnosisCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisCaseMutation) OldSeverity(ctx context.Context) (v diagnosiscase.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *DiagnosisCaseMutation) ResetSeverity() {
	m.severity = nil
}

// SetContextEventIds sets the "context_event_ids" field.
func (m *DiagnosisCaseMutation) SetContextEventIds(s []string) {
	m.context_event_ids = &s
	m.appendcontext_event_ids = nil
}

// ContextEventIds returns the value of the "context_event_ids" field in the mutation.
func (m *DiagnosisCaseMutation) ContextEventIds() (r []string, exists bool) {
	v := m.context_event_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldContextEventIds returns the old "context_event_ids" field's value of the DiagnosisCase entity.
// If the DiagnosisCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisCaseMutation) OldContextEventIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextEventIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextEventIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextEventIds: %w", err)
	}
	return oldValue.ContextEventIds, nil
}

// AppendContextEventIds adds s to the "context_event_ids" field.
func (m *DiagnosisCaseMutation) AppendContextEventIds(s []string) {
	m.appendcontext_event_ids = append(m.appendcontext_event_ids, s...)
}

// AppendedContextEventIds returns the list of values that were appended to the "context_event_ids" field in this mutation.
func (m *DiagnosisCaseMutation) AppendedContextEventIds() ([]string, bool) {
	if len(m.appendcontext_event_ids) == 0 {
		return nil, false
	}
	return m.appendcontext_event_ids, true
}

// ClearContextEventIds clears the value of the "context_event_ids" field.
func (m *DiagnosisCaseMutation) ClearContextEventIds() {
	m.context_event_ids = nil
	m.appendcontext_event_ids = nil
	m.clearedFields[diagnosiscase.FieldContextEventIds] = struct{}{}
}

// ContextEventIdsCleared returns if the "context_event_ids" field was cleared in this mutation.
func (m *DiagnosisCaseMutation) ContextEventIdsCleared() bool {
	_, ok := m.clearedFields[diagnosiscase.FieldContextEventIds]
	return ok
}

// ResetContextEventIds resets all changes to the "context_event_ids" field.
func (m *DiagnosisCaseMutation) ResetContextEventIds() {
	m.context_event_ids = nil
	m.appendcontext_event_ids = nil
	delete(m.clearedFields, diagnosiscase.FieldContextEventIds)
}

// SetStatus sets the "status" field.
func (m *DiagnosisCaseMutation) SetStatus(d diagnosiscase.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DiagnosisCaseMutation) Status() (r diagnosiscase.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DiagnosisCase entity.
// If the DiagnosisCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisCaseMutation) OldStatus(ctx context.Context) (v diagnosiscase.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DiagnosisCaseMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DiagnosisCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DiagnosisCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DiagnosisCase entity.
// If the DiagnosisCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DiagnosisCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DiagnosisCaseMutation builder.
func (m *DiagnosisCaseMutation) Where(ps ...predicate.DiagnosisCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DiagnosisCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DiagnosisCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DiagnosisCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DiagnosisCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DiagnosisCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DiagnosisCase).
func (m *DiagnosisCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DiagnosisCaseMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.case_id != nil {
		fields = append(fields, diagnosiscase.FieldCaseID)
	}
	if m.vehicle_id != nil {
		fields = append(fields, diagnosiscase.FieldVehicleID)
	}
	if m.component != nil {
		fields = append(fields, diagnosiscase.FieldComponent)
	}
	if m.failure_probability != nil {
		fields = append(fields, diagnosiscase.FieldFailureProbability)
	}
	if m.estimated_rul_days != nil {
		fields = append(fields, diagnosiscase.FieldEstimatedRulDays)
	}
	if m.severity != nil {
		fields = append(fields, diagnosiscase.FieldSeverity)
	}
	if m.context_event_ids != nil {
		fields = append(fields, diagnosiscase.FieldContextEventIds)
	}
	if m.status != nil {
		fields = append(fields, diagnosiscase.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, diagnosiscase.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DiagnosisCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case diagnosiscase.FieldCaseID:
		return m.CaseID()
	case diagnosiscase.FieldVehicleID:
		return m.VehicleID()
	case diagnosiscase.FieldComponent:
		return m.Component()
	case diagnosiscase.FieldFailureProbability:
		return m.FailureProbability()
	case diagnosiscase.FieldEstimatedRulDays:
		return m.EstimatedRulDays()
	case diagnosiscase.FieldSeverity:
		return m.Severity()
	case diagnosiscase.FieldContextEventIds:
		return m.ContextEventIds()
	case diagnosiscase.FieldStatus:
		return m.Status()
	case diagnosiscase.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DiagnosisCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case diagnosiscase.FieldCaseID:
		return m.OldCaseID(ctx)
	case diagnosiscase.FieldVehicleID:
		return m.OldVehicleID(ctx)
	case diagnosiscase.FieldComponent:
		return m.OldComponent(ctx)
	case diagnosiscase.FieldFailureProbability:
		return m.OldFailureProbability(ctx)
	case diagnosiscase.FieldEstimatedRulDays:
		return m.OldEstimatedRulDays(ctx)
	case diagnosiscase.FieldSeverity:
		return m.OldSeverity(ctx)
	case diagnosiscase.FieldContextEventIds:
		return m.OldContextEventIds(ctx)
	case diagnosiscase.FieldStatus:
		return m.OldStatus(ctx)
	case diagnosiscase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DiagnosisCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiagnosisCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case diagnosiscase.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case diagnosiscase.FieldVehicleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleID(v)
		return nil
	case diagnosiscase.FieldComponent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComponent(v)
		return nil
	case diagnosiscase.FieldFailureProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureProbability(v)
		return nil
	case diagnosiscase.FieldEstimatedRulDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedRulDays(v)
		return nil
	case diagnosiscase.FieldSeverity:
		v, ok := value.(diagnosiscase.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case diagnosiscase.FieldContextEventIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextEventIds(v)
		return nil
	case diagnosiscase.FieldStatus:
		v, ok := value.(diagnosiscase.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case diagnosiscase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DiagnosisCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DiagnosisCaseMutation) AddedFields() []string {
	var fields []string
	if m.addfailure_probability != nil {
		fields = append(fields, diagnosiscase.FieldFailureProbability)
	}
	if m.addestimated_rul_days != nil {
		fields = append(fields, diagnosiscase.FieldEstimatedRulDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DiagnosisCaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case diagnosiscase.FieldFailureProbability:
		return m.AddedFailureProbability()
	case diagnosiscase.FieldEstimatedRulDays:
		return m.AddedEstimatedRulDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiagnosisCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case diagnosiscase.FieldFailureProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailureProbability(v)
		return nil
	case diagnosiscase.FieldEstimatedRulDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedRulDays(v)
		return nil
	}
	return fmt.Errorf("unknown DiagnosisCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DiagnosisCaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(diagnosiscase.FieldContextEventIds) {
		fields = append(fields, diagnosiscase.FieldContextEventIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DiagnosisCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DiagnosisCaseMutation) ClearField(name string) error {
	switch name {
	case diagnosiscase.FieldContextEventIds:
		m.ClearContextEventIds()
		return nil
	}
	return fmt.Errorf("unknown DiagnosisCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DiagnosisCaseMutation) ResetField(name string) error {
	switch name {
	case diagnosiscase.FieldCaseID:
		m.ResetCaseID()
		return nil
	case diagnosiscase.FieldVehicleID:
		m.ResetVehicleID()
		return nil
	case diagnosiscase.FieldComponent:
		m.ResetComponent()
		return nil
	case diagnosiscase.FieldFailureProbability:
		m.ResetFailureProbability()
		return nil
	case diagnosiscase.FieldEstimatedRulDays:
		m.ResetEstimatedRulDays()
		return nil
	case diagnosiscase.FieldSeverity:
		m.ResetSeverity()
		return nil
	case diagnosiscase.FieldContextEventIds:
		m.ResetContextEventIds()
		return nil
	case diagnosiscase.FieldStatus:
		m.ResetStatus()
		return nil
	case diagnosiscase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DiagnosisCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DiagnosisCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DiagnosisCaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DiagnosisCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DiagnosisCaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DiagnosisCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DiagnosisCaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DiagnosisCaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DiagnosisCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DiagnosisCaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DiagnosisCase edge %s", name)
}

// EngagementCaseMutation represents an operation that mutates the EngagementCase nodes in the graph.
type EngagementCaseMutation struct {
	config
	op                Op
	typ               string
	id                *string
	scheduling_id     *string
	rca_id            *string
	case_id           *string
	vehicle_id        *string
	customer_phone    *string
	customer_name     *string
	customer_decision *engagementcase.CustomerDecision
	booking_id        *string
	transcript        *[]map[string]interface{}
	appendtranscript  []map[string]interface{}
	status            *engagementcase.Status
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*EngagementCase, error)
	predicates        []predicate.EngagementCase
}

var _ ent.Mutation = (*EngagementCaseMutation)(nil)

// engagementcaseOption allows management of the mutation configuration using functional options.
type engagementcaseOption func(*EngagementCaseMutation)

// newEngagementCaseMutation creates new mutation for the EngagementCase entity.
func newEngagementCaseMutation(c config, op Op, opts ...engagementcaseOption) *EngagementCaseMutation {
	m := &EngagementCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeEngagementCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEngagementCaseID sets the ID field of the mutation.
func withEngagementCaseID(id string) engagementcaseOption {
	return func(m *EngagementCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *EngagementCase
		)
		m.oldValue = func(ctx context.Context) (*EngagementCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EngagementCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEngagementCase sets the old EngagementCase of the mutation.
func withEngagementCase(node *EngagementCase) engagementcaseOption {
	return func(m *EngagementCaseMutation) {
		m.oldValue = func(context.Context) (*EngagementCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EngagementCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EngagementCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EngagementCase entities.
func (m *EngagementCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EngagementCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EngagementCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EngagementCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSchedulingID sets the "scheduling_id" field.
func (m *EngagementCaseMutation) SetSchedulingID(s string) {
	m.scheduling_id = &s
}

// SchedulingID returns the value of the "scheduling_id" field in the mutation.
func (m *EngagementCaseMutation) SchedulingID() (r string, exists bool) {
	v := m.scheduling_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSchedulingID returns the old "scheduling_id" field's value of the EngagementCase entity.
// If the EngagementCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementCaseMutation) OldSchedulingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchedulingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchedulingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchedulingID: %w", err)
	}
	return oldValue.SchedulingID, nil
}

// ResetSchedulingID resets all changes to the "scheduling_id" field.
func (m *EngagementCaseMutation) ResetSchedulingID() {
	m.scheduling_id = nil
}

// SetRcaID sets the "rca_id" field.
func (m *EngagementCaseMutation) SetRcaID(s string) {
	m.rca_id = &s
}

// RcaID returns the value of the "rca_id" field in the mutation.
func (m *EngagementCaseMutation) RcaID() (r string, exists bool) {
	v := m.rca_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRcaID returns the old "rca_id" field's value of the EngagementCase entity.
// If the EngagementCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementCaseMutation) OldRcaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRcaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRcaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRcaID: %w", err)
	}
	return oldValue.RcaID, nil
}

// ClearRcaID clears the value of the "rca_id" field.
func (m *EngagementCaseMutation) ClearRcaID() {
	m.rca_id = nil
	m.clearedFields[engagementcase.FieldRcaID] = struct{}{}
}

// RcaIDCleared returns if the "rca_id" field was cleared in this mutation.
func (m *EngagementCaseMutation) RcaIDCleared() bool {
	_, ok := m.clearedFields[engagementcase.FieldRcaID]
	return ok
}

// ResetRcaID resets all changes to the "rca_id" field.
func (m *EngagementCaseMutation) ResetRcaID() {
	m.rca_id = nil
	delete(m.clearedFields, engagementcase.FieldRcaID)
}

// SetCaseID sets the "case_id" field.
func (m *EngagementCaseMutation) SetCaseID(s string) {
	m.case_id = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *EngagementCaseMutation) CaseID() (r string, exists bool) {
	v := m.case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the EngagementCase entity.
// If the EngagementCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementCaseMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *EngagementCaseMutation) ResetCaseID() {
	m.case_id = nil
}

// SetVehicleID sets the "vehicle_id" field.
func (m *EngagementCaseMutation) SetVehicleID(s string) {
	m.vehicle_id = &s
}

// VehicleID returns the value of the "vehicle_id" field in the mutation.
func (m *EngagementCaseMutation) VehicleID() (r string, exists bool) {
	v := m.vehicle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleID returns the old "vehicle_id" field's value of the EngagementCase entity.
// If the EngagementCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementCaseMutation) OldVehicleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleID: %w", err)
	}
	return oldValue.VehicleID, nil
}

// ResetVehicleID resets all changes to the "vehicle_id" field.
func (m *EngagementCaseMutation) ResetVehicleID() {
	m.vehicle_id = nil
}

// SetCustomerPhone sets the "customer_phone" field.
func (m *EngagementCaseMutation) SetCustomerPhone(s string) {
	m.customer_phone = &s
}

// CustomerPhone returns the value of the "customer_phone" field in the mutation.
func (m *EngagementCaseMutation) CustomerPhone() (r string, exists bool) {
	v := m.customer_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerPhone returns the old "customer_phone" field's value of the EngagementCase entity.
// If the EngagementCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementCaseMutation) OldCustomerPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerPhone: %w", err)
	}
	return oldValue.CustomerPhone, nil
}

// ClearCustomerPhone clears the value of the "customer_phone" field.
func (m *EngagementCaseMutation) ClearCustomerPhone() {
	m.customer_phone = nil
	m.clearedFields[engagementcase.FieldCustomerPhone] = struct{}{}
}

// CustomerPhoneCleared returns if the "customer_phone" field was cleared in this mutation.
func (m *EngagementCaseMutation) CustomerPhoneCleared() bool {
	_, ok := m.clearedFields[engagementcase.FieldCustomerPhone]
	return ok
}

// ResetCustomerPhone resets all changes to the "customer_phone" field.
func (m *EngagementCaseMutation) ResetCustomerPhone() {
	m.customer_phone = nil
	delete(m.clearedFields, engagementcase.FieldCustomerPhone)
}

// SetCustomerName sets the "customer_name" field.
func (m *EngagementCaseMutation) SetCustomerName(s string) {
	m.customer_name = &s
}

// CustomerName returns the value of the "customer_name" field in the mutation.
func (m *EngagementCaseMutation) CustomerName() (r string, exists bool) {
	v := m.customer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerName returns the old "customer_name" field's value of the EngagementCase entity.
// If the EngagementCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementCaseMutation) OldCustomerName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerName: %w", err)
	}
	return oldValue.CustomerName, nil
}

// ClearCustomerName clears the value of the "customer_name" field.
func (m *EngagementCaseMutation) ClearCustomerName() {
	m.customer_name = nil
	m.clearedFields[engagementcase.FieldCustomerName] = struct{}{}
}

// CustomerNameCleared returns if the "customer_name" field was cleared in this mutation.
func (m *EngagementCaseMutation) CustomerNameCleared() bool {
	_, ok := m.clearedFields[engagementcase.FieldCustomerName]
	return ok
}

// ResetCustomerName resets all changes to the "customer_name" field.
func (m *EngagementCaseMutation) ResetCustomerName() {
	m.customer_name = nil
	delete(m.clearedFields, engagementcase.FieldCustomerName)
}

// SetCustomerDecision sets the "customer_decision" field.
func (m *EngagementCaseMutation) SetCustomerDecision(ed engagementcase.CustomerDecision) {
	m.customer_decision = &ed
}

// CustomerDecision returns the value of the "customer_decision" field in the mutation.
func (m *EngagementCaseMutation) CustomerDecision() (r engagementcase.CustomerDecision, exists bool) {
	v := m.customer_decision
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerDecision returns the old "customer_decision" field's value of the EngagementCase entity.
// If the EngagementCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementCaseMutation) OldCustomerDecision(ctx context.Context) (v engagementcase.CustomerDecision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerDecision: %w", err)
	}
	return oldValue.CustomerDecision, nil
}

// ResetCustomerDecision resets all changes to the "customer_decision" field.
func (m *EngagementCaseMutation) ResetCustomerDecision() {
	m.customer_decision = nil
}

// SetBookingID sets the "booking_id" field.
func (m *EngagementCaseMutation) SetBookingID(s string) {
	m.booking_id = &s
}

// BookingID returns the value of the "booking_id" field in the mutation.
func (m *EngagementCaseMutation) BookingID() (r string, exists bool) {
	v := m.booking_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBookingID returns the old "booking_id" field's value of the EngagementCase entity.
// If the EngagementCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementCaseMutation) OldBookingID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBookingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBookingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBookingID: %w", err)
	}
	return oldValue.BookingID, nil
}

// ClearBookingID clears the value of the "booking_id" field.
func (m *EngagementCaseMutation) ClearBookingID() {
	m.booking_id = nil
	m.clearedFields[engagementcase.FieldBookingID] = struct{}{}
}

// BookingIDCleared returns if the "booking_id" field was cleared in this mutation.
func (m *EngagementCaseMutation) BookingIDCleared() bool {
	_, ok := m.clearedFields[engagementcase.FieldBookingID]
	return ok
}

// ResetBookingID resets all changes to the "booking_id" field.
func (m *EngagementCaseMutation) ResetBookingID() {
	m.booking_id = nil
	delete(m.clearedFields, engagementcase.FieldBookingID)
}

// SetTranscript sets the "transcript" field.
func (m *EngagementCaseMutation) SetTranscript(value []map[string]interface{}) {
	m.transcript = &value
	m.appendtranscript = nil
}

// Transcript returns the value of the "transcript" field in the mutation.
func (m *EngagementCaseMutation) Transcript() (r []map[string]interface{}, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscript returns the old "transcript" field's value of the EngagementCase entity.
// If the EngagementCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementCaseMutation) OldTranscript(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscript: %w", err)
	}
	return oldValue.Transcript, nil
}

// AppendTranscript adds value to the "transcript" field.
func (m *EngagementCaseMutation) AppendTranscript(value []map[string]interface{}) {
	m.appendtranscript = append(m.appendtranscript, value...)
}

// AppendedTranscript returns the list of values that were appended to the "transcript" field in this mutation.
func (m *EngagementCaseMutation) AppendedTranscript() ([]map[string]interface{}, bool) {
	if len(m.appendtranscript) == 0 {
		return nil, false
	}
	return m.appendtranscript, true
}

// ClearTranscript clears the value of the "transcript" field.
func (m *EngagementCaseMutation) ClearTranscript() {
	m.transcript = nil
	m.appendtranscript = nil
	m.clearedFields[engagementcase.FieldTranscript] = struct{}{}
}

// TranscriptCleared returns if the "transcript" field was cleared in this mutation.
func (m *EngagementCaseMutation) TranscriptCleared() bool {
	_, ok := m.clearedFields[engagementcase.FieldTranscript]
	return ok
}

// ResetTranscript resets all changes to the "transcript" field.
func (m *EngagementCaseMutation) ResetTranscript() {
	m.transcript = nil
	m.appendtranscript = nil
	delete(m.clearedFields, engagementcase.FieldTranscript)
}

// SetStatus sets the "status" field.
func (m *EngagementCaseMutation) SetStatus(e engagementcase.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EngagementCaseMutation) Status() (r engagementcase.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EngagementCase entity.
// If the EngagementCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementCaseMutation) OldStatus(ctx context.Context) (v engagementcase.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EngagementCaseMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EngagementCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EngagementCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EngagementCase entity.
// If the EngagementCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EngagementCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EngagementCaseMutation builder.
func (m *EngagementCaseMutation) Where(ps ...predicate.EngagementCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EngagementCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EngagementCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EngagementCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EngagementCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EngagementCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EngagementCase).
func (m *EngagementCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EngagementCaseMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.scheduling_id != nil {
		fields = append(fields, engagementcase.FieldSchedulingID)
	}
	if m.rca_id != nil {
		fields = append(fields, engagementcase.FieldRcaID)
	}
	if m.case_id != nil {
		fields = append(fields, engagementcase.FieldCaseID)
	}
	if m.vehicle_id != nil {
		fields = append(fields, engagementcase.FieldVehicleID)
	}
	if m.customer_phone != nil {
		fields = append(fields, engagementcase.FieldCustomerPhone)
	}
	if m.customer_name != nil {
		fields = append(fields, engagementcase.FieldCustomerName)
	}
	if m.customer_decision != nil {
		fields = append(fields, engagementcase.FieldCustomerDecision)
	}
	if m.booking_id != nil {
		fields = append(fields, engagementcase.FieldBookingID)
	}
	if m.transcript != nil {
		fields = append(fields, engagementcase.FieldTranscript)
	}
	if m.status != nil {
		fields = append(fields, engagementcase.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, engagementcase.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EngagementCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case engagementcase.FieldSchedulingID:
		return m.SchedulingID()
	case engagementcase.FieldRcaID:
		return m.RcaID()
	case engagementcase.FieldCaseID:
		return m.CaseID()
	case engagementcase.FieldVehicleID:
		return m.VehicleID()
	case engagementcase.FieldCustomerPhone:
		return m.CustomerPhone()
	case engagementcase.FieldCustomerName:
		return m.CustomerName()
	case engagementcase.FieldCustomerDecision:
		return m.CustomerDecision()
	case engagementcase.FieldBookingID:
		return m.BookingID()
	case engagementcase.FieldTranscript:
		return m.Transcript()
	case engagementcase.FieldStatus:
		return m.Status()
	case engagementcase.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EngagementCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case engagementcase.FieldSchedulingID:
		return m.OldSchedulingID(ctx)
	case engagementcase.FieldRcaID:
		return m.OldRcaID(ctx)
	case engagementcase.FieldCaseID:
		return m.OldCaseID(ctx)
	case engagementcase.FieldVehicleID:
		return m.OldVehicleID(ctx)
	case engagementcase.FieldCustomerPhone:
		return m.OldCustomerPhone(ctx)
	case engagementcase.FieldCustomerName:
		return m.OldCustomerName(ctx)
	case engagementcase.FieldCustomerDecision:
		return m.OldCustomerDecision(ctx)
	case engagementcase.FieldBookingID:
		return m.OldBookingID(ctx)
	case engagementcase.FieldTranscript:
		return m.OldTranscript(ctx)
	case engagementcase.FieldStatus:
		return m.OldStatus(ctx)
	case engagementcase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EngagementCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngagementCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case engagementcase.FieldSchedulingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchedulingID(v)
		return nil
	case engagementcase.FieldRcaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRcaID(v)
		return nil
	case engagementcase.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case engagementcase.FieldVehicleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleID(v)
		return nil
	case engagementcase.FieldCustomerPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerPhone(v)
		return nil
	case engagementcase.FieldCustomerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerName(v)
		return nil
	case engagementcase.FieldCustomerDecision:
		v, ok := value.(engagementcase.CustomerDecision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerDecision(v)
		return nil
	case engagementcase.FieldBookingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBookingID(v)
		return nil
	case engagementcase.FieldTranscript:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscript(v)
		return nil
	case engagementcase.FieldStatus:
		v, ok := value.(engagementcase.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case engagementcase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EngagementCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EngagementCaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EngagementCaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngagementCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EngagementCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EngagementCaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(engagementcase.FieldRcaID) {
		fields = append(fields, engagementcase.FieldRcaID)
	}
	if m.FieldCleared(engagementcase.FieldCustomerPhone) {
		fields = append(fields, engagementcase.FieldCustomerPhone)
	}
	if m.FieldCleared(engagementcase.FieldCustomerName) {
		fields = append(fields, engagementcase.FieldCustomerName)
	}
	if m.FieldCleared(engagementcase.FieldBookingID) {
		fields = append(fields, engagementcase.FieldBookingID)
	}
	if m.FieldCleared(engagementcase.FieldTranscript) {
		fields = append(fields, engagementcase.FieldTranscript)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EngagementCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EngagementCaseMutation) ClearField(name string) error {
	switch name {
	case engagementcase.FieldRcaID:
		m.ClearRcaID()
		return nil
	case engagementcase.FieldCustomerPhone:
		m.ClearCustomerPhone()
		return nil
	case engagementcase.FieldCustomerName:
		m.ClearCustomerName()
		return nil
	case engagementcase.FieldBookingID:
		m.ClearBookingID()
		return nil
	case engagementcase.FieldTranscript:
		m.ClearTranscript()
		return nil
	}
	return fmt.Errorf("unknown EngagementCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EngagementCaseMutation) ResetField(name string) error {
	switch name {
	case engagementcase.FieldSchedulingID:
		m.ResetSchedulingID()
		return nil
	case engagementcase.FieldRcaID:
		m.ResetRcaID()
		return nil
	case engagementcase.FieldCaseID:
		m.ResetCaseID()
		return nil
	case engagementcase.FieldVehicleID:
		m.ResetVehicleID()
		return nil
	case engagementcase.FieldCustomerPhone:
		m.ResetCustomerPhone()
		return nil
	case engagementcase.FieldCustomerName:
		m.ResetCustomerName()
		return nil
	case engagementcase.FieldCustomerDecision:
		m.ResetCustomerDecision()
		return nil
	case engagementcase.FieldBookingID:
		m.ResetBookingID()
		return nil
	case engagementcase.FieldTranscript:
		m.ResetTranscript()
		return nil
	case engagementcase.FieldStatus:
		m.ResetStatus()
		return nil
	case engagementcase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EngagementCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EngagementCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EngagementCaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EngagementCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EngagementCaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EngagementCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EngagementCaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EngagementCaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EngagementCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EngagementCaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EngagementCase edge %s", name)
}

// FeedbackCaseMutation represents an operation that mutates the FeedbackCase nodes in the graph.
type FeedbackCaseMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	booking_id          *string
	case_id             *string
	vehicle_id          *string
	cei_score           *float64
	addcei_score        *float64
	validation_label    *feedbackcase.ValidationLabel
	recommended_retrain *bool
	technician_notes    *string
	customer_rating     *int
	addcustomer_rating  *int
	status              *feedbackcase.Status
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*FeedbackCase, error)
	predicates          []predicate.FeedbackCase
}

var _ ent.Mutation = (*FeedbackCaseMutation)(nil)

// feedbackcaseOption allows management of the mutation configuration using functional options.
type feedbackcaseOption func(*FeedbackCaseMutation)

// newFeedbackCaseMutation creates new mutation for the FeedbackCase entity.
func newFeedbackCaseMutation(c config, op Op, opts ...feedbackcaseOption) *FeedbackCaseMutation {
	m := &FeedbackCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedbackCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedbackCaseID sets the ID field of the mutation.
func withFeedbackCaseID(id string) feedbackcaseOption {
	return func(m *FeedbackCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *FeedbackCase
		)
		m.oldValue = func(ctx context.Context) (*FeedbackCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FeedbackCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedbackCase sets the old FeedbackCase of the mutation.
func withFeedbackCase(node *FeedbackCase) feedbackcaseOption {
	return func(m *FeedbackCaseMutation) {
		m.oldValue = func(context.Context) (*FeedbackCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedbackCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedbackCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FeedbackCase entities.
func (m *FeedbackCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedbackCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedbackCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FeedbackCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBookingID sets the "booking_id" field.
func (m *FeedbackCaseMutation) SetBookingID(s string) {
	m.booking_id = &s
}

// BookingID returns the value of the "booking_id" field in the mutation.
func (m *FeedbackCaseMutation) BookingID() (r string, exists bool) {
	v := m.booking_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBookingID returns the old "booking_id" field's value of the FeedbackCase entity.
// If the FeedbackCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackCaseMutation) OldBookingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBookingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBookingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBookingID: %w", err)
	}
	return oldValue.BookingID, nil
}

// ResetBookingID resets all changes to the "booking_id" field.
func (m *FeedbackCaseMutation) ResetBookingID() {
	m.booking_id = nil
}

// SetCaseID sets the "case_id" field.
func (m *FeedbackCaseMutation) SetCaseID(s string) {
	m.case_id = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *FeedbackCaseMutation) CaseID() (r string, exists bool) {
	v := m.case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the FeedbackCase entity.
// If the FeedbackCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackCaseMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *FeedbackCaseMutation) ResetCaseID() {
	m.case_id = nil
}

// SetVehicleID sets the "vehicle_id" field.
func (m *FeedbackCaseMutation) SetVehicleID(s string) {
	m.vehicle_id = &s
}

// VehicleID returns the value of the "vehicle_id" field in the mutation.
func (m *FeedbackCaseMutation) VehicleID() (r string, exists bool) {
	v := m.vehicle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleID returns the old "vehicle_id" field's value of the FeedbackCase entity.
// If the FeedbackCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackCaseMutation) OldVehicleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleID: %w", err)
	}
	return oldValue.VehicleID, nil
}

// ResetVehicleID resets all changes to the "vehicle_id" field.
func (m *FeedbackCaseMutation) ResetVehicleID() {
	m.vehicle_id = nil
}

// SetCeiScore sets the "cei_score" field.
func (m *FeedbackCaseMutation) SetCeiScore(f float64) {
	m.cei_score = &f
	m.addcei_score = nil
}

// CeiScore returns the value of the "cei_score" field in the mutation.
func (m *FeedbackCaseMutation) CeiScore() (r float64, exists bool) {
	v := m.cei_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCeiScore returns the old "cei_score" field's value of the FeedbackCase entity.
// If the FeedbackCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackCaseMutation) OldCeiScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCeiScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCeiScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCeiScore: %w", err)
	}
	return oldValue.CeiScore, nil
}

// AddCeiScore adds f to the "cei_score" field.
func (m *FeedbackCaseMutation) AddCeiScore(f float64) {
	if m.addcei_score != nil {
		*m.addcei_score += f
	} else {
		m.addcei_score = &f
	}
}

// AddedCeiScore returns the value that was added to the "cei_score" field in this mutation.
func (m *FeedbackCaseMutation) AddedCeiScore() (r float64, exists bool) {
	v := m.addcei_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCeiScore resets all changes to the "cei_score" field.
func (m *FeedbackCaseMutation) ResetCeiScore() {
	m.cei_score = nil
	m.addcei_score = nil
}

// SetValidationLabel sets the "validation_label" field.
func (m *FeedbackCaseMutation) SetValidationLabel(fl feedbackcase.ValidationLabel) {
	m.validation_label = &fl
}

// ValidationLabel returns the value of the "validation_label" field in the mutation.
func (m *FeedbackCaseMutation) ValidationLabel() (r feedbackcase.ValidationLabel, exists bool) {
	v := m.validation_label
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationLabel returns the old "validation_label" field's value of the FeedbackCase entity.
// If the FeedbackCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackCaseMutation) OldValidationLabel(ctx context.Context) (v feedbackcase.ValidationLabel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationLabel: %w", err)
	}
	return oldValue.ValidationLabel, nil
}

// ResetValidationLabel resets all changes to the "validation_label" field.
func (m *FeedbackCaseMutation) ResetValidationLabel() {
	m.validation_label = nil
}

// SetRecommendedRetrain sets the "recommended_retrain" field.
func (m *FeedbackCaseMutation) SetRecommendedRetrain(b bool) {
	m.recommended_retrain = &b
}

// RecommendedRetrain returns the value of the "recommended_retrain" field in the mutation.
func (m *FeedbackCaseMutation) RecommendedRetrain() (r bool, exists bool) {
	v := m.recommended_retrain
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendedRetrain returns the old "recommended_retrain" field's value of the FeedbackCase entity.
// If the FeedbackCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackCaseMutation) OldRecommendedRetrain(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendedRetrain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendedRetrain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendedRetrain: %w", err)
	}
	return oldValue.RecommendedRetrain, nil
}

// ResetRecommendedRetrain resets all changes to the "recommended_retrain" field.
func (m *FeedbackCaseMutation) ResetRecommendedRetrain() {
	m.recommended_retrain = nil
}

// SetTechnicianNotes sets the "technician_notes" field.
func (m *FeedbackCaseMutation) SetTechnicianNotes(s string) {
	m.technician_notes = &s
}

// TechnicianNotes returns the value of the "technician_notes" field in the mutation.
func (m *FeedbackCaseMutation) TechnicianNotes() (r string, exists bool) {
	v := m.technician_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldTechnicianNotes returns the old "technician_notes" field's value of the FeedbackCase entity.
// If the FeedbackCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackCaseMutation) OldTechnicianNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTechnicianNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTechnicianNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTechnicianNotes: %w", err)
	}
	return oldValue.TechnicianNotes, nil
}

// ClearTechnicianNotes clears the value of the "technician_notes" field.
func (m *FeedbackCaseMutation) ClearTechnicianNotes() {
	m.technician_notes = nil
	m.clearedFields[feedbackcase.FieldTechnicianNotes] = struct{}{}
}

// TechnicianNotesCleared returns if the "technician_notes" field was cleared in this mutation.
func (m *FeedbackCaseMutation) TechnicianNotesCleared() bool {
	_, ok := m.clearedFields[feedbackcase.FieldTechnicianNotes]
	return ok
}

// ResetTechnicianNotes resets all changes to the "technician_notes" field.
func (m *FeedbackCaseMutation) ResetTechnicianNotes() {
	m.technician_notes = nil
	delete(m.clearedFields, feedbackcase.FieldTechnicianNotes)
}

// SetCustomerRating sets the "customer_rating" field.
func (m *FeedbackCaseMutation) SetCustomerRating(i int) {
	m.customer_rating = &i
	m.addcustomer_rating = nil
}

// CustomerRating returns the value of the "customer_rating" field in the mutation.
func (m *FeedbackCaseMutation) CustomerRating() (r int, exists bool) {
	v := m.customer_rating
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerRating returns the old "customer_rating" field's value of the FeedbackCase entity.
// If the FeedbackCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackCaseMutation) OldCustomerRating(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerRating: %w", err)
	}
	return oldValue.CustomerRating, nil
}

// AddCustomerRating adds i to the "customer_rating" field.
func (m *FeedbackCaseMutation) AddCustomerRating(i int) {
	if m.addcustomer_rating != nil {
		*m.addcustomer_rating += i
	} else {
		m.addcustomer_rating = &i
	}
}

// AddedCustomerRating returns the value that was added to the "customer_rating" field in this mutation.
func (m *FeedbackCaseMutation) AddedCustomerRating() (r int, exists bool) {
	v := m.addcustomer_rating
	if v == nil {
		return
	}
	return *v, true
}

// ClearCustomerRating clears the value of the "customer_rating" field.
func (m *FeedbackCaseMutation) ClearCustomerRating() {
	m.customer_rating = nil
	m.addcustomer_rating = nil
	m.clearedFields[feedbackcase.FieldCustomerRating] = struct{}{}
}

// CustomerRatingCleared returns if the "customer_rating" field was cleared in this mutation.
func (m *FeedbackCaseMutation) CustomerRatingCleared() bool {
	_, ok := m.clearedFields[feedbackcase.FieldCustomerRating]
	return ok
}

// ResetCustomerRating resets all changes to the "customer_rating" field.
func (m *FeedbackCaseMutation) ResetCustomerRating() {
	m.customer_rating = nil
	m.addcustomer_rating = nil
	delete(m.clearedFields, feedbackcase.FieldCustomerRating)
}

// SetStatus sets the "status" field.
func (m *FeedbackCaseMutation) SetStatus(f feedbackcase.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FeedbackCaseMutation) Status() (r feedbackcase.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FeedbackCase entity.
// If the FeedbackCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackCaseMutation) OldStatus(ctx context.Context) (v feedbackcase.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FeedbackCaseMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FeedbackCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeedbackCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FeedbackCase entity.
// If the FeedbackCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FeedbackCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the FeedbackCaseMutation builder.
func (m *FeedbackCaseMutation) Where(ps ...predicate.FeedbackCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedbackCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedbackCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FeedbackCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedbackCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedbackCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FeedbackCase).
func (m *FeedbackCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedbackCaseMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.booking_id != nil {
		fields = append(fields, feedbackcase.FieldBookingID)
	}
	if m.case_id != nil {
		fields = append(fields, feedbackcase.FieldCaseID)
	}
	if m.vehicle_id != nil {
		fields = append(fields, feedbackcase.FieldVehicleID)
	}
	if m.cei_score != nil {
		fields = append(fields, feedbackcase.FieldCeiScore)
	}
	if m.validation_label != nil {
		fields = append(fields, feedbackcase.FieldValidationLabel)
	}
	if m.recommended_retrain != nil {
		fields = append(fields, feedbackcase.FieldRecommendedRetrain)
	}
	if m.technician_notes != nil {
		fields = append(fields, feedbackcase.FieldTechnicianNotes)
	}
	if m.customer_rating != nil {
		fields = append(fields, feedbackcase.FieldCustomerRating)
	}
	if m.status != nil {
		fields = append(fields, feedbackcase.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, feedbackcase.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedbackCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedbackcase.FieldBookingID:
		return m.BookingID()
	case feedbackcase.FieldCaseID:
		return m.CaseID()
	case feedbackcase.FieldVehicleID:
		return m.VehicleID()
	case feedbackcase.FieldCeiScore:
		return m.CeiScore()
	case feedbackcase.FieldValidationLabel:
		return m.ValidationLabel()
	case feedbackcase.FieldRecommendedRetrain:
		return m.RecommendedRetrain()
	case feedbackcase.FieldTechnicianNotes:
		return m.TechnicianNotes()
	case feedbackcase.FieldCustomerRating:
		return m.CustomerRating()
	case feedbackcase.FieldStatus:
		return m.Status()
	case feedbackcase.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedbackCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedbackcase.FieldBookingID:
		return m.OldBookingID(ctx)
	case feedbackcase.FieldCaseID:
		return m.OldCaseID(ctx)
	case feedbackcase.FieldVehicleID:
		return m.OldVehicleID(ctx)
	case feedbackcase.FieldCeiScore:
		return m.OldCeiScore(ctx)
	case feedbackcase.FieldValidationLabel:
		return m.OldValidationLabel(ctx)
	case feedbackcase.FieldRecommendedRetrain:
		return m.OldRecommendedRetrain(ctx)
	case feedbackcase.FieldTechnicianNotes:
		return m.OldTechnicianNotes(ctx)
	case feedbackcase.FieldCustomerRating:
		return m.OldCustomerRating(ctx)
	case feedbackcase.FieldStatus:
		return m.OldStatus(ctx)
	case feedbackcase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FeedbackCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedbackcase.FieldBookingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBookingID(v)
		return nil
	case feedbackcase.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case feedbackcase.FieldVehicleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleID(v)
		return nil
	case feedbackcase.FieldCeiScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCeiScore(v)
		return nil
	case feedbackcase.FieldValidationLabel:
		v, ok := value.(feedbackcase.ValidationLabel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationLabel(v)
		return nil
	case feedbackcase.FieldRecommendedRetrain:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendedRetrain(v)
		return nil
	case feedbackcase.FieldTechnicianNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTechnicianNotes(v)
		return nil
	case feedbackcase.FieldCustomerRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerRating(v)
		return nil
	case feedbackcase.FieldStatus:
		v, ok := value.(feedbackcase.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case feedbackcase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedbackCaseMutation) AddedFields() []string {
	var fields []string
	if m.addcei_score != nil {
		fields = append(fields, feedbackcase.FieldCeiScore)
	}
	if m.addcustomer_rating != nil {
		fields = append(fields, feedbackcase.FieldCustomerRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedbackCaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feedbackcase.FieldCeiScore:
		return m.AddedCeiScore()
	case feedbackcase.FieldCustomerRating:
		return m.AddedCustomerRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feedbackcase.FieldCeiScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCeiScore(v)
		return nil
	case feedbackcase.FieldCustomerRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCustomerRating(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedbackCaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feedbackcase.FieldTechnicianNotes) {
		fields = append(fields, feedbackcase.FieldTechnicianNotes)
	}
	if m.FieldCleared(feedbackcase.FieldCustomerRating) {
		fields = append(fields, feedbackcase.FieldCustomerRating)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedbackCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedbackCaseMutation) ClearField(name string) error {
	switch name {
	case feedbackcase.FieldTechnicianNotes:
		m.ClearTechnicianNotes()
		return nil
	case feedbackcase.FieldCustomerRating:
		m.ClearCustomerRating()
		return nil
	}
	return fmt.Errorf("unknown FeedbackCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedbackCaseMutation) ResetField(name string) error {
	switch name {
	case feedbackcase.FieldBookingID:
		m.ResetBookingID()
		return nil
	case feedbackcase.FieldCaseID:
		m.ResetCaseID()
		return nil
	case feedbackcase.FieldVehicleID:
		m.ResetVehicleID()
		return nil
	case feedbackcase.FieldCeiScore:
		m.ResetCeiScore()
		return nil
	case feedbackcase.FieldValidationLabel:
		m.ResetValidationLabel()
		return nil
	case feedbackcase.FieldRecommendedRetrain:
		m.ResetRecommendedRetrain()
		return nil
	case feedbackcase.FieldTechnicianNotes:
		m.ResetTechnicianNotes()
		return nil
	case feedbackcase.FieldCustomerRating:
		m.ResetCustomerRating()
		return nil
	case feedbackcase.FieldStatus:
		m.ResetStatus()
		return nil
	case feedbackcase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FeedbackCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedbackCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedbackCaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedbackCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedbackCaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedbackCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedbackCaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedbackCaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FeedbackCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedbackCaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FeedbackCase edge %s", name)
}

// HumanReviewMutation represents an operation that mutates the HumanReview nodes in the graph.
type HumanReviewMutation struct {
	config
	op            Op
	typ           string
	id            *string
	case_id       *string
	stage         *string
	confidence    *float64
	addconfidence *float64
	message       *map[string]interface{}
	review_status *humanreview.ReviewStatus
	created_at    *time.Time
	resolved_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*HumanReview, error)
	predicates    []predicate.HumanReview
}

var _ ent.Mutation = (*HumanReviewMutation)(nil)

// humanreviewOption allows management of the mutation configuration using functional options.
type humanreviewOption func(*HumanReviewMutation)

// newHumanReviewMutation creates new mutation for the HumanReview entity.
func newHumanReviewMutation(c config, op Op, opts ...humanreviewOption) *HumanReviewMutation {
	m := &HumanReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeHumanReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHumanReviewID sets the ID field of the mutation.
func withHumanReviewID(id string) humanreviewOption {
	return func(m *HumanReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *HumanReview
		)
		m.oldValue = func(ctx context.Context) (*HumanReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HumanReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHumanReview sets the old HumanReview of the mutation.
func withHumanReview(node *HumanReview) humanreviewOption {
	return func(m *HumanReviewMutation) {
		m.oldValue = func(context.Context) (*HumanReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HumanReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HumanReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HumanReview entities.
func (m *HumanReviewMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HumanReviewMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HumanReviewMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HumanReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *HumanReviewMutation) SetCaseID(s string) {
	m.case_id = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *HumanReviewMutation) CaseID() (r string, exists bool) {
	v := m.case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the HumanReview entity.
// If the HumanReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanReviewMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *HumanReviewMutation) ResetCaseID() {
	m.case_id = nil
}

// SetStage sets the "stage" field.
func (m *HumanReviewMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *HumanReviewMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the HumanReview entity.
// If the HumanReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanReviewMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *HumanReviewMutation) ResetStage() {
	m.stage = nil
}

// SetConfidence sets the "confidence" field.
func (m *HumanReviewMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *HumanReviewMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the HumanReview entity.
// If the HumanReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanReviewMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *HumanReviewMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *HumanReviewMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *HumanReviewMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetMessage sets the "message" field.
func (m *HumanReviewMutation) SetMessage(value map[string]interface{}) {
	m.message = &value
}

// Message returns the value of the "message" field in the mutation.
func (m *HumanReviewMutation) Message() (r map[string]interface{}, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the HumanReview entity.
// If the HumanReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanReviewMutation) OldMessage(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *HumanReviewMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[humanreview.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *HumanReviewMutation) MessageCleared() bool {
	_, ok := m.clearedFields[humanreview.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *HumanReviewMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, humanreview.FieldMessage)
}

// SetReviewStatus sets the "review_status" field.
func (m *HumanReviewMutation) SetReviewStatus(hs humanreview.ReviewStatus) {
	m.review_status = &hs
}

// ReviewStatus returns the value of the "review_status" field in the mutation.
func (m *HumanReviewMutation) ReviewStatus() (r humanreview.ReviewStatus, exists bool) {
	v := m.review_status
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewStatus returns the old "review_status" field's value of the HumanReview entity.
// If the HumanReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanReviewMutation) OldReviewStatus(ctx context.Context) (v humanreview.ReviewStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewStatus: %w", err)
	}
	return oldValue.ReviewStatus, nil
}

// ResetReviewStatus resets all changes to the "review_status" field.
func (m *HumanReviewMutation) ResetReviewStatus() {
	m.review_status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *HumanReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HumanReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HumanReview entity.
// If the HumanReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HumanReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *HumanReviewMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *HumanReviewMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the HumanReview entity.
// If the HumanReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanReviewMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *HumanReviewMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[humanreview.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *HumanReviewMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[humanreview.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *HumanReviewMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, humanreview.FieldResolvedAt)
}

// Where appends a list predicates to the HumanReviewMutation builder.
func (m *HumanReviewMutation) Where(ps ...predicate.HumanReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HumanReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HumanReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HumanReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HumanReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HumanReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HumanReview).
func (m *HumanReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HumanReviewMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.case_id != nil {
		fields = append(fields, humanreview.FieldCaseID)
	}
	if m.stage != nil {
		fields = append(fields, humanreview.FieldStage)
	}
	if m.confidence != nil {
		fields = append(fields, humanreview.FieldConfidence)
	}
	if m.message != nil {
		fields = append(fields, humanreview.FieldMessage)
	}
	if m.review_status != nil {
		fields = append(fields, humanreview.FieldReviewStatus)
	}
	if m.created_at != nil {
		fields = append(fields, humanreview.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, humanreview.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HumanReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case humanreview.FieldCaseID:
		return m.CaseID()
	case humanreview.FieldStage:
		return m.Stage()
	case humanreview.FieldConfidence:
		return m.Confidence()
	case humanreview.FieldMessage:
		return m.Message()
	case humanreview.FieldReviewStatus:
		return m.ReviewStatus()
	case humanreview.FieldCreatedAt:
		return m.CreatedAt()
	case humanreview.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HumanReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case humanreview.FieldCaseID:
		return m.OldCaseID(ctx)
	case humanreview.FieldStage:
		return m.OldStage(ctx)
	case humanreview.FieldConfidence:
		return m.OldConfidence(ctx)
	case humanreview.FieldMessage:
		return m.OldMessage(ctx)
	case humanreview.FieldReviewStatus:
		return m.OldReviewStatus(ctx)
	case humanreview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case humanreview.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HumanReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HumanReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case humanreview.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case humanreview.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case humanreview.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case humanreview.FieldMessage:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case humanreview.FieldReviewStatus:
		v, ok := value.(humanreview.ReviewStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewStatus(v)
		return nil
	case humanreview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case humanreview.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HumanReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HumanReviewMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, humanreview.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HumanReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case humanreview.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HumanReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case humanreview.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown HumanReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HumanReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(humanreview.FieldMessage) {
		fields = append(fields, humanreview.FieldMessage)
	}
	if m.FieldCleared(humanreview.FieldResolvedAt) {
		fields = append(fields, humanreview.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HumanReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HumanReviewMutation) ClearField(name string) error {
	switch name {
	case humanreview.FieldMessage:
		m.ClearMessage()
		return nil
	case humanreview.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown HumanReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HumanReviewMutation) ResetField(name string) error {
	switch name {
	case humanreview.FieldCaseID:
		m.ResetCaseID()
		return nil
	case humanreview.FieldStage:
		m.ResetStage()
		return nil
	case humanreview.FieldConfidence:
		m.ResetConfidence()
		return nil
	case humanreview.FieldMessage:
		m.ResetMessage()
		return nil
	case humanreview.FieldReviewStatus:
		m.ResetReviewStatus()
		return nil
	case humanreview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case humanreview.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown HumanReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HumanReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HumanReviewMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HumanReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HumanReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HumanReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HumanReviewMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HumanReviewMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown HumanReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HumanReviewMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown HumanReview edge %s", name)
}

// ManufacturingCaseMutation represents an operation that mutates the ManufacturingCase nodes in the graph.
type ManufacturingCaseMutation struct {
	config
	op                               Op
	typ                              string
	id                               *string
	feedback_id                      *string
	case_id                          *string
	vehicle_id                       *string
	issue                            *string
	capa_recommendation              *string
	severity                         *manufacturingcase.Severity
	recurrence_cluster_size          *int
	addrecurrence_cluster_size       *int
	vehicle_recurrence_count         *int
	addvehicle_recurrence_count      *int
	anomaly_type_recurrence_count    *int
	addanomaly_type_recurrence_count *int
	component_recurrence_count       *int
	addcomponent_recurrence_count    *int
	created_at                       *time.Time
	clearedFields                    map[string]struct{}
	done                             bool
	oldValue                         func(context.Context) (*ManufacturingCase, error)
	predicates                       []predicate.ManufacturingCase
}

var _ ent.Mutation = (*ManufacturingCaseMutation)(nil)

// manufacturingcaseOption allows management of the mutation configuration using functional options.
type manufacturingcaseOption func(*ManufacturingCaseMutation)

// newManufacturingCaseMutation creates new mutation for the ManufacturingCase entity.
func newManufacturingCaseMutation(c config, op Op, opts ...manufacturingcaseOption) *ManufacturingCaseMutation {
	m := &ManufacturingCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeManufacturingCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withManufacturingCaseID sets the ID field of the mutation.
func withManufacturingCaseID(id string) manufacturingcaseOption {
	return func(m *ManufacturingCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *ManufacturingCase
		)
		m.oldValue = func(ctx context.Context) (*ManufacturingCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ManufacturingCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withManufacturingCase sets the old ManufacturingCase of the mutation.
func withManufacturingCase(node *ManufacturingCase) manufacturingcaseOption {
	return func(m *ManufacturingCaseMutation) {
		m.oldValue = func(context.Context) (*ManufacturingCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ManufacturingCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ManufacturingCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ManufacturingCase entities.
func (m *ManufacturingCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ManufacturingCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ManufacturingCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ManufacturingCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFeedbackID sets the "feedback_id" field.
func (m *ManufacturingCaseMutation) SetFeedbackID(s string) {
	m.feedback_id = &s
}

// FeedbackID returns the value of the "feedback_id" field in the mutation.
func (m *ManufacturingCaseMutation) FeedbackID() (r string, exists bool) {
	v := m.feedback_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedbackID returns the old "feedback_id" field's value of the ManufacturingCase entity.
// If the ManufacturingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManufacturingCaseMutation) OldFeedbackID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedbackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedbackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedbackID: %w", err)
	}
	return oldValue.FeedbackID, nil
}

// ResetFeedbackID resets all changes to the "feedback_id" field.
func (m *ManufacturingCaseMutation) ResetFeedbackID() {
	m.feedback_id = nil
}

// SetCaseID sets the "case_id" field.
func (m *ManufacturingCaseMutation) SetCaseID(s string) {
	m.case_id = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *ManufacturingCaseMutation) CaseID() (r string, exists bool) {
	v := m.case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the ManufacturingCase entity.
// If the ManufacturingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManufacturingCaseMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *ManufacturingCaseMutation) ResetCaseID() {
	m.case_id = nil
}

// SetVehicleID sets the "vehicle_id" field.
func (m *ManufacturingCaseMutation) SetVehicleID(s string) {
	m.vehicle_id = &s
}

// VehicleID returns the value of the "vehicle_id" field in the mutation.
func (m *ManufacturingCaseMutation) VehicleID() (r string, exists bool) {
	v := m.vehicle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleID returns the old "vehicle_id" field's value of the ManufacturingCase entity.
// If the ManufacturingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManufacturingCaseMutation) OldVehicleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleID: %w", err)
	}
	return oldValue.VehicleID, nil
}

// ResetVehicleID resets all changes to the "vehicle_id" field.
func (m *ManufacturingCaseMutation) ResetVehicleID() {
	m.vehicle_id = nil
}

// SetIssue sets the "issue" field.
func (m *ManufacturingCaseMutation) SetIssue(s string) {
	m.issue = &s
}

// Issue returns the value of the "issue" field in the mutation.
func (m *ManufacturingCaseMutation) Issue() (r string, exists bool) {
	v := m.issue
	if v == nil {
		return
	}
	return *v, true
}

// OldIssue returns the old "issue" field's value of the ManufacturingCase entity.
// If the ManufacturingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManufacturingCaseMutation) OldIssue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssue: %w", err)
	}
	return oldValue.Issue, nil
}

// ResetIssue resets all changes to the "issue" field.
func (m *ManufacturingCaseMutation) ResetIssue() {
	m.issue = nil
}

// SetCapaRecommendation sets the "capa_recommendation" field.
func (m *ManufacturingCaseMutation) SetCapaRecommendation(s string) {
	m.capa_recommendation = &s
}

// CapaRecommendation returns the value of the "capa_recommendation" field in the mutation.
func (m *ManufacturingCaseMutation) CapaRecommendation() (r string, exists bool) {
	v := m.capa_recommendation
	if v == nil {
		return
	}
	return *v, true
}

// OldCapaRecommendation returns the old "capa_recommendation" field's value of the ManufacturingCase entity.
// If the ManufacturingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManufacturingCaseMutation) OldCapaRecommendation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapaRecommendation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapaRecommendation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapaRecommendation: %w", err)
	}
	return oldValue.CapaRecommendation, nil
}

// ResetCapaRecommendation resets all changes to the "capa_recommendation" field.
func (m *ManufacturingCaseMutation) ResetCapaRecommendation() {
	m.capa_recommendation = nil
}

// SetSeverity sets the "severity" field.
func (m *ManufacturingCaseMutation) SetSeverity(value manufacturingcase.Severity) {
	m.severity = &value
}

// Severity returns the value of the "severity" field in the mutation.
func (m *ManufacturingCaseMutation) Severity() (r manufacturingcase.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the ManufacturingCase entity.
// If the ManufacturingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManufacturingCaseMutation) OldSeverity(ctx context.Context) (v manufacturingcase.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *ManufacturingCaseMutation) ResetSeverity() {
	m.severity = nil
}

// SetRecurrenceClusterSize sets the "recurrence_cluster_size" field.
func (m *ManufacturingCaseMutation) SetRecurrenceClusterSize(i int) {
	m.recurrence_cluster_size = &i
	m.addrecurrence_cluster_size = nil
}

// RecurrenceClusterSize returns the value of the "recurrence_cluster_size" field in the mutation.
func (m *ManufacturingCaseMutation) RecurrenceClusterSize() (r int, exists bool) {
	v := m.recurrence_cluster_size
	if v == nil {
		return
	}
	return *v, true
}

// OldRecurrenceClusterSize returns the old "recurrence_cluster_size" field's value of the ManufacturingCase entity.
// If the ManufacturingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManufacturingCaseMutation) OldRecurrenceClusterSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecurrenceClusterSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecurrenceClusterSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecurrenceClusterSize: %w", err)
	}
	return oldValue.RecurrenceClusterSize, nil
}

// AddRecurrenceClusterSize adds i to the "recurrence_cluster_size" field.
func (m *ManufacturingCaseMutation) AddRecurrenceClusterSize(i int) {
	if m.addrecurrence_cluster_size != nil {
		*m.addrecurrence_cluster_size += i
	} else {
		m.addrecurrence_cluster_size = &i
	}
}

// AddedRecurrenceClusterSize returns the value that was added to the "recurrence_cluster_size" field in this mutation.
func (m *ManufacturingCaseMutation) AddedRecurrenceClusterSize() (r int, exists bool) {
	v := m.addrecurrence_cluster_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecurrenceClusterSize resets all changes to the "recurrence_cluster_size" field.
func (m *ManufacturingCaseMutation) ResetRecurrenceClusterSize() {
	m.recurrence_cluster_size = nil
	m.addrecurrence_cluster_size = nil
}

// SetVehicleRecurrenceCount sets the "vehicle_recurrence_count" field.
func (m *ManufacturingCaseMutation) SetVehicleRecurrenceCount(i int) {
	m.vehicle_recurrence_count = &i
	m.addvehicle_recurrence_count = nil
}

// VehicleRecurrenceCount returns the value of the "vehicle_recurrence_count" field in the mutation.
func (m *ManufacturingCaseMutation) VehicleRecurrenceCount() (r int, exists bool) {
	v := m.vehicle_recurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleRecurrenceCount returns the old "vehicle_recurrence_count" field's value of the ManufacturingCase entity.
// If the ManufacturingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManufacturingCaseMutation) OldVehicleRecurrenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleRecurrenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleRecurrenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleRecurrenceCount: %w", err)
	}
	return oldValue.VehicleRecurrenceCount, nil
}

// AddVehicleRecurrenceCount adds i to the "vehicle_recurrence_count" field.
func (m *ManufacturingCaseMutation) AddVehicleRecurrenceCount(i int) {
	if m.addvehicle_recurrence_count != nil {
		*m.addvehicle_recurrence_count += i
	} else {
		m.addvehicle_recurrence_count = &i
	}
}

// AddedVehicleRecurrenceCount returns the value that was added to the "vehicle_recurrence_count" field in this mutation.
func (m *ManufacturingCaseMutation) AddedVehicleRecurrenceCount() (r int, exists bool) {
	v := m.addvehicle_recurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetVehicleRecurrenceCount resets all changes to the "vehicle_recurrence_count" field.
func (m *ManufacturingCaseMutation) ResetVehicleRecurrenceCount() {
	m.vehicle_recurrence_count = nil
	m.addvehicle_recurrence_count = nil
}

// SetAnomalyTypeRecurrenceCount sets the "anomaly_type_recurrence_count" field.
func (m *ManufacturingCaseMutation) SetAnomalyTypeRecurrenceCount(i int) {
	m.anomaly_type_recurrence_count = &i
	m.addanomaly_type_recurrence_count = nil
}

// AnomalyTypeRecurrenceCount returns the value of the "anomaly_type_recurrence_count" field in the mutation.
func (m *ManufacturingCaseMutation) AnomalyTypeRecurrenceCount() (r int, exists bool) {
	v := m.anomaly_type_recurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAnomalyTypeRecurrenceCount returns the old "anomaly_type_recurrence_count" field's value of the ManufacturingCase entity.
// If the ManufacturingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManufacturingCaseMutation) OldAnomalyTypeRecurrenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnomalyTypeRecurrenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnomalyTypeRecurrenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnomalyTypeRecurrenceCount: %w", err)
	}
	return oldValue.AnomalyTypeRecurrenceCount, nil
}

// AddAnomalyTypeRecurrenceCount adds i to the "anomaly_type_recurrence_count" field.
func (m *ManufacturingCaseMutation) AddAnomalyTypeRecurrenceCount(i int) {
	if m.addanomaly_type_recurrence_count != nil {
		*m.addanomaly_type_recurrence_count += i
	} else {
		m.addanomaly_type_recurrence_count = &i
	}
}

// AddedAnomalyTypeRecurrenceCount returns the value that was added to the "anomaly_type_recurrence_count" field in this mutation.
func (m *ManufacturingCaseMutation) AddedAnomalyTypeRecurrenceCount() (r int, exists bool) {
	v := m.addanomaly_type_recurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnomalyTypeRecurrenceCount resets all changes to the "anomaly_type_recurrence_count" field.
func (m *ManufacturingCaseMutation) ResetAnomalyTypeRecurrenceCount() {
	m.anomaly_type_recurrence_count = nil
	m.addanomaly_type_recurrence_count = nil
}

// SetComponentRecurrenceCount sets the "component_recurrence_count" field.
func (m *ManufacturingCaseMutation) SetComponentRecurrenceCount(i int) {
	m.component_recurrence_count = &i
	m.addcomponent_recurrence_count = nil
}

// ComponentRecurrenceCount returns the value of the "component_recurrence_count" field in the mutation.
func (m *ManufacturingCaseMutation) ComponentRecurrenceCount() (r int, exists bool) {
	v := m.component_recurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldComponentRecurrenceCount returns the old "component_recurrence_count" field's value of the ManufacturingCase entity.
// If the ManufacturingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManufacturingCaseMutation) OldComponentRecurrenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComponentRecurrenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComponentRecurrenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComponentRecurrenceCount: %w", err)
	}
	return oldValue.ComponentRecurrenceCount, nil
}

// AddComponentRecurrenceCount adds i to the "component_recurrence_count" field.
func (m *ManufacturingCaseMutation) AddComponentRecurrenceCount(i int) {
	if m.addcomponent_recurrence_count != nil {
		*m.addcomponent_recurrence_count += i
	} else {
		m.addcomponent_recurrence_count = &i
	}
}

// AddedComponentRecurrenceCount returns the value that was added to the "component_recurrence_count" field in this mutation.
func (m *ManufacturingCaseMutation) AddedComponentRecurrenceCount() (r int, exists bool) {
	v := m.addcomponent_recurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetComponentRecurrenceCount resets all changes to the "component_recurrence_count" field.
func (m *ManufacturingCaseMutation) ResetComponentRecurrenceCount() {
	m.component_recurrence_count = nil
	m.addcomponent_recurrence_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ManufacturingCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ManufacturingCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ManufacturingCase entity.
// If the ManufacturingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManufacturingCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ManufacturingCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ManufacturingCaseMutation builder.
func (m *ManufacturingCaseMutation) Where(ps ...predicate.ManufacturingCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ManufacturingCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ManufacturingCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ManufacturingCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ManufacturingCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ManufacturingCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ManufacturingCase).
func (m *ManufacturingCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ManufacturingCaseMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.feedback_id != nil {
		fields = append(fields, manufacturingcase.FieldFeedbackID)
	}
	if m.case_id != nil {
		fields = append(fields, manufacturingcase.FieldCaseID)
	}
	if m.vehicle_id != nil {
		fields = append(fields, manufacturingcase.FieldVehicleID)
	}
	if m.issue != nil {
		fields = append(fields, manufacturingcase.FieldIssue)
	}
	if m.capa_recommendation != nil {
		fields = append(fields, manufacturingcase.FieldCapaRecommendation)
	}
	if m.severity != nil {
		fields = append(fields, manufacturingcase.FieldSeverity)
	}
	if m.recurrence_cluster_size != nil {
		fields = append(fields, manufacturingcase.FieldRecurrenceClusterSize)
	}
	if m.vehicle_recurrence_count != nil {
		fields = append(fields, manufacturingcase.FieldVehicleRecurrenceCount)
	}
	if m.anomaly_type_recurrence_count != nil {
		fields = append(fields, manufacturingcase.FieldAnomalyTypeRecurrenceCount)
	}
	if m.component_recurrence_count != nil {
		fields = append(fields, manufacturingcase.FieldComponentRecurrenceCount)
	}
	if m.created_at != nil {
		fields = append(fields, manufacturingcase.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ManufacturingCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case manufacturingcase.FieldFeedbackID:
		return m.FeedbackID()
	case manufacturingcase.FieldCaseID:
		return m.CaseID()
	case manufacturingcase.FieldVehicleID:
		return m.VehicleID()
	case manufacturingcase.FieldIssue:
		return m.Issue()
	case manufacturingcase.FieldCapaRecommendation:
		return m.CapaRecommendation()
	case manufacturingcase.FieldSeverity:
		return m.Severity()
	case manufacturingcase.FieldRecurrenceClusterSize:
		return m.RecurrenceClusterSize()
	case manufacturingcase.FieldVehicleRecurrenceCount:
		return m.VehicleRecurrenceCount()
	case manufacturingcase.FieldAnomalyTypeRecurrenceCount:
		return m.AnomalyTypeRecurrenceCount()
	case manufacturingcase.FieldComponentRecurrenceCount:
		return m.ComponentRecurrenceCount()
	case manufacturingcase.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ManufacturingCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case manufacturingcase.FieldFeedbackID:
		return m.OldFeedbackID(ctx)
	case manufacturingcase.FieldCaseID:
		return m.OldCaseID(ctx)
	case manufacturingcase.FieldVehicleID:
		return m.OldVehicleID(ctx)
	case manufacturingcase.FieldIssue:
		return m.OldIssue(ctx)
	case manufacturingcase.FieldCapaRecommendation:
		return m.OldCapaRecommendation(ctx)
	case manufacturingcase.FieldSeverity:
		return m.OldSeverity(ctx)
	case manufacturingcase.FieldRecurrenceClusterSize:
		return m.OldRecurrenceClusterSize(ctx)
	case manufacturingcase.FieldVehicleRecurrenceCount:
		return m.OldVehicleRecurrenceCount(ctx)
	case manufacturingcase.FieldAnomalyTypeRecurrenceCount:
		return m.OldAnomalyTypeRecurrenceCount(ctx)
	case manufacturingcase.FieldComponentRecurrenceCount:
		return m.OldComponentRecurrenceCount(ctx)
	case manufacturingcase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ManufacturingCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ManufacturingCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case manufacturingcase.FieldFeedbackID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedbackID(v)
		return nil
	case manufacturingcase.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case manufacturingcase.FieldVehicleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleID(v)
		return nil
	case manufacturingcase.FieldIssue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssue(v)
		return nil
	case manufacturingcase.FieldCapaRecommendation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapaRecommendation(v)
		return nil
	case manufacturingcase.FieldSeverity:
		v, ok := value.(manufacturingcase.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case manufacturingcase.FieldRecurrenceClusterSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecurrenceClusterSize(v)
		return nil
	case manufacturingcase.FieldVehicleRecurrenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleRecurrenceCount(v)
		return nil
	case manufacturingcase.FieldAnomalyTypeRecurrenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnomalyTypeRecurrenceCount(v)
		return nil
	case manufacturingcase.FieldComponentRecurrenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComponentRecurrenceCount(v)
		return nil
	case manufacturingcase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ManufacturingCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ManufacturingCaseMutation) AddedFields() []string {
	var fields []string
	if m.addrecurrence_cluster_size != nil {
		fields = append(fields, manufacturingcase.FieldRecurrenceClusterSize)
	}
	if m.addvehicle_recurrence_count != nil {
		fields = append(fields, manufacturingcase.FieldVehicleRecurrenceCount)
	}
	if m.addanomaly_type_recurrence_count != nil {
		fields = append(fields, manufacturingcase.FieldAnomalyTypeRecurrenceCount)
	}
	if m.addcomponent_recurrence_count != nil {
		fields = append(fields, manufacturingcase.FieldComponentRecurrenceCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ManufacturingCaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case manufacturingcase.FieldRecurrenceClusterSize:
		return m.AddedRecurrenceClusterSize()
	case manufacturingcase.FieldVehicleRecurrenceCount:
		return m.AddedVehicleRecurrenceCount()
	case manufacturingcase.FieldAnomalyTypeRecurrenceCount:
		return m.AddedAnomalyTypeRecurrenceCount()
	case manufacturingcase.FieldComponentRecurrenceCount:
		return m.AddedComponentRecurrenceCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ManufacturingCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case manufacturingcase.FieldRecurrenceClusterSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecurrenceClusterSize(v)
		return nil
	case manufacturingcase.FieldVehicleRecurrenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVehicleRecurrenceCount(v)
		return nil
	case manufacturingcase.FieldAnomalyTypeRecurrenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnomalyTypeRecurrenceCount(v)
		return nil
	case manufacturingcase.FieldComponentRecurrenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddComponentRecurrenceCount(v)
		return nil
	}
	return fmt.Errorf("unknown ManufacturingCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ManufacturingCaseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ManufacturingCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ManufacturingCaseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ManufacturingCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ManufacturingCaseMutation) ResetField(name string) error {
	switch name {
	case manufacturingcase.FieldFeedbackID:
		m.ResetFeedbackID()
		return nil
	case manufacturingcase.FieldCaseID:
		m.ResetCaseID()
		return nil
	case manufacturingcase.FieldVehicleID:
		m.ResetVehicleID()
		return nil
	case manufacturingcase.FieldIssue:
		m.ResetIssue()
		return nil
	case manufacturingcase.FieldCapaRecommendation:
		m.ResetCapaRecommendation()
		return nil
	case manufacturingcase.FieldSeverity:
		m.ResetSeverity()
		return nil
	case manufacturingcase.FieldRecurrenceClusterSize:
		m.ResetRecurrenceClusterSize()
		return nil
	case manufacturingcase.FieldVehicleRecurrenceCount:
		m.ResetVehicleRecurrenceCount()
		return nil
	case manufacturingcase.FieldAnomalyTypeRecurrenceCount:
		m.ResetAnomalyTypeRecurrenceCount()
		return nil
	case manufacturingcase.FieldComponentRecurrenceCount:
		m.ResetComponentRecurrenceCount()
		return nil
	case manufacturingcase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ManufacturingCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ManufacturingCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ManufacturingCaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ManufacturingCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ManufacturingCaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ManufacturingCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ManufacturingCaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ManufacturingCaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ManufacturingCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ManufacturingCaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ManufacturingCase edge %s", name)
}

// PipelineStateMutation represents an operation that mutates the PipelineState nodes in the graph.
type PipelineStateMutation struct {
	config
	op            Op
	typ           string
	id            *string
	current_stage *string
	next_stage    *string
	confidence    *float64
	addconfidence *float64
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PipelineState, error)
	predicates    []predicate.PipelineState
}

var _ ent.Mutation = (*PipelineStateMutation)(nil)

// pipelinestateOption allows management of the mutation configuration using functional options.
type pipelinestateOption func(*PipelineStateMutation)

// newPipelineStateMutation creates new mutation for the PipelineState entity.
func newPipelineStateMutation(c config, op Op, opts ...pipelinestateOption) *PipelineStateMutation {
	m := &PipelineStateMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineStateID sets the ID field of the mutation.
func withPipelineStateID(id string) pipelinestateOption {
	return func(m *PipelineStateMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineState
		)
		m.oldValue = func(ctx context.Context) (*PipelineState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineState sets the old PipelineState of the mutation.
func withPipelineState(node *PipelineState) pipelinestateOption {
	return func(m *PipelineStateMutation) {
		m.oldValue = func(context.Context) (*PipelineState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineState entities.
func (m *PipelineStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCurrentStage sets the "current_stage" field.
func (m *PipelineStateMutation) SetCurrentStage(s string) {
	m.current_stage = &s
}

// CurrentStage returns the value of the "current_stage" field in the mutation.
func (m *PipelineStateMutation) CurrentStage() (r string, exists bool) {
	v := m.current_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStage returns the old "current_stage" field's value of the PipelineState entity.
// If the PipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStateMutation) OldCurrentStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStage: %w", err)
	}
	return oldValue.CurrentStage, nil
}

// ResetCurrentStage resets all changes to the "current_stage" field.
func (m *PipelineStateMutation) ResetCurrentStage() {
	m.current_stage = nil
}

// SetNextStage sets the "next_stage" field.
func (m *PipelineStateMutation) SetNextStage(s string) {
	m.next_stage = &s
}

// NextStage returns the value of the "next_stage" field in the mutation.
func (m *PipelineStateMutation) NextStage() (r string, exists bool) {
	v := m.next_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldNextStage returns the old "next_stage" field's value of the PipelineState entity.
// If the PipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStateMutation) OldNextStage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextStage: %w", err)
	}
	return oldValue.NextStage, nil
}

// ClearNextStage clears the value of the "next_stage" field.
func (m *PipelineStateMutation) ClearNextStage() {
	m.next_stage = nil
	m.clearedFields[pipelinestate.FieldNextStage] = struct{}{}
}

// NextStageCleared returns if the "next_stage" field was cleared in this mutation.
func (m *PipelineStateMutation) NextStageCleared() bool {
	_, ok := m.clearedFields[pipelinestate.FieldNextStage]
	return ok
}

// ResetNextStage resets all changes to the "next_stage" field.
func (m *PipelineStateMutation) ResetNextStage() {
	m.next_stage = nil
	delete(m.clearedFields, pipelinestate.FieldNextStage)
}

// SetConfidence sets the "confidence" field.
func (m *PipelineStateMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *PipelineStateMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the PipelineState entity.
// If the PipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStateMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *PipelineStateMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *PipelineStateMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *PipelineStateMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineState entity.
// If the PipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PipelineState entity.
// If the PipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PipelineStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PipelineStateMutation builder.
func (m *PipelineStateMutation) Where(ps ...predicate.PipelineState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineState).
func (m *PipelineStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineStateMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.current_stage != nil {
		fields = append(fields, pipelinestate.FieldCurrentStage)
	}
	if m.next_stage != nil {
		fields = append(fields, pipelinestate.FieldNextStage)
	}
	if m.confidence != nil {
		fields = append(fields, pipelinestate.FieldConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinestate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pipelinestate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinestate.FieldCurrentStage:
		return m.CurrentStage()
	case pipelinestate.FieldNextStage:
		return m.NextStage()
	case pipelinestate.FieldConfidence:
		return m.Confidence()
	case pipelinestate.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinestate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinestate.FieldCurrentStage:
		return m.OldCurrentStage(ctx)
	case pipelinestate.FieldNextStage:
		return m.OldNextStage(ctx)
	case pipelinestate.FieldConfidence:
		return m.OldConfidence(ctx)
	case pipelinestate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinestate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinestate.FieldCurrentStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStage(v)
		return nil
	case pipelinestate.FieldNextStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextStage(v)
		return nil
	case pipelinestate.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case pipelinestate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinestate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineStateMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, pipelinestate.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinestate.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinestate.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinestate.FieldNextStage) {
		fields = append(fields, pipelinestate.FieldNextStage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineStateMutation) ClearField(name string) error {
	switch name {
	case pipelinestate.FieldNextStage:
		m.ClearNextStage()
		return nil
	}
	return fmt.Errorf("unknown PipelineState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineStateMutation) ResetField(name string) error {
	switch name {
	case pipelinestate.FieldCurrentStage:
		m.ResetCurrentStage()
		return nil
	case pipelinestate.FieldNextStage:
		m.ResetNextStage()
		return nil
	case pipelinestate.FieldConfidence:
		m.ResetConfidence()
		return nil
	case pipelinestate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinestate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineState edge %s", name)
}

// RcaCaseMutation represents an operation that mutates the RcaCase nodes in the graph.
type RcaCaseMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	diagnosis_id       *string
	case_id            *string
	vehicle_id         *string
	root_cause         *string
	confidence         *float64
	addconfidence      *float64
	recommended_action *string
	capa_type          *rcacase.CapaType
	status             *rcacase.Status
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*RcaCase, error)
	predicates         []predicate.RcaCase
}

var _ ent.Mutation = (*RcaCaseMutation)(nil)

// rcacaseOption allows management of the mutation configuration using functional options.
type rcacaseOption func(*RcaCaseMutation)

// newRcaCaseMutation creates new mutation for the RcaCase entity.
func newRcaCaseMutation(c config, op Op, opts ...rcacaseOption) *RcaCaseMutation {
	m := &RcaCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeRcaCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRcaCaseID sets the ID field of the mutation.
func withRcaCaseID(id string) rcacaseOption {
	return func(m *RcaCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *RcaCase
		)
		m.oldValue = func(ctx context.Context) (*RcaCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RcaCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRcaCase sets the old RcaCase of the mutation.
func withRcaCase(node *RcaCase) rcacaseOption {
	return func(m *RcaCaseMutation) {
		m.oldValue = func(context.Context) (*RcaCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RcaCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RcaCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RcaCase entities.
func (m *RcaCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RcaCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RcaCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RcaCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDiagnosisID sets the "diagnosis_id" field.
func (m *RcaCaseMutation) SetDiagnosisID(s string) {
	m.diagnosis_id = &s
}

// DiagnosisID returns the value of the "diagnosis_id" field in the mutation.
func (m *RcaCaseMutation) DiagnosisID() (r string, exists bool) {
	v := m.diagnosis_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnosisID returns the old "diagnosis_id" field's value of the RcaCase entity.
// If the RcaCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RcaCaseMutation) OldDiagnosisID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnosisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnosisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnosisID: %w", err)
	}
	return oldValue.DiagnosisID, nil
}

// ResetDiagnosisID resets all changes to the "diagnosis_id" field.
func (m *RcaCaseMutation) ResetDiagnosisID() {
	m.diagnosis_id = nil
}

// SetCaseID sets the "case_id" field.
func (m *RcaCaseMutation) SetCaseID(s string) {
	m.case_id = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *RcaCaseMutation) CaseID() (r string, exists bool) {
	v := m.case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the RcaCase entity.
// If the RcaCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RcaCaseMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *RcaCaseMutation) ResetCaseID() {
	m.case_id = nil
}

// SetVehicleID sets the "vehicle_id" field.
func (m *RcaCaseMutation) SetVehicleID(s string) {
	m.vehicle_id = &s
}

// VehicleID returns the value of the "vehicle_id" field in the mutation.
func (m *RcaCaseMutation) VehicleID() (r string, exists bool) {
	v := m.vehicle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleID returns the old "vehicle_id" field's value of the RcaCase entity.
// If the RcaCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RcaCaseMutation) OldVehicleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleID: %w", err)
	}
	return oldValue.VehicleID, nil
}

// ResetVehicleID resets all changes to the "vehicle_id" field.
func (m *RcaCaseMutation) ResetVehicleID() {
	m.vehicle_id = nil
}

// SetRootCause sets the "root_cause" field.
func (m *RcaCaseMutation) SetRootCause(s string) {
	m.root_cause = &s
}

// RootCause returns the value of the "root_cause" field in the mutation.
func (m *RcaCaseMutation) RootCause() (r string, exists bool) {
	v := m.root_cause
	if v == nil {
		return
	}
	return *v, true
}

// OldRootCause returns the old "root_cause" field's value of the RcaCase entity.
// If the RcaCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RcaCaseMutation) OldRootCause(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRootCause is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRootCause requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRootCause: %w", err)
	}
	return oldValue.RootCause, nil
}

// ResetRootCause resets all changes to the "root_cause" field.
func (m *RcaCaseMutation) ResetRootCause() {
	m.root_cause = nil
}

// SetConfidence sets the "confidence" field.
func (m *RcaCaseMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *RcaCaseMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the RcaCase entity.
// If the RcaCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RcaCaseMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *RcaCaseMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *RcaCaseMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *RcaCaseMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetRecommendedAction sets the "recommended_action" field.
func (m *RcaCaseMutation) SetRecommendedAction(s string) {
	m.recommended_action = &s
}

// RecommendedAction returns the value of the "recommended_action" field in the mutation.
func (m *RcaCaseMutation) RecommendedAction() (r string, exists bool) {
	v := m.recommended_action
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendedAction returns the old "recommended_action" field's value of the RcaCase entity.
// If the RcaCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RcaCaseMutation) OldRecommendedAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendedAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendedAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendedAction: %w", err)
	}
	return oldValue.RecommendedAction, nil
}

// ResetRecommendedAction resets all changes to the "recommended_action" field.
func (m *RcaCaseMutation) ResetRecommendedAction() {
	m.recommended_action = nil
}

// SetCapaType sets the "capa_type" field.
func (m *RcaCaseMutation) SetCapaType(rt rcacase.CapaType) {
	m.capa_type = &rt
}

// CapaType returns the value of the "capa_type" field in the mutation.
func (m *RcaCaseMutation) CapaType() (r rcacase.CapaType, exists bool) {
	v := m.capa_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCapaType returns the old "capa_type" field's value of the RcaCase entity.
// If the RcaCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RcaCaseMutation) OldCapaType(ctx context.Context) (v rcacase.CapaType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapaType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapaType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapaType: %w", err)
	}
	return oldValue.CapaType, nil
}

// ResetCapaType resets all changes to the "capa_type" field.
func (m *RcaCaseMutation) ResetCapaType() {
	m.capa_type = nil
}

// SetStatus sets the "status" field.
func (m *RcaCaseMutation) SetStatus(r rcacase.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RcaCaseMutation) Status() (r rcacase.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RcaCase entity.
// If the RcaCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RcaCaseMutation) OldStatus(ctx context.Context) (v rcacase.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RcaCaseMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RcaCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RcaCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RcaCase entity.
// If the RcaCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RcaCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RcaCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the RcaCaseMutation builder.
func (m *RcaCaseMutation) Where(ps ...predicate.RcaCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RcaCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RcaCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RcaCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RcaCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RcaCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RcaCase).
func (m *RcaCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RcaCaseMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.diagnosis_id != nil {
		fields = append(fields, rcacase.FieldDiagnosisID)
	}
	if m.case_id != nil {
		fields = append(fields, rcacase.FieldCaseID)
	}
	if m.vehicle_id != nil {
		fields = append(fields, rcacase.FieldVehicleID)
	}
	if m.root_cause != nil {
		fields = append(fields, rcacase.FieldRootCause)
	}
	if m.confidence != nil {
		fields = append(fields, rcacase.FieldConfidence)
	}
	if m.recommended_action != nil {
		fields = append(fields, rcacase.FieldRecommendedAction)
	}
	if m.capa_type != nil {
		fields = append(fields, rcacase.FieldCapaType)
	}
	if m.status != nil {
		fields = append(fields, rcacase.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, rcacase.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RcaCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rcacase.FieldDiagnosisID:
		return m.DiagnosisID()
	case rcacase.FieldCaseID:
		return m.CaseID()
	case rcacase.FieldVehicleID:
		return m.VehicleID()
	case rcacase.FieldRootCause:
		return m.RootCause()
	case rcacase.FieldConfidence:
		return m.Confidence()
	case rcacase.FieldRecommendedAction:
		return m.RecommendedAction()
	case rcacase.FieldCapaType:
		return m.CapaType()
	case rcacase.FieldStatus:
		return m.Status()
	case rcacase.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RcaCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rcacase.FieldDiagnosisID:
		return m.OldDiagnosisID(ctx)
	case rcacase.FieldCaseID:
		return m.OldCaseID(ctx)
	case rcacase.FieldVehicleID:
		return m.OldVehicleID(ctx)
	case rcacase.FieldRootCause:
		return m.OldRootCause(ctx)
	case rcacase.FieldConfidence:
		return m.OldConfidence(ctx)
	case rcacase.FieldRecommendedAction:
		return m.OldRecommendedAction(ctx)
	case rcacase.FieldCapaType:
		return m.OldCapaType(ctx)
	case rcacase.FieldStatus:
		return m.OldStatus(ctx)
	case rcacase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RcaCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RcaCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rcacase.FieldDiagnosisID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnosisID(v)
		return nil
	case rcacase.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case rcacase.FieldVehicleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleID(v)
		return nil
	case rcacase.FieldRootCause:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRootCause(v)
		return nil
	case rcacase.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case rcacase.FieldRecommendedAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendedAction(v)
		return nil
	case rcacase.FieldCapaType:
		v, ok := value.(rcacase.CapaType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapaType(v)
		return nil
	case rcacase.FieldStatus:
		v, ok := value.(rcacase.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case rcacase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RcaCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RcaCaseMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, rcacase.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RcaCaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rcacase.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RcaCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rcacase.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown RcaCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RcaCaseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RcaCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RcaCaseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RcaCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RcaCaseMutation) ResetField(name string) error {
	switch name {
	case rcacase.FieldDiagnosisID:
		m.ResetDiagnosisID()
		return nil
	case rcacase.FieldCaseID:
		m.ResetCaseID()
		return nil
	case rcacase.FieldVehicleID:
		m.ResetVehicleID()
		return nil
	case rcacase.FieldRootCause:
		m.ResetRootCause()
		return nil
	case rcacase.FieldConfidence:
		m.ResetConfidence()
		return nil
	case rcacase.FieldRecommendedAction:
		m.ResetRecommendedAction()
		return nil
	case rcacase.FieldCapaType:
		m.ResetCapaType()
		return nil
	case rcacase.FieldStatus:
		m.ResetStatus()
		return nil
	case rcacase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RcaCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RcaCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RcaCaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RcaCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RcaCaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RcaCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RcaCaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RcaCaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RcaCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RcaCaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RcaCase edge %s", name)
}

// SchedulingCaseMutation represents an operation that mutates the SchedulingCase nodes in the graph.
type SchedulingCaseMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	rca_id               *string
	diagnosis_id         *string
	case_id              *string
	vehicle_id           *string
	best_slot            *time.Time
	service_center       *string
	slot_type            *schedulingcase.SlotType
	fallback_slots       *[]string
	appendfallback_slots []string
	status               *schedulingcase.Status
	created_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*SchedulingCase, error)
	predicates           []predicate.SchedulingCase
}

var _ ent.Mutation = (*SchedulingCaseMutation)(nil)

// schedulingcaseOption allows management of the mutation configuration using functional options.
type schedulingcaseOption func(*SchedulingCaseMutation)

// newSchedulingCaseMutation creates new mutation for the SchedulingCase entity.
func newSchedulingCaseMutation(c config, op Op, opts ...schedulingcaseOption) *SchedulingCaseMutation {
	m := &SchedulingCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeSchedulingCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSchedulingCaseID sets the ID field of the mutation.
func withSchedulingCaseID(id string) schedulingcaseOption {
	return func(m *SchedulingCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *SchedulingCase
		)
		m.oldValue = func(ctx context.Context) (*SchedulingCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SchedulingCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchedulingCase sets the old SchedulingCase of the mutation.
func withSchedulingCase(node *SchedulingCase) schedulingcaseOption {
	return func(m *SchedulingCaseMutation) {
		m.oldValue = func(context.Context) (*SchedulingCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SchedulingCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SchedulingCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SchedulingCase entities.
func (m *SchedulingCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SchedulingCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SchedulingCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SchedulingCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRcaID sets the "rca_id" field.
func (m *SchedulingCaseMutation) SetRcaID(s string) {
	m.rca_id = &s
}

// RcaID returns the value of the "rca_id" field in the mutation.
func (m *SchedulingCaseMutation) RcaID() (r string, exists bool) {
	v := m.rca_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRcaID returns the old "rca_id" field's value of the SchedulingCase entity.
// If the SchedulingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulingCaseMutation) OldRcaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRcaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRcaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRcaID: %w", err)
	}
	return oldValue.RcaID, nil
}

// ResetRcaID resets all changes to the "rca_id" field.
func (m *SchedulingCaseMutation) ResetRcaID() {
	m.rca_id = nil
}

// SetDiagnosisID sets the "diagnosis_id" field.
func (m *SchedulingCaseMutation) SetDiagnosisID(s string) {
	m.diagnosis_id = &s
}

// DiagnosisID returns the value of the "diagnosis_id" field in the mutation.
func (m *SchedulingCaseMutation) DiagnosisID() (r string, exists bool) {
	v := m.diagnosis_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnosisID returns the old "diagnosis_id" field's value of the SchedulingCase entity.
// If the SchedulingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulingCaseMutation) OldDiagnosisID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnosisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnosisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnosisID: %w", err)
	}
	return oldValue.DiagnosisID, nil
}

// ResetDiagnosisID resets all changes to the "diagnosis_id" field.
func (m *SchedulingCaseMutation) ResetDiagnosisID() {
	m.diagnosis_id = nil
}

// SetCaseID sets the "case_id" field.
func (m *SchedulingCaseMutation) SetCaseID(s string) {
	m.case_id = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *SchedulingCaseMutation) CaseID() (r string, exists bool) {
	v := m.case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the SchedulingCase entity.
// If the SchedulingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulingCaseMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *SchedulingCaseMutation) ResetCaseID() {
	m.case_id = nil
}

// SetVehicleID sets the "vehicle_id" field.
func (m *SchedulingCaseMutation) SetVehicleID(s string) {
	m.vehicle_id = &s
}

// VehicleID returns the value of the "vehicle_id" field in the mutation.
func (m *SchedulingCaseMutation) VehicleID() (r string, exists bool) {
	v := m.vehicle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleID returns the old "vehicle_id" field's value of the SchedulingCase entity.
// If the SchedulingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulingCaseMutation) OldVehicleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleID: %w", err)
	}
	return oldValue.VehicleID, nil
}

// ResetVehicleID resets all changes to the "vehicle_id" field.
func (m *SchedulingCaseMutation) ResetVehicleID() {
	m.vehicle_id = nil
}

// SetBestSlot sets the "best_slot" field.
func (m *SchedulingCaseMutation) SetBestSlot(t time.Time) {
	m.best_slot = &t
}

// BestSlot returns the value of the "best_slot" field in the mutation.
func (m *SchedulingCaseMutation) BestSlot() (r time.Time, exists bool) {
	v := m.best_slot
	if v == nil {
		return
	}
	return *v, true
}

// OldBestSlot returns the old "best_slot" field's value of the SchedulingCase entity.
// If the SchedulingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulingCaseMutation) OldBestSlot(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestSlot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestSlot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestSlot: %w", err)
	}
	return oldValue.BestSlot, nil
}

// ResetBestSlot resets all changes to the "best_slot" field.
func (m *SchedulingCaseMutation) ResetBestSlot() {
	m.best_slot = nil
}

// SetServiceCenter sets the "service_center" field.
func (m *SchedulingCaseMutation) SetServiceCenter(s string) {
	m.service_center = &s
}

// ServiceCenter returns the value of the "service_center" field in the mutation.
func (m *SchedulingCaseMutation) ServiceCenter() (r string, exists bool) {
	v := m.service_center
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceCenter returns the old "service_center" field's value of the SchedulingCase entity.
// If the SchedulingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulingCaseMutation) OldServiceCenter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceCenter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceCenter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceCenter: %w", err)
	}
	return oldValue.ServiceCenter, nil
}

// ResetServiceCenter resets all changes to the "service_center" field.
func (m *SchedulingCaseMutation) ResetServiceCenter() {
	m.service_center = nil
}

// SetSlotType sets the "slot_type" field.
func (m *SchedulingCaseMutation) SetSlotType(st schedulingcase.SlotType) {
	m.slot_type = &st
}

// SlotType returns the value of the "slot_type" field in the mutation.
func (m *SchedulingCaseMutation) SlotType() (r schedulingcase.SlotType, exists bool) {
	v := m.slot_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSlotType returns the old "slot_type" field's value of the SchedulingCase entity.
// If the SchedulingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulingCaseMutation) OldSlotType(ctx context.Context) (v schedulingcase.SlotType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlotType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlotType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlotType: %w", err)
	}
	return oldValue.SlotType, nil
}

// ResetSlotType resets all changes to the "slot_type" field.
func (m *SchedulingCaseMutation) ResetSlotType() {
	m.slot_type = nil
}

// SetFallbackSlots sets the "fallback_slots" field.
func (m *SchedulingCaseMutation) SetFallbackSlots(s []string) {
	m.fallback_slots = &s
	m.appendfallback_slots = nil
}

// FallbackSlots returns the value of the "fallback_slots" field in the mutation.
func (m *SchedulingCaseMutation) FallbackSlots() (r []string, exists bool) {
	v := m.fallback_slots
	if v == nil {
		return
	}
	return *v, true
}

// OldFallbackSlots returns the old "fallback_slots" field's value of the SchedulingCase entity.
// If the SchedulingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulingCaseMutation) OldFallbackSlots(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFallbackSlots is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFallbackSlots requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFallbackSlots: %w", err)
	}
	return oldValue.FallbackSlots, nil
}

// AppendFallbackSlots adds s to the "fallback_slots" field.
func (m *SchedulingCaseMutation) AppendFallbackSlots(s []string) {
	m.appendfallback_slots = append(m.appendfallback_slots, s...)
}

// AppendedFallbackSlots returns the list of values that were appended to the "fallback_slots" field in this mutation.
func (m *SchedulingCaseMutation) AppendedFallbackSlots() ([]string, bool) {
	if len(m.appendfallback_slots) == 0 {
		return nil, false
	}
	return m.appendfallback_slots, true
}

// ResetFallbackSlots resets all changes to the "fallback_slots" field.
func (m *SchedulingCaseMutation) ResetFallbackSlots() {
	m.fallback_slots = nil
	m.appendfallback_slots = nil
}

// SetStatus sets the "status" field.
func (m *SchedulingCaseMutation) SetStatus(s schedulingcase.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SchedulingCaseMutation) Status() (r schedulingcase.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SchedulingCase entity.
// If the SchedulingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulingCaseMutation) OldStatus(ctx context.Context) (v schedulingcase.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SchedulingCaseMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SchedulingCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SchedulingCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SchedulingCase entity.
// If the SchedulingCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulingCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SchedulingCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SchedulingCaseMutation builder.
func (m *SchedulingCaseMutation) Where(ps ...predicate.SchedulingCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SchedulingCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SchedulingCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SchedulingCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SchedulingCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SchedulingCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SchedulingCase).
func (m *SchedulingCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SchedulingCaseMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.rca_id != nil {
		fields = append(fields, schedulingcase.FieldRcaID)
	}
	if m.diagnosis_id != nil {
		fields = append(fields, schedulingcase.FieldDiagnosisID)
	}
	if m.case_id != nil {
		fields = append(fields, schedulingcase.FieldCaseID)
	}
	if m.vehicle_id != nil {
		fields = append(fields, schedulingcase.FieldVehicleID)
	}
	if m.best_slot != nil {
		fields = append(fields, schedulingcase.FieldBestSlot)
	}
	if m.service_center != nil {
		fields = append(fields, schedulingcase.FieldServiceCenter)
	}
	if m.slot_type != nil {
		fields = append(fields, schedulingcase.FieldSlotType)
	}
	if m.fallback_slots != nil {
		fields = append(fields, schedulingcase.FieldFallbackSlots)
	}
	if m.status != nil {
		fields = append(fields, schedulingcase.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, schedulingcase.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SchedulingCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schedulingcase.FieldRcaID:
		return m.RcaID()
	case schedulingcase.FieldDiagnosisID:
		return m.DiagnosisID()
	case schedulingcase.FieldCaseID:
		return m.CaseID()
	case schedulingcase.FieldVehicleID:
		return m.VehicleID()
	case schedulingcase.FieldBestSlot:
		return m.BestSlot()
	case schedulingcase.FieldServiceCenter:
		return m.ServiceCenter()
	case schedulingcase.FieldSlotType:
		return m.SlotType()
	case schedulingcase.FieldFallbackSlots:
		return m.FallbackSlots()
	case schedulingcase.FieldStatus:
		return m.Status()
	case schedulingcase.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SchedulingCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schedulingcase.FieldRcaID:
		return m.OldRcaID(ctx)
	case schedulingcase.FieldDiagnosisID:
		return m.OldDiagnosisID(ctx)
	case schedulingcase.FieldCaseID:
		return m.OldCaseID(ctx)
	case schedulingcase.FieldVehicleID:
		return m.OldVehicleID(ctx)
	case schedulingcase.FieldBestSlot:
		return m.OldBestSlot(ctx)
	case schedulingcase.FieldServiceCenter:
		return m.OldServiceCenter(ctx)
	case schedulingcase.FieldSlotType:
		return m.OldSlotType(ctx)
	case schedulingcase.FieldFallbackSlots:
		return m.OldFallbackSlots(ctx)
	case schedulingcase.FieldStatus:
		return m.OldStatus(ctx)
	case schedulingcase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SchedulingCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchedulingCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schedulingcase.FieldRcaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRcaID(v)
		return nil
	case schedulingcase.FieldDiagnosisID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnosisID(v)
		return nil
	case schedulingcase.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case schedulingcase.FieldVehicleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleID(v)
		return nil
	case schedulingcase.FieldBestSlot:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestSlot(v)
		return nil
	case schedulingcase.FieldServiceCenter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceCenter(v)
		return nil
	case schedulingcase.FieldSlotType:
		v, ok := value.(schedulingcase.SlotType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlotType(v)
		return nil
	case schedulingcase.FieldFallbackSlots:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFallbackSlots(v)
		return nil
	case schedulingcase.FieldStatus:
		v, ok := value.(schedulingcase.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case schedulingcase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SchedulingCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SchedulingCaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SchedulingCaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchedulingCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SchedulingCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SchedulingCaseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SchedulingCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SchedulingCaseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SchedulingCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SchedulingCaseMutation) ResetField(name string) error {
	switch name {
	case schedulingcase.FieldRcaID:
		m.ResetRcaID()
		return nil
	case schedulingcase.FieldDiagnosisID:
		m.ResetDiagnosisID()
		return nil
	case schedulingcase.FieldCaseID:
		m.ResetCaseID()
		return nil
	case schedulingcase.FieldVehicleID:
		m.ResetVehicleID()
		return nil
	case schedulingcase.FieldBestSlot:
		m.ResetBestSlot()
		return nil
	case schedulingcase.FieldServiceCenter:
		m.ResetServiceCenter()
		return nil
	case schedulingcase.FieldSlotType:
		m.ResetSlotType()
		return nil
	case schedulingcase.FieldFallbackSlots:
		m.ResetFallbackSlots()
		return nil
	case schedulingcase.FieldStatus:
		m.ResetStatus()
		return nil
	case schedulingcase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SchedulingCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SchedulingCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SchedulingCaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SchedulingCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SchedulingCaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SchedulingCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SchedulingCaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SchedulingCaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SchedulingCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SchedulingCaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SchedulingCase edge %s", name)
}

// TelemetryEventMutation represents an operation that mutates the TelemetryEvent nodes in the graph.
type TelemetryEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	vehicle_id         *string
	timestamp          *time.Time
	latitude           *float64
	addlatitude        *float64
	longitude          *float64
	addlongitude       *float64
	speed_kmph         *float64
	addspeed_kmph      *float64
	odometer_km        *float64
	addodometer_km     *float64
	engine_rpm         *float64
	addengine_rpm      *float64
	coolant_temp_c     *float64
	addcoolant_temp_c  *float64
	oil_temp_c         *float64
	addoil_temp_c      *float64
	fuel_level_pct     *float64
	addfuel_level_pct  *float64
	battery_soc_pct    *float64
	addbattery_soc_pct *float64
	battery_soh_pct    *float64
	addbattery_soh_pct *float64
	dtc_codes          *[]string
	appenddtc_codes    []string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*TelemetryEvent, error)
	predicates         []predicate.TelemetryEvent
}

var _ ent.Mutation = (*TelemetryEventMutation)(nil)

// telemetryeventOption allows management of the mutation configuration using functional options.
type telemetryeventOption func(*TelemetryEventMutation)

// newTelemetryEventMutation creates new mutation for the TelemetryEvent entity.
func newTelemetryEventMutation(c config, op Op, opts ...telemetryeventOption) *TelemetryEventMutation {
	m := &TelemetryEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTelemetryEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTelemetryEventID sets the ID field of the mutation.
func withTelemetryEventID(id string) telemetryeventOption {
	return func(m *TelemetryEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TelemetryEvent
		)
		m.oldValue = func(ctx context.Context) (*TelemetryEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TelemetryEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTelemetryEvent sets the old TelemetryEvent of the mutation.
func withTelemetryEvent(node *TelemetryEvent) telemetryeventOption {
	return func(m *TelemetryEventMutation) {
		m.oldValue = func(context.Context) (*TelemetryEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TelemetryEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TelemetryEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TelemetryEvent entities.
func (m *TelemetryEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TelemetryEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TelemetryEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TelemetryEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVehicleID sets the "vehicle_id" field.
func (m *TelemetryEventMutation) SetVehicleID(s string) {
	m.vehicle_id = &s
}

// VehicleID returns the value of the "vehicle_id" field in the mutation.
func (m *TelemetryEventMutation) VehicleID() (r string, exists bool) {
	v := m.vehicle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleID returns the old "vehicle_id" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldVehicleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleID: %w", err)
	}
	return oldValue.VehicleID, nil
}

// ResetVehicleID resets all changes to the "vehicle_id" field.
func (m *TelemetryEventMutation) ResetVehicleID() {
	m.vehicle_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TelemetryEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TelemetryEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TelemetryEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetLatitude sets the "latitude" field.
func (m *TelemetryEventMutation) SetLatitude(f float64) {
	m.latitude = &f
	m.addlatitude = nil
}

// Latitude returns the value of the "latitude" field in the mutation.
func (m *TelemetryEventMutation) Latitude() (r float64, exists bool) {
	v := m.latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLatitude returns the old "latitude" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldLatitude(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatitude: %w", err)
	}
	return oldValue.Latitude, nil
}

// AddLatitude adds f to the "latitude" field.
func (m *TelemetryEventMutation) AddLatitude(f float64) {
	if m.addlatitude != nil {
		*m.addlatitude += f
	} else {
		m.addlatitude = &f
	}
}

// AddedLatitude returns the value that was added to the "latitude" field in this mutation.
func (m *TelemetryEventMutation) AddedLatitude() (r float64, exists bool) {
	v := m.addlatitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatitude clears the value of the "latitude" field.
func (m *TelemetryEventMutation) ClearLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	m.clearedFields[telemetryevent.FieldLatitude] = struct{}{}
}

// LatitudeCleared returns if the "latitude" field was cleared in this mutation.
func (m *TelemetryEventMutation) LatitudeCleared() bool {
	_, ok := m.clearedFields[telemetryevent.FieldLatitude]
	return ok
}

// ResetLatitude resets all changes to the "latitude" field.
func (m *TelemetryEventMutation) ResetLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	delete(m.clearedFields, telemetryevent.FieldLatitude)
}

// SetLongitude sets the "longitude" field.
func (m *TelemetryEventMutation) SetLongitude(f float64) {
	m.longitude = &f
	m.addlongitude = nil
}

// Longitude returns the value of the "longitude" field in the mutation.
func (m *TelemetryEventMutation) Longitude() (r float64, exists bool) {
	v := m.longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLongitude returns the old "longitude" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldLongitude(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongitude: %w", err)
	}
	return oldValue.Longitude, nil
}

// AddLongitude adds f to the "longitude" field.
func (m *TelemetryEventMutation) AddLongitude(f float64) {
	if m.addlongitude != nil {
		*m.addlongitude += f
	} else {
		m.addlongitude = &f
	}
}

// AddedLongitude returns the value that was added to the "longitude" field in this mutation.
func (m *TelemetryEventMutation) AddedLongitude() (r float64, exists bool) {
	v := m.addlongitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLongitude clears the value of the "longitude" field.
func (m *TelemetryEventMutation) ClearLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	m.clearedFields[telemetryevent.FieldLongitude] = struct{}{}
}

// LongitudeCleared returns if the "longitude" field was cleared in this mutation.
func (m *TelemetryEventMutation) LongitudeCleared() bool {
	_, ok := m.clearedFields[telemetryevent.FieldLongitude]
	return ok
}

// ResetLongitude resets all changes to the "longitude" field.
func (m *TelemetryEventMutation) ResetLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	delete(m.clearedFields, telemetryevent.FieldLongitude)
}

// SetSpeedKmph sets the "speed_kmph" field.
func (m *TelemetryEventMutation) SetSpeedKmph(f float64) {
	m.speed_kmph = &f
	m.addspeed_kmph = nil
}

// SpeedKmph returns the value of the "speed_kmph" field in the mutation.
func (m *TelemetryEventMutation) SpeedKmph() (r float64, exists bool) {
	v := m.speed_kmph
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeedKmph returns the old "speed_kmph" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldSpeedKmph(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeedKmph is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeedKmph requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeedKmph: %w", err)
	}
	return oldValue.SpeedKmph, nil
}

// AddSpeedKmph adds f to the "speed_kmph" field.
func (m *TelemetryEventMutation) AddSpeedKmph(f float64) {
	if m.addspeed_kmph != nil {
		*m.addspeed_kmph += f
	} else {
		m.addspeed_kmph = &f
	}
}

// AddedSpeedKmph returns the value that was added to the "speed_kmph" field in this mutation.
func (m *TelemetryEventMutation) AddedSpeedKmph() (r float64, exists bool) {
	v := m.addspeed_kmph
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpeedKmph resets all changes to the "speed_kmph" field.
func (m *TelemetryEventMutation) ResetSpeedKmph() {
	m.speed_kmph = nil
	m.addspeed_kmph = nil
}

// SetOdometerKm sets the "odometer_km" field.
func (m *TelemetryEventMutation) SetOdometerKm(f float64) {
	m.odometer_km = &f
	m.addodometer_km = nil
}

// OdometerKm returns the value of the "odometer_km" field in the mutation.
func (m *TelemetryEventMutation) OdometerKm() (r float64, exists bool) {
	v := m.odometer_km
	if v == nil {
		return
	}
	return *v, true
}

// OldOdometerKm returns the old "odometer_km" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldOdometerKm(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOdometerKm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOdometerKm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOdometerKm: %w", err)
	}
	return oldValue.OdometerKm, nil
}

// AddOdometerKm adds f to the "odometer_km" field.
func (m *TelemetryEventMutation) AddOdometerKm(f float64) {
	if m.addodometer_km != nil {
		*m.addodometer_km += f
	} else {
		m.addodometer_km = &f
	}
}

// AddedOdometerKm returns the value that was added to the "odometer_km" field in this mutation.
func (m *TelemetryEventMutation) AddedOdometerKm() (r float64, exists bool) {
	v := m.addodometer_km
	if v == nil {
		return
	}
	return *v, true
}

// ResetOdometerKm resets all changes to the "odometer_km" field.
func (m *TelemetryEventMutation) ResetOdometerKm() {
	m.odometer_km = nil
	m.addodometer_km = nil
}

// SetEngineRpm sets the "engine_rpm" field.
func (m *TelemetryEventMutation) SetEngineRpm(f float64) {
	m.engine_rpm = &f
	m.addengine_rpm = nil
}

// EngineRpm returns the value of the "engine_rpm" field in the mutation.
func (m *TelemetryEventMutation) EngineRpm() (r float64, exists bool) {
	v := m.engine_rpm
	if v == nil {
		return
	}
	return *v, true
}

// OldEngineRpm returns the old "engine_rpm" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldEngineRpm(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngineRpm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngineRpm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngineRpm: %w", err)
	}
	return oldValue.EngineRpm, nil
}

// AddEngineRpm adds f to the "engine_rpm" field.
func (m *TelemetryEventMutation) AddEngineRpm(f float64) {
	if m.addengine_rpm != nil {
		*m.addengine_rpm += f
	} else {
		m.addengine_rpm = &f
	}
}

// AddedEngineRpm returns the value that was added to the "engine_rpm" field in this mutation.
func (m *TelemetryEventMutation) AddedEngineRpm() (r float64, exists bool) {
	v := m.addengine_rpm
	if v == nil {
		return
	}
	return *v, true
}

// ResetEngineRpm resets all changes to the "engine_rpm" field.
func (m *TelemetryEventMutation) ResetEngineRpm() {
	m.engine_rpm = nil
	m.addengine_rpm = nil
}

// SetCoolantTempC sets the "coolant_temp_c" field.
func (m *TelemetryEventMutation) SetCoolantTempC(f float64) {
	m.coolant_temp_c = &f
	m.addcoolant_temp_c = nil
}

// CoolantTempC returns the value of the "coolant_temp_c" field in the mutation.
func (m *TelemetryEventMutation) CoolantTempC() (r float64, exists bool) {
	v := m.coolant_temp_c
	if v == nil {
		return
	}
	return *v, true
}

// OldCoolantTempC returns the old "coolant_temp_c" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldCoolantTempC(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoolantTempC is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoolantTempC requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoolantTempC: %w", err)
	}
	return oldValue.CoolantTempC, nil
}

// AddCoolantTempC adds f to the "coolant_temp_c" field.
func (m *TelemetryEventMutation) AddCoolantTempC(f float64) {
	if m.addcoolant_temp_c != nil {
		*m.addcoolant_temp_c += f
	} else {
		m.addcoolant_temp_c = &f
	}
}

// AddedCoolantTempC returns the value that was added to the "coolant_temp_c" field in this mutation.
func (m *TelemetryEventMutation) AddedCoolantTempC() (r float64, exists bool) {
	v := m.addcoolant_temp_c
	if v == nil {
		return
	}
	return *v, true
}

// ResetCoolantTempC resets all changes to the "coolant_temp_c" field.
func (m *TelemetryEventMutation) ResetCoolantTempC() {
	m.coolant_temp_c = nil
	m.addcoolant_temp_c = nil
}

// SetOilTempC sets the "oil_temp_c" field.
func (m *TelemetryEventMutation) SetOilTempC(f float64) {
	m.oil_temp_c = &f
	m.addoil_temp_c = nil
}

// OilTempC returns the value of the "oil_temp_c" field in the mutation.
func (m *TelemetryEventMutation) OilTempC() (r float64, exists bool) {
	v := m.oil_temp_c
	if v == nil {
		return
	}
	return *v, true
}

// OldOilTempC returns the old "oil_temp_c" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldOilTempC(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOilTempC is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOilTempC requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOilTempC: %w", err)
	}
	return oldValue.OilTempC, nil
}

// AddOilTempC adds f to the "oil_temp_c" field.
func (m *TelemetryEventMutation) AddOilTempC(f float64) {
	if m.addoil_temp_c != nil {
		*m.addoil_temp_c += f
	} else {
		m.addoil_temp_c = &f
	}
}

// AddedOilTempC returns the value that was added to the "oil_temp_c" field in this mutation.
func (m *TelemetryEventMutation) AddedOilTempC() (r float64, exists bool) {
	v := m.addoil_temp_c
	if v == nil {
		return
	}
	return *v, true
}

// ResetOilTempC resets all changes to the "oil_temp_c" field.
func (m *TelemetryEventMutation) ResetOilTempC() {
	m.oil_temp_c = nil
	m.addoil_temp_c = nil
}

// SetFuelLevelPct sets the "fuel_level_pct" field.
func (m *TelemetryEventMutation) SetFuelLevelPct(f float64) {
	m.fuel_level_pct = &f
	m.addfuel_level_pct = nil
}

// FuelLevelPct returns the value of the "fuel_level_pct" field in the mutation.
func (m *TelemetryEventMutation) FuelLevelPct() (r float64, exists bool) {
	v := m.fuel_level_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldFuelLevelPct returns the old "fuel_level_pct" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldFuelLevelPct(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFuelLevelPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFuelLevelPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFuelLevelPct: %w", err)
	}
	return oldValue.FuelLevelPct, nil
}

// AddFuelLevelPct adds f to the "fuel_level_pct" field.
func (m *TelemetryEventMutation) AddFuelLevelPct(f float64) {
	if m.addfuel_level_pct != nil {
		*m.addfuel_level_pct += f
	} else {
		m.addfuel_level_pct = &f
	}
}

// AddedFuelLevelPct returns the value that was added to the "fuel_level_pct" field in this mutation.
func (m *TelemetryEventMutation) AddedFuelLevelPct() (r float64, exists bool) {
	v := m.addfuel_level_pct
	if v == nil {
		return
	}
	return *v, true
}

// ResetFuelLevelPct resets all changes to the "fuel_level_pct" field.
func (m *TelemetryEventMutation) ResetFuelLevelPct() {
	m.fuel_level_pct = nil
	m.addfuel_level_pct = nil
}

// SetBatterySocPct sets the "battery_soc_pct" field.
func (m *TelemetryEventMutation) SetBatterySocPct(f float64) {
	m.battery_soc_pct = &f
	m.addbattery_soc_pct = nil
}

// BatterySocPct returns the value of the "battery_soc_pct" field in the mutation.
func (m *TelemetryEventMutation) BatterySocPct() (r float64, exists bool) {
	v := m.battery_soc_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldBatterySocPct returns the old "battery_soc_pct" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldBatterySocPct(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatterySocPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatterySocPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatterySocPct: %w", err)
	}
	return oldValue.BatterySocPct, nil
}

// AddBatterySocPct adds f to the "battery_soc_pct" field.
func (m *TelemetryEventMutation) AddBatterySocPct(f float64) {
	if m.addbattery_soc_pct != nil {
		*m.addbattery_soc_pct += f
	} else {
		m.addbattery_soc_pct = &f
	}
}

// AddedBatterySocPct returns the value that was added to the "battery_soc_pct" field in this mutation.
func (m *TelemetryEventMutation) AddedBatterySocPct() (r float64, exists bool) {
	v := m.addbattery_soc_pct
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatterySocPct resets all changes to the "battery_soc_pct" field.
func (m *TelemetryEventMutation) ResetBatterySocPct() {
	m.battery_soc_pct = nil
	m.addbattery_soc_pct = nil
}

// SetBatterySohPct sets the "battery_soh_pct" field.
func (m *TelemetryEventMutation) SetBatterySohPct(f float64) {
	m.battery_soh_pct = &f
	m.addbattery_soh_pct = nil
}

// BatterySohPct returns the value of the "battery_soh_pct" field in the mutation.
func (m *TelemetryEventMutation) BatterySohPct() (r float64, exists bool) {
	v := m.battery_soh_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldBatterySohPct returns the old "battery_soh_pct" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldBatterySohPct(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatterySohPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatterySohPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatterySohPct: %w", err)
	}
	return oldValue.BatterySohPct, nil
}

// AddBatterySohPct adds f to the "battery_soh_pct" field.
func (m *TelemetryEventMutation) AddBatterySohPct(f float64) {
	if m.addbattery_soh_pct != nil {
		*m.addbattery_soh_pct += f
	} else {
		m.addbattery_soh_pct = &f
	}
}

// AddedBatterySohPct returns the value that was added to the "battery_soh_pct" field in this mutation.
func (m *TelemetryEventMutation) AddedBatterySohPct() (r float64, exists bool) {
	v := m.addbattery_soh_pct
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatterySohPct resets all changes to the "battery_soh_pct" field.
func (m *TelemetryEventMutation) ResetBatterySohPct() {
	m.battery_soh_pct = nil
	m.addbattery_soh_pct = nil
}

// SetDtcCodes sets the "dtc_codes" field.
func (m *TelemetryEventMutation) SetDtcCodes(s []string) {
	m.dtc_codes = &s
	m.appenddtc_codes = nil
}

// DtcCodes returns the value of the "dtc_codes" field in the mutation.
func (m *TelemetryEventMutation) DtcCodes() (r []string, exists bool) {
	v := m.dtc_codes
	if v == nil {
		return
	}
	return *v, true
}

// OldDtcCodes returns the old "dtc_codes" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldDtcCodes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDtcCodes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDtcCodes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDtcCodes: %w", err)
	}
	return oldValue.DtcCodes, nil
}

// AppendDtcCodes adds s to the "dtc_codes" field.
func (m *TelemetryEventMutation) AppendDtcCodes(s []string) {
	m.appenddtc_codes = append(m.appenddtc_codes, s...)
}

// AppendedDtcCodes returns the list of values that were appended to the "dtc_codes" field in this mutation.
func (m *TelemetryEventMutation) AppendedDtcCodes() ([]string, bool) {
	if len(m.appenddtc_codes) == 0 {
		return nil, false
	}
	return m.appenddtc_codes, true
}

// ClearDtcCodes clears the value of the "dtc_codes" field.
func (m *TelemetryEventMutation) ClearDtcCodes() {
	m.dtc_codes = nil
	m.appenddtc_codes = nil
	m.clearedFields[telemetryevent.FieldDtcCodes] = struct{}{}
}

// DtcCodesCleared returns if the "dtc_codes" field was cleared in this mutation.
func (m *TelemetryEventMutation) DtcCodesCleared() bool {
	_, ok := m.clearedFields[telemetryevent.FieldDtcCodes]
	return ok
}

// ResetDtcCodes resets all changes to the "dtc_codes" field.
func (m *TelemetryEventMutation) ResetDtcCodes() {
	m.dtc_codes = nil
	m.appenddtc_codes = nil
	delete(m.clearedFields, telemetryevent.FieldDtcCodes)
}

// SetCreatedAt sets the "created_at" field.
func (m *TelemetryEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TelemetryEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TelemetryEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TelemetryEventMutation builder.
func (m *TelemetryEventMutation) Where(ps ...predicate.TelemetryEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TelemetryEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TelemetryEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TelemetryEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TelemetryEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TelemetryEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TelemetryEvent).
func (m *TelemetryEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TelemetryEventMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.vehicle_id != nil {
		fields = append(fields, telemetryevent.FieldVehicleID)
	}
	if m.timestamp != nil {
		fields = append(fields, telemetryevent.FieldTimestamp)
	}
	if m.latitude != nil {
		fields = append(fields, telemetryevent.FieldLatitude)
	}
	if m.longitude != nil {
		fields = append(fields, telemetryevent.FieldLongitude)
	}
	if m.speed_kmph != nil {
		fields = append(fields, telemetryevent.FieldSpeedKmph)
	}
	if m.odometer_km != nil {
		fields = append(fields, telemetryevent.FieldOdometerKm)
	}
	if m.engine_rpm != nil {
		fields = append(fields, telemetryevent.FieldEngineRpm)
	}
	if m.coolant_temp_c != nil {
		fields = append(fields, telemetryevent.FieldCoolantTempC)
	}
	if m.oil_temp_c != nil {
		fields = append(fields, telemetryevent.FieldOilTempC)
	}
	if m.fuel_level_pct != nil {
		fields = append(fields, telemetryevent.FieldFuelLevelPct)
	}
	if m.battery_soc_pct != nil {
		fields = append(fields, telemetryevent.FieldBatterySocPct)
	}
	if m.battery_soh_pct != nil {
		fields = append(fields, telemetryevent.FieldBatterySohPct)
	}
	if m.dtc_codes != nil {
		fields = append(fields, telemetryevent.FieldDtcCodes)
	}
	if m.created_at != nil {
		fields = append(fields, telemetryevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TelemetryEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case telemetryevent.FieldVehicleID:
		return m.VehicleID()
	case telemetryevent.FieldTimestamp:
		return m.Timestamp()
	case telemetryevent.FieldLatitude:
		return m.Latitude()
	case telemetryevent.FieldLongitude:
		return m.Longitude()
	case telemetryevent.FieldSpeedKmph:
		return m.SpeedKmph()
	case telemetryevent.FieldOdometerKm:
		return m.OdometerKm()
	case telemetryevent.FieldEngineRpm:
		return m.EngineRpm()
	case telemetryevent.FieldCoolantTempC:
		return m.CoolantTempC()
	case telemetryevent.FieldOilTempC:
		return m.OilTempC()
	case telemetryevent.FieldFuelLevelPct:
		return m.FuelLevelPct()
	case telemetryevent.FieldBatterySocPct:
		return m.BatterySocPct()
	case telemetryevent.FieldBatterySohPct:
		return m.BatterySohPct()
	case telemetryevent.FieldDtcCodes:
		return m.DtcCodes()
	case telemetryevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TelemetryEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case telemetryevent.FieldVehicleID:
		return m.OldVehicleID(ctx)
	case telemetryevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case telemetryevent.FieldLatitude:
		return m.OldLatitude(ctx)
	case telemetryevent.FieldLongitude:
		return m.OldLongitude(ctx)
	case telemetryevent.FieldSpeedKmph:
		return m.OldSpeedKmph(ctx)
	case telemetryevent.FieldOdometerKm:
		return m.OldOdometerKm(ctx)
	case telemetryevent.FieldEngineRpm:
		return m.OldEngineRpm(ctx)
	case telemetryevent.FieldCoolantTempC:
		return m.OldCoolantTempC(ctx)
	case telemetryevent.FieldOilTempC:
		return m.OldOilTempC(ctx)
	case telemetryevent.FieldFuelLevelPct:
		return m.OldFuelLevelPct(ctx)
	case telemetryevent.FieldBatterySocPct:
		return m.OldBatterySocPct(ctx)
	case telemetryevent.FieldBatterySohPct:
		return m.OldBatterySohPct(ctx)
	case telemetryevent.FieldDtcCodes:
		return m.OldDtcCodes(ctx)
	case telemetryevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TelemetryEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TelemetryEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case telemetryevent.FieldVehicleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleID(v)
		return nil
	case telemetryevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case telemetryevent.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatitude(v)
		return nil
	case telemetryevent.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongitude(v)
		return nil
	case telemetryevent.FieldSpeedKmph:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeedKmph(v)
		return nil
	case telemetryevent.FieldOdometerKm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOdometerKm(v)
		return nil
	case telemetryevent.FieldEngineRpm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngineRpm(v)
		return nil
	case telemetryevent.FieldCoolantTempC:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoolantTempC(v)
		return nil
	case telemetryevent.FieldOilTempC:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOilTempC(v)
		return nil
	case telemetryevent.FieldFuelLevelPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFuelLevelPct(v)
		return nil
	case telemetryevent.FieldBatterySocPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatterySocPct(v)
		return nil
	case telemetryevent.FieldBatterySohPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatterySohPct(v)
		return nil
	case telemetryevent.FieldDtcCodes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDtcCodes(v)
		return nil
	case telemetryevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TelemetryEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TelemetryEventMutation) AddedFields() []string {
	var fields []string
	if m.addlatitude != nil {
		fields = append(fields, telemetryevent.FieldLatitude)
	}
	if m.addlongitude != nil {
		fields = append(fields, telemetryevent.FieldLongitude)
	}
	if m.addspeed_kmph != nil {
		fields = append(fields, telemetryevent.FieldSpeedKmph)
	}
	if m.addodometer_km != nil {
		fields = append(fields, telemetryevent.FieldOdometerKm)
	}
	if m.addengine_rpm != nil {
		fields = append(fields, telemetryevent.FieldEngineRpm)
	}
	if m.addcoolant_temp_c != nil {
		fields = append(fields, telemetryevent.FieldCoolantTempC)
	}
	if m.addoil_temp_c != nil {
		fields = append(fields, telemetryevent.FieldOilTempC)
	}
	if m.addfuel_level_pct != nil {
		fields = append(fields, telemetryevent.FieldFuelLevelPct)
	}
	if m.addbattery_soc_pct != nil {
		fields = append(fields, telemetryevent.FieldBatterySocPct)
	}
	if m.addbattery_soh_pct != nil {
		fields = append(fields, telemetryevent.FieldBatterySohPct)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TelemetryEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case telemetryevent.FieldLatitude:
		return m.AddedLatitude()
	case telemetryevent.FieldLongitude:
		return m.AddedLongitude()
	case telemetryevent.FieldSpeedKmph:
		return m.AddedSpeedKmph()
	case telemetryevent.FieldOdometerKm:
		return m.AddedOdometerKm()
	case telemetryevent.FieldEngineRpm:
		return m.AddedEngineRpm()
	case telemetryevent.FieldCoolantTempC:
		return m.AddedCoolantTempC()
	case telemetryevent.FieldOilTempC:
		return m.AddedOilTempC()
	case telemetryevent.FieldFuelLevelPct:
		return m.AddedFuelLevelPct()
	case telemetryevent.FieldBatterySocPct:
		return m.AddedBatterySocPct()
	case telemetryevent.FieldBatterySohPct:
		return m.AddedBatterySohPct()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TelemetryEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case telemetryevent.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatitude(v)
		return nil
	case telemetryevent.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongitude(v)
		return nil
	case telemetryevent.FieldSpeedKmph:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpeedKmph(v)
		return nil
	case telemetryevent.FieldOdometerKm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOdometerKm(v)
		return nil
	case telemetryevent.FieldEngineRpm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEngineRpm(v)
		return nil
	case telemetryevent.FieldCoolantTempC:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoolantTempC(v)
		return nil
	case telemetryevent.FieldOilTempC:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOilTempC(v)
		return nil
	case telemetryevent.FieldFuelLevelPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFuelLevelPct(v)
		return nil
	case telemetryevent.FieldBatterySocPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatterySocPct(v)
		return nil
	case telemetryevent.FieldBatterySohPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatterySohPct(v)
		return nil
	}
	return fmt.Errorf("unknown TelemetryEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TelemetryEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(telemetryevent.FieldLatitude) {
		fields = append(fields, telemetryevent.FieldLatitude)
	}
	if m.FieldCleared(telemetryevent.FieldLongitude) {
		fields = append(fields, telemetryevent.FieldLongitude)
	}
	if m.FieldCleared(telemetryevent.FieldDtcCodes) {
		fields = append(fields, telemetryevent.FieldDtcCodes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TelemetryEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TelemetryEventMutation) ClearField(name string) error {
	switch name {
	case telemetryevent.FieldLatitude:
		m.ClearLatitude()
		return nil
	case telemetryevent.FieldLongitude:
		m.ClearLongitude()
		return nil
	case telemetryevent.FieldDtcCodes:
		m.ClearDtcCodes()
		return nil
	}
	return fmt.Errorf("unknown TelemetryEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TelemetryEventMutation) ResetField(name string) error {
	switch name {
	case telemetryevent.FieldVehicleID:
		m.ResetVehicleID()
		return nil
	case telemetryevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case telemetryevent.FieldLatitude:
		m.ResetLatitude()
		return nil
	case telemetryevent.FieldLongitude:
		m.ResetLongitude()
		return nil
	case telemetryevent.FieldSpeedKmph:
		m.ResetSpeedKmph()
		return nil
	case telemetryevent.FieldOdometerKm:
		m.ResetOdometerKm()
		return nil
	case telemetryevent.FieldEngineRpm:
		m.ResetEngineRpm()
		return nil
	case telemetryevent.FieldCoolantTempC:
		m.ResetCoolantTempC()
		return nil
	case telemetryevent.FieldOilTempC:
		m.ResetOilTempC()
		return nil
	case telemetryevent.FieldFuelLevelPct:
		m.ResetFuelLevelPct()
		return nil
	case telemetryevent.FieldBatterySocPct:
		m.ResetBatterySocPct()
		return nil
	case telemetryevent.FieldBatterySohPct:
		m.ResetBatterySohPct()
		return nil
	case telemetryevent.FieldDtcCodes:
		m.ResetDtcCodes()
		return nil
	case telemetryevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TelemetryEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TelemetryEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TelemetryEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TelemetryEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TelemetryEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TelemetryEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TelemetryEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TelemetryEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TelemetryEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TelemetryEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TelemetryEvent edge %s", name)
}

// VehicleMutation represents an operation that mutates the Vehicle nodes in the graph.
type VehicleMutation struct {
	config
	op            Op
	typ           string
	id            *string
	owner_name    *string
	owner_phone   *string
	make          *string
	model         *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Vehicle, error)
	predicates    []predicate.Vehicle
}

var _ ent.Mutation = (*VehicleMutation)(nil)

// vehicleOption allows management of the mutation configuration using functional options.
type vehicleOption func(*VehicleMutation)

// newVehicleMutation creates new mutation for the Vehicle entity.
func newVehicleMutation(c config, op Op, opts ...vehicleOption) *VehicleMutation {
	m := &VehicleMutation{
		config:        c,
		op:            op,
		typ:           TypeVehicle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVehicleID sets the ID field of the mutation.
func withVehicleID(id string) vehicleOption {
	return func(m *VehicleMutation) {
		var (
			err   error
			once  sync.Once
			value *Vehicle
		)
		m.oldValue = func(ctx context.Context) (*Vehicle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vehicle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVehicle sets the old Vehicle of the mutation.
func withVehicle(node *Vehicle) vehicleOption {
	return func(m *VehicleMutation) {
		m.oldValue = func(context.Context) (*Vehicle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VehicleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VehicleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Vehicle entities.
func (m *VehicleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VehicleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VehicleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vehicle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerName sets the "owner_name" field.
func (m *VehicleMutation) SetOwnerName(s string) {
	m.owner_name = &s
}

// OwnerName returns the value of the "owner_name" field in the mutation.
func (m *VehicleMutation) OwnerName() (r string, exists bool) {
	v := m.owner_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerName returns the old "owner_name" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldOwnerName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerName: %w", err)
	}
	return oldValue.OwnerName, nil
}

// ClearOwnerName clears the value of the "owner_name" field.
func (m *VehicleMutation) ClearOwnerName() {
	m.owner_name = nil
	m.clearedFields[vehicle.FieldOwnerName] = struct{}{}
}

// OwnerNameCleared returns if the "owner_name" field was cleared in this mutation.
func (m *VehicleMutation) OwnerNameCleared() bool {
	_, ok := m.clearedFields[vehicle.FieldOwnerName]
	return ok
}

// ResetOwnerName resets all changes to the "owner_name" field.
func (m *VehicleMutation) ResetOwnerName() {
	m.owner_name = nil
	delete(m.clearedFields, vehicle.FieldOwnerName)
}

// SetOwnerPhone sets the "owner_phone" field.
func (m *VehicleMutation) SetOwnerPhone(s string) {
	m.owner_phone = &s
}

// OwnerPhone returns the value of the "owner_phone" field in the mutation.
func (m *VehicleMutation) OwnerPhone() (r string, exists bool) {
	v := m.owner_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerPhone returns the old "owner_phone" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldOwnerPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerPhone: %w", err)
	}
	return oldValue.OwnerPhone, nil
}

// ClearOwnerPhone clears the value of the "owner_phone" field.
func (m *VehicleMutation) ClearOwnerPhone() {
	m.owner_phone = nil
	m.clearedFields[vehicle.FieldOwnerPhone] = struct{}{}
}

// OwnerPhoneCleared returns if the "owner_phone" field was cleared in this mutation.
func (m *VehicleMutation) OwnerPhoneCleared() bool {
	_, ok := m.clearedFields[vehicle.FieldOwnerPhone]
	return ok
}

// ResetOwnerPhone resets all changes to the "owner_phone" field.
func (m *VehicleMutation) ResetOwnerPhone() {
	m.owner_phone = nil
	delete(m.clearedFields, vehicle.FieldOwnerPhone)
}

// SetMake sets the "make" field.
func (m *VehicleMutation) SetMake(s string) {
	m.make = &s
}

// Make returns the value of the "make" field in the mutation.
func (m *VehicleMutation) Make() (r string, exists bool) {
	v := m.make
	if v == nil {
		return
	}
	return *v, true
}

// OldMake returns the old "make" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldMake(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMake is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMake requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMake: %w", err)
	}
	return oldValue.Make, nil
}

// ClearMake clears the value of the "make" field.
func (m *VehicleMutation) ClearMake() {
	m.make = nil
	m.clearedFields[vehicle.FieldMake] = struct{}{}
}

// MakeCleared returns if the "make" field was cleared in this mutation.
func (m *VehicleMutation) MakeCleared() bool {
	_, ok := m.clearedFields[vehicle.FieldMake]
	return ok
}

// ResetMake resets all changes to the "make" field.
func (m *VehicleMutation) ResetMake() {
	m.make = nil
	delete(m.clearedFields, vehicle.FieldMake)
}

// SetModel sets the "model" field.
func (m *VehicleMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *VehicleMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *VehicleMutation) ClearModel() {
	m.model = nil
	m.clearedFields[vehicle.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *VehicleMutation) ModelCleared() bool {
	_, ok := m.clearedFields[vehicle.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *VehicleMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, vehicle.FieldModel)
}

// SetCreatedAt sets the "created_at" field.
func (m *VehicleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VehicleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VehicleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VehicleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VehicleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VehicleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the VehicleMutation builder.
func (m *VehicleMutation) Where(ps ...predicate.Vehicle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VehicleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VehicleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vehicle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VehicleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VehicleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vehicle).
func (m *VehicleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VehicleMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.owner_name != nil {
		fields = append(fields, vehicle.FieldOwnerName)
	}
	if m.owner_phone != nil {
		fields = append(fields, vehicle.FieldOwnerPhone)
	}
	if m.make != nil {
		fields = append(fields, vehicle.FieldMake)
	}
	if m.model != nil {
		fields = append(fields, vehicle.FieldModel)
	}
	if m.created_at != nil {
		fields = append(fields, vehicle.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, vehicle.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VehicleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vehicle.FieldOwnerName:
		return m.OwnerName()
	case vehicle.FieldOwnerPhone:
		return m.OwnerPhone()
	case vehicle.FieldMake:
		return m.Make()
	case vehicle.FieldModel:
		return m.Model()
	case vehicle.FieldCreatedAt:
		return m.CreatedAt()
	case vehicle.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VehicleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vehicle.FieldOwnerName:
		return m.OldOwnerName(ctx)
	case vehicle.FieldOwnerPhone:
		return m.OldOwnerPhone(ctx)
	case vehicle.FieldMake:
		return m.OldMake(ctx)
	case vehicle.FieldModel:
		return m.OldModel(ctx)
	case vehicle.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case vehicle.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Vehicle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VehicleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vehicle.FieldOwnerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerName(v)
		return nil
	case vehicle.FieldOwnerPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerPhone(v)
		return nil
	case vehicle.FieldMake:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMake(v)
		return nil
	case vehicle.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case vehicle.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case vehicle.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Vehicle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VehicleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VehicleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VehicleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Vehicle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VehicleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vehicle.FieldOwnerName) {
		fields = append(fields, vehicle.FieldOwnerName)
	}
	if m.FieldCleared(vehicle.FieldOwnerPhone) {
		fields = append(fields, vehicle.FieldOwnerPhone)
	}
	if m.FieldCleared(vehicle.FieldMake) {
		fields = append(fields, vehicle.FieldMake)
	}
	if m.FieldCleared(vehicle.FieldModel) {
		fields = append(fields, vehicle.FieldModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VehicleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VehicleMutation) ClearField(name string) error {
	switch name {
	case vehicle.FieldOwnerName:
		m.ClearOwnerName()
		return nil
	case vehicle.FieldOwnerPhone:
		m.ClearOwnerPhone()
		return nil
	case vehicle.FieldMake:
		m.ClearMake()
		return nil
	case vehicle.FieldModel:
		m.ClearModel()
		return nil
	}
	return fmt.Errorf("unknown Vehicle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VehicleMutation) ResetField(name string) error {
	switch name {
	case vehicle.FieldOwnerName:
		m.ResetOwnerName()
		return nil
	case vehicle.FieldOwnerPhone:
		m.ResetOwnerPhone()
		return nil
	case vehicle.FieldMake:
		m.ResetMake()
		return nil
	case vehicle.FieldModel:
		m.ResetModel()
		return nil
	case vehicle.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case vehicle.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Vehicle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VehicleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VehicleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VehicleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VehicleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VehicleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VehicleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VehicleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Vehicle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VehicleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Vehicle edge %s", name)
}

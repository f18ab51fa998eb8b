// Package warehouse mirrors finished case records into append-only analytics
// tables. Mirroring is best effort: a failed append is logged by the caller
// and never blocks the pipeline.
package warehouse

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fleetsense/fleetsense/ent"
)

// Sink appends case snapshots to the wh_* tables.
type Sink struct {
	db *stdsql.DB
}

// NewSink creates a new Sink.
func NewSink(db *stdsql.DB) *Sink {
	if db == nil {
		panic("NewSink: db must not be nil")
	}
	return &Sink{db: db}
}

// joinIDs flattens a list column into the comma-joined string the analytics
// tables store.
func joinIDs(ids []string) string {
	return strings.Join(ids, ",")
}

// orNow substitutes the current instant for zero timestamps so the NOT NULL
// created_at columns never reject a row.
func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

func derefStr(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// MirrorAnomaly appends an anomaly case snapshot.
func (s *Sink) MirrorAnomaly(ctx context.Context, c *ent.AnomalyCase) error {
	var anomalyType, severity any
	if c.AnomalyType != nil {
		anomalyType = string(*c.AnomalyType)
	}
	if c.SeverityScore != nil {
		severity = *c.SeverityScore
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wh_anomaly_cases
		 (case_id, vehicle_id, anomaly_detected, anomaly_type, severity_score, telemetry_event_ids, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.VehicleID, c.AnomalyDetected, anomalyType, severity,
		joinIDs(c.TelemetryEventIds), string(c.Status), orNow(c.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to mirror anomaly case %s: %w", c.ID, err)
	}
	return nil
}

// MirrorDiagnosis appends a diagnosis case snapshot.
func (s *Sink) MirrorDiagnosis(ctx context.Context, d *ent.DiagnosisCase) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wh_diagnosis_cases
		 (diagnosis_id, case_id, vehicle_id, component, failure_probability, estimated_rul_days, severity, context_event_ids, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		d.ID, d.CaseID, d.VehicleID, d.Component, d.FailureProbability,
		d.EstimatedRulDays, string(d.Severity), joinIDs(d.ContextEventIds),
		string(d.Status), orNow(d.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to mirror diagnosis %s: %w", d.ID, err)
	}
	return nil
}

// MirrorRca appends an RCA case snapshot.
func (s *Sink) MirrorRca(ctx context.Context, r *ent.RcaCase) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wh_rca_cases
		 (rca_id, diagnosis_id, case_id, vehicle_id, root_cause, confidence, recommended_action, capa_type, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		r.ID, r.DiagnosisID, r.CaseID, r.VehicleID, r.RootCause, r.Confidence,
		r.RecommendedAction, string(r.CapaType), string(r.Status), orNow(r.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to mirror rca %s: %w", r.ID, err)
	}
	return nil
}

// MirrorScheduling appends a scheduling case snapshot.
func (s *Sink) MirrorScheduling(ctx context.Context, sc *ent.SchedulingCase) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wh_scheduling_cases
		 (scheduling_id, rca_id, case_id, vehicle_id, best_slot, service_center, slot_type, fallback_slots, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		sc.ID, sc.RcaID, sc.CaseID, sc.VehicleID, sc.BestSlot.UTC(),
		sc.ServiceCenter, string(sc.SlotType), joinIDs(sc.FallbackSlots),
		string(sc.Status), orNow(sc.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to mirror scheduling %s: %w", sc.ID, err)
	}
	return nil
}

// MirrorEngagement appends an engagement case snapshot. The transcript stays
// in the document store; analytics only needs the decision.
func (s *Sink) MirrorEngagement(ctx context.Context, e *ent.EngagementCase) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wh_engagement_cases
		 (engagement_id, scheduling_id, case_id, vehicle_id, customer_decision, booking_id, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.SchedulingID, e.CaseID, e.VehicleID, string(e.CustomerDecision),
		derefStr(e.BookingID), string(e.Status), orNow(e.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to mirror engagement %s: %w", e.ID, err)
	}
	return nil
}

// MirrorCommunication appends a communication case snapshot.
func (s *Sink) MirrorCommunication(ctx context.Context, c *ent.CommunicationCase) error {
	var outcome any
	if c.Outcome != nil {
		outcome = string(*c.Outcome)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wh_communication_cases
		 (communication_id, engagement_id, case_id, vehicle_id, call_status, outcome, booking_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.EngagementID, c.CaseID, c.VehicleID, string(c.CallStatus),
		outcome, derefStr(c.BookingID), orNow(c.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to mirror communication %s: %w", c.ID, err)
	}
	return nil
}

// MirrorFeedback appends a feedback case snapshot.
func (s *Sink) MirrorFeedback(ctx context.Context, f *ent.FeedbackCase) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wh_feedback_cases
		 (feedback_id, booking_id, case_id, vehicle_id, cei_score, validation_label, recommended_retrain, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		f.ID, f.BookingID, f.CaseID, f.VehicleID, f.CeiScore,
		string(f.ValidationLabel), f.RecommendedRetrain, orNow(f.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to mirror feedback %s: %w", f.ID, err)
	}
	return nil
}

// MirrorManufacturing appends a manufacturing case snapshot.
func (s *Sink) MirrorManufacturing(ctx context.Context, m *ent.ManufacturingCase) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wh_manufacturing_cases
		 (manufacturing_id, feedback_id, case_id, vehicle_id, issue, capa_recommendation, severity, recurrence_cluster_size, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.FeedbackID, m.CaseID, m.VehicleID, m.Issue,
		m.CapaRecommendation, string(m.Severity), m.RecurrenceClusterSize,
		orNow(m.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to mirror manufacturing %s: %w", m.ID, err)
	}
	return nil
}

// MirrorPipelineState appends a routing-decision snapshot.
func (s *Sink) MirrorPipelineState(ctx context.Context, st *ent.PipelineState) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wh_pipeline_states
		 (case_id, current_stage, next_stage, confidence, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		st.ID, st.CurrentStage, derefStr(st.NextStage), st.Confidence,
		orNow(st.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to mirror pipeline state %s: %w", st.ID, err)
	}
	return nil
}

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnomalyCase is the predicate function for anomalycase builders.
type AnomalyCase func(*sql.Selector)

// Booking is the predicate function for booking builders.
type Booking func(*sql.Selector)

// BusMessage is the predicate function for busmessage builders.
type BusMessage func(*sql.Selector)

// CallContext is the predicate function for callcontext builders.
type CallContext func(*sql.Selector)

// CommunicationCase is the predicate function for communicationcase builders.
type CommunicationCase func(*sql.Selector)

// DiagnosisCase is the predicate function for diagnosiscase builders.
type DiagnosisCase func(*sql.Selector)

// EngagementCase is the predicate function for engagementcase builders.
type EngagementCase func(*sql.Selector)

// FeedbackCase is the predicate function for feedbackcase builders.
type FeedbackCase func(*sql.Selector)

// HumanReview is the predicate function for humanreview builders.
type HumanReview func(*sql.Selector)

// ManufacturingCase is the predicate function for manufacturingcase builders.
type ManufacturingCase func(*sql.Selector)

// PipelineState is the predicate function for pipelinestate builders.
type PipelineState func(*sql.Selector)

// RcaCase is the predicate function for rcacase builders.
type RcaCase func(*sql.Selector)

// SchedulingCase is the predicate function for schedulingcase builders.
type SchedulingCase func(*sql.Selector)

// TelemetryEvent is the predicate function for telemetryevent builders.
type TelemetryEvent func(*sql.Selector)

// Vehicle is the predicate function for vehicle builders.
type Vehicle func(*sql.Selector)

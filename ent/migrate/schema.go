// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnomalyCasesColumns holds the columns for the "anomaly_cases" table.
	AnomalyCasesColumns = []*schema.Column{
		{Name: "case_id", Type: field.TypeString, Unique: true},
		{Name: "vehicle_id", Type: field.TypeString},
		{Name: "anomaly_detected", Type: field.TypeBool, Default: false},
		{Name: "anomaly_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"thermal_overheat", "oil_overheat", "battery_degradation", "low_charge", "rpm_spike", "rpm_stall", "dtc_fault", "speed_anomaly", "gps_anomaly"}},
		{Name: "severity_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "telemetry_event_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_diagnosis", "diagnosing", "diagnosed", "scheduled", "engaged", "completed"}, Default: "pending_diagnosis"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AnomalyCasesTable holds the schema information for the "anomaly_cases" table.
	AnomalyCasesTable = &schema.Table{
		Name:       "anomaly_cases",
		Columns:    AnomalyCasesColumns,
		PrimaryKey: []*schema.Column{AnomalyCasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "anomalycase_vehicle_id",
				Unique:  false,
				Columns: []*schema.Column{AnomalyCasesColumns[1]},
			},
			{
				Name:    "anomalycase_vehicle_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnomalyCasesColumns[1], AnomalyCasesColumns[6], AnomalyCasesColumns[7]},
			},
		},
	}
	// BookingsColumns holds the columns for the "bookings" table.
	BookingsColumns = []*schema.Column{
		{Name: "booking_id", Type: field.TypeString, Unique: true},
		{Name: "case_id", Type: field.TypeString},
		{Name: "vehicle_id", Type: field.TypeString},
		{Name: "service_center", Type: field.TypeString},
		{Name: "scheduled_slot", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"confirmed", "pending", "feedback_complete"}, Default: "confirmed"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BookingsTable holds the schema information for the "bookings" table.
	BookingsTable = &schema.Table{
		Name:       "bookings",
		Columns:    BookingsColumns,
		PrimaryKey: []*schema.Column{BookingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "booking_case_id",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[1]},
			},
			{
				Name:    "booking_vehicle_id",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[2]},
			},
			{
				Name:    "booking_service_center_scheduled_slot",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[3], BookingsColumns[4]},
			},
		},
	}
	// BusMessagesColumns holds the columns for the "bus_messages" table.
	BusMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "delivered", "failed"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "available_at", Type: field.TypeTime},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BusMessagesTable holds the schema information for the "bus_messages" table.
	BusMessagesTable = &schema.Table{
		Name:       "bus_messages",
		Columns:    BusMessagesColumns,
		PrimaryKey: []*schema.Column{BusMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "busmessage_topic_status_available_at",
				Unique:  false,
				Columns: []*schema.Column{BusMessagesColumns[1], BusMessagesColumns[3], BusMessagesColumns[5]},
			},
			{
				Name:    "busmessage_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{BusMessagesColumns[3], BusMessagesColumns[7]},
			},
		},
	}
	// CallContextsColumns holds the columns for the "call_contexts" table.
	CallContextsColumns = []*schema.Column{
		{Name: "call_sid", Type: field.TypeString, Unique: true},
		{Name: "communication_id", Type: field.TypeString},
		{Name: "engagement_id", Type: field.TypeString},
		{Name: "case_id", Type: field.TypeString},
		{Name: "vehicle_id", Type: field.TypeString},
		{Name: "customer_phone", Type: field.TypeString},
		{Name: "customer_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CallContextsTable holds the schema information for the "call_contexts" table.
	CallContextsTable = &schema.Table{
		Name:       "call_contexts",
		Columns:    CallContextsColumns,
		PrimaryKey: []*schema.Column{CallContextsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "callcontext_created_at",
				Unique:  false,
				Columns: []*schema.Column{CallContextsColumns[7]},
			},
		},
	}
	// CommunicationCasesColumns holds the columns for the "communication_cases" table.
	CommunicationCasesColumns = []*schema.Column{
		{Name: "communication_id", Type: field.TypeString, Unique: true},
		{Name: "engagement_id", Type: field.TypeString},
		{Name: "case_id", Type: field.TypeString},
		{Name: "vehicle_id", Type: field.TypeString},
		{Name: "customer_phone", Type: field.TypeString},
		{Name: "customer_name", Type: field.TypeString, Nullable: true},
		{Name: "call_status", Type: field.TypeEnum, Enums: []string{"initiating", "initiated", "ringing", "answered", "completed", "failed"}, Default: "initiating"},
		{Name: "conversation_stage", Type: field.TypeEnum, Enums: []string{"pending", "greeting", "explanation", "scheduling", "questions", "completed"}, Default: "pending"},
		{Name: "conversation_transcript", Type: field.TypeJSON, Nullable: true},
		{Name: "outcome", Type: field.TypeEnum, Nullable: true, Enums: []string{"confirmed", "declined"}},
		{Name: "booking_id", Type: field.TypeString, Nullable: true},
		{Name: "call_sid", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CommunicationCasesTable holds the schema information for the "communication_cases" table.
	CommunicationCasesTable = &schema.Table{
		Name:       "communication_cases",
		Columns:    CommunicationCasesColumns,
		PrimaryKey: []*schema.Column{CommunicationCasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "communicationcase_engagement_id",
				Unique:  false,
				Columns: []*schema.Column{CommunicationCasesColumns[1]},
			},
			{
				Name:    "communicationcase_call_sid",
				Unique:  false,
				Columns: []*schema.Column{CommunicationCasesColumns[11]},
			},
		},
	}
	// DiagnosisCasesColumns holds the columns for the "diagnosis_cases" table.
	DiagnosisCasesColumns = []*schema.Column{
		{Name: "diagnosis_id", Type: field.TypeString, Unique: true},
		{Name: "case_id", Type: field.TypeString},
		{Name: "vehicle_id", Type: field.TypeString},
		{Name: "component", Type: field.TypeString},
		{Name: "failure_probability", Type: field.TypeFloat64},
		{Name: "estimated_rul_days", Type: field.TypeInt},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"Low", "Medium", "High"}},
		{Name: "context_event_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_rca", "rca_complete", "scheduled", "engaged", "completed"}, Default: "pending_rca"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DiagnosisCasesTable holds the schema information for the "diagnosis_cases" table.
	DiagnosisCasesTable = &schema.Table{
		Name:       "diagnosis_cases",
		Columns:    DiagnosisCasesColumns,
		PrimaryKey: []*schema.Column{DiagnosisCasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "diagnosiscase_case_id",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisCasesColumns[1]},
			},
			{
				Name:    "diagnosiscase_vehicle_id",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisCasesColumns[2]},
			},
		},
	}
	// EngagementCasesColumns holds the columns for the "engagement_cases" table.
	EngagementCasesColumns = []*schema.Column{
		{Name: "engagement_id", Type: field.TypeString, Unique: true},
		{Name: "scheduling_id", Type: field.TypeString},
		{Name: "rca_id", Type: field.TypeString, Nullable: true},
		{Name: "case_id", Type: field.TypeString},
		{Name: "vehicle_id", Type: field.TypeString},
		{Name: "customer_phone", Type: field.TypeString, Nullable: true},
		{Name: "customer_name", Type: field.TypeString, Nullable: true},
		{Name: "customer_decision", Type: field.TypeEnum, Enums: []string{"confirmed", "declined", "no_response"}},
		{Name: "booking_id", Type: field.TypeString, Nullable: true},
		{Name: "transcript", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"completed"}, Default: "completed"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EngagementCasesTable holds the schema information for the "engagement_cases" table.
	EngagementCasesTable = &schema.Table{
		Name:       "engagement_cases",
		Columns:    EngagementCasesColumns,
		PrimaryKey: []*schema.Column{EngagementCasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "engagementcase_scheduling_id",
				Unique:  false,
				Columns: []*schema.Column{EngagementCasesColumns[1]},
			},
			{
				Name:    "engagementcase_case_id",
				Unique:  false,
				Columns: []*schema.Column{EngagementCasesColumns[3]},
			},
		},
	}
	// FeedbackCasesColumns holds the columns for the "feedback_cases" table.
	FeedbackCasesColumns = []*schema.Column{
		{Name: "feedback_id", Type: field.TypeString, Unique: true},
		{Name: "booking_id", Type: field.TypeString},
		{Name: "case_id", Type: field.TypeString},
		{Name: "vehicle_id", Type: field.TypeString},
		{Name: "cei_score", Type: field.TypeFloat64},
		{Name: "validation_label", Type: field.TypeEnum, Enums: []string{"Correct", "Recurring", "Incorrect"}},
		{Name: "recommended_retrain", Type: field.TypeBool},
		{Name: "technician_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "customer_rating", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_manufacturing", "manufacturing_complete"}, Default: "pending_manufacturing"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FeedbackCasesTable holds the schema information for the "feedback_cases" table.
	FeedbackCasesTable = &schema.Table{
		Name:       "feedback_cases",
		Columns:    FeedbackCasesColumns,
		PrimaryKey: []*schema.Column{FeedbackCasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feedbackcase_booking_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbackCasesColumns[1]},
			},
			{
				Name:    "feedbackcase_case_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbackCasesColumns[2]},
			},
		},
	}
	// HumanReviewsColumns holds the columns for the "human_reviews" table.
	HumanReviewsColumns = []*schema.Column{
		{Name: "review_id", Type: field.TypeString, Unique: true},
		{Name: "case_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "message", Type: field.TypeJSON, Nullable: true},
		{Name: "review_status", Type: field.TypeEnum, Enums: []string{"pending", "resolved"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// HumanReviewsTable holds the schema information for the "human_reviews" table.
	HumanReviewsTable = &schema.Table{
		Name:       "human_reviews",
		Columns:    HumanReviewsColumns,
		PrimaryKey: []*schema.Column{HumanReviewsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "humanreview_review_status",
				Unique:  false,
				Columns: []*schema.Column{HumanReviewsColumns[5]},
			},
			{
				Name:    "humanreview_case_id",
				Unique:  false,
				Columns: []*schema.Column{HumanReviewsColumns[1]},
			},
		},
	}
	// ManufacturingCasesColumns holds the columns for the "manufacturing_cases" table.
	ManufacturingCasesColumns = []*schema.Column{
		{Name: "manufacturing_id", Type: field.TypeString, Unique: true},
		{Name: "feedback_id", Type: field.TypeString},
		{Name: "case_id", Type: field.TypeString},
		{Name: "vehicle_id", Type: field.TypeString},
		{Name: "issue", Type: field.TypeString, Size: 2147483647},
		{Name: "capa_recommendation", Type: field.TypeString, Size: 2147483647},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"Low", "Medium", "High"}},
		{Name: "recurrence_cluster_size", Type: field.TypeInt},
		{Name: "vehicle_recurrence_count", Type: field.TypeInt, Default: 0},
		{Name: "anomaly_type_recurrence_count", Type: field.TypeInt, Default: 0},
		{Name: "component_recurrence_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ManufacturingCasesTable holds the schema information for the "manufacturing_cases" table.
	ManufacturingCasesTable = &schema.Table{
		Name:       "manufacturing_cases",
		Columns:    ManufacturingCasesColumns,
		PrimaryKey: []*schema.Column{ManufacturingCasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "manufacturingcase_feedback_id",
				Unique:  false,
				Columns: []*schema.Column{ManufacturingCasesColumns[1]},
			},
			{
				Name:    "manufacturingcase_case_id",
				Unique:  false,
				Columns: []*schema.Column{ManufacturingCasesColumns[2]},
			},
		},
	}
	// PipelineStatesColumns holds the columns for the "pipeline_states" table.
	PipelineStatesColumns = []*schema.Column{
		{Name: "case_id", Type: field.TypeString, Unique: true},
		{Name: "current_stage", Type: field.TypeString},
		{Name: "next_stage", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PipelineStatesTable holds the schema information for the "pipeline_states" table.
	PipelineStatesTable = &schema.Table{
		Name:       "pipeline_states",
		Columns:    PipelineStatesColumns,
		PrimaryKey: []*schema.Column{PipelineStatesColumns[0]},
	}
	// RcaCasesColumns holds the columns for the "rca_cases" table.
	RcaCasesColumns = []*schema.Column{
		{Name: "rca_id", Type: field.TypeString, Unique: true},
		{Name: "diagnosis_id", Type: field.TypeString},
		{Name: "case_id", Type: field.TypeString},
		{Name: "vehicle_id", Type: field.TypeString},
		{Name: "root_cause", Type: field.TypeString, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "recommended_action", Type: field.TypeString, Size: 2147483647},
		{Name: "capa_type", Type: field.TypeEnum, Enums: []string{"Corrective", "Preventive"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_scheduling", "scheduled", "engaged", "completed"}, Default: "pending_scheduling"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RcaCasesTable holds the schema information for the "rca_cases" table.
	RcaCasesTable = &schema.Table{
		Name:       "rca_cases",
		Columns:    RcaCasesColumns,
		PrimaryKey: []*schema.Column{RcaCasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rcacase_diagnosis_id",
				Unique:  false,
				Columns: []*schema.Column{RcaCasesColumns[1]},
			},
			{
				Name:    "rcacase_case_id",
				Unique:  false,
				Columns: []*schema.Column{RcaCasesColumns[2]},
			},
		},
	}
	// SchedulingCasesColumns holds the columns for the "scheduling_cases" table.
	SchedulingCasesColumns = []*schema.Column{
		{Name: "scheduling_id", Type: field.TypeString, Unique: true},
		{Name: "rca_id", Type: field.TypeString},
		{Name: "diagnosis_id", Type: field.TypeString},
		{Name: "case_id", Type: field.TypeString},
		{Name: "vehicle_id", Type: field.TypeString},
		{Name: "best_slot", Type: field.TypeTime},
		{Name: "service_center", Type: field.TypeString},
		{Name: "slot_type", Type: field.TypeEnum, Enums: []string{"urgent", "normal", "delayed"}},
		{Name: "fallback_slots", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_engagement", "engagement_complete"}, Default: "pending_engagement"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SchedulingCasesTable holds the schema information for the "scheduling_cases" table.
	SchedulingCasesTable = &schema.Table{
		Name:       "scheduling_cases",
		Columns:    SchedulingCasesColumns,
		PrimaryKey: []*schema.Column{SchedulingCasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "schedulingcase_rca_id",
				Unique:  false,
				Columns: []*schema.Column{SchedulingCasesColumns[1]},
			},
			{
				Name:    "schedulingcase_case_id",
				Unique:  false,
				Columns: []*schema.Column{SchedulingCasesColumns[3]},
			},
		},
	}
	// TelemetryEventsColumns holds the columns for the "telemetry_events" table.
	TelemetryEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "vehicle_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "latitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "longitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "speed_kmph", Type: field.TypeFloat64, Default: 0},
		{Name: "odometer_km", Type: field.TypeFloat64, Default: 0},
		{Name: "engine_rpm", Type: field.TypeFloat64, Default: 0},
		{Name: "coolant_temp_c", Type: field.TypeFloat64, Default: 0},
		{Name: "oil_temp_c", Type: field.TypeFloat64, Default: 0},
		{Name: "fuel_level_pct", Type: field.TypeFloat64, Default: 0},
		{Name: "battery_soc_pct", Type: field.TypeFloat64, Default: 0},
		{Name: "battery_soh_pct", Type: field.TypeFloat64, Default: 100},
		{Name: "dtc_codes", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TelemetryEventsTable holds the schema information for the "telemetry_events" table.
	TelemetryEventsTable = &schema.Table{
		Name:       "telemetry_events",
		Columns:    TelemetryEventsColumns,
		PrimaryKey: []*schema.Column{TelemetryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "telemetryevent_vehicle_id",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[1]},
			},
			{
				Name:    "telemetryevent_vehicle_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[1], TelemetryEventsColumns[2]},
			},
		},
	}
	// VehiclesColumns holds the columns for the "vehicles" table.
	VehiclesColumns = []*schema.Column{
		{Name: "vehicle_id", Type: field.TypeString, Unique: true},
		{Name: "owner_name", Type: field.TypeString, Nullable: true},
		{Name: "owner_phone", Type: field.TypeString, Nullable: true},
		{Name: "make", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// VehiclesTable holds the schema information for the "vehicles" table.
	VehiclesTable = &schema.Table{
		Name:       "vehicles",
		Columns:    VehiclesColumns,
		PrimaryKey: []*schema.Column{VehiclesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnomalyCasesTable,
		BookingsTable,
		BusMessagesTable,
		CallContextsTable,
		CommunicationCasesTable,
		DiagnosisCasesTable,
		EngagementCasesTable,
		FeedbackCasesTable,
		HumanReviewsTable,
		ManufacturingCasesTable,
		PipelineStatesTable,
		RcaCasesTable,
		SchedulingCasesTable,
		TelemetryEventsTable,
		VehiclesTable,
	}
)

func init() {
}

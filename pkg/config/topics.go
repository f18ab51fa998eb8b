package config

// Topics holds the bus topic names. Names are arbitrary at the bus level;
// the contracts ride on the payloads. Overridable so several deployments can
// share one database.
type Topics struct {
	TelemetryIngested    string `yaml:"telemetry_ingested"`
	AnomalyDetected      string `yaml:"anomaly_detected"`
	DiagnosisComplete    string `yaml:"diagnosis_complete"`
	RcaComplete          string `yaml:"rca_complete"`
	SchedulingComplete   string `yaml:"scheduling_complete"`
	EngagementComplete   string `yaml:"engagement_complete"`
	CommunicationTrigger string `yaml:"communication_trigger"`
	CommunicationDone    string `yaml:"communication_complete"`
	FeedbackRequested    string `yaml:"feedback_requested"`
	FeedbackComplete     string `yaml:"feedback_complete"`
	ManufacturingDone    string `yaml:"manufacturing_complete"`

	// Dispatch topics: the orchestrator republishes onto these; stage
	// workers subscribe to them. Completion topics above are consumed only
	// by the orchestrator, which is what lets the confidence gate actually
	// stop downstream work.
	DiagnosisDispatch     string `yaml:"diagnosis_dispatch"`
	RcaDispatch           string `yaml:"rca_dispatch"`
	SchedulingDispatch    string `yaml:"scheduling_dispatch"`
	EngagementDispatch    string `yaml:"engagement_dispatch"`
	ManufacturingDispatch string `yaml:"manufacturing_dispatch"`
}

// DefaultTopics returns the built-in topic names.
func DefaultTopics() *Topics {
	return &Topics{
		TelemetryIngested:     "telemetry-ingested",
		AnomalyDetected:       "anomaly-detected",
		DiagnosisComplete:     "diagnosis-complete",
		RcaComplete:           "rca-complete",
		SchedulingComplete:    "scheduling-complete",
		EngagementComplete:    "engagement-complete",
		CommunicationTrigger:  "communication-trigger",
		CommunicationDone:     "communication-complete",
		FeedbackRequested:     "feedback-requested",
		FeedbackComplete:      "feedback-complete",
		ManufacturingDone:     "manufacturing-complete",
		DiagnosisDispatch:     "diagnosis-dispatch",
		RcaDispatch:           "rca-dispatch",
		SchedulingDispatch:    "scheduling-dispatch",
		EngagementDispatch:    "engagement-dispatch",
		ManufacturingDispatch: "manufacturing-dispatch",
	}
}

// All returns every configured topic name. Used to validate uniqueness and to
// register LISTEN channels.
func (t *Topics) All() []string {
	return []string{
		t.TelemetryIngested,
		t.AnomalyDetected,
		t.DiagnosisComplete,
		t.RcaComplete,
		t.SchedulingComplete,
		t.EngagementComplete,
		t.CommunicationTrigger,
		t.CommunicationDone,
		t.FeedbackRequested,
		t.FeedbackComplete,
		t.ManufacturingDone,
		t.DiagnosisDispatch,
		t.RcaDispatch,
		t.SchedulingDispatch,
		t.EngagementDispatch,
		t.ManufacturingDispatch,
	}
}

// CompletionTopics returns the topics the orchestrator subscribes to.
func (t *Topics) CompletionTopics() []string {
	return []string{
		t.AnomalyDetected,
		t.DiagnosisComplete,
		t.RcaComplete,
		t.SchedulingComplete,
		t.EngagementComplete,
		t.CommunicationDone,
		t.FeedbackComplete,
		t.ManufacturingDone,
	}
}

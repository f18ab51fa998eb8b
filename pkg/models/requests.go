package models

// IngestTelemetryRequest is the body of POST /ingest_telemetry. EventID is
// generated when absent; Timestamp is RFC 3339.
type IngestTelemetryRequest struct {
	EventID       string   `json:"event_id,omitempty"`
	VehicleID     string   `json:"vehicle_id"`
	Timestamp     string   `json:"timestamp"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	SpeedKmph     float64  `json:"speed_kmph"`
	OdometerKm    float64  `json:"odometer_km"`
	EngineRpm     float64  `json:"engine_rpm"`
	CoolantTempC  float64  `json:"coolant_temp_c"`
	OilTempC      float64  `json:"oil_temp_c"`
	FuelLevelPct  float64  `json:"fuel_level_pct"`
	BatterySocPct float64  `json:"battery_soc_pct"`
	BatterySohPct float64  `json:"battery_soh_pct"`
	DtcCodes      []string `json:"dtc_codes,omitempty"`
}

// IngestTelemetryResponse is the body returned by POST /ingest_telemetry.
type IngestTelemetryResponse struct {
	Status  string `json:"status"`
	EventID string `json:"event_id"`
}

// FeedbackRequest is the operator entry point for the feedback stage.
type FeedbackRequest struct {
	BookingID            string                   `json:"booking_id"`
	TechnicianNotes      string                   `json:"technician_notes"`
	CustomerRating       *int                     `json:"customer_rating,omitempty"`
	PostServiceTelemetry []IngestTelemetryRequest `json:"post_service_telemetry,omitempty"`
}

// VehicleRequest seeds or updates the owner-contact record for a vehicle.
type VehicleRequest struct {
	VehicleID  string `json:"vehicle_id"`
	OwnerName  string `json:"owner_name,omitempty"`
	OwnerPhone string `json:"owner_phone,omitempty"`
	Make       string `json:"make,omitempty"`
	Model      string `json:"model,omitempty"`
}

// DialogueTurn is one entry of an engagement or communication transcript.
type DialogueTurn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// TurnsToJSON converts transcript turns into the shape stored in the JSONB
// transcript columns.
func TurnsToJSON(turns []DialogueTurn) []map[string]any {
	out := make([]map[string]any, 0, len(turns))
	for _, t := range turns {
		out = append(out, map[string]any{"speaker": t.Speaker, "text": t.Text})
	}
	return out
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/telemetryevent"
	"github.com/fleetsense/fleetsense/pkg/models"
)

// TelemetryService persists and reads telemetry events. Events are immutable
// after insert.
type TelemetryService struct {
	client *ent.Client
}

// NewTelemetryService creates a new TelemetryService.
func NewTelemetryService(client *ent.Client) *TelemetryService {
	if client == nil {
		panic("NewTelemetryService: client must not be nil")
	}
	return &TelemetryService{client: client}
}

// Ingest validates and persists one telemetry sample. The event ID is
// generated when the request does not carry one.
func (s *TelemetryService) Ingest(ctx context.Context, req models.IngestTelemetryRequest) (*ent.TelemetryEvent, error) {
	if req.VehicleID == "" {
		return nil, NewValidationError("vehicle_id", "vehicle_id is required")
	}
	if req.Timestamp == "" {
		return nil, NewValidationError("timestamp", "timestamp is required")
	}
	ts, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		return nil, NewValidationError("timestamp", fmt.Sprintf("not RFC 3339: %v", err))
	}

	eventID := req.EventID
	if eventID == "" {
		eventID = models.NewEventID()
	}

	builder := s.client.TelemetryEvent.Create().
		SetID(eventID).
		SetVehicleID(req.VehicleID).
		SetTimestamp(ts.UTC()).
		SetSpeedKmph(req.SpeedKmph).
		SetOdometerKm(req.OdometerKm).
		SetEngineRpm(req.EngineRpm).
		SetCoolantTempC(req.CoolantTempC).
		SetOilTempC(req.OilTempC).
		SetFuelLevelPct(req.FuelLevelPct).
		SetBatterySocPct(req.BatterySocPct).
		SetBatterySohPct(req.BatterySohPct)

	if req.Latitude != nil {
		builder.SetLatitude(*req.Latitude)
	}
	if req.Longitude != nil {
		builder.SetLongitude(*req.Longitude)
	}
	if len(req.DtcCodes) > 0 {
		builder.SetDtcCodes(req.DtcCodes)
	}

	event, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: event %s", ErrAlreadyExists, eventID)
		}
		return nil, fmt.Errorf("failed to persist telemetry event: %w", err)
	}
	return event, nil
}

// RecentForVehicle returns the last limit events for a vehicle in
// chronological order (oldest first), the shape the anomaly rules expect.
func (s *TelemetryService) RecentForVehicle(ctx context.Context, vehicleID string, limit int) ([]*ent.TelemetryEvent, error) {
	events, err := s.client.TelemetryEvent.Query().
		Where(telemetryevent.VehicleIDEQ(vehicleID)).
		Order(ent.Desc(telemetryevent.FieldTimestamp)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query telemetry for %s: %w", vehicleID, err)
	}
	// Reverse into chronological order.
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return events, nil
}

// ByIDs fetches events by key, preserving the order given.
func (s *TelemetryService) ByIDs(ctx context.Context, ids []string) ([]*ent.TelemetryEvent, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	events, err := s.client.TelemetryEvent.Query().
		Where(telemetryevent.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query telemetry events: %w", err)
	}
	byID := make(map[string]*ent.TelemetryEvent, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}
	ordered := make([]*ent.TelemetryEvent, 0, len(ids))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			ordered = append(ordered, e)
		}
	}
	return ordered, nil
}

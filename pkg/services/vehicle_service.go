package services

import (
	"context"
	"fmt"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/pkg/models"
)

// VehicleService maintains the owner-contact registry consulted by the
// engagement and communication stages.
type VehicleService struct {
	client *ent.Client
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(client *ent.Client) *VehicleService {
	if client == nil {
		panic("NewVehicleService: client must not be nil")
	}
	return &VehicleService{client: client}
}

// Upsert creates or updates the contact record for a vehicle.
func (s *VehicleService) Upsert(ctx context.Context, req models.VehicleRequest) (*ent.Vehicle, error) {
	if req.VehicleID == "" {
		return nil, NewValidationError("vehicle_id", "vehicle_id is required")
	}

	existing, err := s.client.Vehicle.Get(ctx, req.VehicleID)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up vehicle %s: %w", req.VehicleID, err)
	}
	if existing == nil {
		builder := s.client.Vehicle.Create().
			SetID(req.VehicleID).
			SetOwnerName(req.OwnerName).
			SetMake(req.Make).
			SetModel(req.Model)
		if req.OwnerPhone != "" {
			builder.SetOwnerPhone(req.OwnerPhone)
		}
		vehicle, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create vehicle %s: %w", req.VehicleID, err)
		}
		return vehicle, nil
	}

	update := existing.Update()
	if req.OwnerName != "" {
		update.SetOwnerName(req.OwnerName)
	}
	if req.OwnerPhone != "" {
		update.SetOwnerPhone(req.OwnerPhone)
	}
	if req.Make != "" {
		update.SetMake(req.Make)
	}
	if req.Model != "" {
		update.SetModel(req.Model)
	}
	vehicle, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update vehicle %s: %w", req.VehicleID, err)
	}
	return vehicle, nil
}

// Get returns the vehicle record or ErrNotFound.
func (s *VehicleService) Get(ctx context.Context, vehicleID string) (*ent.Vehicle, error) {
	vehicle, err := s.client.Vehicle.Get(ctx, vehicleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, vehicleID)
		}
		return nil, fmt.Errorf("failed to get vehicle %s: %w", vehicleID, err)
	}
	return vehicle, nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/booking"
	"github.com/fleetsense/fleetsense/pkg/models"
)

// BookingInput carries the fields of a new service booking.
type BookingInput struct {
	BookingID     string
	CaseID        string
	VehicleID     string
	ServiceCenter string
	ScheduledSlot time.Time
	Status        string
}

// BookingService persists service bookings and feeds slot occupancy back to
// the scheduler.
type BookingService struct {
	client *ent.Client
}

// NewBookingService creates a new BookingService.
func NewBookingService(client *ent.Client) *BookingService {
	if client == nil {
		panic("NewBookingService: client must not be nil")
	}
	return &BookingService{client: client}
}

// Create persists a booking. Status defaults to confirmed.
func (s *BookingService) Create(ctx context.Context, in BookingInput) (*ent.Booking, error) {
	if in.VehicleID == "" {
		return nil, NewValidationError("vehicle_id", "vehicle_id is required")
	}
	if in.ServiceCenter == "" {
		return nil, NewValidationError("service_center", "service_center is required")
	}
	if in.ScheduledSlot.IsZero() {
		return nil, NewValidationError("scheduled_slot", "scheduled_slot is required")
	}

	id := in.BookingID
	if id == "" {
		id = models.NewBookingID()
	}

	builder := s.client.Booking.Create().
		SetID(id).
		SetCaseID(in.CaseID).
		SetVehicleID(in.VehicleID).
		SetServiceCenter(in.ServiceCenter).
		SetScheduledSlot(in.ScheduledSlot.UTC())
	if in.Status != "" {
		builder.SetStatus(booking.Status(in.Status))
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: booking %s", ErrAlreadyExists, id)
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return created, nil
}

// Get returns the booking or ErrNotFound.
func (s *BookingService) Get(ctx context.Context, bookingID string) (*ent.Booking, error) {
	b, err := s.client.Booking.Get(ctx, bookingID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
		}
		return nil, fmt.Errorf("failed to get booking %s: %w", bookingID, err)
	}
	return b, nil
}

// BookedSlots returns the occupied slot instants for a center inside
// [from, until). Cancelled states do not exist; every row counts.
func (s *BookingService) BookedSlots(ctx context.Context, center string, from, until time.Time) (map[time.Time]int, error) {
	rows, err := s.client.Booking.Query().
		Where(
			booking.ServiceCenterEQ(center),
			booking.ScheduledSlotGTE(from.UTC()),
			booking.ScheduledSlotLT(until.UTC()),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings for %s: %w", center, err)
	}
	counts := make(map[time.Time]int, len(rows))
	for _, b := range rows {
		counts[b.ScheduledSlot.UTC()]++
	}
	return counts, nil
}

// MarkFeedbackComplete flags the booking once its feedback case is processed.
func (s *BookingService) MarkFeedbackComplete(ctx context.Context, bookingID string) error {
	n, err := s.client.Booking.Update().
		Where(
			booking.IDEQ(bookingID),
			booking.StatusNEQ(booking.StatusFeedbackComplete),
		).
		SetStatus(booking.StatusFeedbackComplete).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", bookingID, err)
	}
	if n == 0 {
		exists, err := s.client.Booking.Query().Where(booking.IDEQ(bookingID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check booking %s: %w", bookingID, err)
		}
		if !exists {
			return fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
		}
	}
	return nil
}

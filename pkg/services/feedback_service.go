package services

import (
	"context"
	"fmt"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/feedbackcase"
	"github.com/fleetsense/fleetsense/pkg/models"
)

// FeedbackCaseInput carries the fields of a new feedback case.
type FeedbackCaseInput struct {
	FeedbackID         string
	BookingID          string
	CaseID             string
	VehicleID          string
	CeiScore           float64
	ValidationLabel    string
	RecommendedRetrain bool
	TechnicianNotes    string
	CustomerRating     *int
}

// FeedbackService persists post-service feedback evaluations.
type FeedbackService struct {
	client *ent.Client
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(client *ent.Client) *FeedbackService {
	if client == nil {
		panic("NewFeedbackService: client must not be nil")
	}
	return &FeedbackService{client: client}
}

// Create persists a new feedback case. The retrain flag must agree with the
// validation label.
func (s *FeedbackService) Create(ctx context.Context, in FeedbackCaseInput) (*ent.FeedbackCase, error) {
	if in.BookingID == "" {
		return nil, NewValidationError("booking_id", "booking_id is required")
	}
	if in.CeiScore < 1.0 || in.CeiScore > 5.0 {
		return nil, NewValidationError("cei_score", "must be in [1.0, 5.0]")
	}
	label := feedbackcase.ValidationLabel(in.ValidationLabel)
	switch label {
	case feedbackcase.ValidationLabelCorrect:
		if in.RecommendedRetrain {
			return nil, NewValidationError("recommended_retrain", "must be false when validation_label is Correct")
		}
	case feedbackcase.ValidationLabelRecurring, feedbackcase.ValidationLabelIncorrect:
		if !in.RecommendedRetrain {
			return nil, NewValidationError("recommended_retrain", fmt.Sprintf("must be true when validation_label is %s", label))
		}
	default:
		return nil, NewValidationError("validation_label", fmt.Sprintf("unknown label %q", in.ValidationLabel))
	}
	if in.CustomerRating != nil && (*in.CustomerRating < 1 || *in.CustomerRating > 5) {
		return nil, NewValidationError("customer_rating", "must be in [1, 5]")
	}

	id := in.FeedbackID
	if id == "" {
		id = models.NewFeedbackID()
	}

	builder := s.client.FeedbackCase.Create().
		SetID(id).
		SetBookingID(in.BookingID).
		SetCaseID(in.CaseID).
		SetVehicleID(in.VehicleID).
		SetCeiScore(in.CeiScore).
		SetValidationLabel(label).
		SetRecommendedRetrain(in.RecommendedRetrain).
		SetTechnicianNotes(in.TechnicianNotes)
	if in.CustomerRating != nil {
		builder.SetCustomerRating(*in.CustomerRating)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: feedback %s", ErrAlreadyExists, id)
		}
		return nil, fmt.Errorf("failed to create feedback case: %w", err)
	}
	return created, nil
}

// Get returns the feedback case or ErrNotFound.
func (s *FeedbackService) Get(ctx context.Context, feedbackID string) (*ent.FeedbackCase, error) {
	f, err := s.client.FeedbackCase.Get(ctx, feedbackID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: feedback %s", ErrNotFound, feedbackID)
		}
		return nil, fmt.Errorf("failed to get feedback %s: %w", feedbackID, err)
	}
	return f, nil
}

// LatestForBooking returns the newest feedback case for a booking, or nil.
func (s *FeedbackService) LatestForBooking(ctx context.Context, bookingID string) (*ent.FeedbackCase, error) {
	f, err := s.client.FeedbackCase.Query().
		Where(feedbackcase.BookingIDEQ(bookingID)).
		Order(ent.Desc(feedbackcase.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query feedback for booking %s: %w", bookingID, err)
	}
	return f, nil
}

// MarkManufacturingComplete records that the manufacturing stage consumed the
// feedback case.
func (s *FeedbackService) MarkManufacturingComplete(ctx context.Context, feedbackID string) error {
	n, err := s.client.FeedbackCase.Update().
		Where(
			feedbackcase.IDEQ(feedbackID),
			feedbackcase.StatusEQ(feedbackcase.StatusPendingManufacturing),
		).
		SetStatus(feedbackcase.StatusManufacturingComplete).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete feedback %s: %w", feedbackID, err)
	}
	if n == 0 {
		exists, err := s.client.FeedbackCase.Query().Where(feedbackcase.IDEQ(feedbackID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check feedback %s: %w", feedbackID, err)
		}
		if !exists {
			return fmt.Errorf("%w: feedback %s", ErrNotFound, feedbackID)
		}
	}
	return nil
}

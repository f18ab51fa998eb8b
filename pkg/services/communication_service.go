package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/callcontext"
	"github.com/fleetsense/fleetsense/ent/communicationcase"
	"github.com/fleetsense/fleetsense/pkg/models"
)

// CommunicationCaseInput carries the fields of a new communication case.
type CommunicationCaseInput struct {
	CommunicationID string
	EngagementID    string
	CaseID          string
	VehicleID       string
	CustomerPhone   string
	CustomerName    *string
}

// CallContextInput carries the fields correlating a provider call to its case.
type CallContextInput struct {
	CallSid         string
	CommunicationID string
	EngagementID    string
	CaseID          string
	VehicleID       string
	CustomerPhone   string
	CustomerName    string
}

// CommunicationService persists live-call cases and the call contexts the
// telephony webhooks resolve mid-call.
type CommunicationService struct {
	client *ent.Client
}

// NewCommunicationService creates a new CommunicationService.
func NewCommunicationService(client *ent.Client) *CommunicationService {
	if client == nil {
		panic("NewCommunicationService: client must not be nil")
	}
	return &CommunicationService{client: client}
}

// Create persists a new communication case in its initiating state.
func (s *CommunicationService) Create(ctx context.Context, in CommunicationCaseInput) (*ent.CommunicationCase, error) {
	if in.EngagementID == "" {
		return nil, NewValidationError("engagement_id", "engagement_id is required")
	}
	if in.CustomerPhone == "" {
		return nil, NewValidationError("customer_phone", "customer_phone is required")
	}

	id := in.CommunicationID
	if id == "" {
		id = models.NewCommunicationID()
	}

	builder := s.client.CommunicationCase.Create().
		SetID(id).
		SetEngagementID(in.EngagementID).
		SetCaseID(in.CaseID).
		SetVehicleID(in.VehicleID).
		SetCustomerPhone(in.CustomerPhone)
	if in.CustomerName != nil {
		builder.SetCustomerName(*in.CustomerName)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: communication %s", ErrAlreadyExists, id)
		}
		return nil, fmt.Errorf("failed to create communication case: %w", err)
	}
	return created, nil
}

// Get returns the communication case or ErrNotFound.
func (s *CommunicationService) Get(ctx context.Context, communicationID string) (*ent.CommunicationCase, error) {
	c, err := s.client.CommunicationCase.Get(ctx, communicationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: communication %s", ErrNotFound, communicationID)
		}
		return nil, fmt.Errorf("failed to get communication %s: %w", communicationID, err)
	}
	return c, nil
}

// LatestForEngagement returns the newest communication case for an
// engagement, or nil. Duplicate suppression for this stage keys on it.
func (s *CommunicationService) LatestForEngagement(ctx context.Context, engagementID string) (*ent.CommunicationCase, error) {
	c, err := s.client.CommunicationCase.Query().
		Where(communicationcase.EngagementIDEQ(engagementID)).
		Order(ent.Desc(communicationcase.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query communication for engagement %s: %w", engagementID, err)
	}
	return c, nil
}

// ByCallSid resolves a communication case from the provider call correlator.
func (s *CommunicationService) ByCallSid(ctx context.Context, callSid string) (*ent.CommunicationCase, error) {
	c, err := s.client.CommunicationCase.Query().
		Where(communicationcase.CallSidEQ(callSid)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: call %s", ErrNotFound, callSid)
		}
		return nil, fmt.Errorf("failed to resolve call %s: %w", callSid, err)
	}
	return c, nil
}

// SetCallStatus records a provider status transition.
func (s *CommunicationService) SetCallStatus(ctx context.Context, communicationID string, status communicationcase.CallStatus) error {
	err := s.client.CommunicationCase.UpdateOneID(communicationID).
		SetCallStatus(status).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: communication %s", ErrNotFound, communicationID)
		}
		return fmt.Errorf("failed to set call status on %s: %w", communicationID, err)
	}
	return nil
}

// AttachCall records the provider call SID once the outbound call is placed.
func (s *CommunicationService) AttachCall(ctx context.Context, communicationID, callSid string) error {
	err := s.client.CommunicationCase.UpdateOneID(communicationID).
		SetCallSid(callSid).
		SetCallStatus(communicationcase.CallStatusInitiated).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: communication %s", ErrNotFound, communicationID)
		}
		return fmt.Errorf("failed to attach call %s to %s: %w", callSid, communicationID, err)
	}
	return nil
}

// AdvanceConversation appends transcript turns and moves the conversation
// stage forward in one update.
func (s *CommunicationService) AdvanceConversation(ctx context.Context, communicationID string, stage communicationcase.ConversationStage, turns []models.DialogueTurn) error {
	c, err := s.Get(ctx, communicationID)
	if err != nil {
		return err
	}
	transcript := append(c.ConversationTranscript, models.TurnsToJSON(turns)...)
	err = c.Update().
		SetConversationStage(stage).
		SetConversationTranscript(transcript).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to advance conversation %s: %w", communicationID, err)
	}
	return nil
}

// Complete finalises the call with its outcome and, when confirmed, the
// booking that was minted for it.
func (s *CommunicationService) Complete(ctx context.Context, communicationID string, outcome communicationcase.Outcome, bookingID *string) error {
	update := s.client.CommunicationCase.UpdateOneID(communicationID).
		SetCallStatus(communicationcase.CallStatusCompleted).
		SetConversationStage(communicationcase.ConversationStageCompleted).
		SetOutcome(outcome)
	if bookingID != nil {
		update.SetBookingID(*bookingID)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: communication %s", ErrNotFound, communicationID)
		}
		return fmt.Errorf("failed to complete communication %s: %w", communicationID, err)
	}
	return nil
}

// CreateCallContext stores the webhook-side correlator for an active call.
func (s *CommunicationService) CreateCallContext(ctx context.Context, in CallContextInput) error {
	if in.CallSid == "" {
		return NewValidationError("call_sid", "call_sid is required")
	}
	err := s.client.CallContext.Create().
		SetID(in.CallSid).
		SetCommunicationID(in.CommunicationID).
		SetEngagementID(in.EngagementID).
		SetCaseID(in.CaseID).
		SetVehicleID(in.VehicleID).
		SetCustomerPhone(in.CustomerPhone).
		SetCustomerName(in.CustomerName).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("%w: call context %s", ErrAlreadyExists, in.CallSid)
		}
		return fmt.Errorf("failed to create call context: %w", err)
	}
	return nil
}

// GetCallContext returns the stored context for a call SID or ErrNotFound.
func (s *CommunicationService) GetCallContext(ctx context.Context, callSid string) (*ent.CallContext, error) {
	cc, err := s.client.CallContext.Get(ctx, callSid)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: call context %s", ErrNotFound, callSid)
		}
		return nil, fmt.Errorf("failed to get call context %s: %w", callSid, err)
	}
	return cc, nil
}

// SweepCallContexts deletes contexts older than the TTL and returns how many
// went away. The retention sweeper calls it on a timer.
func (s *CommunicationService) SweepCallContexts(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)
	n, err := s.client.CallContext.Delete().
		Where(callcontext.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep call contexts: %w", err)
	}
	return n, nil
}

// Package cleanup enforces retention for short-lived records: call contexts
// the webhook no longer needs, and bus messages that finished their delivery
// lifecycle. All sweeps are idempotent and safe to run from multiple pods.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/config"
	"github.com/fleetsense/fleetsense/pkg/services"
)

// Service periodically sweeps expired records.
type Service struct {
	config         *config.RetentionConfig
	client         *ent.Client
	communications *services.CommunicationService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new retention sweeper.
func NewService(cfg *config.RetentionConfig, client *ent.Client, communications *services.CommunicationService) *Service {
	return &Service{
		config:         cfg,
		client:         client,
		communications: communications,
	}
}

// Start launches the background sweep loop. A zero interval disables the
// sweeper entirely.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	if s.config.SweepInterval <= 0 {
		slog.Info("Retention sweeper disabled")
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention sweeper started",
		"call_context_ttl", s.config.CallContextTTL,
		"bus_message_retention", s.config.BusMessageRetention,
		"interval", s.config.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention sweeper stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll performs one sweep of every retention policy.
func (s *Service) RunAll(ctx context.Context) {
	s.sweepCallContexts(ctx)
	s.sweepBusMessages(ctx)
}

func (s *Service) sweepCallContexts(ctx context.Context) {
	count, err := s.communications.SweepCallContexts(ctx, s.config.CallContextTTL)
	if err != nil {
		slog.Error("Retention: call-context sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: swept call contexts", "count", count)
	}
}

func (s *Service) sweepBusMessages(ctx context.Context) {
	count, err := bus.Sweep(ctx, s.client, s.config.BusMessageRetention)
	if err != nil {
		slog.Error("Retention: bus-message sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: swept bus messages", "count", count)
	}
}

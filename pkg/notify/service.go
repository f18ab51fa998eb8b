package notify

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/pkg/config"
)

const postTimeout = 10 * time.Second

// Service posts human-review alerts to Slack. A nil *Service is valid and
// does nothing, so callers never need to branch on whether notifications
// are configured.
type Service struct {
	client    *Client
	threshold float64
	logger    *slog.Logger
}

// NewService builds a notification service from configuration. Returns nil
// when notifications are disabled or the bot token is not set.
func NewService(cfg *config.NotificationsConfig, confidenceThreshold float64) *Service {
	if !cfg.IsEnabled() {
		return nil
	}
	tokenEnv := cfg.TokenEnv
	if tokenEnv == "" {
		tokenEnv = "SLACK_BOT_TOKEN"
	}
	token := os.Getenv(tokenEnv)
	if token == "" || cfg.Channel == "" {
		slog.Warn("slack notifications enabled but not configured, disabling",
			"token_env", tokenEnv, "channel", cfg.Channel)
		return nil
	}
	return &Service{
		client:    NewClient(token, cfg.Channel),
		threshold: confidenceThreshold,
		logger:    slog.Default().With("component", "notify"),
	}
}

// NewServiceWithClient wires an explicit client. Used by tests with a mock
// Slack server.
func NewServiceWithClient(client *Client, confidenceThreshold float64) *Service {
	return &Service{
		client:    client,
		threshold: confidenceThreshold,
		logger:    slog.Default().With("component", "notify"),
	}
}

// ReviewCreated announces a new human-review record. Failures are logged
// and swallowed: notification delivery never affects routing.
func (s *Service) ReviewCreated(ctx context.Context, review *ent.HumanReview) {
	if s == nil {
		return
	}
	blocks := buildReviewBlocks(review, s.threshold)
	if err := s.client.PostMessage(ctx, blocks, postTimeout); err != nil {
		s.logger.Error("failed to post review notification",
			"review_id", review.ID, "case_id", review.CaseID, "error", err)
		return
	}
	s.logger.Info("posted review notification",
		"review_id", review.ID, "case_id", review.CaseID, "stage", review.Stage)
}

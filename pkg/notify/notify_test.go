package notify

import (
	"context"
	"testing"
	"time"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/pkg/config"
)

func boolPtr(b bool) *bool { return &b }

func TestNewService(t *testing.T) {
	t.Run("returns nil when disabled", func(t *testing.T) {
		cfg := &config.NotificationsConfig{Enabled: boolPtr(false), Channel: "C123"}
		assert.Nil(t, NewService(cfg, 0.85))
	})

	t.Run("returns nil when token env unset", func(t *testing.T) {
		t.Setenv("SLACK_BOT_TOKEN", "")
		cfg := &config.NotificationsConfig{Channel: "C123"}
		assert.Nil(t, NewService(cfg, 0.85))
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
		assert.Nil(t, NewService(&config.NotificationsConfig{}, 0.85))
	})

	t.Run("returns service when configured", func(t *testing.T) {
		t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
		cfg := &config.NotificationsConfig{Channel: "C123"}
		assert.NotNil(t, NewService(cfg, 0.85))
	})

	t.Run("honours custom token env", func(t *testing.T) {
		t.Setenv("FLEET_SLACK_TOKEN", "xoxb-test")
		cfg := &config.NotificationsConfig{Channel: "C123", TokenEnv: "FLEET_SLACK_TOKEN"}
		assert.NotNil(t, NewService(cfg, 0.85))
	})
}

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	// Should not panic
	s.ReviewCreated(context.Background(), &ent.HumanReview{ID: "rev_1"})
}

func TestService_ReviewCreated_PostFailureSwallowed(t *testing.T) {
	// Point the client at a dead address so the post fails fast; the call
	// must still return without surfacing an error.
	client := NewClientWithAPIURL("xoxb-test", "C123", "http://127.0.0.1:1/api/")
	svc := NewServiceWithClient(client, 0.85)

	review := &ent.HumanReview{
		ID:         "rev_case1_diagnosis",
		CaseID:     "case_1",
		Stage:      "diagnosis",
		Confidence: 0.55,
		CreatedAt:  time.Now(),
	}
	svc.ReviewCreated(context.Background(), review)
}

func TestBuildReviewBlocks(t *testing.T) {
	review := &ent.HumanReview{
		ID:         "rev_case1_rca",
		CaseID:     "case_1",
		Stage:      "rca",
		Confidence: 0.42,
	}
	blocks := buildReviewBlocks(review, 0.85)
	require.Len(t, blocks, 3)

	header, ok := blocks[0].(*goslack.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "Human review required")

	details, ok := blocks[1].(*goslack.SectionBlock)
	require.True(t, ok)
	require.Len(t, details.Fields, 4)
	assert.Contains(t, details.Fields[0].Text, "case_1")
	assert.Contains(t, details.Fields[1].Text, "rca")
	assert.Contains(t, details.Fields[2].Text, "0.42")
	assert.Contains(t, details.Fields[2].Text, "0.85")
	assert.Contains(t, details.Fields[3].Text, "rev_case1_rca")

	_, ok = blocks[2].(*goslack.ContextBlock)
	assert.True(t, ok)
}

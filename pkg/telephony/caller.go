// Package telephony wraps the Twilio voice API: placing the outbound
// service-reminder call and building the TwiML the webhook answers with.
package telephony

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

// Config carries the provider credentials and the externally reachable base
// URL the provider calls back on.
type Config struct {
	AccountSID  string
	AuthToken   string
	FromNumber  string
	WebhookBase string
}

// ConfigFromEnv reads the TWILIO_* environment variables.
func ConfigFromEnv() Config {
	return Config{
		AccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		AuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		FromNumber:  os.Getenv("TWILIO_PHONE_NUMBER"),
		WebhookBase: os.Getenv("TWILIO_CALLBACK_URL"),
	}
}

// Configured reports whether the credentials are present. An unconfigured
// caller degrades the communication stage to record-only behaviour.
func (c Config) Configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

// Caller places outbound calls through Twilio.
type Caller struct {
	client *twilio.RestClient
	cfg    Config
}

// NewCaller validates the config and builds the provider client.
func NewCaller(cfg Config) (*Caller, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("telephony: account sid, auth token and from number are required")
	}
	if cfg.WebhookBase == "" {
		return nil, fmt.Errorf("telephony: webhook base URL is required")
	}
	cfg.WebhookBase = strings.TrimRight(cfg.WebhookBase, "/")
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &Caller{client: client, cfg: cfg}, nil
}

// StartCall dials the customer and points the call at the voice webhook.
// Progress events land on the status webhook. Returns the provider call SID.
func (c *Caller) StartCall(ctx context.Context, to string) (string, error) {
	params := &api.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(c.cfg.FromNumber)
	params.SetUrl(c.cfg.WebhookBase + "/twilio/voice")
	params.SetMethod("POST")
	params.SetStatusCallback(c.cfg.WebhookBase + "/twilio/status")
	params.SetStatusCallbackEvent([]string{"initiated", "ringing", "answered", "completed"})
	params.SetStatusCallbackMethod("POST")

	resp, err := c.client.Api.CreateCall(params)
	if err != nil {
		return "", fmt.Errorf("failed to create call to %s: %w", to, err)
	}
	if resp.Sid == nil {
		return "", fmt.Errorf("provider returned no call sid for %s", to)
	}
	return *resp.Sid, nil
}

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fleetsense.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitialize_Defaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 0.85, cfg.Defaults.ConfidenceThreshold)
	assert.Equal(t, 30*time.Second, cfg.Defaults.DuplicateWindow)
	assert.Equal(t, 10*time.Second, cfg.Defaults.JitterMax)
	assert.Equal(t, "+91", cfg.Defaults.DefaultCountryCode)
	assert.Equal(t, 10, cfg.Defaults.TelemetryWindow)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 8, cfg.Queue.MaxAttempts)
	assert.Equal(t, "telemetry-ingested", cfg.Topics.TelemetryIngested)
	assert.GreaterOrEqual(t, cfg.Centers.Len(), 1)
	assert.False(t, cfg.Notifications.IsEnabled())
}

func TestInitialize_FileOverridesMergeWithDefaults(t *testing.T) {
	path := writeConfigFile(t, `
defaults:
  confidence_threshold: 0.9
  jitter_max: 0s
queue:
  worker_count: 2
topics:
  diagnosis_dispatch: diag-in
service_centers:
  - id: center_x
    name: Test Center
    timezone: UTC
    capacity_per_slot: 1
    operating_hours:
      monday: {open: "08:00", close: "16:00"}
    parts: [oil_filter]
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 0.9, cfg.Defaults.ConfidenceThreshold)
	// Unset fields keep built-in defaults.
	assert.Equal(t, 30*time.Second, cfg.Defaults.DuplicateWindow)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, "diag-in", cfg.Topics.DiagnosisDispatch)
	assert.Equal(t, "rca-dispatch", cfg.Topics.RcaDispatch)

	require.Equal(t, 1, cfg.Centers.Len())
	c, err := cfg.Centers.Get("center_x")
	require.NoError(t, err)
	assert.Equal(t, "Test Center", c.Name)
	assert.True(t, c.HasPart("oil_filter"))
	assert.False(t, c.HasPart("battery_pack"))
}

func TestInitialize_MissingExplicitFile(t *testing.T) {
	_, err := Initialize(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "threshold out of range",
			yaml: "defaults:\n  confidence_threshold: 1.5\n",
		},
		{
			name: "bad timezone",
			yaml: `
service_centers:
  - id: c1
    timezone: Mars/Olympus
    capacity_per_slot: 1
    operating_hours:
      monday: {open: "08:00", close: "16:00"}
`,
		},
		{
			name: "open after close",
			yaml: `
service_centers:
  - id: c1
    timezone: UTC
    capacity_per_slot: 1
    operating_hours:
      monday: {open: "18:00", close: "09:00"}
`,
		},
		{
			name: "duplicate topic names",
			yaml: "topics:\n  rca_dispatch: same\n  diagnosis_dispatch: same\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.yaml)
			_, err := Initialize(context.Background(), path)
			assert.Error(t, err)
		})
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("FLEET_TEST_CHANNEL", "#alerts")

	out := ExpandEnv([]byte("notifications:\n  channel: {{.FLEET_TEST_CHANNEL}}\n"))
	assert.Contains(t, string(out), "#alerts")

	// Content with $ passes through untouched.
	raw := []byte("password: p@ss$word\n")
	assert.Equal(t, raw, ExpandEnv(raw))

	// Missing variables expand to empty, not an error.
	out = ExpandEnv([]byte("channel: {{.FLEET_TEST_MISSING_VAR}}\n"))
	assert.Equal(t, "channel: \n", string(out))
}

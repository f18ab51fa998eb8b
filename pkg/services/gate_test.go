package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyGate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	window := 30 * time.Second

	tests := []struct {
		name      string
		found     bool
		createdAt time.Time
		advanced  bool
		want      GateOutcome
	}{
		{
			name: "no record",
			want: GateNone,
		},
		{
			name:      "pending record inside window",
			found:     true,
			createdAt: now.Add(-10 * time.Second),
			want:      GateRecentPending,
		},
		{
			name:      "pending record just inside window",
			found:     true,
			createdAt: now.Add(-window).Add(time.Millisecond),
			want:      GateRecentPending,
		},
		{
			name:      "pending record exactly at window boundary",
			found:     true,
			createdAt: now.Add(-window),
			want:      GateOldPending,
		},
		{
			name:      "pending record older than window is a new occurrence",
			found:     true,
			createdAt: now.Add(-60 * time.Second),
			want:      GateOldPending,
		},
		{
			name:     "advanced record always suppresses",
			found:    true,
			advanced: true,
			// Age is irrelevant once status moved on.
			createdAt: now.Add(-time.Hour),
			want:      GateAdvanced,
		},
		{
			name:  "server-sentinel timestamp always suppresses",
			found: true,
			// Zero created_at: committed in this same flush.
			createdAt: time.Time{},
			want:      GateRecentPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyGate(tt.found, tt.createdAt, tt.advanced, now, window)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGateOutcome_Duplicate(t *testing.T) {
	assert.False(t, GateNone.Duplicate())
	assert.False(t, GateOldPending.Duplicate())
	assert.True(t, GateRecentPending.Duplicate())
	assert.True(t, GateAdvanced.Duplicate())
}

package services

import "time"

// GateOutcome classifies what a duplicate-suppression query found. The three
// gates (early, post-jitter, pre-commit) all reduce their query result to one
// of these states and act on it uniformly.
type GateOutcome string

const (
	// GateNone: no existing downstream record; proceed.
	GateNone GateOutcome = "none"

	// GateRecentPending: a record exists, still at this stage, younger than
	// the duplicate window. This delivery is a duplicate trigger; skip.
	GateRecentPending GateOutcome = "recent_pending"

	// GateOldPending: a record exists but is older than the window. It
	// represents a previous occurrence; a new one is allowed through.
	GateOldPending GateOutcome = "old_pending"

	// GateAdvanced: a record exists and its status has moved past this
	// stage. Skip; ownership has transferred downstream.
	GateAdvanced GateOutcome = "advanced"
)

// Duplicate reports whether the outcome suppresses this delivery.
func (g GateOutcome) Duplicate() bool {
	return g == GateRecentPending || g == GateAdvanced
}

// ClassifyGate reduces a duplicate query result to its gate outcome.
//
// found/createdAt/advanced describe the queried record: whether one exists,
// its created_at, and whether its status has advanced beyond the querying
// stage. A zero createdAt means the record was committed in the same flush
// and its server timestamp is not visible yet; that is always a duplicate.
func ClassifyGate(found bool, createdAt time.Time, advanced bool, now time.Time, window time.Duration) GateOutcome {
	if !found {
		return GateNone
	}
	if advanced {
		return GateAdvanced
	}
	if createdAt.IsZero() {
		return GateRecentPending
	}
	if now.Sub(createdAt) < window {
		return GateRecentPending
	}
	return GateOldPending
}

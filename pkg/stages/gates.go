package stages

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/services"
)

// record is the gate-relevant view of a downstream lookup.
type record struct {
	found     bool
	id        string
	createdAt time.Time
	advanced  bool
}

// classifyDownstream runs a downstream lookup and reduces it to a gate
// outcome against the configured duplicate window.
func classifyDownstream(ctx context.Context, deps Deps, lookup func(ctx context.Context) (record, error)) (services.GateOutcome, string, error) {
	rec, err := lookup(ctx)
	if err != nil {
		return services.GateNone, "", err
	}
	outcome := services.ClassifyGate(rec.found, rec.createdAt, rec.advanced, time.Now(), deps.Defaults.DuplicateWindow)
	return outcome, rec.id, nil
}

// skipNotFound converts a missing-prerequisite error into a skip: redelivery
// of an orphaned message must not spin forever.
func skipNotFound(err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return fmt.Errorf("%w: %v", bus.ErrSkipped, err)
	}
	return err
}

// latestDtcCodes pulls the DTC list from the newest event in a chronological
// window.
func latestDtcCodes(events []*ent.TelemetryEvent) []string {
	if len(events) == 0 {
		return nil
	}
	return events[len(events)-1].DtcCodes
}

package bus

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/busmessage"
)

// Sweep deletes delivered and failed messages older than the retention
// window. Pending messages are never touched regardless of age.
func Sweep(ctx context.Context, client *ent.Client, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	n, err := client.BusMessage.Delete().
		Where(
			busmessage.StatusIn(busmessage.StatusDelivered, busmessage.StatusFailed),
			busmessage.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep bus messages: %w", err)
	}
	return n, nil
}

// Package bus implements the durable PostgreSQL-backed message bus:
// transactional publish with NOTIFY wakeup, claim-based at-least-once
// dispatch, and the envelope codec shared by every stage worker.
package bus

import "errors"

// Sentinel errors a handler can return to steer redelivery.
var (
	// ErrSkipped means the handler recognized the message as a duplicate
	// or as missing its prerequisite. The message is marked delivered;
	// skipping is how redelivery and out-of-order arrival are absorbed.
	ErrSkipped = errors.New("skipped")

	// ErrNotRetryable means the message can never succeed (malformed
	// envelope). It is marked failed immediately, with no redelivery.
	ErrNotRetryable = errors.New("not retryable")
)

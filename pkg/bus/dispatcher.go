package bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/busmessage"
	"github.com/fleetsense/fleetsense/pkg/config"
)

// ErrNoMessages indicates no claimable messages on the registered topics.
var ErrNoMessages = errors.New("no messages available")

// Handler processes one raw message. The dispatcher maps its return value
// onto the delivery outcome: nil or ErrSkipped marks the message delivered,
// ErrNotRetryable marks it failed, anything else sends it back to pending
// with an attempt backoff.
type Handler func(ctx context.Context, raw []byte) error

// Dispatcher claims pending bus messages and invokes the registered topic
// handlers on a worker pool. Claims use FOR UPDATE SKIP LOCKED plus an
// availability lease, so replicas share topics without double-claiming and
// a crashed worker's claim expires on its own.
type Dispatcher struct {
	podID    string
	client   *ent.Client
	cfg      *config.QueueConfig
	handlers map[string]Handler
	topics   []string

	wakeCh   chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	mu        sync.Mutex
	processed int
}

// NewDispatcher creates a dispatcher for the given pod.
func NewDispatcher(podID string, client *ent.Client, cfg *config.QueueConfig) *Dispatcher {
	return &Dispatcher{
		podID:    podID,
		client:   client,
		cfg:      cfg,
		handlers: make(map[string]Handler),
		wakeCh:   make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
	}
}

// Register binds a handler to a topic. Must be called before Start.
func (d *Dispatcher) Register(topic string, handler Handler) {
	if _, dup := d.handlers[topic]; dup {
		panic(fmt.Sprintf("bus: duplicate handler for topic %q", topic))
	}
	d.handlers[topic] = handler
	d.topics = append(d.topics, topic)
}

// Topics returns the registered topic names, for LISTEN subscription.
func (d *Dispatcher) Topics() []string {
	return d.topics
}

// Wake nudges an idle worker. Safe to call from the NOTIFY callback at any
// rate; wakeups coalesce.
func (d *Dispatcher) Wake() {
	select {
	case d.wakeCh <- struct{}{}:
	default:
	}
}

// Start spawns the worker goroutines. Safe to call once.
func (d *Dispatcher) Start(ctx context.Context) error {
	if d.started {
		slog.Warn("Dispatcher already started, ignoring duplicate Start call", "pod_id", d.podID)
		return nil
	}
	d.started = true

	slog.Info("Starting bus dispatcher",
		"pod_id", d.podID,
		"worker_count", d.cfg.WorkerCount,
		"topics", len(d.topics))

	for i := 0; i < d.cfg.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-bus-%d", d.podID, i)
		d.wg.Add(1)
		go d.runWorker(ctx, workerID)
	}
	return nil
}

// Stop signals all workers to stop and waits for in-flight handlers.
func (d *Dispatcher) Stop() {
	slog.Info("Stopping bus dispatcher")
	d.stopOnce.Do(func() { close(d.stopCh) })

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Bus dispatcher stopped gracefully")
	case <-time.After(d.cfg.GracefulShutdownTimeout):
		slog.Warn("Bus dispatcher shutdown timed out with handlers in flight")
	}
}

// Processed returns how many messages this dispatcher has finished.
func (d *Dispatcher) Processed() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.processed
}

func (d *Dispatcher) runWorker(ctx context.Context, workerID string) {
	defer d.wg.Done()

	log := slog.With("worker_id", workerID, "pod_id", d.podID)
	log.Info("Bus worker started")

	for {
		select {
		case <-d.stopCh:
			log.Info("Bus worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, bus worker shutting down")
			return
		default:
			if err := d.claimAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoMessages) {
					d.idle(d.pollInterval())
					continue
				}
				log.Error("Error processing bus message", "error", err)
				d.idle(time.Second)
			}
		}
	}
}

// idle waits for the poll interval, a wakeup, or shutdown.
func (d *Dispatcher) idle(max time.Duration) {
	select {
	case <-d.stopCh:
	case <-d.wakeCh:
	case <-time.After(max):
	}
}

// pollInterval returns the base interval with jitter, spreading replicas
// apart.
func (d *Dispatcher) pollInterval() time.Duration {
	base := d.cfg.PollInterval
	jitter := d.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	return base + time.Duration(rand.Int64N(int64(2*jitter))) - jitter
}

// claimAndProcess claims one message and runs its handler.
func (d *Dispatcher) claimAndProcess(ctx context.Context) error {
	msg, err := d.claimNext(ctx)
	if err != nil {
		return err
	}

	log := slog.With("message_id", msg.ID, "topic", msg.Topic, "attempt", msg.Attempts)
	handler, ok := d.handlers[msg.Topic]
	if !ok {
		// Topic registration changed under us; leave for another replica.
		log.Warn("No handler for claimed topic, releasing")
		return d.release(context.Background(), msg, time.Second)
	}

	raw, err := json.Marshal(msg.Payload)
	if err != nil {
		log.Error("Unmarshalable payload, failing message", "error", err)
		return d.finish(context.Background(), msg, busmessage.StatusFailed)
	}

	handlerCtx, cancel := context.WithTimeout(ctx, d.cfg.HandlerTimeout)
	err = handler(handlerCtx, raw)
	cancel()

	// Outcome updates use a background context: the handler context may
	// already be expired, and losing the outcome write would double-deliver.
	switch {
	case err == nil, errors.Is(err, ErrSkipped):
		if errors.Is(err, ErrSkipped) {
			log.Debug("Message skipped by handler")
		}
		return d.finish(context.Background(), msg, busmessage.StatusDelivered)
	case errors.Is(err, ErrNotRetryable):
		log.Warn("Message not retryable, failing", "error", err)
		return d.finish(context.Background(), msg, busmessage.StatusFailed)
	default:
		if msg.Attempts >= d.cfg.MaxAttempts {
			log.Error("Message exhausted attempts, failing", "error", err)
			return d.finish(context.Background(), msg, busmessage.StatusFailed)
		}
		backoff := attemptBackoff(msg.Attempts)
		log.Warn("Handler failed, scheduling redelivery", "error", err, "backoff", backoff)
		return d.release(context.Background(), msg, backoff)
	}
}

// claimNext atomically claims the oldest available message on a registered
// topic. The claim bumps attempts and pushes available_at out by the handler
// timeout as a lease; if this process dies mid-handler, the message becomes
// claimable again on its own.
func (d *Dispatcher) claimNext(ctx context.Context) (*ent.BusMessage, error) {
	tx, err := d.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	msg, err := tx.BusMessage.Query().
		Where(
			busmessage.TopicIn(d.topics...),
			busmessage.StatusEQ(busmessage.StatusPending),
			busmessage.AvailableAtLTE(time.Now()),
		).
		Order(ent.Asc(busmessage.FieldID)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoMessages
		}
		return nil, fmt.Errorf("failed to query pending message: %w", err)
	}

	msg, err = msg.Update().
		SetAttempts(msg.Attempts + 1).
		SetClaimedBy(d.podID).
		SetAvailableAt(time.Now().Add(d.cfg.HandlerTimeout)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return msg, nil
}

// finish marks a message terminal (delivered or failed).
func (d *Dispatcher) finish(ctx context.Context, msg *ent.BusMessage, status busmessage.Status) error {
	err := d.client.BusMessage.UpdateOneID(msg.ID).
		SetStatus(status).
		ClearClaimedBy().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark message %d %s: %w", msg.ID, status, err)
	}
	d.mu.Lock()
	d.processed++
	d.mu.Unlock()
	return nil
}

// release returns a message to pending after a backoff.
func (d *Dispatcher) release(ctx context.Context, msg *ent.BusMessage, backoff time.Duration) error {
	err := d.client.BusMessage.UpdateOneID(msg.ID).
		SetAvailableAt(time.Now().Add(backoff)).
		ClearClaimedBy().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to release message %d: %w", msg.ID, err)
	}
	return nil
}

// attemptBackoff doubles per attempt (2s, 4s, 8s, ...) capped at 5 minutes.
func attemptBackoff(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	if attempts > 8 {
		attempts = 8
	}
	return min(time.Duration(1<<attempts)*time.Second, 5*time.Minute)
}

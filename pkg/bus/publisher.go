package bus

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Publisher inserts durable bus messages. The insert and the NOTIFY happen
// in one transaction (pg_notify is transactional, held until COMMIT), so a
// woken dispatcher always finds the row.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher. The db parameter should be the *sql.DB
// from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// Publish persists one pending message on topic and notifies listeners.
// The NOTIFY payload is only the row id; dispatchers claim from the table,
// never from the notification.
func (p *Publisher) Publish(ctx context.Context, topic string, payload map[string]any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", topic, err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var msgID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO bus_messages (topic, payload) VALUES ($1, $2) RETURNING id`,
		topic, payloadJSON,
	).Scan(&msgID)
	if err != nil {
		return fmt.Errorf("failed to persist message: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", topic, fmt.Sprintf("%d", msgID)); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit publish: %w", err)
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/permitflow/internal/ports/secondary"
)

// OutboxRepository queues outbound email in SQLite for a delivery process to
// pick up. It implements both secondary.Mailer and secondary.OutboxRepository.
type OutboxRepository struct {
	db *sql.DB
}

// NewOutboxRepository creates a new SQLite outbox repository.
func NewOutboxRepository(db *sql.DB) *OutboxRepository {
	return &OutboxRepository{db: db}
}

// Send queues an email for delivery.
func (r *OutboxRepository) Send(ctx context.Context, msg secondary.EmailMessage) error {
	if msg.To == "" {
		return fmt.Errorf("email recipient is required")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO outbox (id, sender, recipient, cc, bcc, subject, body) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		msg.From,
		msg.To,
		nullString(msg.CC),
		nullString(msg.BCC),
		msg.Subject,
		msg.Body,
	)
	if err != nil {
		return fmt.Errorf("failed to queue email: %w", err)
	}
	return nil
}

// List retrieves queued emails, newest first.
func (r *OutboxRepository) List(ctx context.Context, limit int) ([]*secondary.OutboxRecord, error) {
	query := `SELECT id, sender, recipient, cc, bcc, subject, body, created_at FROM outbox ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list outbox: %w", err)
	}
	defer rows.Close()

	var messages []*secondary.OutboxRecord
	for rows.Next() {
		var (
			cc, bcc   sql.NullString
			createdAt time.Time
		)
		msg := &secondary.OutboxRecord{}
		if err := rows.Scan(&msg.ID, &msg.From, &msg.To, &cc, &bcc, &msg.Subject, &msg.Body, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan outbox message: %w", err)
		}
		msg.CC = cc.String
		msg.BCC = bcc.String
		msg.CreatedAt = createdAt.Format(time.RFC3339)
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list outbox: %w", err)
	}

	return messages, nil
}

// Ensure OutboxRepository implements the interfaces
var (
	_ secondary.Mailer           = (*OutboxRepository)(nil)
	_ secondary.OutboxRepository = (*OutboxRepository)(nil)
)

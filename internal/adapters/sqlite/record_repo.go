// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/permitflow/internal/ports/secondary"
)

const fileDateLayout = "2006-01-02"

// RecordRepository implements secondary.RecordRepository with SQLite.
type RecordRepository struct {
	db        *sql.DB
	logWriter secondary.LogWriter
}

// NewRecordRepository creates a new SQLite record repository.
// logWriter is optional - if nil, no audit logging is performed.
func NewRecordRepository(db *sql.DB, logWriter secondary.LogWriter) *RecordRepository {
	return &RecordRepository{db: db, logWriter: logWriter}
}

// Create persists a new record.
func (r *RecordRepository) Create(ctx context.Context, record *secondary.RecordRecord) error {
	var customID, parentID, fileDate sql.NullString
	if record.CustomID != "" {
		customID = sql.NullString{String: record.CustomID, Valid: true}
	}
	if record.ParentID != "" {
		parentID = sql.NullString{String: record.ParentID, Valid: true}
	}
	if !record.FileDate.IsZero() {
		fileDate = sql.NullString{String: record.FileDate.Format(fileDateLayout), Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO records (id, custom_id, parent_id, type, status, file_date) VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID,
		customID,
		parentID,
		record.Type,
		record.Status,
		fileDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogCreate(ctx, "record", record.ID)
	}
	return nil
}

// GetByID retrieves a record by its ID.
func (r *RecordRepository) GetByID(ctx context.Context, id string) (*secondary.RecordRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, custom_id, parent_id, type, status, file_date, created_at, updated_at FROM records WHERE id = ?`,
		id,
	)

	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("record %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return record, nil
}

// List retrieves records matching the given filters, ordered by ID.
func (r *RecordRepository) List(ctx context.Context, filters secondary.RecordFilters) ([]*secondary.RecordRecord, error) {
	query := `SELECT id, custom_id, parent_id, type, status, file_date, created_at, updated_at FROM records WHERE 1=1`
	args := []any{}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	if filters.ParentID != "" {
		query += " AND parent_id = ?"
		args = append(args, filters.ParentID)
	}

	query += " ORDER BY id"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*secondary.RecordRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return records, nil
}

// UpdateStatus sets the record status and appends a status history entry.
func (r *RecordRepository) UpdateStatus(ctx context.Context, id, status, comment, actor string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var oldStatus string
	err = tx.QueryRowContext(ctx, "SELECT status FROM records WHERE id = ?", id).Scan(&oldStatus)
	if err == sql.ErrNoRows {
		return fmt.Errorf("record %s not found", id)
	}
	if err != nil {
		return fmt.Errorf("failed to get record status: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE records SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		status, id,
	); err != nil {
		return fmt.Errorf("failed to update record status: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO record_status_history (id, record_id, old_status, new_status, comment, actor) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), id, oldStatus, status, nullString(comment), nullString(actor),
	); err != nil {
		return fmt.Errorf("failed to record status history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit status update: %w", err)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogUpdate(ctx, "record", id, "status", oldStatus, status)
	}
	return nil
}

// AddComment appends a comment to the record.
func (r *RecordRepository) AddComment(ctx context.Context, id, body, actor string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO record_comments (id, record_id, body, actor) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), id, body, nullString(actor),
	)
	if err != nil {
		return fmt.Errorf("failed to add comment to record %s: %w", id, err)
	}
	return nil
}

// ListComments retrieves the comments of a record, oldest first.
func (r *RecordRepository) ListComments(ctx context.Context, id string) ([]*secondary.CommentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, record_id, body, actor, created_at FROM record_comments WHERE record_id = ? ORDER BY created_at, rowid`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*secondary.CommentRecord
	for rows.Next() {
		var (
			actor     sql.NullString
			createdAt time.Time
		)
		comment := &secondary.CommentRecord{}
		if err := rows.Scan(&comment.ID, &comment.RecordID, &comment.Body, &actor, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comment.Actor = actor.String
		comment.CreatedAt = createdAt.Format(time.RFC3339)
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*secondary.RecordRecord, error) {
	var (
		customID  sql.NullString
		parentID  sql.NullString
		fileDate  sql.NullTime
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.RecordRecord{}
	err := row.Scan(&record.ID,
		&customID,
		&parentID,
		&record.Type,
		&record.Status,
		&fileDate,
		&createdAt,
		&updatedAt)
	if err != nil {
		return nil, err
	}

	record.CustomID = customID.String
	record.ParentID = parentID.String
	if fileDate.Valid {
		record.FileDate = fileDate.Time
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Ensure RecordRepository implements the interface
var _ secondary.RecordRepository = (*RecordRepository)(nil)

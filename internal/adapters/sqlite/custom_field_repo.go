package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/permitflow/internal/ports/secondary"
)

// CustomFieldRepository implements secondary.CustomFieldRepository with SQLite.
// Several fields on one record may share a label; lookups take the first by position.
type CustomFieldRepository struct {
	db        *sql.DB
	logWriter secondary.LogWriter
}

// NewCustomFieldRepository creates a new SQLite custom field repository.
// logWriter is optional - if nil, no audit logging is performed.
func NewCustomFieldRepository(db *sql.DB, logWriter secondary.LogWriter) *CustomFieldRepository {
	return &CustomFieldRepository{db: db, logWriter: logWriter}
}

// List retrieves the custom fields of a record in display order.
func (r *CustomFieldRepository) List(ctx context.Context, recordID string) ([]*secondary.CustomFieldRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, record_id, name, value, position FROM custom_fields WHERE record_id = ? ORDER BY position`,
		recordID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom fields: %w", err)
	}
	defer rows.Close()

	var fields []*secondary.CustomFieldRecord
	for rows.Next() {
		field := &secondary.CustomFieldRecord{}
		if err := rows.Scan(&field.ID, &field.RecordID, &field.Name, &field.Value, &field.Position); err != nil {
			return nil, fmt.Errorf("failed to scan custom field: %w", err)
		}
		fields = append(fields, field)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list custom fields: %w", err)
	}

	return fields, nil
}

// Upsert sets the first field with the given label, appending a new field if none exists.
func (r *CustomFieldRepository) Upsert(ctx context.Context, recordID, label, value string) error {
	var fieldID, oldValue string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, value FROM custom_fields WHERE record_id = ? AND name = ? ORDER BY position LIMIT 1`,
		recordID, label,
	).Scan(&fieldID, &oldValue)

	switch {
	case err == sql.ErrNoRows:
		return r.insert(ctx, recordID, label, value)
	case err != nil:
		return fmt.Errorf("failed to find custom field: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, "UPDATE custom_fields SET value = ? WHERE id = ?", value, fieldID); err != nil {
		return fmt.Errorf("failed to update custom field: %w", err)
	}
	if r.logWriter != nil {
		_ = r.logWriter.LogUpdate(ctx, "record", recordID, label, oldValue, value)
	}
	return nil
}

// SetValue updates the value of an existing field.
func (r *CustomFieldRepository) SetValue(ctx context.Context, fieldID, value string) error {
	var recordID, name, oldValue string
	err := r.db.QueryRowContext(ctx,
		"SELECT record_id, name, value FROM custom_fields WHERE id = ?", fieldID,
	).Scan(&recordID, &name, &oldValue)
	if err == sql.ErrNoRows {
		return fmt.Errorf("custom field %s not found", fieldID)
	}
	if err != nil {
		return fmt.Errorf("failed to get custom field: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, "UPDATE custom_fields SET value = ? WHERE id = ?", value, fieldID); err != nil {
		return fmt.Errorf("failed to update custom field: %w", err)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogUpdate(ctx, "record", recordID, name, oldValue, value)
	}
	return nil
}

func (r *CustomFieldRepository) insert(ctx context.Context, recordID, label, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO custom_fields (id, record_id, name, value, position)
		 VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position) + 1, 0) FROM custom_fields WHERE record_id = ?))`,
		uuid.NewString(), recordID, label, value, recordID,
	)
	if err != nil {
		return fmt.Errorf("failed to create custom field: %w", err)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogUpdate(ctx, "record", recordID, label, "", value)
	}
	return nil
}

// Ensure CustomFieldRepository implements the interface
var _ secondary.CustomFieldRepository = (*CustomFieldRepository)(nil)

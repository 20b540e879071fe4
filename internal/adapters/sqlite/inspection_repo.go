package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/permitflow/internal/ports/secondary"
)

// InspectionRepository implements secondary.InspectionRepository with SQLite.
type InspectionRepository struct {
	db        *sql.DB
	logWriter secondary.LogWriter
}

// NewInspectionRepository creates a new SQLite inspection repository.
// logWriter is optional - if nil, no audit logging is performed.
func NewInspectionRepository(db *sql.DB, logWriter secondary.LogWriter) *InspectionRepository {
	return &InspectionRepository{db: db, logWriter: logWriter}
}

// Create persists a new inspection. An empty ID is assigned.
func (r *InspectionRepository) Create(ctx context.Context, inspection *secondary.InspectionRecord) error {
	if inspection.ID == "" {
		inspection.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO inspections (id, record_id, type, status, result, scheduled_date, scheduled_time) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inspection.ID,
		inspection.RecordID,
		inspection.Type,
		inspection.Status,
		nullString(inspection.Result),
		inspection.ScheduledDate,
		nullString(inspection.ScheduledTime),
	)
	if err != nil {
		return fmt.Errorf("failed to create inspection: %w", err)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogCreate(ctx, "inspection", inspection.ID)
	}
	return nil
}

// ListByRecord retrieves the inspections of a record, newest first.
func (r *InspectionRepository) ListByRecord(ctx context.Context, recordID string) ([]*secondary.InspectionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, record_id, type, status, result, scheduled_date, scheduled_time, created_at
		 FROM inspections WHERE record_id = ? ORDER BY created_at DESC, rowid DESC`,
		recordID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	defer rows.Close()

	var inspections []*secondary.InspectionRecord
	for rows.Next() {
		var (
			result, scheduledTime sql.NullString
			createdAt             time.Time
		)
		inspection := &secondary.InspectionRecord{}
		if err := rows.Scan(&inspection.ID,
			&inspection.RecordID,
			&inspection.Type,
			&inspection.Status,
			&result,
			&inspection.ScheduledDate,
			&scheduledTime,
			&createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan inspection: %w", err)
		}
		inspection.Result = result.String
		inspection.ScheduledTime = scheduledTime.String
		inspection.CreatedAt = createdAt.Format(time.RFC3339)
		inspections = append(inspections, inspection)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}

	return inspections, nil
}

// Ensure InspectionRepository implements the interface
var _ secondary.InspectionRepository = (*InspectionRepository)(nil)

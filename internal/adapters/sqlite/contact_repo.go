package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/permitflow/internal/ports/secondary"
)

// ContactRepository implements secondary.ContactRepository with SQLite.
type ContactRepository struct {
	db        *sql.DB
	logWriter secondary.LogWriter
}

// NewContactRepository creates a new SQLite contact repository.
// logWriter is optional - if nil, no audit logging is performed.
func NewContactRepository(db *sql.DB, logWriter secondary.LogWriter) *ContactRepository {
	return &ContactRepository{db: db, logWriter: logWriter}
}

// Create persists a new contact at the end of the record's contact list.
// An empty ID is assigned.
func (r *ContactRepository) Create(ctx context.Context, contact *secondary.ContactRecord) error {
	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO contacts (id, record_id, contact_type, name, phone1, email, position)
		 VALUES (?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position) + 1, 0) FROM contacts WHERE record_id = ?))
		 RETURNING position`,
		contact.ID,
		contact.RecordID,
		contact.ContactType,
		nullString(contact.Name),
		nullString(contact.Phone1),
		nullString(contact.Email),
		contact.RecordID,
	).Scan(&contact.Position)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogCreate(ctx, "contact", contact.ID)
	}
	return nil
}

// ListByRecord retrieves the contacts of a record in display order.
func (r *ContactRepository) ListByRecord(ctx context.Context, recordID string) ([]*secondary.ContactRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, record_id, contact_type, name, phone1, email, position FROM contacts WHERE record_id = ? ORDER BY position`,
		recordID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*secondary.ContactRecord
	for rows.Next() {
		var name, phone, email sql.NullString
		contact := &secondary.ContactRecord{}
		if err := rows.Scan(&contact.ID, &contact.RecordID, &contact.ContactType, &name, &phone, &email, &contact.Position); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contact.Name = name.String
		contact.Phone1 = phone.String
		contact.Email = email.String
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return contacts, nil
}

// UpdatePhone sets the primary phone of a contact.
func (r *ContactRepository) UpdatePhone(ctx context.Context, contactID, phone string) error {
	var oldPhone sql.NullString
	err := r.db.QueryRowContext(ctx, "SELECT phone1 FROM contacts WHERE id = ?", contactID).Scan(&oldPhone)
	if err == sql.ErrNoRows {
		return fmt.Errorf("contact %s not found", contactID)
	}
	if err != nil {
		return fmt.Errorf("failed to get contact: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, "UPDATE contacts SET phone1 = ? WHERE id = ?", nullString(phone), contactID); err != nil {
		return fmt.Errorf("failed to update contact phone: %w", err)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogUpdate(ctx, "contact", contactID, "phone1", oldPhone.String, phone)
	}
	return nil
}

// Ensure ContactRepository implements the interface
var _ secondary.ContactRepository = (*ContactRepository)(nil)

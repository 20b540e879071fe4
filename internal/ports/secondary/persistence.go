// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the host capabilities the workflow handlers drive: records, custom
// fields, contacts, inspections, and mail. Handlers receive them by injection,
// never through a global.
package secondary

import (
	"context"
	"time"
)

// RecordRepository defines the secondary port for permit record persistence.
type RecordRepository interface {
	// Create persists a new record.
	Create(ctx context.Context, record *RecordRecord) error

	// GetByID retrieves a record by its ID1-ID2-ID3 id.
	GetByID(ctx context.Context, id string) (*RecordRecord, error)

	// List retrieves records matching the given filters.
	List(ctx context.Context, filters RecordFilters) ([]*RecordRecord, error)

	// UpdateStatus sets the record status and appends a status history entry.
	UpdateStatus(ctx context.Context, id, status, comment, actor string) error

	// AddComment appends a comment to the record.
	AddComment(ctx context.Context, id, body, actor string) error

	// ListComments retrieves the comments of a record, oldest first.
	ListComments(ctx context.Context, id string) ([]*CommentRecord, error)
}

// RecordRecord represents a permit record as stored in persistence.
type RecordRecord struct {
	ID       string // ID1-ID2-ID3
	CustomID string // human-facing alternate id, e.g. BLD-2025-0001
	ParentID string // empty if the record has no parent
	Type     string
	Status   string
	FileDate time.Time // zero if the file date is missing
	// CreatedAt and UpdatedAt are RFC 3339 strings.
	CreatedAt string
	UpdatedAt string
}

// RecordFilters contains filter options for querying records.
type RecordFilters struct {
	Status   string
	ParentID string
	Limit    int
}

// CommentRecord represents a record comment as stored in persistence.
type CommentRecord struct {
	ID        string
	RecordID  string
	Body      string
	Actor     string
	CreatedAt string
}

// CustomFieldRepository defines the secondary port for record custom fields.
type CustomFieldRepository interface {
	// List retrieves the custom fields of a record in display order.
	List(ctx context.Context, recordID string) ([]*CustomFieldRecord, error)

	// Upsert sets a field value by label, creating the field if absent.
	Upsert(ctx context.Context, recordID, label, value string) error

	// SetValue updates the value of an existing field.
	SetValue(ctx context.Context, fieldID, value string) error
}

// CustomFieldRecord represents a custom field as stored in persistence.
type CustomFieldRecord struct {
	ID       string
	RecordID string
	Name     string
	Value    string
	Position int
}

// Label returns the field name used for lookups.
func (r *CustomFieldRecord) Label() string { return r.Name }

// ContactRepository defines the secondary port for record contacts.
type ContactRepository interface {
	// Create persists a new contact on a record.
	Create(ctx context.Context, contact *ContactRecord) error

	// ListByRecord retrieves the contacts of a record in display order.
	ListByRecord(ctx context.Context, recordID string) ([]*ContactRecord, error)

	// UpdatePhone sets the primary phone of a contact.
	UpdatePhone(ctx context.Context, contactID, phone string) error
}

// ContactRecord represents a record contact as stored in persistence.
type ContactRecord struct {
	ID          string
	RecordID    string
	ContactType string // e.g. Owner, Applicant, Agent
	Name        string
	Phone1      string
	Email       string
	Position    int
}

// Label returns the contact type used for lookups.
func (r *ContactRecord) Label() string { return r.ContactType }

// InspectionRepository defines the secondary port for inspections.
type InspectionRepository interface {
	// Create persists a new inspection (scheduled or resulted).
	Create(ctx context.Context, inspection *InspectionRecord) error

	// ListByRecord retrieves the inspections of a record, newest first.
	ListByRecord(ctx context.Context, recordID string) ([]*InspectionRecord, error)
}

// InspectionRecord represents an inspection as stored in persistence.
type InspectionRecord struct {
	ID            string
	RecordID      string
	Type          string
	Status        string // "scheduled" or "resulted"
	Result        string // empty until resulted
	ScheduledDate string // MM/DD/YYYY
	ScheduledTime string // HH:MM, 24h
	CreatedAt     string
}

// Mailer defines the secondary port for outbound email.
type Mailer interface {
	// Send queues an email for delivery.
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage is an outbound email.
type EmailMessage struct {
	From    string
	To      string
	CC      string
	BCC     string
	Subject string
	Body    string
}

// OutboxRepository reads back queued emails.
type OutboxRepository interface {
	// List retrieves queued emails, newest first.
	List(ctx context.Context, limit int) ([]*OutboxRecord, error)
}

// OutboxRecord represents a queued email as stored in persistence.
type OutboxRecord struct {
	ID string
	EmailMessage
	CreatedAt string
}

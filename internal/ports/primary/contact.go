package primary

import "context"

// ContactService defines the primary port for record contact operations.
type ContactService interface {
	// CopyApplicantPhone fills a blank owner phone from the applicant
	// (application-submitted handler).
	CopyApplicantPhone(ctx context.Context, recordID string) (*HandlerOutcome, error)

	// AddContact adds a contact to a record.
	AddContact(ctx context.Context, req AddContactRequest) (*Contact, error)

	// ListContacts retrieves the contacts of a record.
	ListContacts(ctx context.Context, recordID string) ([]*Contact, error)
}

// AddContactRequest contains parameters for adding a contact.
type AddContactRequest struct {
	RecordID    string
	ContactType string
	Name        string
	Phone       string
	Email       string
}

// Contact represents a record contact at the port boundary.
type Contact struct {
	ID          string
	RecordID    string
	ContactType string
	Name        string
	Phone       string
	Email       string
}

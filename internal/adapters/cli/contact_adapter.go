package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/permitflow/internal/ports/primary"
)

// ContactAdapter is a thin adapter that translates CLI operations to ContactService calls.
type ContactAdapter struct {
	service primary.ContactService
	out     io.Writer
}

// NewContactAdapter creates a new ContactAdapter with the given service.
func NewContactAdapter(service primary.ContactService, out io.Writer) *ContactAdapter {
	return &ContactAdapter{
		service: service,
		out:     out,
	}
}

// Add adds a contact to a record.
func (a *ContactAdapter) Add(ctx context.Context, req primary.AddContactRequest) error {
	contact, err := a.service.AddContact(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s Added %s contact %s to %s\n", okMark, contact.ContactType, contact.ID, contact.RecordID)
	return nil
}

// List lists the contacts of a record.
func (a *ContactAdapter) List(ctx context.Context, recordID string) error {
	contacts, err := a.service.ListContacts(ctx, recordID)
	if err != nil {
		return err
	}

	if len(contacts) == 0 {
		fmt.Fprintln(a.out, "No contacts found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-12s %-20s %-14s %s\n", "TYPE", "NAME", "PHONE", "EMAIL")
	fmt.Fprintln(a.out, rule)
	for _, c := range contacts {
		fmt.Fprintf(a.out, "%-12s %-20s %-14s %s\n", c.ContactType, orDash(c.Name), orDash(c.Phone), orDash(c.Email))
	}
	fmt.Fprintln(a.out)

	return nil
}

// CopyApplicantPhone re-runs the application-submitted phone copy.
func (a *ContactAdapter) CopyApplicantPhone(ctx context.Context, recordID string) error {
	outcome, err := a.service.CopyApplicantPhone(ctx, recordID)
	if err != nil {
		return err
	}

	writeOutcome(a.out, "Applicant phone copy", outcome)
	return nil
}

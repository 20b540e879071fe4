package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/example/permitflow/internal/config"
	"github.com/example/permitflow/internal/core/lookup"
	"github.com/example/permitflow/internal/core/permit"
	"github.com/example/permitflow/internal/ports/primary"
	"github.com/example/permitflow/internal/ports/secondary"
)

// ContactServiceImpl implements the ContactService interface.
type ContactServiceImpl struct {
	recordRepo  secondary.RecordRepository
	contactRepo secondary.ContactRepository
	workflow    config.Workflow
	typeMode    lookup.MatchMode
	logger      zerolog.Logger
}

// NewContactService creates a new ContactService with injected dependencies.
func NewContactService(
	recordRepo secondary.RecordRepository,
	contactRepo secondary.ContactRepository,
	cfg *config.Config,
	logger zerolog.Logger,
) *ContactServiceImpl {
	return &ContactServiceImpl{
		recordRepo:  recordRepo,
		contactRepo: contactRepo,
		workflow:    cfg.Workflow,
		typeMode:    lookup.ParseMatchMode(cfg.Matching.ContactTypes),
		logger:      logger.With().Str("handler", "copy-applicant-phone").Logger(),
	}
}

// CopyApplicantPhone fills a blank owner phone number from the applicant.
func (s *ContactServiceImpl) CopyApplicantPhone(ctx context.Context, recordID string) (*primary.HandlerOutcome, error) {
	log := s.logger.With().Str("record", recordID).Logger()

	if _, err := s.recordRepo.GetByID(ctx, recordID); err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	contacts, err := s.contactRepo.ListByRecord(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	if len(contacts) == 0 {
		reason := fmt.Sprintf("no contacts found for %s", recordID)
		log.Debug().Msg(reason)
		return skipped(reason), nil
	}

	owner, ownerFound := lookup.FindFirst(contacts, lookup.LabelEquals(s.workflow.OwnerContactType, s.typeMode))
	applicant, applicantFound := lookup.FindFirst(contacts, lookup.LabelEquals(s.workflow.ApplicantContactType, s.typeMode))

	guardCtx := permit.PhoneCopyContext{
		RecordID:       recordID,
		OwnerFound:     ownerFound,
		ApplicantFound: applicantFound,
	}
	if ownerFound {
		guardCtx.OwnerPhone = owner.Phone1
	}
	if applicantFound {
		guardCtx.ApplicantPhone = applicant.Phone1
	}
	if guard := permit.CanCopyApplicantPhone(guardCtx); !guard.Allowed {
		log.Debug().Msg(guard.Reason)
		return skipped(guard.Reason), nil
	}

	phone := strings.TrimSpace(applicant.Phone1)
	if err := s.contactRepo.UpdatePhone(ctx, owner.ID, phone); err != nil {
		log.Error().Err(err).Str("contact", owner.ID).Msg("failed to update owner phone")
		return nil, fmt.Errorf("failed to update owner phone: %w", err)
	}

	log.Info().Str("contact", owner.ID).Msg("copied applicant phone to owner")
	return &primary.HandlerOutcome{
		Applied: true,
		Detail:  fmt.Sprintf("owner phone set to %s", phone),
	}, nil
}

// AddContact adds a contact to a record.
func (s *ContactServiceImpl) AddContact(ctx context.Context, req primary.AddContactRequest) (*primary.Contact, error) {
	if strings.TrimSpace(req.ContactType) == "" {
		return nil, fmt.Errorf("contact type is required")
	}
	if _, err := s.recordRepo.GetByID(ctx, req.RecordID); err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	record := &secondary.ContactRecord{
		RecordID:    req.RecordID,
		ContactType: req.ContactType,
		Name:        req.Name,
		Phone1:      req.Phone,
		Email:       req.Email,
	}
	if err := s.contactRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return contactToPort(record), nil
}

// ListContacts retrieves the contacts of a record.
func (s *ContactServiceImpl) ListContacts(ctx context.Context, recordID string) ([]*primary.Contact, error) {
	records, err := s.contactRepo.ListByRecord(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	contacts := make([]*primary.Contact, len(records))
	for i, r := range records {
		contacts[i] = contactToPort(r)
	}
	return contacts, nil
}

func contactToPort(r *secondary.ContactRecord) *primary.Contact {
	return &primary.Contact{
		ID:          r.ID,
		RecordID:    r.RecordID,
		ContactType: r.ContactType,
		Name:        r.Name,
		Phone:       r.Phone1,
		Email:       r.Email,
	}
}

// Ensure ContactServiceImpl implements the interface
var _ primary.ContactService = (*ContactServiceImpl)(nil)

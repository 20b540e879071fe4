package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/permitflow/internal/config"
	"github.com/example/permitflow/internal/core/calendar"
	"github.com/example/permitflow/internal/core/lookup"
	"github.com/example/permitflow/internal/core/permit"
	"github.com/example/permitflow/internal/ports/primary"
	"github.com/example/permitflow/internal/ports/secondary"
)

// Inspection statuses.
const (
	InspectionScheduled = "scheduled"
	InspectionResulted  = "resulted"
)

// InspectionServiceImpl implements the InspectionService interface.
type InspectionServiceImpl struct {
	recordRepo     secondary.RecordRepository
	contactRepo    secondary.ContactRepository
	inspectionRepo secondary.InspectionRepository
	mailer         secondary.Mailer
	workflow       config.Workflow
	typeMode       lookup.MatchMode
	from           string
	clock          Clock
	logger         zerolog.Logger
}

// NewInspectionService creates a new InspectionService with injected dependencies.
func NewInspectionService(
	recordRepo secondary.RecordRepository,
	contactRepo secondary.ContactRepository,
	inspectionRepo secondary.InspectionRepository,
	mailer secondary.Mailer,
	cfg *config.Config,
	clock Clock,
	logger zerolog.Logger,
) *InspectionServiceImpl {
	return &InspectionServiceImpl{
		recordRepo:     recordRepo,
		contactRepo:    contactRepo,
		inspectionRepo: inspectionRepo,
		mailer:         mailer,
		workflow:       cfg.Workflow,
		typeMode:       lookup.ParseMatchMode(cfg.Matching.ContactTypes),
		from:           cfg.Mail.From,
		clock:          clock,
		logger:         logger.With().Str("handler", "inspection-result").Logger(),
	}
}

// RecordResult stores an inspection result. A failing result emails the first
// Owner or Applicant contact and schedules a re-inspection of the same type.
func (s *InspectionServiceImpl) RecordResult(ctx context.Context, req primary.RecordResultRequest) (*primary.InspectionOutcome, error) {
	log := s.logger.With().Str("record", req.RecordID).Logger()

	record, err := s.recordRepo.GetByID(ctx, req.RecordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	now := s.clock.now()
	resulted := &secondary.InspectionRecord{
		RecordID:      req.RecordID,
		Type:          req.InspectionType,
		Status:        InspectionResulted,
		Result:        req.Result,
		ScheduledDate: calendar.FormatHostDate(now),
		ScheduledTime: now.Format("15:04"),
	}
	if err := s.inspectionRepo.Create(ctx, resulted); err != nil {
		return nil, fmt.Errorf("failed to record inspection result: %w", err)
	}

	guard := permit.IsFailedInspection(permit.InspectionResultContext{
		RecordID:       req.RecordID,
		InspectionType: req.InspectionType,
		Result:         req.Result,
		FailResult:     s.workflow.FailResult,
	})
	if !guard.Allowed {
		log.Debug().Msg(guard.Reason)
		return &primary.InspectionOutcome{HandlerOutcome: *skipped(guard.Reason)}, nil
	}

	contacts, err := s.contactRepo.ListByRecord(ctx, req.RecordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	primaryContact, found := lookup.FindFirst(contacts,
		lookup.LabelIn(s.typeMode, s.workflow.OwnerContactType, s.workflow.ApplicantContactType))
	notifyCtx := permit.NotifyContactContext{RecordID: req.RecordID, ContactFound: found}
	if found {
		notifyCtx.ContactType = primaryContact.ContactType
		notifyCtx.Email = primaryContact.Email
	}
	if guard := permit.CanNotifyContact(notifyCtx); !guard.Allowed {
		log.Warn().Msg(guard.Reason)
		return &primary.InspectionOutcome{HandlerOutcome: *skipped(guard.Reason)}, nil
	}

	hour, minute, err := config.ParseClock(s.workflow.ReinspectionTime)
	if err != nil {
		return nil, err
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())

	customID := record.CustomID
	if customID == "" {
		customID = record.ID
	}
	notice := permit.ComposeFailureNotice(customID, primaryContact.ContactType, req.Result,
		s.workflow.ReinspectionBusinessDays, at.Format("3:04 PM"))

	log.Debug().Str("to", primaryContact.Email).Msg("sending failure notice")
	if err := s.mailer.Send(ctx, secondary.EmailMessage{
		From:    s.from,
		To:      primaryContact.Email,
		Subject: notice.Subject,
		Body:    notice.Body,
	}); err != nil {
		log.Error().Err(err).Str("to", primaryContact.Email).Msg("failed to send failure notice")
		return nil, fmt.Errorf("failed to send failure notice: %w", err)
	}

	target, err := calendar.AddBusinessDays(at, s.workflow.ReinspectionBusinessDays)
	if err != nil {
		return nil, fmt.Errorf("failed to compute re-inspection date: %w", err)
	}

	scheduled := &secondary.InspectionRecord{
		RecordID:      req.RecordID,
		Type:          req.InspectionType,
		Status:        InspectionScheduled,
		ScheduledDate: calendar.FormatHostDate(target),
		ScheduledTime: s.workflow.ReinspectionTime,
	}
	if err := s.inspectionRepo.Create(ctx, scheduled); err != nil {
		log.Error().Err(err).Msg("failed to schedule re-inspection")
		return nil, fmt.Errorf("failed to schedule re-inspection: %w", err)
	}

	log.Info().
		Str("type", req.InspectionType).
		Str("date", scheduled.ScheduledDate).
		Str("notified", primaryContact.Email).
		Msg("re-inspection scheduled")

	return &primary.InspectionOutcome{
		HandlerOutcome: primary.HandlerOutcome{
			Applied: true,
			Detail:  fmt.Sprintf("re-inspection on %s at %s", scheduled.ScheduledDate, scheduled.ScheduledTime),
		},
		NotifiedEmail: primaryContact.Email,
		Rescheduled:   inspectionToPort(scheduled),
	}, nil
}

// ListInspections retrieves the inspections of a record.
func (s *InspectionServiceImpl) ListInspections(ctx context.Context, recordID string) ([]*primary.Inspection, error) {
	records, err := s.inspectionRepo.ListByRecord(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}

	inspections := make([]*primary.Inspection, len(records))
	for i, r := range records {
		inspections[i] = inspectionToPort(r)
	}
	return inspections, nil
}

func inspectionToPort(r *secondary.InspectionRecord) *primary.Inspection {
	return &primary.Inspection{
		ID:            r.ID,
		RecordID:      r.RecordID,
		Type:          r.Type,
		Status:        r.Status,
		Result:        r.Result,
		ScheduledDate: r.ScheduledDate,
		ScheduledTime: r.ScheduledTime,
	}
}

// Ensure InspectionServiceImpl implements the interface
var _ primary.InspectionService = (*InspectionServiceImpl)(nil)

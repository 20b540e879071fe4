package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/permitflow/internal/config"
	"github.com/example/permitflow/internal/core/calendar"
	"github.com/example/permitflow/internal/core/permit"
	"github.com/example/permitflow/internal/ctxutil"
	"github.com/example/permitflow/internal/ports/primary"
	"github.com/example/permitflow/internal/ports/secondary"
)

const isoDate = "2006-01-02"

// RecordServiceImpl implements the RecordService interface.
// It raises the record-created and application-submitted events by calling
// the handler services directly.
type RecordServiceImpl struct {
	recordRepo     secondary.RecordRepository
	fieldRepo      secondary.CustomFieldRepository
	fieldService   primary.FieldService
	contactService primary.ContactService
	workflow       config.Workflow
	logger         zerolog.Logger
}

// NewRecordService creates a new RecordService with injected dependencies.
func NewRecordService(
	recordRepo secondary.RecordRepository,
	fieldRepo secondary.CustomFieldRepository,
	fieldService primary.FieldService,
	contactService primary.ContactService,
	cfg *config.Config,
	logger zerolog.Logger,
) *RecordServiceImpl {
	return &RecordServiceImpl{
		recordRepo:     recordRepo,
		fieldRepo:      fieldRepo,
		fieldService:   fieldService,
		contactService: contactService,
		workflow:       cfg.Workflow,
		logger:         logger,
	}
}

// CreateRecord creates a record with its initial custom fields, then runs the
// record-created value copy. A failing copy is reported in the response and
// does not undo the create.
func (s *RecordServiceImpl) CreateRecord(ctx context.Context, req primary.CreateRecordRequest) (*primary.CreateRecordResponse, error) {
	id, err := permit.ParseRecordID(req.RecordID)
	if err != nil {
		return nil, err
	}

	var parentID string
	if req.ParentID != "" {
		parent, err := permit.ParseRecordID(req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("parent: %w", err)
		}
		if _, err := s.recordRepo.GetByID(ctx, parent.String()); err != nil {
			return nil, fmt.Errorf("failed to get parent record: %w", err)
		}
		parentID = parent.String()
	}

	var fileDate time.Time
	if req.FileDate != "" {
		fileDate, err = calendar.ParseDate(req.FileDate)
		if err != nil {
			return nil, fmt.Errorf("file date: %w", err)
		}
	}

	status := req.Status
	if status == "" {
		status = s.workflow.InitialStatus
	}

	record := &secondary.RecordRecord{
		ID:       id.String(),
		CustomID: req.CustomID,
		ParentID: parentID,
		Type:     req.Type,
		Status:   status,
		FileDate: fileDate,
	}
	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	labels := make([]string, 0, len(req.Fields))
	for label := range req.Fields {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		if err := s.fieldRepo.Upsert(ctx, record.ID, label, req.Fields[label]); err != nil {
			return nil, fmt.Errorf("failed to set field %q: %w", label, err)
		}
	}

	created, err := s.recordRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload record: %w", err)
	}

	outcome, err := s.fieldService.CopyEstimatedValue(ctx, record.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("record", record.ID).Msg("record-created handler failed")
		outcome = skipped(err.Error())
	}

	return &primary.CreateRecordResponse{
		Record:      recordToPort(created),
		CopyOutcome: outcome,
	}, nil
}

// GetRecord retrieves a record by ID.
func (s *RecordServiceImpl) GetRecord(ctx context.Context, recordID string) (*primary.Record, error) {
	record, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	return recordToPort(record), nil
}

// ListRecords lists records with optional filters.
func (s *RecordServiceImpl) ListRecords(ctx context.Context, filters primary.RecordFilters) ([]*primary.Record, error) {
	records, err := s.recordRepo.List(ctx, secondary.RecordFilters{
		Status:   filters.Status,
		ParentID: filters.ParentID,
		Limit:    filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	result := make([]*primary.Record, len(records))
	for i, r := range records {
		result[i] = recordToPort(r)
	}
	return result, nil
}

// SubmitApplication marks the record submitted and runs the
// application-submitted phone copy.
func (s *RecordServiceImpl) SubmitApplication(ctx context.Context, recordID string) (*primary.HandlerOutcome, error) {
	record, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	if record.Status != s.workflow.SubmittedStatus {
		actor := ctxutil.ActorFromContext(ctx)
		if err := s.recordRepo.UpdateStatus(ctx, recordID, s.workflow.SubmittedStatus, "Application submitted", actor); err != nil {
			return nil, fmt.Errorf("failed to update status: %w", err)
		}
	}

	return s.contactService.CopyApplicantPhone(ctx, recordID)
}

// ListComments retrieves the comments of a record, oldest first.
func (s *RecordServiceImpl) ListComments(ctx context.Context, recordID string) ([]*primary.Comment, error) {
	records, err := s.recordRepo.ListComments(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*primary.Comment, len(records))
	for i, r := range records {
		comments[i] = &primary.Comment{ID: r.ID, Body: r.Body, Actor: r.Actor, CreatedAt: r.CreatedAt}
	}
	return comments, nil
}

func recordToPort(r *secondary.RecordRecord) *primary.Record {
	rec := &primary.Record{
		ID:        r.ID,
		CustomID:  r.CustomID,
		ParentID:  r.ParentID,
		Type:      r.Type,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if !r.FileDate.IsZero() {
		rec.FileDate = r.FileDate.Format(isoDate)
	}
	return rec
}

// Ensure RecordServiceImpl implements the interface
var _ primary.RecordService = (*RecordServiceImpl)(nil)

package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/example/permitflow/internal/config"
	"github.com/example/permitflow/internal/core/lookup"
	"github.com/example/permitflow/internal/core/permit"
	"github.com/example/permitflow/internal/ports/primary"
	"github.com/example/permitflow/internal/ports/secondary"
)

// FieldServiceImpl implements the FieldService interface.
type FieldServiceImpl struct {
	recordRepo secondary.RecordRepository
	fieldRepo  secondary.CustomFieldRepository
	workflow   config.Workflow
	labelMode  lookup.MatchMode
	logger     zerolog.Logger
}

// NewFieldService creates a new FieldService with injected dependencies.
func NewFieldService(
	recordRepo secondary.RecordRepository,
	fieldRepo secondary.CustomFieldRepository,
	cfg *config.Config,
	logger zerolog.Logger,
) *FieldServiceImpl {
	return &FieldServiceImpl{
		recordRepo: recordRepo,
		fieldRepo:  fieldRepo,
		workflow:   cfg.Workflow,
		labelMode:  lookup.ParseMatchMode(cfg.Matching.FieldLabels),
		logger:     logger.With().Str("handler", "copy-estimated-value").Logger(),
	}
}

// CopyEstimatedValue copies the child's estimated value to its parent's
// latest sub-value field.
func (s *FieldServiceImpl) CopyEstimatedValue(ctx context.Context, recordID string) (*primary.HandlerOutcome, error) {
	log := s.logger.With().Str("record", recordID).Logger()

	record, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	childFields, err := s.fieldRepo.List(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom fields: %w", err)
	}

	var value string
	if field, ok := lookup.FindFirst(childFields, lookup.LabelEquals(s.workflow.EstimatedValueField, s.labelMode)); ok {
		value = field.Value
	}

	guard := permit.CanCopyValueToParent(permit.CopyValueContext{
		RecordID:   recordID,
		FieldLabel: s.workflow.EstimatedValueField,
		Value:      value,
		ParentID:   record.ParentID,
	})
	if !guard.Allowed {
		log.Debug().Msg(guard.Reason)
		return skipped(guard.Reason), nil
	}
	log.Debug().Str("value", value).Str("parent", record.ParentID).Msg("child value found")

	parentFields, err := s.fieldRepo.List(ctx, record.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list parent custom fields: %w", err)
	}

	target, ok := lookup.FindFirst(parentFields, lookup.LabelEquals(s.workflow.LatestSubValueField, s.labelMode))
	if !ok {
		reason := fmt.Sprintf("'%s' field not found on parent %s", s.workflow.LatestSubValueField, record.ParentID)
		log.Warn().Msg(reason)
		return skipped(reason), nil
	}

	if err := s.fieldRepo.SetValue(ctx, target.ID, value); err != nil {
		log.Error().Err(err).Msg("failed to update parent field")
		return nil, fmt.Errorf("failed to update parent field: %w", err)
	}

	log.Info().Str("parent", record.ParentID).Str("value", value).Msg("copied estimated value to parent")
	return &primary.HandlerOutcome{
		Applied: true,
		Detail:  fmt.Sprintf("%s '%s' = %s", record.ParentID, s.workflow.LatestSubValueField, value),
	}, nil
}

// SetField sets a custom field value on a record.
func (s *FieldServiceImpl) SetField(ctx context.Context, recordID, label, value string) error {
	if label == "" {
		return fmt.Errorf("field label is required")
	}
	if _, err := s.recordRepo.GetByID(ctx, recordID); err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}
	if err := s.fieldRepo.Upsert(ctx, recordID, label, value); err != nil {
		return fmt.Errorf("failed to set field: %w", err)
	}
	return nil
}

// ListFields retrieves the custom fields of a record.
func (s *FieldServiceImpl) ListFields(ctx context.Context, recordID string) ([]*primary.CustomField, error) {
	records, err := s.fieldRepo.List(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom fields: %w", err)
	}

	fields := make([]*primary.CustomField, len(records))
	for i, r := range records {
		fields[i] = &primary.CustomField{ID: r.ID, Label: r.Name, Value: r.Value}
	}
	return fields, nil
}

func skipped(reason string) *primary.HandlerOutcome {
	return &primary.HandlerOutcome{Applied: false, Reason: reason}
}

// Ensure FieldServiceImpl implements the interface
var _ primary.FieldService = (*FieldServiceImpl)(nil)

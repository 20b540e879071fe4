package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/example/permitflow/internal/config"
	"github.com/example/permitflow/internal/core/calendar"
	"github.com/example/permitflow/internal/core/permit"
	"github.com/example/permitflow/internal/ctxutil"
	"github.com/example/permitflow/internal/ports/primary"
	"github.com/example/permitflow/internal/ports/secondary"
)

// ExpiryServiceImpl implements the ExpiryService interface.
type ExpiryServiceImpl struct {
	recordRepo secondary.RecordRepository
	workflow   config.Workflow
	clock      Clock
	logger     zerolog.Logger
}

// NewExpiryService creates a new ExpiryService with injected dependencies.
func NewExpiryService(
	recordRepo secondary.RecordRepository,
	cfg *config.Config,
	clock Clock,
	logger zerolog.Logger,
) *ExpiryServiceImpl {
	return &ExpiryServiceImpl{
		recordRepo: recordRepo,
		workflow:   cfg.Workflow,
		clock:      clock,
		logger:     logger.With().Str("batch", "expire-pending-fee").Logger(),
	}
}

// ExpireStalePendingFee expires records that sat in the pending status for
// longer than the threshold. One record failing does not stop the batch.
func (s *ExpiryServiceImpl) ExpireStalePendingFee(ctx context.Context, recordIDs []string) (*primary.BatchReport, error) {
	ctx = ctxutil.WithActorID(ctx, s.workflow.SystemActor)
	report := &primary.BatchReport{}

	records, err := s.collect(ctx, recordIDs, report)
	if err != nil {
		return nil, err
	}

	comment := permit.ExpiryComment(s.workflow.PendingStatus, s.workflow.ExpiryThresholdDays)
	now := s.clock.now()

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Considered++
		log := s.logger.With().Str("record", record.ID).Logger()

		guardCtx := permit.ExpiryContext{
			RecordID:      record.ID,
			Status:        record.Status,
			PendingStatus: s.workflow.PendingStatus,
			HasFileDate:   !record.FileDate.IsZero(),
			ThresholdDays: s.workflow.ExpiryThresholdDays,
		}
		if guardCtx.HasFileDate {
			age, err := calendar.DayDifference(record.FileDate, now)
			if err != nil {
				report.Failed = append(report.Failed, primary.BatchFailure{RecordID: record.ID, Err: err})
				continue
			}
			guardCtx.AgeDays = age
		}

		if guard := permit.CanExpire(guardCtx); !guard.Allowed {
			log.Debug().Msg(guard.Reason)
			report.Skipped = append(report.Skipped, primary.BatchSkip{RecordID: record.ID, Reason: guard.Reason})
			continue
		}

		if err := s.recordRepo.UpdateStatus(ctx, record.ID, s.workflow.ExpiredStatus, comment, s.workflow.SystemActor); err != nil {
			log.Error().Err(err).Msg("failed to update status")
			report.Failed = append(report.Failed, primary.BatchFailure{RecordID: record.ID, Err: err})
			continue
		}
		log.Info().Int("age_days", guardCtx.AgeDays).Msg("expired")
		report.Expired = append(report.Expired, record.ID)

		// The status is already committed, so a rerun would skip this record.
		if err := s.recordRepo.AddComment(ctx, record.ID, comment, s.workflow.SystemActor); err != nil {
			log.Error().Err(err).Msg("failed to add comment")
			report.Warnings = append(report.Warnings, primary.BatchFailure{
				RecordID: record.ID,
				Err:      fmt.Errorf("expired but comment not added: %w", err),
			})
		}
	}

	s.logger.Info().
		Int("considered", report.Considered).
		Int("expired", len(report.Expired)).
		Int("skipped", len(report.Skipped)).
		Int("failed", len(report.Failed)).
		Int("warnings", len(report.Warnings)).
		Msg("batch complete")
	return report, nil
}

// collect resolves the batch input. Unparseable and unknown ids are recorded
// as skipped rather than failing the run.
func (s *ExpiryServiceImpl) collect(ctx context.Context, recordIDs []string, report *primary.BatchReport) ([]*secondary.RecordRecord, error) {
	if len(recordIDs) == 0 {
		records, err := s.recordRepo.List(ctx, secondary.RecordFilters{Status: s.workflow.PendingStatus})
		if err != nil {
			return nil, fmt.Errorf("failed to list pending records: %w", err)
		}
		return records, nil
	}

	records := make([]*secondary.RecordRecord, 0, len(recordIDs))
	for _, raw := range recordIDs {
		id, err := permit.ParseRecordID(raw)
		if err != nil {
			report.Skipped = append(report.Skipped, primary.BatchSkip{RecordID: raw, Reason: err.Error()})
			continue
		}
		record, err := s.recordRepo.GetByID(ctx, id.String())
		if err != nil {
			s.logger.Warn().Err(err).Str("record", raw).Msg("skipping record")
			report.Skipped = append(report.Skipped, primary.BatchSkip{RecordID: raw, Reason: err.Error()})
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// Ensure ExpiryServiceImpl implements the interface
var _ primary.ExpiryService = (*ExpiryServiceImpl)(nil)

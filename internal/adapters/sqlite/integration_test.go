package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/permitflow/internal/adapters/sqlite"
	"github.com/example/permitflow/internal/app"
	"github.com/example/permitflow/internal/config"
	"github.com/example/permitflow/internal/ports/primary"
)

// Integration tests run the event handlers against real repositories.

type integrationEnv struct {
	db          *sql.DB
	records     primary.RecordService
	contacts    primary.ContactService
	inspections primary.InspectionService
	expiry      primary.ExpiryService
	audit       primary.AuditService
	outbox      *sqlite.OutboxRepository
	fields      *sqlite.CustomFieldRepository
}

func setupIntegrationEnv(t *testing.T, now time.Time) *integrationEnv {
	t.Helper()
	db := setupTestDB(t)
	cfg := config.Default()
	logger := zerolog.Nop()
	clock := app.FixedClock(now)

	auditRepo := sqlite.NewAuditLogRepository(db)
	logWriter := sqlite.NewLogWriterAdapter(auditRepo)
	recordRepo := sqlite.NewRecordRepository(db, logWriter)
	fieldRepo := sqlite.NewCustomFieldRepository(db, logWriter)
	contactRepo := sqlite.NewContactRepository(db, logWriter)
	inspectionRepo := sqlite.NewInspectionRepository(db, logWriter)
	outbox := sqlite.NewOutboxRepository(db)

	fieldService := app.NewFieldService(recordRepo, fieldRepo, cfg, logger)
	contactService := app.NewContactService(recordRepo, contactRepo, cfg, logger)

	return &integrationEnv{
		db:          db,
		records:     app.NewRecordService(recordRepo, fieldRepo, fieldService, contactService, cfg, logger),
		contacts:    contactService,
		inspections: app.NewInspectionService(recordRepo, contactRepo, inspectionRepo, outbox, cfg, clock, logger),
		expiry:      app.NewExpiryService(recordRepo, cfg, clock, logger),
		audit:       app.NewAuditService(auditRepo),
		outbox:      outbox,
		fields:      fieldRepo,
	}
}

func TestIntegration_RecordCreatedCopiesValue(t *testing.T) {
	env := setupIntegrationEnv(t, time.Now())
	ctx := context.Background()

	if _, err := env.records.CreateRecord(ctx, primary.CreateRecordRequest{
		RecordID: "BLD25-00000-00001",
		Fields:   map[string]string{"Latest Sub-Value": "", "Project Name": "Library"},
	}); err != nil {
		t.Fatalf("create parent failed: %v", err)
	}

	resp, err := env.records.CreateRecord(ctx, primary.CreateRecordRequest{
		RecordID: "BLD25-00000-00002",
		ParentID: "BLD25-00000-00001",
		Fields:   map[string]string{"Estimated Value": "98000"},
	})
	if err != nil {
		t.Fatalf("create child failed: %v", err)
	}
	if !resp.CopyOutcome.Applied {
		t.Fatalf("expected copy to apply, reason %q", resp.CopyOutcome.Reason)
	}

	fields, err := env.fields.List(ctx, "BLD25-00000-00001")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, f := range fields {
		if f.Name == "Latest Sub-Value" && f.Value != "98000" {
			t.Errorf("Latest Sub-Value = %q, want 98000", f.Value)
		}
	}

	entries, err := env.audit.ListEntries(ctx, primary.AuditFilters{EntityID: "BLD25-00000-00001"})
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	found := false
	for _, e := range entries {
		if e.FieldName == "Latest Sub-Value" && e.NewValue == "98000" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected audit entry for the copied value, got %+v", entries)
	}
}

func TestIntegration_SubmitCopiesPhone(t *testing.T) {
	env := setupIntegrationEnv(t, time.Now())
	ctx := context.Background()
	id := seedRecord(t, env.db, "", "", "")

	for _, req := range []primary.AddContactRequest{
		{RecordID: id, ContactType: "owner"},
		{RecordID: id, ContactType: "Applicant", Phone: "555-0100"},
	} {
		if _, err := env.contacts.AddContact(ctx, req); err != nil {
			t.Fatalf("AddContact failed: %v", err)
		}
	}

	outcome, err := env.records.SubmitApplication(ctx, id)
	if err != nil {
		t.Fatalf("SubmitApplication failed: %v", err)
	}
	if !outcome.Applied {
		t.Fatalf("expected phone copy, reason %q", outcome.Reason)
	}

	contacts, _ := env.contacts.ListContacts(ctx, id)
	if contacts[0].Phone != "555-0100" {
		t.Errorf("owner phone = %q, want 555-0100", contacts[0].Phone)
	}
}

func TestIntegration_FailedInspectionQueuesEmailAndReschedules(t *testing.T) {
	// Thursday; three business days later is Tuesday.
	env := setupIntegrationEnv(t, time.Date(2025, time.June, 5, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()
	id := seedRecord(t, env.db, "", "", "")

	if _, err := env.contacts.AddContact(ctx, primary.AddContactRequest{
		RecordID: id, ContactType: "Applicant", Email: "applicant@example.com",
	}); err != nil {
		t.Fatalf("AddContact failed: %v", err)
	}

	outcome, err := env.inspections.RecordResult(ctx, primary.RecordResultRequest{
		RecordID: id, InspectionType: "Final", Result: "Fail",
	})
	if err != nil {
		t.Fatalf("RecordResult failed: %v", err)
	}
	if outcome.Rescheduled == nil || outcome.Rescheduled.ScheduledDate != "06/10/2025" {
		t.Errorf("unexpected reschedule %+v", outcome.Rescheduled)
	}

	messages, err := env.outbox.List(ctx, 0)
	if err != nil {
		t.Fatalf("outbox List failed: %v", err)
	}
	if len(messages) != 1 || messages[0].To != "applicant@example.com" {
		t.Errorf("unexpected outbox %+v", messages)
	}

	inspections, _ := env.inspections.ListInspections(ctx, id)
	if len(inspections) != 2 {
		t.Errorf("expected result and re-inspection, got %d", len(inspections))
	}
}

func TestIntegration_ExpireStalePendingFee(t *testing.T) {
	env := setupIntegrationEnv(t, time.Date(2025, time.June, 30, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	seedRecord(t, env.db, "PMT25-00000-00001", "Pending Fee", "2025-05-01")
	seedRecord(t, env.db, "PMT25-00000-00002", "Pending Fee", "2025-06-15")
	seedRecord(t, env.db, "PMT25-00000-00003", "Issued", "2025-01-01")

	report, err := env.expiry.ExpireStalePendingFee(ctx, nil)
	if err != nil {
		t.Fatalf("ExpireStalePendingFee failed: %v", err)
	}
	if len(report.Expired) != 1 || report.Expired[0] != "PMT25-00000-00001" {
		t.Errorf("unexpected expired %v", report.Expired)
	}

	rec, _ := env.records.GetRecord(ctx, "PMT25-00000-00001")
	if rec.Status != "Expired" {
		t.Errorf("status = %q, want Expired", rec.Status)
	}
	comments, _ := env.records.ListComments(ctx, "PMT25-00000-00001")
	if len(comments) != 1 || comments[0].Actor != "System" {
		t.Errorf("unexpected comments %+v", comments)
	}

	entries, _ := env.audit.ListEntries(ctx, primary.AuditFilters{ActorID: "System"})
	if len(entries) != 1 || entries[0].NewValue != "Expired" {
		t.Errorf("expected status audit attributed to System, got %+v", entries)
	}
}

package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/permitflow/internal/ports/primary"
)

// mockRecordService implements primary.RecordService for testing
type mockRecordService struct {
	createRecordFn func(ctx context.Context, req primary.CreateRecordRequest) (*primary.CreateRecordResponse, error)
	listRecordsFn  func(ctx context.Context, filters primary.RecordFilters) ([]*primary.Record, error)
	submitFn       func(ctx context.Context, recordID string) (*primary.HandlerOutcome, error)
	comments       []*primary.Comment

	lastFilters primary.RecordFilters
}

func (m *mockRecordService) CreateRecord(ctx context.Context, req primary.CreateRecordRequest) (*primary.CreateRecordResponse, error) {
	if m.createRecordFn != nil {
		return m.createRecordFn(ctx, req)
	}
	return &primary.CreateRecordResponse{
		Record:      &primary.Record{ID: req.RecordID, Status: "Received"},
		CopyOutcome: &primary.HandlerOutcome{Reason: "no parent record found for " + req.RecordID},
	}, nil
}

func (m *mockRecordService) GetRecord(ctx context.Context, recordID string) (*primary.Record, error) {
	return &primary.Record{ID: recordID, Status: "Pending Fee", FileDate: "2025-05-01", CreatedAt: "2025-05-01T10:00:00Z"}, nil
}

func (m *mockRecordService) ListRecords(ctx context.Context, filters primary.RecordFilters) ([]*primary.Record, error) {
	m.lastFilters = filters
	if m.listRecordsFn != nil {
		return m.listRecordsFn(ctx, filters)
	}
	return []*primary.Record{}, nil
}

func (m *mockRecordService) SubmitApplication(ctx context.Context, recordID string) (*primary.HandlerOutcome, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, recordID)
	}
	return &primary.HandlerOutcome{Applied: true, Detail: "owner phone set to 555-0100"}, nil
}

func (m *mockRecordService) ListComments(ctx context.Context, recordID string) ([]*primary.Comment, error) {
	return m.comments, nil
}

func TestRecordAdapter_Create(t *testing.T) {
	var out bytes.Buffer
	adapter := NewRecordAdapter(&mockRecordService{}, &out)

	err := adapter.Create(context.Background(), primary.CreateRecordRequest{RecordID: "BLD25-00000-00001"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Created record BLD25-00000-00001 (Received)") {
		t.Errorf("expected creation line, got: %s", output)
	}
	if !strings.Contains(output, "Estimated value copy skipped: no parent record found") {
		t.Errorf("expected skipped outcome, got: %s", output)
	}
}

func TestRecordAdapter_Create_Error(t *testing.T) {
	var out bytes.Buffer
	mock := &mockRecordService{
		createRecordFn: func(ctx context.Context, req primary.CreateRecordRequest) (*primary.CreateRecordResponse, error) {
			return nil, errors.New("invalid record id")
		},
	}
	adapter := NewRecordAdapter(mock, &out)

	if err := adapter.Create(context.Background(), primary.CreateRecordRequest{}); err == nil {
		t.Fatal("expected error")
	}
	if out.Len() != 0 {
		t.Errorf("expected no output on error, got: %s", out.String())
	}
}

func TestRecordAdapter_Submit(t *testing.T) {
	var out bytes.Buffer
	adapter := NewRecordAdapter(&mockRecordService{}, &out)

	if err := adapter.Submit(context.Background(), "BLD25-00000-00001"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), "Applicant phone copy: owner phone set to 555-0100") {
		t.Errorf("expected applied outcome, got: %s", out.String())
	}
}

func TestRecordAdapter_List(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var out bytes.Buffer
		adapter := NewRecordAdapter(&mockRecordService{}, &out)

		if err := adapter.List(context.Background(), primary.RecordFilters{}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(out.String(), "No records found") {
			t.Errorf("expected empty message, got: %s", out.String())
		}
	})

	t.Run("rows", func(t *testing.T) {
		var out bytes.Buffer
		mock := &mockRecordService{
			listRecordsFn: func(ctx context.Context, filters primary.RecordFilters) ([]*primary.Record, error) {
				return []*primary.Record{
					{ID: "PMT25-00000-00001", Status: "Pending Fee", FileDate: "2025-05-01"},
					{ID: "PMT25-00000-00002", Status: "Issued", ParentID: "PMT25-00000-00001"},
				}, nil
			},
		}
		adapter := NewRecordAdapter(mock, &out)

		if err := adapter.List(context.Background(), primary.RecordFilters{Status: "Pending Fee"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if mock.lastFilters.Status != "Pending Fee" {
			t.Errorf("expected status filter to pass through, got %q", mock.lastFilters.Status)
		}
		output := out.String()
		if !strings.Contains(output, "PMT25-00000-00001") || !strings.Contains(output, "2025-05-01") {
			t.Errorf("expected first row, got: %s", output)
		}
		if !strings.Contains(output, "PMT25-00000-00002") {
			t.Errorf("expected second row, got: %s", output)
		}
	})
}

func TestRecordAdapter_Show(t *testing.T) {
	var out bytes.Buffer
	mock := &mockRecordService{comments: []*primary.Comment{
		{Body: "Auto-expired due to 'Pending Fee' status older than 30 days", Actor: "System", CreatedAt: "2025-06-30T12:00:00Z"},
	}}
	adapter := NewRecordAdapter(mock, &out)

	if err := adapter.Show(context.Background(), "PMT25-00000-00001"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	output := out.String()
	for _, want := range []string{"Record:  PMT25-00000-00001", "Status:  Pending Fee", "Filed:   2025-05-01", "System: Auto-expired"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

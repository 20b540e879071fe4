package permit

import (
	"strings"
	"testing"
)

func TestCanCopyValueToParent(t *testing.T) {
	tests := []struct {
		name        string
		ctx         CopyValueContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name: "can copy when value and parent present",
			ctx: CopyValueContext{
				RecordID:   "25BLD-00000-00002",
				FieldLabel: "Estimated Value",
				Value:      "125000",
				ParentID:   "25BLD-00000-00001",
			},
			wantAllowed: true,
		},
		{
			name: "cannot copy blank value",
			ctx: CopyValueContext{
				RecordID:   "25BLD-00000-00002",
				FieldLabel: "Estimated Value",
				Value:      "  ",
				ParentID:   "25BLD-00000-00001",
			},
			wantAllowed: false,
			wantReason:  "child 'Estimated Value' is blank on 25BLD-00000-00002",
		},
		{
			name: "cannot copy without parent",
			ctx: CopyValueContext{
				RecordID:   "25BLD-00000-00002",
				FieldLabel: "Estimated Value",
				Value:      "125000",
			},
			wantAllowed: false,
			wantReason:  "no parent record found for 25BLD-00000-00002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCopyValueToParent(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanCopyApplicantPhone(t *testing.T) {
	tests := []struct {
		name        string
		ctx         PhoneCopyContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name: "can copy when owner blank and applicant has phone",
			ctx: PhoneCopyContext{
				RecordID:       "REC",
				OwnerFound:     true,
				ApplicantFound: true,
				ApplicantPhone: "555-0100",
			},
			wantAllowed: true,
		},
		{
			name:        "cannot copy without owner",
			ctx:         PhoneCopyContext{RecordID: "REC", ApplicantFound: true, ApplicantPhone: "555-0100"},
			wantAllowed: false,
			wantReason:  "owner contact not found for REC",
		},
		{
			name:        "owner already has phone",
			ctx:         PhoneCopyContext{RecordID: "REC", OwnerFound: true, OwnerPhone: "555-0199", ApplicantFound: true, ApplicantPhone: "555-0100"},
			wantAllowed: false,
			wantReason:  "owner already has a phone number",
		},
		{
			name:        "cannot copy without applicant",
			ctx:         PhoneCopyContext{RecordID: "REC", OwnerFound: true},
			wantAllowed: false,
			wantReason:  "applicant contact not found for REC",
		},
		{
			name:        "applicant has no phone",
			ctx:         PhoneCopyContext{RecordID: "REC", OwnerFound: true, ApplicantFound: true},
			wantAllowed: false,
			wantReason:  "applicant does not have a phone number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCopyApplicantPhone(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestIsFailedInspection(t *testing.T) {
	tests := []struct {
		name        string
		ctx         InspectionResultContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "fail result proceeds",
			ctx:         InspectionResultContext{RecordID: "REC", InspectionType: "Framing", Result: "Fail", FailResult: "Fail"},
			wantAllowed: true,
		},
		{
			name:        "pass result stops",
			ctx:         InspectionResultContext{RecordID: "REC", InspectionType: "Framing", Result: "Pass", FailResult: "Fail"},
			wantAllowed: false,
			wantReason:  "inspection result is 'Pass', not 'Fail'",
		},
		{
			name:        "missing type stops",
			ctx:         InspectionResultContext{RecordID: "REC", Result: "Fail", FailResult: "Fail"},
			wantAllowed: false,
			wantReason:  "inspection type unknown for REC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsFailedInspection(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanNotifyContact(t *testing.T) {
	if r := CanNotifyContact(NotifyContactContext{RecordID: "REC", ContactFound: true, ContactType: "Owner", Email: "o@example.com"}); !r.Allowed {
		t.Errorf("expected allowed, got %q", r.Reason)
	}

	r := CanNotifyContact(NotifyContactContext{RecordID: "REC"})
	if r.Allowed || r.Reason != "no Owner or Applicant contact found for REC" {
		t.Errorf("unexpected result %+v", r)
	}

	r = CanNotifyContact(NotifyContactContext{RecordID: "REC", ContactFound: true, ContactType: "Applicant"})
	if r.Allowed || r.Reason != "Applicant contact on REC has a blank email, please update it" {
		t.Errorf("unexpected result %+v", r)
	}
	if r.Error() == nil {
		t.Error("denied result should convert to an error")
	}
}

func TestCanExpire(t *testing.T) {
	base := ExpiryContext{
		RecordID:      "REC",
		Status:        "Pending Fee",
		PendingStatus: "Pending Fee",
		HasFileDate:   true,
		ThresholdDays: 30,
	}

	tests := []struct {
		name        string
		mutate      func(*ExpiryContext)
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "31 days pending expires",
			mutate:      func(c *ExpiryContext) { c.AgeDays = 31 },
			wantAllowed: true,
		},
		{
			name:        "exactly threshold does not expire",
			mutate:      func(c *ExpiryContext) { c.AgeDays = 30 },
			wantAllowed: false,
			wantReason:  "REC: status is 'Pending Fee' (expected 'Pending Fee') or is only 30 days old (expected >30)",
		},
		{
			name:        "other status does not expire",
			mutate:      func(c *ExpiryContext) { c.AgeDays = 90; c.Status = "Issued" },
			wantAllowed: false,
			wantReason:  "REC: status is 'Issued' (expected 'Pending Fee') or is only 90 days old (expected >30)",
		},
		{
			name:        "missing file date",
			mutate:      func(c *ExpiryContext) { c.HasFileDate = false },
			wantAllowed: false,
			wantReason:  "REC: file date is missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := base
			tt.mutate(&ctx)
			result := CanExpire(ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestExpiryComment(t *testing.T) {
	want := "Auto-expired due to 'Pending Fee' status older than 30 days"
	if got := ExpiryComment("Pending Fee", 30); got != want {
		t.Errorf("ExpiryComment = %q, want %q", got, want)
	}
}

func TestComposeFailureNotice(t *testing.T) {
	n := ComposeFailureNotice("BLD-2025-001", "Owner", "Fail", 3, "9:00 AM")
	if n.Subject != "Inspection Failed for Record BLD-2025-001" {
		t.Errorf("Subject = %q", n.Subject)
	}
	for _, want := range []string{"Dear Owner,", "record BLD-2025-001", "'Fail' status", "3 business days from now at 9:00 AM"} {
		if !strings.Contains(n.Body, want) {
			t.Errorf("Body missing %q:\n%s", want, n.Body)
		}
	}
}

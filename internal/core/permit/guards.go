package permit

import (
	"fmt"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

func allow() GuardResult { return GuardResult{Allowed: true} }

func deny(format string, args ...any) GuardResult {
	return GuardResult{Allowed: false, Reason: fmt.Sprintf(format, args...)}
}

// CopyValueContext provides context for the estimated value copy guard.
type CopyValueContext struct {
	RecordID   string
	FieldLabel string
	Value      string
	ParentID   string // empty if the record has no parent
}

// CanCopyValueToParent evaluates whether a child field value can be copied to its parent.
// Rules:
// - Child value must not be blank
// - Record must have a parent
func CanCopyValueToParent(ctx CopyValueContext) GuardResult {
	if strings.TrimSpace(ctx.Value) == "" {
		return deny("child '%s' is blank on %s", ctx.FieldLabel, ctx.RecordID)
	}
	if ctx.ParentID == "" {
		return deny("no parent record found for %s", ctx.RecordID)
	}
	return allow()
}

// PhoneCopyContext provides context for the owner phone copy guard.
type PhoneCopyContext struct {
	RecordID       string
	OwnerFound     bool
	OwnerPhone     string
	ApplicantFound bool
	ApplicantPhone string
}

// CanCopyApplicantPhone evaluates whether the applicant's phone should replace the owner's.
// Rules:
// - Owner contact must exist
// - Owner phone must be blank
// - Applicant contact must exist with a phone
func CanCopyApplicantPhone(ctx PhoneCopyContext) GuardResult {
	if !ctx.OwnerFound {
		return deny("owner contact not found for %s", ctx.RecordID)
	}
	if strings.TrimSpace(ctx.OwnerPhone) != "" {
		return deny("owner already has a phone number")
	}
	if !ctx.ApplicantFound {
		return deny("applicant contact not found for %s", ctx.RecordID)
	}
	if strings.TrimSpace(ctx.ApplicantPhone) == "" {
		return deny("applicant does not have a phone number")
	}
	return allow()
}

// InspectionResultContext provides context for the failed inspection guard.
type InspectionResultContext struct {
	RecordID       string
	InspectionType string
	Result         string
	FailResult     string
}

// IsFailedInspection evaluates whether the recorded result requires a re-inspection.
// Rules:
// - Inspection type must be known
// - Result must equal the configured failure result
func IsFailedInspection(ctx InspectionResultContext) GuardResult {
	if strings.TrimSpace(ctx.InspectionType) == "" {
		return deny("inspection type unknown for %s", ctx.RecordID)
	}
	if ctx.Result != ctx.FailResult {
		return deny("inspection result is '%s', not '%s'", ctx.Result, ctx.FailResult)
	}
	return allow()
}

// NotifyContactContext provides context for the failure notice guard.
type NotifyContactContext struct {
	RecordID     string
	ContactFound bool
	ContactType  string
	Email        string
}

// CanNotifyContact evaluates whether a failure notice can be emailed.
// Rules:
// - An Owner or Applicant contact must exist
// - That contact must have an email address
func CanNotifyContact(ctx NotifyContactContext) GuardResult {
	if !ctx.ContactFound {
		return deny("no Owner or Applicant contact found for %s", ctx.RecordID)
	}
	if strings.TrimSpace(ctx.Email) == "" {
		return deny("%s contact on %s has a blank email, please update it", ctx.ContactType, ctx.RecordID)
	}
	return allow()
}

// ExpiryContext provides context for the stale record expiry guard.
type ExpiryContext struct {
	RecordID      string
	Status        string
	PendingStatus string
	HasFileDate   bool
	AgeDays       int
	ThresholdDays int
}

// CanExpire evaluates whether a record has been pending long enough to expire.
// Rules:
// - Record must have a file date
// - Status must equal the pending status
// - Age must be strictly greater than the threshold
func CanExpire(ctx ExpiryContext) GuardResult {
	if !ctx.HasFileDate {
		return deny("%s: file date is missing", ctx.RecordID)
	}
	if ctx.Status != ctx.PendingStatus || ctx.AgeDays <= ctx.ThresholdDays {
		return deny("%s: status is '%s' (expected '%s') or is only %d days old (expected >%d)",
			ctx.RecordID, ctx.Status, ctx.PendingStatus, ctx.AgeDays, ctx.ThresholdDays)
	}
	return allow()
}

// ExpiryComment is the status comment recorded on auto-expired records.
func ExpiryComment(pendingStatus string, thresholdDays int) string {
	return fmt.Sprintf("Auto-expired due to '%s' status older than %d days", pendingStatus, thresholdDays)
}

// FailureNotice contains the composed failure email.
type FailureNotice struct {
	Subject string
	Body    string
}

// ComposeFailureNotice builds the email sent after a failed inspection.
func ComposeFailureNotice(customID, contactType, result string, businessDays int, at string) FailureNotice {
	return FailureNotice{
		Subject: fmt.Sprintf("Inspection Failed for Record %s", customID),
		Body: fmt.Sprintf("Dear %s,\n\nYour inspection for record %s has resulted in a '%s' status.\n\n"+
			"A re-inspection has been scheduled for %d business days from now at %s.\n\nThank you.",
			contactType, customID, result, businessDays, at),
	}
}

package timesheet

import "errors"

var (
	ErrTimesheetNotFound  = errors.New("timesheet not found")
	ErrNotOwner           = errors.New("timesheet belongs to another user")
	ErrNotDraft           = errors.New("only draft timesheets can be modified")
	ErrApprovalNotAllowed = errors.New("not authorized to decide this timesheet")
	ErrNothingToSubmit    = errors.New("no timesheet ids provided")
)

// RuleKind identifies which business rule rejected a create/update request.
type RuleKind string

const (
	KindInvalidField     RuleKind = "invalid_field"
	KindDuplicateEntry   RuleKind = "duplicate_entry"
	KindDailyCapExceeded RuleKind = "daily_cap_exceeded"
	KindNotAssigned      RuleKind = "not_assigned"
)

// RuleViolation is the single pass/fail outcome of the validation pipeline:
// the kind of the first rule that vetoed the request plus a message the
// caller can act on.
type RuleViolation struct {
	Kind    RuleKind
	Message string
}

func (v *RuleViolation) Error() string {
	return v.Message
}

// Violation builds a RuleViolation error.
func Violation(kind RuleKind, message string) error {
	return &RuleViolation{Kind: kind, Message: message}
}

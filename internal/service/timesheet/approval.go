package timesheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/worklog-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/user"
)

// ApprovalPolicy decides whether an actor may approve or reject a
// timesheet. Swapping the implementation is the extension point for
// future rules (reporting lines, delegation).
type ApprovalPolicy interface {
	CanApprove(ctx context.Context, ts timesheet.Timesheet, approverUserID string) (bool, error)
}

// ManagerApprovalPolicy: the approver must be an active manager, the
// timesheet must be submitted, and managers never decide their own entries.
type ManagerApprovalPolicy struct {
	users user.UserRepository
}

func NewManagerApprovalPolicy(users user.UserRepository) *ManagerApprovalPolicy {
	return &ManagerApprovalPolicy{users: users}
}

func (p *ManagerApprovalPolicy) CanApprove(ctx context.Context, ts timesheet.Timesheet, approverUserID string) (bool, error) {
	approver, err := p.users.GetByID(ctx, approverUserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get approver: %w", err)
	}

	if !approver.CanApprove() {
		return false, nil
	}

	if ts.Status != timesheet.StatusSubmitted {
		return false, nil
	}

	return ts.OwnerUserID != approverUserID, nil
}

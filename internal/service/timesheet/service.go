package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/worklog-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/worklog-hq/timesheet-backend-go/internal/pkg/validator"
)

// TxRunner runs fn inside a storage transaction; the ctx passed to fn
// carries the transaction for repositories to pick up.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type ServiceImpl struct {
	tx TxRunner
	timesheet.TimesheetRepository
	validator *Validator
	policy    ApprovalPolicy
}

func NewTimesheetService(tx TxRunner, timesheetRepository timesheet.TimesheetRepository, v *Validator, policy ApprovalPolicy) timesheet.TimesheetService {
	return &ServiceImpl{
		tx:                  tx,
		TimesheetRepository: timesheetRepository,
		validator:           v,
		policy:              policy,
	}
}

// Create runs the validation pipeline and persists a new draft.
func (s *ServiceImpl) Create(ctx context.Context, req timesheet.CreateTimesheetRequest, ownerUserID string) (timesheet.Timesheet, error) {
	if err := s.validator.ValidateCreate(ctx, req, ownerUserID); err != nil {
		return timesheet.Timesheet{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	ts := timesheet.Timesheet{
		OwnerUserID: ownerUserID,
		ProjectID:   req.ProjectID,
		Date:        date,
		HoursWorked: req.HoursWorked,
		Description: req.Description,
		Status:      timesheet.StatusDraft,
	}

	created, err := s.TimesheetRepository.Create(ctx, ts)
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	return s.TimesheetRepository.GetByID(ctx, created.ID)
}

// Update replaces the mutable fields of a draft owned by the actor.
func (s *ServiceImpl) Update(ctx context.Context, id string, req timesheet.UpdateTimesheetRequest, actorUserID string) (timesheet.Timesheet, error) {
	current, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	if current.OwnerUserID != actorUserID {
		return timesheet.Timesheet{}, timesheet.ErrNotOwner
	}
	if current.Status != timesheet.StatusDraft {
		return timesheet.Timesheet{}, timesheet.ErrNotDraft
	}

	if err := s.validator.ValidateUpdate(ctx, req, current); err != nil {
		return timesheet.Timesheet{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	current.ProjectID = req.ProjectID
	current.Date = date
	current.HoursWorked = req.HoursWorked
	current.Description = req.Description

	if err := s.TimesheetRepository.UpdateFields(ctx, current); err != nil {
		return timesheet.Timesheet{}, err
	}

	return s.TimesheetRepository.GetByID(ctx, id)
}

// Delete removes a draft owned by the actor.
func (s *ServiceImpl) Delete(ctx context.Context, id string, actorUserID string) error {
	current, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if current.OwnerUserID != actorUserID {
		return timesheet.ErrNotOwner
	}
	if current.Status != timesheet.StatusDraft {
		return timesheet.ErrNotDraft
	}

	return s.TimesheetRepository.Delete(ctx, id)
}

// Submit transitions the listed drafts to submitted as one atomic batch:
// a guard failure on any id rolls back every transition.
func (s *ServiceImpl) Submit(ctx context.Context, ids []string, actorUserID string) error {
	if len(ids) == 0 {
		return timesheet.ErrNothingToSubmit
	}

	now := time.Now()
	return s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		for _, id := range ids {
			ts, err := s.TimesheetRepository.GetByID(txCtx, id)
			if err != nil {
				return fmt.Errorf("timesheet %s: %w", id, err)
			}
			if ts.OwnerUserID != actorUserID {
				return fmt.Errorf("timesheet %s: %w", id, timesheet.ErrNotOwner)
			}
			if ts.Status != timesheet.StatusDraft {
				return fmt.Errorf("timesheet %s: %w", id, timesheet.ErrNotDraft)
			}

			if err := s.TimesheetRepository.MarkSubmitted(txCtx, id, now); err != nil {
				return fmt.Errorf("timesheet %s: %w", id, err)
			}
		}
		return nil
	})
}

// Approve records a manager decision in favor of a submitted timesheet.
func (s *ServiceImpl) Approve(ctx context.Context, id string, approverUserID string) (timesheet.Timesheet, error) {
	ts, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	allowed, err := s.policy.CanApprove(ctx, ts, approverUserID)
	if err != nil {
		return timesheet.Timesheet{}, err
	}
	if !allowed {
		return timesheet.Timesheet{}, timesheet.ErrApprovalNotAllowed
	}

	if err := s.TimesheetRepository.MarkDecided(ctx, id, timesheet.StatusApproved, approverUserID, time.Now(), nil); err != nil {
		return timesheet.Timesheet{}, err
	}

	return s.TimesheetRepository.GetByID(ctx, id)
}

// Reject records a manager decision against a submitted timesheet. The
// comments requirement is checked before the approval policy is consulted.
func (s *ServiceImpl) Reject(ctx context.Context, id string, comments string, approverUserID string) (timesheet.Timesheet, error) {
	if validator.IsEmpty(comments) {
		return timesheet.Timesheet{}, timesheet.Violation(timesheet.KindInvalidField,
			"Rejection comments are mandatory.")
	}

	ts, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	allowed, err := s.policy.CanApprove(ctx, ts, approverUserID)
	if err != nil {
		return timesheet.Timesheet{}, err
	}
	if !allowed {
		return timesheet.Timesheet{}, timesheet.ErrApprovalNotAllowed
	}

	if err := s.TimesheetRepository.MarkDecided(ctx, id, timesheet.StatusRejected, approverUserID, time.Now(), &comments); err != nil {
		return timesheet.Timesheet{}, err
	}

	return s.TimesheetRepository.GetByID(ctx, id)
}

func (s *ServiceImpl) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	return s.TimesheetRepository.GetByID(ctx, id)
}

func (s *ServiceImpl) ListForUser(ctx context.Context, ownerUserID string) ([]timesheet.Timesheet, error) {
	return s.TimesheetRepository.ListByOwner(ctx, ownerUserID)
}

func (s *ServiceImpl) ListPending(ctx context.Context) ([]timesheet.Timesheet, error) {
	return s.TimesheetRepository.ListPending(ctx)
}

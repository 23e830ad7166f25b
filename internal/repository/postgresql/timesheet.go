package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/worklog-hq/timesheet-backend-go/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

const timesheetColumns = `
	t.id, t.owner_user_id, t.project_id, t.work_date, t.hours_worked,
	t.description, t.status, t.rejection_comments, t.created_at,
	t.submitted_at, t.approved_at, t.approver_id,
	u.name AS owner_name, p.name AS project_name, p.code AS project_code
`

func scanTimesheet(row pgx.Row) (timesheet.Timesheet, error) {
	var t timesheet.Timesheet
	err := row.Scan(
		&t.ID,
		&t.OwnerUserID,
		&t.ProjectID,
		&t.Date,
		&t.HoursWorked,
		&t.Description,
		&t.Status,
		&t.RejectionComments,
		&t.CreatedAt,
		&t.SubmittedAt,
		&t.ApprovedAt,
		&t.ApproverID,
		&t.OwnerName,
		&t.ProjectName,
		&t.ProjectCode,
	)
	return t, err
}

// Create inserts a new draft. The unique index on
// (owner_user_id, project_id, work_date) backstops the duplicate rule
// against concurrent inserts; a violation surfaces as the same
// duplicate-entry error the rule produces.
func (r *timesheetRepositoryImpl) Create(ctx context.Context, t timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (
			id, owner_user_id, project_id, work_date,
			hours_worked, description, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW()
		)
		RETURNING id, created_at
	`

	t.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		t.ID,
		t.OwnerUserID,
		t.ProjectID,
		t.Date,
		t.HoursWorked,
		t.Description,
		t.Status,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timesheet.Timesheet{}, timesheet.Violation(timesheet.KindDuplicateEntry,
				"A timesheet entry already exists for this project and date.")
		}
		return timesheet.Timesheet{}, err
	}

	return t, nil
}

func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets t
		INNER JOIN users u ON t.owner_user_id = u.id
		INNER JOIN projects p ON t.project_id = p.id
		WHERE t.id = $1
	`

	t, err := scanTimesheet(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, err
	}

	return t, nil
}

func (r *timesheetRepositoryImpl) ListByOwner(ctx context.Context, ownerUserID string) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets t
		INNER JOIN users u ON t.owner_user_id = u.id
		INNER JOIN projects p ON t.project_id = p.id
		WHERE t.owner_user_id = $1
		ORDER BY t.work_date DESC, p.name ASC
	`

	rows, err := q.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTimesheets(rows)
}

// ListPending returns submitted timesheets oldest-first so approvers see
// the longest-waiting entries at the top.
func (r *timesheetRepositoryImpl) ListPending(ctx context.Context) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets t
		INNER JOIN users u ON t.owner_user_id = u.id
		INNER JOIN projects p ON t.project_id = p.id
		WHERE t.status = $1
		ORDER BY t.submitted_at ASC
	`

	rows, err := q.Query(ctx, query, timesheet.StatusSubmitted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTimesheets(rows)
}

func collectTimesheets(rows pgx.Rows) ([]timesheet.Timesheet, error) {
	var timesheets []timesheet.Timesheet
	for rows.Next() {
		t, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		timesheets = append(timesheets, t)
	}
	return timesheets, rows.Err()
}

func (r *timesheetRepositoryImpl) ExistsForOwnerProjectDate(ctx context.Context, ownerUserID, projectID string, date time.Time, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM timesheets
			WHERE owner_user_id = $1 AND project_id = $2 AND work_date = $3
			  AND ($4 = '' OR id::text <> $4)
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, ownerUserID, projectID, date, excludeID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *timesheetRepositoryImpl) SumHoursByOwnerAndDate(ctx context.Context, ownerUserID string, date time.Time) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(hours_worked), 0)
		FROM timesheets
		WHERE owner_user_id = $1 AND work_date = $2
	`

	var total float64
	err := q.QueryRow(ctx, query, ownerUserID, date).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *timesheetRepositoryImpl) UpdateFields(ctx context.Context, t timesheet.Timesheet) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET project_id = $2, work_date = $3, hours_worked = $4, description = $5
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, t.ID, t.ProjectID, t.Date, t.HoursWorked, t.Description)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timesheet.Violation(timesheet.KindDuplicateEntry,
				"A timesheet entry already exists for this project and date.")
		}
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return timesheet.ErrTimesheetNotFound
	}
	return nil
}

func (r *timesheetRepositoryImpl) MarkSubmitted(ctx context.Context, id string, submittedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET status = $2, submitted_at = $3
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, timesheet.StatusSubmitted, submittedAt)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return timesheet.ErrTimesheetNotFound
	}
	return nil
}

// MarkDecided writes the decision: approvals clear any earlier rejection
// comments, rejections carry theirs in rejectionComments.
func (r *timesheetRepositoryImpl) MarkDecided(ctx context.Context, id string, status timesheet.Status, approverID string, decidedAt time.Time, rejectionComments *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET status = $2, approver_id = $3, approved_at = $4, rejection_comments = $5
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status, approverID, decidedAt, rejectionComments)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return timesheet.ErrTimesheetNotFound
	}
	return nil
}

func (r *timesheetRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM timesheets
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return timesheet.ErrTimesheetNotFound
	}
	return nil
}

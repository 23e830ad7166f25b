package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/assignment"
	"github.com/worklog-hq/timesheet-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentColumns = `
	a.id, a.user_id, a.project_id, a.start_date, a.end_date, a.is_active, a.created_at,
	u.name AS user_name, p.name AS project_name, p.code AS project_code
`

func scanAssignment(row pgx.Row) (assignment.ProjectAssignment, error) {
	var a assignment.ProjectAssignment
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.ProjectID,
		&a.StartDate,
		&a.EndDate,
		&a.IsActive,
		&a.CreatedAt,
		&a.UserName,
		&a.ProjectName,
		&a.ProjectCode,
	)
	return a, err
}

func (r *assignmentRepositoryImpl) Create(ctx context.Context, a assignment.ProjectAssignment) (assignment.ProjectAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO project_assignments (id, user_id, project_id, start_date, end_date, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW())
		RETURNING is_active, created_at
	`

	a.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		a.ID,
		a.UserID,
		a.ProjectID,
		a.StartDate,
		a.EndDate,
	).Scan(&a.IsActive, &a.CreatedAt)
	if err != nil {
		return assignment.ProjectAssignment{}, err
	}

	return a, nil
}

func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (assignment.ProjectAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM project_assignments a
		INNER JOIN users u ON a.user_id = u.id
		INNER JOIN projects p ON a.project_id = p.id
		WHERE a.id = $1
	`

	a, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assignment.ProjectAssignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.ProjectAssignment{}, err
	}

	return a, nil
}

func (r *assignmentRepositoryImpl) ListActive(ctx context.Context) ([]assignment.ProjectAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM project_assignments a
		INNER JOIN users u ON a.user_id = u.id
		INNER JOIN projects p ON a.project_id = p.id
		WHERE a.is_active = TRUE
		ORDER BY u.name ASC, p.code ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAssignments(rows)
}

func (r *assignmentRepositoryImpl) ListActiveByUser(ctx context.Context, userID string) ([]assignment.ProjectAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM project_assignments a
		INNER JOIN users u ON a.user_id = u.id
		INNER JOIN projects p ON a.project_id = p.id
		WHERE a.is_active = TRUE AND a.user_id = $1
		ORDER BY p.code ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAssignments(rows)
}

func collectAssignments(rows pgx.Rows) ([]assignment.ProjectAssignment, error) {
	var assignments []assignment.ProjectAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *assignmentRepositoryImpl) Update(ctx context.Context, a assignment.ProjectAssignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE project_assignments
		SET start_date = $2, end_date = $3, is_active = $4
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, a.ID, a.StartDate, a.EndDate, a.IsActive)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return assignment.ErrAssignmentNotFound
	}
	return nil
}

func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM project_assignments
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return assignment.ErrAssignmentNotFound
	}
	return nil
}

// IsUserAssignedToProject implements the eligibility check used by the
// timesheet validation rules: an active assignment to an active project
// whose window covers the date.
func (r *assignmentRepositoryImpl) IsUserAssignedToProject(ctx context.Context, userID, projectID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM project_assignments a
			INNER JOIN projects p ON a.project_id = p.id
			WHERE a.user_id = $1 AND a.project_id = $2
			  AND a.is_active = TRUE AND p.is_active = TRUE
			  AND a.start_date <= $3
			  AND (a.end_date IS NULL OR a.end_date >= $3)
		)
	`

	var assigned bool
	err := q.QueryRow(ctx, query, userID, projectID, date).Scan(&assigned)
	if err != nil {
		return false, err
	}
	return assigned, nil
}

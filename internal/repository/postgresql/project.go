package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/project"
	"github.com/worklog-hq/timesheet-backend-go/internal/pkg/database"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (id, code, name, client_name, is_billable, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW())
		RETURNING is_active, created_at
	`

	p.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		p.ID,
		p.Code,
		p.Name,
		p.ClientName,
		p.IsBillable,
	).Scan(&p.IsActive, &p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return project.Project{}, project.ErrProjectCodeExists
		}
		return project.Project{}, err
	}

	return p, nil
}

func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, client_name, is_billable, is_active, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	var p project.Project
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Code,
		&p.Name,
		&p.ClientName,
		&p.IsBillable,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}

	return p, nil
}

func (r *projectRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, client_name, is_billable, is_active, created_at, updated_at
		FROM projects
		WHERE ($1 = FALSE OR is_active = TRUE)
		ORDER BY code ASC
	`

	rows, err := q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		err := rows.Scan(
			&p.ID,
			&p.Code,
			&p.Name,
			&p.ClientName,
			&p.IsBillable,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (r *projectRepositoryImpl) Update(ctx context.Context, p project.Project) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET code = $2, name = $3, client_name = $4, is_billable = $5, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, p.ID, p.Code, p.Name, p.ClientName, p.IsBillable)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return project.ErrProjectCodeExists
		}
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return project.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, active)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return project.ErrProjectNotFound
	}
	return nil
}

package postgres

import (
	"context"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/jackc/pgx/v5"
)

type projectsRepo struct {
	q querier
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO projects (id, name, created_by, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Name, p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	return mapWriteError(err)
}

func (r *projectsRepo) AddMember(ctx context.Context, m domain.ProjectMember) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO project_members (id, project_id, user_id, created_at) VALUES ($1, $2, $3, $4)`,
		m.ID, m.ProjectID, m.UserID, m.CreatedAt,
	)
	return mapWriteError(err)
}

func (r *projectsRepo) ListProjectsByMember(ctx context.Context, userID string, offset, limit int) ([]domain.Project, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id, p.name, p.created_by, p.created_at, p.updated_at
		FROM projects p
		JOIN project_members m ON m.project_id = p.id
		WHERE m.user_id = $1
		ORDER BY p.id DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}

	projects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Project, error) {
		return scanProject(row)
	})
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

func (r *projectsRepo) CountProjectsByMember(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM project_members WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	row := r.q.QueryRow(ctx,
		`SELECT id, name, created_by, created_at, updated_at FROM projects WHERE id = $1`, id,
	)
	p, err := scanProject(row)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func scanProject(row pgx.Row) (domain.Project, error) {
	var p domain.Project
	if err := row.Scan(&p.ID, &p.Name, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Project{}, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

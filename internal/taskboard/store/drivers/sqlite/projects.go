package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
)

type projectsRepo struct {
	db dbtx
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, created_by, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	return mapWriteError(err)
}

func (r *projectsRepo) AddMember(ctx context.Context, m domain.ProjectMember) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO project_members (id, project_id, user_id, created_at) VALUES (?, ?, ?, ?)`,
		m.ID, m.ProjectID, m.UserID, m.CreatedAt,
	)
	return mapWriteError(err)
}

// ListProjectsByMember orders by id; ULIDs sort by creation time.
func (r *projectsRepo) ListProjectsByMember(ctx context.Context, userID string, offset, limit int) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.created_by, p.created_at, p.updated_at
		FROM projects p
		JOIN project_members m ON m.project_id = p.id
		WHERE m.user_id = ?
		ORDER BY p.id DESC
		LIMIT ? OFFSET ?`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]domain.Project, 0, limit)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectsRepo) CountProjectsByMember(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM project_members WHERE user_id = ?`, userID,
	).Scan(&n)
	return n, err
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_by, created_at, updated_at FROM projects WHERE id = ?`, id,
	)
	p, err := scanProject(row)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func scanProject(row rowScanner) (domain.Project, error) {
	var (
		p                    domain.Project
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&p.ID, &p.Name, &p.CreatedBy, &createdAt, &updatedAt); err != nil {
		return domain.Project{}, err
	}
	p.CreatedAt = createdAt.UTC()
	p.UpdatedAt = updatedAt.UTC()
	return p, nil
}

package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
)

type tasksRepo struct {
	db dbtx
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, name, created_by, updated_by, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.CreatedBy, t.UpdatedBy, t.CreatedAt, t.UpdatedAt,
	)
	return mapWriteError(err)
}

func (r *tasksRepo) ListTasks(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, created_by, updated_by, created_at, updated_at
		FROM tasks
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var (
			t                    domain.Task
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedBy, &t.UpdatedBy, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		t.CreatedAt = createdAt.UTC()
		t.UpdatedAt = updatedAt.UTC()
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

package postgres

import (
	"context"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/jackc/pgx/v5"
)

type tasksRepo struct {
	q querier
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO tasks (id, name, created_by, updated_by, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.Name, t.CreatedBy, t.UpdatedBy, t.CreatedAt, t.UpdatedAt,
	)
	return mapWriteError(err)
}

func (r *tasksRepo) ListTasks(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, created_by, updated_by, created_at, updated_at
		FROM tasks
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}

	tasks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Task, error) {
		var t domain.Task
		err := row.Scan(&t.ID, &t.Name, &t.CreatedBy, &t.UpdatedBy, &t.CreatedAt, &t.UpdatedAt)
		t.CreatedAt = t.CreatedAt.UTC()
		t.UpdatedAt = t.UpdatedAt.UTC()
		return t, err
	})
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

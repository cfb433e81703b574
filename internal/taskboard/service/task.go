package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

type TaskService struct {
	Store store.Store
}

// Create stores a task written by createdBy.
func (s *TaskService) Create(ctx context.Context, name, createdBy string) (domain.Task, error) {
	t, err := domain.NewTask(name, createdBy)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.Store.Tasks().CreateTask(ctx, t); err != nil {
		return domain.Task{}, err
	}

	slogx.FromContext(ctx).Info("task created",
		slog.String("task_id", t.ID),
		slog.String("created_by", createdBy),
	)
	return t, nil
}

// List returns every task, newest first.
func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.Store.Tasks().ListTasks(ctx)
}

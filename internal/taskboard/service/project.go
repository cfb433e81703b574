package service

import (
	"context"
	"log/slog"
	"math"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type ProjectService struct {
	Store store.Store
}

// Create stores a project and makes its creator the first member.
func (s *ProjectService) Create(ctx context.Context, name, createdBy string) (domain.Project, error) {
	p, err := domain.NewProject(name, createdBy)
	if err != nil {
		return domain.Project{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Projects().CreateProject(ctx, p); err != nil {
			return err
		}
		return tx.Projects().AddMember(ctx, domain.NewProjectMember(p.ID, createdBy))
	})
	if err != nil {
		return domain.Project{}, err
	}

	slogx.FromContext(ctx).Info("project created",
		slog.String("project_id", p.ID),
		slog.String("created_by", createdBy),
	)
	return p, nil
}

// NormalizePage clamps paging input: page below 1 becomes 1, limit below 1
// becomes DefaultLimit and anything above MaxLimit becomes MaxLimit.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	switch {
	case limit < 1:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return page, limit
}

// pageOffset is the row offset of page. Pages too far out to address
// saturate at math.MaxInt so they read as past the end.
func pageOffset(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// List returns one page of the projects userID belongs to.
func (s *ProjectService) List(ctx context.Context, userID string, page, limit int) (domain.ProjectPage, error) {
	page, limit = NormalizePage(page, limit)

	var (
		projects []domain.Project
		total    int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = s.Store.Projects().ListProjectsByMember(gctx, userID, pageOffset(page, limit), limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.Store.Projects().CountProjectsByMember(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ProjectPage{}, err
	}

	return domain.ProjectPage{
		Projects:   projects,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/baharkarakas/sitecraft-backend/internal/logger"
	"github.com/baharkarakas/sitecraft-backend/internal/metrics"
	"github.com/baharkarakas/sitecraft-backend/internal/models"
	repo "github.com/baharkarakas/sitecraft-backend/internal/repository"
	"github.com/baharkarakas/sitecraft-backend/internal/schema"
	"github.com/baharkarakas/sitecraft-backend/internal/validate"
	"github.com/baharkarakas/sitecraft-backend/internal/worker"
)

// ProjectCache is satisfied by *cache.ProjectCache. Fill must drop the value
// when the version no longer matches, so fills racing a mutation are lost.
type ProjectCache interface {
	Get(ctx context.Context, id int32) (models.Project, bool, error)
	Version(ctx context.Context, id int32) (int64, error)
	Fill(ctx context.Context, p models.Project, version int64) error
	Invalidate(ctx context.Context, id int32) error
}

type ProjectService struct {
	r     repo.Projects
	users repo.Users
	cache ProjectCache
	wp    *worker.Pool
}

// NewProjectService accepts a nil cache and a nil pool; without a pool
// cache fills run inline.
func NewProjectService(r repo.Projects, users repo.Users, c ProjectCache, wp *worker.Pool) *ProjectService {
	return &ProjectService{r: r, users: users, cache: c, wp: wp}
}

func (s *ProjectService) Create(ctx context.Context, input any) (models.Project, error) {
	in, err := schema.ParseInsertProject(input)
	metrics.ObserveValidation(schema.InsertProject.Name(), err)
	if err != nil {
		return models.Project{}, err
	}

	ok, err := s.users.Exists(ctx, in.UserID)
	if err != nil {
		return models.Project{}, fmt.Errorf("check user %d: %w", in.UserID, err)
	}
	if !ok {
		return models.Project{}, validate.Errs{{
			Field: "userId",
			Code:  validate.CodeInvalidRef,
			Msg:   fmt.Sprintf("User %d does not exist", in.UserID),
		}}
	}

	// the foreign key still rejects a user deleted since the check
	p, err := s.r.Create(ctx, in)
	if err != nil {
		return models.Project{}, fmt.Errorf("create project: %w", err)
	}
	metrics.ProjectsCreated.Inc()
	logger.From(ctx).Info("project created", "project_id", p.ID, "user_id", p.UserID)
	return p, nil
}

func (s *ProjectService) Get(ctx context.Context, id int32) (models.Project, error) {
	if s.cache == nil {
		return s.r.GetByID(ctx, id)
	}

	p, ok, err := s.cache.Get(ctx, id)
	switch {
	case err != nil:
		metrics.CacheLookups.WithLabelValues("error").Inc()
		logger.From(ctx).Warn("project cache read", "project_id", id, "err", err)
	case ok:
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return p, nil
	default:
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	// the version is read before the row so a mutation in between voids the fill
	version, verr := s.cache.Version(ctx, id)
	p, err = s.r.GetByID(ctx, id)
	if err != nil {
		return models.Project{}, err
	}
	if verr != nil {
		logger.From(ctx).Warn("project cache version", "project_id", id, "err", verr)
		return p, nil
	}
	s.fill(p, version)
	return p, nil
}

func (s *ProjectService) ListByUser(ctx context.Context, userID int32, limit, offset int) ([]models.Project, error) {
	limit, offset = page(limit, offset)
	return s.r.ListByUser(ctx, userID, limit, offset)
}

// Update applies a partial update; fields absent from input are untouched.
func (s *ProjectService) Update(ctx context.Context, id int32, input any) (models.Project, error) {
	changes, err := schema.ParseProjectChanges(input)
	metrics.ObserveValidation(schema.UpdateProject.Name(), err)
	if err != nil {
		return models.Project{}, err
	}

	p, err := s.r.Update(ctx, id, changes)
	if err != nil {
		return models.Project{}, fmt.Errorf("update project %d: %w", id, err)
	}
	s.invalidate(ctx, id)
	return p, nil
}

func (s *ProjectService) Publish(ctx context.Context, id int32, published bool) (models.Project, error) {
	return s.Update(ctx, id, map[string]any{"isPublished": published})
}

func (s *ProjectService) Delete(ctx context.Context, id int32) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProjectService) invalidate(ctx context.Context, id int32) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		logger.From(ctx).Warn("project cache invalidate", "project_id", id, "err", err)
	}
}

// fill stores p off the request path when the pool has room.
func (s *ProjectService) fill(p models.Project, version int64) {
	job := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.cache.Fill(ctx, p, version); err != nil {
			logger.From(ctx).Warn("project cache fill", "project_id", p.ID, "err", err)
		}
	}
	if s.wp != nil && s.wp.Submit(job) {
		metrics.WorkerQueueDepth.Set(float64(s.wp.Depth()))
		return
	}
	job()
}

package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/sitecraft-backend/internal/models"
	"github.com/baharkarakas/sitecraft-backend/internal/schema"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("already exists")
	ErrInvalidReference = errors.New("invalid reference")
	ErrMissingValue     = errors.New("missing required value")
)

type Users interface {
	Create(ctx context.Context, u models.InsertUser) (models.User, error)
	GetByID(ctx context.Context, id int32) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	Exists(ctx context.Context, id int32) (bool, error)
}

type Projects interface {
	Create(ctx context.Context, p models.InsertProject) (models.Project, error)
	GetByID(ctx context.Context, id int32) (models.Project, error)
	ListByUser(ctx context.Context, userID int32, limit, offset int) ([]models.Project, error)
	// Update applies column assignments; an empty set returns the row unchanged.
	Update(ctx context.Context, id int32, changes []schema.Assignment) (models.Project, error)
	Delete(ctx context.Context, id int32) error
}

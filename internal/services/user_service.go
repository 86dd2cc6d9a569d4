package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/baharkarakas/sitecraft-backend/internal/auth"
	"github.com/baharkarakas/sitecraft-backend/internal/config"
	"github.com/baharkarakas/sitecraft-backend/internal/logger"
	"github.com/baharkarakas/sitecraft-backend/internal/metrics"
	"github.com/baharkarakas/sitecraft-backend/internal/models"
	repo "github.com/baharkarakas/sitecraft-backend/internal/repository"
	"github.com/baharkarakas/sitecraft-backend/internal/schema"
	"github.com/baharkarakas/sitecraft-backend/internal/validate"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

type UserService struct {
	r    repo.Users
	cost int
}

func NewUserService(r repo.Users, c config.Config) *UserService {
	return &UserService{r: r, cost: c.BcryptCost}
}

// Register validates an insert-user payload, hashes the password and stores
// the user. A blank username passes the contract but not registration.
func (s *UserService) Register(ctx context.Context, input any) (models.User, error) {
	in, err := schema.ParseInsertUser(input)
	if err == nil {
		err = validate.Collect(validate.Required("username", in.Username))
	}
	metrics.ObserveValidation(schema.InsertUser.Name(), err)
	if err != nil {
		return models.User{}, err
	}

	// skip the bcrypt cost for names already taken; the unique index has the final say
	if _, err := s.r.GetByUsername(ctx, in.Username); err == nil {
		return models.User{}, fmt.Errorf("register %q: %w", in.Username, repo.ErrConflict)
	} else if !errors.Is(err, repo.ErrNotFound) {
		return models.User{}, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := auth.HashPassword(in.Password, s.cost)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return models.User{}, validate.Errs{{Field: "password", Code: validate.CodeOutOfRange, Msg: "must be at most 72 bytes"}}
	}
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.r.Create(ctx, models.InsertUser{Username: in.Username, Password: hash})
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	metrics.UsersRegistered.Inc()
	logger.From(ctx).Info("user registered", "user_id", u.ID)
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id int32) (models.User, error) {
	return s.r.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	limit, offset = page(limit, offset)
	return s.r.List(ctx, limit, offset)
}

func page(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

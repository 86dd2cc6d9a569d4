// internal/repository/postgres/users_repo.go
package postgres

import (
	"context"

	"github.com/baharkarakas/sitecraft-backend/internal/models"
	"github.com/baharkarakas/sitecraft-backend/internal/repository"
)

type usersRepo struct{ db DBTX }

func NewUsers(db DBTX) repository.Users {
	return &usersRepo{db: db}
}

func (r *usersRepo) Create(ctx context.Context, in models.InsertUser) (models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx,
		`INSERT INTO users(username, password) VALUES($1,$2) RETURNING id, username, password`,
		in.Username, in.Password,
	).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		return models.User{}, mapErr(err)
	}
	return u, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id int32) (models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password FROM users WHERE id=$1`, id,
	).Scan(&u.ID, &u.Username, &u.Password)
	return u, mapErr(err)
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password FROM users WHERE username=$1`, username,
	).Scan(&u.ID, &u.Username, &u.Password)
	return u, mapErr(err)
}

func (r *usersRepo) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, username, password FROM users ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) Exists(ctx context.Context, id int32) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id=$1)`, id).Scan(&exists)
	return exists, mapErr(err)
}

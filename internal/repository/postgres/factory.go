package postgres

import (
	repo "github.com/baharkarakas/sitecraft-backend/internal/repository"
)

type Repositories struct {
	Users    repo.Users
	Projects repo.Projects
}

func NewRepositories(db DBTX) Repositories {
	return Repositories{
		Users:    &usersRepo{db},
		Projects: &projectsRepo{db},
	}
}

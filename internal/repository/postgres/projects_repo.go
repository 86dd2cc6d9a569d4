package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/baharkarakas/sitecraft-backend/internal/models"
	"github.com/baharkarakas/sitecraft-backend/internal/repository"
	"github.com/baharkarakas/sitecraft-backend/internal/schema"
)

const projectColumns = `id, user_id, name, description, html, css, javascript, framework, is_published, created_at, settings`

type projectsRepo struct{ db DBTX }

func NewProjects(db DBTX) repository.Projects {
	return &projectsRepo{db: db}
}

func scanProject(row pgx.Row) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.HTML, &p.CSS, &p.JavaScript,
		&p.Framework, &p.IsPublished, &p.CreatedAt, &p.Settings)
	return p, err
}

// document keeps an absent settings map as SQL NULL rather than JSON null.
func document(doc map[string]any) any {
	if doc == nil {
		return nil
	}
	return doc
}

func (r *projectsRepo) Create(ctx context.Context, in models.InsertProject) (models.Project, error) {
	const q = `
INSERT INTO projects (
  user_id, name, description, html, css, javascript, framework, is_published, settings
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
RETURNING ` + projectColumns
	p, err := scanProject(r.db.QueryRow(ctx, q,
		in.UserID, in.Name, in.Description, in.HTML, in.CSS, in.JavaScript,
		in.Framework, in.IsPublished, document(in.Settings),
	))
	if err != nil {
		return models.Project{}, mapErr(err)
	}
	return p, nil
}

func (r *projectsRepo) GetByID(ctx context.Context, id int32) (models.Project, error) {
	p, err := scanProject(r.db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id=$1`, id))
	if err != nil {
		return models.Project{}, mapErr(err)
	}
	return p, nil
}

func (r *projectsRepo) ListByUser(ctx context.Context, userID int32, limit, offset int) ([]models.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+`
		   FROM projects
		  WHERE user_id=$1
		  ORDER BY created_at DESC, id DESC
		  LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := make([]models.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *projectsRepo) Update(ctx context.Context, id int32, changes []schema.Assignment) (models.Project, error) {
	if len(changes) == 0 {
		return r.GetByID(ctx, id)
	}
	sets := make([]string, len(changes))
	args := make([]any, 0, len(changes)+1)
	args = append(args, id)
	for i, c := range changes {
		sets[i] = fmt.Sprintf("%s=$%d", pgx.Identifier{c.Column}.Sanitize(), i+2)
		args = append(args, c.Value)
	}
	q := `UPDATE projects SET ` + strings.Join(sets, ", ") + ` WHERE id=$1 RETURNING ` + projectColumns

	p, err := scanProject(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		return models.Project{}, mapErr(err)
	}
	return p, nil
}

func (r *projectsRepo) Delete(ctx context.Context, id int32) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id=$1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

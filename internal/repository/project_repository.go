package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/projecthub-backend/internal/models"
	"github.com/ignatzorin/projecthub-backend/internal/pkg/apperror"
	"github.com/ignatzorin/projecthub-backend/internal/repository/common"
)

const projectColumns = `id, position, title, description, company_id, company_name, company_logo,
	skills, categories, duration, budget, status, team_size, applicants, contributors,
	created_at, updated_at`

const upsertProjectQuery = `
	INSERT INTO projects (` + projectColumns + `)
	VALUES (:id, :position, :title, :description, :company_id, :company_name, :company_logo,
		:skills, :categories, :duration, :budget, :status, :team_size, :applicants, :contributors,
		:created_at, :updated_at)
	ON CONFLICT (id) DO UPDATE SET
		position = EXCLUDED.position,
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		company_id = EXCLUDED.company_id,
		company_name = EXCLUDED.company_name,
		company_logo = EXCLUDED.company_logo,
		skills = EXCLUDED.skills,
		categories = EXCLUDED.categories,
		duration = EXCLUDED.duration,
		budget = EXCLUDED.budget,
		status = EXCLUDED.status,
		team_size = EXCLUDED.team_size,
		applicants = EXCLUDED.applicants,
		contributors = EXCLUDED.contributors,
		updated_at = EXCLUDED.updated_at`

// projectRow — строка таблицы projects.
type projectRow struct {
	ID           string         `db:"id"`
	Position     int            `db:"position"`
	Title        string         `db:"title"`
	Description  string         `db:"description"`
	CompanyID    string         `db:"company_id"`
	CompanyName  string         `db:"company_name"`
	CompanyLogo  *string        `db:"company_logo"`
	Skills       pq.StringArray `db:"skills"`
	Categories   pq.StringArray `db:"categories"`
	Duration     string         `db:"duration"`
	Budget       *string        `db:"budget"`
	Status       string         `db:"status"`
	TeamSize     int            `db:"team_size"`
	Applicants   pq.StringArray `db:"applicants"`
	Contributors pq.StringArray `db:"contributors"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r projectRow) toModel() models.Project {
	return models.Project{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Company: models.ProjectCompany{
			ID:   r.CompanyID,
			Name: r.CompanyName,
			Logo: r.CompanyLogo,
		},
		Skills:       nonNil(r.Skills),
		Categories:   nonNil(r.Categories),
		Duration:     r.Duration,
		Budget:       r.Budget,
		Status:       models.ProjectStatus(r.Status),
		TeamSize:     r.TeamSize,
		Applicants:   nonNil(r.Applicants),
		Contributors: []string(r.Contributors),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func newProjectRow(p models.Project, position int) projectRow {
	return projectRow{
		ID:           p.ID,
		Position:     position,
		Title:        p.Title,
		Description:  p.Description,
		CompanyID:    p.Company.ID,
		CompanyName:  p.Company.Name,
		CompanyLogo:  p.Company.Logo,
		Skills:       pq.StringArray(nonNil(p.Skills)),
		Categories:   pq.StringArray(nonNil(p.Categories)),
		Duration:     p.Duration,
		Budget:       p.Budget,
		Status:       string(p.Status),
		TeamSize:     p.TeamSize,
		Applicants:   pq.StringArray(nonNil(p.Applicants)),
		Contributors: pq.StringArray(nonNil(p.Contributors)),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

// ProjectRepository читает каталог проектов из PostgreSQL.
type ProjectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// ListAll возвращает все проекты в порядке каталога.
func (r *ProjectRepository) ListAll(ctx context.Context) ([]models.Project, error) {
	var rows []projectRow
	err := r.db.SelectContext(ctx, &rows, `SELECT `+projectColumns+` FROM projects ORDER BY position, id`)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось загрузить каталог проектов")
	}

	projects := make([]models.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, row.toModel())
	}
	return projects, nil
}

// GetByID возвращает проект по идентификатору.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	row, err := common.GetOne[projectRow](ctx, r.db, apperror.ErrProjectNotFound,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	if errors.Is(err, apperror.ErrProjectNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось загрузить проект")
	}
	project := row.toModel()
	return &project, nil
}

// UpsertAll записывает проекты в одной транзакции, сохраняя их порядок.
func (r *ProjectRepository) UpsertAll(ctx context.Context, projects []models.Project) error {
	err := common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		for i, p := range projects {
			if _, err := tx.NamedExecContext(ctx, upsertProjectQuery, newProjectRow(p, i)); err != nil {
				return fmt.Errorf("project %s: %w", p.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить каталог проектов")
	}
	return nil
}

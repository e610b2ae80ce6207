package pgsql

import (
	"context"
	"fmt"

	"github.com/invoicerhq/invoicer_backend/internal/apperrors"
	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	portsrepo "github.com/invoicerhq/invoicer_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepository {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProjectRepository = (*PgxProjectRepository)(nil)

// CreateProject inserts a project. Both parent references are enforced by
// foreign keys.
func (r *PgxProjectRepository) CreateProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	query := `
		INSERT INTO projects (name, address, status, notes, created_by, company_id, client_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		project.Name,
		project.Address,
		project.Status,
		project.Notes,
		project.CreatedBy,
		project.CompanyID,
		project.ClientID,
	).Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("company %d or client %d does not exist: %w", project.CompanyID, project.ClientID, apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}

// ListProjects retrieves projects, newest first.
func (r *PgxProjectRepository) ListProjects(ctx context.Context, filter portsrepo.ProjectListFilter) ([]domain.Project, error) {
	query := `
		SELECT id, name, address, status, notes, created_by, company_id, client_id, created_at
		FROM projects
	`
	var clauses []string
	var args []any
	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		clauses = append(clauses, fmt.Sprintf("company_id = $%d", len(args)))
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		clauses = append(clauses, fmt.Sprintf("client_id = $%d", len(args)))
	}
	if filter.Query != nil && *filter.Query != "" {
		args = append(args, "%"+*filter.Query+"%")
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	query += whereSQL(clauses) + " ORDER BY created_at DESC, id DESC"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying projects: %w", err)
	}
	defer rows.Close()

	result := []domain.Project{}
	for rows.Next() {
		var project domain.Project
		if err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Address,
			&project.Status,
			&project.Notes,
			&project.CreatedBy,
			&project.CompanyID,
			&project.ClientID,
			&project.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning project row: %w", err)
		}
		result = append(result, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return result, nil
}

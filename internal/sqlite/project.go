package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/coinwave/coinwave/internal/repository"
)

const projectColumns = `
	p.id, p.name, p.slug, p.description, p.tier, p.status, p.chains, p.cost,
	p.avatar_url, p.raised_amount, p.backers_count, p.difficulty,
	p.follower_count, p.is_featured, p.created_at, p.updated_at, p.admin_updated_at`

var projectOrderBy = map[project.Order]string{
	project.OrderFeatured: "p.is_featured DESC, p.tier ASC, p.created_at DESC",
	project.OrderRecent:   "COALESCE(p.admin_updated_at, p.updated_at) DESC, p.created_at DESC",
	project.OrderUpdated:  "p.updated_at DESC",
}

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	chains, err := json.Marshal(nonNilChains(proj.Chains))
	if err != nil {
		return fmt.Errorf("failed to encode chains: %w", err)
	}

	query := `
		INSERT INTO projects (
			id, name, slug, description, tier, status, chains, cost,
			avatar_url, raised_amount, backers_count, difficulty,
			follower_count, is_featured, created_at, updated_at, admin_updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var cost sql.NullString
	if proj.Cost != nil {
		cost = sql.NullString{String: string(*proj.Cost), Valid: true}
	}
	var adminUpdatedAt sql.NullTime
	if proj.AdminUpdatedAt != nil {
		adminUpdatedAt = sql.NullTime{Time: *proj.AdminUpdatedAt, Valid: true}
	}

	_, err = r.db.ExecContext(ctx, query,
		proj.ID,
		proj.Name,
		proj.Slug,
		proj.Description,
		proj.Tier,
		proj.Status,
		string(chains),
		cost,
		proj.AvatarURL,
		proj.RaisedAmount,
		proj.BackersCount,
		proj.Difficulty,
		proj.FollowerCount,
		proj.IsFeatured,
		proj.CreatedAt,
		proj.UpdatedAt,
		adminUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", mapWriteError(err))
	}

	return nil
}

// GetBySlug retrieves a project by its slug
func (r *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*project.Project, error) {
	query := `SELECT` + projectColumns + ` FROM projects p WHERE p.slug = ?`

	proj, err := scanProject(r.db.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return proj, nil
}

// List returns all projects in the given order
func (r *ProjectRepository) List(ctx context.Context, order project.Order) ([]project.Project, error) {
	orderBy, ok := projectOrderBy[order]
	if !ok {
		orderBy = projectOrderBy[project.OrderRecent]
	}
	query := `SELECT` + projectColumns + ` FROM projects p ORDER BY ` + orderBy

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *proj)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner, extra ...any) (*project.Project, error) {
	var (
		proj           project.Project
		chains         string
		cost           sql.NullString
		adminUpdatedAt sql.NullTime
	)
	dest := []any{
		&proj.ID,
		&proj.Name,
		&proj.Slug,
		&proj.Description,
		&proj.Tier,
		&proj.Status,
		&chains,
		&cost,
		&proj.AvatarURL,
		&proj.RaisedAmount,
		&proj.BackersCount,
		&proj.Difficulty,
		&proj.FollowerCount,
		&proj.IsFeatured,
		&proj.CreatedAt,
		&proj.UpdatedAt,
		&adminUpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(chains), &proj.Chains); err != nil {
		return nil, fmt.Errorf("failed to decode chains: %w", err)
	}
	proj.Chains = nonNilChains(proj.Chains)
	if cost.Valid {
		c := project.Cost(cost.String)
		proj.Cost = &c
	}
	if adminUpdatedAt.Valid {
		t := adminUpdatedAt.Time
		proj.AdminUpdatedAt = &t
	}
	return &proj, nil
}

func nonNilChains(chains []string) []string {
	if chains == nil {
		return []string{}
	}
	return chains
}

package postgrest

import (
	"context"

	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/coinwave/coinwave/internal/repository"
)

const projectsTable = "projects"

var projectOrder = map[project.Order]string{
	project.OrderFeatured: "is_featured.desc,tier.asc",
	project.OrderRecent:   "admin_updated_at.desc.nullslast,updated_at.desc",
	project.OrderUpdated:  "updated_at.desc",
}

// ProjectRepository implements project.Repository over the table API.
type ProjectRepository struct {
	client *Client
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(client *Client) *ProjectRepository {
	return &ProjectRepository{client: client}
}

// Create inserts a project row.
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	resp, err := r.client.request(ctx).
		SetHeader("Prefer", "return=minimal").
		SetBody(proj).
		SetErrorResult(&apiError{}).
		Post(restPrefix + projectsTable)
	return r.client.check(resp, err, projectsTable)
}

// GetBySlug fetches one project. An empty result is repository.ErrNotFound.
func (r *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*project.Project, error) {
	var rows []project.Project
	resp, err := r.client.request(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("slug", eq(slug)).
		SetQueryParam("limit", "1").
		SetSuccessResult(&rows).
		SetErrorResult(&apiError{}).
		Get(restPrefix + projectsTable)
	if err := r.client.check(resp, err, projectsTable); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}
	proj := rows[0]
	if proj.Chains == nil {
		proj.Chains = []string{}
	}
	return &proj, nil
}

// List fetches every project in the given order.
func (r *ProjectRepository) List(ctx context.Context, order project.Order) ([]project.Project, error) {
	orderBy, ok := projectOrder[order]
	if !ok {
		orderBy = projectOrder[project.OrderRecent]
	}

	rows := []project.Project{}
	resp, err := r.client.request(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("order", orderBy).
		SetSuccessResult(&rows).
		SetErrorResult(&apiError{}).
		Get(restPrefix + projectsTable)
	if err := r.client.check(resp, err, projectsTable); err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].Chains == nil {
			rows[i].Chains = []string{}
		}
	}
	return rows, nil
}

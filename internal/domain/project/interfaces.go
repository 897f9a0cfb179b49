package project

import "context"

// Repository provides access to stored projects.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	List(ctx context.Context, order Order) ([]Project, error)
}

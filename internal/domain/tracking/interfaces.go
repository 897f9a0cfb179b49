package tracking

import (
	"context"

	"github.com/coinwave/coinwave/internal/domain/activity"
	"github.com/coinwave/coinwave/internal/domain/project"
)

// Repository provides persistence for tracking rows.
type Repository interface {
	Insert(ctx context.Context, t *Tracking) error
	Delete(ctx context.Context, userID, projectID string) error
	ListByUser(ctx context.Context, userID string) ([]TrackedProject, error)
	Exists(ctx context.Context, userID, projectID string) (bool, error)
}

// ProjectLookup resolves projects by slug.
type ProjectLookup interface {
	GetBySlug(ctx context.Context, slug string) (*project.Project, error)
}

// ActivityLogger records user activity.
type ActivityLogger interface {
	LogActivity(ctx context.Context, entry *activity.Entry) error
}

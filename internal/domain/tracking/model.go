package tracking

import (
	"time"

	"github.com/coinwave/coinwave/internal/domain/project"
)

// Status is how a user relates to a project they track.
type Status string

const (
	StatusFarming    Status = "farming"
	StatusInterested Status = "interested"
	StatusCompleted  Status = "completed"
)

// Tracking associates a user with a project.
type Tracking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProjectID string    `json:"project_id"`
	Status    Status    `json:"status"`
	IsPinned  bool      `json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TrackedProject is a tracking row joined with its project.
type TrackedProject struct {
	Tracking
	Project project.Project `json:"project"`
}

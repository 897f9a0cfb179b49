package activity

import "time"

// Type represents the kind of user activity
type Type string

const (
	TypeRegistered     Type = "registered"
	TypeSignedIn       Type = "signed_in"
	TypeFarmingStarted Type = "farming_started"
	TypeFarmingStopped Type = "farming_stopped"
)

// Entry represents an event in a user's activity feed
type Entry struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	ProjectID *string   `json:"project_id,omitempty"`
	Type      Type      `json:"type"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

package user

import (
	"context"

	"github.com/coinwave/coinwave/internal/domain/activity"
)

// Repository provides persistence for users and their sessions.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
	CreateSession(ctx context.Context, sess *Session) error
	GetSession(ctx context.Context, id string) (*Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// SessionProvider resolves the signed-in user for a token.
type SessionProvider interface {
	Resolve(ctx context.Context, token string) (*User, error)
}

// ActivityLogger records user activity.
type ActivityLogger interface {
	LogActivity(ctx context.Context, entry *activity.Entry) error
}

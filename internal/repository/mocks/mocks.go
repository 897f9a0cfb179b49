package mocks

import (
	"context"

	"github.com/coinwave/coinwave/internal/domain/activity"
	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/coinwave/coinwave/internal/domain/tracking"
	"github.com/coinwave/coinwave/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*project.Project, error) {
	args := m.Called(ctx, slug)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context, order project.Order) ([]project.Project, error) {
	args := m.Called(ctx, order)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TrackingRepository is a mock for tracking.Repository.
type TrackingRepository struct {
	mock.Mock
}

func (m *TrackingRepository) Insert(ctx context.Context, t *tracking.Tracking) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TrackingRepository) Delete(ctx context.Context, userID, projectID string) error {
	args := m.Called(ctx, userID, projectID)
	return args.Error(0)
}

func (m *TrackingRepository) ListByUser(ctx context.Context, userID string) ([]tracking.TrackedProject, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]tracking.TrackedProject); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TrackingRepository) Exists(ctx context.Context, userID, projectID string) (bool, error) {
	args := m.Called(ctx, userID, projectID)
	return args.Bool(0), args.Error(1)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityLogger is a mock for the activity sink used by the tracking and user services.
type ActivityLogger struct {
	mock.Mock
}

func (m *ActivityLogger) LogActivity(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// UserRepository is a mock for user.Repository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) CreateSession(ctx context.Context, sess *user.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *UserRepository) GetSession(ctx context.Context, id string) (*user.Session, error) {
	args := m.Called(ctx, id)
	if sess, ok := args.Get(0).(*user.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) DeleteSession(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

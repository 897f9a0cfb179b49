package tracking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/coinwave/coinwave/internal/domain/activity"
	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/coinwave/coinwave/internal/repository"
	"github.com/google/uuid"
)

// Service handles start/stop farming.
type Service struct {
	repo     Repository
	projects ProjectLookup
	activity ActivityLogger
	logger   *slog.Logger
}

// NewService creates a new tracking service. activityLog may be nil.
func NewService(repo Repository, projects ProjectLookup, activityLog ActivityLogger, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		projects: projects,
		activity: activityLog,
		logger:   logger,
	}
}

// StartFarming records that userID farms the project identified by slug.
func (s *Service) StartFarming(ctx context.Context, userID, slug string) (*Tracking, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	proj, err := s.projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &Tracking{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProjectID: proj.ID,
		Status:    StatusFarming,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, t); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrAlreadyTracking
		}
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, project.ErrProjectNotFound
		}
		return nil, fmt.Errorf("starting tracking: %w", err)
	}

	s.logActivity(ctx, userID, proj, activity.TypeFarmingStarted, "Started farming "+proj.Name)
	return t, nil
}

// StopFarming removes the user's tracking row for the project.
// Stopping a project that is not tracked is not an error.
func (s *Service) StopFarming(ctx context.Context, userID, slug string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	proj, err := s.projects.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, proj.ID); err != nil {
		return fmt.Errorf("stopping tracking: %w", err)
	}

	s.logActivity(ctx, userID, proj, activity.TypeFarmingStopped, "Stopped farming "+proj.Name)
	return nil
}

// ListTracked returns the user's tracking rows with their projects.
func (s *Service) ListTracked(ctx context.Context, userID string) ([]TrackedProject, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tracked projects: %w", err)
	}
	if rows == nil {
		rows = []TrackedProject{}
	}
	return rows, nil
}

// IsTracking reports whether the user tracks the project.
func (s *Service) IsTracking(ctx context.Context, userID, projectID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	ok, err := s.repo.Exists(ctx, userID, projectID)
	if err != nil {
		return false, fmt.Errorf("checking tracking: %w", err)
	}
	return ok, nil
}

func (s *Service) logActivity(ctx context.Context, userID string, proj *project.Project, typ activity.Type, summary string) {
	if s.activity == nil {
		return
	}
	projectID := proj.ID
	err := s.activity.LogActivity(ctx, &activity.Entry{
		UserID:    userID,
		ProjectID: &projectID,
		Type:      typ,
		Summary:   summary,
	})
	if err != nil && s.logger != nil {
		s.logger.Warn("activity log failed", "user_id", userID, "project_id", projectID, "error", err)
	}
}

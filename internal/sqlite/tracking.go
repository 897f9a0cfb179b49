package sqlite

import (
	"context"
	"fmt"

	"github.com/coinwave/coinwave/internal/domain/tracking"
)

// TrackingRepository implements tracking.Repository for SQLite
type TrackingRepository struct {
	db *DB
}

// NewTrackingRepository creates a new TrackingRepository
func NewTrackingRepository(db *DB) *TrackingRepository {
	return &TrackingRepository{db: db}
}

// Insert adds a tracking row. A second row for the same user and project
// fails with repository.ErrConflict.
func (r *TrackingRepository) Insert(ctx context.Context, t *tracking.Tracking) error {
	query := `
		INSERT INTO user_project_tracking (id, user_id, project_id, status, is_pinned, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.ProjectID,
		t.Status,
		t.IsPinned,
		t.CreatedAt,
		t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert tracking: %w", mapWriteError(err))
	}

	return nil
}

// Delete removes the row for the user and project, if any
func (r *TrackingRepository) Delete(ctx context.Context, userID, projectID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM user_project_tracking WHERE user_id = ? AND project_id = ?`,
		userID, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete tracking: %w", err)
	}
	return nil
}

// ListByUser returns the user's tracking rows joined with their projects,
// pinned rows first, then newest first.
func (r *TrackingRepository) ListByUser(ctx context.Context, userID string) ([]tracking.TrackedProject, error) {
	query := `
		SELECT` + projectColumns + `,
			t.id, t.user_id, t.project_id, t.status, t.is_pinned, t.created_at, t.updated_at
		FROM user_project_tracking t
		JOIN projects p ON p.id = t.project_id
		WHERE t.user_id = ?
		ORDER BY t.is_pinned DESC, t.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracking: %w", err)
	}
	defer rows.Close()

	tracked := []tracking.TrackedProject{}
	for rows.Next() {
		var tp tracking.TrackedProject
		proj, err := scanProject(rows,
			&tp.ID,
			&tp.UserID,
			&tp.ProjectID,
			&tp.Status,
			&tp.IsPinned,
			&tp.CreatedAt,
			&tp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tracking: %w", err)
		}
		tp.Project = *proj
		tracked = append(tracked, tp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tracking rows: %w", err)
	}

	return tracked, nil
}

// Exists reports whether the user tracks the project
func (r *TrackingRepository) Exists(ctx context.Context, userID, projectID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_project_tracking WHERE user_id = ? AND project_id = ?`,
		userID, projectID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check tracking: %w", err)
	}
	return count > 0, nil
}

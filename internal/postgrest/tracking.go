package postgrest

import (
	"context"

	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/coinwave/coinwave/internal/domain/tracking"
	"github.com/samber/lo"
)

const trackingTable = "user_project_tracking"

// trackingRow is a tracking row with its project embedded by the
// select=*,projects(*) resource embedding.
type trackingRow struct {
	tracking.Tracking
	Project *project.Project `json:"projects"`
}

// TrackingRepository implements tracking.Repository over the table API.
type TrackingRepository struct {
	client *Client
}

// NewTrackingRepository creates a new TrackingRepository
func NewTrackingRepository(client *Client) *TrackingRepository {
	return &TrackingRepository{client: client}
}

// Insert adds a tracking row. A duplicate surfaces as repository.ErrConflict.
func (r *TrackingRepository) Insert(ctx context.Context, t *tracking.Tracking) error {
	resp, err := r.client.request(ctx).
		SetHeader("Prefer", "return=minimal").
		SetBody(t).
		SetErrorResult(&apiError{}).
		Post(restPrefix + trackingTable)
	return r.client.check(resp, err, trackingTable)
}

// Delete removes the row for the user and project, if any.
func (r *TrackingRepository) Delete(ctx context.Context, userID, projectID string) error {
	resp, err := r.client.request(ctx).
		SetQueryParam("user_id", eq(userID)).
		SetQueryParam("project_id", eq(projectID)).
		SetErrorResult(&apiError{}).
		Delete(restPrefix + trackingTable)
	return r.client.check(resp, err, trackingTable)
}

// ListByUser fetches the user's rows joined with their projects.
func (r *TrackingRepository) ListByUser(ctx context.Context, userID string) ([]tracking.TrackedProject, error) {
	var rows []trackingRow
	resp, err := r.client.request(ctx).
		SetQueryParam("select", "*,projects(*)").
		SetQueryParam("user_id", eq(userID)).
		SetQueryParam("order", "is_pinned.desc,created_at.desc").
		SetSuccessResult(&rows).
		SetErrorResult(&apiError{}).
		Get(restPrefix + trackingTable)
	if err := r.client.check(resp, err, trackingTable); err != nil {
		return nil, err
	}

	// rows whose project is hidden from the caller come back with a null embed
	rows = lo.Filter(rows, func(row trackingRow, _ int) bool { return row.Project != nil })
	return lo.Map(rows, func(row trackingRow, _ int) tracking.TrackedProject {
		proj := *row.Project
		if proj.Chains == nil {
			proj.Chains = []string{}
		}
		return tracking.TrackedProject{Tracking: row.Tracking, Project: proj}
	}), nil
}

// Exists reports whether the user tracks the project.
func (r *TrackingRepository) Exists(ctx context.Context, userID, projectID string) (bool, error) {
	var rows []struct {
		ID string `json:"id"`
	}
	resp, err := r.client.request(ctx).
		SetQueryParam("select", "id").
		SetQueryParam("user_id", eq(userID)).
		SetQueryParam("project_id", eq(projectID)).
		SetQueryParam("limit", "1").
		SetSuccessResult(&rows).
		SetErrorResult(&apiError{}).
		Get(restPrefix + trackingTable)
	if err := r.client.check(resp, err, trackingTable); err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

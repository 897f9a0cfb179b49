package postgrest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/coinwave/coinwave/internal/domain/tracking"
	"github.com/coinwave/coinwave/internal/repository"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL, APIKey: "anon-key", Timeout: time.Second}, nil)
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestNewClient_RequiresURL(t *testing.T) {
	_, err := NewClient(Config{}, nil)
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestProjectRepository_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/rest/v1/projects", r.URL.Path)
		require.Equal(t, "*", r.URL.Query().Get("select"))
		require.Equal(t, "is_featured.desc,tier.asc", r.URL.Query().Get("order"))
		require.Equal(t, "anon-key", r.Header.Get("apikey"))
		require.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": "p1", "name": "LayerZero", "slug": "layerzero", "tier": "S", "status": "farming", "chains": []string{"Ethereum"}, "cost": "Free", "is_featured": true},
			{"id": "p2", "name": "Monad", "slug": "monad", "tier": "C", "chains": nil},
		})
	})

	list, err := NewProjectRepository(client).List(context.Background(), project.OrderFeatured)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "layerzero", list[0].Slug)
	require.NotNil(t, list[0].Cost)
	require.Equal(t, project.CostFree, *list[0].Cost)
	require.Nil(t, list[1].Cost)
	require.NotNil(t, list[1].Chains)
	require.Empty(t, list[1].Chains)
}

func TestProjectRepository_GetBySlug(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("slug") {
		case "eq.zksync":
			writeJSON(w, http.StatusOK, []map[string]any{{"id": "p2", "name": "zkSync", "slug": "zksync"}})
		default:
			writeJSON(w, http.StatusOK, []map[string]any{})
		}
	})
	repo := NewProjectRepository(client)

	proj, err := repo.GetBySlug(context.Background(), "zksync")
	require.NoError(t, err)
	require.Equal(t, "p2", proj.ID)

	_, err = repo.GetBySlug(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "boom"})
	})

	_, err := NewProjectRepository(client).List(context.Background(), project.OrderRecent)
	require.ErrorIs(t, err, repository.ErrUnavailable)
}

func TestTrackingRepository_InsertConflict(t *testing.T) {
	var inserted tracking.Tracking
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/rest/v1/user_project_tracking", r.URL.Path)
		calls++
		if calls > 1 {
			writeJSON(w, http.StatusConflict, map[string]string{"code": "23505", "message": "duplicate key value violates unique constraint"})
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&inserted))
		w.WriteHeader(http.StatusCreated)
	})
	repo := NewTrackingRepository(client)

	row := &tracking.Tracking{ID: "t1", UserID: "u1", ProjectID: "p1", Status: tracking.StatusFarming}
	require.NoError(t, repo.Insert(context.Background(), row))
	require.Equal(t, "u1", inserted.UserID)
	require.Equal(t, tracking.StatusFarming, inserted.Status)

	require.ErrorIs(t, repo.Insert(context.Background(), row), repository.ErrConflict)
}

func TestTrackingRepository_InsertUnknownProject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"code": "23503", "message": "violates foreign key constraint"})
	})

	err := NewTrackingRepository(client).Insert(context.Background(), &tracking.Tracking{ID: "t1", UserID: "u1", ProjectID: "nope"})
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

func TestTrackingRepository_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "eq.u1", r.URL.Query().Get("user_id"))
		require.Equal(t, "eq.p1", r.URL.Query().Get("project_id"))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, NewTrackingRepository(client).Delete(context.Background(), "u1", "p1"))
}

func TestTrackingRepository_ListByUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "*,projects(*)", r.URL.Query().Get("select"))
		require.Equal(t, "eq.u1", r.URL.Query().Get("user_id"))
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": "t1", "user_id": "u1", "project_id": "p1", "status": "farming",
				"projects": map[string]any{"id": "p1", "name": "LayerZero", "slug": "layerzero"}},
			{"id": "t2", "user_id": "u1", "project_id": "p9", "status": "farming", "projects": nil},
		})
	})

	rows, err := NewTrackingRepository(client).ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "t1", rows[0].ID)
	require.Equal(t, "layerzero", rows[0].Project.Slug)
	require.NotNil(t, rows[0].Project.Chains)
}

func TestTrackingRepository_Exists(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("project_id") == "eq.p1" {
			writeJSON(w, http.StatusOK, []map[string]string{{"id": "t1"}})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]string{})
	})
	repo := NewTrackingRepository(client)

	ok, err := repo.Exists(context.Background(), "u1", "p1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.Exists(context.Background(), "u1", "p2")
	require.NoError(t, err)
	require.False(t, ok)
}

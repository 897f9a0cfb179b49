package integration_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coinwave/coinwave/internal/domain/activity"
	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/coinwave/coinwave/internal/domain/tracking"
	"github.com/coinwave/coinwave/internal/domain/user"
	"github.com/coinwave/coinwave/internal/postgrest"
	"github.com/coinwave/coinwave/internal/sqlite"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db *sqlite.DB

	projectSvc  *project.Service
	trackingSvc *tracking.Service
	userSvc     *user.Service
	activitySvc *activity.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	_, err = db.RunMigrations(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), nil)
	projectSvc := project.NewService(sqlite.NewProjectRepository(db), nil)

	return &testEnv{
		db:          db,
		projectSvc:  projectSvc,
		trackingSvc: tracking.NewService(sqlite.NewTrackingRepository(db), projectSvc, activitySvc, nil),
		userSvc: user.NewService(
			sqlite.NewUserRepository(db),
			user.NewTokenManager("integration-secret", time.Hour),
			activitySvc,
			nil,
		),
		activitySvc: activitySvc,
	}
}

func (env *testEnv) signedInUser(t *testing.T, email string) *user.User {
	t.Helper()
	ctx := context.Background()
	_, err := env.userSvc.Register(ctx, email, "password123")
	require.NoError(t, err)
	res, err := env.userSvc.SignIn(ctx, email, "password123")
	require.NoError(t, err)
	u, err := env.userSvc.Resolve(ctx, res.Token)
	require.NoError(t, err)
	return u
}

func slugsOf(projects []project.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Slug)
	}
	return out
}

func TestIntegration_SeedAndBrowse(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	created, err := env.projectSvc.Seed(ctx, project.DefaultCatalog())
	require.NoError(t, err)
	require.Equal(t, 7, created)

	again, err := env.projectSvc.Seed(ctx, project.DefaultCatalog())
	require.NoError(t, err)
	require.Zero(t, again)

	res, err := env.projectSvc.Browse(ctx, project.BrowseRequest{
		Order: project.OrderFeatured,
		Criteria: project.Criteria{
			Filters: project.Filters{Status: []string{"farming"}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 7, res.Total)
	require.Equal(t, []string{"layerzero", "monad"}, slugsOf(res.Projects))

	res, err = env.projectSvc.Browse(ctx, project.BrowseRequest{
		Order:    project.OrderRecent,
		Criteria: project.Criteria{Search: "ROLLUP"},
	})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"zksync", "starknet"}, slugsOf(res.Projects))
}

func TestIntegration_FarmingLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.projectSvc.Seed(ctx, project.DefaultCatalog())
	require.NoError(t, err)

	u := env.signedInUser(t, "Farmer@Example.com")
	require.Equal(t, "farmer@example.com", u.Email)

	for _, slug := range []string{"layerzero", "scroll"} {
		_, err := env.trackingSvc.StartFarming(ctx, u.ID, slug)
		require.NoError(t, err)
	}
	_, err = env.trackingSvc.StartFarming(ctx, u.ID, "scroll")
	require.ErrorIs(t, err, tracking.ErrAlreadyTracking)

	tracked, err := env.trackingSvc.ListTracked(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, tracked, 2)
	for _, tp := range tracked {
		require.Equal(t, tracking.StatusFarming, tp.Status)
		require.NotEmpty(t, tp.Project.Name)
	}

	require.NoError(t, env.trackingSvc.StopFarming(ctx, u.ID, "layerzero"))
	require.NoError(t, env.trackingSvc.StopFarming(ctx, u.ID, "layerzero"))

	tracked, err = env.trackingSvc.ListTracked(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, tracked, 1)
	require.Equal(t, "scroll", tracked[0].Project.Slug)

	entries, err := env.activitySvc.Recent(ctx, u.ID, 10)
	require.NoError(t, err)
	types := make([]activity.Type, 0, len(entries))
	for _, e := range entries {
		types = append(types, e.Type)
	}
	require.Equal(t, []activity.Type{
		activity.TypeFarmingStopped,
		activity.TypeFarmingStopped,
		activity.TypeFarmingStarted,
		activity.TypeFarmingStarted,
		activity.TypeSignedIn,
		activity.TypeRegistered,
	}, types)
}

func TestIntegration_UsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.projectSvc.Seed(ctx, project.DefaultCatalog())
	require.NoError(t, err)

	alice := env.signedInUser(t, "alice@example.com")
	bob := env.signedInUser(t, "bob@example.com")

	_, err = env.trackingSvc.StartFarming(ctx, alice.ID, "berachain")
	require.NoError(t, err)

	proj, err := env.projectSvc.GetBySlug(ctx, "berachain")
	require.NoError(t, err)

	tracked, err := env.trackingSvc.IsTracking(ctx, alice.ID, proj.ID)
	require.NoError(t, err)
	require.True(t, tracked)

	tracked, err = env.trackingSvc.IsTracking(ctx, bob.ID, proj.ID)
	require.NoError(t, err)
	require.False(t, tracked)

	bobs, err := env.trackingSvc.ListTracked(ctx, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, bobs)
	require.Empty(t, bobs)
}

func TestIntegration_SignOutEndsSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.userSvc.Register(ctx, "short@example.com", "password123")
	require.NoError(t, err)
	res, err := env.userSvc.SignIn(ctx, "short@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, env.userSvc.SignOut(ctx, res.Token))
	_, err = env.userSvc.Resolve(ctx, res.Token)
	require.ErrorIs(t, err, user.ErrInvalidSession)
}

// A remote project table feeds the same filter engine as the local store.
func TestIntegration_RemoteCatalog(t *testing.T) {
	ctx := context.Background()
	cost := project.CostPaid
	rows := []project.Project{
		{ID: "r1", Name: "Remote Paid", Slug: "remote-paid", Tier: project.TierA, Status: project.StatusTestnet, Cost: &cost},
		{ID: "r2", Name: "Remote Free", Slug: "remote-free", Tier: project.TierB, Status: project.StatusMainnet},
	}

	var gotPath, gotOrder string
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotOrder = r.URL.Query().Get("order")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rows)
	}))
	defer remote.Close()

	client, err := postgrest.NewClient(postgrest.Config{BaseURL: remote.URL, APIKey: "anon", Timeout: time.Second}, nil)
	require.NoError(t, err)
	svc := project.NewService(postgrest.NewProjectRepository(client), nil)

	res, err := svc.Browse(ctx, project.BrowseRequest{
		Order: project.OrderFeatured,
		Criteria: project.Criteria{
			Filters: project.Filters{Cost: []string{"Free"}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "/rest/v1/projects", gotPath)
	require.Equal(t, "is_featured.desc,tier.asc", gotOrder)
	require.Equal(t, 2, res.Total)
	require.Equal(t, []string{"remote-free"}, slugsOf(res.Projects))
	require.Equal(t, []string{}, res.Projects[0].Chains)
}

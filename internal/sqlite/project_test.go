package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/coinwave/coinwave/internal/repository"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func insertProject(t *testing.T, db *DB, proj project.Project) *project.Project {
	t.Helper()
	if proj.ID == "" {
		proj.ID = proj.Slug
	}
	if proj.CreatedAt.IsZero() {
		proj.CreatedAt = time.Now().UTC()
	}
	if proj.UpdatedAt.IsZero() {
		proj.UpdatedAt = proj.CreatedAt
	}
	require.NoError(t, NewProjectRepository(db).Create(context.Background(), &proj))
	return &proj
}

func slugs(projects []project.Project) []string {
	return lo.Map(projects, func(p project.Project, _ int) string { return p.Slug })
}

func TestProjectRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	paid := project.CostPaid
	admin := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	insertProject(t, db, project.Project{
		Name:           "zkSync",
		Slug:           "zksync",
		Description:    "ZK rollup",
		Tier:           project.TierA,
		Status:         project.StatusTestnet,
		Chains:         []string{"Ethereum"},
		Cost:           &paid,
		RaisedAmount:   "$458M",
		BackersCount:   31,
		Difficulty:     project.DifficultyEasy,
		FollowerCount:  10,
		IsFeatured:     true,
		AdminUpdatedAt: &admin,
	})

	got, err := repo.GetBySlug(ctx, "zksync")
	require.NoError(t, err)
	require.Equal(t, "zkSync", got.Name)
	require.Equal(t, []string{"Ethereum"}, got.Chains)
	require.NotNil(t, got.Cost)
	require.Equal(t, project.CostPaid, *got.Cost)
	require.True(t, got.IsFeatured)
	require.Equal(t, project.DifficultyEasy, got.Difficulty)
	require.NotNil(t, got.AdminUpdatedAt)
	require.True(t, admin.Equal(*got.AdminUpdatedAt))
}

func TestProjectRepository_OptionalFields(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	insertProject(t, db, project.Project{Name: "Monad", Slug: "monad", Tier: project.TierC})

	got, err := repo.GetBySlug(ctx, "monad")
	require.NoError(t, err)
	require.Nil(t, got.Cost)
	require.Nil(t, got.AdminUpdatedAt)
	require.NotNil(t, got.Chains)
	require.Empty(t, got.Chains)
}

func TestProjectRepository_GetBySlugNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)

	_, err := repo.GetBySlug(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_DuplicateSlug(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	insertProject(t, db, project.Project{ID: "p1", Name: "LayerZero", Slug: "layerzero"})

	dup := &project.Project{ID: "p2", Name: "LayerZero", Slug: "layerzero", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.ErrorIs(t, repo.Create(ctx, dup), repository.ErrConflict)
}

func TestProjectRepository_ListOrders(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	adminLate := base.Add(72 * time.Hour)

	insertProject(t, db, project.Project{Slug: "alpha", Name: "Alpha", Tier: project.TierB, IsFeatured: true,
		CreatedAt: base, UpdatedAt: base.Add(1 * time.Hour)})
	insertProject(t, db, project.Project{Slug: "beta", Name: "Beta", Tier: project.TierS,
		CreatedAt: base, UpdatedAt: base.Add(2 * time.Hour), AdminUpdatedAt: &adminLate})
	insertProject(t, db, project.Project{Slug: "gamma", Name: "Gamma", Tier: project.TierA, IsFeatured: true,
		CreatedAt: base, UpdatedAt: base.Add(3 * time.Hour)})

	featured, err := repo.List(ctx, project.OrderFeatured)
	require.NoError(t, err)
	require.Equal(t, []string{"gamma", "alpha", "beta"}, slugs(featured))

	recent, err := repo.List(ctx, project.OrderRecent)
	require.NoError(t, err)
	require.Equal(t, []string{"beta", "gamma", "alpha"}, slugs(recent))

	updated, err := repo.List(ctx, project.OrderUpdated)
	require.NoError(t, err)
	require.Equal(t, []string{"gamma", "beta", "alpha"}, slugs(updated))
}

func TestProjectRepository_ListEmpty(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)

	list, err := repo.List(context.Background(), project.OrderRecent)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestProjectService_SeedIntoSQLite(t *testing.T) {
	db := NewTestDB(t)
	svc := project.NewService(NewProjectRepository(db), nil)
	ctx := context.Background()

	catalog := project.DefaultCatalog()
	created, err := svc.Seed(ctx, catalog)
	require.NoError(t, err)
	require.Equal(t, len(catalog), created)

	created, err = svc.Seed(ctx, catalog)
	require.NoError(t, err)
	require.Zero(t, created)
}

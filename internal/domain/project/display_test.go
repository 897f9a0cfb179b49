package project_test

import (
	"testing"
	"time"

	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestChainPreview(t *testing.T) {
	shown, overflow := project.ChainPreview(nil, project.CardChainLimit)
	require.Empty(t, shown)
	require.Zero(t, overflow)

	shown, overflow = project.ChainPreview([]string{"Ethereum", "Arbitrum", "Optimism", "Base"}, project.CardChainLimit)
	require.Equal(t, []string{"Ethereum", "Arbitrum", "Optimism"}, shown)
	require.Equal(t, 1, overflow)

	shown, overflow = project.ChainPreview([]string{"Ethereum", "Arbitrum", "Optimism"}, project.TableChainLimit)
	require.Equal(t, []string{"Ethereum", "Arbitrum"}, shown)
	require.Equal(t, 1, overflow)

	shown, overflow = project.ChainPreview([]string{"Ethereum"}, project.TableChainLimit)
	require.Equal(t, []string{"Ethereum"}, shown)
	require.Zero(t, overflow)
}

func TestStyles_FallBack(t *testing.T) {
	require.Equal(t, project.StyleForTier(project.TierC), project.StyleForTier("Z"))
	require.Equal(t, project.TierC, project.DisplayTier("Z"))
	require.Equal(t, project.TierS, project.DisplayTier(project.TierS))
	require.Equal(t, project.StyleForStatus(project.StatusMainnet), project.StyleForStatus("rugged"))
	require.Equal(t, "text-green-400", project.StyleForStatus(project.StatusFarming).Text)
}

func TestInitial(t *testing.T) {
	require.Equal(t, "L", project.Initial("LayerZero"))
	require.Equal(t, "Ξ", project.Initial("Ξther"))
	require.Equal(t, "", project.Initial(""))
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "0m ago", project.TimeAgo(now, now))
	require.Equal(t, "45m ago", project.TimeAgo(now.Add(-45*time.Minute), now))
	require.Equal(t, "5h ago", project.TimeAgo(now.Add(-5*time.Hour-10*time.Minute), now))
	require.Equal(t, "3d ago", project.TimeAgo(now.Add(-75*time.Hour), now))
	require.Equal(t, "0m ago", project.TimeAgo(now.Add(time.Hour), now))
}

func TestNewView_Defaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := project.Project{Name: "zkSync", Tier: "?", Status: "paused", UpdatedAt: now.Add(-2 * time.Hour)}

	v := project.NewView(p, project.TableChainLimit, now)
	require.Equal(t, "z", v.Initial)
	require.Empty(t, v.ChainsPreview)
	require.Zero(t, v.ChainsOverflow)
	require.NotNil(t, v.Chains)
	require.Equal(t, "TBA", v.RaisedLabel)
	require.Equal(t, project.DifficultyMedium, v.DifficultyLabel)
	require.Equal(t, 66, v.DifficultyPercent)
	require.Equal(t, project.CostFree, v.EffectiveCost)
	require.Equal(t, project.TierC, v.DisplayTier)
	require.Equal(t, "2h ago", v.UpdatedAgo)
}

func TestNewView_AdminUpdatedWins(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	admin := now.Add(-10 * time.Minute)
	p := project.Project{
		Name:           "Starknet",
		UpdatedAt:      now.Add(-72 * time.Hour),
		AdminUpdatedAt: &admin,
		Difficulty:     project.DifficultyHard,
		RaisedAmount:   "$282M",
	}

	v := project.NewView(p, project.CardChainLimit, now)
	require.Equal(t, "10m ago", v.UpdatedAgo)
	require.Equal(t, 100, v.DifficultyPercent)
	require.Equal(t, "$282M", v.RaisedLabel)
}

func TestDifficultyPercent(t *testing.T) {
	require.Equal(t, 33, project.DifficultyPercent(project.DifficultyEasy))
	require.Equal(t, 66, project.DifficultyPercent(project.DifficultyMedium))
	require.Equal(t, 100, project.DifficultyPercent(project.DifficultyHard))
}

// An unset difficulty renders as Medium and its bar matches the label.
func TestNewView_UnsetDifficultyBarMatchesMediumLabel(t *testing.T) {
	v := project.NewView(project.Project{Name: "Monad"}, project.CardChainLimit, time.Now())
	require.Equal(t, project.DifficultyMedium, v.DifficultyLabel)
	require.Equal(t, project.DifficultyPercent(project.DifficultyMedium), v.DifficultyPercent)
	require.NotEqual(t, 100, v.DifficultyPercent)
}

func TestSlugify(t *testing.T) {
	require.Equal(t, "layerzero", project.Slugify("LayerZero"))
	require.Equal(t, "zksync-era", project.Slugify("  zkSync Era! "))
	require.Equal(t, "", project.Slugify("!!!"))
}

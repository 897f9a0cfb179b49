package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/coinwave/coinwave/internal/domain/market"
	"github.com/coinwave/coinwave/internal/domain/project"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

type catalogStub struct {
	projects []project.Project
}

func (c catalogStub) Browse(_ context.Context, req project.BrowseRequest) (*project.BrowseResult, error) {
	return &project.BrowseResult{Projects: project.Apply(c.projects, req.Criteria), Total: len(c.projects)}, nil
}

func (c catalogStub) GetBySlug(_ context.Context, slug string) (*project.Project, error) {
	for _, p := range c.projects {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, project.ErrProjectNotFound
}

var fixedNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func testProjects() []project.Project {
	paid := project.CostPaid
	return []project.Project{
		{ID: "p1", Name: "LayerZero", Slug: "layerzero", Description: "Omnichain protocol", Tier: project.TierS,
			Status: project.StatusFarming, Chains: []string{"Ethereum", "Arbitrum"}, UpdatedAt: fixedNow.Add(-2 * time.Hour)},
		{ID: "p2", Name: "zkSync", Slug: "zksync", Description: "ZK rollup", Tier: project.TierA,
			Status: project.StatusTestnet, Chains: []string{"Ethereum"}, Cost: &paid, UpdatedAt: fixedNow.Add(-48 * time.Hour)},
	}
}

func connect(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := NewServer(Config{
		Services: Services{Catalog: catalogStub{projects: testProjects()}, Market: market.NewService()},
		Now:      func() time.Time { return fixedNow },
	})

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { clientSession.Close() })

	return clientSession
}

func callTool[T any](t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) (T, *sdkmcp.CallToolResult) {
	t.Helper()
	var out T
	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	if res.IsError || res.StructuredContent == nil {
		return out, res
	}
	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &out))
	return out, res
}

func TestTools_Listed(t *testing.T) {
	session := connect(t)

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	require.ElementsMatch(t, []string{"list_airdrops", "get_airdrop", "list_market"}, names)
}

func TestListAirdrops(t *testing.T) {
	session := connect(t)

	out, res := callTool[ListAirdropsOutput](t, session, "list_airdrops", map[string]any{})
	require.False(t, res.IsError)
	require.Equal(t, 2, out.Count)
	require.Equal(t, 2, out.Total)

	out, res = callTool[ListAirdropsOutput](t, session, "list_airdrops", map[string]any{"cost": []string{"Free"}})
	require.False(t, res.IsError)
	require.Equal(t, 1, out.Count)
	require.Equal(t, "layerzero", out.Airdrops[0].Slug)
	require.Equal(t, "Free", out.Airdrops[0].Cost)
	require.Equal(t, "TBA", out.Airdrops[0].RaisedLabel)
	require.Equal(t, "2h ago", out.Airdrops[0].UpdatedAgo)

	out, _ = callTool[ListAirdropsOutput](t, session, "list_airdrops", map[string]any{"search": "ROLLUP"})
	require.Equal(t, 1, out.Count)
	require.Equal(t, "zksync", out.Airdrops[0].Slug)

	out, res = callTool[ListAirdropsOutput](t, session, "list_airdrops", map[string]any{"search": "rollup "})
	require.False(t, res.IsError)
	require.Zero(t, out.Count)
	require.NotNil(t, out.Airdrops)
}

func TestGetAirdrop(t *testing.T) {
	session := connect(t)

	out, res := callTool[GetAirdropOutput](t, session, "get_airdrop", map[string]any{"slug": "zksync"})
	require.False(t, res.IsError)
	require.Equal(t, "zkSync", out.Airdrop.Name)
	require.Equal(t, "Paid", out.Airdrop.Cost)
	require.Equal(t, 66, out.Airdrop.DifficultyPercent)

	_, res = callTool[GetAirdropOutput](t, session, "get_airdrop", map[string]any{"slug": "nope"})
	require.True(t, res.IsError)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	require.Contains(t, text.Text, "AIRDROP_NOT_FOUND")
}

func TestListMarket(t *testing.T) {
	session := connect(t)

	out, res := callTool[ListMarketOutput](t, session, "list_market", map[string]any{"sort": "change"})
	require.False(t, res.IsError)
	require.Equal(t, "change", out.Sort)
	require.NotEmpty(t, out.Quotes)
	for i := 1; i < len(out.Quotes); i++ {
		require.GreaterOrEqual(t, out.Quotes[i-1].Change24h, out.Quotes[i].Change24h)
	}
}

func TestDocResources(t *testing.T) {
	session := connect(t)

	res, err := session.ReadResource(context.Background(), &sdkmcp.ReadResourceParams{URI: "coinwave://docs/filters"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	require.Contains(t, res.Contents[0].Text, "Listing filters")
}

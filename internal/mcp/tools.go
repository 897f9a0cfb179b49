package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coinwave/coinwave/internal/domain/market"
	"github.com/coinwave/coinwave/internal/domain/project"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/samber/lo"
)

func registerTools(server *sdkmcp.Server, svc Services, now func() time.Time) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_airdrops",
		Description: "List airdrop projects, optionally narrowed by search text and status, tier or cost filters",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListAirdropsInput) (*sdkmcp.CallToolResult, ListAirdropsOutput, error) {
		res, err := svc.Catalog.Browse(ctx, project.BrowseRequest{
			Order: project.ParseOrder(in.Order, project.OrderRecent),
			Criteria: project.Criteria{
				Search: in.Search,
				Filters: project.Filters{
					Status: in.Status,
					Tier:   in.Tier,
					Cost:   in.Cost,
				}.Normalized(),
			},
		})
		if err != nil {
			return nil, ListAirdropsOutput{}, MapError(err)
		}

		at := now()
		out := ListAirdropsOutput{
			Airdrops: lo.Map(res.Projects, func(p project.Project, _ int) AirdropSummary { return toAirdropSummary(p, at) }),
			Count:    len(res.Projects),
			Total:    res.Total,
		}
		return &sdkmcp.CallToolResult{
			Content: []sdkmcp.Content{
				&sdkmcp.TextContent{Text: fmt.Sprintf("%d of %d airdrops match", out.Count, out.Total)},
			},
		}, out, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_airdrop",
		Description: "Get one airdrop project by slug",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetAirdropInput) (*sdkmcp.CallToolResult, GetAirdropOutput, error) {
		proj, err := svc.Catalog.GetBySlug(ctx, strings.TrimSpace(in.Slug))
		if err != nil {
			return nil, GetAirdropOutput{}, MapError(err)
		}
		return nil, GetAirdropOutput{Airdrop: toAirdropSummary(*proj, now())}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_market",
		Description: "List the market table sorted by rank, 24h change or 24h volume",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in ListMarketInput) (*sdkmcp.CallToolResult, ListMarketOutput, error) {
		by := market.ParseSort(in.Sort)
		quotes := lo.Map(svc.Market.Quotes(by), func(q market.Quote, _ int) QuoteOutput {
			return QuoteOutput(q)
		})
		return nil, ListMarketOutput{Sort: string(by), Quotes: quotes}, nil
	})
}

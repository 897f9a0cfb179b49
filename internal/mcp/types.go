package mcp

import (
	"time"

	"github.com/coinwave/coinwave/internal/domain/project"
)

type ListAirdropsInput struct {
	Search string   `json:"search,omitempty" jsonschema:"Case-insensitive substring of name or description"`
	Status []string `json:"status,omitempty" jsonschema:"Statuses to include: farming, claiming, testnet, mainnet, completed"`
	Tier   []string `json:"tier,omitempty" jsonschema:"Tiers to include: S, A, B, C"`
	Cost   []string `json:"cost,omitempty" jsonschema:"Costs to include: Free, Paid"`
	Order  string   `json:"order,omitempty" jsonschema:"recent (default), featured or updated"`
}

type ListAirdropsOutput struct {
	Airdrops []AirdropSummary `json:"airdrops" jsonschema:"Matching projects in listing order"`
	Count    int              `json:"count" jsonschema:"Number of matching projects"`
	Total    int              `json:"total" jsonschema:"Number of projects before filtering"`
}

type GetAirdropInput struct {
	Slug string `json:"slug" jsonschema:"Project slug, e.g. layerzero"`
}

type GetAirdropOutput struct {
	Airdrop AirdropSummary `json:"airdrop"`
}

type ListMarketInput struct {
	Sort string `json:"sort,omitempty" jsonschema:"rank (default), change or volume"`
}

type ListMarketOutput struct {
	Sort   string        `json:"sort"`
	Quotes []QuoteOutput `json:"quotes"`
}

// AirdropSummary is the flattened project view returned by tools.
type AirdropSummary struct {
	Slug              string   `json:"slug"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Tier              string   `json:"tier"`
	Status            string   `json:"status"`
	Chains            []string `json:"chains"`
	Cost              string   `json:"cost"`
	RaisedLabel       string   `json:"raised_label"`
	BackersCount      int      `json:"backers_count"`
	DifficultyLabel   string   `json:"difficulty_label"`
	DifficultyPercent int      `json:"difficulty_percent"`
	FollowerCount     int      `json:"follower_count"`
	IsFeatured        bool     `json:"is_featured"`
	UpdatedAgo        string   `json:"updated_ago"`
}

type QuoteOutput struct {
	Rank         int     `json:"rank"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	PriceUSD     float64 `json:"price_usd"`
	Change24h    float64 `json:"change_24h"`
	MarketCapUSD float64 `json:"market_cap_usd"`
	Volume24hUSD float64 `json:"volume_24h_usd"`
}

func toAirdropSummary(p project.Project, now time.Time) AirdropSummary {
	v := project.NewView(p, project.CardChainLimit, now)
	return AirdropSummary{
		Slug:              v.Slug,
		Name:              v.Name,
		Description:       v.Description,
		Tier:              string(v.DisplayTier),
		Status:            string(v.Status),
		Chains:            v.Chains,
		Cost:              string(v.EffectiveCost),
		RaisedLabel:       v.RaisedLabel,
		BackersCount:      v.BackersCount,
		DifficultyLabel:   string(v.DifficultyLabel),
		DifficultyPercent: v.DifficultyPercent,
		FollowerCount:     v.FollowerCount,
		IsFeatured:        v.IsFeatured,
		UpdatedAgo:        v.UpdatedAgo,
	}
}

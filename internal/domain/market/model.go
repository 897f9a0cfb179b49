package market

// Quote is one row of the market table.
type Quote struct {
	Rank         int     `json:"rank"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	PriceUSD     float64 `json:"price_usd"`
	Change24h    float64 `json:"change_24h"`
	MarketCapUSD float64 `json:"market_cap_usd"`
	Volume24hUSD float64 `json:"volume_24h_usd"`
}

// Sort names a market table ordering.
type Sort string

const (
	SortRank   Sort = "rank"
	SortChange Sort = "change"
	SortVolume Sort = "volume"
)

// ParseSort maps a query value to a Sort. Unknown values fall back to rank.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortChange, SortVolume:
		return Sort(s)
	default:
		return SortRank
	}
}

// mockQuotes is the fixed table shown on the market page.
var mockQuotes = []Quote{
	{Rank: 1, Symbol: "BTC", Name: "Bitcoin", PriceUSD: 67234.12, Change24h: 2.31, MarketCapUSD: 1_324_000_000_000, Volume24hUSD: 28_400_000_000},
	{Rank: 2, Symbol: "ETH", Name: "Ethereum", PriceUSD: 3521.44, Change24h: -1.12, MarketCapUSD: 423_000_000_000, Volume24hUSD: 14_900_000_000},
	{Rank: 3, Symbol: "SOL", Name: "Solana", PriceUSD: 172.85, Change24h: 5.67, MarketCapUSD: 79_800_000_000, Volume24hUSD: 3_100_000_000},
	{Rank: 4, Symbol: "ARB", Name: "Arbitrum", PriceUSD: 1.08, Change24h: -3.45, MarketCapUSD: 3_500_000_000, Volume24hUSD: 410_000_000},
	{Rank: 5, Symbol: "OP", Name: "Optimism", PriceUSD: 2.41, Change24h: 0.87, MarketCapUSD: 2_700_000_000, Volume24hUSD: 265_000_000},
	{Rank: 6, Symbol: "ZRO", Name: "LayerZero", PriceUSD: 3.62, Change24h: 7.94, MarketCapUSD: 402_000_000, Volume24hUSD: 188_000_000},
	{Rank: 7, Symbol: "STRK", Name: "Starknet", PriceUSD: 0.71, Change24h: -0.52, MarketCapUSD: 760_000_000, Volume24hUSD: 95_000_000},
	{Rank: 8, Symbol: "ZK", Name: "zkSync", PriceUSD: 0.18, Change24h: 1.49, MarketCapUSD: 660_000_000, Volume24hUSD: 120_000_000},
}

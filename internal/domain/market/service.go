package market

import (
	"slices"
	"sort"
)

// Service serves the market table.
type Service struct {
	quotes []Quote
}

// NewService returns a service over the built-in quote table.
func NewService() *Service {
	return &Service{quotes: mockQuotes}
}

// Quotes returns a copy of the table in the requested order.
// Change and volume sort descending; rank sorts ascending.
func (s *Service) Quotes(by Sort) []Quote {
	out := slices.Clone(s.quotes)
	switch by {
	case SortChange:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Change24h > out[j].Change24h })
	case SortVolume:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Volume24hUSD > out[j].Volume24hUSD })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	}
	return out
}

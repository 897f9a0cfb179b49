package project

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Category names one of the multi-select filter groups.
type Category string

const (
	CategoryStatus Category = "status"
	CategoryTier   Category = "tier"
	CategoryCost   Category = "cost"
)

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryStatus, CategoryTier, CategoryCost:
		return Category(s), nil
	default:
		return "", fmt.Errorf("%w: unknown filter category %q", ErrInvalidInput, s)
	}
}

// Filters holds the active values of each category. Values are OR'ed within a
// category and AND'ed across categories; an empty category restricts nothing.
type Filters struct {
	Status []string `json:"status"`
	Tier   []string `json:"tier"`
	Cost   []string `json:"cost"`
}

// Criteria is everything the listing filter needs besides the projects.
type Criteria struct {
	Search  string  `json:"search"`
	Filters Filters `json:"filters"`
}

// FilterOptions are the values offered for each category.
type FilterOptions struct {
	Status []string `json:"status"`
	Tier   []string `json:"tier"`
	Cost   []string `json:"cost"`
}

// DefaultFilterOptions returns the options shown on the airdrops listing.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		Status: lo.Map(CatalogStatuses, func(s Status, _ int) string { return string(s) }),
		Tier:   lo.Map(Tiers, func(t Tier, _ int) string { return string(t) }),
		Cost:   lo.Map(Costs, func(c Cost, _ int) string { return string(c) }),
	}
}

// Values returns the active values for a category.
func (f Filters) Values(c Category) []string {
	switch c {
	case CategoryStatus:
		return f.Status
	case CategoryTier:
		return f.Tier
	case CategoryCost:
		return f.Cost
	}
	return nil
}

// Toggle removes value from the category when present and appends it
// otherwise. Other categories are left untouched and f is not modified.
func (f Filters) Toggle(c Category, value string) Filters {
	current := f.Values(c)
	var updated []string
	if lo.Contains(current, value) {
		updated = lo.Without(current, value)
	} else {
		updated = append(append(make([]string, 0, len(current)+1), current...), value)
	}

	next := Filters{
		Status: cloneValues(f.Status),
		Tier:   cloneValues(f.Tier),
		Cost:   cloneValues(f.Cost),
	}
	switch c {
	case CategoryStatus:
		next.Status = updated
	case CategoryTier:
		next.Tier = updated
	case CategoryCost:
		next.Cost = updated
	}
	return next
}

// ClearAll empties every category.
func (f Filters) ClearAll() Filters {
	return Filters{Status: []string{}, Tier: []string{}, Cost: []string{}}
}

// Active reports whether any category restricts the result.
func (f Filters) Active() bool {
	return f.Count() > 0
}

// Count returns the number of selected values across categories.
func (f Filters) Count() int {
	return len(f.Status) + len(f.Tier) + len(f.Cost)
}

// Normalized returns a copy with nil categories replaced by empty slices.
func (f Filters) Normalized() Filters {
	return Filters{
		Status: lo.Ternary(f.Status == nil, []string{}, f.Status),
		Tier:   lo.Ternary(f.Tier == nil, []string{}, f.Tier),
		Cost:   lo.Ternary(f.Cost == nil, []string{}, f.Cost),
	}
}

// Apply returns the projects matching c in their input order.
// It never fails and does not modify projects.
func Apply(projects []Project, c Criteria) []Project {
	term := strings.ToLower(c.Search)
	return lo.Filter(projects, func(p Project, _ int) bool {
		return Matches(p, term, c.Filters)
	})
}

// Matches reports whether p passes the search term and every active category.
// term must already be lower-cased.
func Matches(p Project, term string, f Filters) bool {
	if term != "" &&
		!strings.Contains(strings.ToLower(p.Name), term) &&
		!strings.Contains(strings.ToLower(p.Description), term) {
		return false
	}
	if len(f.Status) > 0 && !lo.Contains(f.Status, string(p.Status)) {
		return false
	}
	if len(f.Tier) > 0 && !lo.Contains(f.Tier, string(p.Tier)) {
		return false
	}
	if len(f.Cost) > 0 && !lo.Contains(f.Cost, string(EffectiveCost(p))) {
		return false
	}
	return true
}

func cloneValues(values []string) []string {
	if values == nil {
		return nil
	}
	return append(make([]string, 0, len(values)), values...)
}

package transport

import (
	"net/url"
	"strings"

	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/samber/lo"
)

// parseCriteria reads the listing query: q, repeatable or comma-separated
// status/tier/cost, then toggle=<category>:<value> steps, then clear=1.
func parseCriteria(q url.Values) (project.Criteria, error) {
	filters := project.Filters{
		Status: splitValues(q[string(project.CategoryStatus)]),
		Tier:   splitValues(q[string(project.CategoryTier)]),
		Cost:   splitValues(q[string(project.CategoryCost)]),
	}

	for _, toggle := range q["toggle"] {
		name, value, ok := strings.Cut(toggle, ":")
		if !ok || value == "" {
			return project.Criteria{}, project.ErrInvalidInput
		}
		category, err := project.ParseCategory(name)
		if err != nil {
			return project.Criteria{}, err
		}
		filters = filters.Toggle(category, value)
	}

	if isTruthy(q.Get("clear")) {
		filters = filters.ClearAll()
	}

	return project.Criteria{
		Search:  q.Get("q"),
		Filters: filters.Normalized(),
	}, nil
}

// splitValues flattens comma-separated values and drops duplicates.
func splitValues(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, v := range strings.Split(item, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return lo.Uniq(out)
}

func isTruthy(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes":
		return true
	}
	return false
}

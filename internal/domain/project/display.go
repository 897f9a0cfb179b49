package project

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Chain preview limits used by the listing table and the project card.
const (
	TableChainLimit = 2
	CardChainLimit  = 3
)

// TierStyle is the badge gradient for a tier.
type TierStyle struct {
	Gradient string `json:"gradient"`
}

// StatusStyle is the badge palette for a status.
type StatusStyle struct {
	Background string `json:"bg"`
	Text       string `json:"text"`
	Dot        string `json:"dot"`
}

var tierStyles = map[Tier]TierStyle{
	TierS: {Gradient: "from-yellow-400 to-orange-500"},
	TierA: {Gradient: "from-blue-400 to-cyan-500"},
	TierB: {Gradient: "from-green-400 to-emerald-500"},
	TierC: {Gradient: "from-slate-400 to-slate-500"},
}

var statusStyles = map[Status]StatusStyle{
	StatusFarming:   {Background: "bg-green-500/10", Text: "text-green-400", Dot: "bg-green-400"},
	StatusClaiming:  {Background: "bg-cyan-500/10", Text: "text-cyan-400", Dot: "bg-cyan-400"},
	StatusTestnet:   {Background: "bg-yellow-500/10", Text: "text-yellow-400", Dot: "bg-yellow-400"},
	StatusMainnet:   {Background: "bg-blue-500/10", Text: "text-blue-400", Dot: "bg-blue-400"},
	StatusCompleted: {Background: "bg-slate-500/10", Text: "text-slate-400", Dot: "bg-slate-400"},
}

// StyleForTier returns the tier's style; unknown tiers use the C style.
func StyleForTier(t Tier) TierStyle {
	if s, ok := tierStyles[t]; ok {
		return s
	}
	return tierStyles[TierC]
}

// StyleForStatus returns the status's style; unknown statuses use the mainnet style.
func StyleForStatus(s Status) StatusStyle {
	if st, ok := statusStyles[s]; ok {
		return st
	}
	return statusStyles[StatusMainnet]
}

// DisplayTier returns t when known and C otherwise.
func DisplayTier(t Tier) Tier {
	if _, ok := tierStyles[t]; ok {
		return t
	}
	return TierC
}

// EffectiveCost treats a missing cost as Free.
func EffectiveCost(p Project) Cost {
	if p.Cost == nil || *p.Cost == "" {
		return CostFree
	}
	return *p.Cost
}

// ChainPreview returns at most limit chains and how many were left out.
// A nil chains slice yields no chains and no overflow.
func ChainPreview(chains []string, limit int) ([]string, int) {
	if limit < 0 {
		limit = 0
	}
	if len(chains) <= limit {
		return append([]string{}, chains...), 0
	}
	return append([]string{}, chains[:limit]...), len(chains) - limit
}

// Initial returns the first character of name for the avatar fallback badge.
func Initial(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// RaisedLabel returns the raised amount or "TBA".
func RaisedLabel(p Project) string {
	if p.RaisedAmount == "" {
		return "TBA"
	}
	return p.RaisedAmount
}

// DifficultyLabel returns the difficulty, defaulting to Medium.
func DifficultyLabel(p Project) Difficulty {
	if p.Difficulty == "" {
		return DifficultyMedium
	}
	return p.Difficulty
}

// DifficultyPercent maps a difficulty to the width of its progress bar.
func DifficultyPercent(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 33
	case DifficultyMedium, "":
		return 66
	default:
		return 100
	}
}

// TimeAgo renders the elapsed time between t and now as "Nm ago", "Nh ago" or "Nd ago".
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	default:
		return fmt.Sprintf("%dd ago", int(diff/(24*time.Hour)))
	}
}

// View is a project together with its derived display fields.
type View struct {
	Project
	DisplayTier       Tier        `json:"display_tier"`
	TierStyle         TierStyle   `json:"tier_style"`
	StatusStyle       StatusStyle `json:"status_style"`
	Initial           string      `json:"initial"`
	ChainsPreview     []string    `json:"chains_preview"`
	ChainsOverflow    int         `json:"chains_overflow"`
	RaisedLabel       string      `json:"raised_label"`
	DifficultyLabel   Difficulty  `json:"difficulty_label"`
	DifficultyPercent int         `json:"difficulty_percent"`
	EffectiveCost     Cost        `json:"effective_cost"`
	UpdatedAgo        string      `json:"updated_ago"`
}

// NewView derives the display fields of p as of now.
func NewView(p Project, chainLimit int, now time.Time) View {
	if p.Chains == nil {
		p.Chains = []string{}
	}
	shown, overflow := ChainPreview(p.Chains, chainLimit)
	difficulty := DifficultyLabel(p)
	return View{
		Project:           p,
		DisplayTier:       DisplayTier(p.Tier),
		TierStyle:         StyleForTier(p.Tier),
		StatusStyle:       StyleForStatus(p.Status),
		Initial:           Initial(p.Name),
		ChainsPreview:     shown,
		ChainsOverflow:    overflow,
		RaisedLabel:       RaisedLabel(p),
		DifficultyLabel:   difficulty,
		DifficultyPercent: DifficultyPercent(difficulty),
		EffectiveCost:     EffectiveCost(p),
		UpdatedAgo:        TimeAgo(p.LastUpdated(), now),
	}
}

// NewViews derives display fields for every project.
func NewViews(projects []Project, chainLimit int, now time.Time) []View {
	views := make([]View, 0, len(projects))
	for _, p := range projects {
		views = append(views, NewView(p, chainLimit, now))
	}
	return views
}

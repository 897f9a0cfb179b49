package project

import "time"

// Tier is a project's desirability rank, S highest.
type Tier string

const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// Tiers lists the known tiers in rank order.
var Tiers = []Tier{TierS, TierA, TierB, TierC}

// Status is a lifecycle label. Values outside the known sets are kept as-is.
type Status string

const (
	StatusFarming   Status = "farming"
	StatusClaiming  Status = "claiming"
	StatusTestnet   Status = "testnet"
	StatusMainnet   Status = "mainnet"
	StatusCompleted Status = "completed"
)

// CatalogStatuses is the status vocabulary offered as listing filters.
var CatalogStatuses = []Status{StatusFarming, StatusClaiming, StatusTestnet, StatusMainnet, StatusCompleted}

// TypedStatuses is the narrower vocabulary of the stored project record.
// It is not assumed to be equivalent to CatalogStatuses.
var TypedStatuses = []Status{StatusTestnet, StatusMainnet, StatusCompleted}

// Cost tells whether farming a project requires spending.
type Cost string

const (
	CostFree Cost = "Free"
	CostPaid Cost = "Paid"
)

// Costs lists the known cost values.
var Costs = []Cost{CostFree, CostPaid}

// Difficulty is an editorial estimate of the farming effort.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Project is an airdrop project as delivered by the store.
type Project struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	Description    string     `json:"description"`
	Tier           Tier       `json:"tier"`
	Status         Status     `json:"status"`
	Chains         []string   `json:"chains"`
	Cost           *Cost      `json:"cost,omitempty"`
	AvatarURL      string     `json:"avatar_url,omitempty"`
	RaisedAmount   string     `json:"raised_amount,omitempty"`
	BackersCount   int        `json:"backers_count"`
	Difficulty     Difficulty `json:"difficulty,omitempty"`
	FollowerCount  int        `json:"follower_count"`
	IsFeatured     bool       `json:"is_featured"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	AdminUpdatedAt *time.Time `json:"admin_updated_at,omitempty"`
}

// LastUpdated returns the admin update time when present, else UpdatedAt.
func (p Project) LastUpdated() time.Time {
	if p.AdminUpdatedAt != nil && !p.AdminUpdatedAt.IsZero() {
		return *p.AdminUpdatedAt
	}
	return p.UpdatedAt
}

// Order selects the server-side ordering of a project listing.
type Order string

const (
	// OrderFeatured sorts featured first, then by tier ascending.
	OrderFeatured Order = "featured"
	// OrderRecent sorts by admin update time, falling back to updated_at.
	OrderRecent Order = "recent"
	// OrderUpdated sorts by updated_at descending.
	OrderUpdated Order = "updated"
)

// ParseOrder maps a query value to an Order. Unknown values yield def.
func ParseOrder(s string, def Order) Order {
	switch Order(s) {
	case OrderFeatured, OrderRecent, OrderUpdated:
		return Order(s)
	default:
		return def
	}
}

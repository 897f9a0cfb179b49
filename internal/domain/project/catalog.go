package project

import (
	"context"
	"errors"
	"time"
)

func costPtr(c Cost) *Cost { return &c }

// DefaultCatalog is the starter set of projects written by the seed command.
func DefaultCatalog() []CreateRequest {
	reviewed := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return []CreateRequest{
		{
			Name:          "LayerZero",
			Description:   "Omnichain interoperability protocol",
			Tier:          TierS,
			Status:        StatusFarming,
			Chains:        []string{"Ethereum", "Arbitrum", "Optimism", "Base"},
			Cost:          costPtr(CostFree),
			RaisedAmount:  "$263M",
			BackersCount:  42,
			Difficulty:    DifficultyMedium,
			FollowerCount: 512000,
			IsFeatured:    true,
		},
		{
			Name:           "zkSync",
			Description:    "ZK rollup scaling Ethereum",
			Tier:           TierA,
			Status:         StatusTestnet,
			Chains:         []string{"Ethereum"},
			Cost:           costPtr(CostPaid),
			RaisedAmount:   "$458M",
			BackersCount:   31,
			Difficulty:     DifficultyEasy,
			FollowerCount:  780000,
			IsFeatured:     true,
			AdminUpdatedAt: &reviewed,
		},
		{
			Name:          "Starknet",
			Description:   "Validity rollup powered by Cairo",
			Tier:          TierA,
			Status:        StatusClaiming,
			Chains:        []string{"Ethereum", "Starknet"},
			RaisedAmount:  "$282M",
			BackersCount:  27,
			Difficulty:    DifficultyHard,
			FollowerCount: 430000,
		},
		{
			Name:          "Scroll",
			Description:   "EVM-equivalent zkEVM layer 2",
			Tier:          TierB,
			Status:        StatusMainnet,
			Chains:        []string{"Ethereum", "Scroll"},
			Cost:          costPtr(CostFree),
			BackersCount:  12,
			FollowerCount: 210000,
		},
		{
			Name:          "Berachain",
			Description:   "Proof-of-liquidity EVM chain",
			Tier:          TierB,
			Status:        StatusTestnet,
			Chains:        []string{"Berachain"},
			Cost:          costPtr(CostFree),
			RaisedAmount:  "$142M",
			BackersCount:  19,
			Difficulty:    DifficultyEasy,
			FollowerCount: 350000,
		},
		{
			Name:          "Eigenlayer",
			Description:   "Restaking protocol for Ethereum security",
			Tier:          TierS,
			Status:        StatusCompleted,
			Chains:        []string{"Ethereum"},
			Cost:          costPtr(CostPaid),
			RaisedAmount:  "$164M",
			BackersCount:  23,
			Difficulty:    DifficultyMedium,
			FollowerCount: 290000,
		},
		{
			Name:          "Monad",
			Description:   "Parallel execution layer 1",
			Tier:          TierC,
			Status:        StatusFarming,
			Chains:        []string{},
			FollowerCount: 160000,
		},
	}
}

// Seed creates each project whose slug is not yet taken and returns how many
// were created.
func (s *Service) Seed(ctx context.Context, reqs []CreateRequest) (int, error) {
	created := 0
	for _, req := range reqs {
		if _, err := s.Create(ctx, req); err != nil {
			if errors.Is(err, ErrSlugTaken) {
				continue
			}
			return created, err
		}
		created++
	}
	if s.logger != nil {
		s.logger.Info("catalog seeded", "created", created, "skipped", len(reqs)-created)
	}
	return created, nil
}

package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/coinwave/coinwave/internal/repository"
	"github.com/google/uuid"
)

// Service handles project listing and lookup.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	ID             string
	Name           string
	Slug           string
	Description    string
	Tier           Tier
	Status         Status
	Chains         []string
	Cost           *Cost
	AvatarURL      string
	RaisedAmount   string
	BackersCount   int
	Difficulty     Difficulty
	FollowerCount  int
	IsFeatured     bool
	AdminUpdatedAt *time.Time
}

// BrowseRequest selects and filters a listing.
type BrowseRequest struct {
	Order    Order
	Criteria Criteria
}

// BrowseResult is a filtered listing.
type BrowseResult struct {
	Projects []Project
	// Total is the number of projects before filtering.
	Total int
}

// Create stores a new project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}
	slug := req.Slug
	if strings.TrimSpace(slug) == "" {
		slug = Slugify(req.Name)
	}
	if slug == "" {
		return nil, ErrInvalidInput
	}
	tier := req.Tier
	if tier == "" {
		tier = TierC
	}
	chains := req.Chains
	if chains == nil {
		chains = []string{}
	}

	now := time.Now().UTC()
	proj := &Project{
		ID:             id,
		Name:           req.Name,
		Slug:           slug,
		Description:    req.Description,
		Tier:           tier,
		Status:         req.Status,
		Chains:         chains,
		Cost:           req.Cost,
		AvatarURL:      req.AvatarURL,
		RaisedAmount:   req.RaisedAmount,
		BackersCount:   req.BackersCount,
		Difficulty:     req.Difficulty,
		FollowerCount:  req.FollowerCount,
		IsFeatured:     req.IsFeatured,
		CreatedAt:      now,
		UpdatedAt:      now,
		AdminUpdatedAt: req.AdminUpdatedAt,
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return proj, nil
}

// GetBySlug fetches a project by its routing slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Project, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, ErrProjectNotFound
	}
	proj, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns every project in the requested order.
func (s *Service) List(ctx context.Context, order Order) ([]Project, error) {
	projects, err := s.repo.List(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// Browse fetches the full listing and applies the search and category filters.
// When the fetch fails the filter is not run and the error is returned.
func (s *Service) Browse(ctx context.Context, req BrowseRequest) (*BrowseResult, error) {
	order := req.Order
	if order == "" {
		order = OrderRecent
	}
	projects, err := s.List(ctx, order)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("project fetch failed", "order", order, "error", err)
		}
		return nil, err
	}

	filtered := Apply(projects, req.Criteria)
	if s.logger != nil {
		s.logger.Debug("projects filtered",
			"total", len(projects),
			"matched", len(filtered),
			"search", req.Criteria.Search,
			"filters", req.Criteria.Filters.Count(),
		)
	}
	return &BrowseResult{Projects: filtered, Total: len(projects)}, nil
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a routing slug from a display name.
func Slugify(name string) string {
	slug := slugInvalid.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return strings.Trim(slug, "-")
}

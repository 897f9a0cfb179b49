package transport

import (
	"net/http"
	"net/url"

	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/go-chi/chi/v5"
)

// AirdropList is the listing response.
type AirdropList struct {
	Projects      []project.View        `json:"projects"`
	Count         int                   `json:"count"`
	Total         int                   `json:"total"`
	Search        string                `json:"search"`
	ActiveFilters project.Filters       `json:"active_filters"`
	FilterCount   int                   `json:"filter_count"`
	FilterOptions project.FilterOptions `json:"filter_options"`
}

// AirdropDetail is a single project with the caller's tracking state.
type AirdropDetail struct {
	Project  project.View `json:"project"`
	Tracking bool         `json:"tracking"`
}

func (s *Server) handleListAirdrops(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeError(w, r, s.opts.Logger, err)
		return
	}

	res, err := s.opts.Catalog.Browse(r.Context(), project.BrowseRequest{
		Order:    project.ParseOrder(r.URL.Query().Get("order"), project.OrderRecent),
		Criteria: criteria,
	})
	if err != nil {
		writeError(w, r, s.opts.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, AirdropList{
		Projects:      project.NewViews(res.Projects, project.TableChainLimit, s.opts.Now()),
		Count:         len(res.Projects),
		Total:         res.Total,
		Search:        criteria.Search,
		ActiveFilters: criteria.Filters,
		FilterCount:   criteria.Filters.Count(),
		FilterOptions: project.DefaultFilterOptions(),
	})
}

func (s *Server) handleGetAirdrop(w http.ResponseWriter, r *http.Request) {
	proj, err := s.opts.Catalog.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, s.opts.Logger, err)
		return
	}

	detail := AirdropDetail{Project: project.NewView(*proj, project.CardChainLimit, s.opts.Now())}
	if u, ok := UserFromContext(r.Context()); ok && s.opts.Tracker != nil {
		tracked, err := s.opts.Tracker.IsTracking(r.Context(), u.ID, proj.ID)
		if err != nil {
			writeError(w, r, s.opts.Logger, err)
			return
		}
		detail.Tracking = tracked
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleStartTracking(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromContext(r.Context())
	t, err := s.opts.Tracker.StartFarming(r.Context(), u.ID, chi.URLParam(r, "slug"))
	if err != nil {
		trackingChangesTotal.WithLabelValues("start", "error").Inc()
		writeError(w, r, s.opts.Logger, err)
		return
	}
	trackingChangesTotal.WithLabelValues("start", "ok").Inc()
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleStopTracking(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromContext(r.Context())
	if err := s.opts.Tracker.StopFarming(r.Context(), u.ID, chi.URLParam(r, "slug")); err != nil {
		trackingChangesTotal.WithLabelValues("stop", "error").Inc()
		writeError(w, r, s.opts.Logger, err)
		return
	}
	trackingChangesTotal.WithLabelValues("stop", "ok").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	order := project.ParseOrder(r.URL.Query().Get("order"), project.OrderFeatured)
	projects, err := s.opts.Catalog.List(r.Context(), order)
	if err != nil {
		writeError(w, r, s.opts.Logger, err)
		return
	}
	views := project.NewViews(projects, project.CardChainLimit, s.opts.Now())
	writeJSON(w, http.StatusOK, map[string]any{
		"projects": views,
		"count":    len(views),
	})
}

// handleProjectRedirect keeps the legacy project detail path working.
func (s *Server) handleProjectRedirect(w http.ResponseWriter, r *http.Request) {
	target := "/api/airdrops/" + url.PathEscape(chi.URLParam(r, "slug"))
	http.Redirect(w, r, target, http.StatusPermanentRedirect)
}

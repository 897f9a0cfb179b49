package transport

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/coinwave/coinwave/internal/domain/activity"
	"github.com/coinwave/coinwave/internal/domain/market"
	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/coinwave/coinwave/internal/domain/tracking"
	"github.com/coinwave/coinwave/internal/domain/user"
)

// Plan is shown on the profile page. Billing does not exist yet.
const Plan = "free"

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TrackedView is a tracking row with its project's display fields.
type TrackedView struct {
	tracking.Tracking
	Project project.View `json:"project"`
}

// Dashboard is the signed-in landing response.
type Dashboard struct {
	User          *user.User       `json:"user"`
	Tracked       []TrackedView    `json:"tracked"`
	TrackingCount int              `json:"tracking_count"`
	Activity      []activity.Entry `json:"activity"`
}

// Profile is the account summary.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Plan      string    `json:"plan"`
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (credentials, error) {
	var c credentials
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&c); err != nil {
		return credentials{}, user.ErrInvalidInput
	}
	return c, nil
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	c, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, s.opts.Logger, err)
		return
	}
	u, err := s.opts.Accounts.Register(r.Context(), c.Email, c.Password)
	if err != nil {
		writeError(w, r, s.opts.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	c, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, s.opts.Logger, err)
		return
	}
	res, err := s.opts.Accounts.SignIn(r.Context(), c.Email, c.Password)
	if err != nil {
		loginAttemptsTotal.WithLabelValues("rejected").Inc()
		writeError(w, r, s.opts.Logger, err)
		return
	}
	loginAttemptsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token, _ := TokenFromContext(r.Context())
	if err := s.opts.Accounts.SignOut(r.Context(), token); err != nil {
		writeError(w, r, s.opts.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromContext(r.Context())

	rows, err := s.opts.Tracker.ListTracked(r.Context(), u.ID)
	if err != nil {
		writeError(w, r, s.opts.Logger, err)
		return
	}
	now := s.opts.Now()
	tracked := make([]TrackedView, 0, len(rows))
	for _, row := range rows {
		tracked = append(tracked, TrackedView{
			Tracking: row.Tracking,
			Project:  project.NewView(row.Project, project.CardChainLimit, now),
		})
	}

	entries := []activity.Entry{}
	if s.opts.Activity != nil {
		entries, err = s.opts.Activity.Recent(r.Context(), u.ID, activity.DefaultRecentLimit)
		if err != nil {
			writeError(w, r, s.opts.Logger, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, Dashboard{
		User:          u,
		Tracked:       tracked,
		TrackingCount: len(tracked),
		Activity:      entries,
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, Profile{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		Plan:      Plan,
	})
}

func (s *Server) handleMarket(w http.ResponseWriter, r *http.Request) {
	by := market.ParseSort(r.URL.Query().Get("sort"))
	quotes := s.opts.Market.Quotes(by)
	writeJSON(w, http.StatusOK, map[string]any{
		"sort":   by,
		"quotes": quotes,
	})
}

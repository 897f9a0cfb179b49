package transport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/coinwave/coinwave/internal/domain/tracking"
	"github.com/coinwave/coinwave/internal/domain/user"
	"github.com/coinwave/coinwave/internal/repository"
)

const (
	loginPath    = "/login"
	airdropsPath = "/airdrops"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	// Back names the page a not-found view links back to.
	Back string `json:"back,omitempty"`
	// Redirect names the page an unauthenticated caller is sent to.
	Redirect string `json:"redirect,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, ErrorBody{Error: "unauthorized", Redirect: loginPath})
}

// writeError maps domain and store errors to a status code and body.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, body := classify(err)
	if status >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
			"error", err,
		)
	}
	writeJSON(w, status, body)
}

func classify(err error) (int, ErrorBody) {
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return http.StatusNotFound, ErrorBody{Error: "airdrop not found", Back: airdropsPath}
	case errors.Is(err, tracking.ErrUnauthenticated), errors.Is(err, user.ErrInvalidSession):
		return http.StatusUnauthorized, ErrorBody{Error: "unauthorized", Redirect: loginPath}
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrorBody{Error: err.Error()}
	case errors.Is(err, tracking.ErrAlreadyTracking), errors.Is(err, user.ErrEmailTaken), errors.Is(err, project.ErrSlugTaken):
		return http.StatusConflict, ErrorBody{Error: err.Error()}
	case errors.Is(err, project.ErrInvalidInput), errors.Is(err, user.ErrInvalidInput), errors.Is(err, repository.ErrInvalidInput):
		return http.StatusBadRequest, ErrorBody{Error: err.Error()}
	case errors.Is(err, repository.ErrUnavailable):
		return http.StatusBadGateway, ErrorBody{Error: "store unavailable"}
	default:
		return http.StatusInternalServerError, ErrorBody{Error: "internal error"}
	}
}

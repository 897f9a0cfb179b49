package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/coinwave/coinwave/internal/domain/activity"
	"github.com/coinwave/coinwave/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// Service handles registration, sign-in and session resolution.
type Service struct {
	repo     Repository
	tokens   *TokenManager
	activity ActivityLogger
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new user service. activityLog may be nil.
func NewService(repo Repository, tokens *TokenManager, activityLog ActivityLogger, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		tokens:   tokens,
		activity: activityLog,
		logger:   logger,
		now:      time.Now,
	}
}

// SignInResult carries the issued token.
type SignInResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}

// Register creates an account.
func (s *Service) Register(ctx context.Context, email, password string) (*User, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return nil, fmt.Errorf("%w: email", ErrInvalidInput)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}
	if len(password) > MaxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, MaxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logActivity(ctx, u.ID, activity.TypeRegistered, "Created account")
	return u, nil
}

// SignIn checks credentials and opens a session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	u, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.now().UTC()
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokens.TTL()),
	}
	if err := s.repo.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	token, err := s.tokens.Sign(u.ID, sess.ID, sess.ExpiresAt)
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, u.ID, activity.TypeSignedIn, "Signed in")
	return &SignInResult{Token: token, ExpiresAt: sess.ExpiresAt, User: u}, nil
}

// SignOut revokes the session behind token. Unknown sessions are ignored.
func (s *Service) SignOut(ctx context.Context, token string) error {
	_, sessionID, err := s.tokens.Parse(token)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteSession(ctx, sessionID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// Resolve returns the user of a live session.
func (s *Service) Resolve(ctx context.Context, token string) (*User, error) {
	userID, sessionID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	sess, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if sess.UserID != userID || !s.now().Before(sess.ExpiresAt) {
		return nil, ErrInvalidSession
	}
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return u, nil
}

func (s *Service) logActivity(ctx context.Context, userID string, typ activity.Type, summary string) {
	if s.activity == nil {
		return
	}
	if err := s.activity.LogActivity(ctx, &activity.Entry{UserID: userID, Type: typ, Summary: summary}); err != nil && s.logger != nil {
		s.logger.Warn("activity log failed", "user_id", userID, "type", typ, "error", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/coinwave/coinwave/internal/domain/user"
)

type userKey struct{}
type tokenKey struct{}

// SessionProvider resolves a bearer token to the signed-in user.
type SessionProvider interface {
	Resolve(ctx context.Context, token string) (*user.User, error)
}

// UserFromContext returns the signed-in user, if any.
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userKey{}).(*user.User)
	return u, ok && u != nil
}

// TokenFromContext returns the bearer token the user was resolved from.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok
}

// WithUser attaches a signed-in user to ctx.
func WithUser(ctx context.Context, u *user.User, token string) context.Context {
	ctx = context.WithValue(ctx, userKey{}, u)
	return context.WithValue(ctx, tokenKey{}, token)
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

// AuthMiddleware resolves an optional bearer token. Requests without a valid
// token continue anonymously; RequireUser guards the routes that need one.
func AuthMiddleware(provider SessionProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" || provider == nil {
				next.ServeHTTP(w, r)
				return
			}

			u, err := provider.Resolve(r.Context(), token)
			if err != nil || u == nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u, token)))
		})
	}
}

// RequireUser rejects requests without a signed-in user.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			writeUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

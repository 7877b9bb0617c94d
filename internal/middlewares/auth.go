package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/grenade-guide/internal/logger"
	"github.com/sbilibin2017/grenade-guide/internal/models"
)

// Tokener defines the minimal token extraction interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// IdentityResolver resolves a session token back to its user.
type IdentityResolver interface {
	CurrentIdentity(ctx context.Context, token string) (*models.UserDB, error)
}

// AuthMiddleware returns a middleware that resolves the bearer token to a user
// and stores both in the request context for downstream handlers.
func AuthMiddleware(tokener Tokener, identities IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := identities.CurrentIdentity(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = SetUserToContext(ctx, user)
			ctx = SetTokenToContext(ctx, tokenString)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userKey and tokenKey are unexported context key types
type userKey struct{}
type tokenKey struct{}

// SetUserToContext stores the authenticated user in the context
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext retrieves the authenticated user from the context. Returns nil if not present.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey{}).(*models.UserDB)
	return user
}

// SetTokenToContext stores the raw session token in the context
func SetTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// GetTokenFromContext retrieves the raw session token from the context. Returns "" if not present.
func GetTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

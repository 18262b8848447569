package middleware

import (
	"context"
	"net/http"

	"github.com/forgo/maingen/internal/model"
)

// TokenHeader is the request header carrying the opaque access token
const TokenHeader = "token"

// UserEmailKey is the context key for the authenticated user's email
const UserEmailKey contextKey = "userEmail"

// TokenResolver maps an access token to the email it was issued for
type TokenResolver interface {
	ResolveToken(token string) (string, bool)
}

// Auth returns a middleware that requires a valid access token in the
// token header
func Auth(resolver TokenResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				model.NewUnauthorizedError("missing token").WriteJSON(w)
				return
			}

			email, ok := resolver.ResolveToken(token)
			if !ok {
				model.NewTokenInvalidError().WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserEmail(r.Context(), email)))
		})
	}
}

// WithUserEmail returns a copy of ctx carrying the authenticated email
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, UserEmailKey, email)
}

// GetUserEmail extracts the user email from context
func GetUserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(UserEmailKey).(string); ok {
		return email
	}
	return ""
}

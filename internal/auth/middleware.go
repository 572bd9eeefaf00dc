package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/redmonkez12/go-task-api/internal/httputil"
	"github.com/redmonkez12/go-task-api/internal/logging"
	"github.com/redmonkez12/go-task-api/internal/user"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const PrincipalContextKey ContextKey = "principal"

// WithPrincipal attaches the authenticated principal to ctx
func WithPrincipal(ctx context.Context, principal *user.User) context.Context {
	return context.WithValue(ctx, PrincipalContextKey, principal)
}

// PrincipalFromContext returns the principal attached by RequireAuth
func PrincipalFromContext(ctx context.Context) (*user.User, bool) {
	principal, ok := ctx.Value(PrincipalContextKey).(*user.User)
	return principal, ok && principal != nil
}

// Middleware is the authorization gate for protected routes
type Middleware struct {
	tokenService TokenService
	principals   PrincipalLookup
}

func NewMiddleware(tokenService TokenService, principals PrincipalLookup) *Middleware {
	return &Middleware{
		tokenService: tokenService,
		principals:   principals,
	}
}

// RequireAuth verifies the bearer token, resolves its principal and
// attaches it to the request context
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.GetLoggerFromContext(r.Context())

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			httputil.RespondAppError(w, ErrTokenMissing)
			return
		}

		claims, err := m.tokenService.VerifyToken(token)
		if err != nil {
			logger.Debug("token rejected", "reason", err.Error())
			httputil.RespondAppError(w, ErrTokenRejected)
			return
		}

		principal, err := m.principals.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				logger.Warn("token for unknown principal", "user_id", claims.UserID.String())
				httputil.RespondAppError(w, ErrPrincipalNotFound)
				return
			}
			logger.Error("failed to resolve principal", "user_id", claims.UserID.String(), "error", err.Error())
			httputil.RespondErrorWithCode(w, "Server error", httputil.CodeInternalError, http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header
func bearerToken(header string) (string, bool) {
	rest, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", false
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"cuisinecraft-hub/internal/auth"
	"cuisinecraft-hub/internal/model"

	"github.com/rs/zerolog"
)

// Messages the web client matches on.
const (
	msgAuthorizationMissing = "Forbidden access.Authorization not found"
	msgTokenInvalid         = "error while verifying token "
	msgUnauthorized         = "unauthorized access"
	msgForbidden            = "forbidden access"
	msgRoleLookupFailed     = "internal server error"
)

// TokenVerifier validates a bearer credential.
type TokenVerifier interface {
	Verify(raw string) (*auth.Claims, error)
}

// AdminChecker looks up whether an email holds the admin role.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireToken verifies the bearer token and moves the request identity to
// Authenticated. Requests without a valid token stop here with 401.
func RequireToken(verifier TokenVerifier, logger zerolog.Logger) func(http.Handler) http.Handler {
	logger = logger.With().Str("component", "token_gate").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Debug().Str("url", r.URL.String()).Msg("verifying token")

			header := r.Header.Get("Authorization")
			if header == "" {
				writeJSON(w, http.StatusUnauthorized, model.MessageResponse{Message: msgAuthorizationMissing})
				return
			}

			raw, ok := bearerToken(header)
			if !ok {
				logger.Warn().Str("path", r.URL.Path).Msg("malformed authorization header")
				writeJSON(w, http.StatusUnauthorized, model.MessageResponse{Message: msgTokenInvalid})
				return
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("token verification failed")
				writeJSON(w, http.StatusUnauthorized, model.MessageResponse{Message: msgTokenInvalid})
				return
			}

			id, err := auth.FromContext(r.Context()).Authenticate(claims)
			if err != nil {
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("token gate applied twice")
				writeJSON(w, http.StatusUnauthorized, model.MessageResponse{Message: msgUnauthorized})
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), id)))
		})
	}
}

// RequireAdmin lets the request through only when its authenticated email
// belongs to an admin. It must run after RequireToken.
func RequireAdmin(checker AdminChecker, logger zerolog.Logger) func(http.Handler) http.Handler {
	logger = logger.With().Str("component", "admin_gate").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := auth.FromContext(r.Context())
			if id.State() != auth.Authenticated {
				logger.Warn().Str("state", id.State().String()).Str("path", r.URL.Path).Msg("admin gate reached without authentication")
				writeJSON(w, http.StatusUnauthorized, model.MessageResponse{Message: msgUnauthorized})
				return
			}

			admin, err := checker.IsAdmin(r.Context(), id.Email())
			if err != nil {
				logger.Error().Err(err).Str("email", id.Email()).Msg("role lookup failed")
				writeJSON(w, http.StatusInternalServerError, model.MessageResponse{Message: msgRoleLookupFailed})
				return
			}

			if !admin {
				logger.Warn().Str("email", id.Email()).Str("path", r.URL.Path).Msg("admin access denied")
				writeJSON(w, http.StatusForbidden, model.MessageResponse{Message: msgForbidden})
				return
			}

			authorized, err := id.Authorize()
			if err != nil {
				writeJSON(w, http.StatusForbidden, model.MessageResponse{Message: msgForbidden})
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), authorized)))
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

package handler

import (
	"net/http"
	"strings"

	"cuisinecraft-hub/internal/auth"
	"cuisinecraft-hub/internal/model"
	"cuisinecraft-hub/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const (
	msgUserCreated = "User details inserted successfully."
	msgUserExists  = "User exists already."
	msgForbidden   = "forbidden access"
)

// TokenIssuer signs access tokens for an email.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

// TokenResponse is the body of POST /jwt.
type TokenResponse struct {
	Token string `json:"token"`
}

type tokenRequest struct {
	Email string `json:"email"`
}

// UserHandler handles user registration, roles and token issuance.
type UserHandler struct {
	service service.UserService
	issuer  TokenIssuer
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, issuer TokenIssuer, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		issuer:  issuer,
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// IssueToken handles POST /jwt.
func (h *UserHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		writeServiceError(w, r, model.ErrEmailRequired, "token request without email", h.logger)
		return
	}

	token, err := h.issuer.Issue(email)
	if err != nil {
		writeServiceError(w, r, err, "failed to issue token", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to list users", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// Register handles POST /users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	created, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "failed to register user", h.logger)
		return
	}

	if !created {
		writeMessage(w, http.StatusOK, msgUserExists)
		return
	}
	writeMessage(w, http.StatusCreated, msgUserCreated)
}

// AdminStatus handles GET /user/admin/{email}. Callers may only ask about themselves.
func (h *UserHandler) AdminStatus(w http.ResponseWriter, r *http.Request) {
	email, ok := pathParam(w, r, "email", h.logger)
	if !ok {
		return
	}

	if email != auth.FromContext(r.Context()).Email() {
		h.logger.Warn().Str("email", email).Msg("admin status requested for another user")
		writeMessage(w, http.StatusForbidden, msgForbidden)
		return
	}

	admin, err := h.service.IsAdmin(r.Context(), email)
	if err != nil {
		writeServiceError(w, r, err, "failed to look up admin status", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.AdminStatus{Admin: admin})
}

// Promote handles PATCH /users/admin/{id}.
func (h *UserHandler) Promote(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.PromoteToAdmin(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to promote user", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// Delete handles DELETE /deleteUser/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to delete user", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/grenade-guide/internal/middlewares"
)

// Logouter defines the contract for session revocation.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// NewLogoutHandler returns an HTTP handler that revokes the current session.
// @Summary Log out and revoke the session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse "Session revoked"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middlewares.GetTokenFromContext(r.Context())
		if token == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "authorization required"})
			return
		}

		if err := svc.Logout(r.Context(), token); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Logged out successfully"})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/grenade-guide/internal/services"
)

// Loginer defines the contract for user login.
type Loginer interface {
	Login(ctx context.Context, username, password string, remember bool) (string, error)
}

// LoginRequest represents the login payload
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// example: alice
	Username string `json:"username"`
	// Password
	// example: s3cret
	Password string `json:"password"`
	// Extends the session lifetime when true
	// example: true
	Remember bool `json:"remember"`
}

// LoginResponse carries the issued session token
// swagger:model LoginResponse
type LoginResponse struct {
	// Bearer token for subsequent requests
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in and obtain a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.LoginRequest true "Login payload"
// @Success 200 {object} handlers.LoginResponse "Session token"
// @Failure 401 {object} handlers.ErrorResponse "Unknown user or wrong password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password, req.Remember)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist),
				errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid username or password"})
			default:
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			}
			return
		}

		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{Token: token})
	}
}

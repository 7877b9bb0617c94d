package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/grenade-guide/internal/models"
	"github.com/sbilibin2017/grenade-guide/internal/services"
)

// Registerer defines the contract for user registration.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (*models.UserDB, error)
}

// RegisterRequest represents the user registration payload
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Unique username
	// example: alice
	Username string `json:"username"`
	// Unique email address
	// example: alice@example.com
	Email string `json:"email"`
	// Plain-text password, stored only as a hash
	// example: s3cret
	Password string `json:"password"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.RegisterRequest true "Registration payload"
// @Success 201 {object} models.UserDB "Created user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid payload or duplicate username/email"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if msg, ok := validateRegisterRequest(req); !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
			return
		}

		user, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	}
}

func validateRegisterRequest(req RegisterRequest) (string, bool) {
	if len(req.Username) < minUsernameLen || len(req.Username) > maxUsernameLen {
		return "username must be between 3 and 64 characters", false
	}
	if !strings.Contains(req.Email, "@") {
		return "email is not valid", false
	}
	if len(req.Password) < minPasswordLen {
		return "password must be at least 6 characters", false
	}
	return "", true
}

package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/grenade-guide/internal/jwt"
	"github.com/sbilibin2017/grenade-guide/internal/logger"
	"github.com/sbilibin2017/grenade-guide/internal/models"
	"github.com/sbilibin2017/grenade-guide/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("session is invalid or expired")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash, role string) (*models.UserDB, error)
}

// TokenProvider defines an interface for issuing and parsing session tokens.
type TokenProvider interface {
	Generate(ctx context.Context, userID uuid.UUID, remember bool) (string, uuid.UUID, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
	Expiration(remember bool) time.Duration
}

// SessionStore defines the server-side session registry.
type SessionStore interface {
	Save(ctx context.Context, sessionID, userID uuid.UUID, ttl time.Duration) error
	Get(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// AuthService handles registration, login, and session identity.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	tokens   TokenProvider
	sessions SessionStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenProvider, sessions SessionStore) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		tokens:   tokens,
		sessions: sessions,
	}
}

// Register registers a new user with the default role.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.UserDB, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	stored, err := svc.writer.Save(ctx, username, email, string(hashedPassword), models.RoleUser)
	if err != nil {
		// A concurrent registration can still hit the unique constraint.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return stored, nil
}

// Login authenticates a user and returns a session token. The remember flag
// selects the extended session lifetime.
func (svc *AuthService) Login(ctx context.Context, username, password string, remember bool) (string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, sessionID, err := svc.tokens.Generate(ctx, user.UserID, remember)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	if err := svc.sessions.Save(ctx, sessionID, user.UserID, svc.tokens.Expiration(remember)); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return "", err
	}

	return token, nil
}

// CurrentIdentity resolves a session token back to its user. It returns
// ErrInvalidSession when the token is malformed, expired, or revoked.
func (svc *AuthService) CurrentIdentity(ctx context.Context, token string) (*models.UserDB, error) {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		return nil, ErrInvalidSession
	}

	userID, err := svc.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		logger.Log.Errorw("failed to get session", "err", err)
		return nil, err
	}
	if userID != claims.UserID {
		return nil, ErrInvalidSession
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}

	return user, nil
}

// Logout revokes the session bound to the token. Revoking an already invalid
// token is not an error.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		return nil
	}
	if err := svc.sessions.Delete(ctx, claims.SessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "err", err)
		return err
	}
	return nil
}

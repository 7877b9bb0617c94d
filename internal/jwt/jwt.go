package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the identity bound to a token.
type Claims struct {
	UserID    uuid.UUID // Authenticated user
	SessionID uuid.UUID // Server-side session key, revocable via the session store
}

// JWT provides methods to generate and validate session tokens.
type JWT struct {
	secretKey   string
	exp         time.Duration // Regular session lifetime
	rememberExp time.Duration // Lifetime when the user asked to be remembered
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the signing key.
func WithSecretKey(secretKey string) Opt {
	return func(j *JWT) { j.secretKey = secretKey }
}

// WithExpiration sets the regular session lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.exp = exp }
}

// WithRememberExpiration sets the extended "remember me" session lifetime.
func WithRememberExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.rememberExp = exp }
}

// New creates a new JWT instance.
func New(opts ...Opt) *JWT {
	j := &JWT{
		exp:         time.Hour,
		rememberExp: 30 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Expiration returns the session lifetime for the given remember flag.
func (j *JWT) Expiration(remember bool) time.Duration {
	if remember {
		return j.rememberExp
	}
	return j.exp
}

// Generate creates a signed token for userID bound to a fresh session id.
// The remember flag selects the extended expiration tier.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID, remember bool) (token string, sessionID uuid.UUID, err error) {
	sessionID = uuid.New()

	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"session_id": sessionID.String(),
		"exp":        time.Now().Add(j.Expiration(remember)).Unix(),
		"iat":        time.Now().Unix(),
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.secretKey))
	if err != nil {
		return "", uuid.Nil, err
	}
	return token, sessionID, nil
}

// GetClaims parses the token string and returns its claims if the token is valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, err := parseUUIDClaim(claims, "user_id")
	if err != nil {
		return nil, err
	}
	sessionID, err := parseUUIDClaim(claims, "session_id")
	if err != nil {
		return nil, err
	}

	return &Claims{UserID: userID, SessionID: sessionID}, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

func parseUUIDClaim(claims jwt.MapClaims, name string) (uuid.UUID, error) {
	raw, ok := claims[name].(string)
	if !ok {
		return uuid.Nil, errors.New(name + " not found in token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("invalid " + name + " format")
	}
	return id, nil
}

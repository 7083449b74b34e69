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

var (
	ErrMissingAuthHeader = errors.New("authorization header missing")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrInvalidToken      = errors.New("invalid token")
)

// Claims is what a sender token proves.
type Claims struct {
	SenderID  uuid.UUID
	ExpiresAt time.Time
}

type senderClaims struct {
	SenderID string `json:"sender_id"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 sender tokens.
type JWT struct {
	secretKey []byte
	exp       time.Duration
}

// Option configures a JWT.
type Option func(*JWT)

// WithSecretKey sets the HMAC key.
func WithSecretKey(key string) Option {
	return func(j *JWT) { j.secretKey = []byte(key) }
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) { j.exp = exp }
}

// New creates a JWT. Tokens live for an hour unless WithExpiration says otherwise.
func New(opts ...Option) *JWT {
	j := &JWT{exp: time.Hour}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate signs a token for senderID.
func (j *JWT) Generate(ctx context.Context, senderID uuid.UUID) (string, error) {
	now := time.Now()
	claims := senderClaims{
		SenderID: senderID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   senderID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GetClaims verifies tokenString and returns its claims.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	var claims senderClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	senderID, err := uuid.Parse(claims.SenderID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	out := &Claims{SenderID: senderID}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// Validate reports whether tokenString is a valid sender token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrInvalidAuthHeader
	}

	return parts[1], nil
}

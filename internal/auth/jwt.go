// Package auth signs and verifies bearer tokens and mints the one-time
// tokens mailed out for account verification and password reset.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// oneTimeTokenBytes yields a 40 character hex token.
const oneTimeTokenBytes = 20

var (
	// ErrEmptyToken is returned when no bearer token was supplied.
	ErrEmptyToken = errors.New("auth: empty token")
	// ErrInvalidToken covers malformed, expired, foreign or tampered tokens.
	ErrInvalidToken = errors.New("auth: invalid token")
)

// JWTManager issues HS256 bearer tokens carrying the account id and role.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	parser *jwt.Parser
	now    func() time.Time
}

// NewJWTManager expects a secret of at least 32 bytes; config validation
// enforces that.
func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
		now: time.Now,
	}
}

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// GenerateAccessToken signs a token whose subject is the account id.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, email, role string) (string, error) {
	issued := m.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(m.ttl)),
		},
		Email: email,
		Role:  role,
	})

	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth.GenerateAccessToken: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken returns the account id and role carried by a valid
// token. Every rejection wraps ErrInvalidToken or ErrEmptyToken.
func (m *JWTManager) ValidateAccessToken(raw string) (uuid.UUID, string, error) {
	if raw == "" {
		return uuid.Nil, "", ErrEmptyToken
	}

	var c claims
	if _, err := m.parser.ParseWithClaims(raw, &c, m.key); err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}
	return id, c.Role, nil
}

func (m *JWTManager) key(*jwt.Token) (any, error) {
	return m.secret, nil
}

// GenerateOneTimeToken returns a random hex token to mail out and the
// SHA-256 digest to persist in its place.
func (m *JWTManager) GenerateOneTimeToken() (raw, hash string, err error) {
	buf := make([]byte, oneTimeTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("auth.GenerateOneTimeToken: %w", err)
	}
	raw = hex.EncodeToString(buf)
	return raw, HashToken(raw), nil
}

// HashToken is the hex SHA-256 digest of raw.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-32-chars-long-for-security"

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, "travelpath-test", 15*time.Minute)
	userID := uuid.New()

	for _, role := range []string{"USER", "ADMIN"} {
		token, err := manager.GenerateAccessToken(userID, "crew@example.com", role)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		gotID, gotRole, err := manager.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, role, gotRole)
	}
}

func TestJWTManager_ValidateAccessToken_Expired(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, "travelpath-test", -time.Hour)

	token, err := manager.GenerateAccessToken(uuid.New(), "crew@example.com", "USER")
	require.NoError(t, err)

	_, _, err = manager.ValidateAccessToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTManager_ValidateAccessToken_InvalidSignature(t *testing.T) {
	t.Parallel()

	m1 := NewJWTManager(testSecret, "travelpath-test", time.Minute)
	m2 := NewJWTManager("different-secret-32-chars-long-for-security!!", "travelpath-test", time.Minute)

	token, err := m1.GenerateAccessToken(uuid.New(), "crew@example.com", "USER")
	require.NoError(t, err)

	_, _, err = m2.ValidateAccessToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTManager_ValidateAccessToken_WrongIssuer(t *testing.T) {
	t.Parallel()

	issuing := NewJWTManager(testSecret, "someone-else", time.Minute)
	validating := NewJWTManager(testSecret, "travelpath-test", time.Minute)

	token, err := issuing.GenerateAccessToken(uuid.New(), "crew@example.com", "USER")
	require.NoError(t, err)

	_, _, err = validating.ValidateAccessToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestJWTManager_ValidateAccessToken_Malformed(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, "travelpath-test", time.Minute)

	_, _, err := manager.ValidateAccessToken("")
	assert.ErrorIs(t, err, ErrEmptyToken)

	for _, token := range []string{"not.a.jwt", "invalid-token", "header.payload"} {
		_, _, err := manager.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestJWTManager_ValidateAccessToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, "travelpath-test", time.Minute)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer:    "travelpath-test",
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, _, err = manager.ValidateAccessToken(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTManager_ValidateAccessToken_BadSubject(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, "travelpath-test", time.Minute)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "travelpath-test",
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, _, err = manager.ValidateAccessToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_GenerateOneTimeToken(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, "travelpath-test", time.Minute)

	raw1, hash1, err := manager.GenerateOneTimeToken()
	require.NoError(t, err)
	raw2, _, err := manager.GenerateOneTimeToken()
	require.NoError(t, err)

	assert.Len(t, raw1, 40)
	assert.NotEqual(t, raw1, raw2)
	assert.Equal(t, HashToken(raw1), hash1)
	assert.Len(t, hash1, 64)
}

func TestHashToken_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
}

package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *TokenManager {
	t.Helper()
	return NewTokenManager("test-secret", 24, NewRegistry())
}

func Test_IssueThenValidate(t *testing.T) {
	tm := newTestManager(t)

	token, expiresAt, err := tm.Issue("860")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	require.True(t, tm.Validate(token))
	require.Equal(t, "860", tm.UserID(token))
}

func Test_ValidateRejectsUnissuedToken(t *testing.T) {
	tm := newTestManager(t)

	// Signed with the right secret but never issued by this manager, so it
	// is absent from the registry.
	claims := &Claims{
		UserID: "860",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	outside, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	require.False(t, tm.Validate(outside))
}

func Test_ValidateRejectsTamperedToken(t *testing.T) {
	tm := newTestManager(t)

	token, _, err := tm.Issue("860")
	require.NoError(t, err)

	tampered := token + "xx"
	// Force registry membership so only the signature check can reject.
	tm.registry.Add(tampered)
	require.False(t, tm.Validate(tampered))
}

func Test_ValidateRejectsWrongSecret(t *testing.T) {
	tm := newTestManager(t)

	other := NewTokenManager("other-secret", 24, tm.registry)
	token, _, err := other.Issue("860")
	require.NoError(t, err)

	require.False(t, tm.Validate(token))
}

func Test_ValidateRejectsExpiredToken(t *testing.T) {
	tm := newTestManager(t)

	issued := time.Now()
	tm.now = func() time.Time { return issued }
	token, _, err := tm.Issue("860")
	require.NoError(t, err)
	require.True(t, tm.Validate(token))

	// Still valid just before the 24h boundary, invalid after it.
	tm.now = func() time.Time { return issued.Add(24*time.Hour - time.Minute) }
	require.True(t, tm.Validate(token))

	tm.now = func() time.Time { return issued.Add(24*time.Hour + time.Minute) }
	require.False(t, tm.Validate(token))
}

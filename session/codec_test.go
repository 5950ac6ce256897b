package session_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-admin-portal/internal/errors"
	"github.com/jrsteele09/go-admin-portal/session"
	"github.com/stretchr/testify/require"
)

const (
	testSecret      = "test-session-secret"
	testAccessToken = "backend-access-token"
	testUserEmail   = "john.doe@example.com"
)

func testSession() session.Session {
	return session.Session{
		User: session.User{
			ID:    "user-1",
			Name:  "John Doe",
			Email: testUserEmail,
			Role:  session.RoleAdmin,
		},
		AccessToken: testAccessToken,
	}
}

func newTestCodec(t *testing.T) *session.Codec {
	t.Helper()
	codec, err := session.NewCodec(testSecret, 7*24*time.Hour)
	require.NoError(t, err)
	return codec
}

func TestNewCodecRequiresSecret(t *testing.T) {
	_, err := session.NewCodec("", 7*24*time.Hour)
	require.ErrorIs(t, err, errors.ErrNoSessionSecret)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	want := testSession()
	token, expiresAt, err := codec.Issue(want)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, time.Minute)

	got := codec.Verify(token)
	require.NotNil(t, got)
	require.Equal(t, want, *got)
}

func TestVerifyTamperedTokenInAnyByte(t *testing.T) {
	codec := newTestCodec(t)

	token, _, err := codec.Issue(testSession())
	require.NoError(t, err)

	for i := 0; i < len(token); i++ {
		if token[i] == '.' {
			continue
		}
		// The replacement differs from the original in the high bits of its
		// base64 group, so the decoded bytes change even for a final
		// character with unused trailing bits.
		replacement := byte('g')
		if token[i] >= 'g' && token[i] <= 'j' {
			replacement = 'A'
		}
		tampered := token[:i] + string(replacement) + token[i+1:]
		require.NotEqual(t, token, tampered)
		require.Nil(t, codec.Verify(tampered), "byte %d", i)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	codec := newTestCodec(t)

	issuedAt := time.Now().Add(-8 * 24 * time.Hour)
	session.NowTimeFunc = func() time.Time { return issuedAt }
	token, _, err := codec.Issue(testSession())
	session.NowTimeFunc = time.Now
	require.NoError(t, err)

	// Valid signature, expiry claim in the past.
	require.Nil(t, codec.Verify(token))
}

func TestVerifyWrongSecret(t *testing.T) {
	codec := newTestCodec(t)
	other, err := session.NewCodec("another-secret", 7*24*time.Hour)
	require.NoError(t, err)

	token, _, err := other.Issue(testSession())
	require.NoError(t, err)
	require.Nil(t, codec.Verify(token))
}

func TestVerifyMalformedToken(t *testing.T) {
	codec := newTestCodec(t)

	require.Nil(t, codec.Verify(""))
	require.Nil(t, codec.Verify("not-a-token"))
	require.Nil(t, codec.Verify("a.b.c"))
}

func TestVerifyRejectsPayloadOutsideSchema(t *testing.T) {
	codec := newTestCodec(t)

	sign := func(claims jwtlib.MapClaims) string {
		t.Helper()
		claims["iat"] = time.Now().Unix()
		claims["exp"] = time.Now().Add(time.Hour).Unix()
		signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		return signed
	}

	// Correctly signed and unexpired, but not a session payload.
	require.Nil(t, codec.Verify(sign(jwtlib.MapClaims{"sub": "user-1"})))

	// Missing access token.
	require.Nil(t, codec.Verify(sign(jwtlib.MapClaims{
		"user": map[string]any{"email": testUserEmail},
	})))

	// Unknown role.
	require.Nil(t, codec.Verify(sign(jwtlib.MapClaims{
		"user":        map[string]any{"email": testUserEmail, "role": "root"},
		"accessToken": testAccessToken,
	})))
}

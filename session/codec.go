package session

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jrsteele09/go-admin-portal/internal/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// sessionClaims is the typed token payload. Anything that decodes but does
// not match this schema is rejected at the verification boundary.
type sessionClaims struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
	jwtlib.RegisteredClaims
}

// Codec signs and verifies compact session tokens. Both operations are pure
// functions of the input and the secret, safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a codec for the given signing secret. The secret has no
// default and an empty value is a configuration error.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.ErrNoSessionSecret
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Codec{secret: []byte(secret), ttl: ttl}, nil
}

// Issue encodes the session into a signed HS256 token with issued-at set to
// now and expiry set to now plus the configured TTL.
func (c *Codec) Issue(s Session) (token string, expiresAt time.Time, err error) {
	now := NowTimeFunc()
	expiresAt = now.Add(c.ttl)

	claims := sessionClaims{
		User:        s.User,
		AccessToken: s.AccessToken,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks the signature and expiry and returns the decoded session.
// It returns nil on any failure - bad signature, expired, malformed, or a
// payload that does not match the session schema. Verification failures are
// routine conditions, not errors.
func (c *Codec) Verify(token string) *Session {
	if token == "" {
		return nil
	}

	var claims sessionClaims
	parsed, err := jwtlib.ParseWithClaims(token, &claims,
		func(t *jwtlib.Token) (interface{}, error) { return c.secret, nil },
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(func() time.Time { return NowTimeFunc() }),
	)
	if err != nil || !parsed.Valid {
		return nil
	}

	if claims.User.Email == "" || claims.AccessToken == "" {
		return nil
	}
	switch claims.User.Role {
	case RoleAdmin, RoleUser, RoleAny:
	default:
		return nil
	}

	return &Session{User: claims.User, AccessToken: claims.AccessToken}
}

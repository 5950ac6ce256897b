package config

import "time"

type SessionConfig interface {
	// GetSessionSecret returns the key used to sign session tokens.
	// There is deliberately no default: an empty value must fail startup.
	GetSessionSecret() string
	GetSessionTTL() time.Duration
	GetSessionCookieName() string
}

type Session struct{}

var _ SessionConfig = Session{}

func (Session) GetSessionSecret() string {
	return GetEnv("SESSION_SECRET_KEY", "")
}

func (Session) GetSessionTTL() time.Duration {
	return 7 * 24 * time.Hour // 7 days, matching the cookie expiry
}

func (Session) GetSessionCookieName() string {
	return "session"
}

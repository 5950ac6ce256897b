package config

import "time"

type BackendConfig interface {
	// GetBackendBaseURL returns the base URL of the REST backend,
	// e.g. "http://localhost:8000/api/v1"
	GetBackendBaseURL() string
	GetBackendTimeout() time.Duration
}

type Backend struct{}

var _ BackendConfig = Backend{}

func (Backend) GetBackendBaseURL() string {
	return GetEnv("BACKEND_URL", "http://localhost:8000/api/v1")
}

func (Backend) GetBackendTimeout() time.Duration {
	return 15 * time.Second
}

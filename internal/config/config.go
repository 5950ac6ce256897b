package config

type Config interface {
	EnvConfig
	SessionConfig
	BackendConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	Session
	Backend
}

func New() Config {
	return mainConfig{}
}

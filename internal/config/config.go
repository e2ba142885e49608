package config

type Config interface {
	EnvConfig
	CorsConfig
	TokenConfig
	StoreConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetBasePath() string
	GetPublicFolder() string
	GetLogLevel() string
	GetEnv() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
	Tokens
	Store
}

// New loads an optional .env file from the working directory and returns the
// process configuration. Variables already present in the environment win.
func New() Config {
	loadDotEnv(".env")
	return mainConfig{}
}

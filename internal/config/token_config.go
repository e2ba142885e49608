package config

import (
	"time"

	"github.com/jrsteele09/go-auth-gateway/token"
	"github.com/rs/zerolog/log"
)

const (
	accessSecretVar  = "ACCESS_TOKEN_SECRET"
	refreshSecretVar = "REFRESH_TOKEN_SECRET"
	accessTTLVar     = "ACCESS_TOKEN_TTL"
	refreshTTLVar    = "REFRESH_TOKEN_TTL"

	// Development-only secrets. Never rely on these outside DEV.
	DefaultAccessTokenSecret  = "access_token_secret_key"
	DefaultRefreshTokenSecret = "refresh_token_secret_key"

	DefaultAccessTokenExpiry  = token.DefaultAccessTokenExpiry
	DefaultRefreshTokenExpiry = token.DefaultRefreshTokenExpiry

	// Token timestamps have whole-second precision.
	minTokenExpiry = time.Second
)

type TokenConfig interface {
	GetAccessTokenSecret() string
	GetRefreshTokenSecret() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
}

type Tokens struct{}

var _ TokenConfig = Tokens{}

func (Tokens) GetAccessTokenSecret() string {
	return GetEnv(accessSecretVar, DefaultAccessTokenSecret)
}

func (Tokens) GetRefreshTokenSecret() string {
	return GetEnv(refreshSecretVar, DefaultRefreshTokenSecret)
}

func (Tokens) GetAccessTokenExpiry() time.Duration {
	return getDuration(accessTTLVar, DefaultAccessTokenExpiry)
}

func (Tokens) GetRefreshTokenExpiry() time.Duration {
	return getDuration(refreshTTLVar, DefaultRefreshTokenExpiry)
}

// UsesDefaultSecrets reports whether either signing secret fell back to its
// development default.
func UsesDefaultSecrets(c TokenConfig) bool {
	return c.GetAccessTokenSecret() == DefaultAccessTokenSecret ||
		c.GetRefreshTokenSecret() == DefaultRefreshTokenSecret
}

func getDuration(envVar string, defaultValue time.Duration) time.Duration {
	raw := GetEnv(envVar, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < minTokenExpiry {
		log.Warn().Str("var", envVar).Str("value", raw).Dur("default", defaultValue).Msg("Invalid duration, using default")
		return defaultValue
	}
	return d
}

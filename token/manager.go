package token

import (
	"time"

	"github.com/jrsteele09/go-auth-gateway/users"
	"github.com/pkg/errors"
)

const (
	DefaultAccessTokenExpiry  = 10 * time.Second
	DefaultRefreshTokenExpiry = 7 * 24 * time.Hour
)

// Manager issues and verifies access and refresh tokens. Each kind has its own
// secret, so a token of one kind never verifies as the other.
type Manager struct {
	access             *Codec
	refresh            *Codec
	accessTokenExpiry  time.Duration
	refreshTokenExpiry time.Duration
	nowFunc            func() time.Time
}

type ManagerOption func(*Manager)

func WithTokenExpiry(accessTokenExpiry time.Duration, refreshTokenExpiry time.Duration) ManagerOption {
	return func(m *Manager) {
		m.accessTokenExpiry = accessTokenExpiry
		m.refreshTokenExpiry = refreshTokenExpiry
	}
}

func WithNowFunc(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowFunc = now
	}
}

func New(accessSecret, refreshSecret string, options ...ManagerOption) (*Manager, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, errors.New("[token.New] access and refresh secrets are required")
	}
	if accessSecret == refreshSecret {
		return nil, errors.New("[token.New] access and refresh secrets must differ")
	}

	m := &Manager{}
	for _, opt := range options {
		opt(m)
	}

	if m.accessTokenExpiry <= 0 {
		m.accessTokenExpiry = DefaultAccessTokenExpiry
	}
	if m.refreshTokenExpiry <= 0 {
		m.refreshTokenExpiry = DefaultRefreshTokenExpiry
	}
	if m.nowFunc == nil {
		m.nowFunc = time.Now
	}

	m.access = NewCodec(NewHMACSigner(accessSecret), m.nowFunc)
	m.refresh = NewCodec(NewHMACSigner(refreshSecret), m.nowFunc)
	return m, nil
}

func (m *Manager) IssueAccessToken(identity users.Identity) (string, error) {
	signed, err := m.access.Sign(NewAccessClaims(identity), m.accessTokenExpiry)
	if err != nil {
		return "", errors.Wrap(err, "Manager.IssueAccessToken")
	}
	return signed, nil
}

func (m *Manager) IssueRefreshToken(identity users.Identity) (string, error) {
	signed, err := m.refresh.Sign(NewRefreshClaims(identity), m.refreshTokenExpiry)
	if err != nil {
		return "", errors.Wrap(err, "Manager.IssueRefreshToken")
	}
	return signed, nil
}

func (m *Manager) VerifyAccessToken(raw string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := m.access.Verify(raw, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (m *Manager) VerifyRefreshToken(raw string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := m.refresh.Verify(raw, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (m *Manager) AccessTokenExpiry() time.Duration {
	return m.accessTokenExpiry
}

func (m *Manager) RefreshTokenExpiry() time.Duration {
	return m.refreshTokenExpiry
}

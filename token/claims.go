package token

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-auth-gateway/users"
	"github.com/pkg/errors"
)

// Claims is implemented by the payloads this package signs. The codec owns
// the registered timestamps and token id.
type Claims interface {
	jwt.Claims
	registered() *jwt.RegisteredClaims
}

// AccessClaims is the payload of an access token.
type AccessClaims struct {
	UserID   int            `json:"id"`
	Username string         `json:"username"`
	Role     users.RoleType `json:"role"`
	jwt.RegisteredClaims
}

// RefreshClaims is the payload of a refresh token. It carries
// only the user id; refresh looks the user up again.
type RefreshClaims struct {
	UserID int `json:"id"`
	jwt.RegisteredClaims
}

var (
	_ Claims = (*AccessClaims)(nil)
	_ Claims = (*RefreshClaims)(nil)
)

func NewAccessClaims(identity users.Identity) *AccessClaims {
	return &AccessClaims{
		UserID:   identity.ID,
		Username: identity.Username,
		Role:     identity.Role,
	}
}

func NewRefreshClaims(identity users.Identity) *RefreshClaims {
	return &RefreshClaims{UserID: identity.ID}
}

func (c *AccessClaims) Identity() users.Identity {
	return users.Identity{ID: c.UserID, Username: c.Username, Role: c.Role}
}

// Validate is called by the jwt parser after the registered claims pass.
func (c *AccessClaims) Validate() error {
	if c.UserID <= 0 || c.Username == "" || !c.Role.Valid() {
		return errors.New("access claims are incomplete")
	}
	return nil
}

func (c *RefreshClaims) Validate() error {
	if c.UserID <= 0 {
		return errors.New("refresh claims are incomplete")
	}
	return nil
}

func (c *AccessClaims) registered() *jwt.RegisteredClaims  { return &c.RegisteredClaims }
func (c *RefreshClaims) registered() *jwt.RegisteredClaims { return &c.RegisteredClaims }

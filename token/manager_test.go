package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-auth-gateway/token"
	"github.com/jrsteele09/go-auth-gateway/users"
	"github.com/stretchr/testify/require"
)

const (
	accessSecret  = "test-access-secret"
	refreshSecret = "test-refresh-secret"
)

var (
	adminIdentity = users.Identity{ID: 1, Username: "admin", Role: users.RoleAdmin}
	userIdentity  = users.Identity{ID: 2, Username: "user", Role: users.RoleUser}
)

// clock is a settable time source shared by a manager under test.
type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newManager(t *testing.T) (*token.Manager, *clock) {
	t.Helper()
	c := &clock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	m, err := token.New(accessSecret, refreshSecret,
		token.WithTokenExpiry(10*time.Second, 7*24*time.Hour),
		token.WithNowFunc(c.Now),
	)
	require.NoError(t, err)
	return m, c
}

func TestNew_SecretValidation(t *testing.T) {
	_, err := token.New("", refreshSecret)
	require.Error(t, err)

	_, err = token.New(accessSecret, "")
	require.Error(t, err)

	_, err = token.New("same", "same")
	require.ErrorContains(t, err, "must differ")

	m, err := token.New(accessSecret, refreshSecret)
	require.NoError(t, err)
	require.Equal(t, token.DefaultAccessTokenExpiry, m.AccessTokenExpiry())
	require.Equal(t, token.DefaultRefreshTokenExpiry, m.RefreshTokenExpiry())
}

func TestAccessToken_RoundTrip(t *testing.T) {
	m, c := newManager(t)

	for _, identity := range []users.Identity{adminIdentity, userIdentity} {
		t.Run(identity.Username, func(t *testing.T) {
			issuedAt := c.Now()
			raw, err := m.IssueAccessToken(identity)
			require.NoError(t, err)
			require.Len(t, strings.Split(raw, "."), 3)

			claims, err := m.VerifyAccessToken(raw)
			require.NoError(t, err)
			require.Equal(t, identity, claims.Identity())
			require.True(t, issuedAt.Equal(claims.IssuedAt.Time))
			require.True(t, issuedAt.Add(10*time.Second).Equal(claims.ExpiresAt.Time))
			require.NotEmpty(t, claims.ID)
		})
	}
}

func TestAccessToken_ValidUntilJustBeforeExpiry(t *testing.T) {
	m, c := newManager(t)
	raw, err := m.IssueAccessToken(adminIdentity)
	require.NoError(t, err)

	c.Advance(9*time.Second + 999*time.Millisecond)
	_, err = m.VerifyAccessToken(raw)
	require.NoError(t, err)
}

func TestAccessToken_ExpiredAtExpiresAt(t *testing.T) {
	m, c := newManager(t)
	raw, err := m.IssueAccessToken(adminIdentity)
	require.NoError(t, err)

	c.Advance(10 * time.Second)
	_, err = m.VerifyAccessToken(raw)
	require.ErrorIs(t, err, token.ErrExpired)

	c.Advance(time.Hour)
	_, err = m.VerifyAccessToken(raw)
	require.ErrorIs(t, err, token.ErrExpired)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	m, c := newManager(t)
	raw, err := m.IssueRefreshToken(userIdentity)
	require.NoError(t, err)

	c.Advance(7*24*time.Hour - time.Second)
	claims, err := m.VerifyRefreshToken(raw)
	require.NoError(t, err)
	require.Equal(t, 2, claims.UserID)

	c.Advance(time.Second)
	_, err = m.VerifyRefreshToken(raw)
	require.ErrorIs(t, err, token.ErrExpired)
}

func TestRefreshToken_CarriesNoRole(t *testing.T) {
	m, _ := newManager(t)
	raw, err := m.IssueRefreshToken(adminIdentity)
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	require.NoError(t, err)
	payload := parsed.Claims.(jwt.MapClaims)
	require.NotContains(t, payload, "role")
	require.NotContains(t, payload, "username")
	require.EqualValues(t, 1, payload["id"])
}

func TestKeySeparation(t *testing.T) {
	m, _ := newManager(t)

	access, err := m.IssueAccessToken(adminIdentity)
	require.NoError(t, err)
	refresh, err := m.IssueRefreshToken(adminIdentity)
	require.NoError(t, err)

	_, err = m.VerifyRefreshToken(access)
	require.ErrorIs(t, err, token.ErrInvalidSignature)

	_, err = m.VerifyAccessToken(refresh)
	require.ErrorIs(t, err, token.ErrInvalidSignature)
}

func TestKeySeparation_AcrossManagers(t *testing.T) {
	m, _ := newManager(t)
	other, err := token.New("another-access", "another-refresh")
	require.NoError(t, err)

	raw, err := other.IssueAccessToken(adminIdentity)
	require.NoError(t, err)
	_, err = m.VerifyAccessToken(raw)
	require.ErrorIs(t, err, token.ErrInvalidSignature)
}

func TestTamperedSignature(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	m, _ := newManager(t)
	raw, err := m.IssueAccessToken(adminIdentity)
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	for i := range parts[2] {
		sig := []byte(parts[2])
		idx := strings.IndexByte(alphabet, sig[i])
		require.GreaterOrEqual(t, idx, 0)
		// Flipping the lowest bit reaches the padding bits of the last character.
		sig[i] = alphabet[idx^1]
		tampered := parts[0] + "." + parts[1] + "." + string(sig)

		_, err = m.VerifyAccessToken(tampered)
		require.ErrorIs(t, err, token.ErrInvalidSignature, "index %d", i)
	}
}

func TestTamperedPayload(t *testing.T) {
	m, _ := newManager(t)
	userToken, err := m.IssueAccessToken(userIdentity)
	require.NoError(t, err)
	adminToken, err := m.IssueAccessToken(adminIdentity)
	require.NoError(t, err)

	// Splice the admin payload onto the user's signature.
	u := strings.Split(userToken, ".")
	a := strings.Split(adminToken, ".")
	_, err = m.VerifyAccessToken(u[0] + "." + a[1] + "." + u[2])
	require.ErrorIs(t, err, token.ErrInvalidSignature)
}

func TestExpiredForgeryReportsSignature(t *testing.T) {
	m, c := newManager(t)
	other, err := token.New("another-access", "another-refresh", token.WithNowFunc(c.Now))
	require.NoError(t, err)

	raw, err := other.IssueAccessToken(adminIdentity)
	require.NoError(t, err)
	c.Advance(time.Hour)

	_, err = m.VerifyAccessToken(raw)
	require.ErrorIs(t, err, token.ErrInvalidSignature)
}

func TestMalformedTokens(t *testing.T) {
	m, c := newManager(t)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": 1, "username": "admin", "role": "admin",
	}).SignedString([]byte(accessSecret))
	require.NoError(t, err)

	noIdentity, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": c.Now().Add(time.Minute).Unix(),
	}).SignedString([]byte(accessSecret))
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": 1, "username": "admin", "role": "root", "exp": c.Now().Add(time.Minute).Unix(),
	}).SignedString([]byte(accessSecret))
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"two segments", "abc.def"},
		{"bad base64 payload", "eyJhbGciOiJIUzI1NiJ9.!!!.sig"},
		{"missing exp", noExp},
		{"missing identity", noIdentity},
		{"unknown role", badRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.VerifyAccessToken(tt.raw)
			require.ErrorIs(t, err, token.ErrMalformed)
		})
	}
}

func TestRejectsOtherAlgorithms(t *testing.T) {
	m, c := newManager(t)
	claims := jwt.MapClaims{
		"id": 1, "username": "admin", "role": "admin", "exp": c.Now().Add(time.Minute).Unix(),
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.VerifyAccessToken(none)
	require.ErrorIs(t, err, token.ErrInvalidSignature)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(accessSecret))
	require.NoError(t, err)
	_, err = m.VerifyAccessToken(hs512)
	require.ErrorIs(t, err, token.ErrInvalidSignature)
}

func TestTokensAreUnique(t *testing.T) {
	m, _ := newManager(t)
	first, err := m.IssueAccessToken(adminIdentity)
	require.NoError(t, err)
	second, err := m.IssueAccessToken(adminIdentity)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

package token

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Verification failures. Callers outside this package should treat all three
// the same way; the distinction exists for logs and tests.
var (
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrExpired          = errors.New("token has expired")
	ErrMalformed        = errors.New("token is malformed")
)

// Codec signs claims into compact JWTs and verifies them with a single Signer.
type Codec struct {
	signer  Signer
	parser  *jwt.Parser
	nowFunc func() time.Time
}

func NewCodec(signer Signer, nowFunc func() time.Time) *Codec {
	if nowFunc == nil {
		nowFunc = time.Now
	}
	return &Codec{
		signer:  signer,
		nowFunc: nowFunc,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{signer.GetSigningMethod().Alg()}),
			jwt.WithTimeFunc(nowFunc),
			jwt.WithExpirationRequired(),
			jwt.WithStrictDecoding(),
		),
	}
}

// Sign stamps iat, exp (now+ttl) and a fresh jti onto claims and signs them.
func (c *Codec) Sign(claims Claims, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", errors.Errorf("invalid token ttl %s", ttl)
	}
	now := c.nowFunc()
	rc := claims.registered()
	rc.IssuedAt = jwt.NewNumericDate(now)
	rc.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	rc.ID = uuid.NewString()
	return c.signer.Sign(claims)
}

// Verify checks the signature and expiry of raw and decodes it into claims.
// The returned error always wraps one of ErrInvalidSignature, ErrExpired or
// ErrMalformed.
func (c *Codec) Verify(raw string, claims Claims) error {
	if err := checkSignatureEncoding(raw); err != nil {
		return err
	}
	if _, err := c.parser.ParseWithClaims(raw, claims, c.signer.GetVerificationKey); err != nil {
		return classify(err)
	}
	return nil
}

// checkSignatureEncoding rejects a signature segment that is not canonical
// base64url. The unused low bits of the last character would otherwise decode
// to the same MAC.
func checkSignatureEncoding(raw string) error {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil
	}
	if _, err := base64.RawURLEncoding.Strict().DecodeString(parts[2]); err != nil {
		return errors.WithMessage(ErrInvalidSignature, "signature is not canonical base64url: "+err.Error())
	}
	return nil
}

// classify maps jwt parser errors onto the codec's error set. The signature is
// verified before any claim, so a forged expired token reports the signature.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return errors.WithMessage(ErrInvalidSignature, err.Error())
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.WithMessage(ErrExpired, err.Error())
	default:
		return errors.WithMessage(ErrMalformed, err.Error())
	}
}

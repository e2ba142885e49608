package auth

import (
	"context"
	"strings"

	apperrors "github.com/jrsteele09/go-auth-gateway/internal/errors"
	"github.com/jrsteele09/go-auth-gateway/token"
	"github.com/jrsteele09/go-auth-gateway/users"
	"github.com/pkg/errors"
)

// TokenPair is returned by a successful login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService implements the login and refresh protocol, bearer token
// authentication, and the protected user lookups. It holds no mutable state.
type AuthService struct {
	users  users.UserRepo
	tokens *token.Manager
}

func NewAuthService(userRepo users.UserRepo, tokens *token.Manager) (*AuthService, error) {
	if userRepo == nil {
		return nil, errors.New("[NewAuthService] user repo is required")
	}
	if tokens == nil {
		return nil, errors.New("[NewAuthService] token manager is required")
	}
	return &AuthService{users: userRepo, tokens: tokens}, nil
}

// Login checks the credentials and issues an access and a refresh token. It is
// the only operation that produces a refresh token.
func (as *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := as.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, UsernameNotFoundErr
		}
		return nil, apperrors.Wrapf(err, "AuthService.Login GetByUsername")
	}
	if !user.CheckPassword(password) {
		return nil, BadPasswordErr
	}

	identity := user.Identity()
	accessToken, err := as.tokens.IssueAccessToken(identity)
	if err != nil {
		return nil, apperrors.Wrapf(err, "AuthService.Login")
	}
	refreshToken, err := as.tokens.IssueRefreshToken(identity)
	if err != nil {
		return nil, apperrors.Wrapf(err, "AuthService.Login")
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The password
// is not checked again and the refresh token stays valid until it expires.
func (as *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", MissingRefreshTokenErr
	}
	claims, err := as.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", apperrors.WithCause(InvalidRefreshTokenErr, err)
	}

	// Role and username come from the store, never from the refresh token.
	user, err := as.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", UserGoneErr
		}
		return "", apperrors.Wrapf(err, "AuthService.Refresh GetByID")
	}

	accessToken, err := as.tokens.IssueAccessToken(user.Identity())
	if err != nil {
		return "", apperrors.Wrapf(err, "AuthService.Refresh")
	}
	return accessToken, nil
}

// Authenticate verifies the bearer access token in an Authorization header
// value and returns the identity it carries. The credential store is not
// consulted.
func (as *AuthService) Authenticate(authorizationHeader string) (users.Identity, error) {
	raw, ok := BearerToken(authorizationHeader)
	if !ok {
		return users.Identity{}, MissingAccessTokenErr
	}
	claims, err := as.tokens.VerifyAccessToken(raw)
	if err != nil {
		return users.Identity{}, apperrors.WithCause(InvalidAccessTokenErr, err)
	}
	return claims.Identity(), nil
}

func (as *AuthService) ListUsers(ctx context.Context) ([]*users.User, error) {
	list, err := as.users.List(ctx)
	if err != nil {
		return nil, apperrors.Wrapf(err, "AuthService.ListUsers")
	}
	return list, nil
}

func (as *AuthService) GetUser(ctx context.Context, id int) (*users.User, error) {
	user, err := as.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, UserNotFoundErr
		}
		return nil, apperrors.Wrapf(err, "AuthService.GetUser")
	}
	return user, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	raw := strings.TrimSpace(parts[1])
	if raw == "" {
		return "", false
	}
	return raw, true
}

package auth

import apperrors "github.com/jrsteele09/go-auth-gateway/internal/errors"

// Client-facing failures. Login distinguishes an unknown username from a wrong
// password, which lets callers enumerate usernames; every token verification
// failure collapses to a single message.
var (
	InvalidRequestErr      = apperrors.New(apperrors.ErrBadRequest, "invalid request body")
	UsernameNotFoundErr    = apperrors.New(apperrors.ErrUnauthorized, "username not found")
	BadPasswordErr         = apperrors.New(apperrors.ErrUnauthorized, "wrong password")
	MissingAccessTokenErr  = apperrors.New(apperrors.ErrUnauthorized, "unauthorized")
	InvalidAccessTokenErr  = apperrors.New(apperrors.ErrForbidden, "access token invalid")
	MissingRefreshTokenErr = apperrors.New(apperrors.ErrUnauthorized, "refresh token missing")
	InvalidRefreshTokenErr = apperrors.New(apperrors.ErrForbidden, "refresh token invalid")
	UserGoneErr            = apperrors.New(apperrors.ErrForbidden, "user does not exist")
	UserNotFoundErr        = apperrors.New(apperrors.ErrNotFound, "user not found")
)

package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	apperrors "github.com/jrsteele09/go-auth-gateway/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"bad request", apperrors.New(apperrors.ErrBadRequest, "bad body"), http.StatusBadRequest},
		{"unauthorized", apperrors.New(apperrors.ErrUnauthorized, "no token"), http.StatusUnauthorized},
		{"forbidden", apperrors.New(apperrors.ErrForbidden, "bad token"), http.StatusForbidden},
		{"not found", apperrors.New(apperrors.ErrNotFound, "missing"), http.StatusNotFound},
		{"wrapped", apperrors.Wrapf(apperrors.New(apperrors.ErrForbidden, "bad token"), "refresh"), http.StatusForbidden},
		{"uncategorised", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, apperrors.StatusCode(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	err := apperrors.Wrapf(apperrors.New(apperrors.ErrNotFound, "user not found"), "lookup %d", 7)
	require.Equal(t, "user not found", apperrors.Message(err))
	require.Equal(t, "internal error", apperrors.Message(fmt.Errorf("db exploded")))
}

func TestWrapf(t *testing.T) {
	require.NoError(t, apperrors.Wrapf(nil, "context"))

	cause := errors.New("disk full")
	err := apperrors.Wrapf(cause, "Store.Save %d", 3)
	require.EqualError(t, err, "Store.Save 3: disk full")
	require.ErrorIs(t, err, cause)
}

func TestWithCause(t *testing.T) {
	clientErr := apperrors.New(apperrors.ErrForbidden, "access token invalid")
	cause := errors.New("token has expired")

	err := apperrors.WithCause(clientErr, cause)
	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, apperrors.ErrForbidden)
	require.Equal(t, http.StatusForbidden, apperrors.StatusCode(err))
	require.Equal(t, "access token invalid", apperrors.Message(err))

	require.Equal(t, error(clientErr), apperrors.WithCause(clientErr, nil))
}

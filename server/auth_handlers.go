package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jrsteele09/go-auth-gateway/auth"
)

const maxBodyBytes = 1 << 20

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// LoginHandler exchanges a username and password for an access and refresh token.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeBody(w, r, &req); err != nil {
			sendErr(w, r, err)
			return
		}

		pair, err := s.auth.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			sendErr(w, r, err)
			return
		}

		noCache(w)
		sendResult(w, pair, "login successful")
	}
}

// RefreshHandler exchanges a refresh token for a new access token.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		if err := decodeBody(w, r, &req); err != nil {
			sendErr(w, r, err)
			return
		}

		accessToken, err := s.auth.Refresh(r.Context(), req.RefreshToken)
		if err != nil {
			LoggerFromContext(r.Context()).Debug().Err(err).Msg("Refresh rejected")
			sendErr(w, r, err)
			return
		}

		noCache(w)
		sendResult(w, refreshResponse{AccessToken: accessToken}, "OK")
	}
}

// decodeBody reads a JSON body into v. An empty body leaves v zeroed.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return auth.InvalidRequestErr
	}
	return nil
}

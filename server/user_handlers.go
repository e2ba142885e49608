package server

import (
	"net/http"
	"strconv"

	"github.com/jrsteele09/go-auth-gateway/auth"
)

// UsersListHandler returns every user record. Passwords are never serialised.
func (s *Server) UsersListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.auth.ListUsers(r.Context())
		if err != nil {
			sendErr(w, r, err)
			return
		}
		sendResult(w, list, "OK")
	}
}

// UserHandler returns a single user by numeric id. A non-numeric id cannot
// match any record and is reported as not found.
func (s *Server) UserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			sendErr(w, r, auth.UserNotFoundErr)
			return
		}

		user, err := s.auth.GetUser(r.Context(), id)
		if err != nil {
			sendErr(w, r, err)
			return
		}
		sendResult(w, user, "OK")
	}
}

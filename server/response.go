package server

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/jrsteele09/go-auth-gateway/internal/errors"
	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json; charset=utf-8"

// Envelope wraps every JSON response.
type Envelope struct {
	Code int    `json:"code"`
	Data any    `json:"data"`
	Msg  string `json:"msg"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	if body.Data == nil {
		body.Data = struct{}{}
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Err(err).Msg("Failed to encode response")
	}
}

func sendResult(w http.ResponseWriter, data any, msg string) {
	writeJSON(w, http.StatusOK, Envelope{Code: http.StatusOK, Data: data, Msg: msg})
}

// sendError writes an error envelope. Codes outside the HTTP range become 500.
func sendError(w http.ResponseWriter, msg string, code int) {
	if code < 100 || code > 599 {
		code = http.StatusInternalServerError
	}
	writeJSON(w, code, Envelope{Code: code, Msg: msg})
}

// sendErr maps a domain error onto an error envelope. Uncategorised errors are
// logged and reported as a bare internal error.
func sendErr(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Str("request_id", RequestIDFromContext(r.Context())).Str("path", r.URL.Path).Msg("Request failed")
	}
	sendError(w, apperrors.Message(err), status)
}

// noCache prevents caching of responses that carry tokens.
func noCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

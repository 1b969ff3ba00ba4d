package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pkordes/trackpad/internal/domain"
)

// errorResponse is the body of every non-2xx JSON response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorBody(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// writeError maps a core error to its HTTP status. The message is the
// fixed user-facing text carried by the error, never the wrapped chain.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	msg := domain.UserMessage(err)
	switch {
	case errors.Is(err, domain.ErrInvalidIndexFormat):
		writeErrorBody(w, http.StatusUnprocessableEntity, "invalid_index", msg)
	case errors.Is(err, domain.ErrValidation):
		writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", msg)
	case errors.Is(err, domain.ErrDuplicate):
		writeErrorBody(w, http.StatusConflict, "duplicate", msg)
	case errors.Is(err, domain.ErrInvalidIndex):
		writeErrorBody(w, http.StatusNotFound, "invalid_index", msg)
	case errors.Is(err, domain.ErrNotFound):
		writeErrorBody(w, http.StatusNotFound, "not_found", msg)
	case errors.Is(err, domain.ErrPersistence):
		s.log.ErrorContext(r.Context(), "save failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeErrorBody(w, http.StatusInternalServerError, "not_saved", msg)
	default:
		s.log.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeErrorBody(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// decodeBody decodes the JSON request body into v, rejecting unknown fields.
// On failure it writes a 422 and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", "request body is required")
		return false
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeErrorBody(w, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
			return false
		}
		writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", "malformed request body: "+err.Error())
		return false
	}
	return true
}

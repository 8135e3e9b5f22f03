package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/photo-tagger/internal/domain"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code and a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "photo not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}}
}

// conflictBody returns an ErrorResponse for a duplicate (criterion already
// registered, tag already applied).
func conflictBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "conflict", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err, domain.ErrValidation)}}
}

// storageBody returns an ErrorResponse for a filesystem failure wrapped in
// domain.ErrStorage (unreadable folder, export folder not creatable).
func storageBody(err error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "storage_error", Message: unwrapMessage(err, domain.ErrStorage)}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}}
}

// unwrapMessage extracts the human-readable part following a wrapped sentinel.
// e.g. "service.Collection.Import: validation error: folder path is required"
// → "folder path is required"
func unwrapMessage(err, sentinel error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// writeServiceError maps the domain sentinels to HTTP responses.
// Anything unrecognised is logged and reported as a 500 without details.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
	case errors.Is(err, domain.ErrStorage):
		writeJSON(w, http.StatusUnprocessableEntity, storageBody(err))
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, notFoundBody(unwrapMessage(err, domain.ErrNotFound)))
	default:
		s.log.ErrorContext(r.Context(), "unhandled error", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError,
			ErrorResponse{Error: ErrorDetail{Code: "internal_error", Message: "internal server error"}})
	}
}

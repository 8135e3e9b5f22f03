package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the status line is already sent
	json.NewEncoder(w).Encode(v)
}

// decodeBody decodes the JSON request body into dst. On failure it writes
// the error response itself and returns false: 413 when the body limit
// middleware cut the body off, 422 for anything else.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: ErrorDetail{
				Code:    "body_too_large",
				Message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			}})
			return false
		}
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("malformed JSON body: "+err.Error()))
		return false
	}
	return true
}

// pathParam binds the named chi URL parameter into dst the same way
// oapi-codegen generated servers do (simple style, required).
// On failure it writes a 422 and returns false.
func pathParam(w http.ResponseWriter, r *http.Request, name string, dst any) bool {
	err := runtime.BindStyledParameterWithOptions("simple", name, escapedURLParam(r, name), dst,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(fmt.Sprintf("invalid path parameter %q: %v", name, err)))
		return false
	}
	return true
}

// escapedURLParam returns the named chi URL parameter in escaped form, so the
// binder's single unescape yields the segment the client sent.
// chi matches against r.URL.RawPath when it is set and against the already
// decoded r.URL.Path otherwise.
func escapedURLParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath != "" {
		return v
	}
	return url.PathEscape(v)
}

// queryParam binds an optional form-style query parameter into dst.
// On failure it writes a 422 and returns false.
func queryParam(w http.ResponseWriter, r *http.Request, name string, dst any) bool {
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), dst); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(fmt.Sprintf("invalid query parameter %q: %v", name, err)))
		return false
	}
	return true
}

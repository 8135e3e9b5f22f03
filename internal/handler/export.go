package handler

import (
	"net/http"
	"strings"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/photo-tagger/internal/domain"
)

// ExportRequest is the body of POST /exports.
// Destination may be omitted when the server has a default export root.
type ExportRequest struct {
	Tag         string `json:"tag"`
	Destination string `json:"destination,omitempty"`
}

// ExportResponse is the wire form of a domain.ExportReport.
type ExportResponse struct {
	ID       openapi_types.UUID `json:"id"`
	Tag      string             `json:"tag"`
	Folder   string             `json:"folder"`
	Matched  int                `json:"matched"`
	Copied   int                `json:"copied"`
	Failures []ExportFailure    `json:"failures"`
}

// ExportFailure names one photo that could not be copied.
type ExportFailure struct {
	FileName string `json:"file_name"`
	Error    string `json:"error"`
}

// CreateExport handles POST /exports.
// The copy runs inside the request; partial failures still return 200 with
// the failures listed. Only a folder that cannot be created fails the call.
func (s *Server) CreateExport(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if !decodeBody(w, r, &req) {
		return
	}
	dest := req.Destination
	if strings.TrimSpace(dest) == "" {
		dest = s.exportRoot
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	report, err := s.exporter.ExportByTag(r.Context(), s.collection, req.Tag, dest)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reportToResponse(report))
}

// reportToResponse converts a domain.ExportReport to its wire form.
func reportToResponse(rep domain.ExportReport) ExportResponse {
	failures := make([]ExportFailure, len(rep.Failures))
	for i, f := range rep.Failures {
		failures[i] = ExportFailure{FileName: f.FileName, Error: f.Err.Error()}
	}
	return ExportResponse{
		ID:       openapi_types.UUID(rep.ID),
		Tag:      rep.Tag,
		Folder:   rep.Folder,
		Matched:  rep.Matched,
		Copied:   rep.Copied,
		Failures: failures,
	}
}

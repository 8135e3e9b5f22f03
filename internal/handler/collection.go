package handler

import (
	"fmt"
	"net/http"
)

// ImportRequest is the body of POST /collection/import.
type ImportRequest struct {
	Path string `json:"path"`
}

// ImportResponse reports how many photos the folder yielded.
type ImportResponse struct {
	Count   int    `json:"count"`
	Message string `json:"message"`
}

// CollectionResponse is the read-only overview of the loaded collection.
type CollectionResponse struct {
	Count        int      `json:"count"`
	CurrentIndex int      `json:"current_index"`
	Position     string   `json:"position"`
	UniqueTags   []string `json:"unique_tags"`
	Criteria     []string `json:"criteria"`
}

// ImportCollection handles POST /collection/import.
// The previous collection, criteria and tags are discarded even when the
// new folder cannot be read.
func (s *Server) ImportCollection(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.collection.Import(r.Context(), req.Path)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	msg := fmt.Sprintf("%d photos imported", n)
	if n == 0 {
		msg = "no photo files (JPG/JPEG/PNG/GIF/TIF) found"
	}
	writeJSON(w, http.StatusOK, ImportResponse{Count: n, Message: msg})
}

// GetCollection handles GET /collection.
func (s *Server) GetCollection(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, CollectionResponse{
		Count:        s.collection.Count(),
		CurrentIndex: s.collection.CurrentIndex(),
		Position:     s.collection.Position(),
		UniqueTags:   s.collection.UniqueTags(),
		Criteria:     s.collection.Criteria(),
	})
}

// GetCurrentPhoto handles GET /collection/current.
func (s *Server) GetCurrentPhoto(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.collection.Current()
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("collection is empty"))
		return
	}
	writeJSON(w, http.StatusOK, photoToResponse(s.collection.CurrentIndex(), p))
}

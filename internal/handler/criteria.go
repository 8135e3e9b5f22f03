package handler

import (
	"fmt"
	"net/http"

	"github.com/pkordes/photo-tagger/internal/domain"
)

// CriterionRequest is the body of POST /criteria.
type CriterionRequest struct {
	Name string `json:"name"`
}

// CriterionResponse echoes the canonical form of a created criterion.
type CriterionResponse struct {
	Name string `json:"name"`
}

// CriteriaList is the body of GET /criteria.
type CriteriaList struct {
	Data []string `json:"data"`
}

// CriterionRemoval is the body of DELETE /criteria/{tag}.
type CriterionRemoval struct {
	Tag      string `json:"tag"`
	Affected int    `json:"affected"`
}

// ListCriteria handles GET /criteria.
func (s *Server) ListCriteria(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, CriteriaList{Data: s.collection.Criteria()})
}

// CreateCriterion handles POST /criteria.
func (s *Server) CreateCriterion(w http.ResponseWriter, r *http.Request) {
	var req CriterionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	name := domain.NormalizeTag(req.Name)
	if name == "" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("criterion name is required"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.collection.AddCriterion(name) {
		writeJSON(w, http.StatusConflict, conflictBody(fmt.Sprintf("criterion %q already exists", name)))
		return
	}
	writeJSON(w, http.StatusCreated, CriterionResponse{Name: name})
}

// DeleteCriterion handles DELETE /criteria/{tag}?confirm=true.
// Removing a criterion strips the tag from every photo, so the client must
// acknowledge the cascade with confirm=true.
func (s *Server) DeleteCriterion(w http.ResponseWriter, r *http.Request) {
	var (
		tag     string
		confirm *bool
	)
	if !pathParam(w, r, "tag", &tag) || !queryParam(w, r, "confirm", &confirm) {
		return
	}
	if confirm == nil || !*confirm {
		writeJSON(w, http.StatusUnprocessableEntity,
			requestBody("confirm=true is required: removing a criterion also removes the tag from every photo"))
		return
	}
	tag = domain.NormalizeTag(tag)

	s.mu.Lock()
	defer s.mu.Unlock()

	affected := s.collection.RemoveCriterion(tag)
	writeJSON(w, http.StatusOK, CriterionRemoval{Tag: tag, Affected: affected})
}

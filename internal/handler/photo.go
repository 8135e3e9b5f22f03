package handler

import (
	"fmt"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/photo-tagger/internal/domain"
)

// Photo is the wire form of a domain.Photo.
type Photo struct {
	Index    int                `json:"index"`
	ID       openapi_types.UUID `json:"id"`
	FileName string             `json:"file_name"`
	FullPath string             `json:"full_path"`
	Tags     []string           `json:"tags"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// PhotoList is the body of GET /photos.
type PhotoList struct {
	Data       []Photo    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// TagRequest is the body of POST /photos/{index}/tags.
type TagRequest struct {
	Tag string `json:"tag"`
}

// ListPhotos handles GET /photos.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
// Photos are listed in collection order; Index is the position to use in
// the other /photos endpoints.
func (s *Server) ListPhotos(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	if !queryParam(w, r, "page", &page) || !queryParam(w, r, "limit", &limit) {
		return
	}
	params := domain.NewPaginationParams(page, limit)

	s.mu.Lock()
	photos := s.collection.Photos()
	s.mu.Unlock()

	start, end := params.Window(len(photos))
	data := make([]Photo, 0, end-start)
	for i := start; i < end; i++ {
		data = append(data, photoToResponse(i, photos[i]))
	}
	writeJSON(w, http.StatusOK, PhotoList{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: len(photos),
		},
	})
}

// GetPhoto handles GET /photos/{index}.
func (s *Server) GetPhoto(w http.ResponseWriter, r *http.Request) {
	var index int
	if !pathParam(w, r, "index", &index) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.collection.Photo(index)
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("photo not found"))
		return
	}
	writeJSON(w, http.StatusOK, photoToResponse(index, p))
}

// AddTagToPhoto handles POST /photos/{index}/tags.
// Only registered criteria can be applied, mirroring a UI that offers the
// criteria list as one-click buttons.
func (s *Server) AddTagToPhoto(w http.ResponseWriter, r *http.Request) {
	var index int
	if !pathParam(w, r, "index", &index) {
		return
	}
	var req TagRequest
	if !decodeBody(w, r, &req) {
		return
	}
	tag := domain.NormalizeTag(req.Tag)
	if tag == "" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("tag is required"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collection.Photo(index); !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("photo not found"))
		return
	}
	if !s.collection.HasCriterion(tag) {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(fmt.Sprintf("tag %q is not a registered criterion", tag)))
		return
	}
	if !s.collection.ApplyTag(index, tag) {
		writeJSON(w, http.StatusConflict, conflictBody(fmt.Sprintf("tag %q is already applied to this photo", tag)))
		return
	}

	p, _ := s.collection.Photo(index)
	writeJSON(w, http.StatusCreated, photoToResponse(index, p))
}

// RemoveTagFromPhoto handles DELETE /photos/{index}/tags/{tag}.
func (s *Server) RemoveTagFromPhoto(w http.ResponseWriter, r *http.Request) {
	var (
		index int
		tag   string
	)
	if !pathParam(w, r, "index", &index) || !pathParam(w, r, "tag", &tag) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collection.Photo(index); !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("photo not found"))
		return
	}
	if !s.collection.RemoveTag(index, domain.NormalizeTag(tag)) {
		writeJSON(w, http.StatusNotFound, notFoundBody("tag not applied to photo"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// photoToResponse converts a domain.Photo at position index to its wire form.
func photoToResponse(index int, p domain.Photo) Photo {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return Photo{
		Index:    index,
		ID:       openapi_types.UUID(p.ID),
		FileName: p.FileName,
		FullPath: p.FullPath,
		Tags:     tags,
	}
}

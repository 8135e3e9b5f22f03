package handler

import (
	"net/http"

	"github.com/pkordes/photo-tagger/internal/domain"
)

// NavigationResponse reports the cursor after a move.
// Moved is false when the cursor was already at the first or last photo;
// Message then says which, for clients that want to narrate it.
type NavigationResponse struct {
	Moved        bool   `json:"moved"`
	CurrentIndex int    `json:"current_index"`
	Position     string `json:"position"`
	Message      string `json:"message,omitempty"`
}

// Navigate handles POST /navigation/{direction} with direction prev or next.
func (s *Server) Navigate(w http.ResponseWriter, r *http.Request) {
	var raw string
	if !pathParam(w, r, "direction", &raw) {
		return
	}
	d, err := domain.ParseDirection(raw)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	moved, err := s.collection.Navigate(d)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	resp := NavigationResponse{
		Moved:        moved,
		CurrentIndex: s.collection.CurrentIndex(),
		Position:     s.collection.Position(),
	}
	if !moved {
		switch {
		case s.collection.Count() == 0:
			resp.Message = "collection is empty"
		case d == domain.DirectionPrevious:
			resp.Message = "already at the first photo"
		default:
			resp.Message = "already at the last photo"
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

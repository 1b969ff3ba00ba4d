package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trackpad/internal/parser"
)

// planRequest is the body of POST /itineraries/current/days/{day}/attractions.
// AttractionIndex refers to the attraction list as last displayed.
type planRequest struct {
	AttractionIndex *int   `json:"attraction_index"`
	Start           string `json:"start"`
	End             string `json:"end"`
}

// AddPlannedAttraction handles POST /itineraries/current/days/{day}/attractions.
// The visit is slotted into the day by start time; overlapping slots are
// rejected with 422.
func (s *Server) AddPlannedAttraction(w http.ResponseWriter, r *http.Request) {
	day, err := parser.ParseIndex(chi.URLParam(r, "day"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var body planRequest
	if !decodeBody(w, r, &body) {
		return
	}
	rawIndex := ""
	if body.AttractionIndex != nil {
		rawIndex = strconv.Itoa(*body.AttractionIndex)
	}
	attraction, err := parser.ParseIndex(rawIndex)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	start, end, err := parser.ParseTimeSlot(body.Start, body.End)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.model.AddItineraryAttraction(day, attraction, start, end)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.saveItineraries(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItineraryDetail(updated))
}

// DeletePlannedAttraction handles DELETE /itineraries/current/days/{day}/attractions/{index}.
func (s *Server) DeletePlannedAttraction(w http.ResponseWriter, r *http.Request) {
	day, err := parser.ParseIndex(chi.URLParam(r, "day"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	idx, err := parser.ParseIndex(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.model.DeleteItineraryAttraction(day, idx)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.saveItineraries(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItineraryDetail(updated))
}

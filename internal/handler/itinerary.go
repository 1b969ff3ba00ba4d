package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trackpad/internal/domain"
	"github.com/pkordes/trackpad/internal/model"
	"github.com/pkordes/trackpad/internal/parser"
)

// itineraryRequest is the body of POST /itineraries.
type itineraryRequest struct {
	Name      string              `json:"name"`
	StartDate *openapi_types.Date `json:"start_date"`
	Days      *int                `json:"days"`
}

// itinerarySummary is an itinerary without its schedule.
type itinerarySummary struct {
	Index     int                `json:"index,omitempty"`
	Name      string             `json:"name"`
	StartDate openapi_types.Date `json:"start_date"`
	EndDate   openapi_types.Date `json:"end_date"`
	Days      int                `json:"days"`
}

type plannedAttraction struct {
	Index      int                `json:"index"`
	Start      string             `json:"start"`
	End        string             `json:"end"`
	Attraction attractionResponse `json:"attraction"`
}

type dayResponse struct {
	Day         int                 `json:"day"`
	Date        openapi_types.Date  `json:"date"`
	Attractions []plannedAttraction `json:"attractions"`
}

// itineraryDetail is an itinerary with its day-by-day schedule.
type itineraryDetail struct {
	itinerarySummary
	Schedule []dayResponse `json:"schedule"`
}

type itineraryListResponse struct {
	Data []itinerarySummary `json:"data"`
}

// ListItineraries handles GET /itineraries.
// ?q= filters by whole-word name match; without it every itinerary is shown.
func (s *Server) ListItineraries(w http.ResponseWriter, r *http.Request) {
	keywords := strings.Fields(r.URL.Query().Get("q"))

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(keywords) == 0 {
		s.model.UpdateFilteredItineraries(nil)
	} else {
		s.model.UpdateFilteredItineraries(model.ItineraryNameContains(keywords))
	}
	writeJSON(w, http.StatusOK, itineraryListResponse{Data: itinerarySummaries(s.model.FilteredItineraries())})
}

// CreateItinerary handles POST /itineraries.
func (s *Server) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	var body itineraryRequest
	if !decodeBody(w, r, &body) {
		return
	}
	in := parser.ItineraryInput{Name: body.Name}
	if body.StartDate != nil {
		in.StartDate = body.StartDate.Time.Format(time.DateOnly)
	}
	if body.Days != nil {
		in.Days = strconv.Itoa(*body.Days)
	}
	it, err := parser.ParseItinerary(in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.model.AddItinerary(it); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.saveItineraries(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := toItinerarySummary(it)
	resp.Index = viewIndex(s.model.FilteredItineraries(), it.IsSame)
	writeJSON(w, http.StatusCreated, resp)
}

// DeleteItinerary handles DELETE /itineraries/{index}.
// Deleting the open itinerary closes it.
func (s *Server) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	idx, err := parser.ParseIndex(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := s.model.ItineraryAt(idx)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.model.DeleteItinerary(target); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.saveItineraries(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// OpenItinerary handles POST /itineraries/{index}/open.
func (s *Server) OpenItinerary(w http.ResponseWriter, r *http.Request) {
	idx, err := parser.ParseIndex(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.model.OpenItinerary(idx)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItineraryDetail(it))
}

// GetCurrentItinerary handles GET /itineraries/current.
func (s *Server) GetCurrentItinerary(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.model.CurrentItinerary()
	if !ok {
		s.writeError(w, r, domain.NewError(domain.ErrNotFound, model.MessageNoCurrentItinerary))
		return
	}
	writeJSON(w, http.StatusOK, toItineraryDetail(it))
}

// CloseItinerary handles DELETE /itineraries/current. Closing when nothing
// is open succeeds.
func (s *Server) CloseItinerary(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.model.CloseItinerary()
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func itinerarySummaries(its []domain.Itinerary) []itinerarySummary {
	out := make([]itinerarySummary, len(its))
	for i, it := range its {
		out[i] = toItinerarySummary(it)
		out[i].Index = i + 1
	}
	return out
}

func toItinerarySummary(it domain.Itinerary) itinerarySummary {
	return itinerarySummary{
		Name:      it.Name.String(),
		StartDate: openapi_types.Date{Time: it.StartDate.Time()},
		EndDate:   openapi_types.Date{Time: it.EndDate().Time()},
		Days:      it.NumberOfDays(),
	}
}

func toItineraryDetail(it domain.Itinerary) itineraryDetail {
	days := it.Days()
	detail := itineraryDetail{
		itinerarySummary: toItinerarySummary(it),
		Schedule:         make([]dayResponse, len(days)),
	}
	for d, visits := range days {
		day := dayResponse{
			Day:         d + 1,
			Date:        openapi_types.Date{Time: it.StartDate.AddDays(d).Time()},
			Attractions: make([]plannedAttraction, len(visits)),
		}
		for i, v := range visits {
			day.Attractions[i] = plannedAttraction{
				Index:      i + 1,
				Start:      v.Start.String(),
				End:        v.End.String(),
				Attraction: toAttractionResponse(v.Attraction),
			}
		}
		detail.Schedule[d] = day
	}
	return detail
}

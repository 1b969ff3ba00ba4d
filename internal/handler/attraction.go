package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trackpad/internal/domain"
	"github.com/pkordes/trackpad/internal/model"
	"github.com/pkordes/trackpad/internal/parser"
)

// attractionRequest is the body of POST /attractions. Every field is raw
// text; validation happens in the parser.
type attractionRequest struct {
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Address      string   `json:"address"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	OpeningHours string   `json:"opening_hours"`
	PriceRange   string   `json:"price_range"`
	Rating       string   `json:"rating"`
	Tags         []string `json:"tags"`
}

// attractionEditRequest is the body of PUT /attractions/{index}.
// Absent fields keep their value.
type attractionEditRequest struct {
	Name         *string   `json:"name"`
	Phone        *string   `json:"phone"`
	Email        *string   `json:"email"`
	Address      *string   `json:"address"`
	Description  *string   `json:"description"`
	Location     *string   `json:"location"`
	OpeningHours *string   `json:"opening_hours"`
	PriceRange   *string   `json:"price_range"`
	Rating       *string   `json:"rating"`
	Tags         *[]string `json:"tags"`
}

// attractionResponse is one attraction on the wire. Index is its 1-based
// position in the current filtered view, or 0 (omitted) when hidden.
type attractionResponse struct {
	Index        int      `json:"index,omitempty"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Address      string   `json:"address"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	OpeningHours string   `json:"opening_hours"`
	PriceRange   string   `json:"price_range"`
	Rating       string   `json:"rating"`
	Tags         []string `json:"tags"`
	Visited      bool     `json:"visited"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type attractionListResponse struct {
	Data       []attractionResponse `json:"data"`
	Pagination pagination           `json:"pagination"`
}

// MessageInvalidVisited is reported for a visited query value that is not a boolean.
const MessageInvalidVisited = "visited should be true or false"

// ListAttractions handles GET /attractions.
// With q, tag or visited it installs that filter on the model; with none it
// shows every attraction. Indexes used by later requests resolve against
// the view this request leaves behind. Supports ?page= and ?limit=.
func (s *Server) ListAttractions(w http.ResponseWriter, r *http.Request) {
	query, err := attractionQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	params, err := paginationParams(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if query.IsEmpty() {
		s.model.UpdateFilteredAttractions(nil)
	} else {
		s.model.UpdateFilteredAttractions(query.Predicate())
	}
	visible := s.model.FilteredAttractions()
	start, end := params.Bounds(len(visible))

	writeJSON(w, http.StatusOK, attractionListResponse{
		Data:       attractionItems(visible[start:end], start),
		Pagination: pagination{Page: params.Page, Limit: params.Limit, Total: len(visible)},
	})
}

// CreateAttraction handles POST /attractions.
func (s *Server) CreateAttraction(w http.ResponseWriter, r *http.Request) {
	var body attractionRequest
	if !decodeBody(w, r, &body) {
		return
	}
	a, err := parser.ParseAttraction(parser.AttractionInput(body))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.model.AddAttraction(a); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.saveAttractions(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, s.attractionResponse(a))
}

// UpdateAttraction handles PUT /attractions/{index}.
func (s *Server) UpdateAttraction(w http.ResponseWriter, r *http.Request) {
	idx, err := parser.ParseIndex(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var body attractionEditRequest
	if !decodeBody(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := s.model.AttractionAt(idx)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	edited, err := parser.EditAttraction(target, parser.AttractionEdit(body))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.model.SetAttraction(target, edited); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.saveAttractions(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.attractionResponse(edited))
}

// DeleteAttraction handles DELETE /attractions/{index}.
// Planned visits to the attraction are removed from every itinerary.
func (s *Server) DeleteAttraction(w http.ResponseWriter, r *http.Request) {
	idx, err := parser.ParseIndex(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := s.model.AttractionAt(idx)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.model.DeleteAttraction(target); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.saveAttractions(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// VisitAttraction handles POST /attractions/{index}/visit.
func (s *Server) VisitAttraction(w http.ResponseWriter, r *http.Request) {
	idx, err := parser.ParseIndex(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := s.model.AttractionAt(idx)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	visited, err := s.model.MarkVisited(target)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.saveAttractions(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.attractionResponse(visited))
}

// --- mapping helpers --------------------------------------------------------

// attractionQuery reads ?q= (space-separated keywords), repeated ?tag= and
// ?visited= into a model.AttractionQuery.
func attractionQuery(v url.Values) (model.AttractionQuery, error) {
	var q model.AttractionQuery
	q.Keywords = strings.Fields(v.Get("q"))

	var rawTags []string
	for _, t := range v["tag"] {
		rawTags = append(rawTags, strings.Split(t, ",")...)
	}
	if len(rawTags) > 0 {
		tags, err := parser.ParseTags(rawTags)
		if err != nil {
			return model.AttractionQuery{}, err
		}
		q.Tags = tags.Tags()
	}

	if raw := v.Get("visited"); raw != "" {
		visited, err := strconv.ParseBool(raw)
		if err != nil {
			return model.AttractionQuery{}, domain.NewError(domain.ErrValidation, MessageInvalidVisited)
		}
		q.Visited = &visited
	}
	return q, nil
}

// paginationParams reads ?page= and ?limit=. Values that are not integers
// are rejected; out-of-range integers fall back to the defaults.
func paginationParams(v url.Values) (domain.PaginationParams, error) {
	page, err := optionalInt(v, "page")
	if err != nil {
		return domain.PaginationParams{}, err
	}
	limit, err := optionalInt(v, "limit")
	if err != nil {
		return domain.PaginationParams{}, err
	}
	return domain.NewPaginationParams(page, limit), nil
}

func optionalInt(v url.Values, key string) (*int, error) {
	raw := v.Get(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.NewError(domain.ErrValidation, key+" should be an integer")
	}
	return &n, nil
}

// attractionResponse maps a to its wire form, indexed against the current view.
func (s *Server) attractionResponse(a domain.Attraction) attractionResponse {
	resp := toAttractionResponse(a)
	resp.Index = viewIndex(s.model.FilteredAttractions(), a.IsSame)
	return resp
}

// attractionItems maps as to wire form; as[i] is shown at offset+i+1.
func attractionItems(as []domain.Attraction, offset int) []attractionResponse {
	out := make([]attractionResponse, len(as))
	for i, a := range as {
		out[i] = toAttractionResponse(a)
		out[i].Index = offset + i + 1
	}
	return out
}

func toAttractionResponse(a domain.Attraction) attractionResponse {
	return attractionResponse{
		Name:         a.Name.String(),
		Phone:        a.Phone.String(),
		Email:        a.Email.String(),
		Address:      a.Address.String(),
		Description:  a.Description.String(),
		Location:     a.Location.String(),
		OpeningHours: a.OpeningHours.String(),
		PriceRange:   a.PriceRange.String(),
		Rating:       a.Rating.String(),
		Tags:         a.Tags.Names(),
		Visited:      a.Visited,
	}
}

// viewIndex returns the 1-based position of the first item matching same,
// or 0 when none does.
func viewIndex[T any](items []T, same func(T) bool) int {
	for i, it := range items {
		if same(it) {
			return i + 1
		}
	}
	return 0
}

package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/trackpad/internal/domain"
	"github.com/pkordes/trackpad/internal/handler"
	"github.com/pkordes/trackpad/internal/model"
	"github.com/pkordes/trackpad/internal/parser"
)

// mockAttractionSaver is a test double for handler.AttractionSaver.
type mockAttractionSaver struct {
	save func(ctx context.Context, as []domain.Attraction) error
}

func (m *mockAttractionSaver) Save(ctx context.Context, as []domain.Attraction) error {
	return m.save(ctx, as)
}

// mockItinerarySaver is a test double for handler.ItinerarySaver.
type mockItinerarySaver struct {
	save func(ctx context.Context, its []domain.Itinerary) error
}

func (m *mockItinerarySaver) Save(ctx context.Context, its []domain.Itinerary) error {
	return m.save(ctx, its)
}

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.AttractionSaver = (*mockAttractionSaver)(nil)
	_ handler.ItinerarySaver  = (*mockItinerarySaver)(nil)
)

// savedSnapshots records the last snapshot each saver received.
type savedSnapshots struct {
	attractions []domain.Attraction
	itineraries []domain.Itinerary
	saves       int
}

// newTestServer wires a Server over m with recording savers and returns its router.
func newTestServer(t *testing.T, m *model.Model) (http.Handler, *savedSnapshots) {
	t.Helper()
	saved := &savedSnapshots{}
	srv := handler.NewServer(m,
		&mockAttractionSaver{save: func(_ context.Context, as []domain.Attraction) error {
			saved.attractions = as
			saved.saves++
			return nil
		}},
		&mockItinerarySaver{save: func(_ context.Context, its []domain.Itinerary) error {
			saved.itineraries = its
			saved.saves++
			return nil
		}},
		nil,
	)
	return srv.Routes(), saved
}

func newModel(t *testing.T, as []domain.Attraction, its []domain.Itinerary) *model.Model {
	t.Helper()
	m, err := model.New(as, its, domain.DefaultUserPrefs(), nil)
	require.NoError(t, err)
	return m
}

func attractionFixture(t *testing.T, name string) domain.Attraction {
	t.Helper()
	a, err := parser.ParseAttraction(attractionInput(name))
	require.NoError(t, err)
	return a
}

func attractionInput(name string) parser.AttractionInput {
	return parser.AttractionInput{
		Name:         name,
		Phone:        "63388977",
		Email:        "visit@merlion.sg",
		Address:      "1 Fullerton Rd",
		Description:  "Waterfront statue",
		Location:     "Singapore",
		OpeningHours: "0000-2359",
		PriceRange:   "LOW",
		Rating:       "4.2",
		Tags:         []string{"landmark"},
	}
}

func attractionBody(name string) map[string]any {
	in := attractionInput(name)
	return map[string]any{
		"name":          in.Name,
		"phone":         in.Phone,
		"email":         in.Email,
		"address":       in.Address,
		"description":   in.Description,
		"location":      in.Location,
		"opening_hours": in.OpeningHours,
		"price_range":   in.PriceRange,
		"rating":        in.Rating,
		"tags":          in.Tags,
	}
}

func itineraryFixture(t *testing.T, name string, days string) domain.Itinerary {
	t.Helper()
	it, err := parser.ParseItinerary(parser.ItineraryInput{Name: name, StartDate: "2026-11-02", Days: days})
	require.NoError(t, err)
	return it
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// do sends a request through h and returns the recorder.
func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, jsonBody(t, body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorder body into a fresh T.
func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

// Response shapes as seen by a client.

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type attractionJSON struct {
	Index   int      `json:"index"`
	Name    string   `json:"name"`
	Rating  string   `json:"rating"`
	Tags    []string `json:"tags"`
	Visited bool     `json:"visited"`
}

type attractionListJSON struct {
	Data       []attractionJSON `json:"data"`
	Pagination struct {
		Page  int `json:"page"`
		Limit int `json:"limit"`
		Total int `json:"total"`
	} `json:"pagination"`
}

type itineraryJSON struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
	Schedule  []struct {
		Day         int    `json:"day"`
		Date        string `json:"date"`
		Attractions []struct {
			Index      int            `json:"index"`
			Start      string         `json:"start"`
			End        string         `json:"end"`
			Attraction attractionJSON `json:"attraction"`
		} `json:"attractions"`
	} `json:"schedule"`
}

func attractionNames(as []attractionJSON) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.Name
	}
	return out
}

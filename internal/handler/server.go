// Package handler implements the TrackPad HTTP API on a chi router.
// Handlers are methods on Server and are split by resource (attraction.go,
// itinerary.go, plan.go, export.go, stream.go). Every request that reads or
// changes the model runs under Server's mutex, one command at a time.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trackpad/internal/domain"
	"github.com/pkordes/trackpad/internal/model"
)

// AttractionSaver persists the full attraction list after a change.
// repo.AttractionFile and the Postgres attraction repo both satisfy it.
type AttractionSaver interface {
	Save(ctx context.Context, as []domain.Attraction) error
}

// ItinerarySaver persists the full itinerary list after a change.
type ItinerarySaver interface {
	Save(ctx context.Context, its []domain.Itinerary) error
}

// Server serves the HTTP API over a single model.Model.
type Server struct {
	mu          sync.Mutex
	model       *model.Model
	attractions AttractionSaver
	itineraries ItinerarySaver
	log         *slog.Logger

	// Set when a save failed; the next save or Flush writes that list again.
	attractionsUnsaved bool
	itinerariesUnsaved bool

	attractionFeed *feed
	itineraryFeed  *feed
}

// NewServer constructs the Server. Either saver may be nil, in which case
// changes to that list are kept in memory only.
func NewServer(m *model.Model, attractions AttractionSaver, itineraries ItinerarySaver, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		model:          m,
		attractions:    attractions,
		itineraries:    itineraries,
		log:            log,
		attractionFeed: newFeed(log),
		itineraryFeed:  newFeed(log),
	}
	m.SubscribeAttractions(func(as []domain.Attraction) {
		s.attractionFeed.broadcast(attractionItems(as, 0))
	})
	m.SubscribeItineraries(func(its []domain.Itinerary) {
		s.itineraryFeed.broadcast(itinerarySummaries(its))
	})
	return s
}

// Routes returns the API router. Mount it at "/".
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/export", s.GetExport)

	r.Route("/attractions", func(r chi.Router) {
		r.Get("/", s.ListAttractions)
		r.Post("/", s.CreateAttraction)
		r.Put("/{index}", s.UpdateAttraction)
		r.Delete("/{index}", s.DeleteAttraction)
		r.Post("/{index}/visit", s.VisitAttraction)
	})

	r.Route("/itineraries", func(r chi.Router) {
		r.Get("/", s.ListItineraries)
		r.Post("/", s.CreateItinerary)
		r.Get("/current", s.GetCurrentItinerary)
		r.Delete("/current", s.CloseItinerary)
		r.Post("/current/days/{day}/attractions", s.AddPlannedAttraction)
		r.Delete("/current/days/{day}/attractions/{index}", s.DeletePlannedAttraction)
		r.Delete("/{index}", s.DeleteItinerary)
		r.Post("/{index}/open", s.OpenItinerary)
	})

	r.Get("/ws/attractions", s.StreamAttractions)
	r.Get("/ws/itineraries", s.StreamItineraries)

	return r
}

// MessageNotSaved is reported when a change was applied in memory but
// could not be written to storage.
const MessageNotSaved = "The change was applied but could not be saved. " +
	"It is kept in memory and saving is retried on the next change and at shutdown."

var errNotSaved = domain.NewError(domain.ErrPersistence, MessageNotSaved)

// saveAttractions writes both snapshots. Attraction edits cascade into
// itineraries, so the itinerary list is always written too.
func (s *Server) saveAttractions(ctx context.Context) error {
	return s.save(ctx, true)
}

// saveItineraries writes the itinerary snapshot, plus the attraction
// snapshot if an earlier attraction save failed.
func (s *Server) saveItineraries(ctx context.Context) error {
	return s.save(ctx, false)
}

func (s *Server) save(ctx context.Context, attractions bool) error {
	if attractions || s.attractionsUnsaved {
		if s.attractions != nil {
			if err := s.attractions.Save(ctx, s.model.Attractions()); err != nil {
				s.attractionsUnsaved = true
				s.itinerariesUnsaved = true
				return fmt.Errorf("handler.Server.save: attractions: %w: %w", errNotSaved, err)
			}
		}
		s.attractionsUnsaved = false
	}
	if s.itineraries != nil {
		if err := s.itineraries.Save(ctx, s.model.Itineraries()); err != nil {
			s.itinerariesUnsaved = true
			return fmt.Errorf("handler.Server.save: itineraries: %w: %w", errNotSaved, err)
		}
	}
	s.itinerariesUnsaved = false
	return nil
}

// Flush writes any list whose last save failed. When every change has
// already been saved it writes nothing, so stored data the server could
// not load is left as it was until a command changes the lists.
func (s *Server) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attractionsUnsaved && !s.itinerariesUnsaved {
		return nil
	}
	return s.save(ctx, s.attractionsUnsaved)
}

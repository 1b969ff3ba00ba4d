package model

import (
	"fmt"
	"log/slog"

	"github.com/pkordes/trackpad/internal/domain"
)

// MessageNoCurrentItinerary is reported by commands that need an open
// itinerary when none is open.
const MessageNoCurrentItinerary = "No itinerary is currently open"

// Model is the single surface commands use to read and change TrackPad's
// state. It owns both lists, their filtered views, and the user's
// preferences.
type Model struct {
	attractions         *AttractionList
	itineraries         *ItineraryList
	filteredAttractions *FilteredView[domain.Attraction]
	filteredItineraries *FilteredView[domain.Itinerary]
	prefs               domain.UserPrefs
	log                 *slog.Logger
}

// New builds a Model from snapshots. It fails with domain.ErrDuplicate if
// either snapshot breaks its list's uniqueness rule.
func New(attractions []domain.Attraction, itineraries []domain.Itinerary, prefs domain.UserPrefs, log *slog.Logger) (*Model, error) {
	if log == nil {
		log = slog.Default()
	}
	m := &Model{
		attractions: NewAttractionList(),
		itineraries: NewItineraryList(),
		prefs:       prefs,
		log:         log,
	}
	m.filteredAttractions = NewFilteredView(&m.attractions.List)
	m.filteredItineraries = NewFilteredView(&m.itineraries.List)

	if err := m.attractions.Reset(attractions); err != nil {
		return nil, fmt.Errorf("model.New: attractions: %w", err)
	}
	if err := m.itineraries.Reset(itineraries); err != nil {
		return nil, fmt.Errorf("model.New: itineraries: %w", err)
	}
	log.Debug("model initialized",
		"attractions", len(attractions),
		"itineraries", len(itineraries),
		"attraction_list_path", prefs.AttractionListPath,
		"itinerary_list_path", prefs.ItineraryListPath,
	)
	return m, nil
}

// NewEmpty builds a Model with no data and default preferences.
func NewEmpty(log *slog.Logger) *Model {
	m, _ := New(nil, nil, domain.DefaultUserPrefs(), log)
	return m
}

// --- preferences ------------------------------------------------------------

func (m *Model) Prefs() domain.UserPrefs { return m.prefs }

func (m *Model) SetPrefs(p domain.UserPrefs) { m.prefs = p }

func (m *Model) Window() domain.WindowSettings { return m.prefs.Window }

func (m *Model) SetWindow(w domain.WindowSettings) { m.prefs.Window = w }

func (m *Model) AttractionListPath() string { return m.prefs.AttractionListPath }

func (m *Model) SetAttractionListPath(p string) { m.prefs.AttractionListPath = p }

func (m *Model) ItineraryListPath() string { return m.prefs.ItineraryListPath }

func (m *Model) SetItineraryListPath(p string) { m.prefs.ItineraryListPath = p }

// --- attractions ------------------------------------------------------------

// HasAttraction reports whether an attraction with the same name exists.
func (m *Model) HasAttraction(a domain.Attraction) bool {
	return m.attractions.Contains(a)
}

// AddAttraction adds a and resets the attraction filter so it is visible.
func (m *Model) AddAttraction(a domain.Attraction) error {
	if err := m.attractions.Add(a); err != nil {
		return err
	}
	m.filteredAttractions.SetPredicate(nil)
	return nil
}

// DeleteAttraction removes target and every planned visit to it.
func (m *Model) DeleteAttraction(target domain.Attraction) error {
	if err := m.attractions.Remove(target); err != nil {
		return err
	}
	m.rewriteItineraries(target, func(it domain.Itinerary) domain.Itinerary {
		return it.RemoveAttraction(target)
	})
	return nil
}

// SetAttraction replaces target with edited, in the list and in every
// itinerary that plans a visit to it.
func (m *Model) SetAttraction(target, edited domain.Attraction) error {
	if err := m.attractions.Set(target, edited); err != nil {
		return err
	}
	m.rewriteItineraries(target, func(it domain.Itinerary) domain.Itinerary {
		return it.ReplaceAttraction(target, edited)
	})
	return nil
}

// MarkVisited replaces target with a visited copy and returns the copy.
func (m *Model) MarkVisited(target domain.Attraction) (domain.Attraction, error) {
	visited := target.MarkVisited()
	if err := m.SetAttraction(target, visited); err != nil {
		return domain.Attraction{}, err
	}
	return visited, nil
}

// Attractions returns every attraction, ignoring the filter.
func (m *Model) Attractions() []domain.Attraction { return m.attractions.Items() }

// FilteredAttractions returns the attractions that pass the current filter.
func (m *Model) FilteredAttractions() []domain.Attraction { return m.filteredAttractions.Visible() }

// UpdateFilteredAttractions installs p as the attraction filter.
func (m *Model) UpdateFilteredAttractions(p Predicate[domain.Attraction]) {
	m.filteredAttractions.SetPredicate(p)
}

// AttractionAt resolves a displayed index against the filtered attractions.
func (m *Model) AttractionAt(i domain.Index) (domain.Attraction, error) {
	return m.filteredAttractions.At(i)
}

// SetAttractionList replaces all attractions. Itineraries are left alone.
func (m *Model) SetAttractionList(as []domain.Attraction) error {
	if err := m.attractions.Reset(as); err != nil {
		return err
	}
	m.log.Debug("attraction list reset", "count", len(as))
	return nil
}

// SubscribeAttractions streams the filtered attractions after every change.
func (m *Model) SubscribeAttractions(fn func([]domain.Attraction)) (cancel func()) {
	return m.filteredAttractions.Subscribe(fn)
}

// --- itineraries ------------------------------------------------------------

// HasItinerary reports whether an itinerary with the same name exists.
func (m *Model) HasItinerary(it domain.Itinerary) bool {
	return m.itineraries.Contains(it)
}

// AddItinerary adds it and resets the itinerary filter so it is visible.
func (m *Model) AddItinerary(it domain.Itinerary) error {
	if err := m.itineraries.Add(it); err != nil {
		return err
	}
	m.filteredItineraries.SetPredicate(nil)
	return nil
}

// DeleteItinerary removes target, closing it if it was open.
func (m *Model) DeleteItinerary(target domain.Itinerary) error {
	return m.itineraries.Remove(target)
}

// SetItinerary replaces target with edited. If target was open, edited is.
func (m *Model) SetItinerary(target, edited domain.Itinerary) error {
	return m.itineraries.Set(target, edited)
}

// Itineraries returns every itinerary, ignoring the filter.
func (m *Model) Itineraries() []domain.Itinerary { return m.itineraries.Items() }

// FilteredItineraries returns the itineraries that pass the current filter.
func (m *Model) FilteredItineraries() []domain.Itinerary { return m.filteredItineraries.Visible() }

// UpdateFilteredItineraries installs p as the itinerary filter.
func (m *Model) UpdateFilteredItineraries(p Predicate[domain.Itinerary]) {
	m.filteredItineraries.SetPredicate(p)
}

// ItineraryAt resolves a displayed index against the filtered itineraries.
func (m *Model) ItineraryAt(i domain.Index) (domain.Itinerary, error) {
	return m.filteredItineraries.At(i)
}

// SetItineraryList replaces all itineraries and closes the open one.
func (m *Model) SetItineraryList(its []domain.Itinerary) error {
	if err := m.itineraries.Reset(its); err != nil {
		return err
	}
	m.log.Debug("itinerary list reset", "count", len(its))
	return nil
}

// SubscribeItineraries streams the filtered itineraries after every change.
func (m *Model) SubscribeItineraries(fn func([]domain.Itinerary)) (cancel func()) {
	return m.filteredItineraries.Subscribe(fn)
}

// OpenItinerary makes the itinerary at displayed index i the current one.
func (m *Model) OpenItinerary(i domain.Index) (domain.Itinerary, error) {
	it, err := m.ItineraryAt(i)
	if err != nil {
		return domain.Itinerary{}, err
	}
	if err := m.itineraries.SetCurrent(it); err != nil {
		return domain.Itinerary{}, err
	}
	return it, nil
}

// CurrentItinerary returns the open itinerary, if any.
func (m *Model) CurrentItinerary() (domain.Itinerary, bool) {
	return m.itineraries.Current()
}

// CloseItinerary clears the current itinerary.
func (m *Model) CloseItinerary() {
	m.itineraries.ClearCurrent()
}

// AddItineraryAttraction plans the attraction at displayed index attraction
// on day of the open itinerary, in the slot [start, end).
func (m *Model) AddItineraryAttraction(day, attraction domain.Index, start, end domain.TimeOfDay) (domain.Itinerary, error) {
	current, ok := m.itineraries.Current()
	if !ok {
		return domain.Itinerary{}, domain.NewError(domain.ErrNotFound, MessageNoCurrentItinerary)
	}
	a, err := m.AttractionAt(attraction)
	if err != nil {
		return domain.Itinerary{}, err
	}
	ia, err := domain.NewItineraryAttraction(a, start, end)
	if err != nil {
		return domain.Itinerary{}, err
	}
	updated, err := current.WithAttraction(day, ia)
	if err != nil {
		return domain.Itinerary{}, err
	}
	if err := m.itineraries.Set(current, updated); err != nil {
		return domain.Itinerary{}, err
	}
	return updated, nil
}

// DeleteItineraryAttraction removes the visit at index on day of the open
// itinerary.
func (m *Model) DeleteItineraryAttraction(day, index domain.Index) (domain.Itinerary, error) {
	current, ok := m.itineraries.Current()
	if !ok {
		return domain.Itinerary{}, domain.NewError(domain.ErrNotFound, MessageNoCurrentItinerary)
	}
	updated, err := current.WithoutAttraction(day, index)
	if err != nil {
		return domain.Itinerary{}, err
	}
	if err := m.itineraries.Set(current, updated); err != nil {
		return domain.Itinerary{}, err
	}
	return updated, nil
}

// rewriteItineraries replaces every itinerary that plans a visit to target
// with edit(itinerary). The replacement keeps the itinerary's name, so Set
// cannot fail on a duplicate.
func (m *Model) rewriteItineraries(target domain.Attraction, edit func(domain.Itinerary) domain.Itinerary) {
	for _, it := range m.itineraries.Items() {
		if !it.Contains(target) {
			continue
		}
		if err := m.itineraries.Set(it, edit(it)); err != nil {
			m.log.Error("rewrite itinerary", "itinerary", it.Name.String(), "error", err)
		}
	}
}

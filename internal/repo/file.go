package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkordes/trackpad/internal/domain"
)

type attractionDocument struct {
	Attractions []attractionRecord `json:"attractions"`
}

type itineraryDocument struct {
	Itineraries []itineraryRecord `json:"itineraries"`
}

// AttractionFile stores attractions as a JSON document on disk.
type AttractionFile struct {
	path string
	mu   sync.Mutex
}

// NewAttractionFile returns a store backed by the file at path.
// The file and its directory are created on first Save.
func NewAttractionFile(path string) *AttractionFile {
	return &AttractionFile{path: path}
}

var _ AttractionStore = (*AttractionFile)(nil)

// Path returns the backing file path.
func (f *AttractionFile) Path() string { return f.path }

func (f *AttractionFile) Load(_ context.Context) ([]domain.Attraction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var doc attractionDocument
	if err := readJSON(f.path, &doc); err != nil {
		return nil, fmt.Errorf("repo.AttractionFile.Load: %w", err)
	}
	as, err := decodeAttractions(doc.Attractions)
	if err != nil {
		return nil, fmt.Errorf("repo.AttractionFile.Load: %w", err)
	}
	return as, nil
}

func (f *AttractionFile) Save(_ context.Context, as []domain.Attraction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := writeJSON(f.path, attractionDocument{Attractions: encodeAttractions(as)}); err != nil {
		return fmt.Errorf("repo.AttractionFile.Save: %w", err)
	}
	return nil
}

// ItineraryFile stores itineraries as a JSON document on disk.
type ItineraryFile struct {
	path string
	mu   sync.Mutex
}

// NewItineraryFile returns a store backed by the file at path.
func NewItineraryFile(path string) *ItineraryFile {
	return &ItineraryFile{path: path}
}

var _ ItineraryStore = (*ItineraryFile)(nil)

// Path returns the backing file path.
func (f *ItineraryFile) Path() string { return f.path }

func (f *ItineraryFile) Load(_ context.Context) ([]domain.Itinerary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var doc itineraryDocument
	if err := readJSON(f.path, &doc); err != nil {
		return nil, fmt.Errorf("repo.ItineraryFile.Load: %w", err)
	}
	its, err := decodeItineraries(doc.Itineraries)
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryFile.Load: %w", err)
	}
	return its, nil
}

func (f *ItineraryFile) Save(_ context.Context, its []domain.Itinerary) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := writeJSON(f.path, itineraryDocument{Itineraries: encodeItineraries(its)}); err != nil {
		return fmt.Errorf("repo.ItineraryFile.Save: %w", err)
	}
	return nil
}

// readJSON decodes path into out. A missing file leaves out untouched and
// is not an error.
func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", domain.ErrPersistence, path, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", domain.ErrPersistence, path, err)
	}
	return nil
}

// writeJSON writes v via a temp file then rename.
func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", domain.ErrPersistence, err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: mkdir %s: %w", domain.ErrPersistence, dir, err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", domain.ErrPersistence, tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: rename %s: %w", domain.ErrPersistence, tmp, err)
	}
	return nil
}

package domain

// WindowSettings is the last known geometry of the presentation window.
// X and Y are nil until the window has been placed once.
type WindowSettings struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	X      *int    `yaml:"x,omitempty"`
	Y      *int    `yaml:"y,omitempty"`
}

// UserPrefs are the per-user settings kept alongside the data files.
type UserPrefs struct {
	Window             WindowSettings `yaml:"window"`
	AttractionListPath string         `yaml:"attraction_list_path"`
	ItineraryListPath  string         `yaml:"itinerary_list_path"`
}

// DefaultUserPrefs returns the settings used when no preferences file exists.
func DefaultUserPrefs() UserPrefs {
	return UserPrefs{
		Window:             WindowSettings{Width: 740, Height: 600},
		AttractionListPath: "data/attractionlist.json",
		ItineraryListPath:  "data/itinerarylist.json",
	}
}

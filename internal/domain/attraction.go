// Package domain contains the core data types for TrackPad: the validated
// field types, attractions, itineraries, and the errors the core reports.
// This package has no external dependencies and is imported by every other
// internal package (parser, model, repo, handler).
package domain

// Attraction is a point of interest the user may visit.
// Values are never edited in place: edits build a new Attraction that
// replaces the old one in its list.
type Attraction struct {
	Name         Name
	Phone        Phone
	Email        Email
	Address      Address
	Description  Description
	Location     Location
	OpeningHours OpeningHours
	PriceRange   PriceRange
	Rating       Rating
	Tags         TagSet
	Visited      bool
}

// NewAttraction assembles an unvisited attraction from already validated
// fields. It performs no validation of its own.
func NewAttraction(name Name, phone Phone, email Email, address Address, description Description,
	location Location, hours OpeningHours, price PriceRange, rating Rating, tags TagSet) Attraction {
	return Attraction{
		Name:         name,
		Phone:        phone,
		Email:        email,
		Address:      address,
		Description:  description,
		Location:     location,
		OpeningHours: hours,
		PriceRange:   price,
		Rating:       rating,
		Tags:         tags,
	}
}

// IsSame reports whether a and other name the same attraction. This is the
// duplicate rule for lists and is weaker than Equal.
func (a Attraction) IsSame(other Attraction) bool {
	return a.Name.SameAs(other.Name)
}

// Equal reports whether every field of a and other matches.
func (a Attraction) Equal(other Attraction) bool {
	return a.Name == other.Name &&
		a.Phone == other.Phone &&
		a.Email == other.Email &&
		a.Address == other.Address &&
		a.Description == other.Description &&
		a.Location == other.Location &&
		a.OpeningHours == other.OpeningHours &&
		a.PriceRange == other.PriceRange &&
		a.Rating == other.Rating &&
		a.Tags.Equal(other.Tags) &&
		a.Visited == other.Visited
}

// MarkVisited returns a copy of a flagged as visited.
func (a Attraction) MarkVisited() Attraction {
	a.Visited = true
	return a
}

// WithTags returns a copy of a carrying tags instead of its current set.
func (a Attraction) WithTags(tags TagSet) Attraction {
	a.Tags = tags
	return a
}

package domain

import (
	"fmt"
	"slices"
)

// MaxDays bounds the length of an itinerary.
const MaxDays = 365

const (
	// DaysConstraints is reported when a number of days is rejected.
	DaysConstraints = "Number of days should be a whole number from 1 to 365"

	// TimeSlotConstraints is reported when a visit ends before it starts.
	TimeSlotConstraints = "The start time should be before the end time"

	// MessageInvalidDay is reported when a day index is outside the itinerary.
	MessageInvalidDay = "The day provided is not within the itinerary"

	// MessageInvalidItineraryAttractionIndex is reported when a visit index is
	// outside the given day.
	MessageInvalidItineraryAttractionIndex = "The itinerary attraction index provided is invalid"

	// MessageTimeClash is reported when a new visit overlaps an existing one.
	MessageTimeClash = "The time slot clashes with another attraction planned on that day"
)

// ItineraryAttraction is one planned visit: an attraction and the time slot
// reserved for it on a given day.
type ItineraryAttraction struct {
	Attraction Attraction
	Start      TimeOfDay
	End        TimeOfDay
}

// NewItineraryAttraction pairs a with a time slot. The slot must start
// before it ends.
func NewItineraryAttraction(a Attraction, start, end TimeOfDay) (ItineraryAttraction, error) {
	if !start.Before(end) {
		return ItineraryAttraction{}, invalid(FieldTimeOfDay, TimeSlotConstraints)
	}
	return ItineraryAttraction{Attraction: a, Start: start, End: end}, nil
}

// Equal reports whether both visits are to equal attractions in the same slot.
func (ia ItineraryAttraction) Equal(other ItineraryAttraction) bool {
	return ia.Start == other.Start && ia.End == other.End && ia.Attraction.Equal(other.Attraction)
}

// Overlaps reports whether the two time slots share any minute.
func (ia ItineraryAttraction) Overlaps(other ItineraryAttraction) bool {
	return ia.Start.Before(other.End) && other.Start.Before(ia.End)
}

// Itinerary is a named, dated, multi-day plan. Day order and the order of
// visits within a day are significant.
// Like Attraction, an Itinerary is replaced rather than edited: every With*
// method returns a new value and leaves the receiver untouched.
type Itinerary struct {
	Name      Name
	StartDate Date
	days      [][]ItineraryAttraction
}

// IsValidNumberOfDays reports whether n is an acceptable itinerary length.
func IsValidNumberOfDays(n int) bool {
	return n >= 1 && n <= MaxDays
}

// NewItinerary builds an itinerary from its parts. days must hold exactly
// numberOfDays entries; any entry may be empty.
func NewItinerary(name Name, start Date, numberOfDays int, days [][]ItineraryAttraction) (Itinerary, error) {
	if !IsValidNumberOfDays(numberOfDays) || len(days) != numberOfDays {
		return Itinerary{}, invalid(FieldDays, DaysConstraints)
	}
	return Itinerary{Name: name, StartDate: start, days: cloneDays(days)}, nil
}

// NewEmptyItinerary builds an itinerary with numberOfDays empty days.
func NewEmptyItinerary(name Name, start Date, numberOfDays int) (Itinerary, error) {
	if !IsValidNumberOfDays(numberOfDays) {
		return Itinerary{}, invalid(FieldDays, DaysConstraints)
	}
	return NewItinerary(name, start, numberOfDays, make([][]ItineraryAttraction, numberOfDays))
}

// NumberOfDays returns how many days the itinerary spans.
func (it Itinerary) NumberOfDays() int { return len(it.days) }

// EndDate returns the last day of the itinerary.
func (it Itinerary) EndDate() Date { return it.StartDate.AddDays(len(it.days) - 1) }

// Days returns a copy of the per-day visits.
func (it Itinerary) Days() [][]ItineraryAttraction { return cloneDays(it.days) }

// Day returns a copy of the visits planned on day.
func (it Itinerary) Day(day Index) ([]ItineraryAttraction, error) {
	if !day.In(len(it.days)) {
		return nil, NewError(ErrInvalidIndex, MessageInvalidDay)
	}
	return slices.Clone(it.days[day.ZeroBased()]), nil
}

// IsSame reports whether it and other share a normalized name.
func (it Itinerary) IsSame(other Itinerary) bool {
	return it.Name.SameAs(other.Name)
}

// Equal reports structural equality including day and visit order.
func (it Itinerary) Equal(other Itinerary) bool {
	if it.Name != other.Name || !it.StartDate.Equal(other.StartDate) || len(it.days) != len(other.days) {
		return false
	}
	for i := range it.days {
		if !slices.EqualFunc(it.days[i], other.days[i], ItineraryAttraction.Equal) {
			return false
		}
	}
	return true
}

// WithAttraction returns a copy of it with ia planned on day. Visits within a
// day stay ordered by start time; a visit whose slot overlaps an existing one
// is rejected.
func (it Itinerary) WithAttraction(day Index, ia ItineraryAttraction) (Itinerary, error) {
	if !day.In(len(it.days)) {
		return Itinerary{}, NewError(ErrInvalidIndex, MessageInvalidDay)
	}
	visits := it.days[day.ZeroBased()]
	for _, v := range visits {
		if v.Overlaps(ia) {
			return Itinerary{}, NewError(ErrValidation, MessageTimeClash)
		}
	}
	pos := len(visits)
	for i, v := range visits {
		if ia.Start.Before(v.Start) {
			pos = i
			break
		}
	}
	out := it.clone()
	out.days[day.ZeroBased()] = slices.Insert(slices.Clone(visits), pos, ia)
	return out, nil
}

// WithoutAttraction returns a copy of it with the visit at index removed
// from day.
func (it Itinerary) WithoutAttraction(day, index Index) (Itinerary, error) {
	if !day.In(len(it.days)) {
		return Itinerary{}, NewError(ErrInvalidIndex, MessageInvalidDay)
	}
	visits := it.days[day.ZeroBased()]
	if !index.In(len(visits)) {
		return Itinerary{}, NewError(ErrInvalidIndex, MessageInvalidItineraryAttractionIndex)
	}
	out := it.clone()
	out.days[day.ZeroBased()] = slices.Delete(slices.Clone(visits), index.ZeroBased(), index.ZeroBased()+1)
	return out, nil
}

// Contains reports whether any visit is to an attraction equal to a.
func (it Itinerary) Contains(a Attraction) bool {
	for _, visits := range it.days {
		for _, v := range visits {
			if v.Attraction.Equal(a) {
				return true
			}
		}
	}
	return false
}

// ReplaceAttraction returns a copy of it in which every visit to target is
// a visit to replacement instead, keeping the time slots.
func (it Itinerary) ReplaceAttraction(target, replacement Attraction) Itinerary {
	out := it.clone()
	for d := range out.days {
		for i := range out.days[d] {
			if out.days[d][i].Attraction.Equal(target) {
				out.days[d][i].Attraction = replacement
			}
		}
	}
	return out
}

// RemoveAttraction returns a copy of it with every visit to a dropped.
func (it Itinerary) RemoveAttraction(a Attraction) Itinerary {
	out := it.clone()
	for d := range out.days {
		out.days[d] = slices.DeleteFunc(out.days[d], func(v ItineraryAttraction) bool {
			return v.Attraction.Equal(a)
		})
	}
	return out
}

func (it Itinerary) String() string {
	return fmt.Sprintf("%s (%s, %d days)", it.Name, it.StartDate, len(it.days))
}

func (it Itinerary) clone() Itinerary {
	it.days = cloneDays(it.days)
	return it
}

func cloneDays(days [][]ItineraryAttraction) [][]ItineraryAttraction {
	out := make([][]ItineraryAttraction, len(days))
	for i, d := range days {
		out[i] = slices.Clone(d)
	}
	return out
}

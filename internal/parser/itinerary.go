package parser

import "github.com/pkordes/trackpad/internal/domain"

// ItineraryInput holds the raw text needed to create an itinerary.
type ItineraryInput struct {
	Name      string
	StartDate string
	Days      string
}

// ParseItinerary validates in and builds an itinerary with empty days.
func ParseItinerary(in ItineraryInput) (domain.Itinerary, error) {
	var f fields
	name := field(&f, ParseName, in.Name)
	start := field(&f, ParseDate, in.StartDate)
	days := field(&f, ParseNumberOfDays, in.Days)
	if f.err != nil {
		return domain.Itinerary{}, f.err
	}
	return domain.NewEmptyItinerary(name, start, days)
}

// ParseTimeSlot parses a visit's start and end times.
// The start must be before the end.
func ParseTimeSlot(start, end string) (domain.TimeOfDay, domain.TimeOfDay, error) {
	var f fields
	s := field(&f, ParseTimeOfDay, start)
	e := field(&f, ParseTimeOfDay, end)
	if f.err != nil {
		return domain.TimeOfDay{}, domain.TimeOfDay{}, f.err
	}
	if !s.Before(e) {
		return domain.TimeOfDay{}, domain.TimeOfDay{}, &domain.ValidationError{
			Field:   domain.FieldTimeOfDay,
			Message: domain.TimeSlotConstraints,
		}
	}
	return s, e, nil
}

package model

import "github.com/pkordes/trackpad/internal/domain"

const (
	MessageDuplicateItinerary = "This itinerary already exists in TrackPad"
	MessageItineraryNotFound  = "The itinerary could not be found in TrackPad"
)

const noCurrent = -1

// ItineraryList owns every itinerary, unique by name, and remembers which
// one is open. The open itinerary is tracked by position, so removing or
// replacing elements keeps it consistent without callers' help: Set leaves
// the position alone and so repoints current to the replacement.
type ItineraryList struct {
	List[domain.Itinerary]
	current int
}

// NewItineraryList returns an empty list with no current itinerary.
func NewItineraryList() *ItineraryList {
	return &ItineraryList{
		List:    newList[domain.Itinerary](MessageDuplicateItinerary, MessageItineraryNotFound),
		current: noCurrent,
	}
}

// Remove deletes the itinerary equal to it. If that was the current one the
// current reference is cleared.
func (l *ItineraryList) Remove(it domain.Itinerary) error {
	i, err := l.remove(it)
	if err != nil {
		return err
	}
	switch {
	case l.current == i:
		l.current = noCurrent
	case l.current > i:
		l.current--
	}
	l.notify()
	return nil
}

// Reset replaces the contents and clears the current itinerary.
func (l *ItineraryList) Reset(its []domain.Itinerary) error {
	if err := l.reset(its); err != nil {
		return err
	}
	l.current = noCurrent
	l.notify()
	return nil
}

// SetCurrent marks the itinerary equal to it as open.
// Returns domain.ErrNotFound if no such itinerary is in the list.
func (l *ItineraryList) SetCurrent(it domain.Itinerary) error {
	i := l.indexOf(it)
	if i < 0 {
		return domain.NewError(domain.ErrNotFound, l.msgNotFound)
	}
	l.current = i
	return nil
}

// Current returns the open itinerary, if any.
func (l *ItineraryList) Current() (domain.Itinerary, bool) {
	if l.current == noCurrent {
		return domain.Itinerary{}, false
	}
	return l.items[l.current], true
}

// ClearCurrent closes the open itinerary.
func (l *ItineraryList) ClearCurrent() {
	l.current = noCurrent
}

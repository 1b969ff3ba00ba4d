package model

import "github.com/pkordes/trackpad/internal/domain"

const (
	MessageDuplicateAttraction = "This attraction already exists in TrackPad"
	MessageAttractionNotFound  = "The attraction could not be found in TrackPad"
)

// AttractionList owns every attraction, unique by name.
type AttractionList struct {
	List[domain.Attraction]
}

// NewAttractionList returns an empty list.
func NewAttractionList() *AttractionList {
	return &AttractionList{List: newList[domain.Attraction](MessageDuplicateAttraction, MessageAttractionNotFound)}
}

package domain

import (
	"regexp"
	"strings"
)

// NameConstraints is reported when a name is rejected.
const NameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

var nameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)

// Name is the display name of an attraction or itinerary.
type Name struct {
	value string
}

// IsValidName reports whether raw is acceptable as a Name.
func IsValidName(raw string) bool {
	return nameRe.MatchString(raw)
}

// NewName validates raw and wraps it.
func NewName(raw string) (Name, error) {
	if !IsValidName(raw) {
		return Name{}, invalid(FieldName, NameConstraints)
	}
	return Name{value: raw}, nil
}

func (n Name) String() string { return n.value }

// SameAs compares names the way duplicate detection does: trimmed and
// case-insensitive.
func (n Name) SameAs(other Name) bool {
	return strings.EqualFold(strings.TrimSpace(n.value), strings.TrimSpace(other.value))
}

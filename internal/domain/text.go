package domain

import "regexp"

const (
	// AddressConstraints is reported when an address is rejected.
	AddressConstraints = "Addresses can take any values, and it should not be blank"

	// DescriptionConstraints is reported when a description is rejected.
	DescriptionConstraints = "Descriptions can take any values, and it should not be blank"

	// LocationConstraints is reported when a location is rejected.
	LocationConstraints = "Locations should only contain letters, spaces, commas, apostrophes and hyphens, " +
		"and it should start with a letter"
)

// The first character must not be whitespace, otherwise " " passes.
var (
	freeTextRe = regexp.MustCompile(`^[^\s].*$`)
	locationRe = regexp.MustCompile(`^[A-Za-z][A-Za-z ,'-]*$`)
)

// Address is the street address of an attraction.
type Address struct {
	value string
}

// IsValidAddress reports whether raw is acceptable as an Address.
func IsValidAddress(raw string) bool {
	return freeTextRe.MatchString(raw)
}

// NewAddress validates raw and wraps it.
func NewAddress(raw string) (Address, error) {
	if !IsValidAddress(raw) {
		return Address{}, invalid(FieldAddress, AddressConstraints)
	}
	return Address{value: raw}, nil
}

func (a Address) String() string { return a.value }

// Description is free text about an attraction.
type Description struct {
	value string
}

// IsValidDescription reports whether raw is acceptable as a Description.
func IsValidDescription(raw string) bool {
	return freeTextRe.MatchString(raw)
}

// NewDescription validates raw and wraps it.
func NewDescription(raw string) (Description, error) {
	if !IsValidDescription(raw) {
		return Description{}, invalid(FieldDescription, DescriptionConstraints)
	}
	return Description{value: raw}, nil
}

func (d Description) String() string { return d.value }

// Location is the city or region an attraction is in, e.g. "Singapore" or
// "Bali, Indonesia".
type Location struct {
	value string
}

// IsValidLocation reports whether raw is acceptable as a Location.
func IsValidLocation(raw string) bool {
	return locationRe.MatchString(raw)
}

// NewLocation validates raw and wraps it.
func NewLocation(raw string) (Location, error) {
	if !IsValidLocation(raw) {
		return Location{}, invalid(FieldLocation, LocationConstraints)
	}
	return Location{value: raw}, nil
}

func (l Location) String() string { return l.value }

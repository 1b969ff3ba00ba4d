package domain

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// PriceRangeConstraints is reported when a price range is rejected.
	PriceRangeConstraints = "Price range should be one of LOW, MEDIUM or HIGH"

	// RatingConstraints is reported when a rating is rejected.
	RatingConstraints = "Ratings should be a number from 0 to 5 with at most one decimal place"

	maxRating = 5.0
)

var (
	priceRanges = []string{"LOW", "MEDIUM", "HIGH"}
	ratingRe    = regexp.MustCompile(`^[0-9](\.[0-9])?$`)
)

// PriceRange is a coarse cost band. Values are stored upper case.
type PriceRange struct {
	value string
}

// IsValidPriceRange reports whether raw is acceptable as a PriceRange.
func IsValidPriceRange(raw string) bool {
	for _, p := range priceRanges {
		if strings.EqualFold(raw, p) {
			return true
		}
	}
	return false
}

// NewPriceRange validates raw and wraps it.
func NewPriceRange(raw string) (PriceRange, error) {
	if !IsValidPriceRange(raw) {
		return PriceRange{}, invalid(FieldPriceRange, PriceRangeConstraints)
	}
	return PriceRange{value: strings.ToUpper(raw)}, nil
}

func (p PriceRange) String() string { return p.value }

// Rating is a score from 0 to 5.
type Rating struct {
	value string
}

// IsValidRating reports whether raw is acceptable as a Rating.
func IsValidRating(raw string) bool {
	if !ratingRe.MatchString(raw) {
		return false
	}
	f, err := strconv.ParseFloat(raw, 64)
	return err == nil && f >= 0 && f <= maxRating
}

// NewRating validates raw and wraps it.
func NewRating(raw string) (Rating, error) {
	if !IsValidRating(raw) {
		return Rating{}, invalid(FieldRating, RatingConstraints)
	}
	return Rating{value: raw}, nil
}

// Value returns the rating as a number.
func (r Rating) Value() float64 {
	f, _ := strconv.ParseFloat(r.value, 64)
	return f
}

func (r Rating) String() string { return r.value }

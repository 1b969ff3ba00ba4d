// Package parser turns raw user-supplied strings into validated domain
// values. It is the only trust boundary of the core: everything past it
// assumes well-formed fields.
//
// Every Parse function trims leading and trailing whitespace before
// validating. Composite parsers stop at the first invalid field.
package parser

import (
	"strconv"
	"strings"

	"github.com/pkordes/trackpad/internal/domain"
)

// MessageInvalidIndex is reported for index strings that are not positive
// integers.
const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// ParseIndex parses a 1-based index such as "3".
// Returns domain.ErrInvalidIndexFormat for anything that is not a positive
// integer, including "0", "-1", "+1" and "1.0".
func ParseIndex(oneBased string) (domain.Index, error) {
	s := strings.TrimSpace(oneBased)
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return domain.Index{}, domain.NewError(domain.ErrInvalidIndexFormat, MessageInvalidIndex)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return domain.Index{}, domain.NewError(domain.ErrInvalidIndexFormat, MessageInvalidIndex)
	}
	return domain.FromOneBased(n), nil
}

func ParseName(raw string) (domain.Name, error) {
	return domain.NewName(strings.TrimSpace(raw))
}

func ParsePhone(raw string) (domain.Phone, error) {
	return domain.NewPhone(strings.TrimSpace(raw))
}

func ParseEmail(raw string) (domain.Email, error) {
	return domain.NewEmail(strings.TrimSpace(raw))
}

func ParseAddress(raw string) (domain.Address, error) {
	return domain.NewAddress(strings.TrimSpace(raw))
}

func ParseDescription(raw string) (domain.Description, error) {
	return domain.NewDescription(strings.TrimSpace(raw))
}

func ParseLocation(raw string) (domain.Location, error) {
	return domain.NewLocation(strings.TrimSpace(raw))
}

func ParseOpeningHours(raw string) (domain.OpeningHours, error) {
	return domain.NewOpeningHours(strings.TrimSpace(raw))
}

func ParsePriceRange(raw string) (domain.PriceRange, error) {
	return domain.NewPriceRange(strings.TrimSpace(raw))
}

// ParseRating validates with the rating's own numeric rule.
func ParseRating(raw string) (domain.Rating, error) {
	return domain.NewRating(strings.TrimSpace(raw))
}

func ParseTag(raw string) (domain.Tag, error) {
	return domain.NewTag(strings.TrimSpace(raw))
}

// ParseTags parses each name and collects the results into a set.
func ParseTags(raw []string) (domain.TagSet, error) {
	tags := make([]domain.Tag, 0, len(raw))
	for _, r := range raw {
		tag, err := ParseTag(r)
		if err != nil {
			return domain.TagSet{}, err
		}
		tags = append(tags, tag)
	}
	return domain.NewTagSet(tags...), nil
}

func ParseDate(raw string) (domain.Date, error) {
	return domain.NewDate(strings.TrimSpace(raw))
}

func ParseTimeOfDay(raw string) (domain.TimeOfDay, error) {
	return domain.NewTimeOfDay(strings.TrimSpace(raw))
}

// ParseNumberOfDays parses an itinerary length from 1 to domain.MaxDays.
func ParseNumberOfDays(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || !domain.IsValidNumberOfDays(n) {
		return 0, &domain.ValidationError{Field: domain.FieldDays, Message: domain.DaysConstraints}
	}
	return n, nil
}

package parser

import "github.com/pkordes/trackpad/internal/domain"

// MessageNotEdited is reported when an edit names no fields.
const MessageNotEdited = "At least one field to edit must be provided."

// AttractionInput holds the raw text of every attraction field.
type AttractionInput struct {
	Name         string
	Phone        string
	Email        string
	Address      string
	Description  string
	Location     string
	OpeningHours string
	PriceRange   string
	Rating       string
	Tags         []string
}

// AttractionEdit holds raw replacements for an existing attraction.
// Nil fields keep their current value; a non-nil Tags replaces the whole set.
type AttractionEdit struct {
	Name         *string
	Phone        *string
	Email        *string
	Address      *string
	Description  *string
	Location     *string
	OpeningHours *string
	PriceRange   *string
	Rating       *string
	Tags         *[]string
}

// IsEmpty reports whether the edit changes nothing.
func (e AttractionEdit) IsEmpty() bool {
	return e.Name == nil && e.Phone == nil && e.Email == nil && e.Address == nil &&
		e.Description == nil && e.Location == nil && e.OpeningHours == nil &&
		e.PriceRange == nil && e.Rating == nil && e.Tags == nil
}

// fields parses a sequence of raw values, remembering only the first
// failure. Once err is set every later call is a no-op.
type fields struct {
	err error
}

func field[T any](f *fields, parse func(string) (T, error), raw string) T {
	var zero T
	if f.err != nil {
		return zero
	}
	v, err := parse(raw)
	if err != nil {
		f.err = err
		return zero
	}
	return v
}

// editField parses raw when it is set, otherwise keeps current.
func editField[T any](f *fields, parse func(string) (T, error), raw *string, current T) T {
	if raw == nil || f.err != nil {
		return current
	}
	return field(f, parse, *raw)
}

// ParseAttraction validates every field of in, in declaration order, and
// builds an unvisited Attraction. The first invalid field's
// *domain.ValidationError is returned.
func ParseAttraction(in AttractionInput) (domain.Attraction, error) {
	var f fields
	name := field(&f, ParseName, in.Name)
	phone := field(&f, ParsePhone, in.Phone)
	email := field(&f, ParseEmail, in.Email)
	address := field(&f, ParseAddress, in.Address)
	description := field(&f, ParseDescription, in.Description)
	location := field(&f, ParseLocation, in.Location)
	hours := field(&f, ParseOpeningHours, in.OpeningHours)
	price := field(&f, ParsePriceRange, in.PriceRange)
	rating := field(&f, ParseRating, in.Rating)
	if f.err != nil {
		return domain.Attraction{}, f.err
	}
	tags, err := ParseTags(in.Tags)
	if err != nil {
		return domain.Attraction{}, err
	}
	return domain.NewAttraction(name, phone, email, address, description, location, hours, price, rating, tags), nil
}

// EditAttraction applies edit to orig and returns the replacement value.
// The visited flag carries over. orig is not modified.
func EditAttraction(orig domain.Attraction, edit AttractionEdit) (domain.Attraction, error) {
	if edit.IsEmpty() {
		return domain.Attraction{}, domain.NewError(domain.ErrValidation, MessageNotEdited)
	}
	var f fields
	out := orig
	out.Name = editField(&f, ParseName, edit.Name, orig.Name)
	out.Phone = editField(&f, ParsePhone, edit.Phone, orig.Phone)
	out.Email = editField(&f, ParseEmail, edit.Email, orig.Email)
	out.Address = editField(&f, ParseAddress, edit.Address, orig.Address)
	out.Description = editField(&f, ParseDescription, edit.Description, orig.Description)
	out.Location = editField(&f, ParseLocation, edit.Location, orig.Location)
	out.OpeningHours = editField(&f, ParseOpeningHours, edit.OpeningHours, orig.OpeningHours)
	out.PriceRange = editField(&f, ParsePriceRange, edit.PriceRange, orig.PriceRange)
	out.Rating = editField(&f, ParseRating, edit.Rating, orig.Rating)
	if f.err != nil {
		return domain.Attraction{}, f.err
	}
	if edit.Tags != nil {
		tags, err := ParseTags(*edit.Tags)
		if err != nil {
			return domain.Attraction{}, err
		}
		out.Tags = tags
	}
	return out, nil
}

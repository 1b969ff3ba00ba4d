package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trackpad/internal/domain"
	"github.com/pkordes/trackpad/internal/parser"
)

func validInput() parser.AttractionInput {
	return parser.AttractionInput{
		Name:         "  Zoo ",
		Phone:        "91234567",
		Email:        "info@zoo.sg",
		Address:      "80 Mandai Lake Rd",
		Description:  "Open-air zoo",
		Location:     "Singapore",
		OpeningHours: "0830-1800",
		PriceRange:   "medium",
		Rating:       "4.5",
		Tags:         []string{"animals", " family ", "animals"},
	}
}

func strPtr(s string) *string { return &s }

func TestParseIndex(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "1", want: 0},
		{raw: "  12 ", want: 11},
		{raw: "0", wantErr: true},
		{raw: "-1", wantErr: true},
		{raw: "+1", wantErr: true},
		{raw: "1.0", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "99999999999999999999999", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := parser.ParseIndex(tc.raw)
			if tc.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidIndexFormat)
				assert.Equal(t, parser.MessageInvalidIndex, domain.UserMessage(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.ZeroBased())
		})
	}
}

func TestParseAttraction_OK(t *testing.T) {
	a, err := parser.ParseAttraction(validInput())

	require.NoError(t, err)
	assert.Equal(t, "Zoo", a.Name.String())
	assert.Equal(t, "MEDIUM", a.PriceRange.String())
	assert.Equal(t, []string{"animals", "family"}, a.Tags.Names())
	assert.False(t, a.Visited)
}

func TestParseAttraction_FirstInvalidFieldWins(t *testing.T) {
	in := validInput()
	in.Phone = "abc"
	in.Email = "not-an-email"
	in.Rating = "9"

	_, err := parser.ParseAttraction(in)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, domain.FieldPhone, ve.Field)
	assert.Equal(t, domain.PhoneConstraints, ve.Message)
}

func TestParseAttraction_InvalidTag(t *testing.T) {
	in := validInput()
	in.Tags = []string{"ok", "not ok"}

	_, err := parser.ParseAttraction(in)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.TagConstraints, domain.UserMessage(err))
}

func TestParseRating_UsesNumericRule(t *testing.T) {
	_, err := parser.ParseRating("80 Mandai Lake Rd")
	assert.ErrorIs(t, err, domain.ErrValidation)

	r, err := parser.ParseRating(" 3.5 ")
	require.NoError(t, err)
	assert.InDelta(t, 3.5, r.Value(), 0.001)
}

func TestEditAttraction(t *testing.T) {
	orig, err := parser.ParseAttraction(validInput())
	require.NoError(t, err)
	orig = orig.MarkVisited()

	edited, err := parser.EditAttraction(orig, parser.AttractionEdit{
		Phone: strPtr("65550000"),
		Tags:  &[]string{},
	})

	require.NoError(t, err)
	assert.Equal(t, "65550000", edited.Phone.String())
	assert.Equal(t, orig.Name, edited.Name)
	assert.Equal(t, 0, edited.Tags.Len())
	assert.True(t, edited.Visited, "visited flag carries over")
	assert.Equal(t, "91234567", orig.Phone.String(), "original untouched")
}

func TestEditAttraction_Empty(t *testing.T) {
	orig, _ := parser.ParseAttraction(validInput())

	_, err := parser.EditAttraction(orig, parser.AttractionEdit{})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, parser.MessageNotEdited, domain.UserMessage(err))
}

func TestEditAttraction_Invalid(t *testing.T) {
	orig, _ := parser.ParseAttraction(validInput())

	_, err := parser.EditAttraction(orig, parser.AttractionEdit{Name: strPtr("Zoo!")})

	assert.Equal(t, domain.NameConstraints, domain.UserMessage(err))
}

func TestParseItinerary(t *testing.T) {
	it, err := parser.ParseItinerary(parser.ItineraryInput{Name: "Bali Trip", StartDate: "2026-12-01", Days: " 4"})
	require.NoError(t, err)
	assert.Equal(t, 4, it.NumberOfDays())
	assert.Equal(t, "2026-12-04", it.EndDate().String())

	_, err = parser.ParseItinerary(parser.ItineraryInput{Name: "Bali Trip", StartDate: "2026-12-01", Days: "0"})
	assert.Equal(t, domain.DaysConstraints, domain.UserMessage(err))

	_, err = parser.ParseItinerary(parser.ItineraryInput{Name: "Bali Trip", StartDate: "tomorrow", Days: "x"})
	assert.Equal(t, domain.DateConstraints, domain.UserMessage(err))
}

func TestParseTimeSlot(t *testing.T) {
	start, end, err := parser.ParseTimeSlot("0900", "1130")
	require.NoError(t, err)
	assert.Equal(t, "0900", start.String())
	assert.Equal(t, "1130", end.String())

	_, _, err = parser.ParseTimeSlot("1130", "0900")
	assert.Equal(t, domain.TimeSlotConstraints, domain.UserMessage(err))

	_, _, err = parser.ParseTimeSlot("9", "0900")
	assert.Equal(t, domain.TimeOfDayConstraints, domain.UserMessage(err))
}

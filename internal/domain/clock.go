package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	// TimeOfDayConstraints is reported when a visit time is rejected.
	TimeOfDayConstraints = "Times should be in 24-hour HHMM format, from 0000 to 2359"

	// OpeningHoursConstraints is reported when opening hours are rejected.
	OpeningHoursConstraints = "Opening hours should be in the format HHMM-HHMM using the 24-hour clock, " +
		"and the opening time should be before the closing time"

	// DateConstraints is reported when a date is rejected.
	DateConstraints = "Dates should be valid calendar dates in the format YYYY-MM-DD"

	dateLayout = "2006-01-02"
)

var (
	timeOfDayRe    = regexp.MustCompile(`^([01][0-9]|2[0-3])[0-5][0-9]$`)
	openingHoursRe = regexp.MustCompile(`^([0-9]{4})-([0-9]{4})$`)
)

// TimeOfDay is a wall-clock time in HHMM form, used for itinerary time slots.
type TimeOfDay struct {
	minutes int
}

// IsValidTimeOfDay reports whether raw is acceptable as a TimeOfDay.
func IsValidTimeOfDay(raw string) bool {
	return timeOfDayRe.MatchString(raw)
}

// NewTimeOfDay validates raw and wraps it.
func NewTimeOfDay(raw string) (TimeOfDay, error) {
	if !IsValidTimeOfDay(raw) {
		return TimeOfDay{}, invalid(FieldTimeOfDay, TimeOfDayConstraints)
	}
	h, _ := strconv.Atoi(raw[:2])
	m, _ := strconv.Atoi(raw[2:])
	return TimeOfDay{minutes: h*60 + m}, nil
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool { return t.minutes < other.minutes }

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d%02d", t.minutes/60, t.minutes%60)
}

// OpeningHours is a daily opening window such as "0900-1800".
type OpeningHours struct {
	open  TimeOfDay
	close TimeOfDay
}

// IsValidOpeningHours reports whether raw is acceptable as OpeningHours.
func IsValidOpeningHours(raw string) bool {
	m := openingHoursRe.FindStringSubmatch(raw)
	if m == nil || !IsValidTimeOfDay(m[1]) || !IsValidTimeOfDay(m[2]) {
		return false
	}
	open, _ := NewTimeOfDay(m[1])
	closing, _ := NewTimeOfDay(m[2])
	return open.Before(closing)
}

// NewOpeningHours validates raw and wraps it.
func NewOpeningHours(raw string) (OpeningHours, error) {
	if !IsValidOpeningHours(raw) {
		return OpeningHours{}, invalid(FieldOpeningHours, OpeningHoursConstraints)
	}
	m := openingHoursRe.FindStringSubmatch(raw)
	open, _ := NewTimeOfDay(m[1])
	closing, _ := NewTimeOfDay(m[2])
	return OpeningHours{open: open, close: closing}, nil
}

// Open returns the opening time.
func (o OpeningHours) Open() TimeOfDay { return o.open }

// Close returns the closing time.
func (o OpeningHours) Close() TimeOfDay { return o.close }

func (o OpeningHours) String() string {
	return o.open.String() + "-" + o.close.String()
}

// Date is a calendar date with no time component.
type Date struct {
	t time.Time
}

// IsValidDate reports whether raw is acceptable as a Date.
func IsValidDate(raw string) bool {
	_, err := time.Parse(dateLayout, raw)
	return err == nil
}

// NewDate validates raw and wraps it.
func NewDate(raw string) (Date, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return Date{}, invalid(FieldDate, DateConstraints)
	}
	return Date{t: t}, nil
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time { return d.t }

func (d Date) String() string { return d.t.Format(dateLayout) }

// Equal reports whether d and other are the same calendar date.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

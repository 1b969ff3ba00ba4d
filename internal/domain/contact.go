package domain

import "regexp"

const (
	// PhoneConstraints is reported when a phone number is rejected.
	PhoneConstraints = "Phone numbers should only contain digits, and it should be between 3 and 15 digits long"

	// EmailConstraints is reported when an email address is rejected.
	EmailConstraints = "Emails should be of the format local-part@domain. " +
		"The local-part should only contain alphanumeric characters and these special characters: +_.- " +
		"and may not start or end with a special character. " +
		"The domain is made of labels separated by periods; each label starts and ends with an alphanumeric " +
		"character, may contain hyphens, and the last label is at least 2 characters long"
)

var (
	phoneRe = regexp.MustCompile(`^[0-9]{3,15}$`)

	emailLocal = `[A-Za-z0-9]([A-Za-z0-9+_.-]*[A-Za-z0-9])?`
	emailLabel = `[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?`
	emailLast  = `[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])`
	emailRe    = regexp.MustCompile(`^` + emailLocal + `@(` + emailLabel + `\.)*` + emailLast + `$`)
)

// Phone is a contact number made of digits only.
type Phone struct {
	value string
}

// IsValidPhone reports whether raw is acceptable as a Phone.
func IsValidPhone(raw string) bool {
	return phoneRe.MatchString(raw)
}

// NewPhone validates raw and wraps it.
func NewPhone(raw string) (Phone, error) {
	if !IsValidPhone(raw) {
		return Phone{}, invalid(FieldPhone, PhoneConstraints)
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string { return p.value }

// Email is a contact address.
type Email struct {
	value string
}

// IsValidEmail reports whether raw is acceptable as an Email.
func IsValidEmail(raw string) bool {
	return emailRe.MatchString(raw)
}

// NewEmail validates raw and wraps it.
func NewEmail(raw string) (Email, error) {
	if !IsValidEmail(raw) {
		return Email{}, invalid(FieldEmail, EmailConstraints)
	}
	return Email{value: raw}, nil
}

func (e Email) String() string { return e.value }

package booking

import (
	"regexp"
	"strings"
	"time"

	"sweetcrumb/models"
)

const (
	maxNameLength  = 100
	maxPhoneDigits = 20
	maxEmailLength = 254
)

var (
	// Digits with optional leading "+" and optional separators.
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().\-]*$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// validateRequest checks the customer-supplied booking fields. today is the
// caller's clock; dates up to and including today are rejected since the
// calendar only offers days strictly after today.
func validateRequest(req models.BookingRequest, today time.Time, closure time.Weekday) *ValidationError {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) > maxNameLength {
		return &ValidationError{Field: "name", Message: "name is too long"}
	}

	if err := validatePhone(req.Phone); err != nil {
		return err
	}

	if email := strings.TrimSpace(req.Email); email != "" {
		if len(email) > maxEmailLength || !emailPattern.MatchString(email) {
			return &ValidationError{Field: "email", Message: "email address is not valid"}
		}
	}

	return validateDate(req.Date, today, closure)
}

func validatePhone(phone string) *ValidationError {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return &ValidationError{Field: "phone", Message: "phone number is required"}
	}
	if !phonePattern.MatchString(phone) {
		return &ValidationError{Field: "phone", Message: "phone number is not valid"}
	}
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits > maxPhoneDigits {
		return &ValidationError{Field: "phone", Message: "phone number is too long"}
	}
	return nil
}

func validateDate(date string, today time.Time, closure time.Weekday) *ValidationError {
	day, err := time.ParseInLocation(models.DateLayout, date, today.Location())
	if err != nil {
		return &ValidationError{Field: "date", Message: "date must be formatted YYYY-MM-DD"}
	}

	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if !day.After(start) {
		return &ValidationError{Field: "date", Message: "date must be after today"}
	}
	if day.Weekday() == closure {
		return &ValidationError{Field: "date", Message: "we are closed on " + closure.String() + "s"}
	}
	return nil
}

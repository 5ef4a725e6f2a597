package booking

import (
	"fmt"

	"sweetcrumb/services/payment"
)

// ValidationError reports a user-correctable problem with a request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ConflictError reports that the requested date already has a booking. This
// is a business outcome, not an infrastructure failure: the caller should
// pick another date.
type ConflictError struct {
	Date string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("date %s is already booked", e.Date)
}

// PaymentIncompleteError reports a confirmation attempt for an intent the
// gateway does not consider succeeded. No booking is recorded.
type PaymentIncompleteError struct {
	IntentID string
	Status   payment.Status
}

func (e *PaymentIncompleteError) Error() string {
	return fmt.Sprintf("payment %s not completed (status %s)", e.IntentID, e.Status)
}

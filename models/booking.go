package models

import "time"

// Payment methods accepted for a booking.
const (
	MethodCash = "cash"
	MethodCard = "card"
)

// DateLayout is the calendar-day format used throughout the ledger and API.
const DateLayout = "2006-01-02"

// Booking represents one confirmed appointment. The date is the natural key:
// the ledger never holds two bookings for the same date.
type Booking struct {
	Date             string    `json:"date"`                       // "YYYY-MM-DD"
	Method           string    `json:"method"`                     // "cash" or "card"
	Deposit          int64     `json:"deposit"`                    // minor currency units, 0 for cash
	PaymentReference string    `json:"paymentReference,omitempty"` // gateway intent id, card only
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

package models

// BookingRequest carries the customer-supplied fields shared by every booking
// path. Email is the only optional field; when present a confirmation mail is
// sent to the customer.
type BookingRequest struct {
	Date  string `json:"date"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// ConfirmRequest finalizes a card booking after the client confirmed the
// payment with the gateway.
type ConfirmRequest struct {
	IntentID string `json:"intentId"`
	BookingRequest
}

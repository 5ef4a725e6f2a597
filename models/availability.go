package models

// DayAvailability is one entry of the forward-looking booking calendar.
// It is derived from the ledger on every request and never persisted.
type DayAvailability struct {
	Date   string `json:"date"`   // "YYYY-MM-DD"
	Booked bool   `json:"booked"` // a booking exists for this date
	Open   bool   `json:"open"`   // false on the weekly closure day
	Label  string `json:"label"`  // display label, e.g. "Tue, Jun 10"
}

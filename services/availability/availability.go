// Package availability derives the forward-looking booking calendar from the
// ledger. Nothing here is cached: every window is recomputed from the current
// ledger snapshot so a fresh booking shows up on the next request.
package availability

import (
	"fmt"
	"time"

	"sweetcrumb/database/ledger"
	"sweetcrumb/models"
)

// labelLayout is the display format shown on the calendar, e.g. "Tue, Jun 10".
const labelLayout = "Mon, Jan 2"

// Service computes availability windows.
type Service interface {
	Window(today time.Time, days int) ([]models.DayAvailability, error)
}

// Calculator is the ledger-backed implementation. The window starts the day
// after today: same-day appointments are not offered.
type Calculator struct {
	Ledger     ledger.Store
	ClosureDay time.Weekday
	HorizonCap int
}

// Window returns one entry per calendar day for offsets 1..days from today.
// days is clamped to [1, HorizonCap]. The weekly closure day appears with
// Open=false regardless of ledger contents.
func (c *Calculator) Window(today time.Time, days int) ([]models.DayAvailability, error) {
	if days < 1 {
		days = 1
	}
	if days > c.HorizonCap {
		days = c.HorizonCap
	}

	bookings, err := c.Ledger.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	booked := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		booked[b.Date] = true
	}

	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	window := make([]models.DayAvailability, 0, days)
	for offset := 1; offset <= days; offset++ {
		day := start.AddDate(0, 0, offset)
		date := day.Format(models.DateLayout)
		window = append(window, models.DayAvailability{
			Date:   date,
			Booked: booked[date],
			Open:   day.Weekday() != c.ClosureDay,
			Label:  day.Format(labelLayout),
		})
	}
	return window, nil
}

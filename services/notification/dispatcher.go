package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"sweetcrumb/models"
)

// DefaultTimeout bounds one notification attempt.
const DefaultTimeout = 10 * time.Second

// Dispatcher sends booking notifications as detached tasks. A dispatch never
// blocks the caller, never fails the booking, and never outlives its timeout.
type Dispatcher struct {
	Notifier     Notifier
	Logger       *zap.Logger
	OwnerAddress string
	Timeout      time.Duration

	wg sync.WaitGroup
}

// BookingConfirmed notifies the owner of a new booking and, when the customer
// left an address, sends them a confirmation. Returns immediately.
func (d *Dispatcher) BookingConfirmed(b models.Booking) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.deliver(b)
	}()
}

// Wait blocks until all in-flight dispatches finish. Used on shutdown and in
// tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(b models.Booking) {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if d.OwnerAddress != "" {
		msg := Message{
			To:      d.OwnerAddress,
			Subject: fmt.Sprintf("New booking for %s", b.Date),
			Body:    ownerBody(b),
		}
		if err := d.Notifier.Send(ctx, msg); err != nil {
			d.Logger.Warn("owner notification failed",
				zap.String("date", b.Date), zap.Error(err))
		}
	}

	if b.Email != "" {
		msg := Message{
			To:      b.Email,
			Subject: fmt.Sprintf("Your booking for %s is confirmed", b.Date),
			Body:    customerBody(b),
		}
		if err := d.Notifier.Send(ctx, msg); err != nil {
			d.Logger.Warn("customer notification failed",
				zap.String("date", b.Date), zap.Error(err))
		}
	}
}

func ownerBody(b models.Booking) string {
	body := fmt.Sprintf(
		"A new appointment was booked.\n\nDate: %s\nName: %s\nPhone: %s\nPayment: %s\n",
		b.Date, b.Name, b.Phone, b.Method,
	)
	if b.Method == models.MethodCard {
		body += fmt.Sprintf("Deposit: %d (minor units)\nPayment reference: %s\n", b.Deposit, b.PaymentReference)
	}
	if b.Email != "" {
		body += fmt.Sprintf("Email: %s\n", b.Email)
	}
	return body
}

func customerBody(b models.Booking) string {
	if b.Method == models.MethodCard {
		return fmt.Sprintf(
			"Hi %s,\n\nYour appointment on %s is confirmed. Your deposit has been received.\n\nSee you soon!\n",
			b.Name, b.Date,
		)
	}
	return fmt.Sprintf(
		"Hi %s,\n\nYour appointment on %s is confirmed. Payment is due in cash on the day.\n\nSee you soon!\n",
		b.Name, b.Date,
	)
}

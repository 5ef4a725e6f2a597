package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sweetcrumb/models"
)

type captureNotifier struct {
	mu   sync.Mutex
	sent []Message
	err  error
}

func (n *captureNotifier) Send(_ context.Context, msg Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, msg)
	return nil
}

func (n *captureNotifier) messages() []Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Message(nil), n.sent...)
}

func testBooking(email string) models.Booking {
	return models.Booking{
		Date:      "2025-06-10",
		Method:    models.MethodCard,
		Deposit:   25000,
		Name:      "Ada",
		Phone:     "+15550100",
		Email:     email,
		CreatedAt: time.Now(),
	}
}

func TestBookingConfirmedNotifiesOwner(t *testing.T) {
	n := &captureNotifier{}
	d := &Dispatcher{Notifier: n, Logger: zap.NewNop(), OwnerAddress: "owner@example.com"}

	d.BookingConfirmed(testBooking(""))
	d.Wait()

	msgs := n.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "owner@example.com", msgs[0].To)
	assert.Contains(t, msgs[0].Subject, "2025-06-10")
	assert.Contains(t, msgs[0].Body, "card")
}

func TestBookingConfirmedAlsoMailsCustomer(t *testing.T) {
	n := &captureNotifier{}
	d := &Dispatcher{Notifier: n, Logger: zap.NewNop(), OwnerAddress: "owner@example.com"}

	d.BookingConfirmed(testBooking("ada@example.com"))
	d.Wait()

	msgs := n.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "ada@example.com", msgs[1].To)
	assert.Contains(t, msgs[1].Body, "deposit has been received")
}

func TestSendFailureIsSwallowed(t *testing.T) {
	n := &captureNotifier{err: errors.New("relay down")}
	d := &Dispatcher{Notifier: n, Logger: zap.NewNop(), OwnerAddress: "owner@example.com"}

	// Must not panic or propagate anywhere.
	d.BookingConfirmed(testBooking("ada@example.com"))
	d.Wait()

	assert.Empty(t, n.messages())
}

func TestDispatchDoesNotBlockCaller(t *testing.T) {
	block := make(chan struct{})
	slow := notifierFunc(func(ctx context.Context, _ Message) error {
		select {
		case <-block:
		case <-ctx.Done():
		}
		return nil
	})
	d := &Dispatcher{Notifier: slow, Logger: zap.NewNop(), OwnerAddress: "owner@example.com", Timeout: 50 * time.Millisecond}

	start := time.Now()
	d.BookingConfirmed(testBooking(""))
	assert.Less(t, time.Since(start), 20*time.Millisecond, "dispatch must return immediately")

	d.Wait()
	close(block)
}

type notifierFunc func(ctx context.Context, msg Message) error

func (f notifierFunc) Send(ctx context.Context, msg Message) error { return f(ctx, msg) }

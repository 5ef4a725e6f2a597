// Package booking enforces the one-booking-per-date invariant across both
// payment paths.
package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"sweetcrumb/database/ledger"
	"sweetcrumb/models"
	"sweetcrumb/services/notification"
	"sweetcrumb/services/payment"
)

// serviceLabel is the only descriptive field attached to gateway intents.
// Customer details never leave the process.
const serviceLabel = "Sweetcrumb appointment deposit"

// Service is the booking transaction handler.
type Service interface {
	BookCash(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	CreateIntent(ctx context.Context, req models.BookingRequest) (*payment.Intent, error)
	ConfirmCard(ctx context.Context, req models.ConfirmRequest) (*models.Booking, error)
}

// DefaultService implements Service over the ledger, the payment gateway and
// the notification dispatcher.
type DefaultService struct {
	Ledger     ledger.Store
	Gateway    payment.Gateway
	Dispatcher *notification.Dispatcher
	Logger     *zap.Logger

	Deposit    int64  // minor currency units
	Currency   string // e.g. "usd"
	ClosureDay time.Weekday

	// Now is the clock used for validation and timestamps. Defaults to
	// time.Now; overridden in tests.
	Now func() time.Time

	// mu guards every read-check-append against the ledger. Without it two
	// concurrent requests for the same date could both observe it free.
	// Gateway and notification I/O stay outside the critical section.
	mu sync.Mutex
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// BookCash records a cash booking immediately. Returns a ConflictError when
// the date is already taken.
func (s *DefaultService) BookCash(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if err := validateRequest(req, s.now(), s.ClosureDay); err != nil {
		return nil, err
	}

	b := s.newBooking(req, models.MethodCash, 0, "")
	if err := s.reserve(b); err != nil {
		return nil, err
	}

	s.Logger.Info("cash booking recorded", zap.String("date", b.Date))
	s.Dispatcher.BookingConfirmed(b)
	return &b, nil
}

// CreateIntent registers a deposit payment intent with the gateway. It never
// touches the ledger: only ConfirmCard reserves a date. The availability
// check here is advisory, sparing the customer a card entry for a date that
// is already gone.
func (s *DefaultService) CreateIntent(ctx context.Context, req models.BookingRequest) (*payment.Intent, error) {
	if err := validateRequest(req, s.now(), s.ClosureDay); err != nil {
		return nil, err
	}

	booked, err := s.Ledger.HasDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}
	if booked {
		return nil, &ConflictError{Date: req.Date}
	}

	intent, err := s.Gateway.CreateIntent(ctx, s.Deposit, s.Currency, map[string]string{
		"date":    req.Date,
		"service": serviceLabel,
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("payment intent created",
		zap.String("date", req.Date), zap.String("intentId", intent.ID))
	return intent, nil
}

// ConfirmCard verifies the intent with the gateway and, only if the payment
// succeeded, records the booking. A date lost to a concurrent booking after
// capture is a known reconciliation gap: it is logged distinctly for a manual
// refund and surfaced as a conflict.
func (s *DefaultService) ConfirmCard(ctx context.Context, req models.ConfirmRequest) (*models.Booking, error) {
	if strings.TrimSpace(req.IntentID) == "" {
		return nil, &ValidationError{Field: "intentId", Message: "intent id is required"}
	}
	if err := validateRequest(req.BookingRequest, s.now(), s.ClosureDay); err != nil {
		return nil, err
	}

	status, err := s.Gateway.RetrieveStatus(ctx, req.IntentID)
	if err != nil {
		return nil, err
	}
	if status != payment.StatusSucceeded {
		return nil, &PaymentIncompleteError{IntentID: req.IntentID, Status: status}
	}

	b := s.newBooking(req.BookingRequest, models.MethodCard, s.Deposit, req.IntentID)
	if err := s.reserve(b); err != nil {
		if _, ok := err.(*ConflictError); ok {
			s.Logger.Error("captured payment has no booking, manual refund required",
				zap.String("event", "captured_payment_unbooked"),
				zap.String("date", req.Date),
				zap.String("intentId", req.IntentID),
				zap.Int64("deposit", s.Deposit))
		}
		return nil, err
	}

	s.Logger.Info("card booking recorded",
		zap.String("date", b.Date), zap.String("intentId", req.IntentID))
	s.Dispatcher.BookingConfirmed(b)
	return &b, nil
}

func (s *DefaultService) newBooking(req models.BookingRequest, method string, deposit int64, ref string) models.Booking {
	return models.Booking{
		Date:             req.Date,
		Method:           method,
		Deposit:          deposit,
		PaymentReference: ref,
		Name:             strings.TrimSpace(req.Name),
		Phone:            strings.TrimSpace(req.Phone),
		Email:            strings.TrimSpace(req.Email),
		CreatedAt:        s.now().UTC(),
	}
}

// reserve performs the check-then-append under the service lock, against a
// single ledger snapshot.
func (s *DefaultService) reserve(b models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.Ledger.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read ledger: %w", err)
	}
	for _, existing := range bookings {
		if existing.Date == b.Date {
			return &ConflictError{Date: b.Date}
		}
	}
	if err := s.Ledger.WriteAll(append(bookings, b)); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}

// Package payment wraps the Stripe PaymentIntent API behind a small gateway
// interface. The gateway is a remote service that can be unreachable or
// return malformed data; every such failure surfaces as an UnavailableError
// and is never treated as payment success.
package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

// Status is the gateway-neutral view of a payment intent's state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusOther     Status = "other"
)

// Intent is the handle returned from intent creation. The client secret goes
// back to the browser to drive the payment widget; the ID is what the server
// later uses to verify the outcome.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway defines the two operations the booking flow needs.
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*Intent, error)
	RetrieveStatus(ctx context.Context, intentID string) (Status, error)
}

// UnavailableError indicates the payment system could not be reached or gave
// an unusable answer.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("payment system unavailable during %s: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// StripeGateway implements Gateway over an injected Stripe API client.
type StripeGateway struct {
	api    *client.API
	logger *zap.Logger
}

// NewStripeGateway builds a gateway from the account's secret key.
func NewStripeGateway(secretKey string, logger *zap.Logger) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api, logger: logger}
}

// CreateIntent registers a new payment intent with Stripe. Metadata must only
// carry non-personal fields (the booking date and a service label); customer
// details stay in the local ledger.
func (g *StripeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		g.logger.Error("stripe intent creation failed", zap.Error(err))
		return nil, &UnavailableError{Op: "create intent", Err: err}
	}
	if pi.ID == "" || pi.ClientSecret == "" {
		g.logger.Error("stripe returned incomplete intent", zap.String("intentId", pi.ID))
		return nil, &UnavailableError{Op: "create intent", Err: fmt.Errorf("incomplete intent in response")}
	}

	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// RetrieveStatus fetches the intent's current state and maps it into the
// neutral status set.
func (g *StripeGateway) RetrieveStatus(ctx context.Context, intentID string) (Status, error) {
	params := &stripe.PaymentIntentParams{Params: stripe.Params{Context: ctx}}
	pi, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		g.logger.Error("stripe intent retrieval failed", zap.String("intentId", intentID), zap.Error(err))
		return StatusOther, &UnavailableError{Op: "retrieve intent", Err: err}
	}

	return mapStatus(pi.Status), nil
}

// mapStatus folds Stripe's intent states into the neutral set. Unknown states
// map to StatusOther so a gateway API change can never read as success.
func mapStatus(status stripe.PaymentIntentStatus) Status {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return StatusSucceeded
	case stripe.PaymentIntentStatusProcessing,
		stripe.PaymentIntentStatusRequiresPaymentMethod,
		stripe.PaymentIntentStatusRequiresConfirmation,
		stripe.PaymentIntentStatusRequiresAction,
		stripe.PaymentIntentStatusRequiresCapture:
		return StatusPending
	case stripe.PaymentIntentStatusCanceled:
		return StatusFailed
	default:
		return StatusOther
	}
}

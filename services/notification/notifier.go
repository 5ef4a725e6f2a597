// Package notification delivers booking emails. Delivery is best-effort:
// failures are logged and never affect the booking that triggered them.
package notification

import (
	"context"

	"go.uber.org/zap"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Notifier sends one message over some transport.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// LogNotifier writes messages to the log instead of sending them. It is used
// when no SMTP transport is configured, so development setups run without a
// mail server.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n *LogNotifier) Send(_ context.Context, msg Message) error {
	n.Logger.Info("mail transport unconfigured, logging notification",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
	)
	return nil
}

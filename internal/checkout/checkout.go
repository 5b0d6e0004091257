// Package checkout formats checkout messages and delivers them to a
// notification sink.
package checkout

import (
	"context"
	"fmt"
	"log/slog"
)

// EmptyCartMessage is the exact message produced when checking out an empty cart.
const EmptyCartMessage = "Your cart is empty."

// Notifier is the sink that receives formatted checkout messages.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// Message formats the checkout message for the given total in the given
// currency. A zero total produces the empty-cart message.
func Message(code string, total float64) string {
	if total == 0 {
		return EmptyCartMessage
	}
	return fmt.Sprintf("Your total is: %s %.2f", code, total)
}

// LogNotifier delivers checkout messages to the structured log.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a Notifier backed by the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With("component", "checkout"),
	}
}

// Notify logs the checkout message.
func (n *LogNotifier) Notify(ctx context.Context, message string) {
	n.logger.InfoContext(ctx, "Checkout", "message", message)
}

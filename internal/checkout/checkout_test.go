package checkout

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Message(t *testing.T) {
	testCases := []struct {
		name     string
		code     string
		total    float64
		expected string
	}{
		{
			name:     "Non-zero total formats code and two decimals",
			code:     "EUR",
			total:    22.5,
			expected: "Your total is: EUR 22.50",
		},
		{
			name:     "Base currency total",
			code:     "USD",
			total:    25,
			expected: "Your total is: USD 25.00",
		},
		{
			name:     "Zero total produces the exact empty-cart message",
			code:     "USD",
			total:    0,
			expected: "Your cart is empty.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Message(tc.code, tc.total))
		})
	}
}

func Test_LogNotifier_Notify(t *testing.T) {
	// Notify must not panic and must accept any message.
	n := NewLogNotifier(slog.Default())
	n.Notify(context.Background(), "Your cart is empty.")
}

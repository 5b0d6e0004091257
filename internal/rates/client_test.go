package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abgdnv/storefront/internal/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Client_Fetch(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		expectError bool
		expected    currency.Rates
	}{
		{
			name:     "Success - rates decoded",
			status:   http.StatusOK,
			body:     `{"base":"USD","rates":{"EUR":0.9,"GBP":0.8}}`,
			expected: currency.Rates{"EUR": 0.9, "GBP": 0.8},
		},
		{
			name:        "Error - wrong base currency",
			status:      http.StatusOK,
			body:        `{"base":"EUR","rates":{"USD":1.1}}`,
			expectError: true,
		},
		{
			name:        "Error - non-200 status",
			status:      http.StatusBadGateway,
			body:        `oops`,
			expectError: true,
		},
		{
			name:        "Error - malformed body",
			status:      http.StatusOK,
			body:        `[]`,
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()
			client := NewClient(srv.URL, srv.Client())

			// when
			fetched, err := client.Fetch(context.Background())

			// then
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, fetched)
		})
	}
}

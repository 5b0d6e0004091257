package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Client_Fetch(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		expectError bool
		expected    []Product
	}{
		{
			name:   "Success - products decoded",
			status: http.StatusOK,
			body:   `[{"id":1,"title":"Backpack","price":10.5,"image":"https://img/1.png"},{"id":2,"title":"T-Shirt","price":5,"image":"https://img/2.png"}]`,
			expected: []Product{
				{ID: 1, Title: "Backpack", Price: 10.5, Image: "https://img/1.png"},
				{ID: 2, Title: "T-Shirt", Price: 5, Image: "https://img/2.png"},
			},
		},
		{
			name:     "Records with negative price are dropped",
			status:   http.StatusOK,
			body:     `[{"id":1,"title":"Backpack","price":-1},{"id":2,"title":"T-Shirt","price":5}]`,
			expected: []Product{{ID: 2, Title: "T-Shirt", Price: 5}},
		},
		{
			name:        "Error - non-200 status",
			status:      http.StatusInternalServerError,
			body:        `oops`,
			expectError: true,
		},
		{
			name:        "Error - malformed body",
			status:      http.StatusOK,
			body:        `{"not":"an array"}`,
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
			products, err := client.Fetch(context.Background())

			// then
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, products)
		})
	}
}

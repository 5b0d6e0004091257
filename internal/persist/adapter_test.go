package persist

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/abgdnv/storefront/internal/cart"
	"github.com/abgdnv/storefront/internal/catalog"
	"github.com/abgdnv/storefront/internal/currency"
	"github.com/abgdnv/storefront/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingSlots is a mock implementation of the Slots interface
type failingSlots struct {
	error error
}

func (f *failingSlots) Get(_ string) ([]byte, bool, error) {
	return nil, false, f.error
}

func (f *failingSlots) Set(_ string, _ []byte) error {
	return f.error
}

func (f *failingSlots) Delete(_ string) error {
	return f.error
}

func Test_Adapter_CartRoundTrip(t *testing.T) {
	// given
	adapter := NewAdapter(storage.NewInMemorySlots(), slog.Default())
	lines := []cart.Line{
		{Product: catalog.Product{ID: 1, Title: "Backpack", Price: 10.0, Image: "https://img/1.png"}, Quantity: 2},
		{Product: catalog.Product{ID: 2, Title: "T-Shirt", Price: 5.0, Image: "https://img/2.png"}, Quantity: 1},
	}

	// when
	require.NoError(t, adapter.SaveCart(lines))

	// then the same line set comes back, regardless of currency state
	assert.Equal(t, lines, adapter.LoadCart())
}

func Test_Adapter_LoadCart(t *testing.T) {
	testCases := []struct {
		name  string
		slots storage.Slots
		seed  []byte
	}{
		{
			name:  "Nothing saved loads as empty",
			slots: storage.NewInMemorySlots(),
		},
		{
			name:  "Malformed payload loads as empty",
			slots: storage.NewInMemorySlots(),
			seed:  []byte(`{"not": "a line sequence"`),
		},
		{
			name:  "Storage failure loads as empty",
			slots: &failingSlots{error: errors.New("disk gone")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			if tc.seed != nil {
				require.NoError(t, tc.slots.Set("cart", tc.seed))
			}
			adapter := NewAdapter(tc.slots, slog.Default())
			// when / then
			assert.Empty(t, adapter.LoadCart())
		})
	}
}

func Test_Adapter_SaveCart_Failure(t *testing.T) {
	// given
	adapter := NewAdapter(&failingSlots{error: errors.New("disk gone")}, slog.Default())
	// when / then: the failure is reported, not swallowed
	assert.Error(t, adapter.SaveCart([]cart.Line{}))
}

func Test_Adapter_PreferredCurrency(t *testing.T) {
	// given
	adapter := NewAdapter(storage.NewInMemorySlots(), slog.Default())

	// absent preference defaults to the base currency
	assert.Equal(t, currency.BaseCode, adapter.LoadPreferredCurrency())

	// when
	require.NoError(t, adapter.SavePreferredCurrency("EUR"))

	// then
	assert.Equal(t, "EUR", adapter.LoadPreferredCurrency())
}

func Test_Adapter_PreferredCurrency_Failure(t *testing.T) {
	// given
	adapter := NewAdapter(&failingSlots{error: errors.New("disk gone")}, slog.Default())
	// when / then
	assert.Equal(t, currency.BaseCode, adapter.LoadPreferredCurrency())
	assert.Error(t, adapter.SavePreferredCurrency("EUR"))
}

package view

import (
	"context"
	"testing"

	"github.com/abgdnv/storefront/internal/cart"
	"github.com/abgdnv/storefront/internal/catalog"
	"github.com/abgdnv/storefront/internal/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	rates currency.Rates
}

func (s *staticSource) Fetch(_ context.Context) (currency.Rates, error) {
	return s.rates, nil
}

func Test_Project(t *testing.T) {
	productA := catalog.Product{ID: 1, Title: "Backpack", Price: 10.0}
	productB := catalog.Product{ID: 2, Title: "T-Shirt", Price: 5.0}

	testCases := []struct {
		name     string
		lines    []cart.Line
		rates    currency.Rates
		selected string
		expected ViewModel
	}{
		{
			name: "Base currency, no conversion",
			lines: []cart.Line{
				{Product: productA, Quantity: 2},
				{Product: productB, Quantity: 1},
			},
			selected: currency.BaseCode,
			expected: ViewModel{
				Lines: []LineView{
					{Title: "Backpack", Quantity: 2, SubtotalLabel: "USD 20.00"},
					{Title: "T-Shirt", Quantity: 1, SubtotalLabel: "USD 5.00"},
				},
				TotalLabel: "USD 25.00",
				ItemCount:  3,
			},
		},
		{
			name: "EUR at rate 0.9 converts lines and total",
			lines: []cart.Line{
				{Product: productA, Quantity: 2},
				{Product: productB, Quantity: 1},
			},
			rates:    currency.Rates{"EUR": 0.9},
			selected: "EUR",
			expected: ViewModel{
				Lines: []LineView{
					{Title: "Backpack", Quantity: 2, SubtotalLabel: "EUR 18.00"},
					{Title: "T-Shirt", Quantity: 1, SubtotalLabel: "EUR 4.50"},
				},
				TotalLabel: "EUR 22.50",
				ItemCount:  3,
			},
		},
		{
			name:     "Selected currency without a loaded rate prices in base",
			lines:    []cart.Line{{Product: productA, Quantity: 1}},
			selected: "ZZZ",
			expected: ViewModel{
				Lines:      []LineView{{Title: "Backpack", Quantity: 1, SubtotalLabel: "ZZZ 10.00"}},
				TotalLabel: "ZZZ 10.00",
				ItemCount:  1,
			},
		},
		{
			name:     "Empty cart projects an empty view",
			lines:    nil,
			selected: currency.BaseCode,
			expected: ViewModel{
				Lines:      []LineView{},
				TotalLabel: "USD 0.00",
				ItemCount:  0,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			table := currency.NewTable()
			if tc.rates != nil {
				require.NoError(t, table.Load(context.Background(), &staticSource{rates: tc.rates}))
			}
			table.Select(tc.selected)
			// when
			vm := Project(tc.lines, table)
			// then
			assert.Equal(t, tc.expected, vm)
		})
	}
}

func Test_Project_IsPure(t *testing.T) {
	// given
	table := currency.NewTable()
	lines := []cart.Line{{Product: catalog.Product{ID: 1, Title: "Backpack", Price: 10.0}, Quantity: 2}}
	// when projecting the same state twice
	first := Project(lines, table)
	second := Project(lines, table)
	// then the result is identical
	assert.Equal(t, first, second)
}

func Test_Label(t *testing.T) {
	assert.Equal(t, "EUR 22.50", Label("EUR", 22.5))
	assert.Equal(t, "USD 0.00", Label("USD", 0))
	assert.Equal(t, "JPY 1500.05", Label("JPY", 1500.049))
}

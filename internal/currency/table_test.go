package currency

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSource is a mock implementation of the Source interface
type mockSource struct {
	rates Rates
	error error
}

func (m *mockSource) Fetch(_ context.Context) (Rates, error) {
	return m.rates, m.error
}

func Test_Table_Convert(t *testing.T) {
	testCases := []struct {
		name     string
		rates    Rates
		amount   float64
		code     string
		expected float64
	}{
		{
			name:     "Known code multiplies by its rate",
			rates:    Rates{"EUR": 0.9},
			amount:   10.0,
			code:     "EUR",
			expected: 9.0,
		},
		{
			name:     "Unknown code converts as identity",
			rates:    Rates{"EUR": 0.9},
			amount:   10.0,
			code:     "ZZZ",
			expected: 10.0,
		},
		{
			name:     "Base currency without a loaded rate converts as identity",
			rates:    Rates{"EUR": 0.9},
			amount:   10.0,
			code:     BaseCode,
			expected: 10.0,
		},
		{
			name:     "Empty table converts as identity",
			rates:    Rates{},
			amount:   10.0,
			code:     "EUR",
			expected: 10.0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			table := NewTable()
			require.NoError(t, table.Load(context.Background(), &mockSource{rates: tc.rates}))
			// when
			converted := table.Convert(tc.amount, tc.code)
			// then
			assert.InDelta(t, tc.expected, converted, 1e-9)
		})
	}
}

func Test_Table_Load(t *testing.T) {
	// given
	table := NewTable()
	require.NoError(t, table.Load(context.Background(), &mockSource{rates: Rates{"EUR": 0.9, "GBP": 0.8}}))
	table.Select("EUR")

	// when the source fails, prior mapping and selection are untouched
	err := table.Load(context.Background(), &mockSource{error: errors.New("rate source down")})

	// then
	assert.Error(t, err)
	assert.Equal(t, "EUR", table.Selected())
	assert.InDelta(t, 9.0, table.Convert(10.0, "EUR"), 1e-9)

	// a successful load replaces the mapping wholesale
	require.NoError(t, table.Load(context.Background(), &mockSource{rates: Rates{"JPY": 150.0}}))
	assert.InDelta(t, 10.0, table.Convert(10.0, "EUR"), 1e-9)
	assert.InDelta(t, 1500.0, table.Convert(10.0, "JPY"), 1e-9)
}

func Test_Table_Load_DropsNonPositiveRates(t *testing.T) {
	// given
	table := NewTable()
	// when
	require.NoError(t, table.Load(context.Background(), &mockSource{rates: Rates{"EUR": 0.9, "BAD": 0, "WORSE": -1}}))
	// then
	assert.Equal(t, 1, table.Len())
	assert.InDelta(t, 10.0, table.Convert(10.0, "BAD"), 1e-9)
}

func Test_Table_Select(t *testing.T) {
	// given
	table := NewTable()
	assert.Equal(t, BaseCode, table.Selected())

	// selection is decoupled from availability
	table.Select("EUR")
	assert.Equal(t, "EUR", table.Selected())
	assert.InDelta(t, 10.0, table.ConvertSelected(10.0), 1e-9)

	// once rates arrive, the selection takes effect
	require.NoError(t, table.Load(context.Background(), &mockSource{rates: Rates{"EUR": 0.9}}))
	assert.InDelta(t, 9.0, table.ConvertSelected(10.0), 1e-9)
}

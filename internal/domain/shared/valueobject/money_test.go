package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), USD)
		require.NoError(t, err)
		assert.Equal(t, USD, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromFloat(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyFromFloat(t *testing.T) {
	m, err := NewMoneyFromFloat(99.99, EUR)
	require.NoError(t, err)
	assert.Equal(t, EUR, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(99.99)))
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyFromString("123.45", GBP)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number", GBP)
		assert.Error(t, err)
	})
}

func TestParseCurrency(t *testing.T) {
	t.Run("known codes pass through", func(t *testing.T) {
		assert.Equal(t, EUR, ParseCurrency("EUR"))
		assert.Equal(t, AMD, ParseCurrency("AMD"))
		assert.Equal(t, RUB, ParseCurrency("RUB"))
	})

	t.Run("unknown code falls back to USD", func(t *testing.T) {
		assert.Equal(t, USD, ParseCurrency("XYZ"))
	})

	t.Run("empty code falls back to USD", func(t *testing.T) {
		assert.Equal(t, USD, ParseCurrency(""))
	})
}

func TestMoneyAdd(t *testing.T) {
	t.Run("adds amounts with same currency", func(t *testing.T) {
		a, _ := NewMoneyFromFloat(10.50, USD)
		b, _ := NewMoneyFromFloat(5.25, USD)
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromFloat(15.75)))
	})

	t.Run("rejects mismatched currencies", func(t *testing.T) {
		a, _ := NewMoneyFromFloat(10, USD)
		b, _ := NewMoneyFromFloat(10, EUR)
		_, err := a.Add(b)
		assert.Error(t, err)
	})
}

func TestMoneyMultiply(t *testing.T) {
	m, _ := NewMoneyFromFloat(10.00, USD)

	t.Run("by decimal factor", func(t *testing.T) {
		result := m.Multiply(decimal.NewFromFloat(2.5))
		assert.True(t, result.Amount().Equal(decimal.NewFromFloat(25.00)))
	})

	t.Run("by integer factor", func(t *testing.T) {
		result := m.MultiplyByInt(3)
		assert.True(t, result.Amount().Equal(decimal.NewFromInt(30)))
	})
}

func TestMoneyCalculatePercentage(t *testing.T) {
	m, _ := NewMoneyFromFloat(70.00, USD)
	tax := m.CalculatePercentage(decimal.NewFromInt(10))
	assert.True(t, tax.Amount().Equal(decimal.NewFromInt(7)))
}

func TestMoneyRound(t *testing.T) {
	m, _ := NewMoneyFromString("10.005", USD)
	assert.Equal(t, "10.01", m.Round(2).StringFixed(2))
}

func TestMoneyZero(t *testing.T) {
	z := Zero(GBP)
	assert.True(t, z.IsZero())
	assert.Equal(t, GBP, z.Currency())
}

func TestMoneyString(t *testing.T) {
	m, _ := NewMoneyFromFloat(1234.5, USD)
	assert.Equal(t, "1234.50 USD", m.String())
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m, _ := NewMoneyFromFloat(42.42, EUR)
	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}

func TestMoneyScan(t *testing.T) {
	t.Run("scans string value", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("12.34"))
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(12.34)))
		assert.Equal(t, DefaultCurrency, m.Currency())
	})

	t.Run("nil value yields zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})

	t.Run("rejects unsupported types", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(3.14))
	})
}

package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/famvest-inc/famvest/internal/domain/payment/valueobjects"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		money vo.Money
		want  string
	}{
		// INR groups by the Indian numbering system: lakhs and crores.
		{"INR lakh grouping", vo.NewMoney(12345600, "INR"), "₹1,23,456.00"},
		{"INR crore grouping", vo.NewMoney(1234567800, "INR"), "₹1,23,45,678.00"},
		{"INR small amount", vo.NewMoney(45000, "INR"), "₹450.00"},
		{"INR zero", vo.NewMoney(0, "INR"), "₹0.00"},
		{"USD thousands grouping", vo.NewMoney(123450, "USD"), "$1,234.50"},
		{"unknown code falls back to ISO", vo.NewMoney(1000, "XYZ"), "XYZ 10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.money))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		code      string
		wantPaise int64
		wantErr   bool
	}{
		{"plain amount", "450.00", "INR", 45000, false},
		{"with symbol and grouping", "₹1,23,456.00", "INR", 12345600, false},
		{"bare integer", "178", "INR", 17800, false},
		{"fractional paise round", "52.855", "INR", 5286, false},
		{"negative", "-10.50", "INR", -1050, false},
		{"not a number", "ten rupees", "INR", 0, true},
		{"empty", "", "INR", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseAmount(tt.input, tt.code)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPaise, m.AmountInPaise())
			assert.Equal(t, tt.code, m.Currency())
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	original := vo.NewMoney(12345600, "INR")
	parsed, err := ParseAmount(Format(original), "INR")
	require.NoError(t, err)
	assert.True(t, original.Equals(parsed))
}

package catalog

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/famvest-inc/famvest/internal/domain/stock"
)

func TestStatic_Get(t *testing.T) {
	c, err := NewStatic()
	require.NoError(t, err)
	ctx := context.Background()

	instrument, err := c.Get(ctx, "RELIANCE")
	require.NoError(t, err)
	assert.Equal(t, "Reliance Industries", instrument.Name)
	assert.Equal(t, int64(245675), instrument.UnitPrice.AmountInPaise())
	assert.Equal(t, "INR", instrument.UnitPrice.Currency())

	t.Run("lookup is case and whitespace insensitive", func(t *testing.T) {
		lower, err := c.Get(ctx, "  reliance ")
		require.NoError(t, err)
		assert.Equal(t, instrument, lower)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := c.Get(ctx, "NOPE")
		assert.ErrorIs(t, err, stock.ErrInstrumentNotFound)
	})
}

func TestStatic_List(t *testing.T) {
	c, err := NewStatic()
	require.NoError(t, err)

	instruments, err := c.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, instruments)

	assert.True(t, sort.SliceIsSorted(instruments, func(i, j int) bool {
		return instruments[i].Symbol < instruments[j].Symbol
	}))

	for _, ins := range instruments {
		assert.True(t, ins.UnitPrice.IsPositive(), ins.Symbol)
	}

	// Callers get a copy, not the backing slice.
	instruments[0] = nil
	again, err := c.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, again[0])
}

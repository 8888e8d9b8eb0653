package format

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencySymbol(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"USD", "$"},
		{"EUR", "€"},
		{"IRR", "IRR"},
		{"IRT", "تومان"},
		{"GBP", "$"}, // unknown falls back to dollar
		{"", "$"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrencySymbol(tt.code))
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0}, {1, 1}, {5, 1}, {6, 2}, {10, 2}, {11, 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, totalPages(tt.n))
		})
	}
}

func TestPageBounds(t *testing.T) {
	t.Run("first page full", func(t *testing.T) {
		start, end, ok := pageBounds(12, 0)
		require.True(t, ok)
		assert.Equal(t, 0, start)
		assert.Equal(t, 5, end)
	})

	t.Run("last page partial", func(t *testing.T) {
		start, end, ok := pageBounds(12, 2)
		require.True(t, ok)
		assert.Equal(t, 10, start)
		assert.Equal(t, 12, end)
	})

	t.Run("past the end", func(t *testing.T) {
		_, _, ok := pageBounds(12, 3)
		assert.False(t, ok)
	})

	t.Run("empty collection", func(t *testing.T) {
		_, _, ok := pageBounds(0, 0)
		assert.False(t, ok)
	})
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Pending", capitalize("pending"))
	assert.Equal(t, "X", capitalize("x"))
	assert.Empty(t, capitalize(""))
}

func TestPersonName(t *testing.T) {
	assert.Equal(t, "Jane Doe", personName("Jane", "Doe"))
	assert.Equal(t, "Jane", personName("Jane", ""))
	assert.Equal(t, "Unknown", personName("", ""))
}

func TestStockDisplay(t *testing.T) {
	stock := 0
	assert.Equal(t, "0", stockDisplay(&stock))
	assert.Equal(t, "N/A", stockDisplay(nil))
}

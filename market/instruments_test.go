package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickValue(t *testing.T) {
	t.Parallel()

	tv, ok := TickValue("ES")
	require.True(t, ok)
	assert.InDelta(t, 12.50, tv, 1e-9)

	_, ok = TickValue("WHEAT")
	assert.False(t, ok)
}

func TestTableIsSane(t *testing.T) {
	t.Parallel()

	for sym, m := range Instruments {
		assert.Equal(t, sym, m.Symbol)
		assert.Positive(t, m.TickSize, sym)
		assert.Positive(t, m.TickValue, sym)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	merged := Merge(map[string]float64{
		"ES":   10.0, // override
		"FDAX": 12.5, // extension
		"BAD":  -1,   // ignored
	})

	assert.InDelta(t, 10.0, merged["ES"], 1e-9)
	assert.InDelta(t, 12.5, merged["FDAX"], 1e-9)
	_, ok := merged["BAD"]
	assert.False(t, ok)

	// The table itself is untouched.
	assert.InDelta(t, 12.50, Instruments["ES"].TickValue, 1e-9)
}

func TestSymbolsSorted(t *testing.T) {
	t.Parallel()

	syms := Symbols()
	require.Len(t, syms, len(Instruments))
	for i := 1; i < len(syms); i++ {
		assert.Less(t, syms[i-1], syms[i])
	}
}

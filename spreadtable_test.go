package table16

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/zkhash/sha256-table16/spreadbits"
)

// Every 16-bit value must get a unique, correctly computed spread encoding
// and a monotone tag matching its bit length class. This pins down the table
// contents the lookup argument commits to.
func TestTableRows(t *testing.T) {
	seen := make(map[uint64]bool, 1<<16)
	tag := 0
	for v := 0; v < 1<<16; v++ {
		for v >= 1<<tagWidths[tag] {
			tag++
		}
		bits, err := spreadbits.BitsOf(uint64(v), 16)
		require.NoError(t, err)
		spread := spreadbits.SpreadU16(uint16(v))
		require.Equal(t, spreadbits.IntOf(spreadbits.Spread(bits)), spread, "v=%d", v)
		require.False(t, seen[spread], "duplicate spread for v=%d", v)
		seen[spread] = true

		// tag class is the tightest width that fits
		require.Less(t, uint64(v), uint64(1)<<tagWidths[tag], "v=%d", v)
		if tag > 0 {
			require.GreaterOrEqual(t, uint64(v), uint64(1)<<tagWidths[tag-1], "v=%d", v)
		}
	}
	require.Len(t, seen, 1<<16)
	require.Equal(t, len(tagWidths)-1, tag)
}

type spreadOnlyCircuit struct {
	Dense  frontend.Variable
	Spread frontend.Variable
}

func (c *spreadOnlyCircuit) Define(api frontend.API) error {
	chip, err := New(api)
	if err != nil {
		return err
	}
	chip.Load()
	api.AssertIsEqual(chip.tbl.lookupSpread(c.Dense), c.Spread)
	return nil
}

// A circuit that only handles full 16-bit half-words never consults the tags
// table; loading must still leave the circuit solvable, since the lookup
// argument rejects a committed table with no queries.
func TestSpreadLookupWithoutTagQueries(t *testing.T) {
	assert := test.NewAssert(t)
	for _, v := range []uint16{0, 1, 0xabcd, 0xffff} {
		w := &spreadOnlyCircuit{Dense: uint64(v), Spread: spreadbits.SpreadU16(v)}
		err := test.IsSolved(&spreadOnlyCircuit{}, w, ecc.BN254.ScalarField())
		assert.NoError(err)
	}
}

// The σ/Σ piece widths must all be backed by a tag class and partition a
// 32-bit word.
func TestPieceWidths(t *testing.T) {
	for _, widths := range [][]int{sigma0Widths, sigma1Widths, bigSigma0Widths, bigSigma1Widths} {
		total := 0
		for _, w := range widths {
			require.NotPanics(t, func() { tagClass(w) })
			total += w
		}
		require.Equal(t, 32, total)
	}
}

package table16

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/lookup/logderivlookup"

	"github.com/zkhash/sha256-table16/spreadbits"
)

// tagWidths are the bit-length classes of the table rows, shortest first.
// The tag of a dense value is the index of the first class it fits in; the
// classes are exactly the piece widths used by the σ/Σ decompositions. A
// piece claimed to be n bits wide is proved so by bounding its tag.
var tagWidths = [...]int{2, 3, 4, 5, 6, 7, 9, 10, 11, 13, 14, 16}

// spreadTable models one (tag, dense, spread) row per 16-bit value as two
// lookup tables indexed by the dense value. Both are committed through the
// log-derivative argument, so a query with an index outside 0..2^16-1 has no
// matching row and leaves the circuit unsatisfiable. The table is loaded
// once per circuit instance and is read-only afterwards.
//
// The tags table is built lazily on the first short lookup: a committed
// table must be queried at least once, and circuits that only handle full
// 16-bit half-words never consult the tags.
type spreadTable struct {
	api     frontend.API
	spreads logderivlookup.Table
	tags    logderivlookup.Table
	loaded  bool
}

func newSpreadTable(api frontend.API) *spreadTable {
	return &spreadTable{
		api:     api,
		spreads: logderivlookup.New(api),
	}
}

// load populates all 2^16 spread rows. Idempotent; the underlying table
// rejects insertions after commit.
func (t *spreadTable) load() {
	if t.loaded {
		return
	}
	for v := 0; v < 1<<16; v++ {
		t.spreads.Insert(spreadbits.SpreadU16(uint16(v)))
	}
	t.loaded = true
}

// tagTable returns the tags table, populating it on first use.
func (t *spreadTable) tagTable() logderivlookup.Table {
	if t.tags == nil {
		t.tags = logderivlookup.New(t.api)
		tag := 0
		for v := 0; v < 1<<16; v++ {
			for v >= 1<<tagWidths[tag] {
				tag++
			}
			t.tags.Insert(tag)
		}
	}
	return t.tags
}

// lookupSpread returns the spread form of dense. Table membership is the
// range proof: dense is provably below 2^16.
func (t *spreadTable) lookupSpread(dense frontend.Variable) frontend.Variable {
	return t.spreads.Lookup(dense)[0]
}

// lookupShort returns the spread form of dense and additionally proves
// dense < 2^width by bounding the row's tag. width must be one of the
// tagWidths classes.
func (t *spreadTable) lookupShort(dense frontend.Variable, width int) frontend.Variable {
	class := tagClass(width)
	if class == len(tagWidths)-1 {
		// widest class, membership alone already bounds the value
		return t.lookupSpread(dense)
	}
	spread := t.spreads.Lookup(dense)[0]
	tag := t.tagTable().Lookup(dense)[0]
	assertAtMost(t.api, tag, class)
	return spread
}

func tagClass(width int) int {
	for i, w := range tagWidths {
		if w == width {
			return i
		}
	}
	panic("no tag class for width")
}

// assertAtMost constrains v to {0, ..., max} with the polynomial identity
// (v)(v-1)...(v-max) == 0.
func assertAtMost(api frontend.API, v frontend.Variable, max int) {
	acc := frontend.Variable(1)
	for i := 0; i <= max; i++ {
		acc = api.Mul(acc, api.Sub(v, i))
	}
	api.AssertIsEqual(acc, 0)
}

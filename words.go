package table16

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zkhash/sha256-table16/spreadbits"
)

// HalfWord is a 16-bit value carried in two representations: the dense form
// (its ordinary integer value) and the spread form (the same bits with a
// zero interleaved after every bit). Both sides are tied together by a
// spread-table lookup wherever the half-word is created, so consumers may
// treat Dense as provably 16 bits wide.
type HalfWord struct {
	Dense  frontend.Variable
	Spread frontend.Variable
}

// Word is a 32-bit SHA word split into two 16-bit halves, low half first.
// Its dense value is Lo + Hi·2^16 and its spread value Lo' + Hi'·2^32.
type Word struct {
	Lo, Hi HalfWord
}

// State is the running 8-word hash state (a..h).
type State [8]Word

func newConstHalf(v uint16) HalfWord {
	return HalfWord{
		Dense:  uint64(v),
		Spread: spreadbits.SpreadU16(v),
	}
}

func newConstWord(v uint32) Word {
	return Word{
		Lo: newConstHalf(uint16(v)),
		Hi: newConstHalf(uint16(v >> 16)),
	}
}

func newConstState(vs [8]uint32) State {
	var s State
	for i, v := range vs {
		s[i] = newConstWord(v)
	}
	return s
}

// wordValue recombines the dense halves into the 32-bit dense value.
func (c *Chip) wordValue(w Word) frontend.Variable {
	return c.api.Add(w.Lo.Dense, c.api.Mul(w.Hi.Dense, uint64(1)<<16))
}

// spreadValue recombines the spread halves into the 64-bit spread value.
func (c *Chip) spreadValue(w Word) frontend.Variable {
	return c.api.Add(w.Lo.Spread, c.api.Mul(w.Hi.Spread, uint64(1)<<32))
}

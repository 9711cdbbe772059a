package table16

import (
	"github.com/consensys/gnark/frontend"
)

// The three gates below are the whole instruction set of the chip: half-word
// recombination, even/odd extraction from a spread sum, and carry-bounded
// addition modulo 2^32. The message schedule and the compression rounds are
// built from nothing else.

// splitWord decomposes a 32-bit variable into two 16-bit halves. The halves
// are witnessed by hint, range-proved through the spread table and tied back
// to x by the recombination identity, so splitWord doubles as the range
// check for caller-supplied words.
func (c *Chip) splitWord(x frontend.Variable) Word {
	res, err := c.api.Compiler().NewHint(decomposeHint, 2, 2, 16, 16, x)
	if err != nil {
		panic(err)
	}
	w := Word{
		Lo: HalfWord{Dense: res[0], Spread: c.tbl.lookupSpread(res[0])},
		Hi: HalfWord{Dense: res[1], Spread: c.tbl.lookupSpread(res[1])},
	}
	c.api.AssertIsEqual(x, c.wordValue(w))
	return w
}

// splitSpread decomposes the word into pieces of the given bit widths, low
// bits first, and returns the spread form of each piece. Every piece is
// range-proved via its tag class and the pieces are constrained to
// recombine, at their dense offsets, into the word. Both sides of the
// recombination stay below 2^32, so the field identity is an integer one
// and the decomposition is unique.
func (c *Chip) splitSpread(w Word, widths []int) []frontend.Variable {
	ins := make([]frontend.Variable, 0, len(widths)+2)
	ins = append(ins, len(widths))
	for _, width := range widths {
		ins = append(ins, width)
	}
	ins = append(ins, c.wordValue(w))
	pieces, err := c.api.Compiler().NewHint(decomposeHint, len(widths), ins...)
	if err != nil {
		panic(err)
	}
	spreads := make([]frontend.Variable, len(widths))
	terms := make([]frontend.Variable, len(widths))
	offset := 0
	for i, width := range widths {
		spreads[i] = c.tbl.lookupShort(pieces[i], width)
		terms[i] = c.api.Mul(pieces[i], uint64(1)<<offset)
		offset += width
	}
	c.api.AssertIsEqual(c.api.Add(terms[0], terms[1], terms[2:]...), c.wordValue(w))
	return spreads
}

// evenOdd splits a sum of spread operands into its even-position and
// odd-position bits, each returned as a full Word. The identity
//
//	sum == spread(even) + 2·spread(odd)
//
// decomposes the base-4 digits of the sum uniquely as long as every digit is
// below 4, which holds for sums of at most three spread operands. The even
// word is the bitwise XOR of the operands, the odd word their carry/AND
// information.
func (c *Chip) evenOdd(spreadSum frontend.Variable) (even, odd Word) {
	res, err := c.api.Compiler().NewHint(evenOddHint, 4, spreadSum)
	if err != nil {
		panic(err)
	}
	even = Word{
		Lo: HalfWord{Dense: res[0], Spread: c.tbl.lookupSpread(res[0])},
		Hi: HalfWord{Dense: res[1], Spread: c.tbl.lookupSpread(res[1])},
	}
	odd = Word{
		Lo: HalfWord{Dense: res[2], Spread: c.tbl.lookupSpread(res[2])},
		Hi: HalfWord{Dense: res[3], Spread: c.tbl.lookupSpread(res[3])},
	}
	rhs := c.api.Add(c.spreadValue(even), c.api.Mul(c.spreadValue(odd), 2))
	c.api.AssertIsEqual(spreadSum, rhs)
	return even, odd
}

// addMod adds 2 to 8 dense 32-bit terms modulo 2^32. The field sum does not
// wrap at 2^32, so the overflow is absorbed by an explicit carry witness,
// bounded to {0, ..., n-1} by a root-product gate:
//
//	t_0 + ... + t_{n-1} == lo + hi·2^16 + carry·2^32
//
// The halves of the result are range-proved through the spread table, so the
// returned Word is canonical and ready for reuse.
func (c *Chip) addMod(terms ...frontend.Variable) Word {
	if len(terms) < 2 || len(terms) > 8 {
		panic("addMod supports 2 to 8 terms")
	}
	sum := c.api.Add(terms[0], terms[1], terms[2:]...)
	res, err := c.api.Compiler().NewHint(decomposeHint, 3, 3, 16, 16, 3, sum)
	if err != nil {
		panic(err)
	}
	w := Word{
		Lo: HalfWord{Dense: res[0], Spread: c.tbl.lookupSpread(res[0])},
		Hi: HalfWord{Dense: res[1], Spread: c.tbl.lookupSpread(res[1])},
	}
	carry := res[2]
	c.api.AssertIsEqual(sum, c.api.Add(c.wordValue(w), c.api.Mul(carry, uint64(1)<<32)))
	assertAtMost(c.api, carry, len(terms)-1)
	return w
}

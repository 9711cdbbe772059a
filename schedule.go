package table16

import (
	"github.com/consensys/gnark/frontend"
)

// Piece widths for the σ decompositions, low bits first. The boundaries are
// the rotation/shift amounts of each function, so every rotated operand is a
// pure reordering of the same pieces.
var (
	sigma0Widths = []int{3, 4, 11, 14} // rotr 7, rotr 18, shr 3
	sigma1Widths = []int{10, 7, 2, 13} // rotr 17, rotr 19, shr 10
)

// smallSigma0 computes σ0(w) = rotr(w,7) ⊕ rotr(w,18) ⊕ shr(w,3). Each
// operand is a base-4 linear combination of the piece spreads (spread
// positions double the dense offsets); the XOR is the even component of
// their sum.
func (c *Chip) smallSigma0(w Word) Word {
	s := c.splitSpread(w, sigma0Widths)
	sd, sc, sb, sa := s[0], s[1], s[2], s[3]
	rot7 := c.api.Add(sb,
		c.api.Mul(sa, uint64(1)<<22),
		c.api.Mul(sd, uint64(1)<<50),
		c.api.Mul(sc, uint64(1)<<56))
	rot18 := c.api.Add(sa,
		c.api.Mul(sd, uint64(1)<<28),
		c.api.Mul(sc, uint64(1)<<34),
		c.api.Mul(sb, uint64(1)<<42))
	shr3 := c.api.Add(sc,
		c.api.Mul(sb, uint64(1)<<8),
		c.api.Mul(sa, uint64(1)<<30))
	even, _ := c.evenOdd(c.api.Add(rot7, rot18, shr3))
	return even
}

// smallSigma1 computes σ1(w) = rotr(w,17) ⊕ rotr(w,19) ⊕ shr(w,10).
func (c *Chip) smallSigma1(w Word) Word {
	s := c.splitSpread(w, sigma1Widths)
	sd, sc, sb, sa := s[0], s[1], s[2], s[3]
	rot17 := c.api.Add(sb,
		c.api.Mul(sa, uint64(1)<<4),
		c.api.Mul(sd, uint64(1)<<30),
		c.api.Mul(sc, uint64(1)<<50))
	rot19 := c.api.Add(sa,
		c.api.Mul(sd, uint64(1)<<26),
		c.api.Mul(sc, uint64(1)<<46),
		c.api.Mul(sb, uint64(1)<<60))
	shr10 := c.api.Add(sc,
		c.api.Mul(sb, uint64(1)<<14),
		c.api.Mul(sa, uint64(1)<<18))
	even, _ := c.evenOdd(c.api.Add(rot17, rot19, shr10))
	return even
}

// schedule expands the 16 block words into the 64 round words
//
//	W_t = σ1(W_{t-2}) + W_{t-7} + σ0(W_{t-15}) + W_{t-16}  (mod 2^32)
//
// in ascending t, so each word reuses the half-word pairs already proved for
// its predecessors. It also returns the 16 input Words so the caller can
// further constrain the assigned block.
func (c *Chip) schedule(block [16]frontend.Variable) ([rounds]Word, [16]Word) {
	var w [rounds]Word
	var inputs [16]Word
	for i := 0; i < 16; i++ {
		w[i] = c.splitWord(block[i])
		inputs[i] = w[i]
	}
	for t := 16; t < rounds; t++ {
		s0 := c.smallSigma0(w[t-15])
		s1 := c.smallSigma1(w[t-2])
		w[t] = c.addMod(
			c.wordValue(s1),
			c.wordValue(w[t-7]),
			c.wordValue(s0),
			c.wordValue(w[t-16]),
		)
	}
	return w, inputs
}

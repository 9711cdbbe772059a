package table16

// Piece widths for the Σ decompositions, low bits first.
var (
	bigSigma0Widths = []int{2, 11, 9, 10} // rotr 2, rotr 13, rotr 22
	bigSigma1Widths = []int{6, 5, 14, 7}  // rotr 6, rotr 11, rotr 25
)

// maskEven is the spread form of 2^32-1: ones at every even position. It
// turns spread complement into a subtraction, spread(¬x) = maskEven - spread(x).
const maskEven uint64 = 0x5555555555555555

// bigSigma0 computes Σ0(w) = rotr(w,2) ⊕ rotr(w,13) ⊕ rotr(w,22).
func (c *Chip) bigSigma0(w Word) Word {
	s := c.splitSpread(w, bigSigma0Widths)
	sd, sc, sb, sa := s[0], s[1], s[2], s[3]
	rot2 := c.api.Add(sc,
		c.api.Mul(sb, uint64(1)<<22),
		c.api.Mul(sa, uint64(1)<<40),
		c.api.Mul(sd, uint64(1)<<60))
	rot13 := c.api.Add(sb,
		c.api.Mul(sa, uint64(1)<<18),
		c.api.Mul(sd, uint64(1)<<38),
		c.api.Mul(sc, uint64(1)<<42))
	rot22 := c.api.Add(sa,
		c.api.Mul(sd, uint64(1)<<20),
		c.api.Mul(sc, uint64(1)<<24),
		c.api.Mul(sb, uint64(1)<<46))
	even, _ := c.evenOdd(c.api.Add(rot2, rot13, rot22))
	return even
}

// bigSigma1 computes Σ1(w) = rotr(w,6) ⊕ rotr(w,11) ⊕ rotr(w,25).
func (c *Chip) bigSigma1(w Word) Word {
	s := c.splitSpread(w, bigSigma1Widths)
	sd, sc, sb, sa := s[0], s[1], s[2], s[3]
	rot6 := c.api.Add(sc,
		c.api.Mul(sb, uint64(1)<<10),
		c.api.Mul(sa, uint64(1)<<38),
		c.api.Mul(sd, uint64(1)<<52))
	rot11 := c.api.Add(sb,
		c.api.Mul(sa, uint64(1)<<28),
		c.api.Mul(sd, uint64(1)<<42),
		c.api.Mul(sc, uint64(1)<<54))
	rot25 := c.api.Add(sa,
		c.api.Mul(sd, uint64(1)<<14),
		c.api.Mul(sc, uint64(1)<<26),
		c.api.Mul(sb, uint64(1)<<36))
	even, _ := c.evenOdd(c.api.Add(rot6, rot11, rot25))
	return even
}

// chHalves computes Ch(e,f,g) = (e ∧ f) ⊕ (¬e ∧ g) as two words: the odd
// component of spread(e)+spread(f) is e∧f and the odd component of
// spread(¬e)+spread(g) is ¬e∧g. The two are bitwise disjoint (one needs the
// e bit set, the other cleared), so their plain sum is the XOR; they are
// returned separately and folded into the round's modular addition.
func (c *Chip) chHalves(e, f, g Word) (pOdd, qOdd Word) {
	p := c.api.Add(c.spreadValue(e), c.spreadValue(f))
	_, pOdd = c.evenOdd(p)
	q := c.api.Add(c.api.Sub(maskEven, c.spreadValue(e)), c.spreadValue(g))
	_, qOdd = c.evenOdd(q)
	return pOdd, qOdd
}

// maj computes Maj(x,y,z) = (x∧y) ⊕ (x∧z) ⊕ (y∧z): the per-bit sum of three
// spread operands is at least 2 exactly when the majority bit is set, which
// is the odd component of the sum.
func (c *Chip) maj(x, y, z Word) Word {
	_, odd := c.evenOdd(c.api.Add(c.spreadValue(x), c.spreadValue(y), c.spreadValue(z)))
	return odd
}

// compressRounds runs the 64 round updates
//
//	T1 = h + Σ1(e) + Ch(e,f,g) + K_t + W_t
//	T2 = Σ0(a) + Maj(a,b,c)
//	state' = (T1+T2, a, b, c, d+T1, e, f, g)
//
// with all additions mod 2^32. T2 is folded into the T1+T2 addition, which
// changes nothing mod 2^32 and saves one reduction per round. Only the new a
// and e need fresh piece decompositions; the remaining words slide along
// carrying their proved halves.
func (c *Chip) compressRounds(in State, w [rounds]Word) State {
	st := in
	for t := 0; t < rounds; t++ {
		sig1 := c.bigSigma1(st[4])
		chP, chQ := c.chHalves(st[4], st[5], st[6])
		t1 := c.addMod(
			c.wordValue(st[7]),
			c.wordValue(sig1),
			c.wordValue(chP),
			c.wordValue(chQ),
			uint64(roundConstants[t]),
			c.wordValue(w[t]),
		)

		sig0 := c.bigSigma0(st[0])
		mj := c.maj(st[0], st[1], st[2])
		newE := c.addMod(c.wordValue(st[3]), c.wordValue(t1))
		newA := c.addMod(c.wordValue(t1), c.wordValue(sig0), c.wordValue(mj))

		st = State{newA, st[0], st[1], st[2], newE, st[4], st[5], st[6]}
	}
	return st
}

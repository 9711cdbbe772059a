package table16

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
)

type scheduleCircuit struct {
	Block    [16]frontend.Variable
	Expected [rounds]frontend.Variable
}

func (c *scheduleCircuit) Define(api frontend.API) error {
	chip, err := New(api)
	if err != nil {
		return err
	}
	chip.Load()
	w, _ := chip.schedule(c.Block)
	for t := range w {
		api.AssertIsEqual(chip.wordValue(w[t]), c.Expected[t])
	}
	return nil
}

func expandNative(block [16]uint32) [rounds]uint32 {
	var w [rounds]uint32
	copy(w[:16], block[:])
	rotr := func(x uint32, n int) uint32 { return x>>n | x<<(32-n) }
	for t := 16; t < rounds; t++ {
		s0 := rotr(w[t-15], 7) ^ rotr(w[t-15], 18) ^ w[t-15]>>3
		s1 := rotr(w[t-2], 17) ^ rotr(w[t-2], 19) ^ w[t-2]>>10
		w[t] = s1 + w[t-7] + s0 + w[t-16]
	}
	return w
}

// All 64 round words must match the native recurrence, exercising both σ
// decompositions and the 4-term bounded addition across carry values.
func TestScheduleMatchesNative(t *testing.T) {
	assert := test.NewAssert(t)
	blocks := [][16]uint32{
		{}, // all zeros
		{0x61626380, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x18}, // "abc" padded
		{0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff,
			0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff},
		{0xdeadbeef, 0xcafebabe, 0x01234567, 0x89abcdef, 0x0f1e2d3c, 0x4b5a6978, 0x87969ab4, 0xc3d2e1f0,
			0x13579bdf, 0x2468ace0, 0xfdb97531, 0x0eca8642, 0xaaaaaaaa, 0x55555555, 0x00ff00ff, 0xff00ff00},
	}
	for _, block := range blocks {
		witness := &scheduleCircuit{}
		for i, v := range block {
			witness.Block[i] = uint64(v)
		}
		for t, v := range expandNative(block) {
			witness.Expected[t] = uint64(v)
		}
		assert.NoError(test.IsSolved(&scheduleCircuit{}, witness, ecc.BN254.ScalarField()))
	}
}

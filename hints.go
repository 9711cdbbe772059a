package table16

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"

	"github.com/zkhash/sha256-table16/spreadbits"
)

func init() {
	solver.RegisterHint(GetHints()...)
}

// GetHints returns all hints used in the package.
func GetHints() []solver.Hint {
	return []solver.Hint{
		decomposeHint,
		evenOddHint,
	}
}

// decomposeHint splits the last input into pieces of the given bit widths,
// low bits first. The inputs are: the number of pieces, the piece widths and
// the value to split. It fails when the value does not fit in the widths;
// the in-circuit recombination constraint makes the same failure
// unsatisfiable for a malicious witness.
func decomposeHint(_ *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) < 2 {
		return fmt.Errorf("expecting at least 2 inputs")
	}
	if !inputs[0].IsUint64() {
		return fmt.Errorf("piece count must be an integer")
	}
	nb := int(inputs[0].Uint64())
	if len(inputs) != nb+2 {
		return fmt.Errorf("expecting %d inputs, got %d", nb+2, len(inputs))
	}
	if len(outputs) != nb {
		return fmt.Errorf("expecting %d outputs, got %d", nb, len(outputs))
	}
	v := new(big.Int).Set(inputs[nb+1])
	mask := new(big.Int)
	for i := 0; i < nb; i++ {
		if !inputs[i+1].IsUint64() {
			return fmt.Errorf("piece width must be an integer")
		}
		width := uint(inputs[i+1].Uint64())
		mask.Lsh(big.NewInt(1), width)
		mask.Sub(mask, big.NewInt(1))
		outputs[i].And(v, mask)
		v.Rsh(v, width)
	}
	if v.Sign() != 0 {
		return fmt.Errorf("value does not fit in %d pieces", nb)
	}
	return nil
}

// evenOddHint splits a sum of spread operands into its even-position and
// odd-position bits, each returned as a pair of 16-bit halves:
// evenLo, evenHi, oddLo, oddHi. The input must fit in 64 bits, which holds
// for any sum of at most three 32-bit spread words.
func evenOddHint(_ *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 1 {
		return fmt.Errorf("expecting 1 input")
	}
	if len(outputs) != 4 {
		return fmt.Errorf("expecting 4 outputs")
	}
	if !inputs[0].IsUint64() {
		return fmt.Errorf("spread sum exceeds 64 bits")
	}
	s := inputs[0].Uint64()
	even := spreadbits.EvenBits(s)
	odd := spreadbits.OddBits(s)
	outputs[0].SetUint64(uint64(even & 0xffff))
	outputs[1].SetUint64(uint64(even >> 16))
	outputs[2].SetUint64(uint64(odd & 0xffff))
	outputs[3].SetUint64(uint64(odd >> 16))
	return nil
}

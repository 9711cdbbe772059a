package table16

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark/frontend"
)

const (
	rounds     = 64
	stateWords = 8
)

var roundConstants = [rounds]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var iv = [stateWords]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// Chip assembles the spread table, the message schedule and the compression
// engine over a single frontend.API. Constraint shape depends only on the
// calls made in Define, never on witness data.
type Chip struct {
	api frontend.API
	tbl *spreadTable
}

// New configures the chip. The spread sums and their even/odd decomposition
// live below 2^64, so the native field must leave headroom above that.
func New(api frontend.API) (*Chip, error) {
	if fl := api.Compiler().FieldBitLen(); fl < 66 {
		return nil, fmt.Errorf("field of %d bits too small, need at least 66", fl)
	}
	return &Chip{
		api: api,
		tbl: newSpreadTable(api),
	}, nil
}

// Load populates the spread lookup table. It must be called once per circuit
// instance before the first Compress; calling it again is a no-op.
func (c *Chip) Load() {
	c.tbl.load()
}

// InitialState returns the standard SHA-256 initialization vector as
// constant words.
func (c *Chip) InitialState() State {
	return newConstState(iv)
}

// StateFromWords builds a chaining state from eight caller-supplied 32-bit
// words, range-proving each through the spread table. Use it when the prior
// state enters the circuit as a witness rather than as the State returned by
// an earlier Compress.
func (c *Chip) StateFromWords(words [stateWords]frontend.Variable) State {
	var s State
	for i, w := range words {
		s[i] = c.splitWord(w)
	}
	return s
}

// Compress runs the SHA-256 compression function on one 512-bit block given
// as 16 big-endian 32-bit words. The block words are range-checked
// internally. It returns the chained state, in + compress(in, block) word-wise
// mod 2^32, ready to be fed into the next Compress, along with the 16
// assigned input words for the caller to constrain further.
func (c *Chip) Compress(in State, block [16]frontend.Variable) (State, [16]Word, error) {
	if !c.tbl.loaded {
		return State{}, [16]Word{}, errors.New("spread table not loaded")
	}
	w, inputs := c.schedule(block)
	out := c.compressRounds(in, w)
	var res State
	for i := range res {
		res[i] = c.addMod(c.wordValue(in[i]), c.wordValue(out[i]))
	}
	return res, inputs, nil
}

// Digest recombines the state halves into eight dense 32-bit words for the
// outer circuit to expose as public output or constrain further.
func (c *Chip) Digest(s State) [stateWords]frontend.Variable {
	var out [stateWords]frontend.Variable
	for i := range s {
		out[i] = c.wordValue(s[i])
	}
	return out
}

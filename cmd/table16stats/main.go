// table16stats compiles a one-block digest circuit with both gnark builders
// and reports the constraint-system size, the figure a caller needs when
// budgeting the gadget into a larger circuit.
package main

import (
	"os"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/rs/zerolog"

	table16 "github.com/zkhash/sha256-table16"
)

type digestCircuit struct {
	Block  [16]frontend.Variable
	Digest [8]frontend.Variable `gnark:",public"`
}

func (c *digestCircuit) Define(api frontend.API) error {
	chip, err := table16.New(api)
	if err != nil {
		return err
	}
	chip.Load()
	st, _, err := chip.Compress(chip.InitialState(), c.Block)
	if err != nil {
		return err
	}
	d := chip.Digest(st)
	for i := range d {
		api.AssertIsEqual(d[i], c.Digest[i])
	}
	return nil
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	builders := []struct {
		name string
		new  frontend.NewBuilder
	}{
		{"r1cs", r1cs.NewBuilder[constraint.U64]},
		{"scs", scs.NewBuilder[constraint.U64]},
	}
	for _, b := range builders {
		start := time.Now()
		ccs, err := frontend.Compile(ecc.BN254.ScalarField(), b.new, &digestCircuit{})
		if err != nil {
			log.Fatal().Err(err).Str("builder", b.name).Msg("compile failed")
		}
		log.Info().
			Str("builder", b.name).
			Int("constraints", ccs.GetNbConstraints()).
			Int("internalVariables", ccs.GetNbInternalVariables()).
			Dur("took", time.Since(start)).
			Msg("compiled one-block digest circuit")
	}
}

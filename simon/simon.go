// Package simon recovers the hidden period of a two-to-one query function
// from input-register measurements of Simon's query circuit.
//
// Each valid nonzero measurement y satisfies y · s ≡ 0 (mod 2) for the
// hidden string s; n − 1 independent such constraints pin s down exactly.
package simon

import (
	"errors"
	"fmt"

	"github.com/alan-christopher/simon/go/simon/backend"
	"github.com/alan-christopher/simon/go/simon/bitvec"
	"github.com/alan-christopher/simon/go/simon/oracle"
)

// Stats packages together a collection of potentially interesting metrics
// pertaining to one solving pass.
type Stats struct {
	ShotsRequested  int
	SamplesConsumed int
	Rank            int
}

// A SolveOpts packages together the arguments necessary for one solving
// pass. None of the fields have reasonable defaults; leaving them to
// zero-initialize will result in Solve returning an error.
type SolveOpts struct {
	// Oracle is the query function under test. Must be non-nil.
	Oracle *oracle.Oracle

	// Sampler executes the query circuit. Must be non-nil.
	Sampler backend.Sampler

	// Shots is the number of circuit executions to request. Must be
	// positive. Solve never retries; a caller wanting more confidence
	// re-invokes with a larger budget.
	Shots int
}

// Solve runs one pass of Simon's algorithm: sample the query circuit Shots
// times and recover the hidden string from the measured constraints.
func Solve(opts SolveOpts) (bitvec.Dense, Stats, error) {
	var stats Stats
	if opts.Oracle == nil {
		return bitvec.Empty(), stats, errors.New("must provide Oracle")
	}
	if opts.Sampler == nil {
		return bitvec.Empty(), stats, errors.New("must provide Sampler")
	}
	if opts.Shots < 1 {
		return bitvec.Empty(), stats, errors.New("must request at least one shot")
	}
	stats.ShotsRequested = opts.Shots
	samples, err := opts.Sampler.Sample(opts.Oracle, opts.Shots)
	if err != nil {
		return bitvec.Empty(), stats, fmt.Errorf("sampling query circuit: %w", err)
	}
	s, err := recoverSecret(samples, opts.Oracle.Width(), &stats)
	if err != nil {
		return bitvec.Empty(), stats, err
	}
	return s, stats, nil
}

// Package backend provides simulation collaborators that execute Simon
// query circuits and sample their measurement outcomes.
package backend

import (
	"github.com/alan-christopher/simon/go/simon/bitvec"
	"github.com/alan-christopher/simon/go/simon/oracle"
)

// A Sampler executes the query circuit for an oracle (Hadamard gates on
// the input register, the oracle, Hadamard gates again) and returns the
// input-register readout of shots independent executions. Outcomes carry no
// ordering guarantee and duplicates are expected.
type Sampler interface {
	Sample(o *oracle.Oracle, shots int) ([]bitvec.Dense, error)
}

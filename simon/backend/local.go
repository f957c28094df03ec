package backend

import (
	"fmt"
	"math"
	"math/rand"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/alan-christopher/simon/go/simon/bitvec"
	"github.com/alan-christopher/simon/go/simon/oracle"
)

// A Local simulates the query circuit on an in-process statevector over the
// 2n-wire joint register. Hadamard gates and oracle applications all have
// real matrix entries, so amplitudes are kept as float64 rather than
// complex.
type Local struct {
	// Rand drives measurement sampling and may use pRNG for reproducible
	// runs. Must be non-nil.
	Rand *rand.Rand
}

// NewLocal returns a Local simulator drawing measurement outcomes from rnd.
func NewLocal(rnd *rand.Rand) *Local {
	return &Local{Rand: rnd}
}

// Sample implements the Sampler interface. Memory is exponential in the
// oracle width; realistic demonstration widths are n ≲ 12.
func (l *Local) Sample(o *oracle.Oracle, shots int) ([]bitvec.Dense, error) {
	if shots < 1 {
		return nil, fmt.Errorf("sampling %d shots, need at least 1", shots)
	}
	n := o.Width()
	amps := make([]float64, 1<<(2*n))
	amps[0] = 1
	for q := 0; q < n; q++ {
		applyH(amps, q)
	}
	amps = applyOracle(amps, o)
	for q := 0; q < n; q++ {
		applyH(amps, q)
	}

	// Marginal distribution of the input register: the output register is
	// traced out, not read.
	weights := make([]float64, 1<<n)
	mask := 1<<n - 1
	for i, a := range amps {
		weights[i&mask] += a * a
	}
	dist := distuv.NewCategorical(weights, exprand.NewSource(l.Rand.Uint64()))
	samples := make([]bitvec.Dense, 0, shots)
	for i := 0; i < shots; i++ {
		samples = append(samples, bitvec.FromUint(uint(dist.Rand()), n))
	}
	return samples, nil
}

// applyH applies a Hadamard gate to wire q, in place.
func applyH(amps []float64, q int) {
	h := 1 / math.Sqrt2
	bit := 1 << q
	for i := range amps {
		if i&bit == 0 {
			j := i | bit
			a, b := amps[i], amps[j]
			amps[i], amps[j] = h*(a+b), h*(a-b)
		}
	}
}

// applyOracle applies the oracle's basis-state permutation
// (x, y) → (x, y ⊕ f(x)).
func applyOracle(amps []float64, o *oracle.Oracle) []float64 {
	out := make([]float64, len(amps))
	for i, a := range amps {
		if a != 0 {
			out[o.MapBasis(i)] = a
		}
	}
	return out
}

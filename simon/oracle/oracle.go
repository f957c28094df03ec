// Package oracle builds reversible realizations of two-to-one query
// functions satisfying Simon's promise: f(x) = f(x ⊕ s) for a hidden
// nonzero string s, with no other collisions.
package oracle

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/alan-christopher/simon/go/generated/simonpb"
	"github.com/alan-christopher/simon/go/simon/bitvec"
)

// An InvalidSecretError reports a hidden string that does not define a
// two-to-one function, i.e. one that is empty or has no 1-bit.
type InvalidSecretError struct {
	Secret string
}

func (e *InvalidSecretError) Error() string {
	if e.Secret == "" {
		return "hidden string is empty"
	}
	return fmt.Sprintf("hidden string %q has no 1-bit, f would be one-to-one", e.Secret)
}

// A UnitarityError reports that a constructed query matrix failed its
// self-check U·Uᵀ = I. It indicates a construction bug and is never
// recoverable.
type UnitarityError struct {
	Dim int
}

func (e *UnitarityError) Error() string {
	return fmt.Sprintf("%dx%d query matrix is not unitary", e.Dim, e.Dim)
}

// A CNOT is a controlled-XOR folding an input-register wire into an
// output-register wire.
type CNOT struct {
	Control int
	Target  int
}

// An Oracle describes a query function f: {0,1}^n → {0,1}^n whose only
// collisions are the pairs {x, x ⊕ s}, acting reversibly on a joint 2n-wire
// register as (x, y) → (x, y ⊕ f(x)). Input bit i of x is bit i of the
// basis index; the output register occupies bits n..2n-1.
type Oracle struct {
	n     int
	gates []CNOT
	truth []int
	u     *mat.Dense
}

// Build constructs the linear (CNOT network) form of the oracle: each input
// wire is copied to its output wire, and input wire p, the lowest 1-index
// of s, is additionally folded into output wire i for every i with
// s_i = 1, p itself included. The resulting map is x ↦ x ⊕ s·x_p, which is
// GF(2)-linear with kernel exactly {0, s}.
func Build(s bitvec.Dense) (*Oracle, error) {
	if err := checkSecret(s); err != nil {
		return nil, err
	}
	n := s.Size()
	p := lowestOne(s)
	gates := make([]CNOT, 0, n+s.CountOnes())
	for i := 0; i < n; i++ {
		gates = append(gates, CNOT{Control: i, Target: i})
	}
	for i := 0; i < n; i++ {
		if s.Get(i) {
			gates = append(gates, CNOT{Control: p, Target: i})
		}
	}
	return &Oracle{n: n, gates: gates}, nil
}

// BuildPermutation constructs the permutation form of the oracle:
// f(x) = π(min(x, x ⊕ s)) for a random permutation π drawn from rnd, so
// that each colliding pair is collapsed to one representative before
// masking. The corresponding 2^{2n} × 2^{2n} 0/1 query matrix is built
// explicitly and checked for unitarity, failing with a UnitarityError if
// the check does not hold. Memory and check time are exponential in n; this
// form is meant for small demonstration instances.
func BuildPermutation(s bitvec.Dense, rnd *rand.Rand) (*Oracle, error) {
	if err := checkSecret(s); err != nil {
		return nil, err
	}
	n := s.Size()
	N := 1 << n
	sv := int(s.Uint())
	pi := rnd.Perm(N)
	truth := make([]int, N)
	for x := 0; x < N; x++ {
		rep := x
		if alt := x ^ sv; alt < rep {
			rep = alt
		}
		truth[x] = pi[rep]
	}

	dim := N * N
	u := mat.NewDense(dim, dim, nil)
	for x := 0; x < N; x++ {
		for y := 0; y < N; y++ {
			z := y ^ truth[x]
			u.Set(x+N*z, x+N*y, 1)
		}
	}
	o := &Oracle{n: n, truth: truth, u: u}
	if err := o.checkUnitary(); err != nil {
		return nil, err
	}
	return o, nil
}

// Width returns n, the number of input (and output) wires.
func (o *Oracle) Width() int {
	return o.n
}

// Gates returns the CNOT network of a linear-form oracle, or nil for the
// permutation form.
func (o *Oracle) Gates() []CNOT {
	return o.gates
}

// Matrix returns the explicit query matrix of a permutation-form oracle, or
// nil for the linear form.
func (o *Oracle) Matrix() mat.Matrix {
	if o.u == nil {
		return nil
	}
	return o.u
}

// Eval returns f(x) for the input x, encoded with input bit i at bit i.
func (o *Oracle) Eval(x int) int {
	if o.truth != nil {
		return o.truth[x]
	}
	out := 0
	for _, g := range o.gates {
		if x&(1<<g.Control) != 0 {
			out ^= 1 << g.Target
		}
	}
	return out
}

// MapBasis applies the oracle to the joint-register basis state i,
// returning the index of (x, y ⊕ f(x)) for i = (x, y). Every realization of
// the oracle is a permutation of basis states, so this fully describes its
// action.
func (o *Oracle) MapBasis(i int) int {
	x := i & (1<<o.n - 1)
	y := i >> o.n
	return x | (y^o.Eval(x))<<o.n
}

// ToProto converts o into an equivalent OracleDescription proto. Linear
// oracles travel as their CNOT network, permutation oracles as their truth
// table.
func (o *Oracle) ToProto() *simonpb.OracleDescription {
	pb := &simonpb.OracleDescription{Width: int32(o.n)}
	if o.gates != nil {
		for _, g := range o.gates {
			pb.Gates = append(pb.Gates, &simonpb.CnotGate{
				Control: int32(g.Control),
				Target:  int32(g.Target),
			})
		}
		return pb
	}
	for _, v := range o.truth {
		pb.Truth = append(pb.Truth, int32(v))
	}
	return pb
}

// FromProto reconstructs an Oracle from its wire description. The explicit
// query matrix of a permutation-form oracle does not travel; the truth
// table is enough to apply it.
func FromProto(pb *simonpb.OracleDescription) (*Oracle, error) {
	n := int(pb.GetWidth())
	if n < 1 {
		return nil, fmt.Errorf("oracle width %d < 1", n)
	}
	if len(pb.GetGates()) > 0 {
		gates := make([]CNOT, 0, len(pb.GetGates()))
		for _, g := range pb.GetGates() {
			c, t := int(g.GetControl()), int(g.GetTarget())
			if c < 0 || c >= n || t < 0 || t >= n {
				return nil, fmt.Errorf("CNOT (%d -> %d) out of range for width %d", c, t, n)
			}
			gates = append(gates, CNOT{Control: c, Target: t})
		}
		return &Oracle{n: n, gates: gates}, nil
	}
	if len(pb.GetTruth()) != 1<<n {
		return nil, fmt.Errorf("truth table has %d entries, want %d", len(pb.GetTruth()), 1<<n)
	}
	truth := make([]int, 0, len(pb.GetTruth()))
	for _, v := range pb.GetTruth() {
		if v < 0 || int(v) >= 1<<n {
			return nil, fmt.Errorf("truth table value %d out of range for width %d", v, n)
		}
		truth = append(truth, int(v))
	}
	return &Oracle{n: n, truth: truth}, nil
}

// checkUnitary verifies U·Uᵀ = I. The entries of U are exactly 0 or 1, so
// the comparison is exact.
func (o *Oracle) checkUnitary() error {
	dim, _ := o.u.Dims()
	ones := make([]float64, dim)
	for i := range ones {
		ones[i] = 1
	}
	var prod mat.Dense
	prod.Mul(o.u, o.u.T())
	if !mat.Equal(&prod, mat.NewDiagDense(dim, ones)) {
		return &UnitarityError{Dim: dim}
	}
	return nil
}

func checkSecret(s bitvec.Dense) error {
	if s.Size() == 0 || s.Zero() {
		return &InvalidSecretError{Secret: s.String()}
	}
	return nil
}

func lowestOne(s bitvec.Dense) int {
	for i := 0; i < s.Size(); i++ {
		if s.Get(i) {
			return i
		}
	}
	return -1
}

package simon

import (
	"sort"

	"github.com/alan-christopher/simon/go/simon/bitvec"
)

// A linsys accumulates measurement constraints as the rows of a GF(2)
// matrix kept in reduced row-echelon form. Rows are nonzero and pairwise
// independent; under Simon's promise at most n−1 independent constraints
// exist, since the null space always contains s.
//
// All arithmetic is XOR on exact bit vectors. Floating-point elimination
// silently corrupts parity relations and must never be substituted here.
type linsys struct {
	n      int
	rows   []bitvec.Dense
	pivots []int
}

func newLinsys(n int) *linsys {
	return &linsys{n: n}
}

func (ls *linsys) rank() int {
	return len(ls.rows)
}

// add reduces y against the accumulated rows and inserts the remainder if
// it is nonzero, reporting whether the rank grew. Zero and linearly
// dependent vectors reduce to nothing and are discarded.
func (ls *linsys) add(y bitvec.Dense) bool {
	v := y
	for i, r := range ls.rows {
		if v.Get(ls.pivots[i]) {
			v = v.XOr(r)
		}
	}
	p := firstOne(v)
	if p < 0 {
		return false
	}
	// Back-reduce so existing rows stay clear of the new pivot column.
	for i, r := range ls.rows {
		if r.Get(p) {
			ls.rows[i] = r.XOr(v)
		}
	}
	at := sort.SearchInts(ls.pivots, p)
	ls.pivots = append(ls.pivots, 0)
	copy(ls.pivots[at+1:], ls.pivots[at:])
	ls.pivots[at] = p
	ls.rows = append(ls.rows, bitvec.Empty())
	copy(ls.rows[at+1:], ls.rows[at:])
	ls.rows[at] = v
	return true
}

// nullVector returns the unique nonzero vector orthogonal to every row.
// Valid once rank = n−1: the single pivot-free column is the free variable,
// and each pivot variable reads off that column of its row.
func (ls *linsys) nullVector() (bitvec.Dense, error) {
	free := -1
	i := 0
	for c := 0; c < ls.n; c++ {
		if i < len(ls.pivots) && ls.pivots[i] == c {
			i++
			continue
		}
		free = c
		break
	}
	if free < 0 {
		return bitvec.Empty(), &DegenerateNullspaceError{}
	}
	z := bitvec.NewDense(nil, ls.n)
	z.Flip(free)
	for i, r := range ls.rows {
		if r.Get(free) {
			z.Flip(ls.pivots[i])
		}
	}
	// Unreachable under exact GF(2) arithmetic, but the recovery contract
	// demands a typed failure over a wrong guess.
	if z.Zero() {
		return bitvec.Empty(), &DegenerateNullspaceError{}
	}
	for _, r := range ls.rows {
		if bitvec.Dot(r, z) {
			return bitvec.Empty(), &DegenerateNullspaceError{}
		}
	}
	return z, nil
}

func firstOne(v bitvec.Dense) int {
	for i := 0; i < v.Size(); i++ {
		if v.Get(i) {
			return i
		}
	}
	return -1
}

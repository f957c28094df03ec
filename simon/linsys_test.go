package simon

import (
	"errors"
	"testing"

	"github.com/alan-christopher/simon/go/simon/bitvec"
)

func TestLinsysAdd(t *testing.T) {
	tcs := []struct {
		row   string
		grows bool
		erank int
	}{
		{row: "000", grows: false, erank: 0},
		{row: "101", grows: true, erank: 1},
		{row: "101", grows: false, erank: 1},
		{row: "011", grows: true, erank: 2},
		{row: "110", grows: false, erank: 2}, // 101 ⊕ 011
		{row: "111", grows: true, erank: 3},
	}

	sys := newLinsys(3)
	for _, tc := range tcs {
		row, err := bitvec.FromString(tc.row)
		if err != nil {
			t.Fatal(err)
		}
		if got := sys.add(row); got != tc.grows {
			t.Errorf("add(%s) == %v, want %v", tc.row, got, tc.grows)
		}
		if sys.rank() != tc.erank {
			t.Errorf("rank after add(%s) == %d, want %d", tc.row, sys.rank(), tc.erank)
		}
	}

	// A full-rank system has a trivial null space, which recovery must
	// refuse to present as a secret.
	_, err := sys.nullVector()
	var dne *DegenerateNullspaceError
	if !errors.As(err, &dne) {
		t.Errorf("nullVector on full-rank system == %v, want DegenerateNullspaceError", err)
	}
}

func TestNullVectorOrthogonality(t *testing.T) {
	for _, sec := range []string{"11", "101", "0110", "11010"} {
		t.Run(sec, func(t *testing.T) {
			s, err := bitvec.FromString(sec)
			if err != nil {
				t.Fatal(err)
			}
			n := s.Size()
			sys := newLinsys(n)
			for v := 0; v < 1<<n && sys.rank() < n-1; v++ {
				y := bitvec.FromUint(uint(v), n)
				if !bitvec.Dot(y, s) {
					sys.add(y)
				}
			}
			if sys.rank() != n-1 {
				t.Fatalf("orthogonal complement yielded rank %d, want %d", sys.rank(), n-1)
			}
			z, err := sys.nullVector()
			if err != nil {
				t.Fatalf("nullVector: %v", err)
			}
			if !bitvec.Equal(z, s) {
				t.Errorf("nullVector == %v, want %v", z, s)
			}
		})
	}
}

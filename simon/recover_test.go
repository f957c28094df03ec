package simon

import (
	"errors"
	"testing"

	"github.com/alan-christopher/simon/go/simon/bitvec"
)

func vecs(t *testing.T, ss ...string) []bitvec.Dense {
	t.Helper()
	r := make([]bitvec.Dense, 0, len(ss))
	for _, s := range ss {
		d, err := bitvec.FromString(s)
		if err != nil {
			t.Fatal(err)
		}
		r = append(r, d)
	}
	return r
}

func TestRecoverKnownSystem(t *testing.T) {
	// All samples are orthogonal to the hidden string 110 over GF(2).
	tcs := []struct {
		name    string
		samples []string
	}{
		{
			name:    "exact",
			samples: []string{"001", "111"},
		}, {
			name:    "leading zero sample",
			samples: []string{"000", "001", "111"},
		}, {
			name:    "redundant third sample",
			samples: []string{"001", "111", "110"},
		}, {
			name:    "duplicates before rank",
			samples: []string{"001", "001", "000", "111"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Recover(vecs(t, tc.samples...), 3)
			if err != nil {
				t.Fatalf("Recover: %v", err)
			}
			if got.String() != "110" {
				t.Errorf("Recover == %v, want 110", got)
			}
		})
	}
}

func TestRecoverSweep(t *testing.T) {
	for _, sec := range []string{"1", "11", "01", "110", "1011", "10110", "100101"} {
		t.Run(sec, func(t *testing.T) {
			s, err := bitvec.FromString(sec)
			if err != nil {
				t.Fatal(err)
			}
			n := s.Size()
			// Feed the entire orthogonal complement of s; it spans the
			// n−1 dimensions the recovery needs.
			var samples []bitvec.Dense
			for v := 0; v < 1<<n; v++ {
				y := bitvec.FromUint(uint(v), n)
				if !bitvec.Dot(y, s) {
					samples = append(samples, y)
				}
			}
			got, err := Recover(samples, n)
			if err != nil {
				t.Fatalf("Recover: %v", err)
			}
			if !bitvec.Equal(got, s) {
				t.Errorf("Recover == %v, want %v", got, s)
			}
		})
	}
}

func TestRecoverInsufficientRank(t *testing.T) {
	samples := vecs(t, "0011", "0011", "0000")
	_, err := Recover(samples, 4)
	var ire *InsufficientRankError
	if !errors.As(err, &ire) {
		t.Fatalf("Recover error == %v, want InsufficientRankError", err)
	}
	if ire.Rank != 1 || ire.Needed != 3 || ire.Consumed != 3 {
		t.Errorf("InsufficientRankError == %+v, want rank 1, needed 3, consumed 3", ire)
	}
}

func TestRecoverNoSamples(t *testing.T) {
	_, err := Recover(nil, 3)
	var ire *InsufficientRankError
	if !errors.As(err, &ire) {
		t.Fatalf("Recover error == %v, want InsufficientRankError", err)
	}
	if ire.Rank != 0 || ire.Consumed != 0 {
		t.Errorf("InsufficientRankError == %+v, want rank 0, consumed 0", ire)
	}
}

func TestRecoverWidthMismatch(t *testing.T) {
	_, err := Recover(vecs(t, "01"), 3)
	if err == nil {
		t.Fatal("Recover accepted a 2-bit sample for a 3-wire system")
	}
	var ire *InsufficientRankError
	if errors.As(err, &ire) {
		t.Errorf("width mismatch misreported as InsufficientRankError: %v", err)
	}
}

func TestRecoverSingleWire(t *testing.T) {
	// With n = 1 the only valid secret is 1 and no constraints are needed.
	got, err := Recover(nil, 1)
	if err != nil {
		t.Fatalf("Recover: %v", err)
	}
	if got.String() != "1" {
		t.Errorf("Recover == %v, want 1", got)
	}
}

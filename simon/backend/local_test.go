package backend

import (
	"math/rand"
	"testing"

	"github.com/alan-christopher/simon/go/simon/bitvec"
	"github.com/alan-christopher/simon/go/simon/oracle"
)

func TestLocalOrthogonality(t *testing.T) {
	// Every ideal measurement of the query circuit lands in the orthogonal
	// complement of the hidden string.
	s, err := bitvec.FromString("1011")
	if err != nil {
		t.Fatal(err)
	}
	o, err := oracle.Build(s)
	if err != nil {
		t.Fatal(err)
	}
	samples, err := NewLocal(rand.New(rand.NewSource(13))).Sample(o, 200)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if len(samples) != 200 {
		t.Fatalf("got %d samples, want 200", len(samples))
	}
	distinct := make(map[string]bool)
	for _, y := range samples {
		if y.Size() != 4 {
			t.Fatalf("sample %v has %d bits, want 4", y, y.Size())
		}
		if bitvec.Dot(y, s) {
			t.Fatalf("sampled %v with %v · s == 1", y, y)
		}
		distinct[y.String()] = true
	}
	if len(distinct) < 2 {
		t.Errorf("200 shots produced %d distinct outcomes; the distribution is not degenerate", len(distinct))
	}
}

func TestLocalPermutationOrthogonality(t *testing.T) {
	s, err := bitvec.FromString("110")
	if err != nil {
		t.Fatal(err)
	}
	o, err := oracle.BuildPermutation(s, rand.New(rand.NewSource(21)))
	if err != nil {
		t.Fatal(err)
	}
	samples, err := NewLocal(rand.New(rand.NewSource(22))).Sample(o, 100)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	for _, y := range samples {
		if bitvec.Dot(y, s) {
			t.Fatalf("sampled %v with %v · s == 1", y, y)
		}
	}
}

func TestLocalSeeded(t *testing.T) {
	s, err := bitvec.FromString("101")
	if err != nil {
		t.Fatal(err)
	}
	o, err := oracle.Build(s)
	if err != nil {
		t.Fatal(err)
	}
	a, err := NewLocal(rand.New(rand.NewSource(5))).Sample(o, 30)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewLocal(rand.New(rand.NewSource(5))).Sample(o, 30)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if !bitvec.Equal(a[i], b[i]) {
			t.Fatalf("same seed diverged at shot %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestLocalRejectsZeroShots(t *testing.T) {
	s, err := bitvec.FromString("11")
	if err != nil {
		t.Fatal(err)
	}
	o, err := oracle.Build(s)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewLocal(rand.New(rand.NewSource(1))).Sample(o, 0); err == nil {
		t.Error("Sample accepted 0 shots")
	}
}

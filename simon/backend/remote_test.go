package backend

import (
	"errors"
	"math/rand"
	"net"
	"strings"
	"testing"

	"github.com/alan-christopher/simon/go/simon/bitvec"
	"github.com/alan-christopher/simon/go/simon/oracle"
)

type failingSampler struct{}

func (failingSampler) Sample(o *oracle.Oracle, shots int) ([]bitvec.Dense, error) {
	return nil, errors.New("backend on fire")
}

func TestRemoteRoundTrip(t *testing.T) {
	l, r := net.Pipe()
	served := make(chan error, 1)
	go func() {
		served <- Serve(r, NewLocal(rand.New(rand.NewSource(31))))
	}()

	s, err := bitvec.FromString("1101")
	if err != nil {
		t.Fatal(err)
	}
	o, err := oracle.Build(s)
	if err != nil {
		t.Fatal(err)
	}
	samples, err := NewRemote(l).Sample(o, 32)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if len(samples) != 32 {
		t.Fatalf("got %d samples, want 32", len(samples))
	}
	for _, y := range samples {
		if y.Size() != 4 {
			t.Fatalf("sample %v has %d bits, want 4", y, y.Size())
		}
		if bitvec.Dot(y, s) {
			t.Fatalf("sampled %v with %v · s == 1", y, y)
		}
	}

	l.Close()
	if err := <-served; err != nil {
		t.Errorf("Serve: %v", err)
	}
}

func TestRemoteReportsBackendError(t *testing.T) {
	l, r := net.Pipe()
	defer l.Close()
	go Serve(r, failingSampler{})

	s, err := bitvec.FromString("11")
	if err != nil {
		t.Fatal(err)
	}
	o, err := oracle.Build(s)
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewRemote(l).Sample(o, 4)
	if err == nil {
		t.Fatal("Sample swallowed remote failure")
	}
	if !strings.Contains(err.Error(), "remote backend") {
		t.Errorf("Sample error == %v, want a remote backend report", err)
	}
}

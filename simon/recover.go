package simon

import (
	"fmt"

	"github.com/alan-christopher/simon/go/simon/bitvec"
)

// An InsufficientRankError reports that the supplied samples spanned fewer
// than the n−1 independent constraints needed to pin down the hidden
// string. Callers can recover by requesting more shots; Recover itself
// never retries and never guesses.
type InsufficientRankError struct {
	Rank     int // independent constraints accumulated
	Needed   int // n − 1
	Consumed int // samples inspected
}

func (e *InsufficientRankError) Error() string {
	return fmt.Sprintf("rank %d after %d samples, need %d independent constraints",
		e.Rank, e.Consumed, e.Needed)
}

// A DegenerateNullspaceError reports a full-rank constraint system whose
// null space did not come out one-dimensional. This cannot happen under
// exact GF(2) arithmetic; it indicates a broken oracle or an arithmetic
// bug, and is never recoverable.
type DegenerateNullspaceError struct{}

func (e *DegenerateNullspaceError) Error() string {
	return "constraint system does not admit a one-dimensional null space"
}

// Recover solves for the hidden string of an n-wire Simon oracle given
// sampled measurement outcomes. Every nonzero sample y is a constraint
// y · s ≡ 0 (mod 2); all-zero samples carry no constraint and linearly
// dependent samples are redundant, so both are discarded rather than
// treated as errors. Sampling stops as soon as n−1 independent constraints
// have been seen.
func Recover(samples []bitvec.Dense, n int) (bitvec.Dense, error) {
	var stats Stats
	return recoverSecret(samples, n, &stats)
}

func recoverSecret(samples []bitvec.Dense, n int, stats *Stats) (bitvec.Dense, error) {
	if n < 1 {
		return bitvec.Empty(), fmt.Errorf("recovering a secret of width %d, need at least 1", n)
	}
	sys := newLinsys(n)
	for _, y := range samples {
		if sys.rank() == n-1 {
			break
		}
		if y.Size() != n {
			return bitvec.Empty(), fmt.Errorf("sample %v has %d bits, want %d", y, y.Size(), n)
		}
		stats.SamplesConsumed++
		sys.add(y)
		stats.Rank = sys.rank()
	}
	if sys.rank() < n-1 {
		return bitvec.Empty(), &InsufficientRankError{
			Rank:     sys.rank(),
			Needed:   n - 1,
			Consumed: stats.SamplesConsumed,
		}
	}
	return sys.nullVector()
}

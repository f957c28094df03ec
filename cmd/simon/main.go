// main.go runs one demonstration of Simon's period-finding problem: build
// a query oracle hiding --secret, sample its query circuit --shots times on
// the local statevector simulator, print the outcome histogram, and recover
// the secret from the measured constraints.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"sort"

	flag "github.com/spf13/pflag"

	"github.com/alan-christopher/simon/go/simon"
	"github.com/alan-christopher/simon/go/simon/backend"
	"github.com/alan-christopher/simon/go/simon/bitvec"
	"github.com/alan-christopher/simon/go/simon/oracle"
)

var (
	secret = flag.String("secret", "", "The hidden binary string, e.g. 11011. Required.")
	shots  = flag.Int("shots", 64, "The number of query-circuit executions to sample.")
	form   = flag.String("form", "linear", "The oracle realization to build: linear or permutation.")
	seed   = flag.Int64("seed", 1, "Seed for the simulator and the permutation-form masking.")
)

func main() {
	flag.Parse()
	s, err := bitvec.FromString(*secret)
	if err != nil {
		log.Fatalf("Parsing --secret: %v", err)
	}
	rnd := rand.New(rand.NewSource(*seed))

	var o *oracle.Oracle
	switch *form {
	case "linear":
		o, err = oracle.Build(s)
	case "permutation":
		o, err = oracle.BuildPermutation(s, rnd)
	default:
		log.Fatalf("Unknown oracle form %q", *form)
	}
	if err != nil {
		log.Fatalf("Building oracle: %v", err)
	}

	samples, err := backend.NewLocal(rnd).Sample(o, *shots)
	if err != nil {
		log.Fatalf("Sampling query circuit: %v", err)
	}
	counts := make(map[string]int)
	for _, y := range samples {
		counts[y.String()]++
	}
	outcomes := make([]string, 0, len(counts))
	for k := range counts {
		outcomes = append(outcomes, k)
	}
	sort.Strings(outcomes)
	fmt.Println("outcome, count")
	for _, k := range outcomes {
		fmt.Printf("%s, %d\n", k, counts[k])
	}

	got, err := simon.Recover(samples, o.Width())
	if err != nil {
		log.Fatalf("Recovering secret: %v", err)
	}
	fmt.Printf("recovered secret: %v\n", got)
	if !bitvec.Equal(got, s) {
		log.Fatalf("Recovered %v, but the hidden string was %v", got, s)
	}
}

package main

import (
	"fmt"
	"io"

	"github.com/samber/lo"
)

// Sieve returns the primes strictly below bound.
//
// Candidates start as 2..bound-1. The head is always prime: it is emitted,
// then every candidate it divides (itself included) is rejected by a
// predicate that captures the head by value.
func Sieve(bound int) []int {
	candidates := lo.RangeFrom(2, max(bound-2, 0))

	var primes []int
	for len(candidates) > 0 {
		g := candidates[0]
		primes = append(primes, g)
		candidates = lo.Reject(candidates, func(a int, _ int) bool {
			return a%g == 0
		})
	}
	return primes
}

// printSieve writes the primes below bound as "2 - 3 - 5 - 7 - ".
func printSieve(w io.Writer, bound int) {
	for _, p := range Sieve(bound) {
		fmt.Fprintf(w, "%d - ", p)
	}
	fmt.Fprintln(w)
}

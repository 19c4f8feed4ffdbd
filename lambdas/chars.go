package main

import (
	"fmt"
	"io"

	"github.com/samber/lo"
)

// ShiftAll adds by to every rune of cs, in place.
// lo.ForEach hands the callback a copy of each element, so the closure
// writes back through the captured slice using the index.
func ShiftAll(cs []rune, by rune) {
	lo.ForEach(cs, func(_ rune, i int) {
		cs[i] += by
	})
}

func printRunes(w io.Writer, cs []rune) {
	for _, c := range cs {
		fmt.Fprintf(w, "%c\n", c)
	}
}

func demoShift(w io.Writer) {
	letters := []rune{'a', 'b', 'c'}
	printRunes(w, letters)

	for range 2 {
		ShiftAll(letters, 1)
	}
	printRunes(w, letters)
}

// counter returns a closure that shares n with every call.
func counter() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}

// demoCapture contrasts a closure over a variable with one over a copy.
// Since Go 1.22 each loop iteration has its own variable, so the
// multipliers below keep 1, 2 and 3.
func demoCapture(w io.Writer) {
	next := counter()
	next()
	next()
	fmt.Fprintf(w, "  shared counter after 3 calls: %d\n", next())

	var multipliers []func(int) int
	for k := 1; k <= 3; k++ {
		multipliers = append(multipliers, func(x int) int { return x * k })
	}
	results := lo.Map(multipliers, func(f func(int) int, _ int) int { return f(10) })
	fmt.Fprintf(w, "  per-iteration capture: %v\n", results)
}

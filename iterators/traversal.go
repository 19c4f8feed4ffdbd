package main

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

// demoIndexLoop walks v with a cursor that starts at the first element and
// stops one past the last, the closest Go gets to a begin/end iterator pair.
func demoIndexLoop(w io.Writer, v []int) {
	for i := 0; i != len(v); i++ {
		fmt.Fprintf(w, "%d ", v[i])
	}
	fmt.Fprintln(w)
}

// demoRange lets the compiler manage the cursor.
func demoRange(w io.Writer, v []int) {
	for _, x := range v {
		fmt.Fprintf(w, "%d ", x)
	}
	fmt.Fprintln(w)
}

// demoSeq ranges over iterator functions (Go 1.23+).
// slices.Values and forward produce the same sequence.
func demoSeq(w io.Writer, v []int) {
	printSeq(w, slices.Values(v))
	printSeq(w, forward(v))
}

// forward is a push iterator: it calls yield for each element until yield
// returns false.
func forward[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s {
			if !yield(x) {
				return
			}
		}
	}
}

func printSeq(w io.Writer, seq iter.Seq[int]) {
	for x := range seq {
		fmt.Fprintf(w, "%d ", x)
	}
	fmt.Fprintln(w)
}

package main

import (
	"fmt"
	"io"
)

// IsEven reports whether *n is even. A nil n has nothing to check and is
// reported as true, after saying so on w.
func IsEven(w io.Writer, n *int) bool {
	if n == nil {
		fmt.Fprint(w, "no integer to process ")
		return true
	}
	fmt.Fprint(w, "parity check ")
	return *n%2 == 0
}

func demoParity(w io.Writer) {
	i := 2
	fmt.Fprintln(w, IsEven(w, &i))

	pi := new(int)
	*pi = 3
	fmt.Fprintln(w, IsEven(w, pi))

	fmt.Fprintln(w, IsEven(w, nil))
}

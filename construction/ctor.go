package main

import (
	"fmt"
	"io"
)

type B struct {
	Value int
}

// NewB announces every construction on w.
func NewB(w io.Writer, value int) *B {
	fmt.Fprintf(w, "B constructor : %d\n", value)
	return &B{Value: value}
}

// Valuer is the part of B's behavior that D inherits through embedding.
type Valuer interface {
	Val() int
}

func (b *B) Val() int { return b.Value }

// D adds nothing to B. Its constructor takes the same arguments and
// delegates to NewB, so both types share one construction contract.
type D struct {
	*B
}

func NewD(w io.Writer, value int) *D {
	return &D{B: NewB(w, value)}
}

// demoDelegation builds B and D as values and as pointers, and returns
// them as Valuers in construction order.
func demoDelegation(w io.Writer) []Valuer {
	b := *NewB(w, 1)
	d := *NewD(w, 2)

	b2 := NewB(w, 3)
	d2 := NewD(w, 4)

	// A D used where only B's behavior is expected.
	var b3 Valuer = NewD(w, 5)

	return []Valuer{&b, d, b2, d2, b3}
}

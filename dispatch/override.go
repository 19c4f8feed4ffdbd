package main

import (
	"fmt"
	"io"
)

// Floater is the overridable operation: whichever concrete type sits in
// the interface value decides which F runs.
type Floater interface {
	F(x float32)
}

type A struct {
	w io.Writer
}

func (a *A) F(x float32) { fmt.Fprintf(a.w, "A::f(%v)\n", x) }

// B embeds A and declares its own F with the same signature. The outer
// method shadows the promoted one, so *B satisfies Floater with B.F.
type B struct {
	A
}

func (b *B) F(x float32) { fmt.Fprintf(b.w, "B::f(%v)\n", x) }

// Compile-time checks.
var (
	_ Floater = (*A)(nil)
	_ Floater = (*B)(nil)
)

func demoOverride(w io.Writer) {
	a := A{w: w}
	a.F(1.1)

	b := B{A{w: w}}
	b.F(2.2)

	var a2 Floater = &A{w: w}
	a2.F(3.3)

	b2 := &B{A{w: w}}
	b2.F(4.4)

	var ab Floater = &B{A{w: w}}
	ab.F(5.5)

	// The embedded method is still reachable by naming it explicitly.
	b2.A.F(6.6)
}

package main

import (
	"fmt"
	"io"
)

// Fixed is satisfied by anything that can run the sealed operation F.
type Fixed interface {
	F()
}

// Base owns F. Go has no virtual methods on structs: a call to Base.F
// always runs this body, whatever type embeds Base.
type Base struct {
	w io.Writer
}

func (b Base) F() { fmt.Fprintln(b.w, "A::f") }

// Derived embeds Base and adds FWith, a separate operation with its own
// name. It does not replace F, so F is promoted unchanged from Base.
type Derived struct {
	Base
}

func (d Derived) FWith(i int) { fmt.Fprintf(d.w, "B::f(%d)\n", i) }

func demoSealed(w io.Writer) {
	a := Base{w: w}
	a.F()

	b := Derived{Base{w: w}}
	b.FWith(1)

	a2 := &Base{w: w}
	a2.F()

	b2 := &Derived{Base{w: w}}
	b2.FWith(2)

	// A handle of the base capability holding a Derived value still runs
	// Base.F. FWith is not part of Fixed, so it cannot be reached here.
	var ab Fixed = &Derived{Base{w: w}}
	ab.F()
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/marcodamonte/mechanics/internal/config"
	"github.com/marcodamonte/mechanics/internal/logx"
)

// Closures passed to collection helpers: in-place updates through the
// captured slice, and a filter predicate that captures a value.
//
// Run:
//
//	go run ./lambdas
//	MECHANICS_SIEVE_BOUND=50 go run ./lambdas
func main() {
	cfg, err := config.Load()
	log := logx.New(os.Stderr, cfg.LogLevel, cfg.NoColor)
	if err != nil {
		log.Error("config load failed", logx.Error(err))
		os.Exit(1)
	}

	log.Debug("demo starting", "demo", "lambdas", "sieve_bound", cfg.SieveBound)
	run(os.Stdout, cfg.SieveBound)
	log.Debug("demo finished", "demo", "lambdas")
}

func run(w io.Writer, bound int) {
	section(w, "ForEach — mutate every element through the captured slice")
	demoShift(w)

	section(w, "Capture — value copied at creation vs shared variable")
	demoCapture(w)

	section(w, fmt.Sprintf("Reject — sieve of Eratosthenes below %d", bound))
	printSieve(w, bound)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

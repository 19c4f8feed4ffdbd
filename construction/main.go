package main

import (
	"fmt"
	"io"
	"os"

	"github.com/marcodamonte/mechanics/internal/config"
	"github.com/marcodamonte/mechanics/internal/logx"
)

// Constructor delegation: a type that embeds another reuses its
// constructor instead of defining new construction logic.
//
// Run:
//
//	go run ./construction
func main() {
	cfg, err := config.Load()
	log := logx.New(os.Stderr, cfg.LogLevel, cfg.NoColor)
	if err != nil {
		log.Error("config load failed", logx.Error(err))
		os.Exit(1)
	}

	log.Debug("demo starting", "demo", "construction")
	run(os.Stdout)
	log.Debug("demo finished", "demo", "construction")
}

func run(w io.Writer) {
	section(w, "Delegation — NewD forwards to NewB unchanged")
	demoDelegation(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

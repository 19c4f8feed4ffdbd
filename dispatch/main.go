package main

import (
	"fmt"
	"io"
	"os"

	"github.com/marcodamonte/mechanics/internal/config"
	"github.com/marcodamonte/mechanics/internal/logx"
)

// Method sets and embedding: what is fixed, what is overridable, and what
// dynamic dispatch through an interface resolves to.
//
// Run:
//
//	go run ./dispatch
func main() {
	cfg, err := config.Load()
	log := logx.New(os.Stderr, cfg.LogLevel, cfg.NoColor)
	if err != nil {
		log.Error("config load failed", logx.Error(err))
		os.Exit(1)
	}

	log.Debug("demo starting", "demo", "dispatch")
	run(os.Stdout)
	log.Debug("demo finished", "demo", "dispatch")
}

func run(w io.Writer) {
	section(w, "Sealed — embedded method next to a distinct derived method")
	demoSealed(w)

	section(w, "Override — interface dispatch picks the outer method")
	demoOverride(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

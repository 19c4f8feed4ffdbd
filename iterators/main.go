package main

import (
	"fmt"
	"io"
	"os"

	"github.com/marcodamonte/mechanics/internal/config"
	"github.com/marcodamonte/mechanics/internal/logx"
)

// Three ways to walk the same slice. Every form prints the same line.
//
// Run:
//
//	go run ./iterators
func main() {
	cfg, err := config.Load()
	log := logx.New(os.Stderr, cfg.LogLevel, cfg.NoColor)
	if err != nil {
		log.Error("config load failed", logx.Error(err))
		os.Exit(1)
	}

	log.Debug("demo starting", "demo", "iterators")
	run(os.Stdout)
	log.Debug("demo finished", "demo", "iterators")
}

func run(w io.Writer) {
	v := []int{4, 7, 3, 8}

	section(w, "Index loop — explicit begin/end bounds")
	demoIndexLoop(w, v)

	section(w, "range — the everyday form")
	demoRange(w, v)

	section(w, "iter.Seq — slices.Values and a hand-written sequence")
	demoSeq(w, v)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

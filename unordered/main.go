package main

import (
	"fmt"
	"io"
	"os"

	"github.com/marcodamonte/mechanics/internal/config"
	"github.com/marcodamonte/mechanics/internal/logx"
)

// A hash map whose hash function is chosen by the caller.
//
// Run:
//
//	go run ./unordered
func main() {
	cfg, err := config.Load()
	log := logx.New(os.Stderr, cfg.LogLevel, cfg.NoColor)
	if err != nil {
		log.Error("config load failed", logx.Error(err))
		os.Exit(1)
	}

	log.Debug("demo starting", "demo", "unordered")
	run(os.Stdout)
	log.Debug("demo finished", "demo", "unordered")
}

func run(w io.Writer) {
	section(w, "Custom hasher — weighted character sum")
	demoWeightedSum(w)

	section(w, "Swapping the hasher — xxHash")
	demoXXHash(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

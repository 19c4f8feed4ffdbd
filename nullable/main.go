package main

import (
	"fmt"
	"io"
	"os"

	"github.com/marcodamonte/mechanics/internal/config"
	"github.com/marcodamonte/mechanics/internal/logx"
)

// One parity check over an optional integer. A nil pointer means there is
// nothing to process.
//
// Run:
//
//	go run ./nullable
func main() {
	cfg, err := config.Load()
	log := logx.New(os.Stderr, cfg.LogLevel, cfg.NoColor)
	if err != nil {
		log.Error("config load failed", logx.Error(err))
		os.Exit(1)
	}

	log.Debug("demo starting", "demo", "nullable")
	run(os.Stdout)
	log.Debug("demo finished", "demo", "nullable")
}

func run(w io.Writer) {
	section(w, "*int — value present vs nil")
	demoParity(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

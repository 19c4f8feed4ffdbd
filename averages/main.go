package main

import (
	"fmt"
	"io"
	"os"

	"github.com/marcodamonte/mechanics/internal/config"
	"github.com/marcodamonte/mechanics/internal/logx"
	"github.com/marcodamonte/mechanics/student"
)

// Per-student averages folded into one cohort average.
//
// Run:
//
//	go run ./averages
func main() {
	cfg, err := config.Load()
	log := logx.New(os.Stderr, cfg.LogLevel, cfg.NoColor)
	if err != nil {
		log.Error("config load failed", logx.Error(err))
		os.Exit(1)
	}

	log.Debug("demo starting", "demo", "averages")
	if err := run(os.Stdout); err != nil {
		log.Error("demo failed", "demo", "averages", logx.Error(err))
		os.Exit(1)
	}
	log.Debug("demo finished", "demo", "averages")
}

func run(w io.Writer) error {
	cohort := []student.Student{
		student.New("Lucie", 4, 6),
		student.New("Sophie", 10, 13),
		student.New("Pierre David", 18, 20),
	}

	section(w, "range over values — each Student is a copy")
	if err := demoAverages(w, cohort); err != nil {
		return fmt.Errorf("averages: %w", err)
	}

	section(w, "Empty score set — an error, not NaN")
	demoEmpty(w)
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

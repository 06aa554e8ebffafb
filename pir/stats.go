package pir

import (
	"fmt"
	"time"
)

// Stats is the thin, optional timing hook a server binary built on this
// library can wire up at the Setup/Answer seam; the core itself never
// calls Print. Grounded on the teacher PIR example's printTime/printRate
// helpers, generalized from their multi-party CKG/request split into this
// library's offline preprocessing / online answer split.
type Stats struct {
	Label   string
	Elapsed time.Duration
}

// Track runs f, recording its wall-clock duration under label.
func Track(label string, f func()) Stats {
	start := time.Now()
	f()
	return Stats{Label: label, Elapsed: time.Since(start)}
}

// Print writes the stat to stdout in the teacher example's format.
func (s Stats) Print() {
	fmt.Printf("%s: %s\n", s.Label, s.Elapsed)
}

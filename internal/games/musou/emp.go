package musou

import "time"

// ApplyEMP jams every existing enemy and neutralizes every existing bomb.
// It is a one-shot effect: entities created afterwards are not touched.
func ApplyEMP(enemies []*Enemy, bombs []*Bomb) {
	for _, e := range enemies {
		e.Jam()
	}
	for _, b := range bombs {
		b.Neutralize()
	}
}

// EMPFlash is the screen overlay shown after an EMP. It is timed on the
// wall clock and has no effect on the simulation.
type EMPFlash struct {
	Start    time.Time
	Duration time.Duration
}

// Visible reports whether the overlay should be drawn at now.
func (f EMPFlash) Visible(now time.Time) bool {
	if f.Start.IsZero() {
		return false
	}
	return now.Sub(f.Start) < f.Duration
}

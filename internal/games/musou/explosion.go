package musou

import "github.com/vovakirdan/musou/internal/core"

// Explosion is the destruction effect left behind by an enemy or bomb.
type Explosion struct {
	box  core.Box
	life int
}

// NewExplosion creates an effect covering box for life ticks.
func NewExplosion(box core.Box, life int) *Explosion {
	return &Explosion{box: box, life: life}
}

func (x *Explosion) Kind() EntityKind { return KindExplosion }
func (x *Explosion) Bounds() core.Box { return x.box }
func (x *Explosion) Alive() bool { return x.life >= 0 }

// Frame returns the animation frame, alternating every ten ticks.
func (x *Explosion) Frame() int {
	return x.life / 10 % 2
}

// Update counts down the lifetime.
func (x *Explosion) Update() {
	x.life--
}

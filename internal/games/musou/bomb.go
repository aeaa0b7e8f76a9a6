package musou

import "github.com/vovakirdan/musou/internal/core"

// fallbackHeading is used when a bomb would have to aim at its own position.
var fallbackHeading = core.Vec{X: 0, Y: 1}

// Bomb is a hazard dropped by a stopped enemy. Its heading is fixed at
// creation; it never homes.
type Bomb struct {
	box    core.Box
	vel    core.Vec // unit heading
	speed  float64
	active bool
	tint   int // palette index, presentation only
	dead   bool
}

// NewBomb creates a bomb at the bottom center of the enemy aimed at target.
// aimed is false when the orientation was degenerate and the fallback
// heading was used.
func NewBomb(from *Enemy, target core.Vec, radius, speed float64, tint int) (b *Bomb, aimed bool) {
	eb := from.Bounds()
	origin := core.Vec{X: eb.Center().X, Y: eb.Center().Y + eb.H/2}

	vel, ok := core.Orientation(eb.Center(), target)
	if !ok {
		vel = fallbackHeading
	}
	return &Bomb{
		box:    core.BoxAt(origin, 2*radius, 2*radius),
		vel:    vel,
		speed:  speed,
		active: true,
		tint:   tint,
	}, ok
}

func (b *Bomb) Kind() EntityKind { return KindBomb }
func (b *Bomb) Bounds() core.Box { return b.box }
func (b *Bomb) Alive() bool { return !b.dead }
func (b *Bomb) Active() bool { return b.active }
func (b *Bomb) Speed() float64 { return b.speed }
func (b *Bomb) Heading() core.Vec { return b.vel }

// Update moves the bomb and destroys it once it is fully outside the arena.
// Inactive bombs move the same way.
func (b *Bomb) Update(arena core.Bounds) {
	b.box = b.box.Translate(b.vel.Scale(b.speed))
	if !arena.Overlaps(b.box) {
		b.dead = true
	}
}

// Neutralize marks the bomb harmless and halves its speed.
func (b *Bomb) Neutralize() {
	b.active = false
	b.speed *= 0.5
}

// Destroy marks the bomb for removal at the end of the tick.
func (b *Bomb) Destroy() {
	b.dead = true
}

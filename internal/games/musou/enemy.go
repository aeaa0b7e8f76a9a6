package musou

import (
	"math"

	"github.com/vovakirdan/musou/internal/core"
)

// NeverDrop is the drop interval of an enemy that will not drop bombs again.
const NeverDrop = math.MaxInt

// EnemyState is the movement phase of an enemy. It only ever moves from
// descending to stopped.
type EnemyState int

const (
	EnemyDescending EnemyState = iota
	EnemyStopped
)

// Enemy descends from the top edge to a random threshold, stops there and
// drops bombs on the global clock.
type Enemy struct {
	box       core.Box
	vy        float64
	threshold float64 // stop once the center passes this y
	state     EnemyState
	interval  int // ticks between drops, or NeverDrop
	variant   int // sprite choice
	jammed    bool
	dead      bool
}

func (e *Enemy) Kind() EntityKind { return KindEnemy }
func (e *Enemy) Bounds() core.Box { return e.box }
func (e *Enemy) Alive() bool { return !e.dead }
func (e *Enemy) State() EnemyState { return e.state }
func (e *Enemy) Interval() int { return e.interval }
func (e *Enemy) Velocity() float64 { return e.vy }

// Update checks the stop threshold, then moves by the descent velocity.
func (e *Enemy) Update() {
	if e.box.Center().Y > e.threshold {
		e.vy = 0
		e.state = EnemyStopped
	}
	e.box = e.box.Translate(core.Vec{Y: e.vy})
}

// DropsAt reports whether the enemy drops a bomb on the given global tick.
// Drops are aligned to multiples of the interval, not to the stop time.
func (e *Enemy) DropsAt(tick int) bool {
	if e.dead || e.state != EnemyStopped || e.interval == NeverDrop || e.interval <= 0 {
		return false
	}
	return tick%e.interval == 0
}

// Jam stops the enemy from ever dropping bombs again.
func (e *Enemy) Jam() {
	e.interval = NeverDrop
	e.jammed = true
}

// Destroy marks the enemy for removal at the end of the tick.
func (e *Enemy) Destroy() {
	e.dead = true
}

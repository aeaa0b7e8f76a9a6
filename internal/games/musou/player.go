package musou

import (
	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

// PlayerState is the invulnerability state of the player.
type PlayerState int

const (
	PlayerNormal PlayerState = iota
	PlayerHyper
)

// Mood is a transient visual cue on the player.
type Mood int

const (
	MoodNeutral Mood = iota
	MoodTriumph      // shortly after destroying an enemy
	MoodDefeat       // struck while vulnerable
)

// Steer is the snapshot of held movement keys for one tick.
type Steer struct {
	Up, Down, Left, Right bool
}

// SteerFrom extracts the held movement keys from an input frame.
func SteerFrom(in core.InputFrame) Steer {
	return Steer{
		Up:    in.Holding(core.ActionUp),
		Down:  in.Holding(core.ActionDown),
		Left:  in.Holding(core.ActionLeft),
		Right: in.Holding(core.ActionRight),
	}
}

// Dir sums the held keys into a direction; opposing keys cancel.
func (s Steer) Dir() Dir {
	var d Dir
	if s.Up {
		d.DY--
	}
	if s.Down {
		d.DY++
	}
	if s.Left {
		d.DX--
	}
	if s.Right {
		d.DX++
	}
	return d
}

// Player is the controlled entity. It is never removed from the world;
// being struck while vulnerable ends the session instead.
type Player struct {
	box        core.Box
	facing     Dir
	speed      float64
	boostSpeed float64
	state      PlayerState
	hyperLife  int // remaining hyper ticks; negative means expired
	mood       Mood
	moodTicks  int
}

// NewPlayer creates the player centered on the configured start position.
func NewPlayer(cfg config.PlayerConfig) *Player {
	return &Player{
		box:        core.BoxAt(core.Vec{X: cfg.StartX, Y: cfg.StartY}, cfg.Width, cfg.Height),
		facing:     DirRight,
		speed:      cfg.Speed,
		boostSpeed: cfg.BoostSpeed,
		state:      PlayerNormal,
		hyperLife:  -1,
	}
}

func (p *Player) Kind() EntityKind { return KindPlayer }
func (p *Player) Bounds() core.Box { return p.box }
func (p *Player) Alive() bool { return true }
func (p *Player) Center() core.Vec { return p.box.Center() }
func (p *Player) Facing() Dir { return p.facing }
func (p *Player) State() PlayerState { return p.state }
func (p *Player) HyperLife() int { return p.hyperLife }
func (p *Player) Mood() Mood { return p.mood }
func (p *Player) Invulnerable() bool { return p.state == PlayerHyper }

// Move displaces the player by the summed direction times its speed.
// If the moved box leaves the arena on either axis, the whole displacement
// is undone: the player does not slide along the wall.
// Facing follows the last non-zero movement direction.
func (p *Player) Move(steer Steer, boosted bool, arena core.Bounds) {
	speed := p.speed
	if boosted {
		speed = p.boostSpeed
	}

	d := steer.Dir()
	delta := core.Vec{X: float64(d.DX) * speed, Y: float64(d.DY) * speed}
	p.box = p.box.Translate(delta)
	if !arena.Contains(p.box) {
		p.box = p.box.Translate(delta.Scale(-1))
	}

	if !d.IsZero() {
		p.facing = d
	}
}

// ActivateHyper buys invulnerability for duration ticks.
func (p *Player) ActivateHyper(w *Wallet, cost, duration int) bool {
	if !w.Spend(cost) {
		return false
	}
	p.state = PlayerHyper
	p.hyperLife = duration
	return true
}

// TickInvulnerability counts down the hyper state and reverts to normal once
// the countdown turns negative.
func (p *Player) TickInvulnerability() {
	if p.state == PlayerHyper {
		p.hyperLife--
	}
	if p.hyperLife < 0 {
		p.state = PlayerNormal
	}
}

// Cheer shows the triumph cue for the given number of ticks.
func (p *Player) Cheer(ticks int) {
	if p.mood == MoodDefeat {
		return
	}
	p.mood = MoodTriumph
	p.moodTicks = ticks
}

// Despair shows the defeat cue. It is permanent.
func (p *Player) Despair() {
	p.mood = MoodDefeat
	p.moodTicks = 0
}

// Update runs the per-tick player step: movement, then the hyper countdown,
// then the mood cue timer.
func (p *Player) Update(steer Steer, boosted bool, arena core.Bounds) {
	p.Move(steer, boosted, arena)
	p.TickInvulnerability()

	if p.mood == MoodTriumph {
		p.moodTicks--
		if p.moodTicks <= 0 {
			p.mood = MoodNeutral
		}
	}
}

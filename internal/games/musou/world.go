package musou

import (
	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

// World owns every entity collection of one session.
type World struct {
	Arena      core.Bounds
	Player     *Player
	Enemies    []*Enemy
	Bombs      []*Bomb
	Beams      []*Beam
	Shield     *Shield // at most one
	Fields     []*GravityField
	Explosions []*Explosion
}

// NewWorld creates an empty arena with the player at its start position.
func NewWorld(cfg config.MusouConfig) *World {
	return &World{
		Arena:  core.Bounds{W: cfg.Arena.Width, H: cfg.Arena.Height},
		Player: NewPlayer(cfg.Player),
	}
}

// GravityActive reports whether any gravity field is active.
func (w *World) GravityActive() bool {
	for _, f := range w.Fields {
		if f.Active() {
			return true
		}
	}
	return false
}

// Sweep removes every destroyed entity. It runs once all passes of a tick
// are done so no collection is modified while being iterated.
func (w *World) Sweep() {
	w.Enemies = sweep(w.Enemies)
	w.Bombs = sweep(w.Bombs)
	w.Beams = sweep(w.Beams)
	w.Fields = sweep(w.Fields)
	w.Explosions = sweep(w.Explosions)
	if w.Shield != nil && !w.Shield.Alive() {
		w.Shield = nil
	}
}

// Each calls fn for every live entity, in drawing order.
func (w *World) Each(fn func(Entity)) {
	for _, f := range w.Fields {
		if f.Alive() {
			fn(f)
		}
	}
	if w.Shield != nil && w.Shield.Alive() {
		fn(w.Shield)
	}
	for _, e := range w.Enemies {
		if e.Alive() {
			fn(e)
		}
	}
	for _, b := range w.Bombs {
		if b.Alive() {
			fn(b)
		}
	}
	for _, b := range w.Beams {
		if b.Alive() {
			fn(b)
		}
	}
	for _, x := range w.Explosions {
		if x.Alive() {
			fn(x)
		}
	}
	fn(w.Player)
}

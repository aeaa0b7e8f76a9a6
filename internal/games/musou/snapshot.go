package musou

import (
	"math"

	"github.com/vovakirdan/musou/internal/core"
)

// EntityView is the presentation data of one live entity. Fields that do
// not apply to the entity's kind are zero.
type EntityView struct {
	Kind     EntityKind
	Box      core.Box
	Facing   Dir     // player
	Hyper    bool    // player
	Mood     Mood    // player
	Stopped  bool    // enemy
	Jammed   bool    // enemy
	Inactive bool    // bomb
	Variant  int     // enemy sprite or bomb tint
	Angle    float64 // beam, shield
	Frame    int     // explosion
	Life     int     // player hyper countdown, shield, gravity
}

// Snapshot is everything the presentation layer needs for one frame.
type Snapshot struct {
	Tick     int
	Score    int
	GameOver bool
	Quit     bool
	Paused   bool
	EMPFlash bool
	Arena    core.Bounds
	Entities []EntityView
}

// Snapshot captures the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Score:    g.wallet.Balance(),
		GameOver: g.gameOver,
		Quit:     g.quit,
		Paused:   g.paused,
		EMPFlash: g.emp.Visible(g.now()),
		Arena:    g.world.Arena,
	}
	g.world.Each(func(e Entity) {
		snap.Entities = append(snap.Entities, viewOf(e))
	})
	return snap
}

func viewOf(e Entity) EntityView {
	v := EntityView{Kind: e.Kind(), Box: e.Bounds()}
	switch o := e.(type) {
	case *Player:
		v.Facing = o.facing
		v.Hyper = o.Invulnerable()
		v.Mood = o.mood
		v.Life = o.hyperLife
	case *Enemy:
		v.Stopped = o.state == EnemyStopped
		v.Jammed = o.jammed
		v.Variant = o.variant
	case *Bomb:
		v.Inactive = !o.active
		v.Variant = o.tint
	case *Beam:
		v.Angle = o.angle
	case *Shield:
		v.Angle = o.angle
		v.Life = o.life
	case *GravityField:
		v.Life = o.life
	case *Explosion:
		v.Frame = o.Frame()
	}
	return v
}

// Count returns how many entities of the given kind are in the snapshot.
func (s *Snapshot) Count(kind EntityKind) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Find returns the first entity of the given kind.
func (s *Snapshot) Find(kind EntityKind) (EntityView, bool) {
	for _, e := range s.Entities {
		if e.Kind == kind {
			return e, true
		}
	}
	return EntityView{}, false
}

// Hash returns a simple hash of the snapshot for determinism testing.
// The wall-clock EMP overlay is left out.
func (s *Snapshot) Hash() uint64 {
	h := uint64(s.Tick)              //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score)       //#nosec G115 -- hash computation
	h = h*31 + boolBit(s.GameOver)
	h = h*31 + boolBit(s.Paused)
	h = h*31 + uint64(len(s.Entities))

	for _, e := range s.Entities {
		h = h*31 + uint64(e.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(e.Box.X)
		h = h*31 + math.Float64bits(e.Box.Y)
		h = h*31 + math.Float64bits(e.Box.W)
		h = h*31 + math.Float64bits(e.Box.H)
		h = h*31 + uint64(e.Variant+1) //#nosec G115 -- hash computation
		h = h*31 + uint64(e.Life+1)    //#nosec G115 -- hash computation
		h = h*31 + boolBit(e.Inactive) + 2*boolBit(e.Jammed) + 4*boolBit(e.Hyper)
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

package musou

import (
	"testing"

	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

var testArena = core.Bounds{W: 1100, H: 650}

func newTestPlayer() *Player {
	return NewPlayer(config.DefaultMusouConfig().Player)
}

func TestPlayerMove(t *testing.T) {
	tests := []struct {
		name       string
		start      core.Vec // center
		steer      Steer
		boosted    bool
		wantCenter core.Vec
		wantFacing Dir
	}{
		{"right", core.Vec{X: 900, Y: 400}, Steer{Right: true}, false, core.Vec{X: 910, Y: 400}, Dir{1, 0}},
		{"boosted right", core.Vec{X: 900, Y: 400}, Steer{Right: true}, true, core.Vec{X: 920, Y: 400}, Dir{1, 0}},
		{"up left", core.Vec{X: 900, Y: 400}, Steer{Up: true, Left: true}, false, core.Vec{X: 890, Y: 390}, Dir{-1, -1}},
		{"down", core.Vec{X: 900, Y: 400}, Steer{Down: true}, false, core.Vec{X: 900, Y: 410}, Dir{0, 1}},
		// Right edge at 1095: one more step would leave the arena.
		{"blocked at right wall", core.Vec{X: 1050, Y: 400}, Steer{Right: true}, false, core.Vec{X: 1050, Y: 400}, Dir{1, 0}},
		// Only x would leave the arena, but y is reverted too.
		{"no wall sliding", core.Vec{X: 1050, Y: 400}, Steer{Right: true, Up: true}, false, core.Vec{X: 1050, Y: 400}, Dir{1, -1}},
		{"blocked at top", core.Vec{X: 500, Y: 50}, Steer{Up: true}, true, core.Vec{X: 500, Y: 50}, Dir{0, -1}},
		{"exactly onto the edge", core.Vec{X: 1045, Y: 400}, Steer{Right: true}, false, core.Vec{X: 1055, Y: 400}, Dir{1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer()
			p.box = core.BoxAt(tc.start, 90, 90)

			p.Move(tc.steer, tc.boosted, testArena)

			if got := p.Center(); got != tc.wantCenter {
				t.Errorf("Center() = %+v, expected %+v", got, tc.wantCenter)
			}
			if got := p.Facing(); got != tc.wantFacing {
				t.Errorf("Facing() = %+v, expected %+v", got, tc.wantFacing)
			}
		})
	}
}

func TestPlayerFacingKeptWithoutMovement(t *testing.T) {
	p := newTestPlayer()
	p.Move(Steer{Up: true}, false, testArena)

	// Opposite keys cancel: no displacement, facing stays.
	p.Move(Steer{Left: true, Right: true}, false, testArena)
	if p.Facing() != (Dir{0, -1}) {
		t.Errorf("Facing() = %+v, expected up", p.Facing())
	}
	p.Move(Steer{}, false, testArena)
	if p.Facing() != (Dir{0, -1}) {
		t.Errorf("Facing() = %+v, expected up", p.Facing())
	}
	if p.Center() != (core.Vec{X: 900, Y: 390}) {
		t.Errorf("Center() = %+v, expected (900, 390)", p.Center())
	}
}

func TestPlayerHyper(t *testing.T) {
	p := newTestPlayer()
	w := NewWallet(150)

	if !p.ActivateHyper(&w, 100, 3) {
		t.Fatal("ActivateHyper() refused with enough score")
	}
	if w.Balance() != 50 {
		t.Errorf("Balance() = %d, expected 50", w.Balance())
	}
	if !p.Invulnerable() {
		t.Fatal("expected invulnerable player")
	}

	// The state holds while the countdown is at or above zero.
	for i := 0; i < 3; i++ {
		p.TickInvulnerability()
		if !p.Invulnerable() {
			t.Fatalf("hyper ended early after %d ticks", i+1)
		}
	}
	if p.HyperLife() != 0 {
		t.Errorf("HyperLife() = %d, expected 0", p.HyperLife())
	}
	p.TickInvulnerability()
	if p.Invulnerable() || p.State() != PlayerNormal {
		t.Error("expected normal state once the countdown is negative")
	}

	if p.ActivateHyper(&w, 100, 3) {
		t.Error("ActivateHyper() should be refused with 50 score")
	}
	if w.Balance() != 50 || p.Invulnerable() {
		t.Error("a refused activation must not change anything")
	}
}

func TestPlayerMood(t *testing.T) {
	p := newTestPlayer()
	p.Cheer(2)
	if p.Mood() != MoodTriumph {
		t.Fatalf("Mood() = %v, expected triumph", p.Mood())
	}
	p.Update(Steer{}, false, testArena)
	p.Update(Steer{}, false, testArena)
	if p.Mood() != MoodNeutral {
		t.Errorf("Mood() = %v, expected neutral after the cue ran out", p.Mood())
	}

	p.Despair()
	p.Cheer(10)
	if p.Mood() != MoodDefeat {
		t.Error("defeat cue must not be replaced")
	}
}

func TestSteerFrom(t *testing.T) {
	in := core.NewInputFrame()
	in.Hold(core.ActionDown)
	in.Hold(core.ActionLeft)
	in.Set(core.ActionUp) // a press is not a held key

	s := SteerFrom(in)
	if s != (Steer{Down: true, Left: true}) {
		t.Errorf("SteerFrom() = %+v", s)
	}
	if d := s.Dir(); d != (Dir{-1, 1}) {
		t.Errorf("Dir() = %+v, expected (-1, 1)", d)
	}
}

func TestDirAngle(t *testing.T) {
	tests := []struct {
		dir  Dir
		want float64
	}{
		{Dir{1, 0}, 0},
		{Dir{1, -1}, 45},
		{Dir{0, -1}, 90},
		{Dir{-1, 0}, 180},
		{Dir{0, 1}, -90},
		{Dir{-1, 1}, -135},
	}
	for _, tc := range tests {
		if got := tc.dir.Angle(); !near(got, tc.want) {
			t.Errorf("%+v.Angle() = %f, expected %f", tc.dir, got, tc.want)
		}
		if !tc.dir.Valid() {
			t.Errorf("%+v should be valid", tc.dir)
		}
	}
	if (Dir{}).Valid() || (Dir{2, 0}).Valid() {
		t.Error("zero and out-of-range directions are not valid")
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

package musou

import (
	"testing"

	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

func bombAt(c core.Vec, radius float64) *Bomb {
	return &Bomb{
		box:    core.BoxAt(c, 2*radius, 2*radius),
		vel:    core.Vec{X: 0, Y: 1},
		speed:  6,
		active: true,
	}
}

func beamAt(c core.Vec) *Beam {
	return &Beam{box: core.BoxAt(c, 60, 16), vel: core.Vec{X: 1}, speed: 10}
}

func newTestWorld() (*World, Resolver, *Wallet) {
	cfg := config.DefaultMusouConfig()
	w := NewWorld(cfg)
	wallet := NewWallet(cfg.Score.Start)
	return w, NewResolver(cfg.Score, cfg.Effects), &wallet
}

func TestResolveScoring(t *testing.T) {
	w, r, wallet := newTestWorld()
	for _, x := range []float64{100, 300, 500} {
		w.Enemies = append(w.Enemies, stoppedEnemyAt(core.Vec{X: x, Y: 100}, 50))
		w.Beams = append(w.Beams, beamAt(core.Vec{X: x, Y: 100}))
	}
	for _, x := range []float64{100, 300} {
		w.Bombs = append(w.Bombs, bombAt(core.Vec{X: x, Y: 300}, 10))
		w.Beams = append(w.Beams, beamAt(core.Vec{X: x, Y: 300}))
	}

	out := r.Resolve(w, wallet)
	if out.EnemiesShot != 3 || out.BombsShot != 2 || out.Fatal {
		t.Errorf("Resolve() = %+v", out)
	}
	if wallet.Balance() != 10032 {
		t.Errorf("Balance() = %d, expected 10032", wallet.Balance())
	}
	if len(w.Explosions) != 5 {
		t.Errorf("explosions = %d, expected 5", len(w.Explosions))
	}
	if w.Player.Mood() != MoodTriumph {
		t.Error("expected triumph cue after an enemy kill")
	}

	w.Sweep()
	if len(w.Enemies)+len(w.Bombs)+len(w.Beams) != 0 {
		t.Error("Sweep() should remove every destroyed entity")
	}
}

func TestResolveEnemyConsumesAllTouchingBeams(t *testing.T) {
	w, r, wallet := newTestWorld()
	w.Enemies = []*Enemy{stoppedEnemyAt(core.Vec{X: 200, Y: 100}, 50)}
	w.Beams = []*Beam{beamAt(core.Vec{X: 190, Y: 100}), beamAt(core.Vec{X: 210, Y: 110})}

	out := r.Resolve(w, wallet)
	if out.EnemiesShot != 1 || wallet.Balance() != 10010 {
		t.Errorf("Resolve() = %+v, balance %d", out, wallet.Balance())
	}
	for i, b := range w.Beams {
		if b.Alive() {
			t.Errorf("beam %d should be consumed", i)
		}
	}
}

func TestResolveEnemyBeforeBomb(t *testing.T) {
	w, r, wallet := newTestWorld()
	// One beam touching both an enemy and a bomb: the enemy step takes it.
	w.Enemies = []*Enemy{stoppedEnemyAt(core.Vec{X: 200, Y: 100}, 50)}
	w.Bombs = []*Bomb{bombAt(core.Vec{X: 240, Y: 100}, 10)}
	w.Beams = []*Beam{beamAt(core.Vec{X: 230, Y: 100})}

	out := r.Resolve(w, wallet)
	if out.EnemiesShot != 1 || out.BombsShot != 0 {
		t.Errorf("Resolve() = %+v", out)
	}
	if !w.Bombs[0].Alive() {
		t.Error("the bomb should survive, its beam was already used")
	}
}

func TestResolveShieldBeforeBeams(t *testing.T) {
	w, r, wallet := newTestWorld()
	w.Shield = &Shield{box: core.BoxAt(core.Vec{X: 500, Y: 300}, 20, 180), life: 400}
	w.Bombs = []*Bomb{bombAt(core.Vec{X: 500, Y: 300}, 10)}
	w.Beams = []*Beam{beamAt(core.Vec{X: 500, Y: 300})}

	out := r.Resolve(w, wallet)
	if out.BombsBlocked != 1 || out.BombsShot != 0 {
		t.Errorf("Resolve() = %+v", out)
	}
	if wallet.Balance() != 10000 {
		t.Errorf("Balance() = %d, shield blocks are not scored", wallet.Balance())
	}
	if !w.Beams[0].Alive() {
		t.Error("the beam should not be used on a blocked bomb")
	}
	if !w.Shield.Alive() {
		t.Error("the shield is not consumed by blocking")
	}
	if len(w.Explosions) != 1 {
		t.Errorf("explosions = %d, expected 1", len(w.Explosions))
	}
}

func TestResolvePlayerContact(t *testing.T) {
	tests := []struct {
		name       string
		hyper      bool
		inactive   bool
		wantFatal  bool
		wantScore  int
		wantExplos int
	}{
		{"active bomb, vulnerable", false, false, true, 10000, 0},
		{"active bomb, hyper", true, false, false, 10001, 1},
		{"inactive bomb, vulnerable", false, true, false, 10000, 0},
		{"inactive bomb, hyper", true, true, false, 10000, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, r, wallet := newTestWorld()
			if tc.hyper {
				w.Player.state = PlayerHyper
				w.Player.hyperLife = 10
			}
			b := bombAt(w.Player.Center(), 10)
			if tc.inactive {
				b.Neutralize()
			}
			w.Bombs = []*Bomb{b}

			out := r.Resolve(w, wallet)
			if out.Fatal != tc.wantFatal {
				t.Errorf("Fatal = %v, expected %v", out.Fatal, tc.wantFatal)
			}
			if b.Alive() {
				t.Error("a bomb touching the player is always removed")
			}
			if wallet.Balance() != tc.wantScore {
				t.Errorf("Balance() = %d, expected %d", wallet.Balance(), tc.wantScore)
			}
			if len(w.Explosions) != tc.wantExplos {
				t.Errorf("explosions = %d, expected %d", len(w.Explosions), tc.wantExplos)
			}
			if tc.wantFatal && w.Player.Mood() != MoodDefeat {
				t.Error("expected defeat cue")
			}
		})
	}
}

func TestResolveStopsAtFatalHit(t *testing.T) {
	w, r, wallet := newTestWorld()
	c := w.Player.Center()
	first := bombAt(c, 10)
	second := bombAt(c.Add(core.Vec{X: 5}), 10)
	w.Bombs = []*Bomb{first, second}

	out := r.Resolve(w, wallet)
	if !out.Fatal {
		t.Fatal("expected fatal hit")
	}
	if first.Alive() || !second.Alive() {
		t.Error("resolution must stop at the first fatal hit")
	}
}

func TestGravitySweep(t *testing.T) {
	w, r, wallet := newTestWorld()
	w.Fields = []*GravityField{NewGravityField(w.Arena, 400)}
	w.Enemies = []*Enemy{
		stoppedEnemyAt(core.Vec{X: 100, Y: 100}, 50),
		enemyAt(core.Vec{X: 300, Y: 0}, 50),
	}
	w.Bombs = []*Bomb{bombAt(core.Vec{X: 100, Y: 300}, 10)}

	enemies, bombs := r.GravitySweep(w, wallet)
	if enemies != 2 || bombs != 1 {
		t.Errorf("GravitySweep() = (%d, %d), expected (2, 1)", enemies, bombs)
	}
	if wallet.Balance() != 10021 {
		t.Errorf("Balance() = %d, expected 10021", wallet.Balance())
	}

	// Destroyed entities are never scored twice.
	enemies, bombs = r.GravitySweep(w, wallet)
	if enemies != 0 || bombs != 0 || wallet.Balance() != 10021 {
		t.Error("second sweep should not score again")
	}
	w.Sweep()

	// Entities appearing later in the field's lifetime are removed too.
	w.Bombs = append(w.Bombs, bombAt(core.Vec{X: 700, Y: 300}, 10))
	if _, bombs = r.GravitySweep(w, wallet); bombs != 1 {
		t.Error("the field should keep destroying new hazards")
	}
}

func TestGravitySweepInactive(t *testing.T) {
	w, r, wallet := newTestWorld()
	f := NewGravityField(w.Arena, 0)
	w.Fields = []*GravityField{f}
	w.Enemies = []*Enemy{stoppedEnemyAt(core.Vec{X: 100, Y: 100}, 50)}

	f.Update() // life -1
	if e, _ := r.GravitySweep(w, wallet); e != 0 {
		t.Error("an expired field must not destroy anything")
	}
	if w.GravityActive() {
		t.Error("GravityActive() = true with only an expired field")
	}
}

package musou

import (
	"testing"
	"time"

	"github.com/vovakirdan/musou/internal/core"
)

func TestApplyEMP(t *testing.T) {
	enemies := []*Enemy{
		stoppedEnemyAt(core.Vec{X: 100, Y: 100}, 50),
		enemyAt(core.Vec{X: 300, Y: 0}, 70),
	}
	bombs := []*Bomb{
		bombAt(core.Vec{X: 100, Y: 300}, 10),
		bombAt(core.Vec{X: 200, Y: 300}, 20),
		bombAt(core.Vec{X: 300, Y: 300}, 30),
	}

	ApplyEMP(enemies, bombs)

	for i, e := range enemies {
		if e.Interval() != NeverDrop || !e.jammed {
			t.Errorf("enemy %d not jammed", i)
		}
	}
	for i, b := range bombs {
		if b.Active() {
			t.Errorf("bomb %d still active", i)
		}
		if b.Speed() != 3 {
			t.Errorf("bomb %d speed = %f, expected 3", i, b.Speed())
		}
	}
}

func TestEMPSparesLaterEntities(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	jammed := stoppedEnemyAt(core.Vec{X: 200, Y: 100}, 1)
	w.Enemies = []*Enemy{jammed}

	if !g.ActivateEMP() {
		t.Fatal("EMP refused")
	}
	later := stoppedEnemyAt(core.Vec{X: 600, Y: 100}, 1)
	w.Enemies = append(w.Enemies, later)

	// Tick 0 also spawns a fresh enemy through the spawner.
	for range 3 {
		g.Step(core.NewInputFrame())
	}

	if len(w.Bombs) != 3 {
		t.Fatalf("bombs = %d, expected one per tick from the later enemy", len(w.Bombs))
	}
	for i, b := range w.Bombs {
		if !b.Active() || b.Speed() != 6 {
			t.Errorf("bomb %d active=%v speed=%f, expected active at full speed", i, b.Active(), b.Speed())
		}
		if x := b.Bounds().Center().X; x < 500 {
			t.Errorf("bomb %d at x=%f came from the jammed enemy", i, x)
		}
	}

	if len(w.Enemies) != 3 {
		t.Fatalf("enemies = %d, expected 3", len(w.Enemies))
	}
	spawned := w.Enemies[2]
	if spawned.Interval() == NeverDrop || spawned.jammed {
		t.Error("an enemy spawned after the pulse must keep its drop interval")
	}
	if later.Interval() != 1 || later.jammed {
		t.Error("an enemy added after the pulse must not be jammed")
	}
}

func TestEMPKeepsMovement(t *testing.T) {
	b := bombAt(core.Vec{X: 100, Y: 100}, 10)
	b.Neutralize()
	b.Update(testArena)
	if c := b.Bounds().Center(); c.Y != 103 {
		t.Errorf("inactive bomb center y = %f, expected 103", c.Y)
	}

	e := enemyAt(core.Vec{X: 100, Y: 0}, 50)
	e.Jam()
	e.Update()
	if e.Bounds().Center().Y != 6 {
		t.Error("a jammed enemy keeps descending")
	}
}

func TestEMPFlashVisible(t *testing.T) {
	start := time.Unix(100, 0)
	f := EMPFlash{Start: start, Duration: 50 * time.Millisecond}

	if !f.Visible(start.Add(10 * time.Millisecond)) {
		t.Error("flash should be visible within its duration")
	}
	if f.Visible(start.Add(50 * time.Millisecond)) {
		t.Error("flash should be gone after its duration")
	}
	if (EMPFlash{}).Visible(start) {
		t.Error("zero flash is never visible")
	}
}

package musou

import "github.com/vovakirdan/musou/internal/core"

// GravityField covers the whole arena. While active it destroys every enemy
// and bomb present, on every tick.
type GravityField struct {
	arena core.Bounds
	life  int
}

// NewGravityField creates a field lasting life ticks.
func NewGravityField(arena core.Bounds, life int) *GravityField {
	return &GravityField{arena: arena, life: life}
}

func (g *GravityField) Kind() EntityKind { return KindGravity }
func (g *GravityField) Bounds() core.Box { return core.Box{W: g.arena.W, H: g.arena.H} }
func (g *GravityField) Alive() bool { return g.Active() }
func (g *GravityField) Life() int { return g.life }

// Active reports whether the field still has lifetime left.
func (g *GravityField) Active() bool {
	return g.life >= 0
}

// Update counts down the lifetime.
func (g *GravityField) Update() {
	g.life--
}

package musou

import (
	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

// fanSpread is the half-width of a fan in degrees.
const fanSpread = 50

// Beam is a player projectile travelling in a straight line.
type Beam struct {
	box   core.Box
	angle float64 // degrees, 0 = right, counter-clockwise
	vel   core.Vec
	speed float64
	dead  bool
}

// NewBeam fires a beam from the player at its facing angle plus offset
// degrees. The beam starts one player extent ahead of the player center.
func NewBeam(p *Player, offset float64, cfg config.BeamConfig) *Beam {
	angle := p.Facing().Angle() + offset
	vel := heading(angle)

	pb := p.Bounds()
	c := pb.Center()
	center := core.Vec{X: c.X + pb.W*vel.X, Y: c.Y + pb.H*vel.Y}
	w, h := rotatedExtent(cfg.Width, cfg.Height, angle)

	return &Beam{
		box:   core.BoxAt(center, w, h),
		angle: angle,
		vel:   vel,
		speed: cfg.Speed,
	}
}

// FanOffsets returns the angle offsets for a fan of n beams: evenly spaced
// from -50° in steps of ⌊100/(n-1)⌋. Fewer than two beams is a single
// straight shot. n is capped so the step never drops below one degree.
func FanOffsets(n int) []float64 {
	if n < 2 {
		return []float64{0}
	}
	n = min(n, 2*fanSpread+1)
	step := 2 * fanSpread / (n - 1)

	offsets := make([]float64, n)
	for i := range offsets {
		offsets[i] = float64(-fanSpread + i*step)
	}
	return offsets
}

// FanBeams fires n beams fanned around the player's facing.
func FanBeams(p *Player, n int, cfg config.BeamConfig) []*Beam {
	offsets := FanOffsets(n)
	beams := make([]*Beam, len(offsets))
	for i, off := range offsets {
		beams[i] = NewBeam(p, off, cfg)
	}
	return beams
}

func (b *Beam) Kind() EntityKind { return KindBeam }
func (b *Beam) Bounds() core.Box { return b.box }
func (b *Beam) Alive() bool { return !b.dead }
func (b *Beam) Angle() float64 { return b.angle }

// Update moves the beam and destroys it once it is fully outside the arena.
func (b *Beam) Update(arena core.Bounds) {
	b.box = b.box.Translate(b.vel.Scale(b.speed))
	if !arena.Overlaps(b.box) {
		b.dead = true
	}
}

// Destroy marks the beam as consumed.
func (b *Beam) Destroy() {
	b.dead = true
}

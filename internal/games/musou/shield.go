package musou

import (
	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

// Shield is a wall placed on the player's facing side. It blocks bombs
// without being used up and disappears when its lifetime runs out.
type Shield struct {
	box   core.Box
	angle float64
	life  int
}

// NewShield places a shield one player extent from the player center along
// the facing direction, rotated to the facing angle.
func NewShield(p *Player, cfg config.ShieldConfig) *Shield {
	pb := p.Bounds()
	f := p.Facing()
	angle := f.Angle()

	w, h := rotatedExtent(cfg.Thickness, pb.H*cfg.LengthFactor, angle)
	c := pb.Center()
	center := core.Vec{X: c.X + pb.W*float64(f.DX), Y: c.Y + pb.H*float64(f.DY)}

	return &Shield{
		box:   core.BoxAt(center, w, h),
		angle: angle,
		life:  cfg.Life,
	}
}

func (s *Shield) Kind() EntityKind { return KindShield }
func (s *Shield) Bounds() core.Box { return s.box }
func (s *Shield) Alive() bool { return s.life >= 0 }
func (s *Shield) Life() int { return s.life }

// Update counts down the lifetime.
func (s *Shield) Update() {
	s.life--
}

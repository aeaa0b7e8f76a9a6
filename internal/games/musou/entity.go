package musou

import "github.com/vovakirdan/musou/internal/core"

// EntityKind tags the variant of a live entity.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindBomb
	KindBeam
	KindShield
	KindGravity
	KindExplosion
)

// String returns the name of the entity kind.
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBomb:
		return "bomb"
	case KindBeam:
		return "beam"
	case KindShield:
		return "shield"
	case KindGravity:
		return "gravity"
	case KindExplosion:
		return "explosion"
	default:
		return "?"
	}
}

// Entity is the capability shared by everything in the world: it has a kind,
// a collision box and a liveness flag. Destroyed entities stay in their
// collection until the end-of-tick sweep.
type Entity interface {
	Kind() EntityKind
	Bounds() core.Box
	Alive() bool
}

// sweep drops destroyed entities, keeping order. It reuses the backing array.
func sweep[T Entity](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if it.Alive() {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

package musou

import (
	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
)

// Enemy and bomb sprite choices.
const (
	enemyVariants = 3
	bombTints     = 6
)

// Spawner creates enemies on a fixed cadence and bombs from stopped enemies.
// All random parameters come from the injected source.
type Spawner struct {
	enemy config.EnemyConfig
	bomb  config.BombConfig
	arena core.Bounds
	rng   Rand
}

// NewSpawner creates a spawner for the given arena.
func NewSpawner(enemy config.EnemyConfig, bomb config.BombConfig, arena core.Bounds, rng Rand) *Spawner {
	return &Spawner{
		enemy: enemy,
		bomb:  bomb,
		arena: arena,
		rng:   rng,
	}
}

// Due reports whether an enemy spawns on the given tick. The cadence does
// not depend on how many enemies are alive.
func (s *Spawner) Due(tick int) bool {
	return tick%s.enemy.SpawnEvery == 0
}

// SpawnEnemy creates an enemy centered on a random x of the top edge, with a
// random stop threshold in the upper half and a random drop interval.
func (s *Spawner) SpawnEnemy() *Enemy {
	variant := s.rng.Intn(enemyVariants)
	x := randRange(s.rng, 0, int(s.arena.W))
	threshold := randRange(s.rng, s.enemy.StopMin, int(s.arena.H)/2)
	interval := randRange(s.rng, s.enemy.MinInterval, s.enemy.MaxInterval)

	return &Enemy{
		box:       core.BoxAt(core.Vec{X: float64(x), Y: 0}, s.enemy.Width, s.enemy.Height),
		vy:        s.enemy.DescentSpeed,
		threshold: float64(threshold),
		state:     EnemyDescending,
		interval:  interval,
		variant:   variant,
	}
}

// DropBombs creates one bomb for every enemy that drops on this tick, aimed
// at target. misaimed counts bombs that fell back to the default heading.
func (s *Spawner) DropBombs(tick int, enemies []*Enemy, target core.Vec) (bombs []*Bomb, misaimed int) {
	for _, e := range enemies {
		if !e.DropsAt(tick) {
			continue
		}
		radius := randRange(s.rng, s.bomb.MinRadius, s.bomb.MaxRadius)
		tint := s.rng.Intn(bombTints)
		b, aimed := NewBomb(e, target, float64(radius), s.bomb.Speed, tint)
		if !aimed {
			misaimed++
		}
		bombs = append(bombs, b)
	}
	return bombs, misaimed
}

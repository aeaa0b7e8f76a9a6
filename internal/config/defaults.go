package config

import (
	_ "embed"
)

//go:embed defaults/musou.yaml
var defaultMusouYAML []byte

// DefaultMusouConfig returns the built-in configuration.
// It mirrors defaults/musou.yaml and is used when the embedded file cannot be parsed.
func DefaultMusouConfig() MusouConfig {
	return MusouConfig{
		Arena: ArenaConfig{Width: 1100, Height: 650},
		Player: PlayerConfig{
			StartX:     900,
			StartY:     400,
			Width:      90,
			Height:     90,
			Speed:      10,
			BoostSpeed: 20,
		},
		Enemy: EnemyConfig{
			Width:        80,
			Height:       60,
			DescentSpeed: 6,
			SpawnEvery:   200,
			StopMin:      50,
			MinInterval:  50,
			MaxInterval:  300,
		},
		Bomb: BombConfig{
			Speed:     6,
			MinRadius: 10,
			MaxRadius: 50,
		},
		Beam: BeamConfig{
			Width:    60,
			Height:   16,
			Speed:    10,
			FanCount: 5,
		},
		Shield: ShieldConfig{
			Cost:         50,
			MinBalance:   50,
			Life:         400,
			Thickness:    20,
			LengthFactor: 2,
		},
		Hyper:   HyperConfig{Cost: 100, Duration: 500},
		EMP:     EMPConfig{Cost: 20, FlashMillis: 50},
		Gravity: GravityConfig{Cost: 200, Life: 400},
		Score: ScoreConfig{
			Start:     10000,
			EnemyKill: 10,
			BombKill:  1,
		},
		Effects: EffectsConfig{
			EnemyExplosion: 100,
			BombExplosion:  50,
			TriumphTicks:   25,
		},
	}
}

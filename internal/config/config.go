// Package config provides YAML-based game configuration loading for the
// simulation. All timers are counted in ticks.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for unusable configurations.
var ErrInvalid = errors.New("invalid config")

// MusouConfig contains all configuration for the Musou game.
type MusouConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Bomb    BombConfig    `yaml:"bomb"`
	Beam    BeamConfig    `yaml:"beam"`
	Shield  ShieldConfig  `yaml:"shield"`
	Hyper   HyperConfig   `yaml:"hyper"`
	EMP     EMPConfig     `yaml:"emp"`
	Gravity GravityConfig `yaml:"gravity"`
	Score   ScoreConfig   `yaml:"score"`
	Effects EffectsConfig `yaml:"effects"`
}

// ArenaConfig is the play area in world units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's size, start position and speeds.
type PlayerConfig struct {
	StartX     float64 `yaml:"start_x"` // center
	StartY     float64 `yaml:"start_y"` // center
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	BoostSpeed float64 `yaml:"boost_speed"` // while the modifier is held
}

// EnemyConfig defines enemy spawning and behavior.
type EnemyConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	DescentSpeed float64 `yaml:"descent_speed"`
	SpawnEvery   int     `yaml:"spawn_every"` // ticks between spawns
	StopMin      int     `yaml:"stop_min"`    // lowest stop threshold; highest is half the arena
	MinInterval  int     `yaml:"min_interval"`
	MaxInterval  int     `yaml:"max_interval"`
}

// BombConfig defines the hazards dropped by stopped enemies.
type BombConfig struct {
	Speed     float64 `yaml:"speed"`
	MinRadius int     `yaml:"min_radius"`
	MaxRadius int     `yaml:"max_radius"`
}

// BeamConfig defines player projectiles.
type BeamConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	FanCount int     `yaml:"fan_count"`
}

// ShieldConfig defines the shield ability.
type ShieldConfig struct {
	Cost         int     `yaml:"cost"`
	MinBalance   int     `yaml:"min_balance"` // score required before the cost is spent
	Life         int     `yaml:"life"`
	Thickness    float64 `yaml:"thickness"`
	LengthFactor float64 `yaml:"length_factor"` // times player height
}

// HyperConfig defines the invulnerability ability.
type HyperConfig struct {
	Cost     int `yaml:"cost"`
	Duration int `yaml:"duration"`
}

// EMPConfig defines the electromagnetic pulse ability.
type EMPConfig struct {
	Cost        int `yaml:"cost"`
	FlashMillis int `yaml:"flash_millis"` // overlay duration, presentation only
}

// GravityConfig defines the gravity field ability.
type GravityConfig struct {
	Cost int `yaml:"cost"`
	Life int `yaml:"life"`
}

// ScoreConfig defines the currency economy.
type ScoreConfig struct {
	Start     int `yaml:"start"`
	EnemyKill int `yaml:"enemy_kill"`
	BombKill  int `yaml:"bomb_kill"`
}

// EffectsConfig defines visual effect lifetimes.
type EffectsConfig struct {
	EnemyExplosion int `yaml:"enemy_explosion"`
	BombExplosion  int `yaml:"bomb_explosion"`
	TriumphTicks   int `yaml:"triumph_ticks"`
}

// Validate checks that the configuration can drive a simulation.
func (c MusouConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Arena.Width > 0 && c.Arena.Height > 0, "arena must have a positive size")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player must have a positive size")
	check(c.Player.Speed > 0 && c.Player.BoostSpeed > 0, "player speeds must be positive")
	check(c.Enemy.Width > 0 && c.Enemy.Height > 0, "enemy must have a positive size")
	check(c.Enemy.DescentSpeed > 0, "enemy descent speed must be positive")
	check(c.Enemy.SpawnEvery > 0, "enemy spawn_every must be positive")
	check(c.Enemy.MinInterval > 0, "enemy min_interval must be positive")
	check(c.Enemy.MinInterval <= c.Enemy.MaxInterval, "enemy min_interval %d exceeds max_interval %d",
		c.Enemy.MinInterval, c.Enemy.MaxInterval)
	check(c.Enemy.StopMin >= 0 && float64(c.Enemy.StopMin) <= c.Arena.Height/2,
		"enemy stop_min %d must be within the upper half of the arena", c.Enemy.StopMin)
	check(c.Bomb.Speed > 0, "bomb speed must be positive")
	check(c.Bomb.MinRadius > 0 && c.Bomb.MinRadius <= c.Bomb.MaxRadius, "bomb radius range is empty")
	check(c.Beam.Width > 0 && c.Beam.Height > 0 && c.Beam.Speed > 0, "beam size and speed must be positive")
	check(c.Beam.FanCount >= 1, "beam fan_count must be at least 1")
	check(c.Shield.Cost >= 0 && c.Hyper.Cost >= 0 && c.EMP.Cost >= 0 && c.Gravity.Cost >= 0,
		"ability costs must not be negative")
	check(c.Shield.MinBalance >= 0, "shield min_balance must not be negative")
	check(c.Shield.Life >= 0 && c.Gravity.Life >= 0, "shield and gravity life must not be negative")
	check(c.Hyper.Duration >= 0, "hyper duration must not be negative")
	check(c.Effects.EnemyExplosion >= 0 && c.Effects.BombExplosion >= 0 && c.Effects.TriumphTicks >= 0,
		"effect lifetimes must not be negative")
	check(c.Player.StartX-c.Player.Width/2 >= 0 && c.Player.StartX+c.Player.Width/2 <= c.Arena.Width &&
		c.Player.StartY-c.Player.Height/2 >= 0 && c.Player.StartY+c.Player.Height/2 <= c.Arena.Height,
		"player start (%g, %g) must keep the player inside the arena", c.Player.StartX, c.Player.StartY)
	check(c.Score.Start >= 0, "starting score must not be negative")

	return errors.Join(errs...)
}

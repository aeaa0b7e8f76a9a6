// Package musou implements a top-down arcade shooter: the player dodges
// descending enemies and their bombs, shoots them down, and spends the score
// on four timed abilities (shield, hyper, EMP, gravity field).
package musou

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/core"
	"github.com/vovakirdan/musou/internal/registry"
)

// Game implements the simulation loop. It owns the tick counter, the world
// and the wallet; nothing else mutates them.
type Game struct {
	cfg      config.MusouConfig
	runtime  core.RuntimeConfig
	world    *World
	wallet   Wallet
	spawner  *Spawner
	resolver Resolver
	tick     int  // Number of ticks since start
	gameOver bool // Struck while vulnerable
	quit     bool // Ended by a quit command
	paused   bool
	emp      EMPFlash
	now      func() time.Time
	log      *log.Logger
}

// configPath stores the custom config path set via CLI
var configPath string

// logger receives simulation events; discarded unless SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a new Musou game instance.
func New() *Game {
	return &Game{now: time.Now, log: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "musou"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Kokaton Musou"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadMusou(configPath)
	if err != nil {
		g.log.Warn("using default config", "path", configPath, "err", err)
		cfg = config.DefaultMusouConfig()
	}
	g.runtime = runtime
	g.start(cfg, rand.New(rand.NewSource(runtime.Seed))) //nolint:gosec // gameplay randomness
}

// start puts the game in its initial state with the given config and
// random source.
func (g *Game) start(cfg config.MusouConfig, rng Rand) {
	if g.now == nil {
		g.now = time.Now
	}
	if g.log == nil {
		g.log = logger
	}
	g.cfg = cfg
	g.world = NewWorld(cfg)
	g.wallet = NewWallet(cfg.Score.Start)
	g.spawner = NewSpawner(cfg.Enemy, cfg.Bomb, g.world.Arena, rng)
	g.resolver = NewResolver(cfg.Score, cfg.Effects)
	g.tick = 0
	g.gameOver = false
	g.quit = false
	g.paused = false
	g.emp = EMPFlash{}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver || g.quit {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.quit = true
		g.log.Info("game ended", "reason", "quit", "score", g.wallet.Balance(), "tick", g.tick)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handleCommands(in)
	g.spawn()

	out := g.resolver.Resolve(g.world, &g.wallet)
	if out.Fatal {
		g.gameOver = true
		g.world.Sweep()
		g.log.Info("game ended", "reason", "struck", "score", g.wallet.Balance(), "tick", g.tick)
		return core.StepResult{State: g.State()}
	}
	g.resolver.GravitySweep(g.world, &g.wallet)

	g.update(in)
	g.world.Sweep()
	g.tick++

	return core.StepResult{State: g.State()}
}

// handleCommands applies the discrete commands of this frame.
func (g *Game) handleCommands(in core.InputFrame) {
	if in.Has(core.ActionFireFan) {
		g.FireFan(g.cfg.Beam.FanCount)
	}
	if in.Has(core.ActionFire) {
		g.Fire()
	}
	if in.Has(core.ActionShield) {
		g.ActivateShield()
	}
	if in.Has(core.ActionHyper) {
		g.ActivateHyper()
	}
	if in.Has(core.ActionEMP) {
		g.ActivateEMP()
	}
	if in.Has(core.ActionGravity) {
		g.ActivateGravity()
	}
}

// spawn creates this tick's enemy and bombs.
func (g *Game) spawn() {
	w := g.world
	if g.spawner.Due(g.tick) {
		e := g.spawner.SpawnEnemy()
		w.Enemies = append(w.Enemies, e)
		g.log.Debug("enemy spawned", "tick", g.tick, "x", e.Bounds().Center().X, "interval", e.Interval())
	}

	bombs, misaimed := g.spawner.DropBombs(g.tick, w.Enemies, w.Player.Center())
	if misaimed > 0 {
		g.log.Warn("bomb dropped onto player center, using fallback heading", "tick", g.tick, "count", misaimed)
	}
	w.Bombs = append(w.Bombs, bombs...)
}

// update advances every entity by one tick.
func (g *Game) update(in core.InputFrame) {
	w := g.world
	w.Player.Update(SteerFrom(in), in.Holding(core.ActionBoost), w.Arena)
	for _, b := range w.Beams {
		b.Update(w.Arena)
	}
	for _, e := range w.Enemies {
		e.Update()
	}
	for _, b := range w.Bombs {
		b.Update(w.Arena)
	}
	if w.Shield != nil {
		w.Shield.Update()
	}
	for _, x := range w.Explosions {
		x.Update()
	}
	for _, f := range w.Fields {
		f.Update()
	}
}

// Fire shoots one beam along the player's facing.
func (g *Game) Fire() {
	g.world.Beams = append(g.world.Beams, NewBeam(g.world.Player, 0, g.cfg.Beam))
}

// FireFan shoots n beams fanned around the player's facing.
func (g *Game) FireFan(n int) {
	g.world.Beams = append(g.world.Beams, FanBeams(g.world.Player, n, g.cfg.Beam)...)
}

// ActivateShield places a shield if none exists, the score reaches the
// shield minimum and covers its cost.
func (g *Game) ActivateShield() bool {
	if g.world.Shield != nil {
		g.refused("shield", "already active")
		return false
	}
	if g.wallet.Balance() < g.cfg.Shield.MinBalance || !g.wallet.Spend(g.cfg.Shield.Cost) {
		g.refused("shield", "insufficient score")
		return false
	}
	g.world.Shield = NewShield(g.world.Player, g.cfg.Shield)
	g.log.Debug("ability activated", "ability", "shield", "tick", g.tick)
	return true
}

// ActivateHyper makes the player invulnerable if the score covers it.
func (g *Game) ActivateHyper() bool {
	if !g.world.Player.ActivateHyper(&g.wallet, g.cfg.Hyper.Cost, g.cfg.Hyper.Duration) {
		g.refused("hyper", "insufficient score")
		return false
	}
	g.log.Debug("ability activated", "ability", "hyper", "tick", g.tick)
	return true
}

// ActivateEMP jams the current enemies and bombs if the score covers it.
func (g *Game) ActivateEMP() bool {
	if !g.wallet.Spend(g.cfg.EMP.Cost) {
		g.refused("emp", "insufficient score")
		return false
	}
	ApplyEMP(g.world.Enemies, g.world.Bombs)
	g.emp = EMPFlash{Start: g.now(), Duration: time.Duration(g.cfg.EMP.FlashMillis) * time.Millisecond}
	g.log.Debug("ability activated", "ability", "emp", "tick", g.tick,
		"enemies", len(g.world.Enemies), "bombs", len(g.world.Bombs))
	return true
}

// ActivateGravity adds a gravity field if the score covers it.
func (g *Game) ActivateGravity() bool {
	if !g.wallet.Spend(g.cfg.Gravity.Cost) {
		g.refused("gravity", "insufficient score")
		return false
	}
	g.world.Fields = append(g.world.Fields, NewGravityField(g.world.Arena, g.cfg.Gravity.Life))
	g.log.Debug("ability activated", "ability", "gravity", "tick", g.tick)
	return true
}

func (g *Game) refused(ability, reason string) {
	g.log.Debug("ability refused", "ability", ability, "reason", reason, "score", g.wallet.Balance())
}

// World returns the live world. Callers must not mutate it.
func (g *Game) World() *World {
	return g.world
}

// Tick returns the number of ticks simulated so far.
func (g *Game) Tick() int {
	return g.tick
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.wallet.Balance(),
		GameOver: g.gameOver,
		Quit:     g.quit,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("musou", func() registry.Game {
		return New()
	})
}

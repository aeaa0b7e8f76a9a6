package musou

import "github.com/vovakirdan/musou/internal/config"

// Outcome summarizes what one collision pass did.
type Outcome struct {
	EnemiesShot   int  // enemy destroyed by beams
	BombsBlocked  int  // bomb destroyed by the shield
	BombsShot     int  // bomb destroyed by beams
	BombsAbsorbed int  // active bomb destroyed by the invulnerable player
	BombsDefused  int  // inactive bomb removed on player contact
	Fatal         bool // active bomb hit the vulnerable player
}

// Resolver applies the collision rules of one tick in a fixed order. Each
// step only sees entities that earlier steps left alive.
type Resolver struct {
	score   config.ScoreConfig
	effects config.EffectsConfig
	triumph int
}

// NewResolver creates a resolver with the given rewards and effect lifetimes.
func NewResolver(score config.ScoreConfig, effects config.EffectsConfig) Resolver {
	return Resolver{score: score, effects: effects, triumph: effects.TriumphTicks}
}

// Resolve runs the four collision steps:
//  1. beam × enemy
//  2. bomb × shield
//  3. bomb × beam
//  4. bomb × player
//
// Destroyed entities are only marked; World.Sweep removes them. Resolution
// stops at the first fatal hit.
func (r Resolver) Resolve(w *World, wallet *Wallet) Outcome {
	var out Outcome

	for _, e := range w.Enemies {
		if !e.Alive() {
			continue
		}
		if !r.consumeBeams(w, e) {
			continue
		}
		e.Destroy()
		w.Explosions = append(w.Explosions, NewExplosion(e.Bounds(), r.effects.EnemyExplosion))
		wallet.Earn(r.score.EnemyKill)
		w.Player.Cheer(r.triumph)
		out.EnemiesShot++
	}

	if w.Shield != nil && w.Shield.Alive() {
		for _, b := range w.Bombs {
			if b.Alive() && b.Bounds().Intersects(w.Shield.Bounds()) {
				b.Destroy()
				w.Explosions = append(w.Explosions, NewExplosion(b.Bounds(), r.effects.BombExplosion))
				out.BombsBlocked++
			}
		}
	}

	for _, b := range w.Bombs {
		if !b.Alive() || !r.consumeBeams(w, b) {
			continue
		}
		b.Destroy()
		w.Explosions = append(w.Explosions, NewExplosion(b.Bounds(), r.effects.BombExplosion))
		wallet.Earn(r.score.BombKill)
		out.BombsShot++
	}

	p := w.Player
	for _, b := range w.Bombs {
		if !b.Alive() || !b.Bounds().Intersects(p.Bounds()) {
			continue
		}
		b.Destroy()
		switch {
		case !b.Active():
			out.BombsDefused++
		case p.Invulnerable():
			w.Explosions = append(w.Explosions, NewExplosion(b.Bounds(), r.effects.BombExplosion))
			wallet.Earn(r.score.BombKill)
			out.BombsAbsorbed++
		default:
			p.Despair()
			out.Fatal = true
			return out
		}
	}

	return out
}

// consumeBeams destroys every live beam touching target and reports whether
// there was any.
func (r Resolver) consumeBeams(w *World, target Entity) bool {
	hit := false
	box := target.Bounds()
	for _, beam := range w.Beams {
		if beam.Alive() && beam.Bounds().Intersects(box) {
			beam.Destroy()
			hit = true
		}
	}
	return hit
}

// GravitySweep destroys and scores every enemy and bomb present while a
// gravity field is active. It runs every tick, so anything appearing during
// the field's lifetime is removed on the tick it exists.
func (r Resolver) GravitySweep(w *World, wallet *Wallet) (enemies, bombs int) {
	if !w.GravityActive() {
		return 0, 0
	}
	for _, e := range w.Enemies {
		if !e.Alive() {
			continue
		}
		e.Destroy()
		w.Explosions = append(w.Explosions, NewExplosion(e.Bounds(), r.effects.EnemyExplosion))
		wallet.Earn(r.score.EnemyKill)
		enemies++
	}
	for _, b := range w.Bombs {
		if !b.Alive() {
			continue
		}
		b.Destroy()
		w.Explosions = append(w.Explosions, NewExplosion(b.Bounds(), r.effects.BombExplosion))
		wallet.Earn(r.score.BombKill)
		bombs++
	}
	return enemies, bombs
}

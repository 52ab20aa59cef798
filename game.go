package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

type Game struct {
	log       *slog.Logger
	debug     bool
	levelName string

	world     *ecs.World
	scheduler *ecs.Scheduler
	enemies   *system.EnemySystem
	player    ecs.Entity

	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
	paused  bool
	quit    bool
}

func NewGame(levelName string, debug bool, logger *slog.Logger) (*Game, error) {
	g := &Game{
		log:       logger,
		debug:     debug,
		levelName: levelName,
	}
	g.pauseUI = NewPauseUI(g)

	if debug {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			logger.Warn("prefab hot reload disabled", "err", err)
		} else {
			g.watcher = w
		}
	}

	if err := g.load(); err != nil {
		_ = g.Close()
		return nil, err
	}
	return g, nil
}

// load builds a fresh world for the current level.
func (g *Game) load() error {
	lvl, err := levels.Load(g.levelName)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	catalog, err := entity.LoadCatalog()
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	world := ecs.NewWorld()
	player, err := entity.BuildLevel(world, lvl, catalog, g.log)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	g.world = world
	g.player = player
	g.enemies = system.NewEnemySystem(nil, g.log)
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(nil),
		system.NewPlayerControllerSystem(),
		system.NewHitZoneSystem(),
		g.enemies,
		system.NewProjectileSystem(),
		system.NewCombatSystem(catalog.Particle, g.log),
		system.NewTTLSystem(),
		system.NewBackgroundSystem(),
		system.NewRenderSystem(g.debug),
	)
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if err := g.hotReload(); err != nil {
		return err
	}

	g.scheduler.Update(g.world)

	reload := false
	for _, evt := range g.world.Events().Drain() {
		switch evt.Kind {
		case ecs.EventPlayerDied:
			reload = true
		case ecs.EventEnemyKilled:
			g.log.Debug("enemy killed", "entity", evt.Entity, "remaining", ecs.Count(g.world, component.EnemyComponent.Kind()))
		}
	}
	if reload {
		g.log.Info("player died, reloading level", "level", g.levelName)
		return g.load()
	}
	return nil
}

// hotReload applies edited prefab files. Player tuning is pushed into the
// live controller; script edits recompile on the next enemy update; any
// other prefab rebuilds the level.
func (g *Game) hotReload() error {
	changed, err := g.watcher.Poll()
	if err != nil {
		g.log.Warn("prefab watcher", "err", err)
	}

	rebuild := false
	for _, name := range changed {
		switch {
		case name == prefabs.PlayerFile:
			g.reloadPlayer()
		case filepath.Ext(name) == ".tengo":
			g.enemies.InvalidateScript(name)
			g.log.Info("script reloaded", "script", name)
		default:
			rebuild = true
		}
	}
	if rebuild {
		g.log.Info("prefabs changed, rebuilding level")
		return g.load()
	}
	return nil
}

func (g *Game) reloadPlayer() {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		g.log.Warn("reload player", "err", err)
		return
	}
	p, ok := ecs.Get(g.world, g.player, component.PlayerComponent.Kind())
	if !ok || p.Controller == nil {
		return
	}
	if err := p.Controller.SetConfig(spec.ControllerConfig()); err != nil {
		g.log.Warn("reload player", "err", err)
		return
	}
	g.log.Info("player tuning reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scheduler.Draw(g.world, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() error {
	return g.watcher.Close()
}

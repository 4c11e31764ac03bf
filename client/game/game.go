package game

import (
	"fmt"
	"image/color"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	clientengine "github.com/riverraid-go/riverraid/client/engine"
	"github.com/riverraid-go/riverraid/client/scenes"
	"github.com/riverraid-go/riverraid/pkg/engine"
	"github.com/riverraid-go/riverraid/pkg/entities"
	"github.com/riverraid-go/riverraid/pkg/game/constants"
	"github.com/riverraid-go/riverraid/pkg/layers"
	"github.com/riverraid-go/riverraid/pkg/log"
	"github.com/riverraid-go/riverraid/pkg/state"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// bootTimeout is how long the boot scene waits for input.
	bootTimeout time.Duration
	// input is handed to the game scene.
	input engine.Input

	engine   *clientengine.Engine
	entities *entities.Registry
	layers   *layers.Registry
	state    state.Store

	// scene is the current scene.
	scene scenes.Scene
	// next is the scene requested by the current one, applied on the next tick.
	next constants.SceneKey
	// now is the time elapsed since the game started.
	now time.Duration
}

var _ ebiten.Game = &Game{}

type NewGameOptions struct {
	// Debug enables the debug overlay.
	Debug bool
	// Width is the logical width of the canvas.
	Width int
	// Height is the logical height of the canvas.
	Height int
	// Background is the color the canvas is cleared with.
	Background color.Color
	// BootTimeout is how long the boot scene waits for input.
	BootTimeout time.Duration
	// Input is handed to the game scene. May be nil.
	Input engine.Input
	// AnyKeyJustPressed overrides keyboard polling. Nil polls ebiten.
	AnyKeyJustPressed func() bool
}

func NewGame(opts NewGameOptions) (*Game, error) {
	e, err := clientengine.NewEngine(clientengine.NewEngineOptions{
		Width:             opts.Width,
		Height:            opts.Height,
		Background:        opts.Background,
		AnyKeyJustPressed: opts.AnyKeyJustPressed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	g := &Game{
		debug:       opts.Debug,
		bootTimeout: opts.BootTimeout,
		input:       opts.Input,
		engine:      e,
		entities:    entities.NewRegistry(),
		layers:      layers.NewRegistry(),
		state:       state.NewInMemoryStore(),
	}

	if err := g.loadScene(constants.SceneKeyBoot); err != nil {
		return nil, fmt.Errorf("failed to load boot scene: %w", err)
	}

	return g, nil
}

// requestScene schedules a transition. Scenes call it from engine callbacks,
// so the switch happens at the start of the next tick rather than mid-dispatch.
func (g *Game) requestScene(key constants.SceneKey) {
	if g.next != "" {
		log.Warn("Ignoring request for %s, %s is already pending", key, g.next)
		return
	}
	g.next = key
}

func (g *Game) newScene(key constants.SceneKey) (scenes.Scene, error) {
	switch key {
	case constants.SceneKeyBoot:
		return scenes.NewBootScene(scenes.BootSceneOptions{
			Context: g.engine,
			Timeout: g.bootTimeout,
			OnContinue: func() {
				g.requestScene(constants.SceneKeyGame)
			},
		})
	case constants.SceneKeyGame:
		return scenes.NewGameScene(scenes.GameSceneOptions{
			Context:  g.engine,
			Entities: g.entities,
			Layers:   g.layers,
			State:    g.state,
			Input:    g.input,
		})
	}
	return nil, fmt.Errorf("no scene registered for %s", key)
}

func (g *Game) loadScene(key constants.SceneKey) error {
	scene, err := g.newScene(key)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}
	if err := g.SetScene(scene); err != nil {
		return fmt.Errorf("failed to set scene: %w", err)
	}
	return nil
}

// SetScene tears down the current scene and starts the given one.
func (g *Game) SetScene(scene scenes.Scene) error {
	if err := g.destroyScene(); err != nil {
		return err
	}

	g.scene = scene
	if err := g.scene.Preload(); err != nil {
		return fmt.Errorf("failed to preload %s: %w", scene.Key(), err)
	}
	if err := g.scene.Create(); err != nil {
		return fmt.Errorf("failed to create %s: %w", scene.Key(), err)
	}
	log.Info("Started scene %s", scene.Key())

	return nil
}

func (g *Game) destroyScene() error {
	if g.scene == nil {
		return nil
	}
	key := g.scene.Key()
	if err := g.scene.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy previous scene %s: %w", key, err)
	}
	g.scene = nil
	g.engine.Reset()
	log.Debug("Destroyed scene %s", key)
	return nil
}

func (g *Game) Update() error {
	return g.Step(tickDuration(ebiten.TPS()))
}

// tickDuration is the length of one tick at tps ticks per second. ebiten reports
// SyncWithFPS as a negative TPS, in which case the default rate is assumed.
func tickDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// Step advances the game by one tick of length delta.
func (g *Game) Step(delta time.Duration) error {
	if g.next != "" {
		key := g.next
		g.next = ""
		if err := g.loadScene(key); err != nil {
			return fmt.Errorf("failed to load scene %s: %w", key, err)
		}
	}

	g.now += delta
	g.engine.Update(delta)

	if g.scene == nil {
		return nil
	}
	if err := g.scene.Update(g.now, delta); err != nil {
		return fmt.Errorf("failed to update scene %s: %w", g.scene.Key(), err)
	}

	return nil
}

// Close destroys the current scene.
func (g *Game) Close() error {
	return g.destroyScene()
}

// Scene returns the current scene.
func (g *Game) Scene() scenes.Scene {
	return g.scene
}

func (g *Game) Entities() *entities.Registry {
	return g.entities
}

func (g *Game) Layers() *layers.Registry {
	return g.layers
}

func (g *Game) State() state.Store {
	return g.state
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.engine.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	w, _ := g.engine.Size()
	x := w - 320
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()), x, 0)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), x, 16)
	for i, line := range g.debugLines() {
		ebitenutil.DebugPrintAt(screen, line, x, 32+16*i)
	}
}

// debugLines describes the score, layers and live entities, one line each.
func (g *Game) debugLines() []string {
	lines := []string{
		fmt.Sprintf("Score: %d", g.state.Score()),
		fmt.Sprintf("Entities: %d", g.entities.Len()),
	}
	for _, name := range g.layers.Names() {
		lines = append(lines, fmt.Sprintf("Layer %s: %d", name, len(g.layers.Layer(name))))
	}

	var described []string
	g.entities.Each(func(e entities.Entity) {
		line := fmt.Sprintf("  %s", e.ID())
		if p, ok := e.(*entities.Player); ok {
			line += fmt.Sprintf(" (%0.0f, %0.0f) fuel %0.0f lives %d", p.Position.X, p.Position.Y, p.Fuel, p.Lives)
		}
		described = append(described, line)
	})
	// registry iteration order is unspecified
	sort.Strings(described)

	return append(lines, described...)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.engine.Size()
}

package scenes

import (
	"fmt"
	"image/color"
	"time"

	"github.com/riverraid-go/riverraid/pkg/engine"
	"github.com/riverraid-go/riverraid/pkg/entities"
	"github.com/riverraid-go/riverraid/pkg/game/constants"
	"github.com/riverraid-go/riverraid/pkg/layers"
	"github.com/riverraid-go/riverraid/pkg/log"
	"github.com/riverraid-go/riverraid/pkg/state"
)

type GameScene struct {
	*BaseScene

	entities *entities.Registry
	layers   *layers.Registry
	state    state.Store
	input    engine.Input

	player *entities.Player
}

type GameSceneOptions struct {
	// Context is the rendering context of the scene.
	Context engine.Context
	// Entities is the entity registry.
	Entities *entities.Registry
	// Layers is the render layer registry.
	Layers *layers.Registry
	// State is the game state store.
	State state.Store
	// Input is passed to the player each tick. May be nil.
	Input engine.Input
}

var _ Scene = &GameScene{}

func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	if opts.Context == nil {
		return nil, fmt.Errorf("context is required")
	}
	if opts.Entities == nil || opts.Layers == nil || opts.State == nil {
		return nil, fmt.Errorf("entity registry, layer registry and state store are required")
	}
	return &GameScene{
		BaseScene: NewBaseScene(constants.SceneKeyGame, opts.Context),
		entities:  opts.Entities,
		layers:    opts.Layers,
		state:     opts.State,
		input:     opts.Input,
	}, nil
}

func (s *GameScene) Create() error {
	s.state.Reset()

	w, h := s.ctx.Size()
	x := float64(w) / 2
	y := float64(h) - constants.PlayerSpawnOffsetY

	player, err := s.entities.SpawnPlayer(s.ctx, x, y)
	if err != nil {
		return fmt.Errorf("failed to spawn player: %w", err)
	}
	s.player = player
	s.layers.AddToLayer(layers.LayerPlayers, player)
	log.Debug("Spawned player %s at (%.0f, %.0f)", player.ID(), x, y)

	s.ctx.AddText(20, 20, "River Raid - Player Jet Rendered", engine.TextStyle{
		Size: engine.FontSizeNormal,
	})
	s.ctx.AddText(20, 50, "Player position: Center-bottom", engine.TextStyle{
		Size:  engine.FontSizeSmall,
		Color: color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	})

	return nil
}

func (s *GameScene) Update(now, delta time.Duration) error {
	if s.player != nil && s.player.Active() {
		s.player.Update(delta, s.input)
	}
	return nil
}

func (s *GameScene) Destroy() error {
	if s.player == nil {
		return nil
	}
	s.layers.RemoveFromLayer(layers.LayerPlayers, s.player)
	s.entities.RecycleEntity(s.player)
	s.player.Destroy()
	log.Debug("Removed player %s", s.player.ID())
	s.player = nil
	return nil
}

// Player returns the player of the scene, or nil before Create and after Destroy.
func (s *GameScene) Player() *entities.Player {
	return s.player
}

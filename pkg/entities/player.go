package entities

import (
	"fmt"
	"time"

	"github.com/riverraid-go/riverraid/pkg/engine"
	"github.com/riverraid-go/riverraid/pkg/game/constants"
	"github.com/riverraid-go/riverraid/pkg/kinematic"
)

type Player struct {
	id     string
	active bool
	ctx    engine.Context
	sprite engine.Sprite

	// Position mirrors the transform position of the sprite.
	Position kinematic.Vector
	// Velocity mirrors the velocity of the physics body of the sprite.
	Velocity kinematic.Vector

	Fuel         float64
	MaxSpeed     float64
	CurrentSpeed float64
	Lives        int
	IsAlive      bool
}

var _ Entity = &Player{}

// NewPlayer creates the player sprite at (x, y) and attaches it to the scene and physics of ctx.
func NewPlayer(ctx engine.Context, x, y float64) (*Player, error) {
	sprite, err := ctx.NewSprite(x, y, constants.AssetKeyPlayerSprite)
	if err != nil {
		return nil, fmt.Errorf("failed to create player sprite: %w", err)
	}
	if err := ctx.AttachToScene(sprite); err != nil {
		return nil, fmt.Errorf("failed to attach player to scene: %w", err)
	}
	if err := ctx.AttachPhysics(sprite); err != nil {
		return nil, fmt.Errorf("failed to attach player physics: %w", err)
	}
	ctx.SetRenderDepth(sprite, constants.PlayerRenderDepth)

	return &Player{
		id:           NewID(KindPlayer),
		active:       true,
		ctx:          ctx,
		sprite:       sprite,
		Position:     kinematic.Vector{X: x, Y: y},
		Velocity:     kinematic.Vector{},
		Fuel:         constants.PlayerStartingFuel,
		MaxSpeed:     constants.PlayerMaxSpeed,
		CurrentSpeed: 0,
		Lives:        constants.PlayerStartingLives,
		IsAlive:      true,
	}, nil
}

func (p *Player) ID() string {
	return p.id
}

func (p *Player) Kind() Kind {
	return KindPlayer
}

func (p *Player) Active() bool {
	return p.active
}

func (p *Player) Deactivate() {
	p.active = false
}

// Sprite returns the engine sprite backing the player.
func (p *Player) Sprite() engine.Sprite {
	return p.sprite
}

// Update copies the engine transform and body velocity into the player.
// The input is not applied yet: the player never writes back into the engine.
func (p *Player) Update(delta time.Duration, in engine.Input) {
	p.Position = p.sprite.Position()
	p.Velocity = p.sprite.Velocity()
}

// Destroy marks the player dead and inactive and releases its sprite.
func (p *Player) Destroy() {
	p.active = false
	p.IsAlive = false
	p.ctx.DestroySprite(p.sprite)
}

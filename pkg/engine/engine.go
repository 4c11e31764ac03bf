// Package engine describes what the game logic needs from the rendering and
// physics engine. Implementations live outside of this package.
package engine

import (
	"image/color"
	"time"

	"github.com/riverraid-go/riverraid/pkg/kinematic"
)

// Context is the rendering context of the active scene.
type Context interface {
	// Size returns the logical size of the canvas.
	Size() (width, height int)
	// CreateTexture synthesizes a solid rectangle texture under key.
	CreateTexture(key string, width, height int, fill color.Color) error
	// NewSprite creates a sprite at (x, y) using the texture stored under textureKey.
	// The sprite is neither drawn nor simulated until attached.
	NewSprite(x, y float64, textureKey string) (Sprite, error)
	// AttachToScene adds the sprite to the display list.
	AttachToScene(s Sprite) error
	// AttachPhysics gives the sprite a physics body.
	AttachPhysics(s Sprite) error
	// SetRenderDepth sets the layering hint of the sprite. Higher depths draw on top.
	SetRenderDepth(s Sprite, depth int)
	// DestroySprite releases the display list entry and the physics body of the sprite.
	DestroySprite(s Sprite)
	// AddText draws static text at (x, y) until the scene is torn down.
	AddText(x, y float64, text string, style TextStyle)
	// OnKeyDown registers fn to be called each tick a key is pressed.
	OnKeyDown(fn func()) Handle
	// DelayedCall registers fn to be called once after d has elapsed.
	DelayedCall(d time.Duration, fn func()) Handle
}

// Sprite is a drawable object owned by the engine.
type Sprite interface {
	// Position returns the transform position.
	Position() kinematic.Vector
	// Velocity returns the velocity of the physics body, or zero without one.
	Velocity() kinematic.Vector
	// Depth returns the render depth.
	Depth() int
	// TextureKey returns the key of the texture the sprite draws.
	TextureKey() string
}

// Handle cancels a registered callback. Cancel is idempotent.
type Handle interface {
	Cancel()
}

// Input is a snapshot of the player controls for a tick.
type Input interface {
	Left() bool
	Right() bool
	Up() bool
	Down() bool
	Fire() bool
}

type FontSize int

const (
	FontSizeSmall FontSize = iota
	FontSizeNormal
	FontSizeMedium
	FontSizeLarge
)

// TextStyle controls how text is drawn.
type TextStyle struct {
	// Size is the font size.
	Size FontSize
	// Bold selects the bold face.
	Bold bool
	// Color is the fill color. Nil means white.
	Color color.Color
	// Centered anchors the text at its center instead of its top left corner.
	Centered bool
}

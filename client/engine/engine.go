// Package engine runs scenes on top of ebiten. It implements the engine
// contract the game logic is written against.
package engine

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/riverraid-go/riverraid/client/input"
	"github.com/riverraid-go/riverraid/client/objects"
	gameengine "github.com/riverraid-go/riverraid/pkg/engine"
	"github.com/riverraid-go/riverraid/pkg/log"
)

// Engine owns the textures, display list, physics bodies and scheduled callbacks of the active scene.
type Engine struct {
	width      int
	height     int
	background color.Color
	// anyKeyJustPressed reports whether a key went down during the current tick.
	anyKeyJustPressed func() bool

	textures    map[string]*texture
	displayList *objects.SortedZIndexList
	physics     *physics
	events      *events
	// now is the engine time, advanced by Update.
	now time.Duration
}

var _ gameengine.Context = &Engine{}

type NewEngineOptions struct {
	// Width is the logical width of the canvas.
	Width int
	// Height is the logical height of the canvas.
	Height int
	// Background is the color the canvas is cleared with. Nil means black.
	Background color.Color
	// AnyKeyJustPressed overrides keyboard polling. Nil polls ebiten.
	AnyKeyJustPressed func() bool
}

func NewEngine(opts NewEngineOptions) (*Engine, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", opts.Width, opts.Height)
	}
	background := opts.Background
	if background == nil {
		background = color.Black
	}
	anyKeyJustPressed := opts.AnyKeyJustPressed
	if anyKeyJustPressed == nil {
		anyKeyJustPressed = input.IsAnyKeyJustPressed
	}
	return &Engine{
		width:             opts.Width,
		height:            opts.Height,
		background:        background,
		anyKeyJustPressed: anyKeyJustPressed,
		textures:          make(map[string]*texture),
		displayList:       objects.NewSortedZIndexList(),
		physics:           newPhysics(opts.Width, opts.Height),
		events:            newEvents(),
	}, nil
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

// Now returns the time elapsed since the engine was created.
func (e *Engine) Now() time.Duration {
	return e.now
}

func (e *Engine) NewSprite(x, y float64, textureKey string) (gameengine.Sprite, error) {
	t, ok := e.textures[textureKey]
	if !ok {
		return nil, fmt.Errorf("texture %q does not exist", textureKey)
	}
	return newSprite(x, y, textureKey, t), nil
}

func (e *Engine) AttachToScene(s gameengine.Sprite) error {
	sprite, err := e.own(s)
	if err != nil {
		return err
	}
	if e.displayList.Contains(sprite) {
		return nil
	}
	return e.displayList.Add(sprite)
}

func (e *Engine) AttachPhysics(s gameengine.Sprite) error {
	sprite, err := e.own(s)
	if err != nil {
		return err
	}
	e.physics.attach(sprite)
	return nil
}

func (e *Engine) SetRenderDepth(s gameengine.Sprite, depth int) {
	sprite, err := e.own(s)
	if err != nil {
		log.Warn("Failed to set render depth: %v", err)
		return
	}
	sprite.depth = depth
	if e.displayList.Contains(sprite) {
		if err := e.displayList.Reorder(sprite); err != nil {
			log.Warn("Failed to reorder sprite: %v", err)
		}
	}
}

func (e *Engine) DestroySprite(s gameengine.Sprite) {
	sprite, err := e.own(s)
	if err != nil {
		log.Warn("Failed to destroy sprite: %v", err)
		return
	}
	if e.displayList.Contains(sprite) {
		if err := e.displayList.Remove(sprite); err != nil {
			log.Warn("Failed to remove sprite from display list: %v", err)
		}
	}
	e.physics.detach(sprite)
}

func (e *Engine) AddText(x, y float64, text string, style gameengine.TextStyle) {
	obj := objects.NewTextObject(objects.NewTextObjectOptions{
		Text:  text,
		X:     x,
		Y:     y,
		Style: style,
	})
	if err := e.displayList.Add(obj); err != nil {
		log.Warn("Failed to add text %q: %v", text, err)
	}
}

func (e *Engine) OnKeyDown(fn func()) gameengine.Handle {
	return e.events.onKeyDown(fn)
}

func (e *Engine) DelayedCall(d time.Duration, fn func()) gameengine.Handle {
	return e.events.delayedCall(e.now+d, fn)
}

// Update advances the engine by delta: input listeners, then timers, then physics.
func (e *Engine) Update(delta time.Duration) {
	e.now += delta
	if e.anyKeyJustPressed() {
		e.events.dispatchKeyDown()
	}
	e.events.dispatchTimers(e.now)
	e.physics.step(delta)
}

func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(e.background)
	e.displayList.Draw(screen)
}

// Reset tears down the scene graph: sprites, text, bodies and callbacks.
// Textures survive so later scenes can reuse them.
func (e *Engine) Reset() {
	e.displayList.Clear()
	e.physics = newPhysics(e.width, e.height)
	e.events = newEvents()
}

// DisplayList returns the objects drawn each frame, bottom first.
func (e *Engine) DisplayList() []objects.GameObject {
	return e.displayList.Objects()
}

func (e *Engine) own(s gameengine.Sprite) (*Sprite, error) {
	sprite, ok := s.(*Sprite)
	if !ok || sprite == nil {
		return nil, fmt.Errorf("sprite %T was not created by this engine", s)
	}
	return sprite, nil
}

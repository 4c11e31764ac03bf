package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/riverraid-go/riverraid/pkg/engine"
)

// IsAnyKeyJustPressed returns a boolean value indicating whether any keyboard key was pressed this tick.
func IsAnyKeyJustPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0
}

func IsRightPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)
}

func IsLeftPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
}

func IsUpPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW)
}

func IsDownPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS)
}

func IsFirePressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeySpace)
}

// Keyboard reads the player controls from the keyboard.
type Keyboard struct{}

var _ engine.Input = Keyboard{}

func (Keyboard) Left() bool  { return IsLeftPressed() }
func (Keyboard) Right() bool { return IsRightPressed() }
func (Keyboard) Up() bool    { return IsUpPressed() }
func (Keyboard) Down() bool  { return IsDownPressed() }
func (Keyboard) Fire() bool  { return IsFirePressed() }

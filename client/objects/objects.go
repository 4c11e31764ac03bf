package objects

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is anything the engine draws.
type GameObject interface {
	Draw(screen *ebiten.Image)
	GetZIndex() int
}

package engine

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/riverraid-go/riverraid/pkg/log"
)

// texture is a solid rectangle. The image is created on first draw so scenes
// can be built before the game loop starts.
type texture struct {
	width  int
	height int
	fill   color.Color
	image  *ebiten.Image
}

func (t *texture) Image() *ebiten.Image {
	if t.image == nil {
		t.image = ebiten.NewImage(t.width, t.height)
		t.image.Fill(t.fill)
	}
	return t.image
}

func (e *Engine) CreateTexture(key string, width, height int, fill color.Color) error {
	if key == "" {
		return fmt.Errorf("texture key is required")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("texture %q size must be positive, got %dx%d", key, width, height)
	}
	if fill == nil {
		fill = color.White
	}
	// Sprites hold on to their texture, so a redefinition updates it in place
	// and they pick up the new image on their next draw.
	if existing, ok := e.textures[key]; ok {
		log.Debug("Replacing texture %s", key)
		existing.width = width
		existing.height = height
		existing.fill = fill
		existing.image = nil
		return nil
	}
	e.textures[key] = &texture{
		width:  width,
		height: height,
		fill:   fill,
	}
	return nil
}

func (e *Engine) HasTexture(key string) bool {
	_, ok := e.textures[key]
	return ok
}

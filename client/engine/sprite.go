package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/riverraid-go/riverraid/client/objects"
	gameengine "github.com/riverraid-go/riverraid/pkg/engine"
	"github.com/riverraid-go/riverraid/pkg/kinematic"
	"github.com/solarlune/resolv"
)

// Sprite draws a texture centered on its position.
type Sprite struct {
	textureKey string
	texture    *texture
	position   kinematic.Vector
	velocity   kinematic.Vector
	depth      int
	body       *resolv.Object
}

var (
	_ gameengine.Sprite  = &Sprite{}
	_ objects.GameObject = &Sprite{}
)

func newSprite(x, y float64, textureKey string, t *texture) *Sprite {
	return &Sprite{
		textureKey: textureKey,
		texture:    t,
		position:   kinematic.Vector{X: x, Y: y},
	}
}

func (s *Sprite) Position() kinematic.Vector {
	return s.position
}

func (s *Sprite) Velocity() kinematic.Vector {
	if s.body == nil {
		return kinematic.Vector{}
	}
	return s.velocity
}

func (s *Sprite) Depth() int {
	return s.depth
}

func (s *Sprite) TextureKey() string {
	return s.textureKey
}

func (s *Sprite) GetZIndex() int {
	return s.depth
}

// SetVelocity sets the velocity of the body. It has no effect without a body.
func (s *Sprite) SetVelocity(vx, vy float64) {
	if s.body == nil {
		return
	}
	s.velocity = kinematic.Vector{X: vx, Y: vy}
}

// Body returns the physics body, or nil.
func (s *Sprite) Body() *resolv.Object {
	return s.body
}

func (s *Sprite) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.position.X-float64(s.texture.width)/2, s.position.Y-float64(s.texture.height)/2)
	screen.DrawImage(s.texture.Image(), op)
}

func (s *Sprite) syncBody() {
	if s.body == nil {
		return
	}
	s.body.Position.X = s.position.X - s.body.Size.X/2
	s.body.Position.Y = s.position.Y - s.body.Size.Y/2
	s.body.Update()
}

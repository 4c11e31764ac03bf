package engine

import (
	"slices"
	"time"

	"github.com/riverraid-go/riverraid/pkg/collisions"
	"github.com/riverraid-go/riverraid/pkg/kinematic"
	"github.com/solarlune/resolv"
)

// physics integrates sprite bodies inside a resolv space covering the canvas.
// There is no gravity.
type physics struct {
	space   *resolv.Space
	sprites []*Sprite
}

func newPhysics(width, height int) *physics {
	return &physics{
		space: collisions.NewCollisionSpace(width, height),
	}
}

func (p *physics) attach(s *Sprite) {
	if s.body != nil {
		return
	}
	w, h := float64(s.texture.width), float64(s.texture.height)
	s.body = resolv.NewObject(s.position.X-w/2, s.position.Y-h/2, w, h, collisions.TagBody)
	p.space.Add(s.body)
	p.sprites = append(p.sprites, s)
}

func (p *physics) detach(s *Sprite) {
	if s.body == nil {
		return
	}
	p.space.Remove(s.body)
	s.body = nil
	s.velocity = kinematic.Vector{}
	for i, other := range p.sprites {
		if other == s {
			p.sprites = slices.Delete(p.sprites, i, i+1)
			break
		}
	}
}

func (p *physics) step(dt time.Duration) {
	for _, s := range p.sprites {
		s.position, s.velocity = kinematic.Step(s.position, s.velocity, kinematic.Vector{}, dt)
		s.syncBody()
	}
}

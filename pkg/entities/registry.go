package entities

import (
	"fmt"

	"github.com/riverraid-go/riverraid/pkg/engine"
	"github.com/riverraid-go/riverraid/pkg/log"
)

// Registry is the single source of truth for which entities exist.
// It is not safe for concurrent use; the game loop owns it.
type Registry struct {
	entities map[string]Entity
}

func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[string]Entity),
	}
}

// SpawnPlayer creates a player bound to ctx at (x, y) and registers it.
func (r *Registry) SpawnPlayer(ctx engine.Context, x, y float64) (*Player, error) {
	player, err := NewPlayer(ctx, x, y)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	r.RegisterEntity(player)
	return player, nil
}

// RegisterEntity stores e under its identifier, replacing any entity with the same identifier.
func (r *Registry) RegisterEntity(e Entity) {
	if existing, ok := r.entities[e.ID()]; ok && existing != e {
		log.Warn("Replacing registered entity %s", describe(existing))
	}
	r.entities[e.ID()] = e
	log.Debug("Registered entity %s", describe(e))
}

// RemoveEntity forgets the entity stored under id, if any.
func (r *Registry) RemoveEntity(id string) {
	delete(r.entities, id)
}

func (r *Registry) GetEntity(id string) (Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

// RecycleEntity deactivates e and removes it from the registry.
// Engine resources held by e are not released.
func (r *Registry) RecycleEntity(e Entity) {
	e.Deactivate()
	r.RemoveEntity(e.ID())
	log.Debug("Recycled entity %s", describe(e))
}

func (r *Registry) Len() int {
	return len(r.entities)
}

// Each calls fn for every registered entity in no particular order.
func (r *Registry) Each(fn func(Entity)) {
	for _, e := range r.entities {
		fn(e)
	}
}

func describe(e Entity) string {
	switch e.Kind() {
	case KindPlayer:
		if p, ok := e.(*Player); ok {
			return fmt.Sprintf("%s at (%.1f, %.1f)", p.ID(), p.Position.X, p.Position.Y)
		}
	}
	return e.ID()
}

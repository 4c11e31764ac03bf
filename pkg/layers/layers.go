package layers

import (
	"slices"
	"sort"

	"github.com/riverraid-go/riverraid/pkg/entities"
)

const (
	// LayerPlayers holds the player entities.
	LayerPlayers = "players"
)

// Registry maps layer names to ordered, non-owning lists of entities.
type Registry struct {
	layers map[string][]entities.Entity
}

func NewRegistry() *Registry {
	return &Registry{
		layers: make(map[string][]entities.Entity),
	}
}

// AddToLayer appends e to the named layer, creating the layer if needed.
func (r *Registry) AddToLayer(name string, e entities.Entity) {
	r.layers[name] = append(r.layers[name], e)
}

// RemoveFromLayer removes the first occurrence of e from the named layer.
func (r *Registry) RemoveFromLayer(name string, e entities.Entity) {
	layer, ok := r.layers[name]
	if !ok {
		return
	}
	for i, candidate := range layer {
		if candidate == e {
			r.layers[name] = slices.Delete(layer, i, i+1)
			return
		}
	}
}

// Layer returns a copy of the named layer. Unknown layers are empty.
func (r *Registry) Layer(name string) []entities.Entity {
	layer := r.layers[name]
	out := make([]entities.Entity, len(layer))
	copy(out, layer)
	return out
}

// Names returns the sorted names of every layer created so far.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.layers))
	for name := range r.layers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

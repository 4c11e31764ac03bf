package entities

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind enumerates every entity type the registry can hold.
type Kind int

const (
	KindPlayer Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	}
	return "unknown"
}

// Entity is a registrable game object.
type Entity interface {
	// ID returns the identifier of the entity. It never changes.
	ID() string
	// Kind returns the kind of the entity.
	Kind() Kind
	// Active reports whether the entity still takes part in the game.
	Active() bool
	// Deactivate marks the entity inactive.
	Deactivate()
}

// NewID returns a fresh identifier for an entity of the given kind.
func NewID(kind Kind) string {
	return fmt.Sprintf("%s-%s", kind, uuid.NewString())
}

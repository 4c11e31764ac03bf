package scenes

import (
	"time"

	"github.com/riverraid-go/riverraid/pkg/engine"
	"github.com/riverraid-go/riverraid/pkg/game/constants"
)

// Scene is a phase of the game with its own setup, update and teardown.
// The game calls Preload and Create once when the scene starts, Update once per
// tick and Destroy when the scene is replaced or the game exits.
type Scene interface {
	Key() constants.SceneKey
	Preload() error
	Create() error
	Update(now, delta time.Duration) error
	Destroy() error
}

type BaseScene struct {
	key constants.SceneKey
	ctx engine.Context
}

func NewBaseScene(key constants.SceneKey, ctx engine.Context) *BaseScene {
	return &BaseScene{
		key: key,
		ctx: ctx,
	}
}

func (s *BaseScene) Key() constants.SceneKey {
	return s.key
}

func (s *BaseScene) Preload() error {
	return nil
}

func (s *BaseScene) Create() error {
	return nil
}

func (s *BaseScene) Update(now, delta time.Duration) error {
	return nil
}

func (s *BaseScene) Destroy() error {
	return nil
}

package scenes

import (
	"testing"
	"time"

	clientengine "github.com/riverraid-go/riverraid/client/engine"
	"github.com/riverraid-go/riverraid/pkg/entities"
	"github.com/riverraid-go/riverraid/pkg/game/constants"
	"github.com/riverraid-go/riverraid/pkg/kinematic"
	"github.com/riverraid-go/riverraid/pkg/layers"
	"github.com/riverraid-go/riverraid/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gameSceneFixture struct {
	engine   *clientengine.Engine
	entities *entities.Registry
	layers   *layers.Registry
	state    *state.InMemoryStore
	scene    *GameScene
}

func newGameSceneFixture(t *testing.T, width, height int) *gameSceneFixture {
	t.Helper()
	e, err := clientengine.NewEngine(clientengine.NewEngineOptions{
		Width:             width,
		Height:            height,
		AnyKeyJustPressed: func() bool { return false },
	})
	require.NoError(t, err)
	require.NoError(t, e.CreateTexture(constants.AssetKeyPlayerSprite, constants.PlayerTextureWidth, constants.PlayerTextureHeight, constants.PlayerTextureColor))

	f := &gameSceneFixture{
		engine:   e,
		entities: entities.NewRegistry(),
		layers:   layers.NewRegistry(),
		state:    state.NewInMemoryStore(),
	}
	f.scene, err = NewGameScene(GameSceneOptions{
		Context:  e,
		Entities: f.entities,
		Layers:   f.layers,
		State:    f.state,
	})
	require.NoError(t, err)
	return f
}

func TestNewGameScene_validation(t *testing.T) {
	_, err := NewGameScene(GameSceneOptions{})
	assert.Error(t, err)
}

func TestGameScene_Create(t *testing.T) {
	f := newGameSceneFixture(t, 800, 600)
	f.state.UpdateScore(250)
	f.state.Set("fuel", 10)

	require.NoError(t, f.scene.Create())

	player := f.scene.Player()
	require.NotNil(t, player)
	assert.Equal(t, kinematic.Vector{X: 400, Y: 520}, player.Position)
	assert.Equal(t, kinematic.Vector{X: 400, Y: 520}, player.Sprite().Position())
	assert.Equal(t, constants.PlayerRenderDepth, player.Sprite().Depth())

	layer := f.layers.Layer(layers.LayerPlayers)
	require.Len(t, layer, 1)
	assert.Same(t, player, layer[0])

	got, ok := f.entities.GetEntity(player.ID())
	require.True(t, ok)
	assert.Same(t, player, got)

	assert.Equal(t, 0, f.state.Score())
	_, ok = f.state.Get("fuel")
	assert.False(t, ok)

	// player sprite plus two lines of text, player on top
	list := f.engine.DisplayList()
	require.Len(t, list, 3)
	assert.Same(t, player.Sprite(), list[2])
}

func TestGameScene_Create_otherCanvas(t *testing.T) {
	f := newGameSceneFixture(t, 1024, 768)
	require.NoError(t, f.scene.Create())
	assert.Equal(t, kinematic.Vector{X: 512, Y: 688}, f.scene.Player().Position)
}

func TestGameScene_Create_missingTexture(t *testing.T) {
	e, err := clientengine.NewEngine(clientengine.NewEngineOptions{Width: 800, Height: 600, AnyKeyJustPressed: func() bool { return false }})
	require.NoError(t, err)
	s, err := NewGameScene(GameSceneOptions{
		Context:  e,
		Entities: entities.NewRegistry(),
		Layers:   layers.NewRegistry(),
		State:    state.NewInMemoryStore(),
	})
	require.NoError(t, err)

	assert.Error(t, s.Create())
	assert.Nil(t, s.Player())
}

func TestGameScene_Update(t *testing.T) {
	f := newGameSceneFixture(t, 800, 600)
	require.NoError(t, f.scene.Create())
	player := f.scene.Player()

	sprite := player.Sprite().(*clientengine.Sprite)
	sprite.SetVelocity(120, -60)
	f.engine.Update(500 * time.Millisecond)
	require.NoError(t, f.scene.Update(500*time.Millisecond, 500*time.Millisecond))

	assert.InDelta(t, 460, player.Position.X, 1e-9)
	assert.InDelta(t, 490, player.Position.Y, 1e-9)
	assert.Equal(t, kinematic.Vector{X: 120, Y: -60}, player.Velocity)

	// inactive players are not synced
	player.Deactivate()
	f.engine.Update(500 * time.Millisecond)
	require.NoError(t, f.scene.Update(time.Second, 500*time.Millisecond))
	assert.InDelta(t, 460, player.Position.X, 1e-9)
}

func TestGameScene_Destroy(t *testing.T) {
	f := newGameSceneFixture(t, 800, 600)
	require.NoError(t, f.scene.Create())
	player := f.scene.Player()

	require.NoError(t, f.scene.Destroy())

	_, ok := f.entities.GetEntity(player.ID())
	assert.False(t, ok)
	assert.Empty(t, f.layers.Layer(layers.LayerPlayers))
	assert.False(t, player.Active())
	assert.False(t, player.IsAlive)
	assert.Nil(t, f.scene.Player())
	assert.Len(t, f.engine.DisplayList(), 2, "the player sprite is released")

	// a second destroy is a no-op
	require.NoError(t, f.scene.Destroy())
	require.NoError(t, f.scene.Update(0, time.Second/60))
}

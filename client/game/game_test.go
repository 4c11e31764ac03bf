package game

import (
	"testing"
	"time"

	"github.com/riverraid-go/riverraid/client/scenes"
	"github.com/riverraid-go/riverraid/pkg/game/constants"
	"github.com/riverraid-go/riverraid/pkg/kinematic"
	"github.com/riverraid-go/riverraid/pkg/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = time.Second / 60

type keyboard struct {
	pressed bool
}

func (k *keyboard) justPressed() bool {
	pressed := k.pressed
	k.pressed = false
	return pressed
}

func newTestGame(t *testing.T) (*Game, *keyboard) {
	t.Helper()
	kb := &keyboard{}
	g, err := NewGame(NewGameOptions{
		Width:             constants.GameWidth,
		Height:            constants.GameHeight,
		BootTimeout:       constants.BootTimeout,
		AnyKeyJustPressed: kb.justPressed,
	})
	require.NoError(t, err)
	return g, kb
}

func stepFor(t *testing.T, g *Game, d time.Duration) {
	t.Helper()
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		require.NoError(t, g.Step(tick))
	}
}

func gameScene(t *testing.T, g *Game) *scenes.GameScene {
	t.Helper()
	s, ok := g.Scene().(*scenes.GameScene)
	require.True(t, ok, "expected the game scene, got %s", g.Scene().Key())
	return s
}

func TestNewGame_startsInBoot(t *testing.T) {
	g, _ := newTestGame(t)
	assert.Equal(t, constants.SceneKeyBoot, g.Scene().Key())
	assert.Equal(t, 0, g.Entities().Len())

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestNewGame_invalidSize(t *testing.T) {
	_, err := NewGame(NewGameOptions{})
	assert.Error(t, err)
}

func TestGame_bootTimeout(t *testing.T) {
	g, _ := newTestGame(t)

	stepFor(t, g, 2900*time.Millisecond)
	assert.Equal(t, constants.SceneKeyBoot, g.Scene().Key())

	stepFor(t, g, 200*time.Millisecond)
	assert.Equal(t, constants.SceneKeyGame, g.Scene().Key())
}

func TestGame_bootKeyPress(t *testing.T) {
	g, kb := newTestGame(t)

	require.NoError(t, g.Step(tick))
	kb.pressed = true
	require.NoError(t, g.Step(tick))
	require.NoError(t, g.Step(tick))
	assert.Equal(t, constants.SceneKeyGame, g.Scene().Key())

	s := gameScene(t, g)
	player := s.Player()
	require.NotNil(t, player)
	assert.Equal(t, kinematic.Vector{X: 400, Y: 520}, player.Position)
	assert.Equal(t, constants.PlayerRenderDepth, player.Sprite().Depth())
	assert.Len(t, g.Layers().Layer(layers.LayerPlayers), 1)
	assert.Equal(t, 0, g.State().Score())
	assert.Equal(t, 1, g.Entities().Len())

	// the boot timer was disarmed: waiting past it does not enter the game again
	stepFor(t, g, 4*time.Second)
	assert.Same(t, s, g.Scene())
	assert.Equal(t, 1, g.Entities().Len())
	assert.Len(t, g.Layers().Layer(layers.LayerPlayers), 1)
}

func TestGame_bootBothTriggersSameTick(t *testing.T) {
	g, kb := newTestGame(t)

	stepFor(t, g, constants.BootTimeout-tick)
	kb.pressed = true
	stepFor(t, g, 3*tick)

	gameScene(t, g)
	assert.Equal(t, 1, g.Entities().Len())
	assert.Len(t, g.Layers().Layer(layers.LayerPlayers), 1)
}

func TestGame_Close(t *testing.T) {
	g, kb := newTestGame(t)
	kb.pressed = true
	stepFor(t, g, 2*tick)
	player := gameScene(t, g).Player()
	require.NotNil(t, player)

	require.NoError(t, g.Close())

	_, ok := g.Entities().GetEntity(player.ID())
	assert.False(t, ok)
	assert.Empty(t, g.Layers().Layer(layers.LayerPlayers))
	assert.False(t, player.Active())
	assert.Nil(t, g.Scene())

	require.NoError(t, g.Step(tick))
}

func TestGame_scoreResetsOnGameEntry(t *testing.T) {
	g, kb := newTestGame(t)
	g.State().UpdateScore(99)

	kb.pressed = true
	stepFor(t, g, 2*tick)
	gameScene(t, g)
	assert.Equal(t, 0, g.State().Score())
}

func TestGame_debugLines(t *testing.T) {
	g, kb := newTestGame(t)
	assert.Equal(t, []string{"Score: 0", "Entities: 0"}, g.debugLines())

	kb.pressed = true
	stepFor(t, g, 2*tick)
	player := gameScene(t, g).Player()
	require.NotNil(t, player)
	g.State().UpdateScore(15)

	lines := g.debugLines()
	require.Len(t, lines, 4)
	assert.Equal(t, "Score: 15", lines[0])
	assert.Equal(t, "Entities: 1", lines[1])
	assert.Equal(t, "Layer players: 1", lines[2])
	assert.Equal(t, "  "+player.ID()+" (400, 520) fuel 100 lives 3", lines[3])

	require.NoError(t, g.Close())
	assert.Equal(t, []string{"Score: 15", "Entities: 0", "Layer players: 0"}, g.debugLines())
}

func TestTickDuration(t *testing.T) {
	tests := []struct {
		name string
		tps  int
		want time.Duration
	}{
		{name: "default", tps: 60, want: time.Second / 60},
		{name: "custom", tps: 120, want: time.Second / 120},
		{name: "sync with fps", tps: -1, want: time.Second / 60},
		{name: "zero", tps: 0, want: time.Second / 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tickDuration(tt.tps))
		})
	}
}

package entities

import (
	"testing"

	mocks "github.com/riverraid-go/riverraid/mocks/github.com/riverraid-go/riverraid/pkg/engine"
	"github.com/riverraid-go/riverraid/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubEntity struct {
	id     string
	active bool
}

func (e *stubEntity) ID() string   { return e.id }
func (e *stubEntity) Kind() Kind   { return KindPlayer }
func (e *stubEntity) Active() bool { return e.active }
func (e *stubEntity) Deactivate()  { e.active = false }

func newPermissiveContext(t *testing.T) *mocks.Context {
	ctx := mocks.NewContext(t)
	ctx.EXPECT().NewSprite(mock.Anything, mock.Anything, mock.Anything).Return(mocks.NewSprite(t), nil).Maybe()
	ctx.EXPECT().AttachToScene(mock.Anything).Return(nil).Maybe()
	ctx.EXPECT().AttachPhysics(mock.Anything).Return(nil).Maybe()
	ctx.EXPECT().SetRenderDepth(mock.Anything, mock.Anything).Return().Maybe()
	return ctx
}

func TestRegistry_SpawnPlayer(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{name: "origin", x: 0, y: 0},
		{name: "center bottom", x: 400, y: 520},
		{name: "negative", x: -12.5, y: -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			player, err := r.SpawnPlayer(newPermissiveContext(t), tt.x, tt.y)
			require.NoError(t, err)

			assert.Equal(t, kinematic.Vector{X: tt.x, Y: tt.y}, player.Position)
			assert.Equal(t, kinematic.Vector{}, player.Velocity)

			got, ok := r.GetEntity(player.ID())
			require.True(t, ok)
			assert.Same(t, player, got)
			assert.Equal(t, 1, r.Len())
		})
	}
}

func TestRegistry_RecycleEntity(t *testing.T) {
	r := NewRegistry()
	player, err := r.SpawnPlayer(newPermissiveContext(t), 10, 20)
	require.NoError(t, err)

	r.RecycleEntity(player)

	_, ok := r.GetEntity(player.ID())
	assert.False(t, ok)
	assert.False(t, player.Active())
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_RegisterEntity_overwrites(t *testing.T) {
	r := NewRegistry()
	first := &stubEntity{id: "same", active: true}
	second := &stubEntity{id: "same", active: true}

	r.RegisterEntity(first)
	r.RegisterEntity(second)

	got, ok := r.GetEntity("same")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_RemoveEntity(t *testing.T) {
	r := NewRegistry()
	e := &stubEntity{id: "a", active: true}
	r.RegisterEntity(e)

	r.RemoveEntity("missing")
	assert.Equal(t, 1, r.Len())

	r.RemoveEntity("a")
	_, ok := r.GetEntity("a")
	assert.False(t, ok)
	assert.True(t, e.Active(), "removing does not deactivate")

	r.RemoveEntity("a")
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_Each(t *testing.T) {
	r := NewRegistry()
	r.RegisterEntity(&stubEntity{id: "a"})
	r.RegisterEntity(&stubEntity{id: "b"})

	ids := []string{}
	r.Each(func(e Entity) {
		ids = append(ids, e.ID())
	})
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

package scenes

import (
	"testing"
	"time"

	clientengine "github.com/riverraid-go/riverraid/client/engine"
	mocks "github.com/riverraid-go/riverraid/mocks/github.com/riverraid-go/riverraid/pkg/engine"
	"github.com/riverraid-go/riverraid/pkg/game/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewBootScene_validation(t *testing.T) {
	_, err := NewBootScene(BootSceneOptions{OnContinue: func() {}})
	assert.Error(t, err)

	_, err = NewBootScene(BootSceneOptions{Context: mocks.NewContext(t)})
	assert.Error(t, err)

	s, err := NewBootScene(BootSceneOptions{Context: mocks.NewContext(t), OnContinue: func() {}})
	require.NoError(t, err)
	assert.Equal(t, constants.SceneKeyBoot, s.Key())
	assert.Equal(t, constants.BootTimeout, s.timeout)
}

func TestBootScene_Preload(t *testing.T) {
	ctx := mocks.NewContext(t)
	ctx.EXPECT().CreateTexture(constants.AssetKeyPlayerSprite, constants.PlayerTextureWidth, constants.PlayerTextureHeight, constants.PlayerTextureColor).Return(nil).Once()

	s, err := NewBootScene(BootSceneOptions{Context: ctx, OnContinue: func() {}})
	require.NoError(t, err)
	require.NoError(t, s.Preload())
}

func TestBootScene_Create(t *testing.T) {
	tests := []struct {
		name    string
		trigger func(keyDown, timeout func())
	}{
		{
			name: "key press first",
			trigger: func(keyDown, timeout func()) {
				keyDown()
				timeout()
			},
		},
		{
			name: "timeout first",
			trigger: func(keyDown, timeout func()) {
				timeout()
				keyDown()
				keyDown()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := mocks.NewContext(t)
			keyHandle := mocks.NewHandle(t)
			timeoutHandle := mocks.NewHandle(t)

			var keyDown, timeout func()
			ctx.EXPECT().Size().Return(800, 600)
			ctx.EXPECT().AddText(400.0, mock.Anything, mock.Anything, mock.Anything).Return().Times(3)
			ctx.EXPECT().OnKeyDown(mock.Anything).Run(func(fn func()) { keyDown = fn }).Return(keyHandle).Once()
			ctx.EXPECT().DelayedCall(3000*time.Millisecond, mock.Anything).Run(func(d time.Duration, fn func()) { timeout = fn }).Return(timeoutHandle).Once()
			keyHandle.EXPECT().Cancel().Return()
			timeoutHandle.EXPECT().Cancel().Return()

			continued := 0
			s, err := NewBootScene(BootSceneOptions{Context: ctx, OnContinue: func() { continued++ }})
			require.NoError(t, err)
			require.NoError(t, s.Create())
			require.NotNil(t, keyDown)
			require.NotNil(t, timeout)

			tt.trigger(keyDown, timeout)

			assert.Equal(t, 1, continued, "the scene continues exactly once")
			require.NoError(t, s.Destroy())
		})
	}
}

func TestBootScene_engine(t *testing.T) {
	e, err := clientengine.NewEngine(clientengine.NewEngineOptions{
		Width:             800,
		Height:            600,
		AnyKeyJustPressed: func() bool { return false },
	})
	require.NoError(t, err)

	continued := 0
	s, err := NewBootScene(BootSceneOptions{Context: e, Timeout: 500 * time.Millisecond, OnContinue: func() { continued++ }})
	require.NoError(t, err)
	require.NoError(t, s.Preload())
	require.NoError(t, s.Create())

	assert.True(t, e.HasTexture(constants.AssetKeyPlayerSprite))
	assert.Len(t, e.DisplayList(), 3)

	e.Update(400 * time.Millisecond)
	assert.Equal(t, 0, continued)
	e.Update(100 * time.Millisecond)
	assert.Equal(t, 1, continued)
	e.Update(time.Second)
	assert.Equal(t, 1, continued)
}

package scenes

import (
	"fmt"
	"image/color"
	"time"

	"github.com/riverraid-go/riverraid/pkg/engine"
	"github.com/riverraid-go/riverraid/pkg/game/constants"
	"github.com/riverraid-go/riverraid/pkg/log"
)

// BootScene prepares the placeholder assets and waits for a key press or a
// timeout, whichever comes first, before continuing.
type BootScene struct {
	*BaseScene

	timeout    time.Duration
	onContinue func()

	keyDown      engine.Handle
	autoContinue engine.Handle
	continued    bool
}

type BootSceneOptions struct {
	// Context is the rendering context of the scene.
	Context engine.Context
	// Timeout is how long to wait for a key press. Zero means constants.BootTimeout.
	Timeout time.Duration
	// OnContinue is called once when the scene is done.
	OnContinue func()
}

var _ Scene = &BootScene{}

func NewBootScene(opts BootSceneOptions) (*BootScene, error) {
	if opts.Context == nil {
		return nil, fmt.Errorf("context is required")
	}
	if opts.OnContinue == nil {
		return nil, fmt.Errorf("continue callback is required")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = constants.BootTimeout
	}
	return &BootScene{
		BaseScene:  NewBaseScene(constants.SceneKeyBoot, opts.Context),
		timeout:    timeout,
		onContinue: opts.OnContinue,
	}, nil
}

func (s *BootScene) Preload() error {
	err := s.ctx.CreateTexture(constants.AssetKeyPlayerSprite, constants.PlayerTextureWidth, constants.PlayerTextureHeight, constants.PlayerTextureColor)
	if err != nil {
		return fmt.Errorf("failed to create placeholder texture: %w", err)
	}
	return nil
}

func (s *BootScene) Create() error {
	w, h := s.ctx.Size()
	centerX := float64(w) / 2

	s.ctx.AddText(centerX, float64(h)/3, "River Raid", engine.TextStyle{
		Size:     engine.FontSizeLarge,
		Bold:     true,
		Centered: true,
	})
	s.ctx.AddText(centerX, float64(h)*7/12, "Canvas Ready - Game Engine Initialized", engine.TextStyle{
		Size:     engine.FontSizeNormal,
		Color:    color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
		Centered: true,
	})
	s.ctx.AddText(centerX, float64(h)*2/3, "Press any key to continue", engine.TextStyle{
		Size:     engine.FontSizeSmall,
		Color:    color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
		Centered: true,
	})

	s.keyDown = s.ctx.OnKeyDown(func() {
		s.proceed("key press")
	})
	s.autoContinue = s.ctx.DelayedCall(s.timeout, func() {
		s.proceed("timeout")
	})

	return nil
}

// proceed disarms both triggers so the scene continues exactly once.
func (s *BootScene) proceed(reason string) {
	if s.continued {
		return
	}
	s.continued = true
	s.disarm()
	log.Info("Game engine initialized, continuing after %s", reason)
	s.onContinue()
}

func (s *BootScene) disarm() {
	if s.keyDown != nil {
		s.keyDown.Cancel()
	}
	if s.autoContinue != nil {
		s.autoContinue.Cancel()
	}
}

func (s *BootScene) Destroy() error {
	s.disarm()
	return nil
}

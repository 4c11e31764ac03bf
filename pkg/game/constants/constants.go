package constants

import (
	"image/color"
	"time"
)

const (
	// GameWidth is the default logical width of the canvas
	GameWidth int = 800
	// GameHeight is the default logical height of the canvas
	GameHeight int = 600
	// GameTitle is the window title
	GameTitle = "River Raid"

	// BootTimeout is how long the boot scene waits for a key before continuing
	BootTimeout = 3000 * time.Millisecond

	// PlayerTextureWidth is the width of the placeholder player texture
	PlayerTextureWidth int = 32
	// PlayerTextureHeight is the height of the placeholder player texture
	PlayerTextureHeight int = 32
	// PlayerStartingFuel is the fuel a new player starts with
	PlayerStartingFuel float64 = 100.0
	// PlayerMaxSpeed is the upper speed bound of the player jet
	PlayerMaxSpeed float64 = 300.0
	// PlayerStartingLives is the number of lives a new player starts with
	PlayerStartingLives int = 3
	// PlayerRenderDepth draws the player above every layer with a lower depth
	PlayerRenderDepth int = 10
	// PlayerSpawnOffsetY is the distance between the spawn point and the bottom edge
	PlayerSpawnOffsetY float64 = 80.0
)

// PlayerTextureColor is the fill of the placeholder player texture.
var PlayerTextureColor = color.RGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff}

type SceneKey string

const (
	SceneKeyBoot     SceneKey = "BootScene"
	SceneKeyStart    SceneKey = "StartScene"
	SceneKeyGame     SceneKey = "GameScene"
	SceneKeyGameOver SceneKey = "GameOverScene"
)

func (k SceneKey) String() string {
	return string(k)
}

const (
	// Sprites
	AssetKeyPlayerSprite = "player_sprite"
	AssetKeyEnemySprite  = "enemy_sprite"

	// Audio
	AssetKeyExplosionSound = "explosion_sound"
	AssetKeyShootSound     = "shoot_sound"
)

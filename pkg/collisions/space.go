package collisions

import "github.com/solarlune/resolv"

const (
	// CellSize is the cell size of every collision space.
	CellSize = 16
	// TagBody tags the physics body of a sprite.
	TagBody = "body"
)

// NewCollisionSpace returns an empty space covering a width x height canvas.
// Sizes that are not a multiple of CellSize are rounded up.
func NewCollisionSpace(width, height int) *resolv.Space {
	cellsX := (width + CellSize - 1) / CellSize
	cellsY := (height + CellSize - 1) / CellSize
	return resolv.NewSpace(cellsX*CellSize, cellsY*CellSize, CellSize, CellSize)
}

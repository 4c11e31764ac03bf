package kinematic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStep(t *testing.T) {
	tests := []struct {
		name         string
		position     Vector
		velocity     Vector
		acceleration Vector
		dt           time.Duration
		wantPosition Vector
		wantVelocity Vector
	}{
		{
			name:         "at rest",
			position:     Vector{X: 400, Y: 520},
			dt:           time.Second,
			wantPosition: Vector{X: 400, Y: 520},
		},
		{
			name:         "constant velocity",
			position:     Vector{X: 0, Y: 0},
			velocity:     Vector{X: 100, Y: -50},
			dt:           500 * time.Millisecond,
			wantPosition: Vector{X: 50, Y: -25},
			wantVelocity: Vector{X: 100, Y: -50},
		},
		{
			name:         "accelerating",
			position:     Vector{X: 0, Y: 0},
			velocity:     Vector{X: 0, Y: 0},
			acceleration: Vector{X: 2, Y: 0},
			dt:           2 * time.Second,
			wantPosition: Vector{X: 4, Y: 0},
			wantVelocity: Vector{X: 4, Y: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPosition, gotVelocity := Step(tt.position, tt.velocity, tt.acceleration, tt.dt)
			assert.InDelta(t, tt.wantPosition.X, gotPosition.X, 1e-9)
			assert.InDelta(t, tt.wantPosition.Y, gotPosition.Y, 1e-9)
			assert.InDelta(t, tt.wantVelocity.X, gotVelocity.X, 1e-9)
			assert.InDelta(t, tt.wantVelocity.Y, gotVelocity.Y, 1e-9)
		})
	}
}

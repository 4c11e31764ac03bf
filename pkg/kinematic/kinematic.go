package kinematic

// This package includes the kinematic equations used to integrate physics bodies.

import (
	"math"
	"time"
)

// Vector is a two dimensional vector in screen space (y grows downwards).
type Vector struct {
	X float64
	Y float64
}

// Displacement returns the displacement of an object given its initial velocity, time, and acceleration.
func Displacement(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity*time + 0.5*acceleration*math.Pow(time, 2)
}

// FinalVelocity returns the final velocity of an object given its initial velocity, time, and acceleration.
func FinalVelocity(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity + acceleration*time
}

// Step advances a position and velocity by dt under a constant acceleration.
func Step(position, velocity, acceleration Vector, dt time.Duration) (Vector, Vector) {
	t := dt.Seconds()
	nextPosition := Vector{
		X: position.X + Displacement(velocity.X, t, acceleration.X),
		Y: position.Y + Displacement(velocity.Y, t, acceleration.Y),
	}
	nextVelocity := Vector{
		X: FinalVelocity(velocity.X, t, acceleration.X),
		Y: FinalVelocity(velocity.Y, t, acceleration.Y),
	}
	return nextPosition, nextVelocity
}

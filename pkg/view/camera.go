// Package view holds the screen-space side of the simulator: the pan/zoom
// camera and the pointer gesture state machine driving it.
package view

import (
	"github.com/abhishek776655/Orbital-Mind/pkg/physics"
)

// Zoom bounds, screen pixels per world unit.
const (
	MinZoom = 0.05
	MaxZoom = 20.0
)

// Camera maps world space to screen space as p*Zoom + Offset. Offset is the
// screen position of the world origin, in pixels.
type Camera struct {
	Offset physics.Vec2
	Zoom   float64
}

func NewCamera(screenW, screenH float64) *Camera {
	// world origin at screen center
	return &Camera{
		Offset: physics.Vec2{X: screenW / 2, Y: screenH / 2},
		Zoom:   1,
	}
}

func (c *Camera) WorldToScreen(p physics.Vec2) physics.Vec2 {
	return p.Mul(c.Zoom).Add(c.Offset)
}

func (c *Camera) ScreenToWorld(p physics.Vec2) physics.Vec2 {
	return p.Sub(c.Offset).Mul(1 / c.Zoom)
}

// Pan shifts the view by a screen-space delta. Unbounded.
func (c *Camera) Pan(delta physics.Vec2) {
	c.Offset = c.Offset.Add(delta)
}

// ZoomAt scales the zoom by factor, clamped to [MinZoom, MaxZoom], keeping
// the world point under focus fixed at focus on screen.
func (c *Camera) ZoomAt(factor float64, focus physics.Vec2) {
	anchor := c.ScreenToWorld(focus)

	z := c.Zoom * factor
	if z < MinZoom {
		z = MinZoom
	} else if z > MaxZoom {
		z = MaxZoom
	}
	c.Zoom = z
	c.Offset = focus.Sub(anchor.Mul(c.Zoom))
}

package physics

import (
	"fmt"
	"image/color"
	"math"
	"sync/atomic"
)

// MinRadius is the smallest visual/hit-test radius a body may have.
const MinRadius = 3.0

var idCounter uint64

// NextID returns a fresh process-wide unique body identifier.
func NextID() uint64 {
	return atomic.AddUint64(&idCounter, 1)
}

// RadiusFor derives a body's radius from its mass and density. Every code
// path that changes mass or density must go through this; radius is never
// set independently.
func RadiusFor(mass, density float64) float64 {
	return math.Max(MinRadius, math.Sqrt(mass/density))
}

// Body is a single point mass. Pos and Vel are in world units and
// world units per second. Radius is cached but always equals
// RadiusFor(Mass, Density).
type Body struct {
	ID      uint64
	Mass    float64
	Density float64
	Radius  float64
	Pos     Vec2
	Vel     Vec2
	Trail   []Vec2 // historical positions, oldest first
	Fixed   bool   // attracts others but never moves
	ColorC  color.RGBA

	force Vec2 // accumulated over one step, cleared by Advance
}

// NewBody constructs a body with a fresh ID and a radius derived from
// mass and density.
func NewBody(mass, density float64, pos, vel Vec2, clr color.RGBA) *Body {
	return &Body{
		ID:      NextID(),
		Mass:    mass,
		Density: density,
		Radius:  RadiusFor(mass, density),
		Pos:     pos,
		Vel:     vel,
		ColorC:  clr,
	}
}

// SetMass updates mass and recomputes the derived radius.
func (b *Body) SetMass(mass float64) {
	b.Mass = mass
	b.Radius = RadiusFor(b.Mass, b.Density)
}

// SetDensity updates density and recomputes the derived radius.
func (b *Body) SetDensity(density float64) {
	b.Density = density
	b.Radius = RadiusFor(b.Mass, b.Density)
}

func (b Body) Color() color.Color {
	return b.ColorC
}

// Clone returns a deep copy, trail included. The ID is kept.
func (b *Body) Clone() *Body {
	c := *b
	c.Trail = make([]Vec2, len(b.Trail))
	copy(c.Trail, b.Trail)
	return &c
}

func (b Body) String() string {
	return fmt.Sprintf("body %d m=%.3e p=(%.2f, %.2f) v=(%.2f, %.2f)",
		b.ID, b.Mass, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
}

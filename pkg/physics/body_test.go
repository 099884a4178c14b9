package physics

import (
	"image/color"
	"math"
	"testing"
)

var defaultTestColor = color.RGBA{200, 200, 255, 255}

func TestRadiusFor(t *testing.T) {
	cases := []struct {
		mass, density, want float64
	}{
		{100, 1, 10},
		{400, 4, 10},
		{1, 1, MinRadius}, // floor
		{9, 1, MinRadius}, // exactly at the floor
		{16, 1, 4},
	}
	for _, c := range cases {
		if got := RadiusFor(c.mass, c.density); got != c.want {
			t.Errorf("RadiusFor(%v, %v) = %v, want %v", c.mass, c.density, got, c.want)
		}
	}
}

func TestRadiusStaysDerived(t *testing.T) {
	b := NewBody(100, 1, Vec2{}, Vec2{}, defaultTestColor)
	check := func() {
		want := math.Max(MinRadius, math.Sqrt(b.Mass/b.Density))
		if b.Radius != want {
			t.Fatalf("radius %v inconsistent with mass=%v density=%v (want %v)",
				b.Radius, b.Mass, b.Density, want)
		}
	}
	check()
	b.SetMass(900)
	check()
	b.SetDensity(9)
	check()
	b.SetMass(0.5)
	check()
}

func TestNextIDUnique(t *testing.T) {
	seen := map[uint64]bool{}
	for i := 0; i < 1000; i++ {
		id := NextID()
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
}

func TestCloneIsDeep(t *testing.T) {
	b := NewBody(100, 1, Vec2{X: 1}, Vec2{Y: 2}, defaultTestColor)
	b.Trail = []Vec2{{X: 1}, {X: 2}}

	c := b.Clone()
	if c.ID != b.ID {
		t.Fatalf("clone changed id: %d != %d", c.ID, b.ID)
	}
	c.Trail[0].X = 99
	c.Pos.X = 99
	if b.Trail[0].X != 1 || b.Pos.X != 1 {
		t.Fatal("clone shares state with original")
	}
}

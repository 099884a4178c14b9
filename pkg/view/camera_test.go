package view

import (
	"math"
	"testing"

	"github.com/abhishek776655/Orbital-Mind/pkg/physics"
)

func vecApprox(a, b physics.Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestTransformsAreInverses(t *testing.T) {
	cam := &Camera{Offset: physics.Vec2{X: 123, Y: -45}, Zoom: 2.5}
	for _, p := range []physics.Vec2{{}, {X: 10, Y: 20}, {X: -300.5, Y: 77}} {
		back := cam.ScreenToWorld(cam.WorldToScreen(p))
		if !vecApprox(back, p, 1e-9) {
			t.Errorf("round trip of %+v gave %+v", p, back)
		}
	}
}

func TestZoomAtKeepsAnchor(t *testing.T) {
	cam := &Camera{Offset: physics.Vec2{}, Zoom: 1}
	focus := physics.Vec2{X: 400, Y: 300}
	world := cam.ScreenToWorld(focus)

	cam.ZoomAt(2.0, focus)

	if cam.Zoom != 2.0 {
		t.Fatalf("zoom = %v, want 2", cam.Zoom)
	}
	if got := cam.WorldToScreen(world); !vecApprox(got, focus, 1e-9) {
		t.Fatalf("anchor moved: world %+v now at screen %+v", world, got)
	}
}

func TestZoomClamped(t *testing.T) {
	cam := &Camera{Offset: physics.Vec2{}, Zoom: 1}
	cam.ZoomAt(1e9, physics.Vec2{X: 100, Y: 100})
	if cam.Zoom != MaxZoom {
		t.Fatalf("zoom = %v, want clamp at %v", cam.Zoom, MaxZoom)
	}
	cam.ZoomAt(1e-9, physics.Vec2{X: 100, Y: 100})
	if cam.Zoom != MinZoom {
		t.Fatalf("zoom = %v, want clamp at %v", cam.Zoom, MinZoom)
	}
}

func TestPanShiftsOffsetOnly(t *testing.T) {
	cam := &Camera{Offset: physics.Vec2{X: 10, Y: 10}, Zoom: 3}
	cam.Pan(physics.Vec2{X: -5, Y: 20})
	if cam.Offset != (physics.Vec2{X: 5, Y: 30}) {
		t.Fatalf("offset = %+v", cam.Offset)
	}
	if cam.Zoom != 3 {
		t.Fatalf("pan changed zoom: %v", cam.Zoom)
	}
}

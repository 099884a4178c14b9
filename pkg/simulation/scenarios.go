package simulation

import (
	"image/color"
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/abhishek776655/Orbital-Mind/pkg/physics"
)

// Builtin scenario generators. Each call produces fresh bodies with new IDs,
// so loading one always replaces the running universe wholesale.
var Builtins = map[string]func() *Scenario{
	"solar":  Solar,
	"binary": Binary,
	"chaos":  func() *Scenario { return Chaos(30) },
}

// paletteColor picks a distinct hue for body i of n.
func paletteColor(i, n int) color.RGBA {
	h := 360 * float64(i) / float64(n)
	r, g, b := colorful.Hcl(h, 0.6, 0.7).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// Solar is a star with four planets on circular orbits.
func Solar() *Scenario {
	cfg := DefaultConfig()

	star := physics.NewBody(20000, 5, physics.Vec2{}, physics.Vec2{},
		color.RGBA{255, 210, 90, 255})
	star.Fixed = true

	bodies := []*physics.Body{star}
	radii := []float64{120, 200, 300, 430}
	masses := []float64{20, 35, 50, 25}
	for i := range radii {
		v := math.Sqrt(cfg.G * star.Mass / radii[i])
		b := physics.NewBody(masses[i], 2,
			physics.Vec2{X: radii[i]},
			physics.Vec2{Y: v},
			paletteColor(i, len(radii)))
		bodies = append(bodies, b)
	}

	return &Scenario{Name: "solar", Config: cfg, Bodies: bodies}
}

// Binary is two heavy bodies orbiting their barycenter.
func Binary() *Scenario {
	cfg := DefaultConfig()

	const m = 8000.0
	const sep = 240.0
	// circular two-body orbit about the midpoint
	v := 0.5 * math.Sqrt(cfg.G*m/sep)

	a := physics.NewBody(m, 5, physics.Vec2{X: -sep / 2}, physics.Vec2{Y: -v},
		color.RGBA{120, 170, 255, 255})
	b := physics.NewBody(m, 5, physics.Vec2{X: sep / 2}, physics.Vec2{Y: v},
		color.RGBA{255, 140, 120, 255})

	return &Scenario{Name: "binary", Config: cfg, Bodies: []*physics.Body{a, b}}
}

// Chaos scatters n light bodies around a fixed heavy center with roughly
// orbital velocities.
func Chaos(n int) *Scenario {
	cfg := DefaultConfig()

	center := physics.NewBody(30000, 5, physics.Vec2{}, physics.Vec2{},
		color.RGBA{240, 240, 240, 255})
	center.Fixed = true

	bodies := make([]*physics.Body, 0, n+1)
	bodies = append(bodies, center)
	for i := 0; i < n; i++ {
		r := 100 + rand.Float64()*400
		theta := rand.Float64() * 2 * math.Pi
		pos := physics.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}

		v := math.Sqrt(cfg.G*center.Mass/r) * (0.7 + rand.Float64()*0.5)
		vel := physics.Vec2{X: -math.Sin(theta) * v, Y: math.Cos(theta) * v}

		b := physics.NewBody(5+rand.Float64()*30, 2, pos, vel, paletteColor(i, n))
		bodies = append(bodies, b)
	}

	return &Scenario{Name: "chaos", Config: cfg, Bodies: bodies}
}

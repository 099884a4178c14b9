package simulation

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/abhishek776655/Orbital-Mind/pkg/physics"
)

// Config is the full simulation configuration. The integrator reads only
// the physical subset (see Params); the Show*/Wave* fields and TrailFade are
// consumed by the rendering layer.
type Config struct {
	G         float64 `json:"g"`
	TimeScale float64 `json:"timeScale"`
	Softening float64 `json:"softening"`

	TrailLength int  `json:"trailLength"`
	TrailFade   bool `json:"trailFade"`

	// CollisionEnabled is declared for the configuration surface but is
	// currently a no-op: the only collision-related behavior is the
	// minimum-distance force cutoff, applied regardless of this flag.
	CollisionEnabled bool `json:"collisionEnabled"`

	ShowTrails    bool    `json:"showTrails"`
	ShowGrid      bool    `json:"showGrid"`
	WaveAmplitude float64 `json:"waveAmplitude"`
	WaveFrequency float64 `json:"waveFrequency"`
}

func DefaultConfig() Config {
	return Config{
		G:             1000,
		TimeScale:     1,
		Softening:     10,
		TrailLength:   100,
		TrailFade:     true,
		ShowTrails:    true,
		ShowGrid:      true,
		WaveAmplitude: 4,
		WaveFrequency: 0.5,
	}
}

// Params extracts the subset the integration engine reads.
func (c Config) Params() physics.Params {
	return physics.Params{
		G:           c.G,
		TimeScale:   c.TimeScale,
		Softening:   c.Softening,
		TrailLength: c.TrailLength,
	}
}

// ConfigPatch is a partial configuration override supplied by a scenario.
// Nil fields leave the base value untouched.
type ConfigPatch struct {
	G                *float64 `json:"g,omitempty"`
	TimeScale        *float64 `json:"timeScale,omitempty"`
	Softening        *float64 `json:"softening,omitempty"`
	TrailLength      *int     `json:"trailLength,omitempty"`
	TrailFade        *bool    `json:"trailFade,omitempty"`
	CollisionEnabled *bool    `json:"collisionEnabled,omitempty"`
	ShowTrails       *bool    `json:"showTrails,omitempty"`
	ShowGrid         *bool    `json:"showGrid,omitempty"`
	WaveAmplitude    *float64 `json:"waveAmplitude,omitempty"`
	WaveFrequency    *float64 `json:"waveFrequency,omitempty"`
}

func (p *ConfigPatch) Apply(c *Config) {
	if p == nil {
		return
	}
	if p.G != nil {
		c.G = *p.G
	}
	if p.TimeScale != nil {
		c.TimeScale = *p.TimeScale
	}
	if p.Softening != nil {
		c.Softening = *p.Softening
	}
	if p.TrailLength != nil {
		c.TrailLength = *p.TrailLength
	}
	if p.TrailFade != nil {
		c.TrailFade = *p.TrailFade
	}
	if p.CollisionEnabled != nil {
		c.CollisionEnabled = *p.CollisionEnabled
	}
	if p.ShowTrails != nil {
		c.ShowTrails = *p.ShowTrails
	}
	if p.ShowGrid != nil {
		c.ShowGrid = *p.ShowGrid
	}
	if p.WaveAmplitude != nil {
		c.WaveAmplitude = *p.WaveAmplitude
	}
	if p.WaveFrequency != nil {
		c.WaveFrequency = *p.WaveFrequency
	}
}

// BodySpec is the on-disk form of a body in a scenario file.
type BodySpec struct {
	Mass    float64    `json:"mass"`
	Density float64    `json:"density"`
	Pos     [2]float64 `json:"pos"`
	Vel     [2]float64 `json:"vel"`
	Color   string     `json:"color"`
	Fixed   bool       `json:"fixed,omitempty"`
}

// ScenarioFile describes a named universe: bodies plus configuration
// overrides. With AutoOrbit set, bodies without an explicit velocity get a
// circular orbit around the first body.
type ScenarioFile struct {
	Name      string       `json:"name"`
	Config    *ConfigPatch `json:"config,omitempty"`
	Bodies    []BodySpec   `json:"bodies"`
	AutoOrbit bool         `json:"autoOrbit,omitempty"`
}

// Scenario is a ready-to-load initial condition set.
type Scenario struct {
	Name   string
	Config Config
	Bodies []*physics.Body
}

// SetOrbitalVelocities fills in circular orbital velocities around the
// first body for every later body that has none, using the configured G.
func SetOrbitalVelocities(specs []BodySpec, g float64) {
	if len(specs) == 0 {
		return
	}
	central := specs[0]
	for i := 1; i < len(specs); i++ {
		if specs[i].Vel[0] != 0 || specs[i].Vel[1] != 0 {
			continue
		}
		dx := specs[i].Pos[0] - central.Pos[0]
		dy := specs[i].Pos[1] - central.Pos[1]
		r := math.Hypot(dx, dy)
		if r == 0 {
			continue
		}
		v := math.Sqrt(g * central.Mass / r)
		// perpendicular to the radius vector
		specs[i].Vel[0] = -dy / r * v
		specs[i].Vel[1] = dx / r * v
	}
}

// LoadScenarioFile reads a scenario from a JSON file. Every body gets a
// fresh ID, so loading always behaves as a full scenario load.
func LoadScenarioFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	var sf ScenarioFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return sf.Build()
}

// Build resolves a ScenarioFile into bodies and an effective configuration.
func (sf *ScenarioFile) Build() (*Scenario, error) {
	cfg := DefaultConfig()
	sf.Config.Apply(&cfg)

	if sf.AutoOrbit {
		SetOrbitalVelocities(sf.Bodies, cfg.G)
	}

	bodies := make([]*physics.Body, 0, len(sf.Bodies))
	for i, spec := range sf.Bodies {
		if spec.Mass <= 0 {
			return nil, fmt.Errorf("scenario %q: body %d has mass %v", sf.Name, i, spec.Mass)
		}
		density := spec.Density
		if density <= 0 {
			density = 1
		}
		b := physics.NewBody(
			spec.Mass, density,
			physics.Vec2{X: spec.Pos[0], Y: spec.Pos[1]},
			physics.Vec2{X: spec.Vel[0], Y: spec.Vel[1]},
			parseColor(spec.Color),
		)
		b.Fixed = spec.Fixed
		bodies = append(bodies, b)
	}

	return &Scenario{Name: sf.Name, Config: cfg, Bodies: bodies}, nil
}

var defaultBodyColor = color.RGBA{200, 200, 255, 255}

// parseColor parses "#rrggbb"; anything else falls back to the default tint.
func parseColor(hex string) color.RGBA {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return color.RGBA{r, g, b, 255}
		}
	}
	return defaultBodyColor
}

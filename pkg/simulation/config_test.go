package simulation

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff0080", color.RGBA{255, 0, 128, 255}},
		{"#000000", color.RGBA{0, 0, 0, 255}},
		{"not-a-color", defaultBodyColor},
		{"", defaultBodyColor},
		{"#abc", defaultBodyColor},
	}
	for _, c := range cases {
		if got := parseColor(c.in); got != c.want {
			t.Errorf("parseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestConfigPatchAppliesOnlySetFields(t *testing.T) {
	base := DefaultConfig()
	g := 42.0
	trails := false
	patch := &ConfigPatch{G: &g, ShowTrails: &trails}

	cfg := base
	patch.Apply(&cfg)

	if cfg.G != 42 || cfg.ShowTrails {
		t.Fatalf("patched fields wrong: %+v", cfg)
	}
	if cfg.TimeScale != base.TimeScale || cfg.Softening != base.Softening {
		t.Fatalf("unpatched fields changed: %+v", cfg)
	}

	var nilPatch *ConfigPatch
	nilPatch.Apply(&cfg) // must not panic
}

func TestSetOrbitalVelocities(t *testing.T) {
	const g = 100.0
	specs := []BodySpec{
		{Mass: 1000, Pos: [2]float64{0, 0}},
		{Mass: 1, Pos: [2]float64{100, 0}},
		{Mass: 1, Pos: [2]float64{0, 200}, Vel: [2]float64{3, 0}}, // explicit, untouched
	}

	SetOrbitalVelocities(specs, g)

	want := math.Sqrt(g * 1000 / 100)
	if specs[1].Vel[0] != 0 || math.Abs(specs[1].Vel[1]-want) > 1e-12 {
		t.Fatalf("orbital velocity = %v, want (0, %v)", specs[1].Vel, want)
	}
	if specs[2].Vel != [2]float64{3, 0} {
		t.Fatalf("explicit velocity overwritten: %v", specs[2].Vel)
	}
	// speed check: |v| = sqrt(g*M/r) for the perpendicular case too
	if specs[0].Vel != [2]float64{} {
		t.Fatal("central body must not get a velocity")
	}
}

func TestBuildRejectsNonPositiveMass(t *testing.T) {
	sf := &ScenarioFile{Name: "bad", Bodies: []BodySpec{{Mass: 0}}}
	if _, err := sf.Build(); err == nil {
		t.Fatal("want error for mass <= 0")
	}
}

func TestLoadScenarioFile(t *testing.T) {
	src := `{
		"name": "test",
		"config": {"g": 50, "timeScale": 2},
		"autoOrbit": true,
		"bodies": [
			{"mass": 1000, "density": 4, "pos": [0, 0], "color": "#ffcc00", "fixed": true},
			{"mass": 10, "pos": [100, 0], "color": "#3366ff"}
		]
	}`
	path := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	sc, err := LoadScenarioFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if sc.Name != "test" || sc.Config.G != 50 || sc.Config.TimeScale != 2 {
		t.Fatalf("config not applied: %+v", sc.Config)
	}
	if len(sc.Bodies) != 2 {
		t.Fatalf("body count = %d", len(sc.Bodies))
	}

	sun := sc.Bodies[0]
	if !sun.Fixed || sun.ColorC != (color.RGBA{255, 204, 0, 255}) {
		t.Fatalf("first body = %+v", sun)
	}
	if sun.Radius != math.Sqrt(1000.0/4.0) {
		t.Fatalf("radius not derived from mass/density: %v", sun.Radius)
	}

	planet := sc.Bodies[1]
	wantV := math.Sqrt(50 * 1000 / 100)
	if math.Abs(planet.Vel.Y-wantV) > 1e-12 || planet.Vel.X != 0 {
		t.Fatalf("autoOrbit velocity = %+v, want (0, %v)", planet.Vel, wantV)
	}
	if planet.ID == sun.ID {
		t.Fatal("bodies share an id")
	}

	if _, err := LoadScenarioFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestBuiltinsProduceFreshIDs(t *testing.T) {
	a := Solar()
	b := Solar()
	ids := map[uint64]bool{}
	for _, body := range a.Bodies {
		ids[body.ID] = true
	}
	for _, body := range b.Bodies {
		if ids[body.ID] {
			t.Fatalf("builtin scenario reused id %d across loads", body.ID)
		}
	}
	if len(a.Bodies) == 0 || len(Binary().Bodies) != 2 || len(Chaos(7).Bodies) != 8 {
		t.Fatal("unexpected builtin shapes")
	}
}

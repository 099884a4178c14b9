package simulation

import (
	"github.com/abhishek776655/Orbital-Mind/pkg/physics"
)

// Simulator owns the authoritative body list and advances it once per
// animation frame. All mutation happens synchronously on the frame/event
// goroutine; there is no locking because there is no concurrent access.
type Simulator struct {
	Name    string
	Config  Config
	Bodies  []*physics.Body
	Running bool

	// Elapsed drives decorative time-based effects only (grid shimmer);
	// it is not simulation time.
	Elapsed float64

	initial []*physics.Body // snapshot for Reset, deep copies
}

// NewSimulator starts a simulator on the given scenario, running.
func NewSimulator(sc *Scenario) *Simulator {
	s := &Simulator{
		Name:    sc.Name,
		Config:  sc.Config,
		Running: true,
	}
	s.LoadScenario(sc.Bodies)
	return s
}

// Step advances one rendered frame: SubSteps sequential integration steps,
// each folding into the next. A paused simulator does nothing and keeps all
// trail and position state.
func (s *Simulator) Step() {
	if !s.Running {
		return
	}
	s.Elapsed += 0.01 * s.Config.TimeScale
	if len(s.Bodies) == 0 {
		return
	}
	p := s.Config.Params()
	for i := 0; i < physics.SubSteps; i++ {
		s.Bodies = physics.Advance(s.Bodies, p, physics.StepDt)
	}
}

// StepOnce advances a single frame regardless of the running flag
// (single-step while paused).
func (s *Simulator) StepOnce() {
	was := s.Running
	s.Running = true
	s.Step()
	s.Running = was
}

func (s *Simulator) Pause()  { s.Running = false }
func (s *Simulator) Resume() { s.Running = true }

// LoadScenario replaces the body list wholesale, keeping the supplied
// positions, velocities and trails exactly, and snapshots the new list for
// Reset. An empty list clears the universe.
func (s *Simulator) LoadScenario(bodies []*physics.Body) {
	s.Bodies = bodies
	s.initial = snapshot(bodies)
}

// EditBodies copies display/physical parameters (mass, density, color,
// fixed flag; radius re-derived) onto existing bodies by ID, preserving
// each body's current position, velocity and trail so that adjusting a
// property does not reset motion state. Unknown IDs are ignored and an
// empty list is a no-op; clearing the universe is a scenario-level change
// and goes through LoadScenario(nil).
func (s *Simulator) EditBodies(edits []*physics.Body) {
	if len(edits) == 0 {
		return
	}
	byID := make(map[uint64]*physics.Body, len(s.Bodies))
	for _, b := range s.Bodies {
		byID[b.ID] = b
	}
	for _, e := range edits {
		b, ok := byID[e.ID]
		if !ok {
			continue
		}
		b.Mass = e.Mass
		b.Density = e.Density
		b.Radius = physics.RadiusFor(e.Mass, e.Density)
		b.ColorC = e.ColorC
		b.Fixed = e.Fixed
	}
}

// AddBody appends a newly created body (pointer-gesture creation path).
func (s *Simulator) AddBody(b *physics.Body) {
	s.Bodies = append(s.Bodies, b)
}

// ByID returns the live body with the given ID, if present.
func (s *Simulator) ByID(id uint64) (*physics.Body, bool) {
	for _, b := range s.Bodies {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// Reset rebuilds the body list from the initial snapshot. Every body gets a
// fresh ID and an empty trail, so downstream consumers see a scenario load
// rather than a property edit.
func (s *Simulator) Reset() {
	fresh := make([]*physics.Body, len(s.initial))
	for i, b := range s.initial {
		nb := physics.NewBody(b.Mass, b.Density, b.Pos, b.Vel, b.ColorC)
		nb.Fixed = b.Fixed
		fresh[i] = nb
	}
	s.Bodies = fresh
	s.initial = snapshot(fresh)
	s.Elapsed = 0
}

func snapshot(bodies []*physics.Body) []*physics.Body {
	out := make([]*physics.Body, len(bodies))
	for i, b := range bodies {
		out[i] = b.Clone()
	}
	return out
}

package physics

const (
	// SubSteps is the fixed number of integration steps per rendered frame.
	SubSteps = 4

	// StepDt is the timestep handed to Advance for each substep, sized so a
	// frame always covers 1/60s of simulated time regardless of refresh rate.
	StepDt = 1.0 / (60 * SubSteps)

	// trailGapSq is the minimum squared distance between two recorded trail
	// points. Closer samples are dropped (decimation during slow motion).
	trailGapSq = 10.0
)

// Params is the subset of the simulation configuration the integrator reads.
type Params struct {
	G           float64
	TimeScale   float64
	Softening   float64
	TrailLength int
}

// Advance runs one semi-implicit Euler step over all bodies and returns a
// new list; the input bodies are not mutated. Velocity is integrated before
// position, which keeps orbital energy stable where explicit Euler spirals
// outward. A body whose update produces a non-finite position or velocity
// keeps its previous state for this step; the rest of the system is
// unaffected.
func Advance(bodies []*Body, p Params, dt float64) []*Body {
	next := make([]*Body, len(bodies))
	for i, b := range bodies {
		next[i] = b.Clone()
	}

	accumulateForces(next, p.G, p.Softening)

	h := dt * p.TimeScale
	for _, b := range next {
		if b.Fixed {
			b.force = Vec2{}
			continue
		}

		acc := b.force.Mul(1 / b.Mass)
		vel := b.Vel.Add(acc.Mul(h))
		pos := b.Pos.Add(vel.Mul(h))
		b.force = Vec2{}

		if !pos.IsFinite() || !vel.IsFinite() {
			continue
		}
		b.Vel = vel
		b.Pos = pos

		recordTrail(b, p.TrailLength)
	}
	return next
}

// recordTrail appends the body's position if it moved far enough from the
// last sample, then evicts from the front to stay within limit.
func recordTrail(b *Body, limit int) {
	if limit <= 0 {
		b.Trail = nil
		return
	}
	if len(b.Trail) == 0 || b.Trail[len(b.Trail)-1].DistSq(b.Pos) > trailGapSq {
		b.Trail = append(b.Trail, b.Pos)
	}
	if len(b.Trail) > limit {
		b.Trail = b.Trail[len(b.Trail)-limit:]
	}
}

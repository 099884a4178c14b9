package physics

// MinPairDist is the separation below which a pair contributes no force.
// This bounds the force singularity and is the only collision handling
// performed; bodies pass through each other.
const MinPairDist = 1.0

// accumulateForces adds the softened pairwise gravitational forces to every
// body's accumulator. Each unordered pair is visited once and receives
// equal-and-opposite contributions.
func accumulateForces(bodies []*Body, g, softening float64) {
	for i := 0; i < len(bodies)-1; i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]

			delta := b.Pos.Sub(a.Pos)
			r2 := delta.LenSq()
			if r2 < MinPairDist*MinPairDist {
				continue
			}
			r := delta.Len()

			f := g * a.Mass * b.Mass / (r2 + softening*softening)
			df := delta.Mul(f / r)
			a.force = a.force.Add(df)
			b.force = b.force.Sub(df)
		}
	}
}

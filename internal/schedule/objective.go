package schedule

import "github.com/utsdev/horagen/internal/cp"

// ObjectiveWeights tunes the two objective terms: Coverage is earned once
// per scheduled class, Score scales the scheduled capability's
// experience + quality contribution. The baseline sums both unweighted.
type ObjectiveWeights struct {
	Coverage float64
	Score    float64
}

func DefaultWeights() ObjectiveWeights {
	return ObjectiveWeights{Coverage: 1, Score: 1}
}

// BuildObjective attaches the maximization objective: each realized class
// earns Coverage plus Score times the capability's combined rating.
func BuildObjective(model *cp.Model, space *VariableSpace, repo *Repository, weights ObjectiveWeights) {
	for v, key := range space.Keys {
		capability := repo.Capabilities[key.CapabilityID]
		model.SetWeight(v, weights.Coverage+weights.Score*float64(capability.Experience+capability.Quality))
	}
}

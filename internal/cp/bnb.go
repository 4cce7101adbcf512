package cp

import (
	"context"
	"sort"
)

const (
	defaultCheckEvery = 4096
	objectiveEpsilon  = 1e-9
)

// branchAndBoundSolver runs a depth-first branch-and-bound over the boolean
// variable space. Variables are explored in descending objective-weight order
// with the "true" branch first, so the first full descent doubles as a greedy
// incumbent. Search is single-goroutine and deterministic for a fixed model.
type branchAndBoundSolver struct {
	checkEvery int
}

type searchState struct {
	model      *Model
	candidates []int // undecided variables, weight-descending
	value      []int8

	// per-variable constraint membership
	varAMO [][]int
	varALO [][]int
	varSum [][]int

	amoTrue    []int   // true count per at-most-one group
	aloTrue    []int   // true count per at-least-one group
	aloFree    []int   // undecided candidates per at-least-one group
	aloDeficit int     // groups with no true and no free candidate left
	sumUsed    []int64 // accumulated weight per bounded sum

	suffixGain []float64 // optimistic remaining objective from position k on

	objective float64
	best      Solution
	nodes     int
	aborted   bool
}

func (s *branchAndBoundSolver) Solve(ctx context.Context, model *Model) (Solution, error) {
	state, infeasible := newSearchState(model)
	if infeasible {
		return Solution{Status: StatusInfeasible}, nil
	}

	state.search(ctx, s.checkEvery, 0)

	switch {
	case state.aborted && state.best.Values != nil:
		state.best.Status = StatusFeasible
	case state.aborted:
		state.best.Status = StatusUnknown
	case state.best.Values != nil:
		state.best.Status = StatusOptimal
	default:
		state.best.Status = StatusInfeasible
	}
	return state.best, nil
}

func newSearchState(model *Model) (*searchState, bool) {
	n := model.Variables()
	state := &searchState{
		model:   model,
		value:   make([]int8, n),
		varAMO:  make([][]int, n),
		varALO:  make([][]int, n),
		varSum:  make([][]int, n),
		amoTrue: make([]int, len(model.atMostOne)),
		aloTrue: make([]int, len(model.atLeastOne)),
		aloFree: make([]int, len(model.atLeastOne)),
		sumUsed: make([]int64, len(model.sums)),
	}

	for i := range state.value {
		state.value[i] = -1
	}

	// Presolve: a variable whose lone coefficient already exceeds a sum's
	// bound can never be true.
	forced := make([]bool, n)
	copy(forced, model.forcedFalse)
	for _, sum := range model.sums {
		for i, v := range sum.vars {
			if sum.coeffs[i] > sum.bound {
				forced[v] = true
			}
		}
	}

	for g, group := range model.atMostOne {
		for _, v := range group {
			state.varAMO[v] = append(state.varAMO[v], g)
		}
	}
	for g, group := range model.atLeastOne {
		for _, v := range group {
			state.varALO[v] = append(state.varALO[v], g)
		}
	}
	for g, sum := range model.sums {
		for _, v := range sum.vars {
			state.varSum[v] = append(state.varSum[v], g)
		}
	}

	for v := 0; v < n; v++ {
		if forced[v] {
			state.value[v] = 0
			continue
		}
		state.candidates = append(state.candidates, v)
		for _, g := range state.varALO[v] {
			state.aloFree[g]++
		}
	}

	// An at-least-one group with every member forced false is a contradiction.
	for g := range model.atLeastOne {
		if state.aloFree[g] == 0 {
			return nil, true
		}
	}

	sort.SliceStable(state.candidates, func(i, j int) bool {
		return model.weights[state.candidates[i]] > model.weights[state.candidates[j]]
	})

	state.suffixGain = make([]float64, len(state.candidates)+1)
	for k := len(state.candidates) - 1; k >= 0; k-- {
		gain := model.weights[state.candidates[k]]
		if gain < 0 {
			gain = 0
		}
		state.suffixGain[k] = state.suffixGain[k+1] + gain
	}

	return state, false
}

func (state *searchState) search(ctx context.Context, checkEvery, k int) {
	if state.aborted {
		return
	}
	state.nodes++
	if state.nodes%checkEvery == 0 && ctx.Err() != nil {
		state.aborted = true
		return
	}

	// Some at-least-one group can no longer be satisfied on this branch.
	if state.aloDeficit > 0 {
		return
	}

	// Optimistic bound: even taking every remaining variable cannot beat the
	// incumbent.
	if state.best.Values != nil && state.objective+state.suffixGain[k] <= state.best.Objective+objectiveEpsilon {
		return
	}

	if k == len(state.candidates) {
		state.record()
		return
	}

	v := state.candidates[k]

	if state.admitsTrue(v) {
		state.assign(v, 1)
		state.search(ctx, checkEvery, k+1)
		state.unassign(v, 1)
	}

	state.assign(v, 0)
	state.search(ctx, checkEvery, k+1)
	state.unassign(v, 0)
}

func (state *searchState) admitsTrue(v int) bool {
	for _, g := range state.varAMO[v] {
		if state.amoTrue[g] > 0 {
			return false
		}
	}
	for _, g := range state.varSum[v] {
		sum := state.model.sums[g]
		coeff := int64(0)
		for i, sv := range sum.vars {
			if sv == v {
				coeff = sum.coeffs[i]
				break
			}
		}
		if state.sumUsed[g]+coeff > sum.bound {
			return false
		}
	}
	return true
}

func (state *searchState) assign(v int, value int8) {
	state.value[v] = value
	if value == 1 {
		state.objective += state.model.weights[v]
		for _, g := range state.varAMO[v] {
			state.amoTrue[g]++
		}
		for _, g := range state.varALO[v] {
			state.aloTrue[g]++
			state.aloFree[g]--
		}
		for _, g := range state.varSum[v] {
			sum := state.model.sums[g]
			for i, sv := range sum.vars {
				if sv == v {
					state.sumUsed[g] += sum.coeffs[i]
					break
				}
			}
		}
		return
	}
	for _, g := range state.varALO[v] {
		state.aloFree[g]--
		if state.aloTrue[g] == 0 && state.aloFree[g] == 0 {
			state.aloDeficit++
		}
	}
}

func (state *searchState) unassign(v int, value int8) {
	state.value[v] = -1
	if value == 1 {
		state.objective -= state.model.weights[v]
		for _, g := range state.varAMO[v] {
			state.amoTrue[g]--
		}
		for _, g := range state.varALO[v] {
			state.aloTrue[g]--
			state.aloFree[g]++
		}
		for _, g := range state.varSum[v] {
			sum := state.model.sums[g]
			for i, sv := range sum.vars {
				if sv == v {
					state.sumUsed[g] -= sum.coeffs[i]
					break
				}
			}
		}
		return
	}
	for _, g := range state.varALO[v] {
		if state.aloTrue[g] == 0 && state.aloFree[g] == 0 {
			state.aloDeficit--
		}
		state.aloFree[g]++
	}
}

func (state *searchState) record() {
	for g := range state.aloTrue {
		if state.aloTrue[g] == 0 {
			return
		}
	}
	if state.best.Values != nil && state.objective <= state.best.Objective+objectiveEpsilon {
		return
	}
	values := make([]bool, len(state.value))
	for v, val := range state.value {
		values[v] = val == 1
	}
	state.best = Solution{Values: values, Objective: state.objective}
}

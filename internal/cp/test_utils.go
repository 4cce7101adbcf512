package cp

import "math/rand/v2"

// GenerateModel builds a random boolean optimization instance for solver
// tests and benchmarks.
func GenerateModel(variables, atMostOneGroups, sums int) *Model {
	model := NewModel(variables)

	for v := 0; v < variables; v++ {
		model.SetWeight(v, float64(rand.IntN(10)+1))
	}

	pickGroup := func(size int) []int {
		group := make([]int, 0, size)
		seen := make(map[int]bool, size)
		for len(group) < size {
			v := rand.IntN(variables)
			if seen[v] {
				continue
			}
			seen[v] = true
			group = append(group, v)
		}
		return group
	}

	for range atMostOneGroups {
		model.AddAtMostOne(pickGroup(rand.IntN(variables-1) + 2))
	}

	for range sums {
		group := pickGroup(rand.IntN(variables-1) + 2)
		coeffs := make([]int64, len(group))
		for i := range coeffs {
			coeffs[i] = int64(rand.IntN(40) + 10)
		}
		model.AddWeightedSumLE(group, coeffs, int64(rand.IntN(80)+20))
	}

	return model
}

// AssertSolution reports whether an assignment satisfies every constraint of
// the model.
func AssertSolution(model *Model, values []bool) bool {
	if len(values) != model.Variables() {
		return false
	}

	for v, set := range values {
		if set && model.forcedFalse[v] {
			return false
		}
	}

	for _, group := range model.atMostOne {
		count := 0
		for _, v := range group {
			if values[v] {
				count++
			}
		}
		if count > 1 {
			return false
		}
	}

	for _, group := range model.atLeastOne {
		satisfied := false
		for _, v := range group {
			if values[v] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	for _, sum := range model.sums {
		var used int64
		for i, v := range sum.vars {
			if values[v] {
				used += sum.coeffs[i]
			}
		}
		if used > sum.bound {
			return false
		}
	}

	return true
}

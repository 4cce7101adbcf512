package cp

// Model is a boolean constraint-optimization instance. Variables are dense
// indices in [0, Variables()). Constraints are conjunctive: at-most-one and
// at-least-one groups, individually forced-false literals and weighted sums
// bounded from above. The objective is a per-variable weight, maximized over
// the set of true variables.
type Model struct {
	variables   int
	forcedFalse []bool
	atMostOne   [][]int
	atLeastOne  [][]int
	sums        []weightedSum
	weights     []float64
}

type weightedSum struct {
	vars   []int
	coeffs []int64
	bound  int64
}

func NewModel(variables int) *Model {
	return &Model{
		variables:   variables,
		forcedFalse: make([]bool, variables),
		weights:     make([]float64, variables),
	}
}

func (m *Model) Variables() int {
	return m.variables
}

// ForceFalse fixes a variable to false regardless of any other constraint.
func (m *Model) ForceFalse(v int) {
	m.forcedFalse[v] = true
}

func (m *Model) Forced(v int) bool {
	return m.forcedFalse[v]
}

// AddAtMostOne posts that no two variables of the group may be true together.
func (m *Model) AddAtMostOne(vars []int) {
	if len(vars) < 2 {
		return
	}
	m.atMostOne = append(m.atMostOne, vars)
}

// AddAtLeastOne posts that at least one variable of the group must be true.
func (m *Model) AddAtLeastOne(vars []int) {
	if len(vars) == 0 {
		return
	}
	m.atLeastOne = append(m.atLeastOne, vars)
}

// AddWeightedSumLE posts sum(coeffs[i] * vars[i]) <= bound. Coefficient and
// variable slices must have equal length.
func (m *Model) AddWeightedSumLE(vars []int, coeffs []int64, bound int64) {
	if len(vars) == 0 {
		return
	}
	m.sums = append(m.sums, weightedSum{vars: vars, coeffs: coeffs, bound: bound})
}

// SetWeight assigns the objective contribution earned by setting v true.
func (m *Model) SetWeight(v int, w float64) {
	m.weights[v] = w
}

func (m *Model) Weight(v int) float64 {
	return m.weights[v]
}

package cp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveMaximizesWeightUnderAtMostOne(t *testing.T) {
	model := NewModel(3)
	model.AddAtMostOne([]int{0, 1, 2})
	model.SetWeight(0, 1)
	model.SetWeight(1, 5)
	model.SetWeight(2, 3)

	solution, err := NewSolver().Solve(context.Background(), model)

	require.NoError(t, err)
	assert.Equal(t, StatusOptimal, solution.Status)
	assert.Equal(t, []bool{false, true, false}, solution.Values)
	assert.InDelta(t, 5.0, solution.Objective, 1e-9)
}

func TestSolveRespectsWeightedSumBound(t *testing.T) {
	// Both variables together exceed the bound; the heavier one must win.
	model := NewModel(2)
	model.AddWeightedSumLE([]int{0, 1}, []int64{30, 20}, 40)
	model.SetWeight(0, 2)
	model.SetWeight(1, 7)

	solution, err := NewSolver().Solve(context.Background(), model)

	require.NoError(t, err)
	assert.Equal(t, StatusOptimal, solution.Status)
	assert.Equal(t, []bool{false, true}, solution.Values)
	assert.InDelta(t, 7.0, solution.Objective, 1e-9)
}

func TestSolveForcedFalseNeverTrue(t *testing.T) {
	model := NewModel(2)
	model.ForceFalse(0)
	model.SetWeight(0, 100)
	model.SetWeight(1, 1)

	solution, err := NewSolver().Solve(context.Background(), model)

	require.NoError(t, err)
	assert.Equal(t, StatusOptimal, solution.Status)
	assert.Equal(t, []bool{false, true}, solution.Values)
}

func TestSolveInfeasibleWhenDemandCannotBeMet(t *testing.T) {
	// The only demanded variable can never fit its bounded sum.
	model := NewModel(1)
	model.AddWeightedSumLE([]int{0}, []int64{30}, 20)
	model.AddAtLeastOne([]int{0})
	model.SetWeight(0, 1)

	solution, err := NewSolver().Solve(context.Background(), model)

	require.NoError(t, err)
	assert.Equal(t, StatusInfeasible, solution.Status)
	assert.Nil(t, solution.Values)
}

func TestSolveAllFalseIsLegitimateWithoutDemand(t *testing.T) {
	model := NewModel(1)
	model.AddWeightedSumLE([]int{0}, []int64{30}, 20)
	model.SetWeight(0, 1)

	solution, err := NewSolver().Solve(context.Background(), model)

	require.NoError(t, err)
	assert.Equal(t, StatusOptimal, solution.Status)
	assert.Equal(t, []bool{false}, solution.Values)
	assert.Zero(t, solution.Objective)
}

func TestSolveSatisfiesAtLeastOne(t *testing.T) {
	model := NewModel(3)
	model.AddAtLeastOne([]int{0, 1, 2})

	solution, err := NewSolver().Solve(context.Background(), model)

	require.NoError(t, err)
	assert.Equal(t, StatusOptimal, solution.Status)
	assert.True(t, solution.Values[0] || solution.Values[1] || solution.Values[2])
}

func TestSolveCancelledContextReturnsUnknown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	model := NewModel(4)
	for v := 0; v < 4; v++ {
		model.SetWeight(v, 1)
	}

	solver := &branchAndBoundSolver{checkEvery: 1}
	solution, err := solver.Solve(ctx, model)

	require.NoError(t, err)
	assert.Equal(t, StatusUnknown, solution.Status)
	assert.Nil(t, solution.Values)
}

func TestSolveExpiredBudgetReturnsIncumbent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	model := GenerateModel(200, 60, 0)

	// The first greedy descent records an incumbent within ~201 node visits
	// and a complete search needs over 400, so the cancellation check at
	// node 256 always aborts between the two.
	solver := &branchAndBoundSolver{checkEvery: 256}
	solution, err := solver.Solve(ctx, model)

	require.NoError(t, err)
	assert.Equal(t, StatusFeasible, solution.Status)
	assert.True(t, AssertSolution(model, solution.Values))
	assert.Positive(t, solution.Objective)
}

func TestSolveDeterministic(t *testing.T) {
	model := GenerateModel(12, 4, 3)

	first, err := NewSolver().Solve(context.Background(), model)
	require.NoError(t, err)
	second, err := NewSolver().Solve(context.Background(), model)
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Values, second.Values)
	assert.Equal(t, first.Objective, second.Objective)
}

func TestSolveRandomInstancesAreValid(t *testing.T) {
	infeasibleCount := 0
	for range 20 {
		model := GenerateModel(10, 3, 2)

		solution, err := NewSolver().Solve(context.Background(), model)
		require.NoError(t, err)

		if solution.Status == StatusInfeasible {
			infeasibleCount++
			continue
		}
		require.Equal(t, StatusOptimal, solution.Status)
		assert.True(t, AssertSolution(model, solution.Values))
	}
	t.Logf("infeasible instances: %v", infeasibleCount)
}

func BenchmarkSolve(b *testing.B) {
	model := GenerateModel(18, 6, 4)
	solver := NewSolver()
	b.ResetTimer()
	for range b.N {
		if _, err := solver.Solve(context.Background(), model); err != nil {
			b.Fatal(err)
		}
	}
}

package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utsdev/horagen/internal/cp"
)

// contestedSnapshot gives one teacher two capabilities but a single slot and
// room, so the objective decides which subject wins.
func contestedSnapshot() Snapshot {
	return Snapshot{
		Teachers: []Teacher{{ID: 1, Name: "Garcia"}},
		Subjects: []Subject{
			{ID: 10, Code: "MAT101", Name: "Calculus", Enrolled: 30},
			{ID: 11, Code: "FIS201", Name: "Physics", Enrolled: 30},
		},
		Rooms:  []Room{{ID: 20, Code: "A101", Capacity: 40}},
		Slots:  []AvailabilitySlot{{ID: 30, TeacherID: 1, Day: Monday, Start: 360, End: 405}},
		Capabilities: []TeachingCapability{
			{ID: 40, TeacherID: 1, SubjectID: 10, Experience: 2, Quality: 1},
			{ID: 41, TeacherID: 1, SubjectID: 11, Experience: 8, Quality: 5},
		},
	}
}

func TestObjectivePrefersHigherScoredCapability(t *testing.T) {
	scheduler := newTestScheduler(DefaultConfig())

	result := scheduler.Run(context.Background(), contestedSnapshot())

	assert.Equal(t, cp.StatusOptimal, result.Status)
	require.Len(t, result.Classes, 1)
	assert.Equal(t, int64(11), result.Classes[0].SubjectID)
	assert.InDelta(t, 14.0, result.Objective, 1e-9) // coverage 1 + experience 8 + quality 5
}

func TestObjectiveCoverageOnlyWeighting(t *testing.T) {
	scheduler := newTestScheduler(Config{
		MinimumEnrollment: 25,
		Weights:           ObjectiveWeights{Coverage: 1, Score: 0},
	})

	result := scheduler.Run(context.Background(), contestedSnapshot())

	assert.Equal(t, cp.StatusOptimal, result.Status)
	require.Len(t, result.Classes, 1)
	// with the score term disabled, one class is worth exactly one unit
	assert.InDelta(t, 1.0, result.Objective, 1e-9)
}

func TestBuildObjectiveWeights(t *testing.T) {
	repo := BuildRepository(contestedSnapshot())
	space := BuildVariableSpace(repo)
	model := cp.NewModel(space.Size())

	BuildObjective(model, space, repo, ObjectiveWeights{Coverage: 2, Score: 3})

	lowScored := space.Index[VariableKey{SlotID: 30, RoomID: 20, CapabilityID: 40}]
	highScored := space.Index[VariableKey{SlotID: 30, RoomID: 20, CapabilityID: 41}]
	assert.InDelta(t, 2+3*3.0, model.Weight(lowScored), 1e-9)
	assert.InDelta(t, 2+3*13.0, model.Weight(highScored), 1e-9)
}

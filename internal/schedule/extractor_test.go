package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utsdev/horagen/internal/cp"
)

func TestExtractSuppressesBelowThresholdClasses(t *testing.T) {
	// The solver is bypassed: the assignment claims a class for a subject
	// below threshold, and extraction must refuse to surface it.
	repo := BuildRepository(singleClassSnapshot(10, 40))
	space := BuildVariableSpace(repo)
	solution := cp.Solution{Status: cp.StatusFeasible, Values: []bool{true}}

	classes, warnings, errs := extractClasses(solution, space, repo, 25, newGroupLabeler(1))

	assert.Empty(t, classes)
	assert.Empty(t, errs)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "too few students")
	assert.Contains(t, warnings, "no class satisfies every constraint")
}

func TestExtractRecordsResolutionErrors(t *testing.T) {
	repo := BuildRepository(singleClassSnapshot(30, 40))
	space := &VariableSpace{
		Keys:  []VariableKey{{SlotID: 999, RoomID: 20, CapabilityID: 40}},
		Index: map[VariableKey]int{{SlotID: 999, RoomID: 20, CapabilityID: 40}: 0},
	}
	solution := cp.Solution{Status: cp.StatusFeasible, Values: []bool{true}}

	classes, warnings, errs := extractClasses(solution, space, repo, 25, newGroupLabeler(1))

	assert.Empty(t, classes)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], ErrResolution.Error())
	assert.Contains(t, warnings, "no class satisfies every constraint")
}

func TestExtractZeroClassesIsWarningNotError(t *testing.T) {
	repo := BuildRepository(singleClassSnapshot(30, 40))
	space := BuildVariableSpace(repo)
	solution := cp.Solution{Status: cp.StatusOptimal, Values: []bool{false}}

	classes, warnings, errs := extractClasses(solution, space, repo, 25, newGroupLabeler(1))

	assert.Empty(t, classes)
	assert.Empty(t, errs)
	assert.Equal(t, []string{"no class satisfies every constraint"}, warnings)
}

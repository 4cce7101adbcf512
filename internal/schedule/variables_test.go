package schedule

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestBuildVariableSpaceCardinality(t *testing.T) {
	g := NewWithT(t)

	repo := BuildRepository(validSnapshot())
	space := BuildVariableSpace(repo)

	g.Expect(space.Size()).To(Equal(len(repo.SlotIDs) * len(repo.RoomIDs) * len(repo.CapabilityIDs)))
	g.Expect(space.Index).To(HaveLen(space.Size()))

	// no affinity filtering: cross-teacher triples are present too
	g.Expect(space.Index).To(HaveKey(VariableKey{SlotID: 30, RoomID: 20, CapabilityID: 41}))
}

func TestBuildVariableSpaceIdempotent(t *testing.T) {
	g := NewWithT(t)

	snapshot := validSnapshot()
	first := BuildVariableSpace(BuildRepository(snapshot))
	second := BuildVariableSpace(BuildRepository(snapshot))

	g.Expect(first.Keys).To(Equal(second.Keys))
	g.Expect(first.Index).To(Equal(second.Index))
}

func TestBuildVariableSpaceKeysMatchIndex(t *testing.T) {
	g := NewWithT(t)

	space := BuildVariableSpace(BuildRepository(validSnapshot()))
	for v, key := range space.Keys {
		g.Expect(space.Index[key]).To(Equal(v))
	}
}

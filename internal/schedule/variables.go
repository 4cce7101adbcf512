package schedule

// VariableKey identifies one boolean decision: "this capability is taught in
// this room during this slot". Keys are typed ids, never positional row
// indices, so row order in the snapshot carries no meaning.
type VariableKey struct {
	SlotID       int64
	RoomID       int64
	CapabilityID int64
}

// VariableSpace is the full (slot x room x capability) cross product, the
// search space before any constraint prunes it. Keys holds the dense
// variable order handed to the solver; Index maps a key back to its variable.
type VariableSpace struct {
	Keys  []VariableKey
	Index map[VariableKey]int
}

// BuildVariableSpace enumerates every candidate triple. No affinity
// filtering happens here; eligibility is the constraint engine's job. Size
// is O(|slots| x |rooms| x |capabilities|) and governs everything downstream.
func BuildVariableSpace(repo *Repository) *VariableSpace {
	size := len(repo.SlotIDs) * len(repo.RoomIDs) * len(repo.CapabilityIDs)
	space := &VariableSpace{
		Keys:  make([]VariableKey, 0, size),
		Index: make(map[VariableKey]int, size),
	}
	for _, slotID := range repo.SlotIDs {
		for _, roomID := range repo.RoomIDs {
			for _, capabilityID := range repo.CapabilityIDs {
				key := VariableKey{SlotID: slotID, RoomID: roomID, CapabilityID: capabilityID}
				space.Index[key] = len(space.Keys)
				space.Keys = append(space.Keys, key)
			}
		}
	}
	return space
}

func (space *VariableSpace) Size() int {
	return len(space.Keys)
}

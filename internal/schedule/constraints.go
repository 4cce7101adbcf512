package schedule

import (
	"github.com/utsdev/horagen/internal/cp"
)

// Constraint posts one named hard restriction over the variable space.
// Constraints are conjunctive, so order never changes the feasible set; it
// is fixed anyway (structural before weighted) for presolve efficiency.
type Constraint interface {
	Name() string
	Post(model *cp.Model, space *VariableSpace, repo *Repository)
}

// Constraints returns the engine's ordered hard-constraint list.
func Constraints(minimumEnrollment int) []Constraint {
	return []Constraint{
		teacherExclusivity{},
		roomExclusivity{},
		availabilityMatch{},
		capacityBound{},
		minimumEnrollmentRule{threshold: minimumEnrollment},
		coverageDemand{},
	}
}

// slotsOverlap reports whether two availability intervals share wall-clock
// time on the same day. Slots are teacher-specific records, so two distinct
// slots can cover the same interval.
func slotsOverlap(a, b AvailabilitySlot) bool {
	return a.Day == b.Day && a.Start < b.End && b.Start < a.End
}

// teacherExclusivity: a teacher gives at most one class at a time. Covers
// both rooms/capabilities within one slot and the teacher's own overlapping
// slots.
type teacherExclusivity struct{}

func (teacherExclusivity) Name() string { return "teacher exclusivity" }

func (teacherExclusivity) Post(model *cp.Model, space *VariableSpace, repo *Repository) {
	for _, teacherID := range repo.TeacherIDs {
		capabilityIDs := repo.CapabilitiesByTeacher[teacherID]
		slotIDs := repo.SlotsByTeacher[teacherID]
		if len(capabilityIDs) == 0 || len(slotIDs) == 0 {
			continue
		}
		for i, firstID := range slotIDs {
			for _, secondID := range slotIDs[i:] {
				if firstID != secondID && !slotsOverlap(repo.Slots[firstID], repo.Slots[secondID]) {
					continue
				}
				group := make([]int, 0, 2*len(repo.RoomIDs)*len(capabilityIDs))
				for _, roomID := range repo.RoomIDs {
					for _, capabilityID := range capabilityIDs {
						group = append(group, space.Index[VariableKey{firstID, roomID, capabilityID}])
						if secondID != firstID {
							group = append(group, space.Index[VariableKey{secondID, roomID, capabilityID}])
						}
					}
				}
				model.AddAtMostOne(group)
			}
		}
	}
}

// roomExclusivity: a room hosts at most one class at a time. Covers
// capabilities within one slot and any pair of overlapping slots, which may
// belong to different teachers.
type roomExclusivity struct{}

func (roomExclusivity) Name() string { return "room exclusivity" }

func (roomExclusivity) Post(model *cp.Model, space *VariableSpace, repo *Repository) {
	for _, roomID := range repo.RoomIDs {
		for i, firstID := range repo.SlotIDs {
			for _, secondID := range repo.SlotIDs[i:] {
				if firstID != secondID && !slotsOverlap(repo.Slots[firstID], repo.Slots[secondID]) {
					continue
				}
				group := make([]int, 0, 2*len(repo.CapabilityIDs))
				for _, capabilityID := range repo.CapabilityIDs {
					group = append(group, space.Index[VariableKey{firstID, roomID, capabilityID}])
					if secondID != firstID {
						group = append(group, space.Index[VariableKey{secondID, roomID, capabilityID}])
					}
				}
				model.AddAtMostOne(group)
			}
		}
	}
}

// availabilityMatch: a capability may only be realized in a slot belonging
// to its own teacher; every cross-teacher variable is forced false.
type availabilityMatch struct{}

func (availabilityMatch) Name() string { return "availability match" }

func (availabilityMatch) Post(model *cp.Model, space *VariableSpace, repo *Repository) {
	for _, slotID := range repo.SlotIDs {
		slot := repo.Slots[slotID]
		for _, capabilityID := range repo.CapabilityIDs {
			if repo.Capabilities[capabilityID].TeacherID == slot.TeacherID {
				continue
			}
			for _, roomID := range repo.RoomIDs {
				model.ForceFalse(space.Index[VariableKey{slotID, roomID, capabilityID}])
			}
		}
	}
}

// capacityBound: for every slot and room, the summed enrollment of realized
// capabilities may not exceed the room capacity.
type capacityBound struct{}

func (capacityBound) Name() string { return "capacity bound" }

func (capacityBound) Post(model *cp.Model, space *VariableSpace, repo *Repository) {
	for _, slotID := range repo.SlotIDs {
		for _, roomID := range repo.RoomIDs {
			room := repo.Rooms[roomID]
			vars := make([]int, 0, len(repo.CapabilityIDs))
			coeffs := make([]int64, 0, len(repo.CapabilityIDs))
			for _, capabilityID := range repo.CapabilityIDs {
				subject := repo.Subjects[repo.Capabilities[capabilityID].SubjectID]
				vars = append(vars, space.Index[VariableKey{slotID, roomID, capabilityID}])
				coeffs = append(coeffs, int64(subject.Enrolled))
			}
			model.AddWeightedSumLE(vars, coeffs, int64(room.Capacity))
		}
	}
}

// minimumEnrollmentRule: a subject below the enrollment threshold never forms
// a class. Applied before the objective is evaluated, so the solver never
// pays for forbidden assignments.
type minimumEnrollmentRule struct {
	threshold int
}

func (minimumEnrollmentRule) Name() string { return "minimum enrollment" }

func (rule minimumEnrollmentRule) Post(model *cp.Model, space *VariableSpace, repo *Repository) {
	for _, capabilityID := range repo.CapabilityIDs {
		subject := repo.Subjects[repo.Capabilities[capabilityID].SubjectID]
		if subject.Enrolled >= rule.threshold {
			continue
		}
		for _, slotID := range repo.SlotIDs {
			for _, roomID := range repo.RoomIDs {
				model.ForceFalse(space.Index[VariableKey{slotID, roomID, capabilityID}])
			}
		}
	}
}

// coverageDemand: if any candidate survived the eligibility pruning above,
// require at least one class. This separates a genuinely unsolvable model
// (eligible candidates exist but none fits, e.g. under capacity) from the
// degenerate all-false solution when nothing was eligible to begin with.
// Must be posted last: it reads the forced-false set left by the others.
type coverageDemand struct{}

func (coverageDemand) Name() string { return "coverage demand" }

func (coverageDemand) Post(model *cp.Model, space *VariableSpace, repo *Repository) {
	eligible := make([]int, 0, space.Size())
	for v := range space.Keys {
		if !model.Forced(v) {
			eligible = append(eligible, v)
		}
	}
	if len(eligible) > 0 {
		model.AddAtLeastOne(eligible)
	}
}

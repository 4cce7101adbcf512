package schedule

import (
	"fmt"

	"github.com/utsdev/horagen/internal/cp"
)

// extractClasses turns a feasible assignment into GeneratedClass records.
// Every true variable is resolved against the repository and re-checked
// against the minimum-enrollment rule; an upstream bug must never surface a
// class below threshold. Resolution failures are recorded as errors, never
// silently dropped.
func extractClasses(
	solution cp.Solution,
	space *VariableSpace,
	repo *Repository,
	minimumEnrollment int,
	labeler *groupLabeler,
) (classes []GeneratedClass, warnings []string, errs []string) {
	for v, set := range solution.Values {
		if !set {
			continue
		}
		key := space.Keys[v]

		slot, slotOK := repo.Slots[key.SlotID]
		room, roomOK := repo.Rooms[key.RoomID]
		capability, capabilityOK := repo.Capabilities[key.CapabilityID]
		if !slotOK || !roomOK || !capabilityOK {
			errs = append(errs, fmt.Sprintf("%v: slot=%d room=%d capability=%d", ErrResolution, key.SlotID, key.RoomID, key.CapabilityID))
			continue
		}
		subject, subjectOK := repo.Subjects[capability.SubjectID]
		teacher, teacherOK := repo.Teachers[capability.TeacherID]
		if !subjectOK || !teacherOK {
			errs = append(errs, fmt.Sprintf("%v: capability %d references subject=%d teacher=%d", ErrResolution, capability.ID, capability.SubjectID, capability.TeacherID))
			continue
		}

		if subject.Enrolled < minimumEnrollment {
			warnings = append(warnings, fmt.Sprintf("subject %s has too few students (%d) for a class", subject.Name, subject.Enrolled))
			continue
		}

		group, err := labeler.Next()
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		classes = append(classes, GeneratedClass{
			Group:     group,
			Day:       slot.Day,
			Start:     slot.Start,
			End:       slot.End,
			Enrolled:  subject.Enrolled,
			SubjectID: subject.ID,
			RoomID:    room.ID,
			TeacherID: teacher.ID,
		})
	}

	if len(classes) == 0 {
		warnings = append(warnings, "no class satisfies every constraint")
	}
	return classes, warnings, errs
}

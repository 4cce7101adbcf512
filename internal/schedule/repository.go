package schedule

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Repository holds typed, indexed views over one snapshot. Records failing
// validation or referencing a nonexistent foreign id are dropped with a
// warning; a single bad record never blocks the run.
type Repository struct {
	Teachers     map[int64]Teacher
	Subjects     map[int64]Subject
	Rooms        map[int64]Room
	Slots        map[int64]AvailabilitySlot
	Capabilities map[int64]TeachingCapability

	CapabilitiesByTeacher map[int64][]int64
	CapabilitiesBySubject map[int64][]int64
	SlotsByTeacher        map[int64][]int64

	// id slices sorted ascending, so iteration over the repository and
	// everything derived from it is deterministic.
	TeacherIDs    []int64
	SlotIDs       []int64
	RoomIDs       []int64
	CapabilityIDs []int64

	Warnings []string
}

func BuildRepository(snapshot Snapshot) *Repository {
	validate := validator.New()
	repo := &Repository{
		Teachers:              map[int64]Teacher{},
		Subjects:              map[int64]Subject{},
		Rooms:                 map[int64]Room{},
		Slots:                 map[int64]AvailabilitySlot{},
		Capabilities:          map[int64]TeachingCapability{},
		CapabilitiesByTeacher: map[int64][]int64{},
		CapabilitiesBySubject: map[int64][]int64{},
		SlotsByTeacher:        map[int64][]int64{},
	}

	for _, teacher := range snapshot.Teachers {
		if err := validate.Struct(teacher); err != nil {
			repo.drop("teacher", teacher.ID, err)
			continue
		}
		if _, exists := repo.Teachers[teacher.ID]; exists {
			repo.drop("teacher", teacher.ID, fmt.Errorf("duplicate id"))
			continue
		}
		repo.Teachers[teacher.ID] = teacher
	}

	for _, subject := range snapshot.Subjects {
		if err := validate.Struct(subject); err != nil {
			repo.drop("subject", subject.ID, err)
			continue
		}
		if _, exists := repo.Subjects[subject.ID]; exists {
			repo.drop("subject", subject.ID, fmt.Errorf("duplicate id"))
			continue
		}
		repo.Subjects[subject.ID] = subject
	}

	for _, room := range snapshot.Rooms {
		if err := validate.Struct(room); err != nil {
			repo.drop("room", room.ID, err)
			continue
		}
		if _, exists := repo.Rooms[room.ID]; exists {
			repo.drop("room", room.ID, fmt.Errorf("duplicate id"))
			continue
		}
		repo.Rooms[room.ID] = room
	}

	for _, slot := range snapshot.Slots {
		if err := validate.Struct(slot); err != nil {
			repo.drop("availability slot", slot.ID, err)
			continue
		}
		if slot.End <= slot.Start {
			repo.drop("availability slot", slot.ID, fmt.Errorf("end %v not after start %v", slot.End, slot.Start))
			continue
		}
		if _, ok := repo.Teachers[slot.TeacherID]; !ok {
			repo.drop("availability slot", slot.ID, fmt.Errorf("references nonexistent teacher %d", slot.TeacherID))
			continue
		}
		if _, exists := repo.Slots[slot.ID]; exists {
			repo.drop("availability slot", slot.ID, fmt.Errorf("duplicate id"))
			continue
		}
		repo.Slots[slot.ID] = slot
		repo.SlotsByTeacher[slot.TeacherID] = append(repo.SlotsByTeacher[slot.TeacherID], slot.ID)
	}

	for _, capability := range snapshot.Capabilities {
		if err := validate.Struct(capability); err != nil {
			repo.drop("capability", capability.ID, err)
			continue
		}
		if _, ok := repo.Teachers[capability.TeacherID]; !ok {
			repo.drop("capability", capability.ID, fmt.Errorf("references nonexistent teacher %d", capability.TeacherID))
			continue
		}
		if _, ok := repo.Subjects[capability.SubjectID]; !ok {
			repo.drop("capability", capability.ID, fmt.Errorf("references nonexistent subject %d", capability.SubjectID))
			continue
		}
		if _, exists := repo.Capabilities[capability.ID]; exists {
			repo.drop("capability", capability.ID, fmt.Errorf("duplicate id"))
			continue
		}
		repo.Capabilities[capability.ID] = capability
		repo.CapabilitiesByTeacher[capability.TeacherID] = append(repo.CapabilitiesByTeacher[capability.TeacherID], capability.ID)
		repo.CapabilitiesBySubject[capability.SubjectID] = append(repo.CapabilitiesBySubject[capability.SubjectID], capability.ID)
	}

	repo.TeacherIDs = sortedKeys(repo.Teachers)
	repo.SlotIDs = sortedKeys(repo.Slots)
	repo.RoomIDs = sortedKeys(repo.Rooms)
	repo.CapabilityIDs = sortedKeys(repo.Capabilities)
	for _, ids := range repo.CapabilitiesByTeacher {
		slices.Sort(ids)
	}
	for _, ids := range repo.CapabilitiesBySubject {
		slices.Sort(ids)
	}
	for _, ids := range repo.SlotsByTeacher {
		slices.Sort(ids)
	}

	return repo
}

func (repo *Repository) drop(kind string, id int64, err error) {
	repo.Warnings = append(repo.Warnings, fmt.Sprintf("%v: %v %d dropped: %v", ErrMalformedInput, kind, id, err))
}

func sortedKeys[V any](records map[int64]V) []int64 {
	keys := lo.Keys(records)
	slices.Sort(keys)
	return keys
}

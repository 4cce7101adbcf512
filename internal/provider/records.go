package provider

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/utsdev/horagen/internal/schedule"
)

// Raw wire records as the data service delivers them. Numeric fields may
// arrive as strings; they are converted exactly once here, weakly typed,
// instead of being coerced ad hoc downstream.
type teacherRecord struct {
	ID           int64  `mapstructure:"id"`
	Name         string `mapstructure:"name"`
	ContractType string `mapstructure:"contract_type"`
	Status       string `mapstructure:"status"`
}

type subjectRecord struct {
	ID       int64  `mapstructure:"id"`
	Code     string `mapstructure:"code"`
	Name     string `mapstructure:"name"`
	Enrolled int    `mapstructure:"enrolled_count"`
	Blocks   int    `mapstructure:"blocks_required"`
}

type roomRecord struct {
	ID       int64  `mapstructure:"id"`
	Code     string `mapstructure:"code"`
	Capacity int    `mapstructure:"capacity"`
	Kind     string `mapstructure:"kind"`
}

type slotRecord struct {
	ID        int64  `mapstructure:"id"`
	TeacherID int64  `mapstructure:"teacher_id"`
	Day       string `mapstructure:"day"`
	Start     string `mapstructure:"start_time"`
	End       string `mapstructure:"end_time"`
}

type capabilityRecord struct {
	ID         int64 `mapstructure:"id"`
	TeacherID  int64 `mapstructure:"teacher_id"`
	SubjectID  int64 `mapstructure:"subject_id"`
	Experience int   `mapstructure:"experience_score"`
	Quality    int   `mapstructure:"quality_score"`
}

func decodeRecord(raw map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// decodeSnapshot converts raw collections into a typed snapshot. A record
// that cannot be decoded or whose day/time fields do not parse is dropped
// with a warning, in line with the engine's row-level error policy.
func decodeSnapshot(raw map[string][]map[string]any) (schedule.Snapshot, []string) {
	var snapshot schedule.Snapshot
	var warnings []string

	for _, record := range raw[collectionTeachers] {
		var teacher teacherRecord
		if err := decodeRecord(record, &teacher); err != nil {
			warnings = append(warnings, fmt.Sprintf("teacher record dropped: %v", err))
			continue
		}
		snapshot.Teachers = append(snapshot.Teachers, schedule.Teacher{
			ID:           teacher.ID,
			Name:         teacher.Name,
			ContractType: teacher.ContractType,
			Status:       teacher.Status,
		})
	}

	for _, record := range raw[collectionSubjects] {
		var subject subjectRecord
		if err := decodeRecord(record, &subject); err != nil {
			warnings = append(warnings, fmt.Sprintf("subject record dropped: %v", err))
			continue
		}
		snapshot.Subjects = append(snapshot.Subjects, schedule.Subject{
			ID:       subject.ID,
			Code:     subject.Code,
			Name:     subject.Name,
			Enrolled: subject.Enrolled,
			Blocks:   subject.Blocks,
		})
	}

	for _, record := range raw[collectionRooms] {
		var room roomRecord
		if err := decodeRecord(record, &room); err != nil {
			warnings = append(warnings, fmt.Sprintf("room record dropped: %v", err))
			continue
		}
		snapshot.Rooms = append(snapshot.Rooms, schedule.Room{
			ID:       room.ID,
			Code:     room.Code,
			Capacity: room.Capacity,
			Kind:     room.Kind,
		})
	}

	for _, record := range raw[collectionAvailability] {
		var slot slotRecord
		if err := decodeRecord(record, &slot); err != nil {
			warnings = append(warnings, fmt.Sprintf("availability record dropped: %v", err))
			continue
		}
		day, err := schedule.ParseDay(slot.Day)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("availability record %d dropped: %v", slot.ID, err))
			continue
		}
		start, err := schedule.ParseClock(slot.Start)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("availability record %d dropped: %v", slot.ID, err))
			continue
		}
		end, err := schedule.ParseClock(slot.End)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("availability record %d dropped: %v", slot.ID, err))
			continue
		}
		snapshot.Slots = append(snapshot.Slots, schedule.AvailabilitySlot{
			ID:        slot.ID,
			TeacherID: slot.TeacherID,
			Day:       day,
			Start:     start,
			End:       end,
		})
	}

	for _, record := range raw[collectionCapabilities] {
		var capability capabilityRecord
		if err := decodeRecord(record, &capability); err != nil {
			warnings = append(warnings, fmt.Sprintf("capability record dropped: %v", err))
			continue
		}
		snapshot.Capabilities = append(snapshot.Capabilities, schedule.TeachingCapability{
			ID:         capability.ID,
			TeacherID:  capability.TeacherID,
			SubjectID:  capability.SubjectID,
			Experience: capability.Experience,
			Quality:    capability.Quality,
		})
	}

	return snapshot, warnings
}

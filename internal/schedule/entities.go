package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Day is a day of the week, Monday = 0.
type Day uint8

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d Day) String() string {
	if int(d) < len(dayNames) {
		return dayNames[d]
	}
	return fmt.Sprintf("Day(%d)", uint8(d))
}

func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func ParseDay(name string) (Day, error) {
	for i, candidate := range dayNames {
		if strings.EqualFold(name, candidate) {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("unknown day %q", name)
}

// ClockTime is a wall-clock time of day in minutes since midnight,
// comparable within a day.
type ClockTime int

func ParseClock(value string) (ClockTime, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", value, err)
	}
	return ClockTime(parsed.Hour()*60 + parsed.Minute()), nil
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

type Teacher struct {
	ID           int64  `validate:"gte=0"`
	Name         string `validate:"required"`
	ContractType string
	Status       string
}

type Subject struct {
	ID       int64  `validate:"gte=0"`
	Code     string `validate:"required"`
	Name     string `validate:"required"`
	Enrolled int    `validate:"gte=0"`
	Blocks   int    `validate:"gte=0"`
}

type Room struct {
	ID       int64  `validate:"gte=0"`
	Code     string `validate:"required"`
	Capacity int    `validate:"gte=0"`
	Kind     string
}

// AvailabilitySlot is one interval during which a specific teacher could
// teach. Slots arrive paired as consecutive blocks upstream, but each is
// treated as independent here.
type AvailabilitySlot struct {
	ID        int64 `validate:"gte=0"`
	TeacherID int64 `validate:"gte=0"`
	Day       Day   `validate:"lte=6"`
	Start     ClockTime
	End       ClockTime
}

// TeachingCapability links a teacher to a subject they may teach, scored by
// experience and student rating.
type TeachingCapability struct {
	ID         int64 `validate:"gte=0"`
	TeacherID  int64 `validate:"gte=0"`
	SubjectID  int64 `validate:"gte=0"`
	Experience int   `validate:"gte=0"`
	Quality    int   `validate:"gte=0"`
}

// Snapshot is the per-run input: the five collections supplied by the data
// provider. Nothing inside the engine outlives the run that consumed it.
type Snapshot struct {
	Teachers     []Teacher
	Subjects     []Subject
	Rooms        []Room
	Slots        []AvailabilitySlot
	Capabilities []TeachingCapability
}

// GeneratedClass is the externally visible output record.
type GeneratedClass struct {
	Group     string    `json:"group"`
	Day       Day       `json:"day"`
	Start     ClockTime `json:"start_time"`
	End       ClockTime `json:"end_time"`
	Enrolled  int       `json:"enrolled_count"`
	SubjectID int64     `json:"subject_id"`
	RoomID    int64     `json:"room_id"`
	TeacherID int64     `json:"teacher_id"`
}

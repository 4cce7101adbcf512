// Command seed populates the data service with synthetic teachers, subjects,
// rooms, availability slots and teaching capabilities, so the engine can be
// exercised without institutional data.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

const blockMinutes = 45

var startTimes = []string{
	"06:00", "06:45", "07:30", "08:15", "09:00", "09:45", "10:30", "11:15",
	"12:00", "12:45", "13:30", "14:15", "15:00", "15:45", "16:30", "17:15",
	"18:30", "20:15",
}

var days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var contractTypes = []string{"adjunct", "tenured", "full-time"}

type client struct {
	base string
	http *http.Client
}

func (c *client) post(collection string, payload any) (int64, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}
	response, err := c.http.Post(c.base+"/"+collection, "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("unexpected status %d", response.StatusCode)
	}
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(response.Body).Decode(&created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func main() {
	var (
		baseURL      = flag.String("base-url", "http://localhost:8000/api", "data service base URL")
		teachers     = flag.Int("teachers", 100, "number of teachers to create")
		subjects     = flag.Int("subjects", 100, "number of subjects to create")
		rooms        = flag.Int("rooms", 100, "number of rooms to create")
		slotPairs    = flag.Int("slot-pairs", 2, "consecutive-block availability pairs per teacher")
		capabilities = flag.Int("capabilities", 300, "teacher-subject capability links to attempt")
		seed         = flag.Uint64("seed", 0, "faker seed, 0 for random")
	)
	flag.Parse()

	faker := gofakeit.New(*seed)
	c := &client{base: strings.TrimRight(*baseURL, "/"), http: &http.Client{Timeout: 10 * time.Second}}

	subjectIDs := seedSubjects(c, faker, *subjects)
	teacherIDs := seedTeachers(c, faker, *teachers)
	seedRooms(c, faker, *rooms)
	seedAvailability(c, faker, teacherIDs, *slotPairs)
	seedCapabilities(c, faker, teacherIDs, subjectIDs, *capabilities)
}

func seedTeachers(c *client, faker *gofakeit.Faker, count int) []int64 {
	ids := make([]int64, 0, count)
	for range count {
		id, err := c.post("teachers", map[string]any{
			"name":          faker.Name(),
			"contract_type": contractTypes[faker.IntN(len(contractTypes))],
			"status":        faker.RandomString([]string{"active", "inactive", "pending"}),
		})
		if err != nil {
			log.Printf("cannot create teacher: %v", err)
			continue
		}
		ids = append(ids, id)
	}
	log.Printf("teachers created: %d", len(ids))
	return ids
}

func seedSubjects(c *client, faker *gofakeit.Faker, count int) []int64 {
	ids := make([]int64, 0, count)
	for range count {
		id, err := c.post("subjects", map[string]any{
			"code":            strings.ToUpper(faker.LetterN(3)) + faker.DigitN(3),
			"name":            faker.Word(),
			"enrolled_count":  faker.Number(10, 45),
			"blocks_required": faker.Number(1, 3),
		})
		if err != nil {
			log.Printf("cannot create subject: %v", err)
			continue
		}
		ids = append(ids, id)
	}
	log.Printf("subjects created: %d", len(ids))
	return ids
}

func seedRooms(c *client, faker *gofakeit.Faker, count int) {
	created := 0
	for range count {
		_, err := c.post("rooms", map[string]any{
			"code":     strings.ToUpper(faker.LetterN(1)) + faker.DigitN(3),
			"capacity": faker.Number(20, 100),
			"kind":     faker.RandomString([]string{"lecture", "laboratory"}),
		})
		if err != nil {
			log.Printf("cannot create room: %v", err)
			continue
		}
		created++
	}
	log.Printf("rooms created: %d", created)
}

// seedAvailability creates pairs of consecutive 45-minute blocks per teacher,
// mirroring how the institution requests availability.
func seedAvailability(c *client, faker *gofakeit.Faker, teacherIDs []int64, pairs int) {
	created := 0
	for _, teacherID := range teacherIDs {
		for range pairs {
			day := days[faker.IntN(len(days))]
			start, err := time.Parse("15:04", startTimes[faker.IntN(len(startTimes))])
			if err != nil {
				continue
			}
			for block := range 2 {
				blockStart := start.Add(time.Duration(block*blockMinutes) * time.Minute)
				blockEnd := blockStart.Add(blockMinutes * time.Minute)
				_, err := c.post("availability", map[string]any{
					"teacher_id": teacherID,
					"day":        day,
					"start_time": blockStart.Format("15:04"),
					"end_time":   blockEnd.Format("15:04"),
				})
				if err != nil {
					log.Printf("cannot create availability slot: %v", err)
					continue
				}
				created++
			}
		}
	}
	log.Printf("availability slots created: %d", created)
}

// seedCapabilities links teachers to subjects, at most three per teacher.
func seedCapabilities(c *client, faker *gofakeit.Faker, teacherIDs, subjectIDs []int64, attempts int) {
	if len(teacherIDs) == 0 || len(subjectIDs) == 0 {
		log.Print("no teachers or subjects, skipping capabilities")
		return
	}
	perTeacher := make(map[int64]int, len(teacherIDs))
	created := 0
	for range attempts {
		teacherID := teacherIDs[faker.IntN(len(teacherIDs))]
		if perTeacher[teacherID] >= 3 {
			continue
		}
		_, err := c.post("capabilities", map[string]any{
			"teacher_id":       teacherID,
			"subject_id":       subjectIDs[faker.IntN(len(subjectIDs))],
			"experience_score": faker.Number(1, 10),
			"quality_score":    faker.Number(1, 5),
		})
		if err != nil {
			log.Printf("cannot create capability: %v", err)
			continue
		}
		perTeacher[teacherID]++
		created++
	}
	log.Printf("capabilities created: %d", created)
}

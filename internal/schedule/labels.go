package schedule

import (
	"fmt"
	"math/rand"
)

const labelCapacity = 26 * 26 * 100 // two letters, two digits

// groupLabeler draws human-readable group labels ("two letters + two
// digits") without repeating one within a run.
type groupLabeler struct {
	rng  *rand.Rand
	used map[string]struct{}
}

func newGroupLabeler(seed int64) *groupLabeler {
	return &groupLabeler{
		rng:  rand.New(rand.NewSource(seed)),
		used: make(map[string]struct{}),
	}
}

func (labeler *groupLabeler) Next() (string, error) {
	if len(labeler.used) >= labelCapacity {
		return "", fmt.Errorf("group label space exhausted (%d labels)", labelCapacity)
	}
	for {
		label := fmt.Sprintf("%c%c%02d",
			'A'+labeler.rng.Intn(26),
			'A'+labeler.rng.Intn(26),
			labeler.rng.Intn(100),
		)
		if _, taken := labeler.used[label]; taken {
			continue
		}
		labeler.used[label] = struct{}{}
		return label, nil
	}
}

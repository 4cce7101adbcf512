package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    ClockTime
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "06:45", want: 405},
		{in: "23:59", want: 23*60 + 59},
		{in: "06:45:30", wantErr: true},
		{in: "06:45xyz", wantErr: true},
		{in: "24:00", wantErr: true},
		{in: "06:60", wantErr: true},
		{in: "6h45", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("wednesday")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, day)

	_, err = ParseDay("Someday")
	assert.Error(t, err)
}

package sink

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utsdev/horagen/internal/schedule"
)

func sampleClass() schedule.GeneratedClass {
	return schedule.GeneratedClass{
		Group:     "AB07",
		Day:       schedule.Monday,
		Start:     360,
		End:       405,
		Enrolled:  30,
		SubjectID: 10,
		RoomID:    20,
		TeacherID: 1,
	}
}

func TestCreateClassPostsWireFormat(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/classes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	err := client.CreateClass(context.Background(), sampleClass())

	require.NoError(t, err)
	assert.Equal(t, "AB07", received["group"])
	assert.Equal(t, "Monday", received["day"])
	assert.Equal(t, "06:00", received["start_time"])
	assert.Equal(t, "06:45", received["end_time"])
	assert.Equal(t, float64(30), received["enrolled_count"])
	assert.Equal(t, float64(10), received["subject_id"])
	assert.Equal(t, float64(20), received["room_id"])
	assert.Equal(t, float64(1), received["teacher_id"])
}

func TestCreateClassRejectedByService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "validation failed", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	err := client.CreateClass(context.Background(), sampleClass())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

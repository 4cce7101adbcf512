package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/utsdev/horagen/internal/schedule"
)

const (
	collectionTeachers     = "teachers"
	collectionSubjects     = "subjects"
	collectionRooms        = "rooms"
	collectionAvailability = "availability"
	collectionCapabilities = "capabilities"
)

var collections = []string{
	collectionTeachers,
	collectionSubjects,
	collectionRooms,
	collectionAvailability,
	collectionCapabilities,
}

// Provider supplies the five input collections for one scheduling run,
// along with warnings for records it had to drop.
type Provider interface {
	Snapshot(ctx context.Context) (schedule.Snapshot, []string, error)
}

// Client fetches the collections from a remote data service.
type Client struct {
	base string
	http *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), http: httpClient}
}

func (c *Client) Snapshot(ctx context.Context) (schedule.Snapshot, []string, error) {
	raw := make(map[string][]map[string]any, len(collections))
	for _, collection := range collections {
		records, err := c.fetch(ctx, collection)
		if err != nil {
			return schedule.Snapshot{}, nil, fmt.Errorf("fetch %s: %w", collection, err)
		}
		raw[collection] = records
	}
	snapshot, warnings := decodeSnapshot(raw)
	return snapshot, warnings, nil
}

func (c *Client) fetch(ctx context.Context, collection string) ([]map[string]any, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/"+collection, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.http.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", response.StatusCode, body)
	}

	var records []map[string]any
	if err := json.NewDecoder(response.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return records, nil
}

// FileProvider reads a snapshot from a JSON file holding the five
// collections under their wire names, useful for offline runs and fixtures.
type FileProvider struct {
	Path string
}

func (p FileProvider) Snapshot(_ context.Context) (schedule.Snapshot, []string, error) {
	content, err := os.ReadFile(p.Path)
	if err != nil {
		return schedule.Snapshot{}, nil, err
	}
	var raw map[string][]map[string]any
	if err := json.Unmarshal(content, &raw); err != nil {
		return schedule.Snapshot{}, nil, fmt.Errorf("parse snapshot file: %w", err)
	}
	snapshot, warnings := decodeSnapshot(raw)
	return snapshot, warnings, nil
}

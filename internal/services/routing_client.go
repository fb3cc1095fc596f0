package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"mumtrails/internal/models/request_models"
)

// RouteTables holds the raw matrices from the routing service. Cells are
// pointers: a nil cell means that pair could not be routed and the caller
// should fall back to the heuristic for that leg only.
type RouteTables struct {
	Durations [][]*float64 `json:"durations"`
	Distances [][]*float64 `json:"distances"`
}

// RouteTableClient fetches duration/distance matrices for a coordinate
// sequence. Implementations must degrade by returning an error; they never
// block past their timeout.
type RouteTableClient interface {
	Table(ctx context.Context, coords []request_models.Location) (*RouteTables, error)
}

// --------- in-memory table cache keyed by the coordinate string ---------

type tableCacheEntry struct {
	tables    *RouteTables
	expiresAt time.Time
}

type tableCache struct {
	mu    sync.RWMutex
	store map[string]tableCacheEntry
}

func newTableCache() *tableCache {
	return &tableCache{store: make(map[string]tableCacheEntry)}
}

func (c *tableCache) Get(key string) (*RouteTables, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[key]
	if !ok || time.Now().After(it.expiresAt) {
		return nil, false
	}
	return it.tables, true
}

func (c *tableCache) Set(key string, tables *RouteTables, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = tableCacheEntry{tables: tables, expiresAt: time.Now().Add(ttl)}
}

// ------------------ OSRM table client ------------------

type OSRMTableClient struct {
	HTTP       *http.Client
	BaseURL    string
	Profile    string
	Cache      *tableCache
	DefaultTTL time.Duration
}

func NewOSRMTableClient(baseURL string) *OSRMTableClient {
	return &OSRMTableClient{
		HTTP:       &http.Client{Timeout: 2 * time.Second},
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Profile:    "driving",
		Cache:      newTableCache(),
		DefaultTTL: 10 * time.Minute,
	}
}

func coordString(coords []request_models.Location) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = fmt.Sprintf("%f,%f", c.Lng, c.Lat)
	}
	return strings.Join(parts, ";")
}

func (c *OSRMTableClient) Table(ctx context.Context, coords []request_models.Location) (*RouteTables, error) {
	coordStr := coordString(coords)
	if tables, ok := c.Cache.Get(coordStr); ok {
		return tables, nil
	}

	url := fmt.Sprintf("%s/table/v1/%s/%s?annotations=distance,duration", c.BaseURL, c.Profile, coordStr)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("osrm table request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("osrm table http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("osrm table bad status: %s", resp.Status)
	}

	var tables RouteTables
	if err := json.NewDecoder(resp.Body).Decode(&tables); err != nil {
		return nil, fmt.Errorf("osrm table decode: %w", err)
	}
	if tables.Durations == nil || tables.Distances == nil {
		return nil, fmt.Errorf("osrm table response missing matrices")
	}

	c.Cache.Set(coordStr, &tables, c.DefaultTTL)
	return &tables, nil
}

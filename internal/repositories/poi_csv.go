package repositories

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"mumtrails/internal/models/db_models"
)

// LoadPoisFromCSV reads the seed dataset. Expected header columns:
// id,name,description,category,latitude,longitude,rating,price_level,
// tags,image_url,opening_hours. Tags are pipe-separated; rating and
// price_level may be empty (absent).
func LoadPoisFromCSV(path string) ([]db_models.POI, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"id", "name", "latitude", "longitude"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csv missing column %q", required)
		}
	}

	field := func(record []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var pois []db_models.POI
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		lat, err := strconv.ParseFloat(field(record, "latitude"), 64)
		if err != nil {
			return nil, fmt.Errorf("poi %s: bad latitude: %w", field(record, "id"), err)
		}
		lng, err := strconv.ParseFloat(field(record, "longitude"), 64)
		if err != nil {
			return nil, fmt.Errorf("poi %s: bad longitude: %w", field(record, "id"), err)
		}

		poi := db_models.POI{
			ID:           field(record, "id"),
			Name:         field(record, "name"),
			Description:  field(record, "description"),
			Category:     field(record, "category"),
			Latitude:     lat,
			Longitude:    lng,
			ImageURL:     field(record, "image_url"),
			OpeningHours: field(record, "opening_hours"),
		}
		if raw := field(record, "rating"); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				poi.Rating = &v
			}
		}
		if raw := field(record, "price_level"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil {
				poi.PriceLevel = &v
			}
		}
		for _, tag := range strings.Split(field(record, "tags"), "|") {
			if tag = strings.TrimSpace(tag); tag != "" {
				poi.Tags = append(poi.Tags, tag)
			}
		}
		pois = append(pois, poi)
	}
	return pois, nil
}

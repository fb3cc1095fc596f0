package repositories

import (
	"github.com/lib/pq"

	"mumtrails/internal/models/db_models"
)

func ptrFloat(v float64) *float64 { return &v }

func ptrInt(v int) *int { return &v }

// SeedPois is the built-in fallback dataset, used when neither Postgres nor
// a CSV path is configured.
func SeedPois() []db_models.POI {
	return []db_models.POI{
		{
			ID:          "gateway-india",
			Name:        "Gateway of India",
			Description: "Iconic arch-monument overlooking the Arabian Sea, popular for heritage walks.",
			Category:    "Heritage",
			Latitude:    18.921984,
			Longitude:   72.834654,
			Rating:      ptrFloat(4.7),
			PriceLevel:  ptrInt(0),
			Tags:        pq.StringArray{"heritage", "sea", "sunrise"},
			ImageURL:    "https://example.com/gateway.jpg",
			OpeningHours: `{"mon":[["06:00","22:00"]],"tue":[["06:00","22:00"]],"wed":[["06:00","22:00"]],` +
				`"thu":[["06:00","22:00"]],"fri":[["06:00","22:00"]],"sat":[["06:00","22:00"]],"sun":[["06:00","22:00"]]}`,
		},
		{
			ID:          "marine-drive",
			Name:        "Marine Drive",
			Description: "3.6-km-long boulevard with sweeping bay views, best for sunsets and evening walks.",
			Category:    "Waterfront",
			Latitude:    18.943176,
			Longitude:   72.823553,
			Rating:      ptrFloat(4.8),
			PriceLevel:  ptrInt(0),
			Tags:        pq.StringArray{"sunset", "family", "night"},
			ImageURL:    "https://example.com/marine.jpg",
			OpeningHours: `{"mon":[["00:00","23:59"]],"tue":[["00:00","23:59"]],"wed":[["00:00","23:59"]],` +
				`"thu":[["00:00","23:59"]],"fri":[["00:00","23:59"]],"sat":[["00:00","23:59"]],"sun":[["00:00","23:59"]]}`,
		},
		{
			ID:          "bandra-fort",
			Name:        "Bandra Fort",
			Description: "Seaside fort ruins with views of Bandra-Worli Sea Link, popular for photography.",
			Category:    "Fort",
			Latitude:    19.0435,
			Longitude:   72.8204,
			Rating:      ptrFloat(4.4),
			PriceLevel:  ptrInt(0),
			Tags:        pq.StringArray{"sunset", "photography", "couples"},
			ImageURL:    "https://example.com/bandra-fort.jpg",
			OpeningHours: `{"mon":[["06:00","20:00"]],"tue":[["06:00","20:00"]],"wed":[["06:00","20:00"]],` +
				`"thu":[["06:00","20:00"]],"fri":[["06:00","20:00"]],"sat":[["06:00","20:00"]],"sun":[["06:00","20:00"]]}`,
		},
	}
}

package db_models

import (
	"github.com/lib/pq"
	"github.com/paulmach/orb"
)

// POI is one record of the reference dataset. Loaded once at process start
// and shared read-only across requests; the engine copies and filters, it
// never mutates.
type POI struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	Rating       *float64       `json:"rating"`
	PriceLevel   *int           `gorm:"column:price_level" json:"price_level"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags"`
	ImageURL     string         `gorm:"column:image_url" json:"image_url"`
	OpeningHours string         `gorm:"column:opening_hours;type:jsonb" json:"opening_hours"`
}

func (POI) TableName() string { return "pois" }

func (p *POI) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// RatingOr returns the rating, or def when the POI is unrated.
func (p *POI) RatingOr(def float64) float64 {
	if p.Rating == nil {
		return def
	}
	return *p.Rating
}

// PriceLevelOr returns the price level, or def when absent.
func (p *POI) PriceLevelOr(def int) int {
	if p.PriceLevel == nil {
		return def
	}
	return *p.PriceLevel
}

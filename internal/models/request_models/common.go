package request_models

import "github.com/paulmach/orb"

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (l Location) Point() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Filters struct {
	Category   string   `json:"category,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	RatingMin  *float64 `json:"rating_min,omitempty"`
	PriceLevel *int     `json:"price_level,omitempty"`
}

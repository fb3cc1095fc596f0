package response_models

import "mumtrails/internal/models/request_models"

type TravelLeg struct {
	Origin      request_models.Location `json:"origin"`
	Destination request_models.Location `json:"destination"`
	DistanceKm  float64                 `json:"distance_km"`
	DurationMin float64                 `json:"duration_min"`
}

type TravelTimeResponse struct {
	Legs             []TravelLeg `json:"legs"`
	TotalDistanceKm  float64     `json:"total_distance_km"`
	TotalDurationMin float64     `json:"total_duration_min"`
}

package response_models

// ItineraryItem is a scheduled stop or a synthetic break. Breaks carry the
// previous stop's coordinates and zero travel/distance.
type ItineraryItem struct {
	PoiID         string  `json:"poi_id"`
	Name          string  `json:"name"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	TravelMinutes float64 `json:"travel_minutes"`
	DistanceKm    float64 `json:"distance_km"`
}

type ItineraryResponse struct {
	Title           string          `json:"title"`
	TotalDistanceKm float64         `json:"total_distance_km"`
	TotalTimeMin    float64         `json:"total_time_min"`
	Items           []ItineraryItem `json:"items"`
}

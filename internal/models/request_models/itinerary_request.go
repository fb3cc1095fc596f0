package request_models

type ItineraryRequest struct {
	Mood          string     `json:"mood" binding:"required"`
	StartLocation Location   `json:"start_location" binding:"required"`
	TimeWindow    TimeWindow `json:"time_window" binding:"required"`
	PoiIDs        []string   `json:"poi_ids,omitempty"`
}

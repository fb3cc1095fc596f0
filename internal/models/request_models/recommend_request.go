package request_models

type RecommendRequest struct {
	Mood     string            `json:"mood" binding:"required"`
	Prefs    map[string]string `json:"prefs"`
	Location *Location         `json:"location,omitempty"`
	Filters  *Filters          `json:"filters,omitempty"`
}

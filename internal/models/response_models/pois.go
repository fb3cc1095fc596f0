package response_models

// ScoredPoi is a reference POI annotated with its composite ranking score
// and a user-facing explanation. Recomputed fresh per request.
type ScoredPoi struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Rating      *float64 `json:"rating,omitempty"`
	PriceLevel  *int     `json:"price_level,omitempty"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"image_url,omitempty"`
	Reason      string   `json:"reason"`
	Score       float64  `json:"score"`
}

type RecommendResponse struct {
	Items []ScoredPoi `json:"items"`
}

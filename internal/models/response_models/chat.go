package response_models

type ChatResponse struct {
	Answer     string   `json:"answer"`
	References []string `json:"references"`
}

type EmbedResponse struct {
	Vectors [][]float64 `json:"vectors"`
}

type WeatherResponse struct {
	Status       string  `json:"status"`
	Description  string  `json:"description"`
	TemperatureC float64 `json:"temperature_c"`
	Humidity     int     `json:"humidity"`
	Icon         string  `json:"icon"`
}

type HealthResponse struct {
	Status            string `json:"status"`
	EmbeddingProvider string `json:"embedding_provider"`
	EmbeddingModel    string `json:"embedding_model"`
}

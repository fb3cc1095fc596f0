package request_models

type ChatRequest struct {
	Query   string              `json:"query"`
	History []map[string]string `json:"history,omitempty"`
}

type EmbedRequest struct {
	Texts []string `json:"texts"`
}

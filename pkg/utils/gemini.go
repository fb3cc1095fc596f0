package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	mem "mumtrails/pkg/memcache"
)

// GeminiClient wraps the Gemini API for answer refinement. Outbound calls
// go through a sliding-window limiter shared across requests; a nil client
// (no API key) is safe to call and always yields an empty completion.
type GeminiClient struct {
	model   *genai.GenerativeModel
	limiter *mem.RateWindow
	name    string
}

func NewGeminiClient(apiKey, model string, requestsPerMinute int) *GeminiClient {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	limiter := mem.NewRateWindow(requestsPerMinute, time.Minute)
	if apiKey == "" {
		log.Println("GEMINI_API_KEY missing; chat falls back to heuristic answers")
		return &GeminiClient{limiter: limiter, name: model}
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		log.Printf("Failed to configure Gemini client: %v", err)
		return &GeminiClient{limiter: limiter, name: model}
	}
	m := client.GenerativeModel(model)
	m.SetTemperature(0.35)
	m.SetTopP(0.9)
	m.SetMaxOutputTokens(256)
	return &GeminiClient{model: m, limiter: limiter, name: model}
}

// Generate returns a completion for the prompt. ErrRateLimited is the only
// error surfaced; transport and API failures degrade to an empty string so
// callers keep their heuristic answer.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.model == nil {
		return "", nil
	}
	if !c.limiter.Allow() {
		return "", ErrRateLimited
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Gemini request failed: %v", err)
		return "", nil
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		out += fmt.Sprintf("%v", part)
	}
	return out, nil
}

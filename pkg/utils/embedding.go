package utils

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// EmbeddingClientInterface turns free text into fixed-size vectors. The
// scoring engine treats providers as interchangeable: neural (OpenAI),
// Gemini, or the local hash vectorizer.
type EmbeddingClientInterface interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float64, error)
	Provider() string
	Model() string
}

// Cosine returns the cosine similarity of two vectors. An all-zero vector
// compared against anything is 0, never NaN.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// NewEmbeddingClient builds a client for the configured provider.
func NewEmbeddingClient(provider, apiKey, model string) (EmbeddingClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIEmbeddingClient(apiKey, model), nil
	case "gemini", "lexical", "":
		return NewHashEmbeddingClient(), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", provider)
	}
}

package utils

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
)

// EmbeddingDimensions matches the pgvector column width so hash vectors
// and OpenAI small-model vectors can share the same store.
const EmbeddingDimensions = 1536

// HashEmbeddingClient is the offline bag-of-words fallback: each word is
// hashed and projected across the vector, then the result is L2-normalized.
// Deterministic, requires no network, and good enough for ranking text
// against text when no neural provider is configured.
type HashEmbeddingClient struct{}

func NewHashEmbeddingClient() *HashEmbeddingClient {
	return &HashEmbeddingClient{}
}

func (c *HashEmbeddingClient) EmbedTexts(_ context.Context, texts []string) ([][]float64, error) {
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		vectors[i] = HashVectorize(text)
	}
	return vectors, nil
}

func (c *HashEmbeddingClient) Provider() string { return "lexical" }

func (c *HashEmbeddingClient) Model() string { return "hash-bow-v1" }

// HashVectorize builds the hash-projection vector for one text.
func HashVectorize(text string) []float64 {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	vector := make([]float64, EmbeddingDimensions)
	for _, word := range words {
		h := fnv.New32a()
		h.Write([]byte(word))
		seed := h.Sum32()
		for i := 0; i < EmbeddingDimensions; i++ {
			vector[i] += math.Sin(float64(seed+uint32(i))) * 0.1
		}
	}
	var magnitude float64
	for _, v := range vector {
		magnitude += v * v
	}
	magnitude = math.Sqrt(magnitude)
	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}
	return vector
}

package utils

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVectorizeIsDeterministic(t *testing.T) {
	a := HashVectorize("sea breeze promenade")
	b := HashVectorize("sea breeze promenade")
	assert.Equal(t, a, b)
}

func TestHashVectorizeHasUnitNorm(t *testing.T) {
	v := HashVectorize("gateway of india")
	require.Len(t, v, EmbeddingDimensions)
	var norm float64
	for _, x := range v {
		norm += x * x
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestHashVectorizeEmptyTextIsZeroVector(t *testing.T) {
	v := HashVectorize("   ")
	require.Len(t, v, EmbeddingDimensions)
	for _, x := range v {
		assert.Zero(t, x)
	}
}

func TestHashVectorizeIgnoresCaseAndSpacing(t *testing.T) {
	assert.Equal(t, HashVectorize("Marine Drive"), HashVectorize("  marine   DRIVE "))
}

func TestHashEmbeddingClientBatches(t *testing.T) {
	client := NewHashEmbeddingClient()
	vectors, err := client.EmbedTexts(context.Background(), []string{"fort", "waterfront"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.Equal(t, HashVectorize("fort"), vectors[0])
	assert.Equal(t, "lexical", client.Provider())
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 0}, []float64{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, Cosine([]float64{1, 0}, []float64{-1, 0}), 1e-9)
}

func TestCosineZeroVectorGuard(t *testing.T) {
	assert.Zero(t, Cosine([]float64{0, 0}, []float64{1, 2}))
	assert.Zero(t, Cosine(nil, nil))
}

func TestCosineRewardsSharedVocabulary(t *testing.T) {
	base := HashVectorize("calm waterfront sunset walk")
	near := HashVectorize("waterfront sunset stroll")
	far := HashVectorize("crowded bazaar shopping")
	assert.Greater(t, Cosine(base, near), Cosine(base, far))
}

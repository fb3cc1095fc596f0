package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiClientWithoutKeyIsInert(t *testing.T) {
	client := NewGeminiClient("", "", 5)
	out, err := client.Generate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGeminiClientNilReceiverIsSafe(t *testing.T) {
	var client *GeminiClient
	out, err := client.Generate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, out)
}

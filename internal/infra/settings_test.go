package infra

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("PORT", "")
	t.Setenv("OSRM_URL", "")
	t.Setenv("EMBEDDING_PROVIDER", "")
	t.Setenv("RECO_WEIGHTS", "")
	t.Setenv("GEMINI_REQUESTS_PER_MINUTE", "")
	s := LoadSettings()
	assert.Equal(t, "8001", s.Port)
	assert.Equal(t, "http://localhost:5000", s.OSRMURL)
	assert.Equal(t, "lexical", s.EmbeddingProvider)
	assert.Equal(t, DefaultRecoWeights, s.RecoWeights)
	assert.Equal(t, 30, s.GeminiRequestsPerMinute)
}

func TestLoadSettingsEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("port: \"9000\"\nosrm_url: http://file-osrm:5000\n"), 0o644))

	t.Setenv("CONFIG_PATH", configPath)
	t.Setenv("OSRM_URL", "http://env-osrm:5000")

	s := LoadSettings()
	assert.Equal(t, "9000", s.Port)
	assert.Equal(t, "http://env-osrm:5000", s.OSRMURL)
}

func TestLoadSettingsWeightsFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("RECO_WEIGHTS", "0.5,0.2,0.1,0.1,0.1")
	s := LoadSettings()
	assert.Equal(t, [5]float64{0.5, 0.2, 0.1, 0.1, 0.1}, s.RecoWeights)
}

func TestLoadSettingsRejectsMalformedWeights(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("RECO_WEIGHTS", "1,2,3")
	s := LoadSettings()
	assert.Equal(t, DefaultRecoWeights, s.RecoWeights)
}

func TestParseWeights(t *testing.T) {
	w, ok := parseWeights(" 0.45, 0.2,0.2,0.05,0.1")
	require.True(t, ok)
	assert.Equal(t, [5]float64{0.45, 0.2, 0.2, 0.05, 0.1}, w)

	_, ok = parseWeights("0.45,0.2,0.2,0.05,-0.1")
	assert.False(t, ok)

	_, ok = parseWeights("a,b,c,d,e")
	assert.False(t, ok)
}

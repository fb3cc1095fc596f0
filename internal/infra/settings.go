package infra

import (
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings carries process configuration. Values come from an optional YAML
// file (CONFIG_PATH) overridden by environment variables; missing entries
// fall back to the defaults below.
type Settings struct {
	Port                    string
	RecoWeights             [5]float64
	OSRMURL                 string
	EmbeddingProvider       string
	OpenAIAPIKey            string
	OpenAIModel             string
	GeminiAPIKey            string
	GeminiModel             string
	GeminiRequestsPerMinute int
	PoiCSVPath              string
	PostgresURL             string
}

// DefaultRecoWeights order: similarity, category, distance, price, rating.
var DefaultRecoWeights = [5]float64{0.45, 0.2, 0.2, 0.05, 0.1}

type fileSettings struct {
	Port              string `yaml:"port"`
	RecoWeights       string `yaml:"reco_weights"`
	OSRMURL           string `yaml:"osrm_url"`
	EmbeddingProvider string `yaml:"embedding_provider"`
	OpenAIModel       string `yaml:"openai_model"`
	GeminiModel       string `yaml:"gemini_model"`
	GeminiRPM         int    `yaml:"gemini_requests_per_minute"`
	PoiCSVPath        string `yaml:"poi_csv_path"`
}

func LoadSettings() *Settings {
	s := &Settings{
		Port:                    "8001",
		RecoWeights:             DefaultRecoWeights,
		OSRMURL:                 "http://localhost:5000",
		EmbeddingProvider:       "lexical",
		OpenAIModel:             "text-embedding-3-small",
		GeminiModel:             "gemini-2.5-flash",
		GeminiRequestsPerMinute: 30,
	}

	if path := getEnvWithDefault("CONFIG_PATH", "config.yaml"); path != "" {
		if raw, err := os.ReadFile(path); err == nil {
			var fs fileSettings
			if err := yaml.Unmarshal(raw, &fs); err != nil {
				log.Printf("Ignoring malformed config file %s: %v", path, err)
			} else {
				applyFileSettings(s, fs)
			}
		}
	}

	s.Port = getEnvWithDefault("PORT", s.Port)
	s.OSRMURL = getEnvWithDefault("OSRM_URL", s.OSRMURL)
	s.EmbeddingProvider = getEnvWithDefault("EMBEDDING_PROVIDER", s.EmbeddingProvider)
	s.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	s.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", s.OpenAIModel)
	s.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	s.GeminiModel = getEnvWithDefault("GEMINI_MODEL", s.GeminiModel)
	s.PoiCSVPath = getEnvWithDefault("POI_CSV_PATH", s.PoiCSVPath)
	s.PostgresURL = os.Getenv("POSTGRES_URL")

	if raw := os.Getenv("GEMINI_REQUESTS_PER_MINUTE"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			s.GeminiRequestsPerMinute = v
		}
	}
	if raw := os.Getenv("RECO_WEIGHTS"); raw != "" {
		if w, ok := parseWeights(raw); ok {
			s.RecoWeights = w
		} else {
			log.Printf("Ignoring malformed RECO_WEIGHTS %q", raw)
		}
	}
	return s
}

func applyFileSettings(s *Settings, fs fileSettings) {
	if fs.Port != "" {
		s.Port = fs.Port
	}
	if fs.OSRMURL != "" {
		s.OSRMURL = fs.OSRMURL
	}
	if fs.EmbeddingProvider != "" {
		s.EmbeddingProvider = fs.EmbeddingProvider
	}
	if fs.OpenAIModel != "" {
		s.OpenAIModel = fs.OpenAIModel
	}
	if fs.GeminiModel != "" {
		s.GeminiModel = fs.GeminiModel
	}
	if fs.GeminiRPM > 0 {
		s.GeminiRequestsPerMinute = fs.GeminiRPM
	}
	if fs.PoiCSVPath != "" {
		s.PoiCSVPath = fs.PoiCSVPath
	}
	if fs.RecoWeights != "" {
		if w, ok := parseWeights(fs.RecoWeights); ok {
			s.RecoWeights = w
		}
	}
}

// parseWeights reads "0.45,0.2,0.2,0.05,0.1"; exactly five non-negative
// values are required.
func parseWeights(raw string) ([5]float64, bool) {
	var out [5]float64
	parts := strings.Split(raw, ",")
	if len(parts) != 5 {
		return out, false
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || v < 0 {
			return out, false
		}
		out[i] = v
	}
	return out, true
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

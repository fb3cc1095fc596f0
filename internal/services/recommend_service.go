package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"mumtrails/internal/models/db_models"
	"mumtrails/internal/models/request_models"
	"mumtrails/internal/models/response_models"
	"mumtrails/internal/repositories"
	"mumtrails/pkg/geoutil"
)

// MoodCategoryHints maps a mood label to categories that get full affinity.
// Unlisted categories score a soft 0.3 rather than zero.
var MoodCategoryHints = map[string][]string{
	"Chill":     {"Waterfront", "Park", "Cafe"},
	"Adventure": {"Hike", "Trail", "Fort", "Island"},
	"Family":    {"Museum", "Park", "Aquarium"},
	"Culture":   {"Heritage", "Museum", "Art"},
}

const maxRecommendations = 15

type RecommendServiceInterface interface {
	Recommend(ctx context.Context, req request_models.RecommendRequest) ([]response_models.ScoredPoi, error)
}

type RecommendService struct {
	provider repositories.POIProvider
	embedder *EmbeddingService
	weights  [5]float64
}

func NewRecommendService(provider repositories.POIProvider, embedder *EmbeddingService, weights [5]float64) RecommendServiceInterface {
	return &RecommendService{
		provider: provider,
		embedder: embedder,
		weights:  weights,
	}
}

func (s *RecommendService) Recommend(ctx context.Context, req request_models.RecommendRequest) ([]response_models.ScoredPoi, error) {
	pois := applyFilters(s.provider.All(), req.Filters)
	if len(pois) == 0 {
		return []response_models.ScoredPoi{}, nil
	}

	moodVec := s.embedder.EmbedTexts(ctx, []string{moodPrompt(req.Mood, req.Prefs)})[0]
	poiVecs := s.poiVectors(ctx, pois)

	similarities := make([]float64, len(pois))
	for i := range pois {
		similarities[i] = s.embedder.Similarity(poiVecs[i], moodVec)
	}

	hinted := MoodCategoryHints[req.Mood]
	categoryScores := make([]float64, len(pois))
	for i, poi := range pois {
		categoryScores[i] = 0.3
		for _, category := range hinted {
			if poi.Category == category {
				categoryScores[i] = 1.0
				break
			}
		}
	}

	distanceScores := neutralScores(len(pois))
	if req.Location != nil {
		distances := make([]float64, len(pois))
		for i, poi := range pois {
			distances[i] = geoutil.Haversine(req.Location.Point(), poi.Point())
		}
		for i, d := range geoutil.Normalize(distances) {
			distanceScores[i] = 1 - d
		}
	}

	priceScores := neutralScores(len(pois))
	if budget, ok := budgetTarget(req.Prefs); ok {
		for i, poi := range pois {
			diff := poi.PriceLevelOr(2) - budget
			if diff < 0 {
				diff = -diff
			}
			priceScores[i] = 1 - float64(diff)/4
		}
	}

	ratings := make([]float64, len(pois))
	for i, poi := range pois {
		ratings[i] = poi.RatingOr(3.5)
	}
	ratingScores := geoutil.Normalize(ratings)

	scored := make([]response_models.ScoredPoi, len(pois))
	for i, poi := range pois {
		score := s.weights[0]*similarities[i] +
			s.weights[1]*categoryScores[i] +
			s.weights[2]*distanceScores[i] +
			s.weights[3]*priceScores[i] +
			s.weights[4]*ratingScores[i]
		scored[i] = response_models.ScoredPoi{
			ID:          poi.ID,
			Name:        poi.Name,
			Description: poi.Description,
			Category:    poi.Category,
			Latitude:    poi.Latitude,
			Longitude:   poi.Longitude,
			Rating:      poi.Rating,
			PriceLevel:  poi.PriceLevel,
			Tags:        poi.Tags,
			ImageURL:    poi.ImageURL,
			Reason:      reasonFor(req.Mood, poi),
			Score:       score,
		}
	}

	// Stable sort keeps input order as the tie-break rule.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > maxRecommendations {
		scored = scored[:maxRecommendations]
	}
	return scored, nil
}

// poiVectors serves description vectors from the warm cache and embeds any
// POIs the warm-up missed.
func (s *RecommendService) poiVectors(ctx context.Context, pois []db_models.POI) [][]float64 {
	vectors := make([][]float64, len(pois))
	var missingIdx []int
	var missingTexts []string
	for i, poi := range pois {
		if v, ok := s.embedder.PoiVector(poi.ID); ok {
			vectors[i] = v
			continue
		}
		missingIdx = append(missingIdx, i)
		missingTexts = append(missingTexts, poi.Description+" "+poi.Name)
	}
	if len(missingIdx) > 0 {
		for pos, v := range s.embedder.EmbedTexts(ctx, missingTexts) {
			vectors[missingIdx[pos]] = v
		}
	}
	return vectors
}

func applyFilters(pois []db_models.POI, filters *request_models.Filters) []db_models.POI {
	if filters == nil {
		return pois
	}
	out := make([]db_models.POI, 0, len(pois))
	for _, poi := range pois {
		if filters.Category != "" &&
			!strings.Contains(strings.ToLower(poi.Category), strings.ToLower(filters.Category)) {
			continue
		}
		if len(filters.Tags) > 0 && !tagsOverlap(poi.Tags, filters.Tags) {
			continue
		}
		if filters.RatingMin != nil && poi.RatingOr(0) < *filters.RatingMin {
			continue
		}
		if filters.PriceLevel != nil && poi.PriceLevelOr(0) > *filters.PriceLevel {
			continue
		}
		out = append(out, poi)
	}
	return out
}

func tagsOverlap(poiTags []string, wanted []string) bool {
	for _, tag := range poiTags {
		for _, w := range wanted {
			if tag == w {
				return true
			}
		}
	}
	return false
}

func moodPrompt(mood string, prefs map[string]string) string {
	keys := make([]string, 0, len(prefs))
	for k := range prefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+":"+prefs[k])
	}
	return mood + " " + strings.Join(parts, " ")
}

func budgetTarget(prefs map[string]string) (int, bool) {
	budget, ok := prefs["budget"]
	if !ok || budget == "" {
		return 0, false
	}
	switch strings.ToLower(budget) {
	case "low":
		return 0, true
	case "high":
		return 4, true
	default:
		return 2, true
	}
}

func neutralScores(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.5
	}
	return out
}

func reasonFor(mood string, poi db_models.POI) string {
	rating := "N/A"
	if poi.Rating != nil {
		rating = strconv.FormatFloat(*poi.Rating, 'g', -1, 64)
	}
	return fmt.Sprintf("Matches %s mood via %s vibe with rating %s", mood, poi.Category, rating)
}

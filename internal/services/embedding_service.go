package services

import (
	"context"
	"log"
	"sync"

	"github.com/pgvector/pgvector-go"

	"mumtrails/internal/models/db_models"
	"mumtrails/internal/repositories"
	"mumtrails/pkg/utils"
)

// EmbeddingService fronts the configured embedding provider with a local
// degradation path: if the provider call fails, texts are vectorized with
// the hash bag-of-words fallback instead of failing the request. POI
// description vectors are warmed once at startup and shared read-only.
type EmbeddingService struct {
	client utils.EmbeddingClientInterface
	store  repositories.IPoiEmbeddingRepository // nil without postgres

	mu         sync.RWMutex
	poiVectors map[string][]float64
}

func NewEmbeddingService(client utils.EmbeddingClientInterface, store repositories.IPoiEmbeddingRepository) *EmbeddingService {
	return &EmbeddingService{
		client:     client,
		store:      store,
		poiVectors: make(map[string][]float64),
	}
}

func (s *EmbeddingService) Provider() string { return s.client.Provider() }

func (s *EmbeddingService) Model() string { return s.client.Model() }

// EmbedTexts never fails: provider errors degrade to the hash vectorizer.
func (s *EmbeddingService) EmbedTexts(ctx context.Context, texts []string) [][]float64 {
	if len(texts) == 0 {
		return [][]float64{}
	}
	vectors, err := s.client.EmbedTexts(ctx, texts)
	if err == nil && len(vectors) == len(texts) {
		return vectors
	}
	if err != nil {
		log.Printf("Embedding provider %s failed, using hash fallback: %v", s.client.Provider(), err)
	}
	vectors = make([][]float64, len(texts))
	for i, text := range texts {
		vectors[i] = utils.HashVectorize(text)
	}
	return vectors
}

func (s *EmbeddingService) Similarity(a, b []float64) float64 {
	return utils.Cosine(a, b)
}

// PoiVector returns the warmed vector for a POI, if present.
func (s *EmbeddingService) PoiVector(poiID string) ([]float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.poiVectors[poiID]
	return v, ok
}

// WarmPoiVectors embeds every POI's description text once. With a store
// configured, previously persisted vectors for the same provider/model are
// reused and new ones written back.
func (s *EmbeddingService) WarmPoiVectors(ctx context.Context, pois []db_models.POI) error {
	known := make(map[string][]float64, len(pois))
	if s.store != nil {
		rows, err := s.store.ListByModel(ctx, s.client.Provider(), s.client.Model())
		if err != nil {
			log.Printf("Embedding store unavailable, re-embedding dataset: %v", err)
		} else {
			for _, row := range rows {
				known[row.PoiID] = vectorToFloat64(row.Embedding)
			}
		}
	}

	var missing []db_models.POI
	var texts []string
	for _, poi := range pois {
		if v, ok := known[poi.ID]; ok {
			s.setPoiVector(poi.ID, v)
			continue
		}
		missing = append(missing, poi)
		texts = append(texts, poi.Description+" "+poi.Name)
	}
	if len(missing) == 0 {
		return nil
	}

	vectors := s.EmbedTexts(ctx, texts)
	rows := make([]db_models.PoiEmbedding, 0, len(missing))
	for i, poi := range missing {
		s.setPoiVector(poi.ID, vectors[i])
		rows = append(rows, db_models.PoiEmbedding{
			PoiID:       poi.ID,
			Name:        poi.Name,
			Description: poi.Description,
			Category:    poi.Category,
			Provider:    s.client.Provider(),
			Model:       s.client.Model(),
			Tags:        poi.Tags,
			Embedding:   vectorFromFloat64(vectors[i]),
		})
	}
	if s.store != nil {
		if err := s.store.Upsert(ctx, rows); err != nil {
			log.Printf("Failed to persist POI embeddings: %v", err)
		}
	}
	return nil
}

func (s *EmbeddingService) setPoiVector(poiID string, v []float64) {
	s.mu.Lock()
	s.poiVectors[poiID] = v
	s.mu.Unlock()
}

func vectorFromFloat64(v []float64) pgvector.Vector {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return pgvector.NewVector(out)
}

func vectorToFloat64(v pgvector.Vector) []float64 {
	slice := v.Slice()
	out := make([]float64, len(slice))
	for i, x := range slice {
		out[i] = float64(x)
	}
	return out
}

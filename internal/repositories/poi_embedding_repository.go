package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mumtrails/internal/models/db_models"
)

// IPoiEmbeddingRepository persists precomputed POI vectors so warm starts
// and vector search skip re-embedding the dataset.
type IPoiEmbeddingRepository interface {
	Upsert(ctx context.Context, rows []db_models.PoiEmbedding) error
	ListByModel(ctx context.Context, provider, model string) ([]db_models.PoiEmbedding, error)
	SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.PoiEmbedding, error)
}

type poiEmbeddingRepository struct {
	db *gorm.DB
}

func NewPoiEmbeddingRepository(db *gorm.DB) IPoiEmbeddingRepository {
	return &poiEmbeddingRepository{db: db}
}

func (r *poiEmbeddingRepository) Upsert(ctx context.Context, rows []db_models.PoiEmbedding) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "poi_id"}},
			UpdateAll: true,
		}).
		Create(&rows).Error
}

func (r *poiEmbeddingRepository) ListByModel(ctx context.Context, provider, model string) ([]db_models.PoiEmbedding, error) {
	var rows []db_models.PoiEmbedding
	err := r.db.WithContext(ctx).
		Where("provider = ? AND model = ?", provider, model).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *poiEmbeddingRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.PoiEmbedding, error) {
	var rows []db_models.PoiEmbedding

	query := `
        SELECT *, (1 - (embedding <=> $1)) AS similarity
        FROM poi_embeddings
        ORDER BY embedding <=> $1
        LIMIT $2
    `
	err := r.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

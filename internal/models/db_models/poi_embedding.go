package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// PoiEmbedding is a warm-store row for a precomputed POI description
// vector. Name, description and tags are denormalized so vector search can
// build chat snippets without a join.
type PoiEmbedding struct {
	PoiID       string `gorm:"primaryKey;column:poi_id"`
	Name        string
	Description string
	Category    string
	Provider    string
	Model       string
	Tags        pq.StringArray  `gorm:"type:text[]"`
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}

func (PoiEmbedding) TableName() string { return "poi_embeddings" }

package repositories

import (
	"context"
	"log"

	"gorm.io/gorm"

	"mumtrails/internal/models/db_models"
)

// POIProvider exposes the reference POI dataset. Implementations load once
// at process start; All returns the shared read-only slice, so callers must
// copy before reordering or annotating.
type POIProvider interface {
	All() []db_models.POI
	ByIDs(ids []string) []db_models.POI
}

type staticPoiProvider struct {
	pois []db_models.POI
}

// NewStaticProvider wraps an already-loaded dataset.
func NewStaticProvider(pois []db_models.POI) POIProvider {
	return &staticPoiProvider{pois: pois}
}

func (p *staticPoiProvider) All() []db_models.POI {
	return p.pois
}

func (p *staticPoiProvider) ByIDs(ids []string) []db_models.POI {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := make([]db_models.POI, 0, len(ids))
	for _, poi := range p.pois {
		if wanted[poi.ID] {
			out = append(out, poi)
		}
	}
	return out
}

// LoadPoisFromPostgres reads the full POI table.
func LoadPoisFromPostgres(ctx context.Context, db *gorm.DB) ([]db_models.POI, error) {
	var pois []db_models.POI
	if err := db.WithContext(ctx).Find(&pois).Error; err != nil {
		log.Printf("Error loading POIs from postgres: %v", err)
		return nil, err
	}
	return pois, nil
}

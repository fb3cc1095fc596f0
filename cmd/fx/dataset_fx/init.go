package datasetfx

import (
	"context"
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"mumtrails/internal/infra"
	"mumtrails/internal/repositories"
)

var Module = fx.Options(
	fx.Provide(
		ProvideDatabase,
		ProvidePOIProvider,
		ProvideEmbeddingStore,
	),
	fx.Invoke(CloseDatabaseOnStop),
)

// CloseDatabaseOnStop releases the pool during shutdown; a nil db is the
// file/seed mode and there is nothing to close.
func CloseDatabaseOnStop(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

// ProvideDatabase opens Postgres when configured; nil means file/seed mode.
func ProvideDatabase(settings *infra.Settings) *gorm.DB {
	if settings.PostgresURL == "" {
		return nil
	}
	db, err := infra.InitPostgresql(settings.PostgresURL)
	if err != nil {
		log.Printf("Postgres unavailable, falling back to file/seed dataset: %v", err)
		return nil
	}
	return db
}

// ProvidePOIProvider loads the reference dataset once, from the first
// source that works: Postgres, CSV, then the built-in seed.
func ProvidePOIProvider(settings *infra.Settings, db *gorm.DB) repositories.POIProvider {
	if db != nil {
		pois, err := repositories.LoadPoisFromPostgres(context.Background(), db)
		if err == nil && len(pois) > 0 {
			log.Printf("Loaded %d POIs from postgres", len(pois))
			return repositories.NewStaticProvider(pois)
		}
	}
	if settings.PoiCSVPath != "" {
		pois, err := repositories.LoadPoisFromCSV(settings.PoiCSVPath)
		if err != nil {
			log.Printf("Could not load POI CSV %s: %v", settings.PoiCSVPath, err)
		} else if len(pois) > 0 {
			log.Printf("Loaded %d POIs from %s", len(pois), settings.PoiCSVPath)
			return repositories.NewStaticProvider(pois)
		}
	}
	log.Println("Using built-in seed POI dataset")
	return repositories.NewStaticProvider(repositories.SeedPois())
}

func ProvideEmbeddingStore(db *gorm.DB) repositories.IPoiEmbeddingRepository {
	if db == nil {
		return nil
	}
	return repositories.NewPoiEmbeddingRepository(db)
}

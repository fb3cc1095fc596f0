package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mumtrails/internal/models/db_models"
	"mumtrails/internal/models/request_models"
	"mumtrails/internal/repositories"
	"mumtrails/pkg/utils"
)

func newTestPlanner(pois []db_models.POI) ItineraryServiceInterface {
	provider := repositories.NewStaticProvider(pois)
	embedder := NewEmbeddingService(flatEmbedder{}, nil)
	recommender := NewRecommendService(provider, embedder, [5]float64{0.45, 0.2, 0.2, 0.05, 0.1})
	return NewItineraryService(provider, recommender)
}

func gatewayStart() request_models.Location {
	return request_models.Location{Lat: 18.921984, Lng: 72.834654}
}

func TestBuildItineraryRejectsBadCoordinate(t *testing.T) {
	svc := newTestPlanner(repositories.SeedPois())
	_, err := svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{
		Mood:          "Chill",
		StartLocation: request_models.Location{Lat: 123, Lng: 72.8},
		TimeWindow:    request_models.TimeWindow{Start: "09:00", End: "18:00"},
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCoordinate)
}

func TestBuildItineraryRejectsBadTimeWindow(t *testing.T) {
	svc := newTestPlanner(repositories.SeedPois())
	_, err := svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{
		Mood:          "Chill",
		StartLocation: gatewayStart(),
		TimeWindow:    request_models.TimeWindow{Start: "25:00", End: "18:00"},
	})
	assert.ErrorIs(t, err, utils.ErrInvalidTimeWindow)
}

func TestBuildItineraryFullDay(t *testing.T) {
	svc := newTestPlanner(repositories.SeedPois())
	got, err := svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{
		Mood:          "chill",
		StartLocation: gatewayStart(),
		TimeWindow:    request_models.TimeWindow{Start: "09:00", End: "20:00"},
		PoiIDs:        []string{"gateway-india", "marine-drive", "bandra-fort"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Chill Trail", got.Title)
	assert.Greater(t, got.TotalDistanceKm, 0.0)
	assert.Greater(t, got.TotalTimeMin, 0.0)

	var stops []string
	for _, item := range got.Items {
		if item.PoiID != "lunch-break" && item.PoiID != "evening-break" {
			stops = append(stops, item.PoiID)
		}
	}
	assert.ElementsMatch(t, []string{"gateway-india", "marine-drive", "bandra-fort"}, stops)
}

func TestBuildItineraryInsertsLunchBreakOnce(t *testing.T) {
	svc := newTestPlanner(repositories.SeedPois())
	got, err := svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{
		Mood:          "Chill",
		StartLocation: gatewayStart(),
		TimeWindow:    request_models.TimeWindow{Start: "12:00", End: "20:00"},
		PoiIDs:        []string{"gateway-india", "marine-drive", "bandra-fort"},
	})
	require.NoError(t, err)

	lunches := 0
	for _, item := range got.Items {
		if item.PoiID == "lunch-break" {
			lunches++
			assert.Equal(t, "Lunch Break", item.Name)
		}
	}
	assert.Equal(t, 1, lunches)
}

func TestBuildItineraryInsertsEveningBreakOnce(t *testing.T) {
	svc := newTestPlanner(repositories.SeedPois())
	got, err := svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{
		Mood:          "Chill",
		StartLocation: gatewayStart(),
		TimeWindow:    request_models.TimeWindow{Start: "16:00", End: "22:00"},
		PoiIDs:        []string{"gateway-india", "marine-drive", "bandra-fort"},
	})
	require.NoError(t, err)

	evenings := 0
	for _, item := range got.Items {
		if item.PoiID == "evening-break" {
			evenings++
			assert.Equal(t, "Sunset & Snacks", item.Name)
		}
	}
	assert.Equal(t, 1, evenings)
}

func TestBuildItineraryNoBreaksInMorningWindow(t *testing.T) {
	svc := newTestPlanner(repositories.SeedPois())
	got, err := svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{
		Mood:          "Chill",
		StartLocation: gatewayStart(),
		TimeWindow:    request_models.TimeWindow{Start: "06:00", End: "09:00"},
		PoiIDs:        []string{"gateway-india", "marine-drive"},
	})
	require.NoError(t, err)
	for _, item := range got.Items {
		assert.NotEqual(t, "lunch-break", item.PoiID)
		assert.NotEqual(t, "evening-break", item.PoiID)
	}
}

func TestBuildItineraryDropsStopsPastWindowEnd(t *testing.T) {
	svc := newTestPlanner(repositories.SeedPois())
	got, err := svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{
		Mood:          "Chill",
		StartLocation: gatewayStart(),
		TimeWindow:    request_models.TimeWindow{Start: "09:00", End: "10:00"},
		PoiIDs:        []string{"gateway-india", "marine-drive", "bandra-fort"},
	})
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "gateway-india", got.Items[0].PoiID)
}

func TestBuildItineraryHonoursRequestedIDs(t *testing.T) {
	svc := newTestPlanner(repositories.SeedPois())
	got, err := svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{
		Mood:          "Adventure",
		StartLocation: gatewayStart(),
		TimeWindow:    request_models.TimeWindow{Start: "09:00", End: "12:00"},
		PoiIDs:        []string{"bandra-fort"},
	})
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "bandra-fort", got.Items[0].PoiID)
}

func TestBuildItineraryThinsToTwoPerCategory(t *testing.T) {
	pois := make([]db_models.POI, 0, 5)
	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("park-%d", i)
		rating := 4.0 + float64(i)*0.1
		pois = append(pois, db_models.POI{
			ID:        id,
			Name:      "Park " + id,
			Category:  "Park",
			Latitude:  18.9 + float64(i)*0.01,
			Longitude: 72.8,
			Rating:    &rating,
		})
		ids = append(ids, id)
	}
	svc := newTestPlanner(pois)
	got, err := svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{
		Mood:          "Chill",
		StartLocation: gatewayStart(),
		TimeWindow:    request_models.TimeWindow{Start: "09:00", End: "20:00"},
		PoiIDs:        ids,
	})
	require.NoError(t, err)

	var stops []string
	for _, item := range got.Items {
		if item.PoiID != "lunch-break" && item.PoiID != "evening-break" {
			stops = append(stops, item.PoiID)
		}
	}
	// Highest-rated pair survives the per-category cut.
	assert.ElementsMatch(t, []string{"park-4", "park-3"}, stops)
}

func TestBuildItineraryCapsStopsPerDay(t *testing.T) {
	pois := make([]db_models.POI, 0, 12)
	ids := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("stop-%d", i)
		pois = append(pois, db_models.POI{
			ID:        id,
			Name:      "Stop " + id,
			Category:  fmt.Sprintf("Category-%d", i), // unique, so only the day cap binds
			Latitude:  18.9 + float64(i)*0.002,
			Longitude: 72.8,
		})
		ids = append(ids, id)
	}
	svc := newTestPlanner(pois)
	got, err := svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{
		Mood:          "Chill",
		StartLocation: gatewayStart(),
		TimeWindow:    request_models.TimeWindow{Start: "00:00", End: "23:59"},
		PoiIDs:        ids,
	})
	require.NoError(t, err)

	stops := 0
	for _, item := range got.Items {
		if item.PoiID != "lunch-break" && item.PoiID != "evening-break" {
			stops++
		}
	}
	assert.Equal(t, 8, stops)
}

func TestBuildItineraryFallsBackToRecommender(t *testing.T) {
	svc := newTestPlanner(repositories.SeedPois())
	got, err := svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{
		Mood:          "Chill",
		StartLocation: gatewayStart(),
		TimeWindow:    request_models.TimeWindow{Start: "09:00", End: "20:00"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.Items)
}

func TestBuildItineraryTimesAreSequential(t *testing.T) {
	svc := newTestPlanner(repositories.SeedPois())
	got, err := svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{
		Mood:          "Chill",
		StartLocation: gatewayStart(),
		TimeWindow:    request_models.TimeWindow{Start: "09:00", End: "20:00"},
		PoiIDs:        []string{"gateway-india", "marine-drive", "bandra-fort"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, got.Items)
	for i, item := range got.Items {
		assert.LessOrEqual(t, item.StartTime, item.EndTime, "item %d", i)
		if i > 0 {
			assert.LessOrEqual(t, got.Items[i-1].StartTime, item.StartTime, "item %d", i)
		}
	}
}

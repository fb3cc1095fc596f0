package services

import (
	"context"
	"log"

	"mumtrails/internal/models/request_models"
	"mumtrails/internal/models/response_models"
	"mumtrails/pkg/geoutil"
	"mumtrails/pkg/utils"
)

// syntheticStartHour stands in for "time of day at arrival": each leg is
// assumed to depart one hour after the previous one, starting at 09:00.
const syntheticStartHour = 9

type TravelServiceInterface interface {
	Estimate(ctx context.Context, coords []request_models.Location) (*response_models.TravelTimeResponse, error)
}

type TravelService struct {
	router RouteTableClient
}

func NewTravelService(router RouteTableClient) TravelServiceInterface {
	return &TravelService{router: router}
}

// Estimate returns one leg per consecutive coordinate pair. The routing
// table is preferred; any missing piece, from a whole failed call down to
// one absent matrix cell, degrades that leg to the haversine heuristic.
func (s *TravelService) Estimate(ctx context.Context, coords []request_models.Location) (*response_models.TravelTimeResponse, error) {
	if len(coords) < 2 {
		return &response_models.TravelTimeResponse{Legs: []response_models.TravelLeg{}}, nil
	}

	tables, err := s.router.Table(ctx, coords)
	if err != nil {
		log.Printf("Routing table unavailable, using heuristic: %v", err)
		tables = nil
	}

	legs := make([]response_models.TravelLeg, 0, len(coords)-1)
	totalDistance := 0.0
	totalDuration := 0.0
	for idx := 0; idx < len(coords)-1; idx++ {
		origin := coords[idx]
		dest := coords[idx+1]

		distance, duration, ok := tableLeg(tables, idx)
		if !ok {
			distance = geoutil.Haversine(origin.Point(), dest.Point())
			duration = geoutil.DurationMinutes(distance, syntheticStartHour+idx)
		}

		totalDistance += distance
		totalDuration += duration
		legs = append(legs, response_models.TravelLeg{
			Origin:      origin,
			Destination: dest,
			DistanceKm:  utils.Round2(distance),
			DurationMin: utils.Round1(duration),
		})
	}

	return &response_models.TravelTimeResponse{
		Legs:             legs,
		TotalDistanceKm:  utils.Round2(totalDistance),
		TotalDurationMin: utils.Round1(totalDuration),
	}, nil
}

// tableLeg pulls the (idx, idx+1) cell pair, converting the service's
// seconds/meters into minutes/kilometres.
func tableLeg(tables *RouteTables, idx int) (distanceKm, durationMin float64, ok bool) {
	if tables == nil {
		return 0, 0, false
	}
	if idx >= len(tables.Durations) || idx+1 >= len(tables.Durations[idx]) {
		return 0, 0, false
	}
	if idx >= len(tables.Distances) || idx+1 >= len(tables.Distances[idx]) {
		return 0, 0, false
	}
	rawDuration := tables.Durations[idx][idx+1]
	rawDistance := tables.Distances[idx][idx+1]
	if rawDuration == nil || rawDistance == nil {
		return 0, 0, false
	}
	return *rawDistance / 1000, *rawDuration / 60, true
}

package services

import (
	"context"
	"sort"
	"strings"

	"github.com/paulmach/orb"

	"mumtrails/internal/models/db_models"
	"mumtrails/internal/models/request_models"
	"mumtrails/internal/models/response_models"
	"mumtrails/internal/repositories"
	"mumtrails/pkg/geoutil"
	"mumtrails/pkg/utils"
)

const (
	maxStopsPerDay    = 8
	maxPerCategory    = 2
	lunchMinute       = 13 * 60
	eveningMinute     = 18 * 60
	lunchBreakMin     = 45
	eveningBreakMin   = 30
	travelFloorMin    = 5.0
	absentRatingFloor = -1.0 // unrated stops sort behind every real rating
)

// PlanStop is the minimal POI projection carried through ordering and
// scheduling; it lives only for one itinerary build.
type PlanStop struct {
	PoiID     string
	Name      string
	Latitude  float64
	Longitude float64
	Category  string
	Rating    *float64
}

func (s PlanStop) Point() orb.Point {
	return orb.Point{s.Longitude, s.Latitude}
}

type ItineraryServiceInterface interface {
	BuildItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error)
}

type ItineraryService struct {
	provider    repositories.POIProvider
	recommender RecommendServiceInterface
}

func NewItineraryService(provider repositories.POIProvider, recommender RecommendServiceInterface) ItineraryServiceInterface {
	return &ItineraryService{
		provider:    provider,
		recommender: recommender,
	}
}

func (s *ItineraryService) BuildItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error) {
	if !req.StartLocation.Valid() {
		return nil, utils.ErrInvalidCoordinate
	}
	startMinute, err := utils.ParseClock(req.TimeWindow.Start)
	if err != nil {
		return nil, err
	}
	endMinute, err := utils.ParseClock(req.TimeWindow.End)
	if err != nil {
		return nil, err
	}

	stops := s.selectStops(ctx, req)
	ordered := orderStops(req.StartLocation.Point(), stops)

	items := make([]response_models.ItineraryItem, 0, len(ordered)+2)
	cursor := float64(startMinute)
	totalDistance := 0.0
	prev := req.StartLocation.Point()
	lunchInserted := false
	eveningInserted := false

	for _, stop := range ordered {
		distance := geoutil.Haversine(prev, stop.Point())
		travel := travelMinutes(distance, cursor)
		cursor += travel
		totalDistance += distance

		if !lunchInserted && cursor >= lunchMinute {
			items = append(items, breakItem("lunch-break", "Lunch Break", prev, cursor, lunchBreakMin))
			cursor += lunchBreakMin
			lunchInserted = true
		}

		dwell := dwellMinutes(stop.Category)
		startTime := utils.FormatClock(cursor)
		cursor += float64(dwell)
		items = append(items, response_models.ItineraryItem{
			PoiID:         stop.PoiID,
			Name:          stop.Name,
			Lat:           stop.Latitude,
			Lng:           stop.Longitude,
			StartTime:     startTime,
			EndTime:       utils.FormatClock(cursor),
			TravelMinutes: utils.Round1(travel),
			DistanceKm:    utils.Round2(distance),
		})
		prev = stop.Point()

		if !eveningInserted && cursor >= eveningMinute {
			items = append(items, breakItem("evening-break", "Sunset & Snacks", prev, cursor, eveningBreakMin))
			cursor += eveningBreakMin
			eveningInserted = true
		}

		// The day is full; remaining stops are dropped.
		if cursor >= float64(endMinute) {
			break
		}
	}

	totalTime := cursor - float64(startMinute)
	if totalTime < 0 {
		totalTime = 0
	}
	return &response_models.ItineraryResponse{
		Title:           titleCase(req.Mood) + " Trail",
		TotalDistanceKm: utils.Round2(totalDistance),
		TotalTimeMin:    utils.Round1(totalTime),
		Items:           items,
	}, nil
}

// selectStops applies the selection policy: explicitly requested ids first,
// then the scorer's picks for the mood, then the raw dataset; whichever
// source wins is thinned to the top-rated pair per category and capped for
// a manageable day.
func (s *ItineraryService) selectStops(ctx context.Context, req request_models.ItineraryRequest) []PlanStop {
	var candidates []PlanStop
	if len(req.PoiIDs) > 0 {
		for _, poi := range s.provider.ByIDs(req.PoiIDs) {
			candidates = append(candidates, planStopFromPOI(poi))
		}
	}
	if len(candidates) == 0 {
		recs, err := s.recommender.Recommend(ctx, request_models.RecommendRequest{
			Mood:     req.Mood,
			Prefs:    map[string]string{},
			Location: &req.StartLocation,
		})
		if err == nil {
			for _, rec := range recs {
				candidates = append(candidates, PlanStop{
					PoiID:     rec.ID,
					Name:      rec.Name,
					Latitude:  rec.Latitude,
					Longitude: rec.Longitude,
					Category:  rec.Category,
					Rating:    rec.Rating,
				})
			}
		}
	}
	if len(candidates) == 0 {
		for _, poi := range s.provider.All() {
			candidates = append(candidates, planStopFromPOI(poi))
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return ratingOrFloor(candidates[i]) > ratingOrFloor(candidates[j])
	})

	perCategory := make(map[string]int)
	selected := make([]PlanStop, 0, maxStopsPerDay)
	for _, stop := range candidates {
		if perCategory[stop.Category] >= maxPerCategory {
			continue
		}
		perCategory[stop.Category]++
		selected = append(selected, stop)
		if len(selected) == maxStopsPerDay {
			break
		}
	}
	return selected
}

func orderStops(start orb.Point, stops []PlanStop) []PlanStop {
	if len(stops) == 0 {
		return []PlanStop{}
	}
	points := make([]orb.Point, len(stops))
	for i, stop := range stops {
		points[i] = stop.Point()
	}
	ordered := make([]PlanStop, 0, len(stops))
	for _, idx := range geoutil.OrderRoute(start, points) {
		ordered = append(ordered, stops[idx])
	}
	return ordered
}

func planStopFromPOI(poi db_models.POI) PlanStop {
	return PlanStop{
		PoiID:     poi.ID,
		Name:      poi.Name,
		Latitude:  poi.Latitude,
		Longitude: poi.Longitude,
		Category:  poi.Category,
		Rating:    poi.Rating,
	}
}

func ratingOrFloor(stop PlanStop) float64 {
	if stop.Rating == nil {
		return absentRatingFloor
	}
	return *stop.Rating
}

func travelMinutes(distanceKm, currentMinute float64) float64 {
	hour := int(currentMinute/60) % 24
	minutes := geoutil.DurationMinutes(distanceKm, hour)
	if minutes < travelFloorMin {
		return travelFloorMin
	}
	return minutes
}

func dwellMinutes(category string) int {
	category = strings.ToLower(category)
	switch {
	case strings.Contains(category, "museum") || strings.Contains(category, "gallery"):
		return 90
	case strings.Contains(category, "heritage") || strings.Contains(category, "fort"):
		return 80
	case strings.Contains(category, "park") || strings.Contains(category, "water"):
		return 60
	default:
		return 75
	}
}

func breakItem(id, name string, at orb.Point, cursor, duration float64) response_models.ItineraryItem {
	return response_models.ItineraryItem{
		PoiID:     id,
		Name:      name,
		Lat:       at.Lat(),
		Lng:       at.Lon(),
		StartTime: utils.FormatClock(cursor),
		EndTime:   utils.FormatClock(cursor + duration),
	}
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

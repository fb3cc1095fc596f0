package services

import (
	"math/rand"

	"mumtrails/internal/models/response_models"
	"mumtrails/pkg/utils"
)

type weatherCondition struct {
	status      string
	description string
	icon        string
}

var mockConditions = []weatherCondition{
	{status: "sunny", description: "Clear skies with humid breeze", icon: "sun"},
	{status: "cloudy", description: "High clouds with pleasant wind", icon: "cloud"},
	{status: "rain", description: "Light coastal showers", icon: "rain"},
}

type WeatherServiceInterface interface {
	Current() response_models.WeatherResponse
}

// WeatherService is a mock provider; conditions are sampled per call with
// jittered coastal temperature and humidity.
type WeatherService struct{}

func NewWeatherService() WeatherServiceInterface {
	return &WeatherService{}
}

func (s *WeatherService) Current() response_models.WeatherResponse {
	base := mockConditions[rand.Intn(len(mockConditions))]
	return response_models.WeatherResponse{
		Status:       base.status,
		Description:  base.description,
		TemperatureC: utils.Round1(26 + rand.Float64()*5 - 2),
		Humidity:     60 + rand.Intn(26),
		Icon:         base.icon,
	}
}

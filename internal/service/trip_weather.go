package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"routeweather/trip-weather-service/internal/db/checklog"
	"routeweather/trip-weather-service/internal/providers"
)

// User-facing failure reasons. The two sentinels are the only fatal
// outcomes of a city aggregation; a missing precipitation forecast is
// degraded to a zero probability instead.
var (
	ErrCityNotFound       = errors.New("Не удалось найти город. Проверьте правильность написания.")
	ErrWeatherUnavailable = errors.New("Не удалось получить текущую погоду. Попробуйте позже.")
)

// WeatherReport is the normalized record assembled for one city.
type WeatherReport struct {
	City                     string
	Temperature              float64
	Humidity                 int
	WindSpeed                float64
	HasPrecipitation         bool
	PrecipitationProbability int
	WeatherText              string
}

// CityError tags an aggregation failure with the city it belongs to.
type CityError struct {
	City   string
	Reason error
}

func (e *CityError) Error() string {
	return fmt.Sprintf("Для города %s: %s", e.City, e.Reason)
}

func (e *CityError) Unwrap() error {
	return e.Reason
}

// TripResult holds the reports and threshold violations for both ends of
// a trip. Alert slices are nil when the weather is acceptable.
type TripResult struct {
	Start       WeatherReport
	End         WeatherReport
	StartAlerts []string
	EndAlerts   []string
}

type TripWeatherService interface {
	CityWeather(ctx context.Context, city string) (*WeatherReport, error)
	CheckTrip(ctx context.Context, startCity, endCity string) (*TripResult, error)
}

type tripWeatherService struct {
	weatherAPI providers.AccuWeatherAPI
	checkRepo  checklog.Repository
}

func NewTripWeatherService(weatherAPI providers.AccuWeatherAPI, checkRepo checklog.Repository) TripWeatherService {
	return &tripWeatherService{
		weatherAPI: weatherAPI,
		checkRepo:  checkRepo,
	}
}

// CityWeather runs the full pipeline for one city: location resolution,
// current conditions, then the next-hour precipitation probability.
// The calls are strictly sequential; each depends on the previous one.
func (s *tripWeatherService) CityWeather(ctx context.Context, city string) (*WeatherReport, error) {
	if city == "" {
		return nil, errors.New("city cannot be empty")
	}

	locationKey, err := s.weatherAPI.LocationKey(ctx, city)
	if err != nil {
		log.Debug().Err(err).Str("city", city).Msg("location resolution failed")
		return nil, ErrCityNotFound
	}

	conditions, err := s.weatherAPI.CurrentConditions(ctx, locationKey)
	if err != nil {
		log.Debug().Err(err).Str("city", city).Msg("current conditions fetch failed")
		return nil, ErrWeatherUnavailable
	}

	// Precipitation data is nice to have: when the forecast call fails
	// the probability is reported as 0 rather than failing the city.
	probability, err := s.weatherAPI.PrecipitationProbability(ctx, locationKey)
	if err != nil {
		log.Debug().Err(err).Str("city", city).Msg("precipitation fetch failed, defaulting to 0")
		probability = 0
	}

	return &WeatherReport{
		City:                     city,
		Temperature:              conditions.Temperature.Metric.Value,
		Humidity:                 conditions.RelativeHumidity,
		WindSpeed:                conditions.Wind.Speed.Metric.Value,
		HasPrecipitation:         conditions.HasPrecipitation,
		PrecipitationProbability: probability,
		WeatherText:              conditions.WeatherText,
	}, nil
}

// CheckTrip fetches weather for both cities, start first. Both pipelines
// always execute; when both fail the start city's error wins.
func (s *tripWeatherService) CheckTrip(ctx context.Context, startCity, endCity string) (*TripResult, error) {
	startReport, startErr := s.CityWeather(ctx, startCity)
	endReport, endErr := s.CityWeather(ctx, endCity)

	if startErr != nil {
		return nil, &CityError{City: startCity, Reason: startErr}
	}
	if endErr != nil {
		return nil, &CityError{City: endCity, Reason: endErr}
	}

	result := &TripResult{
		Start:       *startReport,
		End:         *endReport,
		StartAlerts: CheckBadWeather(*startReport),
		EndAlerts:   CheckBadWeather(*endReport),
	}

	go func() {
		if s.checkRepo != nil {
			if err := s.checkRepo.LogTripCheck(
				startCity, endCity,
				startReport.Temperature, endReport.Temperature,
				len(result.StartAlerts) > 0, len(result.EndAlerts) > 0,
			); err != nil {
				log.Log().Err(err).Msg("Failed to log trip check")
			}
		}
	}()

	return result, nil
}

package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrNoResults is returned when AccuWeather answers with an empty array,
// which it does for unknown cities instead of a 404.
var ErrNoResults = errors.New("no results in response")

type AccuWeatherAPI interface {
	LocationKey(ctx context.Context, city string) (string, error)
	CurrentConditions(ctx context.Context, locationKey string) (*CurrentConditions, error)
	PrecipitationProbability(ctx context.Context, locationKey string) (int, error)
	GetHTTPClient() *http.Client
}

type accuWeatherService struct {
	apiKey   string
	language string
	client   *http.Client
}

func NewAccuWeatherService(apiKey, language string) AccuWeatherAPI {
	return &accuWeatherService{
		apiKey:   apiKey,
		language: language,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type locationResult struct {
	Key string `json:"Key"`
}

type metricValue struct {
	Value float64 `json:"Value"`
	Unit  string  `json:"Unit"`
}

// CurrentConditions is the subset of an AccuWeather current-conditions
// record this service consumes.
type CurrentConditions struct {
	WeatherText      string `json:"WeatherText"`
	HasPrecipitation bool   `json:"HasPrecipitation"`
	RelativeHumidity int    `json:"RelativeHumidity"`
	Temperature      struct {
		Metric metricValue `json:"Metric"`
	} `json:"Temperature"`
	Wind struct {
		Speed struct {
			Metric metricValue `json:"Metric"`
		} `json:"Speed"`
	} `json:"Wind"`
}

type hourlyForecast struct {
	PrecipitationProbability int `json:"PrecipitationProbability"`
}

// TODO: move base url to config
func (s *accuWeatherService) LocationKey(ctx context.Context, city string) (string, error) {
	reqURL := fmt.Sprintf(
		"http://dataservice.accuweather.com/locations/v1/cities/search?apikey=%s&q=%s&language=%s",
		url.QueryEscape(s.apiKey), url.QueryEscape(city), url.QueryEscape(s.language),
	)

	var results []locationResult
	if err := s.getJSON(ctx, reqURL, &results); err != nil {
		return "", fmt.Errorf("location search failed: %w", err)
	}

	if len(results) == 0 {
		return "", fmt.Errorf("location search for %q: %w", city, ErrNoResults)
	}

	return results[0].Key, nil
}

func (s *accuWeatherService) CurrentConditions(ctx context.Context, locationKey string) (*CurrentConditions, error) {
	reqURL := fmt.Sprintf(
		"http://dataservice.accuweather.com/currentconditions/v1/%s?apikey=%s&language=%s&details=true",
		url.PathEscape(locationKey), url.QueryEscape(s.apiKey), url.QueryEscape(s.language),
	)

	var results []CurrentConditions
	if err := s.getJSON(ctx, reqURL, &results); err != nil {
		return nil, fmt.Errorf("current conditions request failed: %w", err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("current conditions for key %s: %w", locationKey, ErrNoResults)
	}

	return &results[0], nil
}

func (s *accuWeatherService) PrecipitationProbability(ctx context.Context, locationKey string) (int, error) {
	reqURL := fmt.Sprintf(
		"http://dataservice.accuweather.com/forecasts/v1/hourly/1hour/%s?apikey=%s&language=%s&details=true",
		url.PathEscape(locationKey), url.QueryEscape(s.apiKey), url.QueryEscape(s.language),
	)

	var results []hourlyForecast
	if err := s.getJSON(ctx, reqURL, &results); err != nil {
		return 0, fmt.Errorf("hourly forecast request failed: %w", err)
	}

	if len(results) == 0 {
		return 0, fmt.Errorf("hourly forecast for key %s: %w", locationKey, ErrNoResults)
	}

	return results[0].PrecipitationProbability, nil
}

func (s *accuWeatherService) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("AccuWeather returned status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("AccuWeather returned malformed JSON: %w", err)
	}

	return nil
}

func (s *accuWeatherService) GetHTTPClient() *http.Client {
	return s.client
}

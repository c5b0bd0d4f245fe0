package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"routeweather/trip-weather-service/internal/mocks"
	"routeweather/trip-weather-service/internal/providers"
	"routeweather/trip-weather-service/internal/service"
)

type TripWeatherServiceTestSuite struct {
	suite.Suite
	mockAPI  *mocks.MockAccuWeatherAPI
	mockRepo *mocks.MockRepository
	service  service.TripWeatherService
	ctx      context.Context
}

func (s *TripWeatherServiceTestSuite) SetupTest() {
	s.mockAPI = mocks.NewMockAccuWeatherAPI(s.T())
	s.mockRepo = mocks.NewMockRepository(s.T())
	s.service = service.NewTripWeatherService(s.mockAPI, s.mockRepo)
	s.ctx = context.Background()
}

func (s *TripWeatherServiceTestSuite) expectCitySuccess(city, key string, conditions *providers.CurrentConditions, probability int) {
	s.mockAPI.On("LocationKey", mock.Anything, city).Return(key, nil)
	s.mockAPI.On("CurrentConditions", mock.Anything, key).Return(conditions, nil)
	s.mockAPI.On("PrecipitationProbability", mock.Anything, key).Return(probability, nil)
}

func mildConditions(text string, temperature float64) *providers.CurrentConditions {
	conditions := &providers.CurrentConditions{
		WeatherText:      text,
		HasPrecipitation: false,
		RelativeHumidity: 60,
	}
	conditions.Temperature.Metric.Value = temperature
	conditions.Wind.Speed.Metric.Value = 12
	return conditions
}

func (s *TripWeatherServiceTestSuite) TestCityWeatherSuccess() {
	s.expectCitySuccess("Москва", "294021", mildConditions("Облачно", 21.5), 40)

	report, err := s.service.CityWeather(s.ctx, "Москва")

	s.NoError(err)
	s.Equal("Москва", report.City)
	s.Equal(21.5, report.Temperature)
	s.Equal(60, report.Humidity)
	s.Equal(12.0, report.WindSpeed)
	s.False(report.HasPrecipitation)
	s.Equal(40, report.PrecipitationProbability)
	s.Equal("Облачно", report.WeatherText)
}

func (s *TripWeatherServiceTestSuite) TestCityWeatherEmptyCity() {
	report, err := s.service.CityWeather(s.ctx, "")

	s.Error(err)
	s.Nil(report)
	s.mockAPI.AssertNotCalled(s.T(), "LocationKey")
}

func (s *TripWeatherServiceTestSuite) TestCityWeatherCityNotFound() {
	s.mockAPI.On("LocationKey", mock.Anything, "Atlantis").
		Return("", providers.ErrNoResults)

	report, err := s.service.CityWeather(s.ctx, "Atlantis")

	s.Nil(report)
	s.ErrorIs(err, service.ErrCityNotFound)
	s.mockAPI.AssertNotCalled(s.T(), "CurrentConditions")
	s.mockAPI.AssertNotCalled(s.T(), "PrecipitationProbability")
}

func (s *TripWeatherServiceTestSuite) TestCityWeatherConditionsUnavailable() {
	s.mockAPI.On("LocationKey", mock.Anything, "Москва").Return("294021", nil)
	s.mockAPI.On("CurrentConditions", mock.Anything, "294021").
		Return(nil, errors.New("upstream timeout"))

	report, err := s.service.CityWeather(s.ctx, "Москва")

	s.Nil(report)
	s.ErrorIs(err, service.ErrWeatherUnavailable)
	s.mockAPI.AssertNotCalled(s.T(), "PrecipitationProbability")
}

func (s *TripWeatherServiceTestSuite) TestCityWeatherPrecipitationFailureDegradesToZero() {
	s.mockAPI.On("LocationKey", mock.Anything, "Москва").Return("294021", nil)
	s.mockAPI.On("CurrentConditions", mock.Anything, "294021").
		Return(mildConditions("Ясно", 18), nil)
	s.mockAPI.On("PrecipitationProbability", mock.Anything, "294021").
		Return(0, errors.New("forecast unavailable"))

	report, err := s.service.CityWeather(s.ctx, "Москва")

	s.NoError(err)
	s.Equal(0, report.PrecipitationProbability)
}

func (s *TripWeatherServiceTestSuite) TestCheckTripSuccess() {
	s.expectCitySuccess("Москва", "294021", mildConditions("Облачно", 40), 10)
	s.expectCitySuccess("Казань", "295954", mildConditions("Ясно", 18), 10)

	logged := make(chan struct{})
	s.mockRepo.On("LogTripCheck", "Москва", "Казань", 40.0, 18.0, true, false).
		Return(nil).
		Run(func(mock.Arguments) { close(logged) })

	result, err := s.service.CheckTrip(s.ctx, "Москва", "Казань")

	s.NoError(err)
	s.Equal("Москва", result.Start.City)
	s.Equal("Казань", result.End.City)
	s.Equal([]string{"температура: 40°C"}, result.StartAlerts)
	s.Nil(result.EndAlerts)

	select {
	case <-logged:
	case <-time.After(2 * time.Second):
		s.Fail("trip check was not logged")
	}
}

func (s *TripWeatherServiceTestSuite) TestCheckTripStartCityErrorWins() {
	s.mockAPI.On("LocationKey", mock.Anything, "Atlantis").
		Return("", providers.ErrNoResults)
	s.expectCitySuccess("Казань", "295954", mildConditions("Ясно", 18), 10)

	result, err := s.service.CheckTrip(s.ctx, "Atlantis", "Казань")

	s.Nil(result)

	var cityErr *service.CityError
	s.ErrorAs(err, &cityErr)
	s.Equal("Atlantis", cityErr.City)
	s.ErrorIs(err, service.ErrCityNotFound)
	s.Equal("Для города Atlantis: Не удалось найти город. Проверьте правильность написания.", err.Error())

	// The end city pipeline still ran even though its result is discarded.
	s.mockAPI.AssertCalled(s.T(), "LocationKey", mock.Anything, "Казань")
	s.mockRepo.AssertNotCalled(s.T(), "LogTripCheck")
}

func (s *TripWeatherServiceTestSuite) TestCheckTripEndCityError() {
	s.expectCitySuccess("Москва", "294021", mildConditions("Облачно", 20), 10)
	s.mockAPI.On("LocationKey", mock.Anything, "Nowhere").
		Return("", providers.ErrNoResults)

	result, err := s.service.CheckTrip(s.ctx, "Москва", "Nowhere")

	s.Nil(result)

	var cityErr *service.CityError
	s.ErrorAs(err, &cityErr)
	s.Equal("Nowhere", cityErr.City)
	s.mockRepo.AssertNotCalled(s.T(), "LogTripCheck")
}

func (s *TripWeatherServiceTestSuite) TestCheckTripWithoutRepository() {
	s.service = service.NewTripWeatherService(s.mockAPI, nil)

	s.expectCitySuccess("Москва", "294021", mildConditions("Облачно", 20), 10)
	s.expectCitySuccess("Казань", "295954", mildConditions("Ясно", 18), 10)

	result, err := s.service.CheckTrip(s.ctx, "Москва", "Казань")

	s.NoError(err)
	s.NotNil(result)
}

func TestTripWeatherServiceSuite(t *testing.T) {
	suite.Run(t, new(TripWeatherServiceTestSuite))
}

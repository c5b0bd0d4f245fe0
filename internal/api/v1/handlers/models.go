package handlers

import (
	"routeweather/trip-weather-service/internal/service"
)

type CityView struct {
	Report service.WeatherReport
	Alerts []string
}

type ResultView struct {
	Start CityView
	End   CityView
}

type ErrorView struct {
	Message string
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"routeweather/trip-weather-service/internal/service"
)

type TripHandler struct {
	weatherService service.TripWeatherService
	timeout        time.Duration
}

func NewTripHandler(weatherService service.TripWeatherService, timeout time.Duration) *TripHandler {
	return &TripHandler{
		weatherService: weatherService,
		timeout:        timeout,
	}
}

func (h *TripHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/":
		h.Index(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/check_weather":
		h.CheckWeather(w, r)
	default:
		renderError(w, http.StatusNotFound, "Страница не найдена.")
	}
}

func (h *TripHandler) Index(w http.ResponseWriter, _ *http.Request) {
	renderTemplate(w, http.StatusOK, "index.html", nil)
}

func (h *TripHandler) CheckWeather(w http.ResponseWriter, r *http.Request) {
	startCity := strings.TrimSpace(r.FormValue("start_city"))
	endCity := strings.TrimSpace(r.FormValue("end_city"))

	// Both cities are required; nothing is fetched for a half-filled form.
	if startCity == "" || endCity == "" {
		renderError(w, http.StatusOK, "Вы не ввели название города.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.weatherService.CheckTrip(ctx, startCity, endCity)
	if err != nil {
		var cityErr *service.CityError
		if errors.As(err, &cityErr) {
			renderError(w, http.StatusOK, cityErr.Error())
			return
		}

		log.Error().Err(err).
			Str("start_city", startCity).
			Str("end_city", endCity).
			Msg("trip weather check failed")
		renderError(w, http.StatusInternalServerError, "Не удалось проверить погоду. Попробуйте позже.")
		return
	}

	renderTemplate(w, http.StatusOK, "result.html", ResultView{
		Start: CityView{Report: result.Start, Alerts: result.StartAlerts},
		End:   CityView{Report: result.End, Alerts: result.EndAlerts},
	})
}

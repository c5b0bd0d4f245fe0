package service

import (
	"fmt"
	"strconv"
)

// Fixed thresholds for flagging bad weather. Boundary values are fine:
// only strict violations count.
const (
	minTemperature          = 0.0
	maxTemperature          = 35.0
	maxWindSpeed            = 50.0
	maxPrecipitationPercent = 70
)

// CheckBadWeather applies the three threshold checks to a report and
// returns a description for each violated one, always in the order
// temperature, wind, precipitation. A nil result means the weather is
// acceptable.
func CheckBadWeather(report WeatherReport) []string {
	var conditions []string

	if report.Temperature < minTemperature || report.Temperature > maxTemperature {
		conditions = append(conditions, fmt.Sprintf("температура: %s°C", formatValue(report.Temperature)))
	}

	if report.WindSpeed > maxWindSpeed {
		conditions = append(conditions, fmt.Sprintf("скорость ветра: %s км/ч", formatValue(report.WindSpeed)))
	}

	if report.PrecipitationProbability > maxPrecipitationPercent {
		conditions = append(conditions, fmt.Sprintf("вероятность осадков: %d%%", report.PrecipitationProbability))
	}

	return conditions
}

// formatValue renders a measurement without trailing zeros (40, 21.5).
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package checklog

import (
	"time"
)

type TripCheck struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	StartCity        string    `json:"start_city" gorm:"index:idx_start_city;index:idx_start_city_created_at"`
	EndCity          string    `json:"end_city" gorm:"index:idx_end_city"`
	StartTemperature float64   `json:"start_temperature" gorm:"column:start_temperature"`
	EndTemperature   float64   `json:"end_temperature" gorm:"column:end_temperature"`
	StartBadWeather  bool      `json:"start_bad_weather" gorm:"column:start_bad_weather"`
	EndBadWeather    bool      `json:"end_bad_weather" gorm:"column:end_bad_weather"`
	CreatedAt        time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_start_city_created_at"`
}

func (TripCheck) TableName() string {
	return "trip_checks"
}

package checklog

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogTripCheck(startCity, endCity string, startTemp, endTemp float64, startBad, endBad bool) error
	GetRecentTripCheck(startCity string) (*TripCheck, error)
}

type TripCheckSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &TripCheckSQLRepository{db: db}
}

func (r *TripCheckSQLRepository) LogTripCheck(startCity, endCity string, startTemp, endTemp float64, startBad, endBad bool) error {
	check := TripCheck{
		StartCity:        startCity,
		EndCity:          endCity,
		StartTemperature: startTemp,
		EndTemperature:   endTemp,
		StartBadWeather:  startBad,
		EndBadWeather:    endBad,
		CreatedAt:        time.Now(),
	}

	return r.db.Create(&check).Error
}

func (r *TripCheckSQLRepository) GetRecentTripCheck(startCity string) (*TripCheck, error) {
	var check TripCheck
	err := r.db.Where("start_city = ?", startCity).Order("created_at DESC").First(&check).Error
	if err != nil {
		return nil, err
	}
	return &check, nil
}

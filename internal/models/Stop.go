package models

import (
	"time"
)

// Stop is one geolocated point of interest within a day, ordered by
// StopNumber. (trip_day_id, stop_number) is unique so number
// assignment cannot silently collide.
type Stop struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TripDayID  uint      `gorm:"uniqueIndex:uniq_day_stop;not null" json:"trip_day_id"`
	StopNumber int       `gorm:"uniqueIndex:uniq_day_stop;not null" json:"stop_number"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Latitude   float64   `gorm:"type:decimal(10,8);not null" json:"latitude"`
	Longitude  float64   `gorm:"type:decimal(11,8);not null" json:"longitude"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

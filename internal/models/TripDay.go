package models

import (
	"time"
)

// TripDay is one calendar day within a trip, carrying the display
// color used by the map frontend. No two days of a trip share a
// day number.
type TripDay struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TripID    uint      `gorm:"uniqueIndex:uniq_trip_day;not null" json:"trip_id"`
	DayNumber int       `gorm:"uniqueIndex:uniq_trip_day;not null" json:"day_number"`
	Date      time.Time `gorm:"type:date" json:"date"`
	Color     string    `gorm:"size:7;default:'#3388ff'" json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Stops []Stop `gorm:"foreignKey:TripDayID;constraint:OnDelete:CASCADE;" json:"stops,omitempty"`
}

package models

import (
	"time"
)

// Trip is the top-level itinerary entity. The viewer works against a
// single trip (id 1); the schema permits more.
type Trip struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Associations
	Days []TripDay `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE;" json:"days,omitempty"`
}

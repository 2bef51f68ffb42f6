package models

import (
	"time"
)

// TripStopRow is one row of trip_data_view: a stop joined with its
// day's date/color and its trip. Column names follow the view.
type TripStopRow struct {
	TripID     uint      `json:"trip_id"`
	DayNumber  int       `json:"day_number"`
	Date       time.Time `json:"date"`
	Color      string    `json:"color"`
	StopID     uint      `json:"stop_id"`
	StopNumber int       `json:"stop_number"`
	Location   string    `json:"location"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Notes      string    `json:"notes"`
}

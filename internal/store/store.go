package store

import (
	"context"
	"errors"

	"trip_viewer/internal/models"
)

// Store is the persistence interface used by the HTTP controllers.
type Store interface {
	// SetupSchema creates the tables and the read view if missing and
	// seeds the default trip. Safe to invoke repeatedly.
	SetupSchema(ctx context.Context) error

	// ImportTripData replaces all trip content with the fixed fall
	// itinerary and reports how many days were imported.
	ImportTripData(ctx context.Context) (int, error)

	// TripStops returns the view rows for one trip ordered by day
	// number then stop number. An unknown trip yields no rows.
	TripStops(ctx context.Context, tripID int) ([]models.TripStopRow, error)

	// CreateStop appends a stop to a day and returns its generated id.
	CreateStop(ctx context.Context, in NewStop) (uint, error)

	// UpdateStop overwrites the editable fields of one stop.
	UpdateStop(ctx context.Context, in StopUpdate) error

	// DeleteStop removes one stop by id.
	DeleteStop(ctx context.Context, stopID int) error

	Ping(ctx context.Context) error
}

// NewStop carries the fields of a stop being appended to a day.
type NewStop struct {
	TripID    int
	DayNumber int
	Name      string
	Latitude  float64
	Longitude float64
	Notes     string
}

// StopUpdate overwrites name, position and notes of an existing stop.
type StopUpdate struct {
	StopID    int
	Name      string
	Latitude  float64
	Longitude float64
	Notes     string
}

var (
	// ErrDayNotFound reports a (trip, day number) pair with no row.
	ErrDayNotFound = errors.New("day not found")

	// ErrStopNotFound reports a stop id with no row.
	ErrStopNotFound = errors.New("stop not found")

	// ErrSchemaMissing reports queries against tables or the view
	// before setup has created them.
	ErrSchemaMissing = errors.New("schema not initialized; invoke /setup-db first")
)

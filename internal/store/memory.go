package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"trip_viewer/internal/models"
)

// Memory is an in-memory Store used by tests and when running without
// a database. Semantics mirror the Postgres implementation, including
// the conflict-guarded seeding and the per-day stop numbering.
type Memory struct {
	mu     sync.Mutex
	nextID uint
	trips  map[uint]models.Trip
	days   map[uint]models.TripDay
	stops  map[uint]models.Stop
}

func NewMemory() *Memory {
	return &Memory{
		nextID: 1,
		trips:  map[uint]models.Trip{},
		days:   map[uint]models.TripDay{},
		stops:  map[uint]models.Stop{},
	}
}

func (m *Memory) SetupSchema(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Each insert skips when its unique constraint would fire, same
	// as the ON CONFLICT guards in the SQL path.
	if _, ok := m.trips[1]; !ok {
		now := time.Now()
		m.trips[1] = models.Trip{
			ID:          1,
			Name:        defaultSeed.Name,
			Description: defaultSeed.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	for _, d := range defaultSeed.Days {
		dayID, ok := m.dayIDLocked(1, d.Day)
		if !ok {
			dayID = m.allocID()
			now := time.Now()
			m.days[dayID] = models.TripDay{
				ID:        dayID,
				TripID:    1,
				DayNumber: d.Day,
				Date:      seedDate(d.Date),
				Color:     d.Color,
				CreatedAt: now,
				UpdatedAt: now,
			}
		}
		if !m.stopNumberTakenLocked(dayID, 1) {
			m.insertStopLocked(dayID, 1, d.Name, d.Lat, d.Lon, d.Notes)
		}
	}

	return nil
}

func (m *Memory) ImportTripData(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.trips = map[uint]models.Trip{}
	m.days = map[uint]models.TripDay{}
	m.stops = map[uint]models.Stop{}

	now := time.Now()
	m.trips[1] = models.Trip{
		ID:          1,
		Name:        fallImport.Name,
		Description: fallImport.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, d := range fallImport.Days {
		dayID := m.allocID()
		m.days[dayID] = models.TripDay{
			ID:        dayID,
			TripID:    1,
			DayNumber: d.Day,
			Date:      seedDate(d.Date),
			Color:     d.Color,
			CreatedAt: now,
			UpdatedAt: now,
		}
		m.insertStopLocked(dayID, 1, d.Name, d.Lat, d.Lon, d.Notes)
	}

	return len(fallImport.Days), nil
}

func (m *Memory) TripStops(ctx context.Context, tripID int) ([]models.TripStopRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var days []models.TripDay
	for _, d := range m.days {
		if d.TripID == uint(tripID) {
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].DayNumber < days[j].DayNumber })

	rows := []models.TripStopRow{}
	for _, d := range days {
		var stops []models.Stop
		for _, s := range m.stops {
			if s.TripDayID == d.ID {
				stops = append(stops, s)
			}
		}
		sort.Slice(stops, func(i, j int) bool { return stops[i].StopNumber < stops[j].StopNumber })
		for _, s := range stops {
			rows = append(rows, models.TripStopRow{
				TripID:     d.TripID,
				DayNumber:  d.DayNumber,
				Date:       d.Date,
				Color:      d.Color,
				StopID:     s.ID,
				StopNumber: s.StopNumber,
				Location:   s.Name,
				Latitude:   s.Latitude,
				Longitude:  s.Longitude,
				Notes:      s.Notes,
			})
		}
	}
	return rows, nil
}

func (m *Memory) CreateStop(ctx context.Context, in NewStop) (uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dayID, ok := m.dayIDLocked(uint(in.TripID), in.DayNumber)
	if !ok {
		return 0, ErrDayNotFound
	}

	next := 1
	for _, s := range m.stops {
		if s.TripDayID == dayID && s.StopNumber >= next {
			next = s.StopNumber + 1
		}
	}

	stop := m.insertStopLocked(dayID, next, in.Name, in.Latitude, in.Longitude, in.Notes)
	return stop.ID, nil
}

func (m *Memory) UpdateStop(ctx context.Context, in StopUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stop, ok := m.stops[uint(in.StopID)]
	if !ok {
		return ErrStopNotFound
	}
	stop.Name = in.Name
	stop.Latitude = in.Latitude
	stop.Longitude = in.Longitude
	stop.Notes = in.Notes
	stop.UpdatedAt = time.Now()
	m.stops[stop.ID] = stop
	return nil
}

func (m *Memory) DeleteStop(ctx context.Context, stopID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.stops[uint(stopID)]; !ok {
		return ErrStopNotFound
	}
	delete(m.stops, uint(stopID))
	return nil
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) allocID() uint {
	id := m.nextID
	m.nextID++
	return id
}

func (m *Memory) dayIDLocked(tripID uint, dayNumber int) (uint, bool) {
	for id, d := range m.days {
		if d.TripID == tripID && d.DayNumber == dayNumber {
			return id, true
		}
	}
	return 0, false
}

func (m *Memory) stopNumberTakenLocked(dayID uint, stopNumber int) bool {
	for _, s := range m.stops {
		if s.TripDayID == dayID && s.StopNumber == stopNumber {
			return true
		}
	}
	return false
}

func (m *Memory) insertStopLocked(dayID uint, stopNumber int, name string, lat, lon float64, notes string) models.Stop {
	now := time.Now()
	stop := models.Stop{
		ID:         m.allocID(),
		TripDayID:  dayID,
		StopNumber: stopNumber,
		Name:       name,
		Latitude:   lat,
		Longitude:  lon,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	m.stops[stop.ID] = stop
	return stop
}

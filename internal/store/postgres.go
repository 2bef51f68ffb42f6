package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trip_viewer/internal/models"
)

// Postgres implements Store on a pooled GORM connection. The pool is
// shared by all requests; no global handle is exported.
type Postgres struct {
	db *gorm.DB
}

// NewPostgres opens the connection pool against the given DSN.
func NewPostgres(dsn string) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return &Postgres{db: db}, nil
}

const tripDataView = `
CREATE OR REPLACE VIEW trip_data_view AS
SELECT
  t.id AS trip_id,
  t.name AS trip_name,
  td.day_number,
  td.date,
  td.color,
  s.id AS stop_id,
  s.stop_number,
  s.name AS location,
  s.latitude,
  s.longitude,
  s.notes
FROM trips t
JOIN trip_days td ON t.id = td.trip_id
JOIN stops s ON td.id = s.trip_day_id
ORDER BY t.id, td.day_number, s.stop_number`

// SetupSchema migrates the three tables, (re)defines the read view and
// seeds the default trip. Every seed insert is guarded by its table's
// unique constraint, so reruns leave existing content untouched.
func (p *Postgres) SetupSchema(ctx context.Context) error {
	db := p.db.WithContext(ctx)

	if err := db.AutoMigrate(&models.Trip{}, &models.TripDay{}, &models.Stop{}); err != nil {
		return err
	}
	if err := db.Exec(tripDataView).Error; err != nil {
		return err
	}

	trip := models.Trip{ID: 1, Name: defaultSeed.Name, Description: defaultSeed.Description}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&trip).Error; err != nil {
		return err
	}

	for _, d := range defaultSeed.Days {
		day := models.TripDay{TripID: trip.ID, DayNumber: d.Day, Date: seedDate(d.Date), Color: d.Color}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trip_id"}, {Name: "day_number"}},
			DoNothing: true,
		}).Create(&day).Error; err != nil {
			return err
		}
	}

	// Day ids may predate this run, so resolve them instead of
	// trusting the ids of conflict-guarded inserts.
	dayIDs, err := p.dayIDs(ctx, int(trip.ID))
	if err != nil {
		return err
	}
	for _, d := range defaultSeed.Days {
		stop := models.Stop{
			TripDayID:  dayIDs[d.Day],
			StopNumber: 1,
			Name:       d.Name,
			Latitude:   d.Lat,
			Longitude:  d.Lon,
			Notes:      d.Notes,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trip_day_id"}, {Name: "stop_number"}},
			DoNothing: true,
		}).Create(&stop).Error; err != nil {
			return err
		}
	}

	return nil
}

// ImportTripData replaces all trip content with the fall itinerary in
// a single transaction: a mid-sequence failure leaves prior state
// intact.
func (p *Postgres) ImportTripData(ctx context.Context) (int, error) {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Deletion order follows the foreign-key direction.
		for _, table := range []string{"stops", "trip_days", "trips"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}

		trip := models.Trip{ID: 1, Name: fallImport.Name, Description: fallImport.Description}
		if err := tx.Create(&trip).Error; err != nil {
			return err
		}

		for _, d := range fallImport.Days {
			day := models.TripDay{TripID: trip.ID, DayNumber: d.Day, Date: seedDate(d.Date), Color: d.Color}
			if err := tx.Create(&day).Error; err != nil {
				return err
			}
			stop := models.Stop{
				TripDayID:  day.ID,
				StopNumber: 1,
				Name:       d.Name,
				Latitude:   d.Lat,
				Longitude:  d.Lon,
				Notes:      d.Notes,
			}
			if err := tx.Create(&stop).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, mapPgError(err)
	}
	return len(fallImport.Days), nil
}

const tripStopsQuery = `
SELECT trip_id, day_number, date, color, stop_id, stop_number, location,
       latitude::float8 AS latitude, longitude::float8 AS longitude,
       COALESCE(notes, '') AS notes
FROM trip_data_view
WHERE trip_id = ?
ORDER BY day_number, stop_number`

func (p *Postgres) TripStops(ctx context.Context, tripID int) ([]models.TripStopRow, error) {
	rows := []models.TripStopRow{}
	if err := p.db.WithContext(ctx).Raw(tripStopsQuery, tripID).Scan(&rows).Error; err != nil {
		return nil, mapPgError(err)
	}
	return rows, nil
}

// CreateStop locks the parent day row for the duration of the
// transaction, so concurrent creates on the same day cannot compute
// the same next stop number.
func (p *Postgres) CreateStop(ctx context.Context, in NewStop) (uint, error) {
	var id uint
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var day models.TripDay
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("trip_id = ? AND day_number = ?", in.TripID, in.DayNumber).
			First(&day).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDayNotFound
		}
		if err != nil {
			return err
		}

		var next int
		if err := tx.Model(&models.Stop{}).
			Where("trip_day_id = ?", day.ID).
			Select("COALESCE(MAX(stop_number), 0) + 1").
			Scan(&next).Error; err != nil {
			return err
		}

		stop := models.Stop{
			TripDayID:  day.ID,
			StopNumber: next,
			Name:       in.Name,
			Latitude:   in.Latitude,
			Longitude:  in.Longitude,
			Notes:      in.Notes,
		}
		if err := tx.Create(&stop).Error; err != nil {
			return err
		}
		id = stop.ID
		return nil
	})
	if err != nil {
		return 0, mapPgError(err)
	}
	return id, nil
}

func (p *Postgres) UpdateStop(ctx context.Context, in StopUpdate) error {
	res := p.db.WithContext(ctx).Model(&models.Stop{}).
		Where("id = ?", in.StopID).
		Updates(map[string]interface{}{
			"name":      in.Name,
			"latitude":  in.Latitude,
			"longitude": in.Longitude,
			"notes":     in.Notes,
		})
	if res.Error != nil {
		return mapPgError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrStopNotFound
	}
	return nil
}

func (p *Postgres) DeleteStop(ctx context.Context, stopID int) error {
	res := p.db.WithContext(ctx).Delete(&models.Stop{}, stopID)
	if res.Error != nil {
		return mapPgError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrStopNotFound
	}
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (p *Postgres) dayIDs(ctx context.Context, tripID int) (map[int]uint, error) {
	var days []models.TripDay
	if err := p.db.WithContext(ctx).Where("trip_id = ?", tripID).Find(&days).Error; err != nil {
		return nil, err
	}
	ids := make(map[int]uint, len(days))
	for _, d := range days {
		ids[d.DayNumber] = d.ID
	}
	return ids, nil
}

// mapPgError translates driver error codes into store sentinels.
// 42P01 (undefined_table) means setup has never run against this
// database.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "42P01" {
		return ErrSchemaMissing
	}
	return err
}

func seedDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

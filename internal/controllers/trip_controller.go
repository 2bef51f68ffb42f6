package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"trip_viewer/internal/store"
)

// TripController serves the method-dispatched /trip-data endpoint and
// the GeoJSON export.
type TripController struct {
	Store store.Store
}

// StopResponse is one stop as the map frontend consumes it.
type StopResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Notes string  `json:"notes"`
	Date  string  `json:"date"`
}

// DayResponse groups one day's ordered stops with its display metadata.
type DayResponse struct {
	Color string         `json:"color"`
	Date  string         `json:"date"`
	Stops []StopResponse `json:"stops"`
}

const dateLayout = "2006-01-02"

// GetTripData returns the whole itinerary folded into a mapping keyed
// by day number. A trip with no rows yields an empty mapping, not an
// error.
func (tc *TripController) GetTripData(c *gin.Context) {
	tripID := queryInt(c, "tripId", 1)

	rows, err := tc.Store.TripStops(c.Request.Context(), tripID)
	if err != nil {
		logrus.WithError(err).Error("GetTripData: reading trip_data_view failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	data := map[int]*DayResponse{}
	for _, row := range rows {
		day, ok := data[row.DayNumber]
		if !ok {
			day = &DayResponse{
				Color: row.Color,
				Date:  row.Date.Format(dateLayout),
				Stops: []StopResponse{},
			}
			data[row.DayNumber] = day
		}
		day.Stops = append(day.Stops, StopResponse{
			ID:    row.StopID,
			Name:  row.Location,
			Lat:   row.Latitude,
			Lon:   row.Longitude,
			Notes: row.Notes,
			Date:  row.Date.Format(dateLayout),
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "totalDays": len(data)})
}

// CreateStop appends a stop to a day; the store assigns the next stop
// number under a lock on the parent day.
func (tc *TripController) CreateStop(c *gin.Context) {
	var input struct {
		DayNumber int      `json:"dayNumber" binding:"required"`
		Name      string   `json:"name" binding:"required"`
		Latitude  *float64 `json:"latitude" binding:"required"`
		Longitude *float64 `json:"longitude" binding:"required"`
		Notes     string   `json:"notes"`
		TripID    int      `json:"tripId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateStop: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.TripID == 0 {
		input.TripID = 1
	}

	stopID, err := tc.Store.CreateStop(c.Request.Context(), store.NewStop{
		TripID:    input.TripID,
		DayNumber: input.DayNumber,
		Name:      input.Name,
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		Notes:     input.Notes,
	})
	if errors.Is(err, store.ErrDayNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Day not found"})
		return
	}
	if err != nil {
		logrus.WithError(err).Error("CreateStop: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "stopId": stopID, "message": "Stop created successfully"})
}

// UpdateStop overwrites name, position and notes of an existing stop
// and refreshes its modification timestamp.
func (tc *TripController) UpdateStop(c *gin.Context) {
	var input struct {
		StopID    int      `json:"stopId" binding:"required"`
		Name      string   `json:"name" binding:"required"`
		Latitude  *float64 `json:"latitude" binding:"required"`
		Longitude *float64 `json:"longitude" binding:"required"`
		Notes     string   `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("UpdateStop: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	err := tc.Store.UpdateStop(c.Request.Context(), store.StopUpdate{
		StopID:    input.StopID,
		Name:      input.Name,
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		Notes:     input.Notes,
	})
	if errors.Is(err, store.ErrStopNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stop not found"})
		return
	}
	if err != nil {
		logrus.WithError(err).Error("UpdateStop: update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Stop updated successfully"})
}

// DeleteStop removes one stop by the stopId query parameter.
func (tc *TripController) DeleteStop(c *gin.Context) {
	stopID, err := strconv.Atoi(c.Query("stopId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stopId"})
		return
	}

	err = tc.Store.DeleteStop(c.Request.Context(), stopID)
	if errors.Is(err, store.ErrStopNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stop not found"})
		return
	}
	if err != nil {
		logrus.WithError(err).Error("DeleteStop: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Stop deleted successfully"})
}

// GetTripGeoJSON renders the itinerary as a FeatureCollection of
// points for map layers that consume GeoJSON directly.
func (tc *TripController) GetTripGeoJSON(c *gin.Context) {
	tripID := queryInt(c, "tripId", 1)

	rows, err := tc.Store.TripStops(c.Request.Context(), tripID)
	if err != nil {
		logrus.WithError(err).Error("GetTripGeoJSON: reading trip_data_view failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	fc := geojson.FeatureCollection{Features: []*geojson.Feature{}}
	for _, row := range rows {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       strconv.FormatUint(uint64(row.StopID), 10),
			Geometry: geom.NewPointFlat(geom.XY, []float64{row.Longitude, row.Latitude}),
			Properties: map[string]interface{}{
				"day":   row.DayNumber,
				"name":  row.Location,
				"notes": row.Notes,
				"color": row.Color,
				"date":  row.Date.Format(dateLayout),
			},
		})
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		logrus.WithError(err).Error("GetTripGeoJSON: encoding failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Encoding error", "details": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", body)
}

// queryInt reads an integer query parameter, falling back when absent
// or unparsable.
func queryInt(c *gin.Context, key string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil {
		return v
	}
	return fallback
}

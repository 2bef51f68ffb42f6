package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip_viewer/internal/middleware"
	"trip_viewer/internal/store"
)

// tripDataBody mirrors the GET /trip-data response shape.
type tripDataBody struct {
	Success   bool `json:"success"`
	TotalDays int  `json:"totalDays"`
	Data      map[string]struct {
		Color string `json:"color"`
		Date  string `json:"date"`
		Stops []struct {
			ID    uint    `json:"id"`
			Name  string  `json:"name"`
			Lat   float64 `json:"lat"`
			Lon   float64 `json:"lon"`
			Notes string  `json:"notes"`
			Date  string  `json:"date"`
		} `json:"stops"`
	} `json:"data"`
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return middleware.EnableCORS(SetupRouter(store.NewMemory()))
}

func do(h http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func getTripData(t *testing.T, h http.Handler, target string) tripDataBody {
	t.Helper()
	rr := do(h, http.MethodGet, target, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var body tripDataBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestSetupThenGetDefaultsToTripOne(t *testing.T) {
	h := newTestHandler(t)

	rr := do(h, http.MethodPost, "/setup-db", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	body := getTripData(t, h, "/trip-data")
	assert.True(t, body.Success)
	assert.Equal(t, 13, body.TotalDays)

	dayOne, ok := body.Data["1"]
	require.True(t, ok)
	require.Len(t, dayOne.Stops, 1)
	assert.Equal(t, "Boston Common", dayOne.Stops[0].Name)
	assert.InDelta(t, 42.3551, dayOne.Stops[0].Lat, 1e-9)
	assert.InDelta(t, -71.0656, dayOne.Stops[0].Lon, 1e-9)
	assert.Equal(t, "2024-09-15", dayOne.Date)
	assert.Equal(t, "#ff6b6b", dayOne.Color)
}

func TestGetUnknownTripIsEmptyNotAnError(t *testing.T) {
	h := newTestHandler(t)
	do(h, http.MethodPost, "/setup-db", nil)

	body := getTripData(t, h, "/trip-data?tripId=2")
	assert.True(t, body.Success)
	assert.Equal(t, 0, body.TotalDays)
	assert.Empty(t, body.Data)
}

func TestCreateStopFlow(t *testing.T) {
	h := newTestHandler(t)
	do(h, http.MethodPost, "/setup-db", nil)

	payload := []byte(`{"dayNumber":1,"name":"Test Stop","latitude":1,"longitude":2,"notes":"x","tripId":1}`)
	rr := do(h, http.MethodPost, "/trip-data", payload)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created struct {
		Success bool   `json:"success"`
		StopID  uint   `json:"stopId"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.NotZero(t, created.StopID)
	assert.Equal(t, "Stop created successfully", created.Message)

	body := getTripData(t, h, "/trip-data")
	dayOne := body.Data["1"]
	require.Len(t, dayOne.Stops, 2)
	assert.Equal(t, created.StopID, dayOne.Stops[1].ID)
	assert.Equal(t, "Test Stop", dayOne.Stops[1].Name)
}

func TestCreateStopDayNotFound(t *testing.T) {
	h := newTestHandler(t)
	do(h, http.MethodPost, "/setup-db", nil)

	payload := []byte(`{"dayNumber":99,"name":"Nowhere","latitude":1,"longitude":2}`)
	rr := do(h, http.MethodPost, "/trip-data", payload)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Day not found")

	// Nothing was inserted.
	body := getTripData(t, h, "/trip-data")
	total := 0
	for _, day := range body.Data {
		total += len(day.Stops)
	}
	assert.Equal(t, 13, total)
}

func TestCreateStopRejectsMalformedBody(t *testing.T) {
	h := newTestHandler(t)
	do(h, http.MethodPost, "/setup-db", nil)

	for _, payload := range []string{
		`{"dayNumber":1,"latitude":1,"longitude":2}`, // missing name
		`{"name":"No Day","latitude":1,"longitude":2}`,
		`{not json`,
	} {
		rr := do(h, http.MethodPost, "/trip-data", []byte(payload))
		assert.Equal(t, http.StatusBadRequest, rr.Code, payload)
	}
}

func TestUpdateStop(t *testing.T) {
	h := newTestHandler(t)
	do(h, http.MethodPost, "/setup-db", nil)

	body := getTripData(t, h, "/trip-data")
	target := body.Data["1"].Stops[0]

	payload := fmt.Sprintf(`{"stopId":%d,"name":"Renamed","latitude":10,"longitude":20,"notes":"updated"}`, target.ID)
	rr := do(h, http.MethodPut, "/trip-data", []byte(payload))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), "Stop updated successfully")

	body = getTripData(t, h, "/trip-data")
	updated := body.Data["1"].Stops[0]
	assert.Equal(t, target.ID, updated.ID)
	assert.Equal(t, "Renamed", updated.Name)
	assert.InDelta(t, 10, updated.Lat, 1e-9)
	assert.InDelta(t, 20, updated.Lon, 1e-9)
	assert.Equal(t, "updated", updated.Notes)

	rr = do(h, http.MethodPut, "/trip-data", []byte(`{"stopId":999999,"name":"x","latitude":1,"longitude":2}`))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Stop not found")
}

func TestDeleteStop(t *testing.T) {
	h := newTestHandler(t)
	do(h, http.MethodPost, "/setup-db", nil)

	body := getTripData(t, h, "/trip-data")
	target := body.Data["1"].Stops[0]

	url := fmt.Sprintf("/trip-data?stopId=%d", target.ID)
	rr := do(h, http.MethodDelete, url, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	body = getTripData(t, h, "/trip-data")
	assert.Equal(t, 12, body.TotalDays) // day 1 had a single stop

	rr = do(h, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(h, http.MethodDelete, "/trip-data?stopId=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestImportEndpoint(t *testing.T) {
	h := newTestHandler(t)
	do(h, http.MethodPost, "/setup-db", nil)

	rr := do(h, http.MethodPost, "/import-data", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var imported struct {
		Success  bool `json:"success"`
		Imported int  `json:"imported"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &imported))
	assert.True(t, imported.Success)
	assert.Equal(t, 13, imported.Imported)

	body := getTripData(t, h, "/trip-data")
	assert.Equal(t, 13, body.TotalDays)
	assert.Equal(t, "Granville, MA", body.Data["1"].Stops[0].Name)
	assert.Equal(t, "2024-10-03", body.Data["1"].Date)

	// Rerun lands in the same end state.
	rr = do(h, http.MethodPost, "/import-data", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body = getTripData(t, h, "/trip-data")
	assert.Equal(t, 13, body.TotalDays)
}

func TestPreflightShortCircuits(t *testing.T) {
	h := newTestHandler(t)

	rr := do(h, http.MethodOptions, "/trip-data", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestUnsupportedMethod(t *testing.T) {
	h := newTestHandler(t)

	rr := do(h, http.MethodPatch, "/trip-data", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Contains(t, rr.Body.String(), "Method not allowed")
}

func TestGeoJSONExport(t *testing.T) {
	h := newTestHandler(t)
	do(h, http.MethodPost, "/setup-db", nil)

	rr := do(h, http.MethodGet, "/trip-data/geojson", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/geo+json")

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 13)

	first := fc.Features[0]
	assert.Equal(t, "Point", first.Geometry.Type)
	require.Len(t, first.Geometry.Coordinates, 2)
	assert.InDelta(t, -71.0656, first.Geometry.Coordinates[0], 1e-9)
	assert.InDelta(t, 42.3551, first.Geometry.Coordinates[1], 1e-9)
	assert.Equal(t, "Boston Common", first.Properties["name"])
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t)
	rr := do(h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

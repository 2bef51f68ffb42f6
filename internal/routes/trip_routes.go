package routes

import (
	"github.com/gin-gonic/gin"

	"trip_viewer/internal/controllers"
	"trip_viewer/internal/store"
)

// TripRoutes registers the method-dispatched trip data endpoint.
func TripRoutes(r *gin.Engine, s store.Store) {
	tc := &controllers.TripController{Store: s}

	r.GET("/trip-data", tc.GetTripData)
	r.POST("/trip-data", tc.CreateStop)
	r.PUT("/trip-data", tc.UpdateStop)
	r.DELETE("/trip-data", tc.DeleteStop)

	r.GET("/trip-data/geojson", tc.GetTripGeoJSON)
}

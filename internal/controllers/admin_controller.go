package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"trip_viewer/internal/store"
)

// AdminController exposes the operator-invoked schema setup and bulk
// import endpoints.
type AdminController struct {
	Store store.Store
}

// SetupDatabase ensures tables, view and default seed content exist.
func (ac *AdminController) SetupDatabase(c *gin.Context) {
	if err := ac.Store.SetupSchema(c.Request.Context()); err != nil {
		logrus.WithError(err).Error("SetupDatabase failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database setup failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Database setup completed successfully"})
}

// ImportData resets the store to the fixed fall itinerary.
func (ac *AdminController) ImportData(c *gin.Context) {
	imported, err := ac.Store.ImportTripData(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("ImportData failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Data imported successfully", "imported": imported})
}

// Health reports liveness and store reachability.
func (ac *AdminController) Health(c *gin.Context) {
	if err := ac.Store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

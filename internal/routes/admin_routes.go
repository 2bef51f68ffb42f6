package routes

import (
	"github.com/gin-gonic/gin"

	"trip_viewer/internal/controllers"
	"trip_viewer/internal/store"
)

// AdminRoutes registers the operator endpoints. Setup and import
// answer both verbs; operators invoke them straight from a browser.
func AdminRoutes(r *gin.Engine, s store.Store) {
	ac := &controllers.AdminController{Store: s}

	r.GET("/setup-db", ac.SetupDatabase)
	r.POST("/setup-db", ac.SetupDatabase)
	r.GET("/import-data", ac.ImportData)
	r.POST("/import-data", ac.ImportData)

	r.GET("/healthz", ac.Health)
}

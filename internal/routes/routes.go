package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"trip_viewer/internal/store"
)

// SetupRouter wires every endpoint against the given store.
func SetupRouter(s store.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Request logging middleware
	r.Use(ginlog.SetLogger())

	// A known path hit with an unsupported verb is a client error,
	// not a missing route.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	TripRoutes(r, s)
	AdminRoutes(r, s)

	return r
}

package route

import (
	"net/http"

	"Mainu/controllers"
	"Mainu/handlers"
	"Mainu/services"

	"github.com/gin-gonic/gin"
)

// Dependencies are the services the v1 controllers are built from.
type Dependencies struct {
	Scan       *services.ScanService
	Sessions   *services.SessionService
	Captures   *services.CaptureService
	ShareLinks services.ShareLinkGenerator
	Analytics  services.AnalyticsTracker
}

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	menuController := controllers.NewMenuController(deps.Scan, deps.Sessions, deps.ShareLinks, deps.Analytics)
	cartController := controllers.NewCartController(deps.Sessions, deps.Analytics)
	captureController := controllers.NewCaptureController(deps.Captures, deps.Scan)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterMenuRoutes(v1Routes, menuController)
		handlers.RegisterCartRoutes(v1Routes, cartController)
		handlers.RegisterCaptureRoutes(v1Routes, captureController)
	}
}

package handlers

import (
	"Mainu/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCaptureRoutes(router *gin.RouterGroup, captureController *controllers.CaptureController) {
	captureGroup := router.Group("/captures/:session")

	{
		captureGroup.POST("/pages", captureController.AddPage)
		captureGroup.GET("/pages", captureController.ListPages)
		captureGroup.DELETE("/pages/:pageId", captureController.RemovePage)
		captureGroup.DELETE("", captureController.Reset)
		captureGroup.POST("/process", captureController.Process)
	}
}

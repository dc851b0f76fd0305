package handlers

import (
	"Mainu/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterMenuRoutes(router *gin.RouterGroup, menuController *controllers.MenuController) {
	menuGroup := router.Group("/menus")

	{
		menuGroup.POST("", menuController.SubmitMenu)
		menuGroup.GET("/:id", menuController.GetMenu)
		menuGroup.DELETE("/:id", menuController.EndSession)
		menuGroup.GET("/:id/status", menuController.PollStatus)
		menuGroup.POST("/:id/share", menuController.CreateShareLink)
	}
}

package handlers

import (
	"Mainu/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCartRoutes(router *gin.RouterGroup, cartController *controllers.CartController) {
	menuGroup := router.Group("/menus/:id")

	{
		menuGroup.GET("/cart", cartController.GetCart)
		menuGroup.DELETE("/cart", cartController.ResetCart)
		menuGroup.PUT("/cart/items/:dishId", cartController.SetQuantity)
		menuGroup.POST("/cart/items/:dishId/:action", cartController.UpdateItem)
		menuGroup.POST("/order", cartController.FinalizeOrder)
	}
}

package controllers

import (
	"net/http"

	"Mainu/models"
	"Mainu/services"
	"Mainu/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartController struct {
	Sessions  *services.SessionService
	Analytics services.AnalyticsTracker
}

func NewCartController(sessions *services.SessionService, analytics services.AnalyticsTracker) *CartController {
	return &CartController{Sessions: sessions, Analytics: analytics}
}

func (h *CartController) GetCart(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	cart, err := h.Sessions.Cart(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Cart fetched successfully", cart)
}

// UpdateItem applies increment, decrement or toggle to one dish.
func (h *CartController) UpdateItem(c *gin.Context) {
	var apply func(cart *models.OrderCart, dish models.MenuDish)
	switch c.Param("action") {
	case "increment":
		apply = func(cart *models.OrderCart, dish models.MenuDish) { cart.Increment(dish) }
	case "decrement":
		apply = func(cart *models.OrderCart, dish models.MenuDish) { cart.Decrement(dish) }
	case "toggle":
		apply = func(cart *models.OrderCart, dish models.MenuDish) { cart.Toggle(dish) }
	default:
		utils.ErrorResponse(c, http.StatusNotFound, "Unknown cart action")
		return
	}
	h.update(c, apply)
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *CartController) SetQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	h.update(c, func(cart *models.OrderCart, dish models.MenuDish) {
		cart.SetQuantity(*req.Quantity, dish)
	})
}

func (h *CartController) update(c *gin.Context, apply func(cart *models.OrderCart, dish models.MenuDish)) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	dishID, ok := uuidParam(c, "dishId")
	if !ok {
		return
	}
	cart, err := h.Sessions.UpdateCart(id, dishID, apply)
	if err != nil {
		abortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Cart updated", cart)
}

func (h *CartController) ResetCart(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	cart, err := h.Sessions.UpdateCart(id, uuid.Nil, func(cart *models.OrderCart, _ models.MenuDish) {
		cart.Reset()
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Cart cleared", cart)
}

// FinalizeOrder returns the summary to show the waiter.
func (h *CartController) FinalizeOrder(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	cart, err := h.Sessions.Cart(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if cart.TotalItems == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Cart is empty")
		return
	}
	h.Analytics.Track(models.OrderFinalized(cart.TotalItems))
	utils.SuccessResponse(c, http.StatusOK, "Order ready", cart)
}

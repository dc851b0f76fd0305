package controllers

import (
	"context"
	"errors"
	"net/http"

	"Mainu/services"
	"Mainu/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// processingFailedMessage is the single message shown for every pipeline failure;
// the code field tells clients which one it was.
const processingFailedMessage = "Unable to process the menu right now. Please try again."

// toCustomError maps service errors onto HTTP statuses.
func toCustomError(err error) *utils.CustomError {
	code := services.ErrorCode(err)
	switch {
	case errors.Is(err, services.ErrEmptyRecognizedText):
		return utils.NewCodedError(http.StatusBadRequest, code, processingFailedMessage)
	case errors.Is(err, services.ErrEmptyMenu):
		return utils.NewCodedError(http.StatusUnprocessableEntity, code, processingFailedMessage)
	case errors.Is(err, services.ErrPollingUnsupported):
		return utils.NewCodedError(http.StatusNotImplemented, code, "Status polling is not supported by this backend")
	case errors.Is(err, services.ErrSessionNotFound):
		return utils.NewCodedError(http.StatusNotFound, "session_not_found", "Menu not found")
	case errors.Is(err, services.ErrDishNotFound):
		return utils.NewCodedError(http.StatusNotFound, "dish_not_found", "Dish not found in this menu")
	case errors.Is(err, services.ErrNoCapturedPages):
		return utils.NewCodedError(http.StatusBadRequest, "no_captured_pages", "Add at least one menu page to get started.")
	case errors.Is(err, services.ErrUnsupportedImage):
		return utils.NewCodedError(http.StatusUnsupportedMediaType, "unsupported_image", err.Error())
	case errors.Is(err, services.ErrWritingFailed):
		return utils.NewCodedError(http.StatusInternalServerError, "writing_failed", "We couldn't save the photo. Please retry.")
	case errors.Is(err, context.DeadlineExceeded):
		return utils.NewCodedError(http.StatusGatewayTimeout, "timeout", processingFailedMessage)
	case code != "internal":
		return utils.NewCodedError(http.StatusBadGateway, code, processingFailedMessage)
	default:
		return utils.NewCustomError(http.StatusInternalServerError, "Internal Server Error")
	}
}

func abortWithError(c *gin.Context, err error) {
	customErr := toCustomError(err)
	utils.CodedErrorResponse(c, customErr.StatusCode, customErr.Code, customErr.Message)
}

// uuidParam parses a path parameter, answering 400 when it is not a UUID.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

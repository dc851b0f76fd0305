package middleware

import (
	"errors"
	"net/http"

	"Mainu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandlerMiddleware turns errors attached with c.Error into JSON responses.
func ErrorHandlerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var customErr *utils.CustomError
		if errors.As(err, &customErr) {
			utils.CodedErrorResponse(c, customErr.StatusCode, customErr.Code, customErr.Message)
			return
		}

		logger.Error("Unhandled request error", zap.String("path", c.FullPath()), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
	}
}

// internal/handlers/errors.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bookreview/bookreview-backend/internal/services"
	"github.com/bookreview/bookreview-backend/internal/utils"
)

// respondServiceError translates the service error taxonomy to HTTP.
// Unexpected failures are logged with context and reported with a generic
// message, never leaking internals.
func respondServiceError(c *gin.Context, err error, operation, fallback string) {
	switch {
	case services.IsValidation(err):
		utils.BadRequestResponse(c, err.Error())
	case services.IsNotFound(err):
		utils.NotFoundResponse(c, err.Error())
	default:
		logrus.WithError(err).WithField("operation", operation).Error("request failed")
		utils.InternalErrorResponse(c, fallback)
	}
}

// Package api exposes the HTTP surface of the service.
package api

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/vidnotes/vidnotes/internal/errors"
)

func respondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondError maps an error to its HTTP status and user-facing message
func respondError(c *gin.Context, err error) {
	code := apperrors.Code(err)
	c.JSON(apperrors.HTTPStatus(err), gin.H{
		"success": false,
		"code":    code,
		"error":   apperrors.UserMessage(code),
	})
}

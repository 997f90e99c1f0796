package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rvconsign/internal/pkg/outcome"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// SuccessWithEffects reports the primary write together with the result of
// every secondary effect it triggered.
func SuccessWithEffects(c *gin.Context, statusCode int, data interface{}, effects outcome.Effects) {
	if effects == nil {
		effects = outcome.Effects{}
	}
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
		"effects": effects,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func ValidationFailed(c *gin.Context, details map[string]string) {
	ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, "NOT_FOUND", message)
}

// Internal exposes the underlying error text, matching how store failures
// have always been reported to clients.
func Internal(c *gin.Context, err error) {
	_ = c.Error(err)
	Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/greeting-service/internal/validation"
)

// respondBindError answers a failed bind or validation.
// Rule violations get 422 with per-field details, anything else
// (malformed JSON, unparsable query values) gets 400.
func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)

	if details, ok := validation.Describe(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_failed",
			"message": validation.Summary(details),
			"details": details,
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid_request",
		"message": "Invalid request: " + err.Error(),
	})
}

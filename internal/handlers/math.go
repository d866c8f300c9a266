package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MathSumQuery holds the addends of GET /math-sum
type MathSumQuery struct {
	Add []float64 `form:"add" binding:"dive,gt=0,lt=9.99"`
}

// MathSumHandler sums every "add" query value
// GET /math-sum?add=1.5&add=2
func MathSumHandler(c *gin.Context) {
	var query MathSumQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	var sum float64
	for _, v := range query.Add {
		sum += v
	}

	c.JSON(http.StatusOK, sum)
}

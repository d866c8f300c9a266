package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RootHandler handles the root endpoint
// GET /
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, GreetingResponse{Hello: "World"})
}

// AuthorHandler greets the author, takes no arguments
// GET /me
func AuthorHandler(c *gin.Context) {
	c.JSON(http.StatusOK, GreetingResponse{Hello: "author"})
}

// Package handlers contains HTTP request handlers for the greeting service.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/sebasr/greeting-service/internal/greeting"
	"github.com/sebasr/greeting-service/internal/models"
)

// GreetingResponse represents the greeting response
type GreetingResponse struct {
	Hello string `json:"Hello"`
}

// GreetingQuery holds the query parameters of GET /:name
type GreetingQuery struct {
	Surname        []string `form:"surname"`
	Age            *int     `form:"age"`
	IsStaff        bool     `form:"is-staff"`
	EducationLevel *string  `form:"education_level"`
}

// Person builds the record to validate and format
func (q GreetingQuery) Person(name string) models.Person {
	p := models.Person{
		Name:    name,
		Surname: models.Surname(q.Surname),
		Age:     q.Age,
		IsStaff: q.IsStaff,
	}
	if q.EducationLevel != nil {
		level := models.NormalizeEducationLevel(*q.EducationLevel)
		p.EducationLevel = &level
	}
	return p
}

// GreetingHandler handles personalized greeting requests
// GET /:name?surname=...&age=...&is-staff=...&education_level=...
func GreetingHandler(c *gin.Context) {
	var query GreetingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	person := query.Person(c.Param("name"))
	if err := binding.Validator.ValidateStruct(&person); err != nil {
		respondBindError(c, err)
		return
	}

	c.JSON(http.StatusOK, GreetingResponse{Hello: greeting.Format(person)})
}

// GreetPersonHandler greets a person sent as a JSON body
// POST /hello
func GreetPersonHandler(c *gin.Context) {
	var person models.Person
	if err := c.ShouldBindJSON(&person); err != nil {
		respondBindError(c, err)
		return
	}

	c.JSON(http.StatusOK, GreetingResponse{Hello: greeting.Format(person)})
}

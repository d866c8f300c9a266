// Package models contains the request models shared by the greeting handlers.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Surname holds one or more family names.
// In JSON it is accepted either as a single string or as an array of strings.
type Surname []string

// UnmarshalJSON accepts both "petrov" and ["ivanova", "petrova"].
func (s *Surname) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = Surname{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("surname must be a string or an array of strings: %w", err)
	}
	*s = many
	return nil
}

// String joins all surnames with a single space.
func (s Surname) String() string {
	return strings.Join(s, " ")
}

// Person is the record a greeting is built from
type Person struct {
	Name           string          `json:"name" binding:"required,min=2,max=20,not_numeric"`
	Surname        Surname         `json:"surname" binding:"required,min=1,dive,min=2,max=50"`
	Age            *int            `json:"age,omitempty" binding:"omitnil,gt=4,lte=99"`
	EducationLevel *EducationLevel `json:"education_level,omitempty" binding:"omitnil,education_level"`
	IsStaff        bool            `json:"is-staff"`
}

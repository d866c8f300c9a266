package models

import (
	"encoding/json"
	"strings"
)

// EducationLevel is a closed set of schooling categories.
// The value is the display text used in greetings.
type EducationLevel string

// Supported education levels
const (
	EducationSecondary EducationLevel = "Среднее образование"
	EducationSpecial   EducationLevel = "Среднее специальное образование"
	EducationHigher    EducationLevel = "Высшее образование"
)

var educationLevelsByName = map[string]EducationLevel{
	"SECONDARY": EducationSecondary,
	"SPECIAL":   EducationSpecial,
	"HIGHER":    EducationHigher,
}

// EducationLevels returns every supported level in declaration order.
func EducationLevels() []EducationLevel {
	return []EducationLevel{EducationSecondary, EducationSpecial, EducationHigher}
}

// IsValid reports whether e is one of the supported levels
func (e EducationLevel) IsValid() bool {
	switch e {
	case EducationSecondary, EducationSpecial, EducationHigher:
		return true
	}
	return false
}

// NormalizeEducationLevel maps a member name (SECONDARY, special, ...) to its
// display value. Display values are returned unchanged, and so is anything
// unknown, which leaves rejecting it to validation.
func NormalizeEducationLevel(raw string) EducationLevel {
	if level := EducationLevel(raw); level.IsValid() {
		return level
	}
	if level, ok := educationLevelsByName[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return level
	}
	return EducationLevel(raw)
}

// UnmarshalJSON accepts either the display value or the member name.
func (e *EducationLevel) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = NormalizeEducationLevel(raw)
	return nil
}

// Package greeting builds the display string returned by the greeting endpoints.
package greeting

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sebasr/greeting-service/internal/models"
)

// StaffSuffix is appended for staff members.
const StaffSuffix = "сотрудник"

const separator = ", "

// Format renders a person as "Name Surname[, age][, education][, сотрудник]".
// Name and surnames are title-cased, the education level is lowercased.
// Input is expected to be validated already; Format never fails.
func Format(p models.Person) string {
	fullName := titleCase(p.Name + " " + p.Surname.String())

	var b strings.Builder
	b.WriteString(fullName)

	if p.Age != nil {
		b.WriteString(separator)
		b.WriteString(strconv.Itoa(*p.Age))
	}
	if p.EducationLevel != nil {
		b.WriteString(separator)
		b.WriteString(cases.Lower(language.Und).String(string(*p.EducationLevel)))
	}
	if p.IsStaff {
		b.WriteString(separator)
		b.WriteString(StaffSuffix)
	}

	return b.String()
}

// titleCase upper-cases the first letter of every letter run and lower-cases
// the rest, so any non-letter starts a new word: "o'brien" becomes "O'Brien".
func titleCase(s string) string {
	// Casers keep internal state, so a fresh one is built per call.
	caser := cases.Title(language.Und)

	var b strings.Builder
	b.Grow(len(s))

	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(s[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(s[start:]))
	}

	return b.String()
}

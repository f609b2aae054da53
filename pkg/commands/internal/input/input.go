// Package input validates raw user input shared by the store commands.
package input

import (
	"strings"

	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/types"
)

// Messages for rejected input.
const (
	MsgStudentFieldsRequired = "Name, Address, and Student ID are required."
	MsgCourseFieldsRequired  = "Course Name, Course Code, and Instructor are required."
	MsgInvalidNumber         = "Invalid input. Please enter a valid number."
	MsgGradeRequired         = "Grade cannot be empty."
	MsgIdentityRequired      = "Student ID and Course Code are required."
)

// Trim trims every value in place.
func Trim(values ...*string) {
	for _, v := range values {
		*v = strings.TrimSpace(*v)
	}
}

// Present reports whether all values are non-empty after trimming.
func Present(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Require returns an INVALID_INPUT error with msg unless every value is present.
func Require(msg string, values ...string) error {
	if Present(values...) {
		return nil
	}
	return errors.New(errors.ErrInvalidInput, msg)
}

// ParseAge accepts a non-empty run of ASCII digits.
func ParseAge(raw string) (int, error) {
	age, ok := types.ParseAge(raw)
	if !ok {
		return 0, errors.New(errors.ErrInvalidInput, MsgInvalidNumber).WithDetail("value", strings.TrimSpace(raw))
	}
	return age, nil
}

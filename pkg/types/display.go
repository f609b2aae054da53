package types

import (
	"fmt"
	"sort"
	"strings"
)

// Placeholders used when a collection is empty.
const (
	NoneMarker       = "None"
	EmptyGradeMarker = "{}"
)

// Describe renders the student card. With a lookup, course codes are shown
// as course names, falling back to the code when the lookup has no entry.
func (s Student) Describe(courses NameLookup) string {
	var b strings.Builder
	b.WriteString("Student Information:\n")
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "ID: %s\n", s.StudentID)
	fmt.Fprintf(&b, "Age: %d\n", s.Age)
	fmt.Fprintf(&b, "Address: %s\n", s.Address)
	fmt.Fprintf(&b, "Enrolled Courses: %s\n", joinOrNone(resolveAll(s.Courses, courses)))
	fmt.Fprintf(&b, "Grades: %s\n", formatGrades(s.Grades, courses))
	return b.String()
}

// Describe renders the course card. With a lookup, student IDs are shown as
// student names; without one the raw IDs are listed.
func (c Course) Describe(students NameLookup) string {
	var b strings.Builder
	b.WriteString("Course Information:\n")
	fmt.Fprintf(&b, "Course Name: %s\n", c.CourseName)
	fmt.Fprintf(&b, "Code: %s\n", c.CourseCode)
	fmt.Fprintf(&b, "Instructor: %s\n", c.Instructor)
	if students == nil {
		fmt.Fprintf(&b, "Enrolled Students (IDs): %s\n", joinOrNone(c.Students))
	} else {
		fmt.Fprintf(&b, "Enrolled Students: %s\n", joinOrNone(resolveAll(c.Students, students)))
	}
	return b.String()
}

func resolve(key string, lookup NameLookup) string {
	if lookup == nil {
		return key
	}
	if name, ok := lookup(key); ok {
		return name
	}
	return key
}

func resolveAll(keys []string, lookup NameLookup) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, resolve(k, lookup))
	}
	return out
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return NoneMarker
	}
	return strings.Join(items, ", ")
}

// formatGrades renders {Name: Grade, ...} sorted by the rendered key.
func formatGrades(grades map[string]string, lookup NameLookup) string {
	if len(grades) == 0 {
		return EmptyGradeMarker
	}
	pairs := make([]string, 0, len(grades))
	for code, grade := range grades {
		pairs = append(pairs, resolve(code, lookup)+": "+grade)
	}
	sort.Strings(pairs)
	return "{" + strings.Join(pairs, ", ") + "}"
}

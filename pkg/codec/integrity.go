package codec

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/errors"
)

// Integrity selects how Deserialize treats references that do not line up:
// one-sided enrollments, keys pointing at missing records and grades for
// courses the student is not enrolled in.
type Integrity string

const (
	// Strict rejects the document on the first inconsistency.
	Strict Integrity = "strict"
	// Heal completes one-sided enrollments, treats a grade as implying
	// enrollment and drops references to records that do not exist.
	Heal Integrity = "heal"
	// Trust loads the document as-is.
	Trust Integrity = "trust"
)

// ParseIntegrity parses a policy name. The empty string selects Strict.
func ParseIntegrity(s string) (Integrity, error) {
	switch Integrity(strings.ToLower(strings.TrimSpace(s))) {
	case Strict, "":
		return Strict, nil
	case Heal:
		return Heal, nil
	case Trust:
		return Trust, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown integrity policy %q (want strict, heal or trust)", s).
			WithDetail("value", s)
	}
}

// ProblemKind classifies a reference inconsistency.
type ProblemKind string

const (
	KindUnknownCourse  ProblemKind = "unknown-course"
	KindUnknownStudent ProblemKind = "unknown-student"
	KindOneSided       ProblemKind = "one-sided-enrollment"
	KindGradeNoEnroll  ProblemKind = "grade-without-enrollment"
)

// Problem is one inconsistency between the two collections.
type Problem struct {
	Kind   ProblemKind
	Entity string // "student" or "course"
	Key    string
	Field  string
	Ref    string
}

func (p Problem) String() string {
	switch p.Kind {
	case KindUnknownCourse:
		return fmt.Sprintf("student %q lists unknown course %q in %s", p.Key, p.Ref, p.Field)
	case KindUnknownStudent:
		return fmt.Sprintf("course %q lists unknown student %q in %s", p.Key, p.Ref, p.Field)
	case KindGradeNoEnroll:
		return fmt.Sprintf("student %q has a grade for %q without being enrolled", p.Key, p.Ref)
	default:
		other := "course"
		if p.Entity == "course" {
			other = "student"
		}
		return fmt.Sprintf("%s %q lists %s %q in %s but the link is missing on the other side",
			p.Entity, p.Key, other, p.Ref, p.Field)
	}
}

func (p Problem) err() error {
	return errors.New(errors.ErrDeserialization, p.String()).
		WithDetail("entity", p.Entity).
		WithDetail("key", p.Key).
		WithDetail("field", p.Field).
		WithDetail("kind", string(p.Kind))
}

// Check lists every reference inconsistency in the document, in a stable
// order.
func Check(doc Document) []Problem {
	var problems []Problem

	for _, id := range sortedKeys(doc.Students) {
		s := doc.Students[id]
		for _, code := range s.Courses {
			c, ok := doc.Courses[code]
			switch {
			case !ok:
				problems = append(problems, Problem{KindUnknownCourse, "student", id, "courses", code})
			case !contains(c.Students, id):
				problems = append(problems, Problem{KindOneSided, "student", id, "courses", code})
			}
		}
		for _, code := range sortedKeys(s.Grades) {
			if contains(s.Courses, code) {
				continue
			}
			if _, ok := doc.Courses[code]; !ok {
				problems = append(problems, Problem{KindUnknownCourse, "student", id, "grades", code})
				continue
			}
			problems = append(problems, Problem{KindGradeNoEnroll, "student", id, "grades", code})
		}
	}

	for _, code := range sortedKeys(doc.Courses) {
		c := doc.Courses[code]
		for _, id := range c.Students {
			s, ok := doc.Students[id]
			switch {
			case !ok:
				problems = append(problems, Problem{KindUnknownStudent, "course", code, "students", id})
			case !contains(s.Courses, code):
				problems = append(problems, Problem{KindOneSided, "course", code, "students", id})
			}
		}
	}

	return problems
}

// heal rewrites the snapshot so every reference is consistent, and returns
// what it changed.
func heal(snap datastore.Snapshot) []Problem {
	var fixed []Problem

	for _, id := range sortedKeys(snap.Students) {
		s := snap.Students[id]

		for _, code := range sortedKeys(s.Grades) {
			if _, ok := snap.Courses[code]; !ok {
				delete(s.Grades, code)
				fixed = append(fixed, Problem{KindUnknownCourse, "student", id, "grades", code})
				continue
			}
			// The course side is completed by the enrollment pass below.
			if !s.IsEnrolled(code) {
				s.EnrollCourse(code)
				fixed = append(fixed, Problem{KindGradeNoEnroll, "student", id, "grades", code})
			}
		}

		kept := s.Courses[:0]
		for _, code := range s.Courses {
			c, ok := snap.Courses[code]
			if !ok {
				fixed = append(fixed, Problem{KindUnknownCourse, "student", id, "courses", code})
				continue
			}
			if !c.HasStudent(id) {
				c.AddStudent(id)
				snap.Courses[code] = c
				fixed = append(fixed, Problem{KindOneSided, "student", id, "courses", code})
			}
			kept = append(kept, code)
		}
		s.Courses = kept
		snap.Students[id] = s
	}

	for _, code := range sortedKeys(snap.Courses) {
		c := snap.Courses[code]
		kept := c.Students[:0]
		for _, id := range c.Students {
			s, ok := snap.Students[id]
			if !ok {
				fixed = append(fixed, Problem{KindUnknownStudent, "course", code, "students", id})
				continue
			}
			if !s.IsEnrolled(code) {
				s.EnrollCourse(code)
				snap.Students[id] = s
				fixed = append(fixed, Problem{KindOneSided, "course", code, "students", id})
			}
			kept = append(kept, id)
		}
		c.Students = kept
		snap.Courses[code] = c
	}

	return fixed
}

func contains(items []string, v string) bool {
	for _, it := range items {
		if it == v {
			return true
		}
	}
	return false
}

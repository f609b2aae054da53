package datastore

import (
	"fmt"

	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/types"
)

// User-facing messages for store failures.
const (
	MsgStudentExists   = "A student with this ID already exists."
	MsgCourseExists    = "A course with this code already exists."
	MsgStudentNotFound = "Student ID not found."
	MsgCourseNotFound  = "Course code not found."
	MsgNotEnrolled     = "Student must be enrolled in the course before assigning a grade."
)

// DataStore holds the students and courses collections.
type DataStore struct {
	students map[string]*types.Student
	courses  map[string]*types.Course
}

// New creates an empty DataStore.
func New() *DataStore {
	return &DataStore{
		students: make(map[string]*types.Student),
		courses:  make(map[string]*types.Course),
	}
}

// AddStudent inserts the student. It fails with ErrDuplicateIdentity, leaving
// the store untouched, when the student ID is already present.
func (d *DataStore) AddStudent(student types.Student) error {
	if _, exists := d.students[student.StudentID]; exists {
		return errors.New(errors.ErrDuplicateIdentity, MsgStudentExists).
			WithDetail("student_id", student.StudentID)
	}
	s := student.Clone()
	d.students[s.StudentID] = &s

	logger := logging.GetLogger("datastore")
	logger.Debug().Str("student_id", s.StudentID).Msg("Student added")
	return nil
}

// AddCourse inserts the course. It fails with ErrDuplicateIdentity, leaving
// the store untouched, when the course code is already present.
func (d *DataStore) AddCourse(course types.Course) error {
	if _, exists := d.courses[course.CourseCode]; exists {
		return errors.New(errors.ErrDuplicateIdentity, MsgCourseExists).
			WithDetail("course_code", course.CourseCode)
	}
	c := course.Clone()
	d.courses[c.CourseCode] = &c

	logger := logging.GetLogger("datastore")
	logger.Debug().Str("course_code", c.CourseCode).Msg("Course added")
	return nil
}

// GetStudent returns a copy of the student with the given ID.
func (d *DataStore) GetStudent(studentID string) (types.Student, bool) {
	s, ok := d.students[studentID]
	if !ok {
		return types.Student{}, false
	}
	return s.Clone(), true
}

// GetCourse returns a copy of the course with the given code.
func (d *DataStore) GetCourse(courseCode string) (types.Course, bool) {
	c, ok := d.courses[courseCode]
	if !ok {
		return types.Course{}, false
	}
	return c.Clone(), true
}

// resolve looks up both sides of a student/course pair. The student is
// checked first so a missing student wins when both are absent.
func (d *DataStore) resolve(studentID, courseCode string) (*types.Student, *types.Course, error) {
	student, ok := d.students[studentID]
	if !ok {
		return nil, nil, errors.New(errors.ErrStudentNotFound, MsgStudentNotFound).
			WithDetail("student_id", studentID)
	}
	course, ok := d.courses[courseCode]
	if !ok {
		return nil, nil, errors.New(errors.ErrCourseNotFound, MsgCourseNotFound).
			WithDetail("course_code", courseCode)
	}
	return student, course, nil
}

// Enroll links the student and the course in both directions. Enrolling an
// already enrolled pair changes nothing and still succeeds.
func (d *DataStore) Enroll(studentID, courseCode string) (string, error) {
	student, course, err := d.resolve(studentID, courseCode)
	if err != nil {
		return "", err
	}

	// Both lookups succeeded, so neither append can fail halfway.
	student.EnrollCourse(courseCode)
	course.AddStudent(studentID)

	logger := logging.GetLogger("datastore")
	logger.Debug().
		Str("student_id", studentID).
		Str("course_code", courseCode).
		Msg("Student enrolled")

	return fmt.Sprintf("Student %s (ID: %s) enrolled in %s (Code: %s).",
		student.Name, student.StudentID, course.CourseName, course.CourseCode), nil
}

// AddGrade records a grade for an enrolled student, replacing any earlier
// grade for the same course.
func (d *DataStore) AddGrade(studentID, courseCode, grade string) (string, error) {
	student, course, err := d.resolve(studentID, courseCode)
	if err != nil {
		return "", err
	}
	if !student.IsEnrolled(courseCode) {
		return "", errors.New(errors.ErrNotEnrolled, MsgNotEnrolled).
			WithDetail("student_id", studentID).
			WithDetail("course_code", courseCode)
	}

	student.AddGrade(courseCode, grade)

	logger := logging.GetLogger("datastore")
	logger.Debug().
		Str("student_id", studentID).
		Str("course_code", courseCode).
		Str("grade", grade).
		Msg("Grade recorded")

	return fmt.Sprintf("Grade %s added for %s in %s.", grade, student.Name, course.CourseName), nil
}

// DescribeStudent renders the student card with course names resolved
// against this store.
func (d *DataStore) DescribeStudent(studentID string) (string, error) {
	s, ok := d.students[studentID]
	if !ok {
		return "", errors.New(errors.ErrStudentNotFound, MsgStudentNotFound).
			WithDetail("student_id", studentID)
	}
	return s.Describe(d.courseName), nil
}

// DescribeCourse renders the course card with student names resolved
// against this store.
func (d *DataStore) DescribeCourse(courseCode string) (string, error) {
	c, ok := d.courses[courseCode]
	if !ok {
		return "", errors.New(errors.ErrCourseNotFound, MsgCourseNotFound).
			WithDetail("course_code", courseCode)
	}
	return c.Describe(d.studentName), nil
}

func (d *DataStore) courseName(code string) (string, bool) {
	c, ok := d.courses[code]
	if !ok {
		return "", false
	}
	return c.CourseName, true
}

func (d *DataStore) studentName(id string) (string, bool) {
	s, ok := d.students[id]
	if !ok {
		return "", false
	}
	return s.Name, true
}

// Len returns the number of students and courses.
func (d *DataStore) Len() (students, courses int) {
	return len(d.students), len(d.courses)
}

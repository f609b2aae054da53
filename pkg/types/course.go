package types

// Course is a class that students enroll in, identified by its course code.
type Course struct {
	CourseName string `json:"course_name"`
	CourseCode string `json:"course_code"`
	Instructor string `json:"instructor"`

	// Students is the set of enrolled student IDs, in enrollment order.
	Students []string `json:"students"`
}

// NewCourse creates a course with no students.
func NewCourse(courseCode, courseName, instructor string) Course {
	return Course{
		CourseName: courseName,
		CourseCode: courseCode,
		Instructor: instructor,
		Students:   []string{},
	}
}

// AddStudent records the student ID. Adding twice is a no-op.
func (c *Course) AddStudent(studentID string) {
	if c.HasStudent(studentID) {
		return
	}
	c.Students = append(c.Students, studentID)
}

// HasStudent reports whether the student ID is in the course's set.
func (c Course) HasStudent(studentID string) bool {
	for _, s := range c.Students {
		if s == studentID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. The Students slice of the copy is never nil.
func (c Course) Clone() Course {
	out := c
	out.Students = append(make([]string, 0, len(c.Students)), c.Students...)
	return out
}

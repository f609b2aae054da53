package types

// Student is a Person with an identity, a set of enrolled course codes and
// the grades earned in those courses.
type Student struct {
	Person
	StudentID string `json:"student_id"`

	// Grades maps course code to grade.
	Grades map[string]string `json:"grades"`

	// Courses is the set of enrolled course codes, in enrollment order.
	Courses []string `json:"courses"`
}

// NewStudent creates a student with no courses and no grades.
func NewStudent(studentID, name string, age int, address string) Student {
	return Student{
		Person: Person{
			Name:    name,
			Age:     age,
			Address: address,
		},
		StudentID: studentID,
		Grades:    map[string]string{},
		Courses:   []string{},
	}
}

// AddGrade adds or replaces the grade for a course. Whether the student is
// enrolled in that course is not checked here.
func (s *Student) AddGrade(courseCode, grade string) {
	if s.Grades == nil {
		s.Grades = map[string]string{}
	}
	s.Grades[courseCode] = grade
}

// EnrollCourse records the course code. Enrolling twice is a no-op.
func (s *Student) EnrollCourse(courseCode string) {
	if s.IsEnrolled(courseCode) {
		return
	}
	s.Courses = append(s.Courses, courseCode)
}

// IsEnrolled reports whether the course code is in the student's set.
func (s Student) IsEnrolled(courseCode string) bool {
	for _, c := range s.Courses {
		if c == courseCode {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. Collections of the copy are never nil.
func (s Student) Clone() Student {
	out := s
	out.Grades = make(map[string]string, len(s.Grades))
	for k, v := range s.Grades {
		out.Grades[k] = v
	}
	out.Courses = append(make([]string, 0, len(s.Courses)), s.Courses...)
	return out
}

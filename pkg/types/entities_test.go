// pkg/types/entities_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test entity mutators, cloning and display projections

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudent_InitialisesCollections(t *testing.T) {
	s := NewStudent("S1", "Alia", 20, "Dhaka")

	assert.Equal(t, "S1", s.StudentID)
	assert.Equal(t, "Alia", s.Name)
	assert.Equal(t, 20, s.Age)
	assert.Equal(t, "Dhaka", s.Address)
	assert.NotNil(t, s.Grades)
	assert.NotNil(t, s.Courses)
	assert.Empty(t, s.Courses)
}

func TestStudent_EnrollCourseIsIdempotent(t *testing.T) {
	s := NewStudent("S1", "Alia", 20, "Dhaka")
	s.EnrollCourse("C1")
	s.EnrollCourse("C2")
	s.EnrollCourse("C1")

	assert.Equal(t, []string{"C1", "C2"}, s.Courses)
	assert.True(t, s.IsEnrolled("C2"))
	assert.False(t, s.IsEnrolled("C3"))
}

func TestStudent_AddGradeUpserts(t *testing.T) {
	s := Student{StudentID: "S1"}
	s.AddGrade("C1", "B")
	s.AddGrade("C1", "A")

	assert.Equal(t, map[string]string{"C1": "A"}, s.Grades)
}

func TestCourse_AddStudentIsIdempotent(t *testing.T) {
	c := NewCourse("C1", "Algorithms", "Dr. X")
	c.AddStudent("S1")
	c.AddStudent("S1")
	c.AddStudent("S2")

	assert.Equal(t, []string{"S1", "S2"}, c.Students)
	assert.True(t, c.HasStudent("S2"))
}

func TestClone_IsDeep(t *testing.T) {
	s := NewStudent("S1", "Alia", 20, "Dhaka")
	s.EnrollCourse("C1")
	s.AddGrade("C1", "A")

	cp := s.Clone()
	cp.Grades["C1"] = "F"
	cp.Courses[0] = "CX"

	assert.Equal(t, "A", s.Grades["C1"])
	assert.Equal(t, "C1", s.Courses[0])

	c := NewCourse("C1", "Algorithms", "Dr. X")
	c.AddStudent("S1")
	cc := c.Clone()
	cc.Students[0] = "SX"
	assert.Equal(t, "S1", c.Students[0])

	// Zero values clone to empty, non-nil collections.
	empty := Student{}.Clone()
	require.NotNil(t, empty.Grades)
	require.NotNil(t, empty.Courses)
}

func TestPerson_Describe(t *testing.T) {
	p := Person{Name: "Alia", Age: 20, Address: "Dhaka"}
	assert.Equal(t, "Name: Alia\nAge: 20\nAddress: Dhaka\n", p.Describe())
}

func TestStudent_Describe(t *testing.T) {
	names := map[string]string{"C1": "Algorithms", "C2": "Databases"}
	lookup := func(code string) (string, bool) {
		n, ok := names[code]
		return n, ok
	}

	tests := []struct {
		name    string
		student func() Student
		lookup  NameLookup
		want    []string
	}{
		{
			name:    "empty collections render markers",
			student: func() Student { return NewStudent("S1", "Alia", 20, "Dhaka") },
			lookup:  lookup,
			want:    []string{"Student Information:", "ID: S1", "Enrolled Courses: None", "Grades: {}"},
		},
		{
			name: "lookup resolves names and falls back to code",
			student: func() Student {
				s := NewStudent("S1", "Alia", 20, "Dhaka")
				s.EnrollCourse("C1")
				s.EnrollCourse("C9")
				s.AddGrade("C1", "A")
				s.AddGrade("C9", "B")
				return s
			},
			lookup: lookup,
			want:   []string{"Enrolled Courses: Algorithms, C9", "Grades: {Algorithms: A, C9: B}"},
		},
		{
			name: "nil lookup shows raw codes",
			student: func() Student {
				s := NewStudent("S1", "Alia", 20, "Dhaka")
				s.EnrollCourse("C2")
				s.AddGrade("C2", "A+")
				return s
			},
			lookup: nil,
			want:   []string{"Enrolled Courses: C2", "Grades: {C2: A+}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.student().Describe(tt.lookup)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestCourse_Describe(t *testing.T) {
	c := NewCourse("C1", "Algorithms", "Dr. X")

	out := c.Describe(nil)
	assert.Contains(t, out, "Course Name: Algorithms")
	assert.Contains(t, out, "Code: C1")
	assert.Contains(t, out, "Instructor: Dr. X")
	assert.Contains(t, out, "Enrolled Students (IDs): None")

	c.AddStudent("S1")
	c.AddStudent("S2")
	assert.Contains(t, c.Describe(nil), "Enrolled Students (IDs): S1, S2")

	lookup := func(id string) (string, bool) {
		if id == "S1" {
			return "Alia", true
		}
		return "", false
	}
	assert.Contains(t, c.Describe(lookup), "Enrolled Students: Alia, S2")
}

func TestParseAge(t *testing.T) {
	for raw, want := range map[string]int{"20": 20, " 7 ": 7, "0": 0} {
		got, ok := ParseAge(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}
	for _, raw := range []string{"", "-1", "+20", "2.5", "1 0", "99999999999999999999999"} {
		_, ok := ParseAge(raw)
		assert.False(t, ok, raw)
	}
}

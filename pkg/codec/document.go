package codec

import (
	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/types"
)

// Document is the persisted form of a DataStore.
type Document struct {
	Students map[string]StudentRecord `json:"students" yaml:"students" toml:"students"`
	Courses  map[string]CourseRecord  `json:"courses" yaml:"courses" toml:"courses"`
}

// StudentRecord holds every attribute of a student.
type StudentRecord struct {
	Name      string            `json:"name" yaml:"name" toml:"name"`
	Age       int               `json:"age" yaml:"age" toml:"age"`
	Address   string            `json:"address" yaml:"address" toml:"address"`
	StudentID string            `json:"student_id" yaml:"student_id" toml:"student_id"`
	Grades    map[string]string `json:"grades" yaml:"grades" toml:"grades"`
	Courses   []string          `json:"courses" yaml:"courses" toml:"courses"`
}

// CourseRecord holds every attribute of a course.
type CourseRecord struct {
	CourseName string   `json:"course_name" yaml:"course_name" toml:"course_name"`
	CourseCode string   `json:"course_code" yaml:"course_code" toml:"course_code"`
	Instructor string   `json:"instructor" yaml:"instructor" toml:"instructor"`
	Students   []string `json:"students" yaml:"students" toml:"students"`
}

// Serialize copies every record of the store into a Document.
func Serialize(ds *datastore.DataStore) Document {
	snap := ds.Snapshot()
	doc := Document{
		Students: make(map[string]StudentRecord, len(snap.Students)),
		Courses:  make(map[string]CourseRecord, len(snap.Courses)),
	}
	for id, s := range snap.Students {
		doc.Students[id] = studentRecord(s)
	}
	for code, c := range snap.Courses {
		doc.Courses[code] = courseRecord(c)
	}
	return doc
}

func studentRecord(s types.Student) StudentRecord {
	return StudentRecord{
		Name:      s.Name,
		Age:       s.Age,
		Address:   s.Address,
		StudentID: s.StudentID,
		Grades:    s.Grades,
		Courses:   s.Courses,
	}
}

func courseRecord(c types.Course) CourseRecord {
	return CourseRecord{
		CourseName: c.CourseName,
		CourseCode: c.CourseCode,
		Instructor: c.Instructor,
		Students:   c.Students,
	}
}

func (r StudentRecord) student() types.Student {
	s := types.NewStudent(r.StudentID, r.Name, r.Age, r.Address)
	for code, grade := range r.Grades {
		s.Grades[code] = grade
	}
	s.Courses = append(s.Courses, r.Courses...)
	return s
}

func (r CourseRecord) course() types.Course {
	c := types.NewCourse(r.CourseCode, r.CourseName, r.Instructor)
	c.Students = append(c.Students, r.Students...)
	return c
}

package export

import (
	"io"
	"sort"
	"strconv"

	"github.com/arthur-debert/roster/pkg/codec"
	"github.com/beevik/etree"
)

// writeXML renders the document as
//
//	<roster>
//	  <students><student id="S1">...</student></students>
//	  <courses><course code="C1">...</course></courses>
//	</roster>
func writeXML(w io.Writer, doc codec.Document) error {
	xdoc := etree.NewDocument()
	xdoc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := xdoc.CreateElement("roster")

	students := root.CreateElement("students")
	for _, id := range sortedKeys(doc.Students) {
		s := doc.Students[id]
		el := students.CreateElement("student")
		el.CreateAttr("id", id)
		el.CreateElement("name").SetText(s.Name)
		el.CreateElement("age").SetText(strconv.Itoa(s.Age))
		el.CreateElement("address").SetText(s.Address)

		grades := el.CreateElement("grades")
		for _, code := range sortedKeys(s.Grades) {
			g := grades.CreateElement("grade")
			g.CreateAttr("course", code)
			g.SetText(s.Grades[code])
		}

		enrolled := el.CreateElement("courses")
		for _, code := range s.Courses {
			enrolled.CreateElement("course").CreateAttr("code", code)
		}
	}

	courses := root.CreateElement("courses")
	for _, code := range sortedKeys(doc.Courses) {
		c := doc.Courses[code]
		el := courses.CreateElement("course")
		el.CreateAttr("code", code)
		el.CreateElement("name").SetText(c.CourseName)
		el.CreateElement("instructor").SetText(c.Instructor)

		roster := el.CreateElement("students")
		for _, id := range c.Students {
			roster.CreateElement("student").CreateAttr("id", id)
		}
	}

	xdoc.Indent(2)
	_, err := xdoc.WriteTo(w)
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package codec

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/arthur-debert/roster/pkg/errors"
)

// Marshal renders the document as indented JSON followed by a newline.
func Marshal(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode document")
	}
	return buf.Bytes(), nil
}

// rawStudent and rawCourse mirror the records with pointer fields so a
// missing key can be told apart from a zero value.
type rawStudent struct {
	Name      *string           `json:"name"`
	Age       *int              `json:"age"`
	Address   *string           `json:"address"`
	StudentID *string           `json:"student_id"`
	Grades    map[string]string `json:"grades"`
	Courses   []string          `json:"courses"`
}

type rawCourse struct {
	CourseName *string  `json:"course_name"`
	CourseCode *string  `json:"course_code"`
	Instructor *string  `json:"instructor"`
	Students   []string `json:"students"`
}

// rawDocument keeps each record undecoded so a type error can be reported
// against the record's key.
type rawDocument struct {
	Students map[string]json.RawMessage `json:"students"`
	Courses  map[string]json.RawMessage `json:"courses"`
}

// Unmarshal parses a persisted document. Malformed JSON, a missing required
// field or a negative age fail with ErrDeserialization. Missing grades,
// courses and students default to empty.
func Unmarshal(data []byte) (Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) && typeErr.Field != "" {
			return Document{}, errors.Newf(errors.ErrDeserialization,
				"data file field %q must be %s, not %s", typeErr.Field, jsonKind(typeErr.Type), typeErr.Value).
				WithDetail("field", typeErr.Field)
		}
		return Document{}, errors.Wrap(err, errors.ErrDeserialization, "data file is not a valid roster document")
	}

	doc := Document{
		Students: make(map[string]StudentRecord, len(raw.Students)),
		Courses:  make(map[string]CourseRecord, len(raw.Courses)),
	}

	for _, key := range sortedKeys(raw.Students) {
		var r rawStudent
		if err := decodeRecord("student", key, raw.Students[key], &r); err != nil {
			return Document{}, err
		}
		missing := firstMissing(
			field{"name", r.Name == nil},
			field{"age", r.Age == nil},
			field{"address", r.Address == nil},
			field{"student_id", r.StudentID == nil},
		)
		if missing != "" {
			return Document{}, missingField("student", key, missing)
		}
		if *r.Age < 0 {
			return Document{}, errors.Newf(errors.ErrDeserialization,
				"student %q has negative age %d", key, *r.Age).
				WithDetail("entity", "student").
				WithDetail("key", key).
				WithDetail("field", "age")
		}
		rec := StudentRecord{
			Name:      *r.Name,
			Age:       *r.Age,
			Address:   *r.Address,
			StudentID: *r.StudentID,
			Grades:    r.Grades,
			Courses:   r.Courses,
		}
		if rec.Grades == nil {
			rec.Grades = map[string]string{}
		}
		if rec.Courses == nil {
			rec.Courses = []string{}
		}
		doc.Students[key] = rec
	}

	for _, key := range sortedKeys(raw.Courses) {
		var r rawCourse
		if err := decodeRecord("course", key, raw.Courses[key], &r); err != nil {
			return Document{}, err
		}
		missing := firstMissing(
			field{"course_name", r.CourseName == nil},
			field{"course_code", r.CourseCode == nil},
			field{"instructor", r.Instructor == nil},
		)
		if missing != "" {
			return Document{}, missingField("course", key, missing)
		}
		rec := CourseRecord{
			CourseName: *r.CourseName,
			CourseCode: *r.CourseCode,
			Instructor: *r.Instructor,
			Students:   r.Students,
		}
		if rec.Students == nil {
			rec.Students = []string{}
		}
		doc.Courses[key] = rec
	}

	return doc, nil
}

// decodeRecord decodes one student or course, naming the record and the
// offending field when a value has the wrong JSON type.
func decodeRecord(entity, key string, data json.RawMessage, v interface{}) error {
	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if !stderrors.As(err, &typeErr) {
		return errors.Wrapf(err, errors.ErrDeserialization, "%s %q is not valid", entity, key).
			WithDetail("entity", entity).
			WithDetail("key", key)
	}

	name, _, _ := strings.Cut(typeErr.Field, ".")
	if name == "" {
		return errors.Newf(errors.ErrDeserialization, "%s %q must be an object, not %s", entity, key, typeErr.Value).
			WithDetail("entity", entity).
			WithDetail("key", key)
	}
	return errors.Newf(errors.ErrDeserialization,
		"%s %q field %q must be %s, not %s", entity, key, name, jsonKind(typeErr.Type), typeErr.Value).
		WithDetail("entity", entity).
		WithDetail("key", key).
		WithDetail("field", name)
}

// jsonKind names the JSON value a Go type decodes from.
func jsonKind(t reflect.Type) string {
	if t == nil {
		return "a different type"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Map, reflect.Struct:
		return "an object"
	default:
		return fmt.Sprintf("a %s", t.Kind())
	}
}

type field struct {
	name    string
	missing bool
}

func firstMissing(fields ...field) string {
	for _, f := range fields {
		if f.missing {
			return f.name
		}
	}
	return ""
}

func missingField(entity, key, name string) error {
	return errors.Newf(errors.ErrDeserialization, "%s %q is missing required field %q", entity, key, name).
		WithDetail("entity", entity).
		WithDetail("key", key).
		WithDetail("field", name)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

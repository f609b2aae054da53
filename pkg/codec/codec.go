package codec

import (
	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/types"
)

// Deserialize rebuilds a DataStore from a document. Every record must be
// stored under its own identity; beyond that, the policy decides what
// happens to inconsistent references.
func Deserialize(doc Document, policy Integrity) (*datastore.DataStore, error) {
	logger := logging.GetLogger("codec")

	snap := datastore.Snapshot{
		Students: make(map[string]types.Student, len(doc.Students)),
		Courses:  make(map[string]types.Course, len(doc.Courses)),
	}

	for _, key := range sortedKeys(doc.Students) {
		rec := doc.Students[key]
		if err := checkIdentity("student", "student_id", key, rec.StudentID); err != nil {
			return nil, err
		}
		snap.Students[key] = rec.student()
	}
	for _, key := range sortedKeys(doc.Courses) {
		rec := doc.Courses[key]
		if err := checkIdentity("course", "course_code", key, rec.CourseCode); err != nil {
			return nil, err
		}
		snap.Courses[key] = rec.course()
	}

	switch policy {
	case Trust:
	case Heal:
		for _, p := range heal(snap) {
			logger.Warn().
				Str("kind", string(p.Kind)).
				Str("entity", p.Entity).
				Str("key", p.Key).
				Str("ref", p.Ref).
				Msg("Repaired inconsistent reference")
		}
	case Strict, "":
		if problems := Check(doc); len(problems) > 0 {
			logger.Debug().Int("problems", len(problems)).Msg("Document rejected")
			return nil, problems[0].err()
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown integrity policy %q", policy)
	}

	ds := datastore.FromSnapshot(snap)
	students, courses := ds.Len()
	logger.Debug().
		Int("students", students).
		Int("courses", courses).
		Str("integrity", string(policy)).
		Msg("Document deserialized")
	return ds, nil
}

func checkIdentity(entity, field, key, identity string) error {
	switch {
	case identity == "":
		return errors.Newf(errors.ErrDeserialization, "%s %q has an empty %s", entity, key, field).
			WithDetail("entity", entity).
			WithDetail("key", key).
			WithDetail("field", field)
	case identity != key:
		return errors.Newf(errors.ErrDeserialization, "%s stored under %q has %s %q", entity, key, field, identity).
			WithDetail("entity", entity).
			WithDetail("key", key).
			WithDetail("field", field)
	}
	return nil
}

// Encode serializes the store to pretty-printed JSON.
func Encode(ds *datastore.DataStore) ([]byte, error) {
	return Marshal(Serialize(ds))
}

// Decode parses JSON and deserializes it under the given policy.
func Decode(data []byte, policy Integrity) (*datastore.DataStore, error) {
	doc, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return Deserialize(doc, policy)
}

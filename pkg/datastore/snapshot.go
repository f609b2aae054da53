package datastore

import "github.com/arthur-debert/roster/pkg/types"

// Snapshot is a detached copy of both collections, keyed by identity.
type Snapshot struct {
	Students map[string]types.Student
	Courses  map[string]types.Course
}

// Snapshot returns a deep copy of the store's contents.
func (d *DataStore) Snapshot() Snapshot {
	snap := Snapshot{
		Students: make(map[string]types.Student, len(d.students)),
		Courses:  make(map[string]types.Course, len(d.courses)),
	}
	for id, s := range d.students {
		snap.Students[id] = s.Clone()
	}
	for code, c := range d.courses {
		snap.Courses[code] = c.Clone()
	}
	return snap
}

// FromSnapshot builds a store holding copies of the snapshot's records.
// References between records are taken as given; checking them is up to
// the caller.
func FromSnapshot(snap Snapshot) *DataStore {
	d := New()
	for id, s := range snap.Students {
		cp := s.Clone()
		d.students[id] = &cp
	}
	for code, c := range snap.Courses {
		cp := c.Clone()
		d.courses[code] = &cp
	}
	return d
}

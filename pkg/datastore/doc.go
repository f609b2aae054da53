// Package datastore holds roster's in-memory relational data: students keyed
// by student ID and courses keyed by course code.
//
// The DataStore is the only owner of Student and Course records. Callers get
// copies from lookups and change state exclusively through the operations
// here, which keep enrollment symmetric (a course code in a student's set if
// and only if the student ID is in that course's set) and require enrollment
// before grading.
//
// A DataStore is not safe for concurrent use.
package datastore

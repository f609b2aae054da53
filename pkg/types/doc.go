// Package types defines the core records and interfaces used throughout roster.
// This includes the Person, Student and Course entities with their display
// projections, and the FS interface that persistence is written against.
//
// Records reference each other by identity only: a Student holds course codes,
// a Course holds student IDs. Resolving those keys is the job of the datastore.
package types

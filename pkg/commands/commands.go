// Package commands provides the user actions of roster.
//
// The cobra CLI and the interactive menu both call these functions, so input
// is validated the same way whichever surface it came from. Each command is
// implemented in its own subdirectory:
//   - student/    - AddStudent, ShowStudent
//   - course/     - AddCourse, ShowCourse
//   - enroll/     - Enroll, AddGrade
//   - exportdata/ - Export
//   - importdata/ - Import
//   - verify/     - Verify
//   - genconfig/  - GenConfig
//   - internal/   - Shared input validation
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"github.com/arthur-debert/roster/pkg/commands/course"
	"github.com/arthur-debert/roster/pkg/commands/enroll"
	"github.com/arthur-debert/roster/pkg/commands/exportdata"
	"github.com/arthur-debert/roster/pkg/commands/genconfig"
	"github.com/arthur-debert/roster/pkg/commands/importdata"
	"github.com/arthur-debert/roster/pkg/commands/internal/input"
	"github.com/arthur-debert/roster/pkg/commands/student"
	"github.com/arthur-debert/roster/pkg/commands/verify"
	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/types"
)

// AddStudent validates the raw fields and adds a student.
type AddStudentOptions = student.AddStudentOptions

func AddStudent(store *datastore.DataStore, opts AddStudentOptions) (*types.CommandResult, error) {
	return student.AddStudent(store, opts)
}

// ShowStudent renders a student with course names resolved.
type ShowStudentOptions = student.ShowStudentOptions

func ShowStudent(store *datastore.DataStore, opts ShowStudentOptions) (*types.CommandResult, error) {
	return student.ShowStudent(store, opts)
}

// AddCourse validates the raw fields and adds a course.
type AddCourseOptions = course.AddCourseOptions

func AddCourse(store *datastore.DataStore, opts AddCourseOptions) (*types.CommandResult, error) {
	return course.AddCourse(store, opts)
}

// ShowCourse renders a course with student names resolved.
type ShowCourseOptions = course.ShowCourseOptions

func ShowCourse(store *datastore.DataStore, opts ShowCourseOptions) (*types.CommandResult, error) {
	return course.ShowCourse(store, opts)
}

// Enroll links a student and a course.
type EnrollOptions = enroll.EnrollOptions

func Enroll(store *datastore.DataStore, opts EnrollOptions) (*types.CommandResult, error) {
	return enroll.Enroll(store, opts)
}

// AddGrade records a grade for an enrolled student.
type AddGradeOptions = enroll.AddGradeOptions

func AddGrade(store *datastore.DataStore, opts AddGradeOptions) (*types.CommandResult, error) {
	return enroll.AddGrade(store, opts)
}

// Export renders the store as json, yaml, toml or xml.
type ExportOptions = exportdata.ExportOptions

func Export(store *datastore.DataStore, opts ExportOptions) (*types.CommandResult, error) {
	return exportdata.Export(store, opts)
}

// Import adds the rows of an .xlsx workbook.
type ImportOptions = importdata.ImportOptions
type ImportResult = importdata.ImportResult

func Import(store *datastore.DataStore, opts ImportOptions) (*ImportResult, error) {
	return importdata.Import(store, opts)
}

// Verify checks a data file for reference problems.
type VerifyOptions = verify.VerifyOptions

func Verify(opts VerifyOptions) (*types.VerifyResult, error) {
	return verify.Verify(opts)
}

// GenConfig outputs or writes the default configuration.
type GenConfigOptions = genconfig.GenConfigOptions

func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}

// MsgInvalidNumber is shown when an age is not a whole number.
const MsgInvalidNumber = input.MsgInvalidNumber

// ParseAge validates an age as typed by the user.
func ParseAge(raw string) (int, error) {
	return input.ParseAge(raw)
}

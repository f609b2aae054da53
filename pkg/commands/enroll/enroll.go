package enroll

import (
	"github.com/arthur-debert/roster/pkg/commands/internal/input"
	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/types"
)

// EnrollOptions names the student and course to link.
type EnrollOptions struct {
	StudentID  string
	CourseCode string
}

// Enroll links a student and a course. Enrolling twice succeeds and changes
// nothing the second time.
func Enroll(store *datastore.DataStore, opts EnrollOptions) (*types.CommandResult, error) {
	log := logging.GetLogger("commands.enroll")
	log.Debug().Str("command", "Enroll").
		Str("student_id", opts.StudentID).
		Str("course_code", opts.CourseCode).
		Msg("Executing command")

	input.Trim(&opts.StudentID, &opts.CourseCode)
	before, _ := store.GetStudent(opts.StudentID)

	msg, err := store.Enroll(opts.StudentID, opts.CourseCode)
	if err != nil {
		return nil, err
	}

	changed := !before.IsEnrolled(opts.CourseCode)
	log.Info().Str("command", "Enroll").Bool("changed", changed).Msg("Command finished")
	return &types.CommandResult{
		Command: "enroll",
		Message: msg,
		Changed: changed,
	}, nil
}

// AddGradeOptions names the grade to record.
type AddGradeOptions struct {
	StudentID  string
	CourseCode string
	Grade      string
}

// AddGrade records a grade for an enrolled student, replacing any earlier one.
func AddGrade(store *datastore.DataStore, opts AddGradeOptions) (*types.CommandResult, error) {
	log := logging.GetLogger("commands.enroll")
	log.Debug().Str("command", "AddGrade").
		Str("student_id", opts.StudentID).
		Str("course_code", opts.CourseCode).
		Msg("Executing command")

	input.Trim(&opts.StudentID, &opts.CourseCode, &opts.Grade)
	if err := input.Require(input.MsgGradeRequired, opts.Grade); err != nil {
		return nil, err
	}

	msg, err := store.AddGrade(opts.StudentID, opts.CourseCode, opts.Grade)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "AddGrade").Msg("Command finished")
	return &types.CommandResult{Command: "grade", Message: msg, Changed: true}, nil
}

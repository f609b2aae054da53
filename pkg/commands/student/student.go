package student

import (
	"fmt"

	"github.com/arthur-debert/roster/pkg/commands/internal/input"
	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/types"
)

// AddStudentOptions holds the raw fields of a new student.
type AddStudentOptions struct {
	StudentID string
	Name      string
	// Age is kept as entered so it is validated here, not by the caller.
	Age     string
	Address string
}

// AddStudent validates opts and adds the student to the store.
func AddStudent(store *datastore.DataStore, opts AddStudentOptions) (*types.CommandResult, error) {
	log := logging.GetLogger("commands.student")
	log.Debug().Str("command", "AddStudent").Str("student_id", opts.StudentID).Msg("Executing command")

	input.Trim(&opts.StudentID, &opts.Name, &opts.Address)
	age, err := input.ParseAge(opts.Age)
	if err != nil {
		return nil, err
	}
	if err := input.Require(input.MsgStudentFieldsRequired, opts.Name, opts.Address, opts.StudentID); err != nil {
		return nil, err
	}

	s := types.NewStudent(opts.StudentID, opts.Name, age, opts.Address)
	if err := store.AddStudent(s); err != nil {
		return nil, err
	}

	log.Info().Str("command", "AddStudent").Str("student_id", s.StudentID).Msg("Command finished")
	return &types.CommandResult{
		Command: "student add",
		Message: fmt.Sprintf("Student %s (ID: %s) added successfully.", s.Name, s.StudentID),
		Changed: true,
	}, nil
}

// ShowStudentOptions selects the student to show.
type ShowStudentOptions struct {
	StudentID string
}

// ShowStudent returns the student card with course names resolved.
func ShowStudent(store *datastore.DataStore, opts ShowStudentOptions) (*types.CommandResult, error) {
	log := logging.GetLogger("commands.student")
	log.Debug().Str("command", "ShowStudent").Str("student_id", opts.StudentID).Msg("Executing command")

	input.Trim(&opts.StudentID)
	card, err := store.DescribeStudent(opts.StudentID)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "ShowStudent").Str("student_id", opts.StudentID).Msg("Command finished")
	return &types.CommandResult{Command: "student show", Message: card}, nil
}

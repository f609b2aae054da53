package course

import (
	"fmt"

	"github.com/arthur-debert/roster/pkg/commands/internal/input"
	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/types"
)

// AddCourseOptions holds the raw fields of a new course.
type AddCourseOptions struct {
	CourseCode string
	CourseName string
	Instructor string
}

// AddCourse validates opts and adds the course to the store.
func AddCourse(store *datastore.DataStore, opts AddCourseOptions) (*types.CommandResult, error) {
	log := logging.GetLogger("commands.course")
	log.Debug().Str("command", "AddCourse").Str("course_code", opts.CourseCode).Msg("Executing command")

	input.Trim(&opts.CourseCode, &opts.CourseName, &opts.Instructor)
	if err := input.Require(input.MsgCourseFieldsRequired, opts.CourseName, opts.CourseCode, opts.Instructor); err != nil {
		return nil, err
	}

	c := types.NewCourse(opts.CourseCode, opts.CourseName, opts.Instructor)
	if err := store.AddCourse(c); err != nil {
		return nil, err
	}

	log.Info().Str("command", "AddCourse").Str("course_code", c.CourseCode).Msg("Command finished")
	return &types.CommandResult{
		Command: "course add",
		Message: fmt.Sprintf("Course %s (Code: %s) created with instructor %s.", c.CourseName, c.CourseCode, c.Instructor),
		Changed: true,
	}, nil
}

// ShowCourseOptions selects the course to show.
type ShowCourseOptions struct {
	CourseCode string
}

// ShowCourse returns the course card with student names resolved.
func ShowCourse(store *datastore.DataStore, opts ShowCourseOptions) (*types.CommandResult, error) {
	log := logging.GetLogger("commands.course")
	log.Debug().Str("command", "ShowCourse").Str("course_code", opts.CourseCode).Msg("Executing command")

	input.Trim(&opts.CourseCode)
	card, err := store.DescribeCourse(opts.CourseCode)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "ShowCourse").Str("course_code", opts.CourseCode).Msg("Command finished")
	return &types.CommandResult{Command: "course show", Message: card}, nil
}

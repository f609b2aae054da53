package roster

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort          = "Keep student and course records"
	MsgMenuShort          = "Open the interactive menu"
	MsgStudentShort       = "Add or show students"
	MsgStudentAddShort    = "Add a student"
	MsgStudentShowShort   = "Show a student with their courses and grades"
	MsgCourseShort        = "Add or show courses"
	MsgCourseAddShort     = "Add a course"
	MsgCourseShowShort    = "Show a course with its enrolled students"
	MsgEnrollShort        = "Enroll a student in a course"
	MsgGradeShort         = "Record a grade for an enrolled student"
	MsgExportShort        = "Export all records as json, yaml, toml or xml"
	MsgImportShort        = "Import records from an .xlsx workbook"
	MsgVerifyShort        = "Check the data file for broken references"
	MsgGenConfigShort     = "Output or write the default configuration"
	MsgVersionShort       = "Print version information"
	MsgCompletionShort    = "Generate shell completion script"
	MsgGenConfigLong      = "Print the default configuration with every value commented out, or write it to the user config file with --write."
	MsgNoCommandSpecified = "no command specified"

	// Status messages
	MsgVerifyMissing   = "No data file at %s; nothing to verify.\n"
	MsgVerifyOK        = "%s is consistent: %d students, %d courses.\n"
	MsgVerifyProblems  = "%d problem(s) found in %s"
	MsgConfigWritten   = "Wrote %s\n"
	MsgConfigKept      = "Config file already exists; not overwritten."
	MsgVersionFormat   = "roster version %s\n  commit: %s\n  built:  %s\n"
	MsgAutosaveSkipped = "Changes were not saved (autosave is off)."

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDataFile   = "Data file to load and save (default from config: students_courses_data.json)"
	MsgFlagIntegrity  = "How broken references are handled on load: strict, heal or trust"
	MsgFlagConfig     = "Extra config file, applied after the user and local config"
	MsgFlagLoad       = "Load the data file before showing the menu"
	MsgFlagID         = "Student ID"
	MsgFlagName       = "Name"
	MsgFlagAge        = "Age in whole years"
	MsgFlagAddress    = "Address"
	MsgFlagCode       = "Course code"
	MsgFlagCourseName = "Course name"
	MsgFlagInstructor = "Instructor"
	MsgFlagFormat     = "Output format: json, yaml, toml or xml"
	MsgFlagOutput     = "Write to this file instead of stdout"
	MsgFlagWrite      = "Write the config file instead of printing it"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/menu-long.txt
	msgMenuLongRaw string
	MsgMenuLong    = strings.TrimSpace(msgMenuLongRaw)

	//go:embed msgs/student-add-example.txt
	msgStudentAddExampleRaw string
	MsgStudentAddExample    = strings.TrimRight(msgStudentAddExampleRaw, "\n")

	//go:embed msgs/course-add-example.txt
	msgCourseAddExampleRaw string
	MsgCourseAddExample    = strings.TrimRight(msgCourseAddExampleRaw, "\n")

	//go:embed msgs/grade-example.txt
	msgGradeExampleRaw string
	MsgGradeExample    = strings.TrimRight(msgGradeExampleRaw, "\n")

	//go:embed msgs/export-long.txt
	msgExportLongRaw string
	MsgExportLong    = strings.TrimSpace(msgExportLongRaw)

	//go:embed msgs/import-long.txt
	msgImportLongRaw string
	MsgImportLong    = strings.TrimSpace(msgImportLongRaw)

	//go:embed msgs/verify-long.txt
	msgVerifyLongRaw string
	MsgVerifyLong    = strings.TrimSpace(msgVerifyLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

package importdata

import (
	"bytes"
	"fmt"

	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/importer"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/types"
)

// ImportOptions holds options for the import command.
type ImportOptions struct {
	Workbook   string
	FileSystem types.FS
}

// ImportResult is the command result plus the rows that were skipped.
type ImportResult struct {
	types.CommandResult
	Report *importer.Report
}

// Import adds the rows of an .xlsx workbook to the store.
func Import(store *datastore.DataStore, opts ImportOptions) (*ImportResult, error) {
	log := logging.GetLogger("commands.import")
	log.Debug().Str("command", "Import").Str("workbook", opts.Workbook).Msg("Executing command")

	data, err := opts.FileSystem.ReadFile(opts.Workbook)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to read %s", opts.Workbook).
			WithDetail("path", opts.Workbook)
	}

	report, err := importer.Import(bytes.NewReader(data), store)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "Import").
		Int("students", report.StudentsAdded).
		Int("courses", report.CoursesAdded).
		Int("enrollments", report.Enrollments).
		Int("skipped", len(report.Skipped)).
		Msg("Command finished")
	return &ImportResult{
		CommandResult: types.CommandResult{
			Command: "import",
			Message: fmt.Sprintf("Imported %d students, %d courses and %d enrollments (%d rows skipped).",
				report.StudentsAdded, report.CoursesAdded, report.Enrollments, len(report.Skipped)),
			Changed: report.Changed(),
		},
		Report: report,
	}, nil
}

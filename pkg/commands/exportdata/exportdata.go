package exportdata

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arthur-debert/roster/pkg/codec"
	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/export"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/types"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	Format string
	// OutputFile receives the export when set; Stdout otherwise.
	OutputFile string
	FileSystem types.FS
	Stdout     io.Writer
}

// Export renders the store in the requested format.
func Export(store *datastore.DataStore, opts ExportOptions) (*types.CommandResult, error) {
	log := logging.GetLogger("commands.export")
	log.Debug().Str("command", "Export").Str("format", opts.Format).Str("output", opts.OutputFile).Msg("Executing command")

	format, err := export.ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}
	doc := codec.Serialize(store)

	if opts.OutputFile == "" {
		if err := export.Write(opts.Stdout, doc, format); err != nil {
			return nil, err
		}
		log.Info().Str("command", "Export").Str("format", format.String()).Msg("Command finished")
		return &types.CommandResult{Command: "export"}, nil
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, doc, format); err != nil {
		return nil, err
	}
	if err := opts.FileSystem.WriteFile(opts.OutputFile, buf.Bytes(), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to write %s", opts.OutputFile).
			WithDetail("path", opts.OutputFile)
	}

	log.Info().Str("command", "Export").Str("format", format.String()).Str("path", opts.OutputFile).Msg("Command finished")
	return &types.CommandResult{
		Command: "export",
		Message: fmt.Sprintf("Exported %d students and %d courses to %s.", len(doc.Students), len(doc.Courses), opts.OutputFile),
	}, nil
}

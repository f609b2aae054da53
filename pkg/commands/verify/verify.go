package verify

import (
	"github.com/arthur-debert/roster/pkg/codec"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/persistence"
	"github.com/arthur-debert/roster/pkg/types"
)

// VerifyOptions selects the data file to check.
type VerifyOptions struct {
	FileSystem types.FS
	DataFile   string
}

// Verify reads the data file and lists every reference problem in it. A
// file that cannot be parsed at all is an error; reference problems are
// reported in the result.
func Verify(opts VerifyOptions) (*types.VerifyResult, error) {
	log := logging.GetLogger("commands.verify")
	log.Debug().Str("command", "Verify").Str("path", opts.DataFile).Msg("Executing command")
	store := persistence.New(opts.FileSystem, opts.DataFile)
	result := &types.VerifyResult{Path: store.Path(), Problems: []string{}}

	if !store.Exists() {
		log.Info().Str("command", "Verify").Str("path", store.Path()).Bool("found", false).Msg("Command finished")
		return result, nil
	}
	result.Found = true

	doc, err := store.ReadDocument()
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "%s is not a valid data file", store.Path()).
			WithDetail("path", store.Path())
	}

	for _, p := range codec.Check(doc) {
		result.Problems = append(result.Problems, p.String())
	}

	ds, err := codec.Deserialize(doc, codec.Trust)
	if err != nil {
		return nil, err
	}
	result.Students, result.Courses = ds.Len()

	log.Info().Str("command", "Verify").
		Str("path", result.Path).
		Int("problems", len(result.Problems)).
		Msg("Command finished")
	return result, nil
}

// Package persistence saves and loads a DataStore as a single JSON file.
package persistence

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/roster/pkg/codec"
	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/types"
)

// DefaultDataFile is the data file name used when nothing else is configured.
const DefaultDataFile = "students_courses_data.json"

// tmpSuffix marks the file a save is written to before it replaces the data file.
const tmpSuffix = ".tmp"

// FileStore reads and writes one data file.
type FileStore struct {
	fs   types.FS
	path string
}

// New creates a FileStore for the given path.
func New(fsys types.FS, path string) *FileStore {
	if path == "" {
		path = DefaultDataFile
	}
	return &FileStore{fs: fsys, path: path}
}

// Path returns the data file path.
func (f *FileStore) Path() string {
	return f.path
}

// Exists reports whether the data file is present.
func (f *FileStore) Exists() bool {
	_, err := f.fs.Stat(f.path)
	return err == nil
}

// Save writes the store to a temporary file next to the data file and then
// renames it into place, so a failed save leaves the previous file intact.
func (f *FileStore) Save(ds *datastore.DataStore) error {
	logger := logging.GetLogger("persistence")
	done := logging.LogOperationStart(logger, "save")
	defer done()

	data, err := codec.Encode(ds)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := f.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "failed to create directory %s", dir).
				WithDetail("path", f.path)
		}
	}

	tmp := f.path + tmpSuffix
	if err := f.fs.WriteFile(tmp, data, 0644); err != nil {
		_ = f.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to write %s", tmp).
			WithDetail("path", f.path)
	}
	if err := f.fs.Rename(tmp, f.path); err != nil {
		_ = f.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to replace %s", f.path).
			WithDetail("path", f.path)
	}

	students, courses := ds.Len()
	logger.Info().
		Str("path", f.path).
		Int("students", students).
		Int("courses", courses).
		Int("bytes", len(data)).
		Msg("Data file saved")
	return nil
}

// Load reads the data file. A missing file is not an error: it yields an
// empty store and found=false. Read failures are ErrIOFailure; bad content
// is ErrDeserialization.
func (f *FileStore) Load(policy codec.Integrity) (ds *datastore.DataStore, found bool, err error) {
	logger := logging.GetLogger("persistence")
	done := logging.LogOperationStart(logger, "load")
	defer done()

	data, err := f.fs.ReadFile(f.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			logger.Info().Str("path", f.path).Msg("No data file, starting empty")
			return datastore.New(), false, nil
		}
		return nil, false, errors.Wrapf(err, errors.ErrIOFailure, "failed to read %s", f.path).
			WithDetail("path", f.path)
	}

	ds, err = codec.Decode(data, policy)
	if err != nil {
		var rosterErr *errors.RosterError
		if stderrors.As(err, &rosterErr) {
			rosterErr.WithDetail("path", f.path)
		}
		return nil, true, err
	}

	students, courses := ds.Len()
	logger.Info().
		Str("path", f.path).
		Int("students", students).
		Int("courses", courses).
		Msg("Data file loaded")
	return ds, true, nil
}

// ReadDocument parses the data file without building a store.
func (f *FileStore) ReadDocument() (codec.Document, error) {
	data, err := f.fs.ReadFile(f.path)
	if err != nil {
		return codec.Document{}, errors.Wrapf(err, errors.ErrIOFailure, "failed to read %s", f.path).
			WithDetail("path", f.path)
	}
	return codec.Unmarshal(data)
}

package types

import (
	"io/fs"
)

// FS is the filesystem interface required for roster persistence
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Remove(name string) error
	Rename(oldpath, newpath string) error
}

// NameLookup resolves an identity (course code or student ID) to a display
// name. A nil NameLookup means identities are shown as-is.
type NameLookup func(key string) (string, bool)

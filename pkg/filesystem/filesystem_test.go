package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/roster/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exercise(t *testing.T, fs types.FS, dir string) {
	t.Helper()

	testFile := filepath.Join(dir, "data.json")
	testContent := []byte(`{"students":{}}`)

	require.NoError(t, fs.MkdirAll(dir, 0755))
	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "data.json", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	_, err = fs.ReadFile(dir)
	assert.Error(t, err, "reading a directory should fail")

	renamed := filepath.Join(dir, "renamed.json")
	require.NoError(t, fs.Rename(testFile, renamed))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fs.Remove(renamed))
	_, err = fs.Stat(renamed)
	assert.True(t, os.IsNotExist(err))
}

func TestNewOS(t *testing.T) {
	fs := NewOS()
	require.NotNil(t, fs)
	exercise(t, fs, filepath.Join(t.TempDir(), "sub"))
}

func TestNewMemory(t *testing.T) {
	fs := NewMemory()
	require.NotNil(t, fs)
	exercise(t, fs, "/roster")
}

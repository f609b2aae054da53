// pkg/commands/exportdata/exportdata_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS
// PURPOSE: Test export to stdout and to a file

package exportdata_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/roster/pkg/commands/exportdata"
	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/filesystem"
	"github.com/arthur-debert/roster/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	store := datastore.New()
	require.NoError(t, store.AddStudent(types.NewStudent("S1", "Alia", 20, "12 Elm St")))

	t.Run("stdout", func(t *testing.T) {
		var out bytes.Buffer
		result, err := exportdata.Export(store, exportdata.ExportOptions{Format: "yaml", Stdout: &out})
		require.NoError(t, err)
		assert.Empty(t, result.Message)
		assert.Contains(t, out.String(), "name: Alia")
	})

	t.Run("file", func(t *testing.T) {
		fs := filesystem.NewMemory()
		result, err := exportdata.Export(store, exportdata.ExportOptions{
			Format: "xml", OutputFile: "/roster.xml", FileSystem: fs,
		})
		require.NoError(t, err)
		assert.Equal(t, "Exported 1 students and 0 courses to /roster.xml.", result.Message)
		assert.False(t, result.Changed)

		data, err := fs.ReadFile("/roster.xml")
		require.NoError(t, err)
		assert.Contains(t, string(data), `<student id="S1">`)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := exportdata.Export(store, exportdata.ExportOptions{Format: "csv", Stdout: &bytes.Buffer{}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

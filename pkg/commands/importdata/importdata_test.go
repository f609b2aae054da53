// pkg/commands/importdata/importdata_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS, excelize
// PURPOSE: Test importing a workbook from the filesystem

package importdata_test

import (
	"testing"

	"github.com/arthur-debert/roster/pkg/commands/importdata"
	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestImport(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "students"))
	require.NoError(t, f.SetSheetRow("students", "A1", &[]interface{}{"student_id", "name", "age", "address"}))
	require.NoError(t, f.SetSheetRow("students", "A2", &[]interface{}{"S1", "Alia", 20, "12 Elm St"}))
	require.NoError(t, f.SetSheetRow("students", "A3", &[]interface{}{"S1", "Dup", 21, "x"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	fs := filesystem.NewMemory()
	require.NoError(t, fs.WriteFile("/roster.xlsx", buf.Bytes(), 0644))

	store := datastore.New()
	result, err := importdata.Import(store, importdata.ImportOptions{Workbook: "/roster.xlsx", FileSystem: fs})
	require.NoError(t, err)
	assert.Equal(t, "Imported 1 students, 0 courses and 0 enrollments (1 rows skipped).", result.Message)
	assert.True(t, result.Changed)
	require.Len(t, result.Report.Skipped, 1)
	assert.Equal(t, 3, result.Report.Skipped[0].Row)
}

func TestImport_MissingWorkbook(t *testing.T) {
	_, err := importdata.Import(datastore.New(), importdata.ImportOptions{
		Workbook: "/nope.xlsx", FileSystem: filesystem.NewMemory(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIOFailure))
}

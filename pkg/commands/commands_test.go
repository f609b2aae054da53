// pkg/commands/commands_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS, captured zerolog output
// PURPOSE: Test every command logs its start and its completion

package commands_test

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/arthur-debert/roster/pkg/commands"
	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/filesystem"
	"github.com/arthur-debert/roster/pkg/persistence"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// captureLogs routes the global logger into a buffer at debug level.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

// messagesFor returns the log messages recorded with the given command field.
func messagesFor(t *testing.T, buf *bytes.Buffer, command string) []string {
	t.Helper()
	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		if entry["command"] == command {
			msgs = append(msgs, entry["message"].(string))
		}
	}
	return msgs
}

func TestCommands_LogStartAndFinish(t *testing.T) {
	fsys := filesystem.NewMemory()
	store := datastore.New()

	files := persistence.New(fsys, "/data/roster.json")
	require.NoError(t, files.Save(datastore.New()))

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"student_id", "name", "age", "address"}))
	workbook, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, fsys.WriteFile("/in.xlsx", workbook.Bytes(), 0644))

	tests := []struct {
		command string
		run     func() error
	}{
		{"AddStudent", func() error {
			_, err := commands.AddStudent(store, commands.AddStudentOptions{StudentID: "S1", Name: "Alia", Age: "20", Address: "x"})
			return err
		}},
		{"AddCourse", func() error {
			_, err := commands.AddCourse(store, commands.AddCourseOptions{CourseCode: "C1", CourseName: "Algorithms", Instructor: "Dr. Kay"})
			return err
		}},
		{"Enroll", func() error {
			_, err := commands.Enroll(store, commands.EnrollOptions{StudentID: "S1", CourseCode: "C1"})
			return err
		}},
		{"AddGrade", func() error {
			_, err := commands.AddGrade(store, commands.AddGradeOptions{StudentID: "S1", CourseCode: "C1", Grade: "A"})
			return err
		}},
		{"ShowStudent", func() error {
			_, err := commands.ShowStudent(store, commands.ShowStudentOptions{StudentID: "S1"})
			return err
		}},
		{"ShowCourse", func() error {
			_, err := commands.ShowCourse(store, commands.ShowCourseOptions{CourseCode: "C1"})
			return err
		}},
		{"Export", func() error {
			_, err := commands.Export(store, commands.ExportOptions{Format: "json", Stdout: io.Discard, FileSystem: fsys})
			return err
		}},
		{"Import", func() error {
			_, err := commands.Import(store, commands.ImportOptions{Workbook: "/in.xlsx", FileSystem: fsys})
			return err
		}},
		{"Verify", func() error {
			_, err := commands.Verify(commands.VerifyOptions{FileSystem: fsys, DataFile: files.Path()})
			return err
		}},
		{"GenConfig", func() error {
			_, err := commands.GenConfig(commands.GenConfigOptions{FileSystem: fsys})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			buf := captureLogs(t)
			require.NoError(t, tt.run())
			assert.Equal(t, []string{"Executing command", "Command finished"}, messagesFor(t, buf, tt.command))
		})
	}
}

func TestCommands_FailureLogsNoFinish(t *testing.T) {
	buf := captureLogs(t)
	_, err := commands.Enroll(datastore.New(), commands.EnrollOptions{StudentID: "S9", CourseCode: "C1"})
	require.Error(t, err)
	assert.Equal(t, []string{"Executing command"}, messagesFor(t, buf, "Enroll"))
}

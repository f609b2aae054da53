// cmd/roster/commands_test.go
// TEST TYPE: CLI Integration
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Test one-shot commands load, change and save the data file

package roster

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/roster/pkg/codec"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/filesystem"
	"github.com/arthur-debert/roster/pkg/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type cli struct {
	t        *testing.T
	env      Env
	dataFile string
	stdin    string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	dir := t.TempDir()
	return &cli{
		t: t,
		env: Env{
			FS:            filesystem.NewOS(),
			UserConfigDir: t.TempDir(),
			WorkDir:       dir,
		},
		dataFile: filepath.Join(dir, "data.json"),
	}
}

// run executes roster with args and returns stdout, stderr and the error.
func (c *cli) run(args ...string) (string, string, error) {
	c.t.Helper()
	root := NewRootCmdWithEnv(c.env)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(c.stdin))
	root.SetArgs(append([]string{"--data-file", c.dataFile}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, _, err := c.run(args...)
	require.NoError(c.t, err, "roster %v", args)
	return out
}

func (c *cli) load() *persistence.FileStore {
	return persistence.New(filesystem.NewOS(), c.dataFile)
}

func TestCLI_Scenario(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("student", "add", "--id", "S1", "--name", "Alia", "--age", "20", "--address", "12 Elm St")
	assert.Equal(t, "Student Alia (ID: S1) added successfully.\n", out)

	out = c.mustRun("course", "add", "--code", "C1", "--name", "Algorithms", "--instructor", "Dr. Kay")
	assert.Equal(t, "Course Algorithms (Code: C1) created with instructor Dr. Kay.\n", out)

	_, _, err := c.run("grade", "S1", "C1", "A")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotEnrolled))

	out = c.mustRun("enroll", "S1", "C1")
	assert.Equal(t, "Student Alia (ID: S1) enrolled in Algorithms (Code: C1).\n", out)

	out = c.mustRun("grade", "S1", "C1", "A")
	assert.Equal(t, "Grade A added for Alia in Algorithms.\n", out)

	_, _, err = c.run("grade", "S1", "C2", "B")
	assert.True(t, errors.IsErrorCode(err, errors.ErrCourseNotFound))

	out = c.mustRun("student", "show", "S1")
	assert.Equal(t, `Student Information:
Name: Alia
ID: S1
Age: 20
Address: 12 Elm St
Enrolled Courses: Algorithms
Grades: {Algorithms: A}
`, out)

	out = c.mustRun("course", "show", "C1")
	assert.Contains(t, out, "Enrolled Students: Alia")

	store, found, err := c.load().Load(codec.Strict)
	require.NoError(t, err)
	require.True(t, found)
	s1, _ := store.GetStudent("S1")
	assert.Equal(t, map[string]string{"C1": "A"}, s1.Grades)
}

func TestCLI_FailedCommandLeavesFileUntouched(t *testing.T) {
	c := newCLI(t)
	c.mustRun("student", "add", "--id", "S1", "--name", "Alia", "--age", "20", "--address", "x")
	before, err := os.ReadFile(c.dataFile)
	require.NoError(t, err)

	_, _, err = c.run("student", "add", "--id", "S1", "--name", "Other", "--age", "30", "--address", "y")
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateIdentity))

	_, _, err = c.run("enroll", "S9", "C1")
	assert.True(t, errors.IsErrorCode(err, errors.ErrStudentNotFound))

	_, _, err = c.run("student", "add", "--id", "S2", "--name", "Bo", "--age", "-1", "--address", "y")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	after, err := os.ReadFile(c.dataFile)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCLI_ShowDoesNotCreateFile(t *testing.T) {
	c := newCLI(t)
	_, _, err := c.run("student", "show", "S1")
	assert.True(t, errors.IsErrorCode(err, errors.ErrStudentNotFound))
	_, statErr := os.Stat(c.dataFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCLI_AutosaveOff(t *testing.T) {
	c := newCLI(t)
	require.NoError(t, os.WriteFile(filepath.Join(c.env.WorkDir, "roster.toml"), []byte("autosave = false\n"), 0644))

	out, errOut, err := c.run("course", "add", "--code", "C1", "--name", "Algorithms", "--instructor", "Dr. Kay")
	require.NoError(t, err)
	assert.Contains(t, out, "created with instructor")
	assert.Contains(t, errOut, MsgAutosaveSkipped)
	assert.False(t, c.load().Exists())
}

func TestCLI_IntegrityFlag(t *testing.T) {
	c := newCLI(t)
	require.NoError(t, os.WriteFile(c.dataFile, []byte(`{
  "students": {"S1": {"name": "Alia", "age": 20, "address": "x", "student_id": "S1", "courses": ["C1"]}},
  "courses": {"C1": {"course_name": "Algorithms", "course_code": "C1", "instructor": "Dr. Kay"}}
}`), 0644))

	_, _, err := c.run("course", "show", "C1")
	assert.True(t, errors.IsErrorCode(err, errors.ErrDeserialization), "strict by default")

	_, _, err = c.run("verify")
	require.Error(t, err)

	out := c.mustRun("--integrity", "heal", "course", "show", "C1")
	assert.Contains(t, out, "Enrolled Students: Alia")

	_, _, err = c.run("--integrity", "lenient", "course", "show", "C1")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
}

func TestCLI_Verify(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("verify")
	assert.Contains(t, out, "nothing to verify")

	c.mustRun("student", "add", "--id", "S1", "--name", "Alia", "--age", "20", "--address", "x")
	out = c.mustRun("verify")
	assert.Contains(t, out, "is consistent: 1 students, 0 courses.")
}

func TestCLI_Export(t *testing.T) {
	c := newCLI(t)
	c.mustRun("student", "add", "--id", "S1", "--name", "Alia", "--age", "20", "--address", "x")

	out := c.mustRun("export", "--format", "yaml")
	assert.Contains(t, out, "student_id: S1")

	target := filepath.Join(c.env.WorkDir, "roster.toml.out")
	out = c.mustRun("export", "-f", "toml", "-o", target)
	assert.Contains(t, out, "Exported 1 students and 0 courses")
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Alia")
	assert.Contains(t, string(data), "student_id")

	_, _, err = c.run("export", "--format", "csv")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestCLI_Import(t *testing.T) {
	c := newCLI(t)

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "students"))
	require.NoError(t, f.SetSheetRow("students", "A1", &[]interface{}{"student_id", "name", "age", "address"}))
	require.NoError(t, f.SetSheetRow("students", "A2", &[]interface{}{"S1", "Alia", 20, "x"}))
	require.NoError(t, f.SetSheetRow("students", "A3", &[]interface{}{"S2", "", 20, "x"}))
	workbook := filepath.Join(c.env.WorkDir, "in.xlsx")
	require.NoError(t, f.SaveAs(workbook))
	require.NoError(t, f.Close())

	out, errOut, err := c.run("import", workbook)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 students")
	assert.Contains(t, errOut, "students row 3: missing name")

	store, _, err := c.load().Load(codec.Strict)
	require.NoError(t, err)
	_, ok := store.GetStudent("S1")
	assert.True(t, ok)
}

func TestCLI_Menu(t *testing.T) {
	c := newCLI(t)
	c.stdin = strings.Join([]string{"1", "Alia", "20", "x", "S1", "7", "0"}, "\n") + "\n"

	out := c.mustRun()
	assert.Contains(t, out, "Student Alia (ID: S1) added successfully.")
	assert.Contains(t, out, "All student and course data saved successfully.")
	assert.True(t, c.load().Exists())

	c.stdin = "5\nS1\n0\n"
	out = c.mustRun("menu", "--load")
	assert.Contains(t, out, "Name: Alia")
}

func TestCLI_GenConfig(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("gen-config")
	assert.Contains(t, out, `# autosave = true`)

	out = c.mustRun("gen-config", "--write")
	assert.Contains(t, out, filepath.Join(c.env.UserConfigDir, "config.toml"))

	out = c.mustRun("gen-config", "--write")
	assert.Contains(t, out, MsgConfigKept)
}

func TestCLI_HelpTopics(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("help", "topics")
	for _, topic := range []string{"data-file", "config", "menu", "import", "integrity"} {
		assert.Contains(t, out, topic)
	}

	out = c.mustRun("help", "integrity")
	assert.Contains(t, out, "heal")
}

func TestCLI_Version(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun("version")
	assert.True(t, strings.HasPrefix(out, "roster version dev"))
}

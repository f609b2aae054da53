package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/types"
	"github.com/xuri/excelize/v2"
)

// Sheet names.
const (
	SheetStudents    = "students"
	SheetCourses     = "courses"
	SheetEnrollments = "enrollments"
)

var (
	studentColumns    = []string{"student_id", "name", "age", "address"}
	courseColumns     = []string{"course_code", "course_name", "instructor"}
	enrollmentColumns = []string{"student_id", "course_code"}
)

// SkippedRow is a row that was not imported.
type SkippedRow struct {
	Sheet  string
	Row    int // 1-based, as shown by spreadsheet programs
	Reason string
}

func (s SkippedRow) String() string {
	return fmt.Sprintf("%s row %d: %s", s.Sheet, s.Row, s.Reason)
}

// Report summarises an import.
type Report struct {
	StudentsAdded int
	CoursesAdded  int
	Enrollments   int
	GradesAdded   int
	Skipped       []SkippedRow
}

// Changed reports whether the import modified the store.
func (r *Report) Changed() bool {
	return r.StudentsAdded+r.CoursesAdded+r.Enrollments+r.GradesAdded > 0
}

func (r *Report) skip(sheet string, row int, format string, args ...interface{}) {
	r.Skipped = append(r.Skipped, SkippedRow{Sheet: sheet, Row: row, Reason: fmt.Sprintf(format, args...)})
}

// Import reads the workbook from r and adds its rows to store. Courses are
// imported before enrollments so a single workbook can describe a complete
// roster.
func Import(r io.Reader, store *datastore.DataStore) (*Report, error) {
	logger := logging.GetLogger("importer")

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrImport, "failed to open workbook")
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn().Err(err).Msg("Error closing workbook")
		}
	}()

	sheets := map[string]string{}
	for _, name := range f.GetSheetList() {
		sheets[strings.ToLower(strings.TrimSpace(name))] = name
	}
	if len(sheets) == 0 {
		return nil, errors.New(errors.ErrImport, "workbook does not contain any sheets")
	}

	_, hasStudents := sheets[SheetStudents]
	_, hasCourses := sheets[SheetCourses]
	_, hasEnrollments := sheets[SheetEnrollments]
	if !hasStudents && !hasCourses && !hasEnrollments {
		first := f.GetSheetName(0)
		logger.Debug().Str("sheet", first).Msg("No named sheets, reading first sheet as students")
		sheets[SheetStudents] = first
	}

	report := &Report{}
	steps := []struct {
		sheet   string
		columns []string
		row     func(store *datastore.DataStore, report *Report, sheet string, n int, get func(string) string)
	}{
		{SheetStudents, studentColumns, importStudent},
		{SheetCourses, courseColumns, importCourse},
		{SheetEnrollments, enrollmentColumns, importEnrollment},
	}

	for _, step := range steps {
		name, ok := sheets[step.sheet]
		if !ok {
			continue
		}
		rows, err := f.GetRows(name)
		if err != nil {
			return report, errors.Wrapf(err, errors.ErrImport, "failed to read sheet %s", name).
				WithDetail("sheet", name)
		}
		if len(rows) == 0 {
			continue
		}

		index, err := headerIndex(name, rows[0], step.columns)
		if err != nil {
			return report, err
		}

		for i, row := range rows[1:] {
			if blank(row) {
				continue
			}
			get := func(col string) string {
				j, ok := index[col]
				if !ok || j >= len(row) {
					return ""
				}
				return strings.TrimSpace(row[j])
			}
			step.row(store, report, name, i+2, get)
		}
	}

	logger.Info().
		Int("students", report.StudentsAdded).
		Int("courses", report.CoursesAdded).
		Int("enrollments", report.Enrollments).
		Int("skipped", len(report.Skipped)).
		Msg("Import complete")
	return report, nil
}

// headerIndex maps column names to positions. Every required column must be
// present; optional columns (grade) are mapped when found.
func headerIndex(sheet string, header, required []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, " ", "_")
		if _, dup := index[key]; !dup && key != "" {
			index[key] = i
		}
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, errors.Newf(errors.ErrImport, "sheet %s is missing column %q", sheet, col).
				WithDetail("sheet", sheet).
				WithDetail("column", col)
		}
	}
	return index, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func importStudent(store *datastore.DataStore, report *Report, sheet string, n int, get func(string) string) {
	id, name, address := get("student_id"), get("name"), get("address")
	for _, col := range []string{"student_id", "name", "address", "age"} {
		if get(col) == "" {
			report.skip(sheet, n, "missing %s", col)
			return
		}
	}
	age, ok := types.ParseAge(get("age"))
	if !ok {
		report.skip(sheet, n, "invalid age %q", get("age"))
		return
	}
	if err := store.AddStudent(types.NewStudent(id, name, age, address)); err != nil {
		report.skip(sheet, n, "%s", errors.UserMessage(err))
		return
	}
	report.StudentsAdded++
}

func importCourse(store *datastore.DataStore, report *Report, sheet string, n int, get func(string) string) {
	for _, col := range courseColumns {
		if get(col) == "" {
			report.skip(sheet, n, "missing %s", col)
			return
		}
	}
	c := types.NewCourse(get("course_code"), get("course_name"), get("instructor"))
	if err := store.AddCourse(c); err != nil {
		report.skip(sheet, n, "%s", errors.UserMessage(err))
		return
	}
	report.CoursesAdded++
}

func importEnrollment(store *datastore.DataStore, report *Report, sheet string, n int, get func(string) string) {
	sid, code := get("student_id"), get("course_code")
	for _, col := range enrollmentColumns {
		if get(col) == "" {
			report.skip(sheet, n, "missing %s", col)
			return
		}
	}
	before, _ := store.GetStudent(sid)
	if _, err := store.Enroll(sid, code); err != nil {
		report.skip(sheet, n, "%s", errors.UserMessage(err))
		return
	}
	if !before.IsEnrolled(code) {
		report.Enrollments++
	}

	grade := get("grade")
	if grade == "" || before.Grades[code] == grade {
		return
	}
	if _, err := store.AddGrade(sid, code, grade); err != nil {
		report.skip(sheet, n, "%s", errors.UserMessage(err))
		return
	}
	report.GradesAdded++
}

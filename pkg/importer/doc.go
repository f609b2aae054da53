// Package importer loads students, courses and enrollments from an .xlsx
// workbook into a DataStore.
//
// Sheets are matched by name, case-insensitively:
//
//	students     student_id, name, age, address
//	courses      course_code, course_name, instructor
//	enrollments  student_id, course_code, grade (grade optional)
//
// A workbook with none of these sheets is read as a students sheet from its
// first sheet. Columns are located by the header row, so their order does not
// matter and extra columns are ignored. Rows that cannot be added are skipped
// and recorded in the Report; the rest of the workbook is still imported.
package importer

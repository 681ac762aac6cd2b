// Package csvio implements the fixed-column CSV codecs used by bulk
// import/export endpoints. Malformed rows are skipped and reported, never
// fatal to the batch.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// StudentColumns is the fixed column order for student import and export.
var StudentColumns = []string{"admissionNumber", "firstName", "lastName", "class", "section", "parentEmail"}

// StudentRow is one parsed row of a student import file.
type StudentRow struct {
	AdmissionNo string
	FirstName   string
	LastName    string
	ClassName   string
	Section     string
	ParentEmail string
}

// ReadStudents parses a student CSV stream. A header row matching
// StudentColumns is skipped when present. Rows with the wrong column count
// or empty required fields are collected as errors and do not abort the
// batch.
func ReadStudents(r io.Reader) (rows []StudentRow, rowErrors []string, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validate per row so one bad row does not kill the batch
	reader.TrimLeadingSpace = true

	line := 0
	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, nil, fmt.Errorf("failed to read csv: %w", readErr)
		}
		line++

		if line == 1 && isStudentHeader(record) {
			continue
		}

		if len(record) != len(StudentColumns) {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: expected %d columns, got %d", line, len(StudentColumns), len(record)))
			continue
		}

		row := StudentRow{
			AdmissionNo: strings.TrimSpace(record[0]),
			FirstName:   strings.TrimSpace(record[1]),
			LastName:    strings.TrimSpace(record[2]),
			ClassName:   strings.TrimSpace(record[3]),
			Section:     strings.TrimSpace(record[4]),
			ParentEmail: strings.TrimSpace(record[5]),
		}

		if row.AdmissionNo == "" || row.FirstName == "" || row.LastName == "" || row.ClassName == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: missing required field", line))
			continue
		}

		rows = append(rows, row)
	}

	return rows, rowErrors, nil
}

// WriteStudents writes rows in the same fixed column order, header first.
func WriteStudents(w io.Writer, rows []StudentRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(StudentColumns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{row.AdmissionNo, row.FirstName, row.LastName, row.ClassName, row.Section, row.ParentEmail}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func isStudentHeader(record []string) bool {
	if len(record) != len(StudentColumns) {
		return false
	}
	for i, col := range StudentColumns {
		if !strings.EqualFold(strings.TrimSpace(record[i]), col) {
			return false
		}
	}
	return true
}

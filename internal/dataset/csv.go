package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// requiredColumns are the headers the table must carry. A missing column is
// a load error; a malformed value in a present column is only a warning.
var requiredColumns = []string{
	"Department",
	"JobRole",
	"Attrition",
	"OverTime",
	"JobSatisfaction",
	"EnvironmentSatisfaction",
	"WorkLifeBalance",
}

// employeeNumberColumn is optional; rows without it are still usable, the
// risk table just shows no identifier.
const employeeNumberColumn = "EmployeeNumber"

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Warning describes one malformed value encountered while decoding.
// Row is 1-based and counts data rows (the header is row 0).
type Warning struct {
	Row     int
	Column  string
	Message string
}

// Decode parses a CSV employee table into records. Column order is free; the
// header row names the columns. Returns an error if the header cannot be
// read or a required column is absent. Malformed values never fail the load:
// they leave the zero sentinel in place and are reported as warnings.
func Decode(r io.Reader) ([]Record, []Warning, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read table: %w", err)
	}

	cr := csv.NewReader(bytes.NewReader(decodeToUTF8(raw)))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	headers, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("empty table: no header row")
		}
		return nil, nil, fmt.Errorf("read header row: %w", err)
	}

	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", col)
		}
	}

	field := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var (
		records  []Record
		warnings []Warning
		rowNum   int
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			rowNum++
			warnings = append(warnings, Warning{Row: rowNum, Message: err.Error()})
			continue
		}
		rowNum++

		rec := Record{
			EmployeeNumber: field(row, employeeNumberColumn),
			Department:     field(row, "Department"),
			JobRole:        field(row, "JobRole"),
			Attrition:      field(row, "Attrition"),
			OverTime:       field(row, "OverTime"),
		}

		ordinal := func(col string) int {
			raw := field(row, col)
			if raw == "" {
				warnings = append(warnings, Warning{Row: rowNum, Column: col, Message: "empty value"})
				return 0
			}
			v, err := strconv.Atoi(raw)
			if err != nil {
				warnings = append(warnings, Warning{Row: rowNum, Column: col,
					Message: fmt.Sprintf("not an integer: %q", raw)})
				return 0
			}
			return v
		}
		rec.JobSatisfaction = ordinal("JobSatisfaction")
		rec.EnvironmentSatisfaction = ordinal("EnvironmentSatisfaction")
		rec.WorkLifeBalance = ordinal("WorkLifeBalance")

		records = append(records, rec)
	}

	return records, warnings, nil
}

// ReadFile loads and decodes the table at path.
func ReadFile(path string) ([]Record, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: open %q: %w", path, err)
	}
	defer f.Close()

	records, warnings, err := Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: %q: %w", path, err)
	}
	return records, warnings, nil
}

// decodeToUTF8 strips a UTF-8 BOM and transcodes non-UTF-8 input from
// Windows-1252, the encoding spreadsheet exports usually arrive in.
func decodeToUTF8(data []byte) []byte {
	data = bytes.TrimPrefix(data, bomUTF8)
	if utf8.Valid(data) {
		return data
	}
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return data
	}
	return out
}

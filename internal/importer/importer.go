// Package importer bulk-loads entries from CSV. Each row passes through the
// store's normal validation individually: bad rows are skipped and counted,
// never abort the batch.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sadopc/worklog/internal/timesheet"
)

// RowError records one rejected row.
type RowError struct {
	Line   int
	Reason string
}

func (e RowError) String() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Summary is the outcome of a bulk import. The import as a whole always
// completes; Errors holds one record per skipped row.
type Summary struct {
	Accepted int
	Skipped  int
	Errors   []RowError
}

// FromCSVFile imports path into the store. See FromCSV.
func FromCSVFile(store *timesheet.Store, path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()
	return FromCSV(store, f)
}

// FromCSV reads candidate (date, start, end, break) rows from r and adds each
// through the store. Expected columns: Date, Start, End, Break (mins); a
// trailing Hours column is ignored since hours are always recomputed. A
// leading header row is detected and skipped.
func FromCSV(store *timesheet.Store, r io.Reader) (Summary, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var sum Summary
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			sum.skip(line, fmt.Sprintf("malformed csv: %v", err))
			continue
		}
		if line == 1 && isHeader(record) {
			continue
		}
		if reason, ok := addRow(store, record); !ok {
			sum.skip(line, reason)
			continue
		}
		sum.Accepted++
	}
	return sum, nil
}

func (s *Summary) skip(line int, reason string) {
	s.Skipped++
	s.Errors = append(s.Errors, RowError{Line: line, Reason: reason})
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "date")
}

func addRow(store *timesheet.Store, record []string) (reason string, ok bool) {
	if len(record) < 4 {
		return fmt.Sprintf("want at least 4 columns, got %d", len(record)), false
	}

	date, err := timesheet.ParseDate(strings.TrimSpace(record[0]))
	if err != nil {
		return err.Error(), false
	}
	start, err := timesheet.ParseClock(strings.TrimSpace(record[1]))
	if err != nil {
		return err.Error(), false
	}
	end, err := timesheet.ParseClock(strings.TrimSpace(record[2]))
	if err != nil {
		return err.Error(), false
	}
	breakMinutes, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return fmt.Sprintf("invalid break %q", record[3]), false
	}

	if _, err := store.Add(date, start, end, breakMinutes); err != nil {
		// Flush warnings are not a row problem; the entry was accepted.
		if timesheet.IsValidation(err) {
			return err.Error(), false
		}
	}
	return "", true
}

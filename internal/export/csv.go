package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sadopc/worklog/internal/timesheet"
)

// ToCSV writes entries to path in the report column order.
func ToCSV(entries []timesheet.Entry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	return WriteCSV(entries, f)
}

// WriteCSV encodes entries onto w, header first.
func WriteCSV(entries []timesheet.Entry, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, r := range Rows(entries) {
		record := []string{
			r.Date,
			r.Start,
			r.End,
			strconv.Itoa(r.BreakMinutes),
			strconv.FormatFloat(r.Hours, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

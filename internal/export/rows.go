package export

import "github.com/sadopc/worklog/internal/timesheet"

// Header is the column contract shared by every encoder.
var Header = []string{"Date", "Start", "End", "Break (mins)", "Hours"}

// Row is one report line in the export column order.
type Row struct {
	Date         string  `json:"date"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	BreakMinutes int     `json:"break_minutes"`
	Hours        float64 `json:"hours"`
}

// Rows converts entries into report rows, preserving their order. Callers
// pass date-descending snapshots from the store or aggregator.
func Rows(entries []timesheet.Entry) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			Date:         e.Date.String(),
			Start:        e.Start.String(),
			End:          e.End.String(),
			BreakMinutes: e.BreakMinutes,
			Hours:        e.Hours,
		})
	}
	return rows
}

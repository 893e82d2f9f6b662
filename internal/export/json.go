package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/worklog/internal/timesheet"
)

type jsonExport struct {
	ExportedAt string  `json:"exported_at"`
	Count      int     `json:"count"`
	TotalHours float64 `json:"total_hours"`
	Entries    []Row   `json:"entries"`
}

// ToJSON writes entries to path with export metadata.
func ToJSON(entries []timesheet.Entry, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(entries),
		TotalHours: timesheet.TotalHours(entries),
		Entries:    Rows(entries),
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

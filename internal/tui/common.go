package tui

import (
	"fmt"

	"github.com/sadopc/worklog/internal/timesheet"
)

// viewState represents the currently active view.
type viewState int

const (
	viewEntries viewState = iota
	viewAdd
	viewMonths
	viewReports
)

var viewNames = []string{"Entries", "Add", "Months", "Reports"}

// --- Messages ---

type entriesDataMsg struct {
	entries []timesheet.Entry
}

type entryAddedMsg struct {
	entry timesheet.Entry
}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatHours(h float64) string {
	return fmt.Sprintf("%.2f hrs", h)
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/worklog/internal/export"
	"github.com/sadopc/worklog/internal/timesheet"
)

type monthsModel struct {
	store  *timesheet.Store
	width  int
	height int

	entries      []timesheet.Entry
	months       []string
	cursor       int
	viewingMonth bool // true = showing the selected month's table
}

func newMonthsModel(s *timesheet.Store) monthsModel {
	return monthsModel{store: s}
}

func (m *monthsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m monthsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return entriesDataMsg{entries: m.store.List()}
	}
}

func (m monthsModel) update(msg tea.Msg) (monthsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesDataMsg:
		m.entries = msg.entries
		m.months = timesheet.Months(m.entries)
		if m.cursor >= len(m.months) {
			m.cursor = max(0, len(m.months)-1)
		}
		if len(m.months) == 0 {
			m.viewingMonth = false
		}
		return m, nil

	case tea.KeyMsg:
		if m.viewingMonth {
			switch {
			case key.Matches(msg, keys.Back):
				m.viewingMonth = false
			case key.Matches(msg, keys.Export):
				return m, m.exportMonth()
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.months)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Enter):
			if len(m.months) > 0 {
				m.viewingMonth = true
			}
		}
	}
	return m, nil
}

func (m monthsModel) selectedMonth() string {
	if m.cursor < len(m.months) {
		return m.months[m.cursor]
	}
	return ""
}

func (m monthsModel) exportMonth() tea.Cmd {
	month := m.selectedMonth()
	entries := timesheet.ForMonth(m.entries, month)
	return func() tea.Msg {
		home, err := os.UserHomeDir()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		path := filepath.Join(home, fmt.Sprintf("worklog-%s.csv", month))
		if err := export.ToCSV(entries, path); err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}

func (m monthsModel) view() string {
	if m.viewingMonth {
		return m.renderMonthTable()
	}
	return m.renderMonthList()
}

// formatMonth turns "2024-01" into "January 2024" for display.
func formatMonth(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}

func (m monthsModel) renderMonthList() string {
	w := m.width - 4
	title := titleStyle.Render("Months")

	if len(m.months) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No entries yet."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i, month := range m.months {
		monthEntries := timesheet.ForMonth(m.entries, month)
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		row := style.Render(fmt.Sprintf("%s%-16s", cursor, formatMonth(month))) +
			mutedStyle.Render(fmt.Sprintf(" %s  (%d entries)", formatHours(timesheet.TotalHours(monthEntries)), len(monthEntries)))
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: view month  ↑/↓: select"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (m monthsModel) renderMonthTable() string {
	w := m.width - 4
	month := m.selectedMonth()
	monthEntries := timesheet.ForMonth(m.entries, month)
	total := timesheet.TotalHours(monthEntries)

	title := titleStyle.Render(formatMonth(month)) + "  " + highlightStyle.Render(formatHours(total))

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-12s %-7s %-7s %-12s %s", "Date", "Start", "End", "Break (mins)", "Hours")))

	maxRows := m.height - 10
	for i, r := range export.Rows(monthEntries) {
		if maxRows > 0 && i >= maxRows {
			rows = append(rows, mutedStyle.Render(fmt.Sprintf("  … %d more", len(monthEntries)-i)))
			break
		}
		rows = append(rows, fmt.Sprintf("  %-12s %-7s %-7s %-12d %.2f", r.Date, r.Start, r.End, r.BreakMinutes, r.Hours))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  e: export month csv  esc: back"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

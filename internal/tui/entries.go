package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/worklog/internal/timesheet"
)

const recentLimit = 5

type entriesModel struct {
	store  *timesheet.Store
	width  int
	height int

	entries []timesheet.Entry
	cursor  int
}

func newEntriesModel(s *timesheet.Store) entriesModel {
	return entriesModel{store: s}
}

func (m *entriesModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m entriesModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return entriesDataMsg{entries: m.store.List()}
	}
}

func (m entriesModel) update(msg tea.Msg) (entriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesDataMsg:
		m.entries = msg.entries
		if m.cursor >= len(m.entries) {
			m.cursor = max(0, len(m.entries)-1)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < min(len(m.entries), recentLimit)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Delete):
			return m.deleteUnderCursor()
		}
	}
	return m, nil
}

func (m entriesModel) deleteUnderCursor() (entriesModel, tea.Cmd) {
	if m.cursor >= len(m.entries) {
		return m, nil
	}
	id := m.entries[m.cursor].ID
	return m, func() tea.Msg {
		removed, err := m.store.Delete(id)
		if err != nil && !errors.Is(err, timesheet.ErrPersistence) {
			return statusMsg{text: fmt.Sprintf("Delete error: %v", err), isError: true}
		}
		if !removed {
			return statusMsg{text: fmt.Sprintf("No entry with id %d", id), isError: true}
		}
		text := fmt.Sprintf("Deleted entry %d", id)
		if err != nil {
			text += " (flush failed, kept in memory)"
		}
		return statusMsg{text: text}
	}
}

func (m entriesModel) view() string {
	if m.width < 20 {
		return "Terminal too small"
	}
	w := m.width - 4

	summary := m.renderSummaryPanel(w)
	recent := m.renderRecentPanel(w)
	return lipgloss.JoinVertical(lipgloss.Left, summary, recent)
}

func (m entriesModel) renderSummaryPanel(w int) string {
	title := titleStyle.Render("Summary")

	total := timesheet.TotalHours(m.entries)
	months := timesheet.Months(m.entries)
	avg := timesheet.AverageHours(m.entries)

	row := fmt.Sprintf("  %-16s %s", "Entries", highlightStyle.Render(fmt.Sprintf("%d", len(m.entries))))
	row2 := fmt.Sprintf("  %-16s %s", "Total hours", highlightStyle.Render(formatHours(total)))
	row3 := fmt.Sprintf("  %-16s %s", "Avg per entry", highlightStyle.Render(formatHours(avg)))
	row4 := fmt.Sprintf("  %-16s %s", "Months tracked", highlightStyle.Render(fmt.Sprintf("%d", len(months))))

	return panelStyle.Width(w).Render(strings.Join([]string{title, row, row2, row3, row4}, "\n"))
}

func (m entriesModel) renderRecentPanel(w int) string {
	title := titleStyle.Render(fmt.Sprintf("Recent Entries (last %d)", recentLimit))

	if len(m.entries) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("No entries yet. Press 2 to add one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-12s %-7s %-7s %-8s %s", "Date", "Start", "End", "Break", "Hours")))

	for i, e := range m.entries {
		if i >= recentLimit {
			break
		}
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		row := style.Render(fmt.Sprintf("%s%-12s %-7s %-7s %-8s %.2f",
			cursor, e.Date, e.Start, e.End, fmt.Sprintf("%dm", e.BreakMinutes), e.Hours))
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  d: delete  e: export"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

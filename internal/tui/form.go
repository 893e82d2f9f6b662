package tui

import (
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/worklog/internal/timesheet"
)

type addModel struct {
	store  *timesheet.Store
	width  int
	height int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formDate  *string
	formStart *string
	formEnd   *string
	formBreak *string
}

func newAddModel(s *timesheet.Store) addModel {
	date, start, end, brk := "", "", "", ""
	return addModel{
		store:     s,
		formDate:  &date,
		formStart: &start,
		formEnd:   &end,
		formBreak: &brk,
	}
}

func (m *addModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m addModel) showForm() (addModel, tea.Cmd) {
	*m.formDate = timesheet.Today().String()
	*m.formStart = "09:00"
	*m.formEnd = "17:00"
	*m.formBreak = "30"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Date (YYYY-MM-DD)").Value(m.formDate),
			huh.NewInput().Title("Start (HH:MM)").Value(m.formStart),
			huh.NewInput().Title("End (HH:MM)").Value(m.formEnd),
			huh.NewInput().Title("Break (minutes)").Value(m.formBreak),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m addModel) update(msg tea.Msg) (addModel, tea.Cmd) {
	if !m.formActive || m.form == nil {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		return m, m.submit()
	}

	return m, cmd
}

func (m addModel) submit() tea.Cmd {
	dateStr, startStr, endStr, brkStr := *m.formDate, *m.formStart, *m.formEnd, *m.formBreak
	return func() tea.Msg {
		date, err := timesheet.ParseDate(dateStr)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		start, err := timesheet.ParseClock(startStr)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		end, err := timesheet.ParseClock(endStr)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		brk, err := strconv.Atoi(brkStr)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: invalid break %q", brkStr), isError: true}
		}

		entry, err := m.store.Add(date, start, end, brk)
		if err != nil && !errors.Is(err, timesheet.ErrPersistence) {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return entryAddedMsg{entry: entry}
	}
}

func (m addModel) view() string {
	w := m.width - 4
	title := titleStyle.Render("New Entry")

	if m.formActive && m.form != nil {
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
		return panelStyle.Width(w).Render(content)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		mutedStyle.Render("Press n or enter to log a work session."),
	)
	return panelStyle.Width(w).Render(content)
}

package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/worklog/internal/config"
	"github.com/sadopc/worklog/internal/timesheet"
)

const heatmapWeeks = 4

type reportsModel struct {
	store  *timesheet.Store
	cfg    config.Config
	width  int
	height int

	entries []timesheet.Entry
	offset  int // 7-day blocks back from today (0 = current)

	chart barchart.Model
}

func newReportsModel(s *timesheet.Store, cfg config.Config) reportsModel {
	return reportsModel{
		store: s,
		cfg:   cfg,
		chart: barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

func (r reportsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return entriesDataMsg{entries: r.store.List()}
	}
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesDataMsg:
		r.entries = msg.entries
		r.buildChart()
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			r.offset++
			r.buildChart()
			return r, nil
		case key.Matches(msg, keys.Right):
			if r.offset > 0 {
				r.offset--
			}
			r.buildChart()
			return r, nil
		}
	}
	return r, nil
}

// dateRange returns the 7-day window [from, to) currently shown.
func (r reportsModel) dateRange() (time.Time, time.Time) {
	today := timesheet.Today().Time()
	end := today.AddDate(0, 0, 1-7*r.offset)
	return end.AddDate(0, 0, -7), end
}

func (r *reportsModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if r.height > 34 {
		chartHeight = 14
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	totals := timesheet.DailyTotals(r.entries)
	from, to := r.dateRange()

	var bars []barchart.BarData
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		day := timesheet.NewDate(d.Year(), d.Month(), d.Day())
		hours := totals[day]

		style := lipgloss.NewStyle().Foreground(colorPrimary)
		if hours == 0 {
			style = lipgloss.NewStyle().Foreground(colorSubtle)
		}
		bars = append(bars, barchart.BarData{
			Label: d.Format("Mon 02"),
			Values: []barchart.BarValue{
				{Name: day.String(), Value: hours, Style: style},
			},
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportsModel) view() string {
	w := r.width - 4

	from, to := r.dateRange()
	dateLabel := mutedStyle.Render(fmt.Sprintf("%s — %s", from.Format("Jan 02"), to.Add(-24*time.Hour).Format("Jan 02, 2006")))
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, titleStyle.Render("Daily Hours"), "  ", dateLabel)

	heatmap := r.renderHeatmap()
	overtime := r.renderOvertime()
	nav := mutedStyle.Render("  ←/→: navigate weeks")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", r.chart.View(), "", heatmap, "", overtime, "", nav,
		),
	)
}

// renderHeatmap draws the last heatmapWeeks ISO weeks as a weekday grid. All
// seven weekday cells are always drawn for a week, zero or not.
func (r reportsModel) renderHeatmap() string {
	heat := timesheet.WeeklyHeatmap(r.entries)

	weeks := make([]timesheet.Week, 0, len(heat))
	for wk := range heat {
		weeks = append(weeks, wk)
	}
	sort.Slice(weeks, func(i, j int) bool {
		if weeks[i].Year != weeks[j].Year {
			return weeks[i].Year > weeks[j].Year
		}
		return weeks[i].Week > weeks[j].Week
	})
	if len(weeks) > heatmapWeeks {
		weeks = weeks[:heatmapWeeks]
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Weekly Heatmap"))
	rows = append(rows, mutedStyle.Render("             Mo   Tu   We   Th   Fr   Sa   Su"))

	if len(weeks) == 0 {
		rows = append(rows, mutedStyle.Render("  No data yet"))
		return strings.Join(rows, "\n")
	}

	for _, wk := range weeks {
		days := heat[wk]
		cells := make([]string, 0, 7)
		for _, hours := range days {
			cells = append(cells, heatCell(hours))
		}
		label := mutedStyle.Render(fmt.Sprintf("  %d-W%02d ", wk.Year, wk.Week))
		rows = append(rows, label+strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

// heatCell renders one weekday's hours as a colored block with the hour count.
func heatCell(hours float64) string {
	if hours == 0 {
		return mutedStyle.Render("  · ")
	}
	idx := int(hours / 2.5)
	if idx >= len(heatColors) {
		idx = len(heatColors) - 1
	}
	style := lipgloss.NewStyle().Foreground(heatColors[idx])
	return style.Render(fmt.Sprintf("%4.1f", hours))
}

func (r reportsModel) renderOvertime() string {
	var rows []string
	rows = append(rows, titleStyle.Render("Targets"))

	// Current ISO week against the weekly target.
	today := timesheet.Today()
	year, week := today.ISOWeek()
	var weekTotal float64
	for _, hours := range timesheet.WeeklyHeatmap(r.entries)[timesheet.Week{Year: year, Week: week}] {
		weekTotal += hours
	}
	rows = append(rows, overtimeLine(fmt.Sprintf("Week %d-W%02d", year, week), weekTotal, r.cfg.WeeklyTargetHours))

	// Current month against the monthly target.
	month := timesheet.MonthKey(today)
	monthTotal := timesheet.TotalHours(timesheet.ForMonth(r.entries, month))
	rows = append(rows, overtimeLine(month, monthTotal, r.cfg.MonthlyTargetHours))

	return strings.Join(rows, "\n")
}

func overtimeLine(label string, total, target float64) string {
	ot := timesheet.Overtime(total, target)
	state := successStyle.Render(fmt.Sprintf("%+.2f ahead", ot.Delta))
	if !ot.OverTarget {
		state = warningStyle.Render(fmt.Sprintf("%.2f behind", -ot.Delta))
	}
	return fmt.Sprintf("  %-14s %7.2f / %.2f hrs  %s", label, total, target, state)
}

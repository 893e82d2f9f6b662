package tui

import (
	"strings"
	"testing"

	"github.com/sadopc/worklog/internal/config"
	"github.com/sadopc/worklog/internal/timesheet"
)

func newTestStore(t *testing.T) *timesheet.Store {
	t.Helper()
	s, err := timesheet.NewStore(nil)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func mustAdd(t *testing.T, s *timesheet.Store, date string, start, end string, brk int) timesheet.Entry {
	t.Helper()
	d, err := timesheet.ParseDate(date)
	if err != nil {
		t.Fatalf("parse date %q: %v", date, err)
	}
	st, err := timesheet.ParseClock(start)
	if err != nil {
		t.Fatalf("parse clock %q: %v", start, err)
	}
	en, err := timesheet.ParseClock(end)
	if err != nil {
		t.Fatalf("parse clock %q: %v", end, err)
	}
	e, err := s.Add(d, st, en, brk)
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	return e
}

// ============================================================
// Entries model
// ============================================================

func TestEntriesRefreshDeliversData(t *testing.T) {
	s := newTestStore(t)
	mustAdd(t, s, "2024-01-10", "09:00", "17:00", 30)
	mustAdd(t, s, "2024-01-11", "08:00", "16:00", 60)

	m := newEntriesModel(s)
	msg := m.refresh()()
	data, ok := msg.(entriesDataMsg)
	if !ok {
		t.Fatalf("refresh returned %T, want entriesDataMsg", msg)
	}
	if len(data.entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(data.entries))
	}

	m, _ = m.update(data)
	if len(m.entries) != 2 {
		t.Fatal("entries not stored on model")
	}
}

func TestEntriesCursorClampedAfterData(t *testing.T) {
	s := newTestStore(t)
	mustAdd(t, s, "2024-01-10", "09:00", "17:00", 0)

	m := newEntriesModel(s)
	m.cursor = 5
	m, _ = m.update(entriesDataMsg{entries: s.List()})
	if m.cursor != 0 {
		t.Fatalf("cursor should clamp to 0, got %d", m.cursor)
	}
}

func TestEntriesDeleteUnderCursor(t *testing.T) {
	s := newTestStore(t)
	e := mustAdd(t, s, "2024-01-10", "09:00", "17:00", 0)

	m := newEntriesModel(s)
	m, _ = m.update(entriesDataMsg{entries: s.List()})

	_, cmd := m.deleteUnderCursor()
	if cmd == nil {
		t.Fatal("delete should return a command")
	}
	msg := cmd()
	status, ok := msg.(statusMsg)
	if !ok {
		t.Fatalf("delete returned %T, want statusMsg", msg)
	}
	if status.isError {
		t.Fatalf("delete failed: %s", status.text)
	}
	if s.Len() != 0 {
		t.Fatalf("entry %d should be gone from the store", e.ID)
	}
}

func TestEntriesDeleteEmptyIsNoop(t *testing.T) {
	s := newTestStore(t)
	m := newEntriesModel(s)

	_, cmd := m.deleteUnderCursor()
	if cmd != nil {
		t.Fatal("delete on empty model should be a no-op")
	}
}

func TestEntriesViewShowsSummary(t *testing.T) {
	s := newTestStore(t)
	mustAdd(t, s, "2024-01-10", "09:00", "17:00", 30)

	m := newEntriesModel(s)
	m.setSize(120, 40)
	m, _ = m.update(entriesDataMsg{entries: s.List()})

	out := m.view()
	if !strings.Contains(out, "Summary") {
		t.Fatal("view should contain summary panel")
	}
	if !strings.Contains(out, "7.50") {
		t.Fatal("view should show the entry's hours")
	}
}

// ============================================================
// Add form model
// ============================================================

func TestAddFormInactiveByDefault(t *testing.T) {
	s := newTestStore(t)
	m := newAddModel(s)
	if m.formActive {
		t.Fatal("form should be inactive until shown")
	}
	if !strings.Contains(m.view(), "log a work session") {
		t.Fatal("idle view should show the hint")
	}
}

func TestAddFormShowSeedsDefaults(t *testing.T) {
	s := newTestStore(t)
	m := newAddModel(s)
	m.setSize(120, 40)

	m, cmd := m.showForm()
	if !m.formActive {
		t.Fatal("form should be active after showForm")
	}
	if cmd == nil {
		t.Fatal("showForm should return the form init command")
	}
	if *m.formStart != "09:00" || *m.formEnd != "17:00" {
		t.Fatalf("expected seeded times, got %q and %q", *m.formStart, *m.formEnd)
	}
	if *m.formDate != timesheet.Today().String() {
		t.Fatalf("expected today's date, got %q", *m.formDate)
	}
}

func TestAddFormSubmitCreatesEntry(t *testing.T) {
	s := newTestStore(t)
	m := newAddModel(s)
	*m.formDate = "2024-01-10"
	*m.formStart = "09:00"
	*m.formEnd = "17:30"
	*m.formBreak = "45"

	msg := m.submit()()
	added, ok := msg.(entryAddedMsg)
	if !ok {
		t.Fatalf("submit returned %T, want entryAddedMsg", msg)
	}
	if added.entry.Hours != 7.75 {
		t.Fatalf("expected 7.75 hours, got %v", added.entry.Hours)
	}
	if s.Len() != 1 {
		t.Fatal("entry should be in the store")
	}
}

func TestAddFormSubmitRejectsBadInput(t *testing.T) {
	s := newTestStore(t)
	m := newAddModel(s)
	*m.formDate = "2024-01-10"
	*m.formStart = "17:00"
	*m.formEnd = "09:00"
	*m.formBreak = "0"

	msg := m.submit()()
	status, ok := msg.(statusMsg)
	if !ok {
		t.Fatalf("submit returned %T, want statusMsg", msg)
	}
	if !status.isError {
		t.Fatal("negative span should produce an error status")
	}
	if s.Len() != 0 {
		t.Fatal("store should stay empty")
	}
}

// ============================================================
// Months model
// ============================================================

func TestMonthsDataBuildsMonthList(t *testing.T) {
	s := newTestStore(t)
	mustAdd(t, s, "2024-01-10", "09:00", "17:00", 0)
	mustAdd(t, s, "2024-02-05", "09:00", "17:00", 0)
	mustAdd(t, s, "2024-02-20", "09:00", "17:00", 0)

	m := newMonthsModel(s)
	m, _ = m.update(entriesDataMsg{entries: s.List()})

	if len(m.months) != 2 {
		t.Fatalf("expected 2 months, got %d", len(m.months))
	}
	if m.months[0] != "2024-02" {
		t.Fatalf("months should be newest first, got %v", m.months)
	}
}

func TestMonthsSelectedMonth(t *testing.T) {
	s := newTestStore(t)
	mustAdd(t, s, "2024-01-10", "09:00", "17:00", 0)

	m := newMonthsModel(s)
	m, _ = m.update(entriesDataMsg{entries: s.List()})

	if got := m.selectedMonth(); got != "2024-01" {
		t.Fatalf("selectedMonth = %q, want 2024-01", got)
	}

	m.cursor = 9
	if got := m.selectedMonth(); got != "" {
		t.Fatalf("out-of-range cursor should yield empty month, got %q", got)
	}
}

func TestMonthsEmptyResetsMonthView(t *testing.T) {
	s := newTestStore(t)
	m := newMonthsModel(s)
	m.viewingMonth = true

	m, _ = m.update(entriesDataMsg{entries: nil})
	if m.viewingMonth {
		t.Fatal("month view should reset when there is no data")
	}
}

func TestMonthsViewListsTotals(t *testing.T) {
	s := newTestStore(t)
	mustAdd(t, s, "2024-01-10", "09:00", "17:00", 30)
	mustAdd(t, s, "2024-01-11", "09:00", "13:00", 0)

	m := newMonthsModel(s)
	m.setSize(120, 40)
	m, _ = m.update(entriesDataMsg{entries: s.List()})

	out := m.view()
	if !strings.Contains(out, "January 2024") {
		t.Fatal("list should show the formatted month")
	}
	if !strings.Contains(out, "11.50") {
		t.Fatal("list should show the month total")
	}
}

func TestFormatMonth(t *testing.T) {
	if got := formatMonth("2024-01"); got != "January 2024" {
		t.Fatalf("formatMonth = %q", got)
	}
	if got := formatMonth("garbage"); got != "garbage" {
		t.Fatalf("bad key should pass through, got %q", got)
	}
}

// ============================================================
// Reports model
// ============================================================

func TestReportsOffsetNavigation(t *testing.T) {
	s := newTestStore(t)
	r := newReportsModel(s, config.Default())
	r, _ = r.update(entriesDataMsg{entries: nil})

	if r.offset != 0 {
		t.Fatal("offset should start at 0")
	}

	from1, to1 := r.dateRange()
	r.offset = 2
	from2, to2 := r.dateRange()

	if !from2.Before(from1) || !to2.Before(to1) {
		t.Fatal("larger offset should move the window back in time")
	}
	if to1.Sub(from1) != to2.Sub(from2) {
		t.Fatal("window length should not change with offset")
	}
}

func TestReportsViewRenders(t *testing.T) {
	s := newTestStore(t)
	mustAdd(t, s, timesheet.Today().String(), "09:00", "17:00", 30)

	r := newReportsModel(s, config.Default())
	r.setSize(120, 40)
	r, _ = r.update(entriesDataMsg{entries: s.List()})

	out := r.view()
	if out == "" {
		t.Fatal("reports view rendered empty")
	}
	if !strings.Contains(out, "Mo") || !strings.Contains(out, "Su") {
		t.Fatal("heatmap weekday header missing")
	}
}

func TestHeatCell(t *testing.T) {
	if !strings.Contains(heatCell(0), "·") {
		t.Fatal("zero hours should render the dot placeholder")
	}
	if !strings.Contains(heatCell(7.5), "7.5") {
		t.Fatal("nonzero hours should render the value")
	}
}

func TestOvertimeLine(t *testing.T) {
	over := overtimeLine("Week", 45, 40)
	if !strings.Contains(over, "+5.00") || !strings.Contains(over, "ahead") {
		t.Fatalf("over-target line wrong: %q", over)
	}

	under := overtimeLine("Month", 150, 160)
	if !strings.Contains(under, "10.00") || !strings.Contains(under, "behind") {
		t.Fatalf("under-target line wrong: %q", under)
	}

	exact := overtimeLine("Week", 40, 40)
	if !strings.Contains(exact, "ahead") {
		t.Fatal("hitting the target exactly counts as ahead")
	}
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s, config.Default())

	if app.activeView != viewEntries {
		t.Fatal("default view should be entries")
	}
	if app.showHelp {
		t.Fatal("help should be hidden by default")
	}
	if app.exportPicking {
		t.Fatal("export picker should be hidden by default")
	}
}

func TestAppViewStates(t *testing.T) {
	s := newTestStore(t)
	mustAdd(t, s, "2024-01-10", "09:00", "17:00", 30)

	app := NewApp(s, config.Default())
	app.width = 120
	app.height = 40
	app.entries, _ = app.entries.update(entriesDataMsg{entries: s.List()})
	app.months, _ = app.months.update(entriesDataMsg{entries: s.List()})
	app.reports, _ = app.reports.update(entriesDataMsg{entries: s.List()})

	for v := viewEntries; v <= viewReports; v++ {
		app.activeView = v
		if app.View() == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppLoadingState(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s, config.Default())
	if app.View() != "Loading..." {
		t.Fatal("unsized app should show loading state")
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s, config.Default())
	app.width = 120
	app.height = 40

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppStatusInFooter(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s, config.Default())
	app.width = 120
	app.height = 40
	app.status = "saved"

	if !strings.Contains(app.renderFooter(), "saved") {
		t.Fatal("footer should show the status message")
	}
}

func TestAppStatusFromEntryAdded(t *testing.T) {
	s := newTestStore(t)
	e := mustAdd(t, s, "2024-01-10", "09:00", "17:00", 30)

	app := NewApp(s, config.Default())
	app.activeView = viewAdd
	updated, _ := app.Update(entryAddedMsg{entry: e})
	app = updated.(App)

	if app.activeView != viewEntries {
		t.Fatal("adding an entry should switch back to the entries view")
	}
	if !strings.Contains(app.status, "7.50") {
		t.Fatalf("status should mention the logged hours, got %q", app.status)
	}
}

func TestAppExportPicker(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s, config.Default())
	app.width = 120
	app.height = 40
	app.exportPicking = true

	out := app.View()
	if !strings.Contains(out, "Export Format") {
		t.Fatal("export picker should be rendered")
	}
	if !strings.Contains(out, "CSV") || !strings.Contains(out, "JSON") {
		t.Fatal("export picker should list both formats")
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles
// ============================================================

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name string
		fn   func() string
	}{
		{"activeTab", func() string { return activeTabStyle.Render("test") }},
		{"inactiveTab", func() string { return inactiveTabStyle.Render("test") }},
		{"panel", func() string { return panelStyle.Render("test") }},
		{"activePanel", func() string { return activePanelStyle.Render("test") }},
		{"title", func() string { return titleStyle.Render("test") }},
		{"success", func() string { return successStyle.Render("test") }},
		{"warning", func() string { return warningStyle.Render("test") }},
		{"error", func() string { return errorStyle.Render("test") }},
		{"muted", func() string { return mutedStyle.Render("test") }},
		{"highlight", func() string { return highlightStyle.Render("test") }},
		{"header", func() string { return headerStyle.Render("test") }},
		{"footer", func() string { return footerStyle.Render("test") }},
		{"selectedItem", func() string { return selectedItemStyle.Render("test") }},
		{"normalItem", func() string { return normalItemStyle.Render("test") }},
	}

	for _, s := range styles {
		if s.fn() == "" {
			t.Fatalf("style %q rendered empty", s.name)
		}
	}
}

func TestFormatHours(t *testing.T) {
	if got := formatHours(7.5); got != "7.50 hrs" {
		t.Fatalf("formatHours = %q", got)
	}
}

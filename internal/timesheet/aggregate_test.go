package timesheet

import (
	"math"
	"testing"
	"time"
)

func entry(id int64, date string, hours float64) Entry {
	d, err := ParseDate(date)
	if err != nil {
		panic(err)
	}
	return Entry{ID: id, Date: d, Start: NewClock(9, 0), End: NewClock(17, 0), Hours: hours}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTotalHours(t *testing.T) {
	entries := []Entry{
		entry(1, "2024-01-05", 7.5),
		entry(2, "2024-01-06", 4.25),
		entry(3, "2024-02-01", 8),
	}
	if got := TotalHours(entries); !almostEqual(got, 19.75) {
		t.Fatalf("TotalHours = %v, want 19.75", got)
	}
	if got := TotalHours(nil); got != 0 {
		t.Fatalf("TotalHours(nil) = %v, want 0", got)
	}
}

func TestMonthKey(t *testing.T) {
	if got := MonthKey(NewDate(2024, time.March, 7)); got != "2024-03" {
		t.Fatalf("MonthKey = %q, want 2024-03", got)
	}
}

func TestMonthsNewestFirst(t *testing.T) {
	entries := []Entry{
		entry(1, "2024-01-05", 8),
		entry(2, "2024-03-01", 8),
		entry(3, "2024-01-20", 8),
		entry(4, "2023-12-31", 8),
	}
	got := Months(entries)
	want := []string{"2024-03", "2024-01", "2023-12"}
	if len(got) != len(want) {
		t.Fatalf("Months = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Months = %v, want %v", got, want)
		}
	}
}

// Total across all months must equal the sum of per-month totals.
func TestMonthPartitionSumsToTotal(t *testing.T) {
	entries := []Entry{
		entry(1, "2024-01-05", 7.5),
		entry(2, "2024-01-06", 4.25),
		entry(3, "2024-02-01", 8),
		entry(4, "2024-02-14", 6.75),
	}

	var sum float64
	for _, m := range Months(entries) {
		sum += TotalHours(ForMonth(entries, m))
	}
	if !almostEqual(sum, TotalHours(entries)) {
		t.Fatalf("per-month sum %v != total %v", sum, TotalHours(entries))
	}
}

func TestForMonthSortedDescending(t *testing.T) {
	entries := []Entry{
		entry(1, "2024-01-05", 8),
		entry(2, "2024-02-01", 8),
		entry(3, "2024-01-20", 8),
	}
	got := ForMonth(entries, "2024-01")
	if len(got) != 2 {
		t.Fatalf("ForMonth returned %d entries, want 2", len(got))
	}
	if got[0].Date.String() != "2024-01-20" || got[1].Date.String() != "2024-01-05" {
		t.Fatalf("ForMonth order = [%s %s]", got[0].Date, got[1].Date)
	}
}

func TestDailyTotalsAdditive(t *testing.T) {
	entries := []Entry{
		entry(1, "2024-01-05", 3),
		entry(2, "2024-01-05", 4.5),
		entry(3, "2024-01-06", 8),
	}
	totals := DailyTotals(entries)
	if got := totals[NewDate(2024, time.January, 5)]; !almostEqual(got, 7.5) {
		t.Fatalf("daily total = %v, want 7.5", got)
	}
	if got := totals[NewDate(2024, time.January, 6)]; !almostEqual(got, 8) {
		t.Fatalf("daily total = %v, want 8", got)
	}
}

// A week touched only on Monday and Wednesday still exposes all seven
// weekdays, five of them zero.
func TestWeeklyHeatmapZeroFill(t *testing.T) {
	// 2024-01-01 is a Monday (ISO week 2024-W01).
	entries := []Entry{
		entry(1, "2024-01-01", 8),   // Monday
		entry(2, "2024-01-03", 6.5), // Wednesday
	}
	heat := WeeklyHeatmap(entries)

	days, ok := heat[Week{Year: 2024, Week: 1}]
	if !ok {
		t.Fatalf("week 2024-W01 missing: %v", heat)
	}
	if len(days) != 7 {
		t.Fatalf("weekday axis has %d slots", len(days))
	}
	if !almostEqual(days[0], 8) {
		t.Fatalf("Monday = %v, want 8", days[0])
	}
	if !almostEqual(days[2], 6.5) {
		t.Fatalf("Wednesday = %v, want 6.5", days[2])
	}
	for _, i := range []int{1, 3, 4, 5, 6} {
		if days[i] != 0 {
			t.Fatalf("weekday %d = %v, want zero-filled", i, days[i])
		}
	}
}

func TestWeeklyHeatmapSundayLandsLast(t *testing.T) {
	// 2024-01-07 is the Sunday closing ISO week 2024-W01.
	heat := WeeklyHeatmap([]Entry{entry(1, "2024-01-07", 4)})
	days := heat[Week{Year: 2024, Week: 1}]
	if !almostEqual(days[6], 4) {
		t.Fatalf("Sunday slot = %v, want 4", days[6])
	}
}

func TestAverageHours(t *testing.T) {
	entries := []Entry{
		entry(1, "2024-01-05", 6),
		entry(2, "2024-01-06", 9),
	}
	if got := AverageHours(entries); !almostEqual(got, 7.5) {
		t.Fatalf("AverageHours = %v, want 7.5", got)
	}
	if got := AverageHours(nil); got != 0 {
		t.Fatalf("AverageHours(nil) = %v, want 0", got)
	}
}

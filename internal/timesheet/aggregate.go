package timesheet

import "sort"

// Aggregation over entry snapshots. Everything here is a pure function of its
// input slice; nothing consults the backend or mutates the store.

// TotalHours sums the stored hours of the given entries.
func TotalHours(entries []Entry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Hours
	}
	return total
}

// MonthKey returns the YYYY-MM key grouping a day into its calendar month.
func MonthKey(d Date) string {
	return d.String()[:7]
}

// Months returns the distinct month keys covered by entries, newest first.
func Months(entries []Entry) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, e := range entries {
		k := MonthKey(e.Date)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

// ForMonth returns the entries belonging to the given month key,
// date-descending with ties newest id first.
func ForMonth(entries []Entry, monthKey string) []Entry {
	var out []Entry
	for _, e := range entries {
		if MonthKey(e.Date) == monthKey {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[j].Date.Before(out[i].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// DailyTotals sums hours per day; multiple entries on one day are additive.
func DailyTotals(entries []Entry) map[Date]float64 {
	totals := make(map[Date]float64)
	for _, e := range entries {
		totals[e.Date] += e.Hours
	}
	return totals
}

// Week identifies an ISO 8601 week.
type Week struct {
	Year int
	Week int
}

// WeeklyHeatmap buckets hours by ISO week and weekday. The weekday axis is
// Monday-first (index 0) and always carries all seven days for every week
// present, zero-filled — views rendering the grid rely on that.
func WeeklyHeatmap(entries []Entry) map[Week][7]float64 {
	heat := make(map[Week][7]float64)
	for _, e := range entries {
		year, week := e.Date.ISOWeek()
		k := Week{Year: year, Week: week}
		days := heat[k]
		days[mondayIndex(e.Date)] += e.Hours
		heat[k] = days
	}
	return heat
}

// mondayIndex maps time.Weekday (Sunday=0) onto a Monday-first 0..6 index.
func mondayIndex(d Date) int {
	return (int(d.Weekday()) + 6) % 7
}

// AverageHours returns total hours divided by entry count, or 0 for an empty
// snapshot.
func AverageHours(entries []Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	return TotalHours(entries) / float64(len(entries))
}

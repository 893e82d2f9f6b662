package timesheet

// OvertimeReport compares a period's aggregate hours against a target.
type OvertimeReport struct {
	Delta      float64
	OverTarget bool
}

// Overtime evaluates periodTotal against target. A delta of exactly zero
// counts as at-target, i.e. OverTarget is true.
func Overtime(periodTotal, target float64) OvertimeReport {
	delta := periodTotal - target
	return OvertimeReport{Delta: delta, OverTarget: delta >= 0}
}

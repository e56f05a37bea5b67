// Package forecast implements the cash-flow projection pipeline: recurrence
// expansion, balance projection, scenario comparison, and summaries. Every
// function is pure — identical inputs always produce identical outputs.
package forecast

import (
	"time"

	"flowcast/internal/model"
)

// Day truncates t to midnight UTC. All engine arithmetic happens on
// normalized days so equality checks never depend on wall-clock components.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Occurrences expands one transaction's recurrence rule into the ordered,
// strictly increasing dates falling within [windowStart, windowEnd], both
// inclusive. The transaction's own RecurrenceEnd further bounds the sequence.
// Termination follows from the window bound alone; a RecurrenceEnd before the
// anchor yields an empty sequence, not an error.
func Occurrences(tx model.Transaction, windowStart, windowEnd time.Time) []time.Time {
	anchor := Day(tx.Date)
	start := Day(windowStart)
	end := Day(windowEnd)

	if tx.RecurrenceEnd != nil {
		if re := Day(*tx.RecurrenceEnd); re.Before(end) {
			end = re
		}
	}
	if end.Before(anchor) || end.Before(start) {
		return nil
	}

	if tx.Recurrence == model.RecurNone || tx.Recurrence == "" {
		if !anchor.Before(start) && !anchor.After(end) {
			return []time.Time{anchor}
		}
		return nil
	}

	// Fixed-step cadences skip straight to the first occurrence at or after
	// the window start instead of walking from the anchor.
	if stepDays := fixedStepDays(tx.Recurrence); stepDays > 0 {
		return expandFixedStep(anchor, start, end, stepDays)
	}

	// Calendar cadences step by occurrence index from the anchor, so the
	// anchor's day-of-month is preserved across short months.
	var dates []time.Time
	for k := 0; ; k++ {
		var date time.Time
		switch tx.Recurrence {
		case model.RecurMonthly:
			date = addMonthsClamped(anchor, k)
		case model.RecurYearly:
			date = addYearsClamped(anchor, k)
		default:
			return nil
		}
		if date.After(end) {
			return dates
		}
		if !date.Before(start) {
			dates = append(dates, date)
		}
	}
}

func fixedStepDays(r model.Recurrence) int {
	switch r {
	case model.RecurDaily:
		return 1
	case model.RecurWeekly:
		return 7
	case model.RecurBiweekly:
		return 14
	}
	return 0
}

func expandFixedStep(anchor, start, end time.Time, stepDays int) []time.Time {
	first := anchor
	if anchor.Before(start) {
		gapDays := int(start.Sub(anchor).Hours() / 24)
		steps := gapDays / stepDays
		if gapDays%stepDays != 0 {
			steps++
		}
		first = anchor.AddDate(0, 0, steps*stepDays)
	}

	var dates []time.Time
	for date := first; !date.After(end); date = date.AddDate(0, 0, stepDays) {
		dates = append(dates, date)
	}
	return dates
}

// addMonthsClamped adds months to the anchor preserving its day-of-month,
// clamping to the target month's last day when shorter (Jan 31 → Feb 28/29).
// time.AddDate is unsuitable here: it normalizes overflow into the next month.
func addMonthsClamped(anchor time.Time, months int) time.Time {
	y, m, d := anchor.Date()
	target := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	if last := daysInMonth(target.Year(), target.Month()); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, 0, 0, 0, 0, time.UTC)
}

// addYearsClamped adds years preserving month and day; Feb 29 anchors clamp
// to Feb 28 in non-leap years.
func addYearsClamped(anchor time.Time, years int) time.Time {
	y, m, d := anchor.Date()
	if last := daysInMonth(y+years, m); d > last {
		d = last
	}
	return time.Date(y+years, m, d, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

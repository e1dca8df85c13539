package billing

import "time"

// Midnight truncates a timestamp to 00:00 of its calendar day, keeping
// the location. All rental date arithmetic runs on midnight-normalized
// dates so that partially stamped records (legacy data carries times)
// cannot shift a bill by a fraction of a day.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ChargeDays returns the number of billable days between two dates.
// Partial days round up; the same calendar day is zero days.
func ChargeDays(from, to time.Time) int {
	d := Midnight(to).Sub(Midnight(from))
	if d < 0 {
		d = -d
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

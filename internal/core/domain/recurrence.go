package domain

import "time"

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

type RecurrencePattern struct {
	Frequency  Frequency
	Interval   int // step count, >= 1
	DaysOfWeek []time.Weekday
	DayOfMonth *int
	EndDate    *time.Time // exclusive upper bound
}

// NextOccurrence computes the next scheduled date after from, or nil when
// the series has ended. The monthly step uses calendar-month addition, so
// stepping from Jan 31 normalizes into early March; when DayOfMonth is set
// the day component is then forced, which can likewise normalize into the
// following month when the target month is shorter. Both rollovers are
// accepted as-is.
func NextOccurrence(from time.Time, pattern RecurrencePattern) *time.Time {
	interval := pattern.Interval
	if interval < 1 {
		interval = 1
	}

	if pattern.EndDate != nil && !from.Before(*pattern.EndDate) {
		return nil
	}

	var next time.Time
	switch pattern.Frequency {
	case FrequencyDaily:
		next = from.AddDate(0, 0, interval)
	case FrequencyWeekly:
		next = from.AddDate(0, 0, 7*interval)
	case FrequencyMonthly:
		next = from.AddDate(0, interval, 0)
		if pattern.DayOfMonth != nil {
			next = time.Date(next.Year(), next.Month(), *pattern.DayOfMonth,
				next.Hour(), next.Minute(), next.Second(), next.Nanosecond(), next.Location())
		}
	case FrequencyYearly:
		next = from.AddDate(interval, 0, 0)
	default:
		return nil
	}

	if pattern.EndDate != nil && !next.Before(*pattern.EndDate) {
		return nil
	}

	return &next
}

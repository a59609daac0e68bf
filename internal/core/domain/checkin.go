package domain

import "time"

// DailyCheckIn is one completion marker for a (goal, calendar day) pair.
// Dates carry no time component; see NormalizeDay.
type DailyCheckIn struct {
	ID        string
	OwnerID   string
	GoalID    string
	Date      time.Time
	Completed bool
	Note      *string
	CreatedAt time.Time
}

// NormalizeDay truncates a timestamp to midnight UTC. Every check-in date
// stored or compared goes through this first.
func NormalizeDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return NormalizeDay(a).Equal(NormalizeDay(b))
}

package domain

import (
	"math"
	"sort"
	"time"
)

// PercentComplete is the completion ratio of a goal under automatic
// tracking: completed check-in count against the target day count, rounded
// and clamped to 100. Every completed record counts, including ones dated
// before the goal's tracking start date.
func PercentComplete(completedCount, targetDays int) int {
	if targetDays <= 0 {
		return 0
	}
	percent := int(math.Round(100 * float64(completedCount) / float64(targetDays)))
	if percent > 100 {
		return 100
	}
	return percent
}

// CurrentStreak counts consecutive completed days ending at today. The walk
// goes backward from today over the completed records in descending date
// order; any gap stops it. A today without a completed record yields 0.
func CurrentStreak(records []DailyCheckIn, today time.Time) int {
	completed := make([]time.Time, 0, len(records))
	for _, rec := range records {
		if rec.Completed {
			completed = append(completed, NormalizeDay(rec.Date))
		}
	}
	sort.Slice(completed, func(i, j int) bool {
		return completed[i].After(completed[j])
	})

	cursor := NormalizeDay(today)
	streak := 0
	for _, day := range completed {
		if day.After(cursor) {
			// Duplicate of a day already consumed by the walk.
			continue
		}
		if !day.Equal(cursor) {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// CompletedCount counts records with the completed flag set.
func CompletedCount(records []DailyCheckIn) int {
	count := 0
	for _, rec := range records {
		if rec.Completed {
			count++
		}
	}
	return count
}

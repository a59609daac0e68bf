package mapper

import (
	"time"

	"goaltracker/internal/adapter/http/dto"
	"goaltracker/internal/core/domain"
)

func ToCheckInItems(records []domain.DailyCheckIn) []dto.CheckInItem {
	items := make([]dto.CheckInItem, 0, len(records))
	for _, record := range records {
		items = append(items, ToCheckInItem(record))
	}
	return items
}

func ToCheckInItem(record domain.DailyCheckIn) dto.CheckInItem {
	item := dto.CheckInItem{
		ID:        record.ID,
		GoalID:    record.GoalID,
		Date:      record.Date.Format("2006-01-02"),
		Completed: record.Completed,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
	}
	if record.Note != nil {
		value := *record.Note
		item.Note = &value
	}
	return item
}

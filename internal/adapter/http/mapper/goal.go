package mapper

import (
	"time"

	"goaltracker/internal/adapter/http/dto"
	"goaltracker/internal/core/domain"
)

func ToGoalItems(goals []domain.Goal) []dto.GoalItem {
	items := make([]dto.GoalItem, 0, len(goals))
	for _, goal := range goals {
		items = append(items, ToGoalItem(goal))
	}
	return items
}

func ToGoalItem(goal domain.Goal) dto.GoalItem {
	item := dto.GoalItem{
		ID:           goal.ID,
		Title:        goal.Title,
		Tier:         string(goal.Tier),
		Status:       string(goal.Status),
		Priority:     goal.Priority,
		Progress:     goal.Progress,
		TrackingMode: string(goal.TrackingMode),
		Tags:         goal.Tags,
		CreatedAt:    goal.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    goal.UpdatedAt.Format(time.RFC3339),
	}

	if goal.Description != nil {
		value := *goal.Description
		item.Description = &value
	}

	if goal.ParentGoalID != nil {
		value := *goal.ParentGoalID
		item.ParentGoalID = &value
	}

	if goal.Category != nil {
		item.Category = &dto.Category{
			ID:   goal.Category.ID,
			Name: goal.Category.Name,
		}
	}

	item.StartDate = formatDate(goal.StartDate)
	item.TargetDate = formatDate(goal.TargetDate)
	item.CompletedDate = formatDate(goal.CompletedDate)
	item.TrackingStartDate = formatDate(goal.TrackingStartDate)

	if goal.TargetDays != nil {
		value := *goal.TargetDays
		item.TargetDays = &value
	}

	return item
}

func ToGoalProgressResponse(report domain.GoalProgressReport) dto.GoalProgressResponse {
	return dto.GoalProgressResponse{
		GoalID:            report.GoalID,
		EffectiveProgress: report.EffectiveProgress,
		StoredProgress:    report.StoredProgress,
		CurrentStreak:     report.CurrentStreak,
		PercentComplete:   report.PercentComplete,
		CompletedCheckIns: report.CompletedCheckIns,
	}
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format("2006-01-02")
	return &formatted
}

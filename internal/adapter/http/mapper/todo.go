package mapper

import (
	"time"

	"goaltracker/internal/adapter/http/dto"
	"goaltracker/internal/core/domain"
)

func ToTodoItems(todos []domain.Todo) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(todos))
	for _, todo := range todos {
		items = append(items, ToTodoItem(todo))
	}
	return items
}

func ToTodoItem(todo domain.Todo) dto.TodoItem {
	item := dto.TodoItem{
		ID:          todo.ID,
		Title:       todo.Title,
		Status:      string(todo.Status),
		Priority:    todo.Priority,
		IsRecurring: todo.IsRecurring,
		Source:      string(todo.Source),
		Tags:        todo.Tags,
		CreatedAt:   todo.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   todo.UpdatedAt.Format(time.RFC3339),
	}

	if todo.GoalID != nil {
		value := *todo.GoalID
		item.GoalID = &value
	}

	if todo.Description != nil {
		value := *todo.Description
		item.Description = &value
	}

	if todo.SourceID != nil {
		value := *todo.SourceID
		item.SourceID = &value
	}

	item.DueDate = formatDate(todo.DueDate)
	item.ScheduledDate = formatDate(todo.ScheduledDate)

	if todo.CompletedAt != nil {
		value := todo.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	if todo.Recurrence != nil {
		item.Recurrence = toRecurrence(*todo.Recurrence)
	}

	if todo.Category != nil {
		item.Category = &dto.Category{
			ID:   todo.Category.ID,
			Name: todo.Category.Name,
		}
	}

	return item
}

func toRecurrence(pattern domain.RecurrencePattern) *dto.Recurrence {
	recurrence := &dto.Recurrence{
		Frequency: string(pattern.Frequency),
		Interval:  pattern.Interval,
	}
	for _, weekday := range pattern.DaysOfWeek {
		recurrence.DaysOfWeek = append(recurrence.DaysOfWeek, int(weekday))
	}
	if pattern.DayOfMonth != nil {
		value := *pattern.DayOfMonth
		recurrence.DayOfMonth = &value
	}
	recurrence.EndDate = formatDate(pattern.EndDate)
	return recurrence
}

// ToRecurrencePattern converts a request recurrence into the domain form.
func ToRecurrencePattern(recurrence *dto.Recurrence) (*domain.RecurrencePattern, error) {
	if recurrence == nil {
		return nil, nil
	}
	pattern := &domain.RecurrencePattern{
		Frequency: domain.Frequency(recurrence.Frequency),
		Interval:  recurrence.Interval,
	}
	for _, weekday := range recurrence.DaysOfWeek {
		pattern.DaysOfWeek = append(pattern.DaysOfWeek, time.Weekday(weekday))
	}
	if recurrence.DayOfMonth != nil {
		value := *recurrence.DayOfMonth
		pattern.DayOfMonth = &value
	}
	if recurrence.EndDate != nil {
		end, err := time.Parse("2006-01-02", *recurrence.EndDate)
		if err != nil {
			return nil, err
		}
		pattern.EndDate = &end
	}
	return pattern, nil
}

package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"goaltracker/internal/adapter/http/dto"
	"goaltracker/internal/adapter/http/mapper"
	"goaltracker/internal/core/domain"
)

var ErrInvalidTodoPayload = errors.New("invalid todo payload")

func BuildCreateTodoInput(req dto.CreateTodoRequest) (domain.CreateTodoInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTodoInput{}, ErrInvalidTodoPayload
	}

	input := domain.CreateTodoInput{
		Title:       title,
		Description: req.Description,
		Status:      domain.TodoStatusPending,
		GoalID:      req.GoalID,
		Source:      domain.TodoSourceManual,
		CategoryID:  req.CategoryID,
		Tags:        req.Tags,
	}

	if req.Status != nil {
		input.Status = domain.TodoStatus(*req.Status)
	}
	if req.Priority != nil {
		input.Priority = *req.Priority
	}
	if req.IsRecurring != nil {
		input.IsRecurring = *req.IsRecurring
	}

	var err error
	if input.DueDate, err = parseDatePtr(req.DueDate); err != nil {
		return domain.CreateTodoInput{}, ErrInvalidTodoPayload
	}
	if input.ScheduledDate, err = parseDatePtr(req.ScheduledDate); err != nil {
		return domain.CreateTodoInput{}, ErrInvalidTodoPayload
	}

	if input.Recurrence, err = mapper.ToRecurrencePattern(req.Recurrence); err != nil {
		return domain.CreateTodoInput{}, ErrInvalidTodoPayload
	}
	if input.IsRecurring && input.Recurrence == nil {
		return domain.CreateTodoInput{}, ErrInvalidTodoPayload
	}

	return input, nil
}

func BuildUpdateTodoInput(req dto.UpdateTodoRequest, raw map[string]json.RawMessage) (domain.UpdateTodoInput, error) {
	if len(raw) == 0 {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}

	var input domain.UpdateTodoInput

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
		}
		input.Title = &title
	}

	input.DescriptionSet = hasJSONField(raw, "description")
	if input.DescriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}
	input.Description = req.Description

	if req.Status != nil {
		status := domain.TodoStatus(*req.Status)
		input.Status = &status
	}
	input.Priority = req.Priority
	input.IsRecurring = req.IsRecurring

	input.GoalIDSet = hasJSONField(raw, "goal_id")
	if input.GoalIDSet && !isJSONNull(raw["goal_id"]) && req.GoalID == nil {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}
	input.GoalID = req.GoalID

	input.CategoryIDSet = hasJSONField(raw, "category_id")
	if input.CategoryIDSet && !isJSONNull(raw["category_id"]) && req.CategoryID == nil {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}
	input.CategoryID = req.CategoryID

	var err error
	input.DueDateSet = hasJSONField(raw, "due_date")
	if input.DueDate, err = parseDatePtr(req.DueDate); err != nil {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}
	input.ScheduledDateSet = hasJSONField(raw, "scheduled_date")
	if input.ScheduledDate, err = parseDatePtr(req.ScheduledDate); err != nil {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}

	input.RecurrenceSet = hasJSONField(raw, "recurrence")
	if input.Recurrence, err = mapper.ToRecurrencePattern(req.Recurrence); err != nil {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}

	input.TagsSet = hasJSONField(raw, "tags")
	input.Tags = req.Tags

	return input, nil
}

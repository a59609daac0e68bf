package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"goaltracker/internal/adapter/http/dto"
	"goaltracker/internal/core/domain"
)

var ErrInvalidGoalPayload = errors.New("invalid goal payload")

func BuildCreateGoalInput(req dto.CreateGoalRequest) (domain.CreateGoalInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateGoalInput{}, ErrInvalidGoalPayload
	}

	input := domain.CreateGoalInput{
		Title:        title,
		Description:  req.Description,
		Tier:         domain.GoalTier(req.Tier),
		Status:       domain.GoalStatusNotStarted,
		TrackingMode: domain.TrackingManual,
		ParentGoalID: req.ParentGoalID,
		CategoryID:   req.CategoryID,
		TargetDays:   req.TargetDays,
		Tags:         req.Tags,
	}

	if req.Status != nil {
		input.Status = domain.GoalStatus(*req.Status)
	}
	if req.Priority != nil {
		input.Priority = *req.Priority
	}
	if req.Progress != nil {
		input.Progress = *req.Progress
	}
	if req.TrackingMode != nil {
		input.TrackingMode = domain.TrackingMode(*req.TrackingMode)
	}

	var err error
	if input.StartDate, err = parseDatePtr(req.StartDate); err != nil {
		return domain.CreateGoalInput{}, ErrInvalidGoalPayload
	}
	if input.TargetDate, err = parseDatePtr(req.TargetDate); err != nil {
		return domain.CreateGoalInput{}, ErrInvalidGoalPayload
	}
	if input.TrackingStartDate, err = parseDatePtr(req.TrackingStartDate); err != nil {
		return domain.CreateGoalInput{}, ErrInvalidGoalPayload
	}

	return input, nil
}

func BuildUpdateGoalInput(req dto.UpdateGoalRequest, raw map[string]json.RawMessage) (domain.UpdateGoalInput, error) {
	if len(raw) == 0 {
		return domain.UpdateGoalInput{}, ErrInvalidGoalPayload
	}

	var input domain.UpdateGoalInput

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.UpdateGoalInput{}, ErrInvalidGoalPayload
		}
		input.Title = &title
	}

	input.DescriptionSet = hasJSONField(raw, "description")
	if input.DescriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateGoalInput{}, ErrInvalidGoalPayload
	}
	input.Description = req.Description

	if req.Tier != nil {
		tier := domain.GoalTier(*req.Tier)
		input.Tier = &tier
	}
	if req.Status != nil {
		status := domain.GoalStatus(*req.Status)
		input.Status = &status
	}
	input.Priority = req.Priority
	input.Progress = req.Progress

	input.ParentGoalIDSet = hasJSONField(raw, "parent_goal_id")
	if input.ParentGoalIDSet && !isJSONNull(raw["parent_goal_id"]) && req.ParentGoalID == nil {
		return domain.UpdateGoalInput{}, ErrInvalidGoalPayload
	}
	input.ParentGoalID = req.ParentGoalID

	input.CategoryIDSet = hasJSONField(raw, "category_id")
	if input.CategoryIDSet && !isJSONNull(raw["category_id"]) && req.CategoryID == nil {
		return domain.UpdateGoalInput{}, ErrInvalidGoalPayload
	}
	input.CategoryID = req.CategoryID

	if req.TrackingMode != nil {
		mode := domain.TrackingMode(*req.TrackingMode)
		input.TrackingMode = &mode
	}

	input.TargetDaysSet = hasJSONField(raw, "target_days")
	input.TargetDays = req.TargetDays

	var err error
	input.StartDateSet = hasJSONField(raw, "start_date")
	if input.StartDate, err = parseDatePtr(req.StartDate); err != nil {
		return domain.UpdateGoalInput{}, ErrInvalidGoalPayload
	}
	input.TargetDateSet = hasJSONField(raw, "target_date")
	if input.TargetDate, err = parseDatePtr(req.TargetDate); err != nil {
		return domain.UpdateGoalInput{}, ErrInvalidGoalPayload
	}
	input.CompletedDateSet = hasJSONField(raw, "completed_date")
	if input.CompletedDate, err = parseDatePtr(req.CompletedDate); err != nil {
		return domain.UpdateGoalInput{}, ErrInvalidGoalPayload
	}
	input.TrackingStartSet = hasJSONField(raw, "tracking_start_date")
	if input.TrackingStartDate, err = parseDatePtr(req.TrackingStartDate); err != nil {
		return domain.UpdateGoalInput{}, ErrInvalidGoalPayload
	}

	input.TagsSet = hasJSONField(raw, "tags")
	input.Tags = req.Tags

	return input, nil
}

func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

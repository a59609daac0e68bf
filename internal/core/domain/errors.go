package domain

import "errors"

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrTodoNotFound      = errors.New("todo not found")
	ErrInboxItemNotFound = errors.New("inbox item not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCyclicHierarchy   = errors.New("goal hierarchy cycle")
	ErrInvalidParentTier = errors.New("parent goal tier not broader than child")
	ErrItemDismissed     = errors.New("inbox item already dismissed")
	ErrFutureCheckIn     = errors.New("check-in date is in the future")
)

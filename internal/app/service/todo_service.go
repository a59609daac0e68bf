package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goaltracker/internal/core/domain"
	"goaltracker/internal/core/ports"
)

type TodoService struct {
	todos    ports.TodoRepository
	progress ports.GoalService
	now      func() time.Time
}

func NewTodoService(todos ports.TodoRepository, progress ports.GoalService) *TodoService {
	return &TodoService{todos: todos, progress: progress, now: time.Now}
}

var _ ports.TodoService = (*TodoService)(nil)

func (s *TodoService) Create(ctx context.Context, ownerID string, input domain.CreateTodoInput) (domain.Todo, error) {
	now := s.now().UTC()
	todo := domain.Todo{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		GoalID:        input.GoalID,
		Title:         input.Title,
		Description:   input.Description,
		Status:        input.Status,
		Priority:      input.Priority,
		DueDate:       input.DueDate,
		ScheduledDate: input.ScheduledDate,
		IsRecurring:   input.IsRecurring,
		Recurrence:    input.Recurrence,
		Source:        input.Source,
		SourceID:      input.SourceID,
		Tags:          input.Tags,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if todo.Status == "" {
		todo.Status = domain.TodoStatusPending
	}
	if todo.Source == "" {
		todo.Source = domain.TodoSourceManual
	}
	if input.CategoryID != nil {
		todo.Category = &domain.Category{ID: *input.CategoryID}
	}

	if err := s.todos.Create(ctx, todo); err != nil {
		return domain.Todo{}, err
	}
	s.refreshLinkedGoal(ctx, ownerID, todo.GoalID)
	return todo, nil
}

func (s *TodoService) Get(ctx context.Context, ownerID, todoID string) (domain.Todo, error) {
	return s.todos.GetByID(ctx, ownerID, todoID)
}

func (s *TodoService) List(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	return s.todos.ListByOwner(ctx, ownerID)
}

func (s *TodoService) Update(ctx context.Context, ownerID, todoID string, input domain.UpdateTodoInput) (domain.Todo, error) {
	todo, err := s.todos.GetByID(ctx, ownerID, todoID)
	if err != nil {
		return domain.Todo{}, err
	}
	previousGoalID := todo.GoalID

	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.DescriptionSet {
		todo.Description = input.Description
	}
	if input.Status != nil {
		todo.Status = *input.Status
		if *input.Status == domain.TodoStatusCompleted && todo.CompletedAt == nil {
			completed := s.now().UTC()
			todo.CompletedAt = &completed
		}
		if *input.Status != domain.TodoStatusCompleted {
			todo.CompletedAt = nil
		}
	}
	if input.Priority != nil {
		todo.Priority = *input.Priority
	}
	if input.GoalIDSet {
		todo.GoalID = input.GoalID
	}
	if input.DueDateSet {
		todo.DueDate = input.DueDate
	}
	if input.ScheduledDateSet {
		todo.ScheduledDate = input.ScheduledDate
	}
	if input.IsRecurring != nil {
		todo.IsRecurring = *input.IsRecurring
	}
	if input.RecurrenceSet {
		todo.Recurrence = input.Recurrence
	}
	if input.CategoryIDSet {
		if input.CategoryID == nil {
			todo.Category = nil
		} else {
			todo.Category = &domain.Category{ID: *input.CategoryID}
		}
	}
	if input.TagsSet {
		todo.Tags = input.Tags
	}
	todo.UpdatedAt = s.now().UTC()

	if err := s.todos.Update(ctx, todo); err != nil {
		return domain.Todo{}, err
	}

	s.refreshLinkedGoal(ctx, ownerID, todo.GoalID)
	if previousGoalID != nil && (todo.GoalID == nil || *previousGoalID != *todo.GoalID) {
		s.refreshLinkedGoal(ctx, ownerID, previousGoalID)
	}
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, ownerID, todoID string) error {
	todo, err := s.todos.GetByID(ctx, ownerID, todoID)
	if err != nil {
		return err
	}
	if err := s.todos.Delete(ctx, ownerID, todoID); err != nil {
		return err
	}
	s.refreshLinkedGoal(ctx, ownerID, todo.GoalID)
	return nil
}

// Complete marks the todo done and, when a recurrence rule is attached and
// the series has not ended, creates the successor occurrence. The next
// scheduled date steps from the todo's scheduled date, falling back to the
// due date and finally the completion day.
func (s *TodoService) Complete(ctx context.Context, ownerID, todoID string) (domain.Todo, *domain.Todo, error) {
	todo, err := s.todos.GetByID(ctx, ownerID, todoID)
	if err != nil {
		return domain.Todo{}, nil, err
	}

	now := s.now().UTC()
	todo.Status = domain.TodoStatusCompleted
	todo.CompletedAt = &now
	todo.UpdatedAt = now
	if err := s.todos.Update(ctx, todo); err != nil {
		return domain.Todo{}, nil, err
	}

	var successor *domain.Todo
	if todo.IsRecurring && todo.Recurrence != nil {
		from := now
		if todo.ScheduledDate != nil {
			from = *todo.ScheduledDate
		} else if todo.DueDate != nil {
			from = *todo.DueDate
		}
		if next := domain.NextOccurrence(from, *todo.Recurrence); next != nil {
			successor = s.spawnOccurrence(todo, *next, now)
			if err := s.todos.Create(ctx, *successor); err != nil {
				return domain.Todo{}, nil, err
			}
		}
	}

	s.refreshLinkedGoal(ctx, ownerID, todo.GoalID)
	return todo, successor, nil
}

func (s *TodoService) spawnOccurrence(todo domain.Todo, next, now time.Time) *domain.Todo {
	occurrence := domain.Todo{
		ID:            uuid.NewString(),
		OwnerID:       todo.OwnerID,
		GoalID:        todo.GoalID,
		Title:         todo.Title,
		Description:   todo.Description,
		Status:        domain.TodoStatusPending,
		Priority:      todo.Priority,
		ScheduledDate: &next,
		IsRecurring:   true,
		Recurrence:    todo.Recurrence,
		Source:        todo.Source,
		SourceID:      todo.SourceID,
		Category:      todo.Category,
		Tags:          todo.Tags,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if todo.DueDate != nil && todo.ScheduledDate != nil {
		// Keep the due date the same distance ahead of the schedule.
		due := next.Add(todo.DueDate.Sub(*todo.ScheduledDate))
		occurrence.DueDate = &due
	}
	return &occurrence
}

func (s *TodoService) refreshLinkedGoal(ctx context.Context, ownerID string, goalID *string) {
	if goalID == nil {
		return
	}
	err := s.progress.RefreshProgress(ctx, ownerID, *goalID)
	if err != nil && !errors.Is(err, domain.ErrGoalNotFound) {
		zap.L().Warn("progress refresh for linked goal failed",
			zap.String("goal_id", *goalID), zap.Error(err))
	}
}

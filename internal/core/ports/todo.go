package ports

import (
	"context"

	"goaltracker/internal/core/domain"
)

type TodoRepository interface {
	Create(ctx context.Context, todo domain.Todo) error
	GetByID(ctx context.Context, ownerID, todoID string) (domain.Todo, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error)
	ListByGoal(ctx context.Context, ownerID, goalID string) ([]domain.Todo, error)
	Update(ctx context.Context, todo domain.Todo) error
	Delete(ctx context.Context, ownerID, todoID string) error
}

type TodoService interface {
	Create(ctx context.Context, ownerID string, input domain.CreateTodoInput) (domain.Todo, error)
	Get(ctx context.Context, ownerID, todoID string) (domain.Todo, error)
	List(ctx context.Context, ownerID string) ([]domain.Todo, error)
	Update(ctx context.Context, ownerID, todoID string, input domain.UpdateTodoInput) (domain.Todo, error)
	Delete(ctx context.Context, ownerID, todoID string) error
	// Complete marks the todo done and, for recurring todos whose series
	// has not ended, creates the next pending occurrence. The successor,
	// if any, is returned alongside the completed todo.
	Complete(ctx context.Context, ownerID, todoID string) (domain.Todo, *domain.Todo, error)
}

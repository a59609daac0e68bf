package ports

import (
	"context"

	"goaltracker/internal/core/domain"
)

type GoalRepository interface {
	Create(ctx context.Context, goal domain.Goal) error
	GetByID(ctx context.Context, ownerID, goalID string) (domain.Goal, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Goal, error)
	ListChildren(ctx context.Context, ownerID, parentGoalID string) ([]domain.Goal, error)
	Update(ctx context.Context, goal domain.Goal) error
	UpdateProgress(ctx context.Context, ownerID, goalID string, progress int) error
	Delete(ctx context.Context, ownerID, goalID string) error
}

type GoalService interface {
	Create(ctx context.Context, ownerID string, input domain.CreateGoalInput) (domain.Goal, error)
	Get(ctx context.Context, ownerID, goalID string) (domain.Goal, error)
	List(ctx context.Context, ownerID string) ([]domain.Goal, error)
	Update(ctx context.Context, ownerID, goalID string, input domain.UpdateGoalInput) (domain.Goal, error)
	// Delete removes the goal without cascading and reports how many
	// children were left orphaned.
	Delete(ctx context.Context, ownerID, goalID string) (int, error)
	Progress(ctx context.Context, ownerID, goalID string) (domain.GoalProgressReport, error)
	RefreshProgress(ctx context.Context, ownerID, goalID string) error
	RefreshAll(ctx context.Context, ownerID string) error
}

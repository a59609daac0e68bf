package ports

import (
	"context"
	"time"

	"goaltracker/internal/core/domain"
)

type CheckInRepository interface {
	Create(ctx context.Context, checkIn domain.DailyCheckIn) error
	ListByGoal(ctx context.Context, ownerID, goalID string) ([]domain.DailyCheckIn, error)
	// GetByGoalAndDate matches on the normalized day. A missing record is
	// reported through the bool, not as an error.
	GetByGoalAndDate(ctx context.Context, ownerID, goalID string, day time.Time) (domain.DailyCheckIn, bool, error)
	Delete(ctx context.Context, ownerID, checkInID string) error
}

type CheckInService interface {
	// Toggle flips the completion marker for (goal, day): a completed
	// record is deleted, anything else results in a new completed record.
	// Returns the resulting completed state for the day.
	Toggle(ctx context.Context, ownerID, goalID string, date time.Time) (bool, error)
	RecordsForGoal(ctx context.Context, ownerID, goalID string) ([]domain.DailyCheckIn, error)
	RecordForDate(ctx context.Context, ownerID, goalID string, date time.Time) (domain.DailyCheckIn, bool, error)
}

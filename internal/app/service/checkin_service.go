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

// CheckInService is the single write path into the check-in ledger.
// Rejecting future dates is the caller's job (done at the HTTP layer);
// the ledger itself only normalizes and toggles.
type CheckInService struct {
	checkIns ports.CheckInRepository
	goals    ports.GoalRepository
	progress ports.GoalService
	now      func() time.Time
}

func NewCheckInService(checkIns ports.CheckInRepository, goals ports.GoalRepository, progress ports.GoalService) *CheckInService {
	return &CheckInService{checkIns: checkIns, goals: goals, progress: progress, now: time.Now}
}

var _ ports.CheckInService = (*CheckInService)(nil)

func (s *CheckInService) Toggle(ctx context.Context, ownerID, goalID string, date time.Time) (bool, error) {
	goal, err := s.goals.GetByID(ctx, ownerID, goalID)
	if err != nil {
		return false, err
	}

	day := domain.NormalizeDay(date)
	existing, found, err := s.checkIns.GetByGoalAndDate(ctx, ownerID, goalID, day)
	if err != nil {
		return false, err
	}

	completed := false
	if found && existing.Completed {
		if err := s.checkIns.Delete(ctx, ownerID, existing.ID); err != nil {
			return false, err
		}
	} else {
		// No record, or a record left incomplete by external mutation:
		// either way the toggle lands on "completed for the day".
		record := domain.DailyCheckIn{
			ID:        uuid.NewString(),
			OwnerID:   ownerID,
			GoalID:    goalID,
			Date:      day,
			Completed: true,
			CreatedAt: s.now().UTC(),
		}
		if err := s.checkIns.Create(ctx, record); err != nil {
			return false, err
		}
		completed = true
	}

	if goal.TrackingMode == domain.TrackingAutomatic && goal.TargetDays != nil {
		if err := s.syncAutomaticProgress(ctx, goal); err != nil {
			zap.L().Warn("progress refresh after toggle failed",
				zap.String("goal_id", goalID), zap.Error(err))
		}
	}

	return completed, nil
}

// syncAutomaticProgress writes the check-in completion percentage into the
// goal's stored progress snapshot and lets the aggregator carry the change
// up the parent chain.
func (s *CheckInService) syncAutomaticProgress(ctx context.Context, goal domain.Goal) error {
	records, err := s.checkIns.ListByGoal(ctx, goal.OwnerID, goal.ID)
	if err != nil {
		return err
	}
	percent := domain.PercentComplete(domain.CompletedCount(records), *goal.TargetDays)
	if percent == goal.Progress {
		return nil
	}
	if err := s.goals.UpdateProgress(ctx, goal.OwnerID, goal.ID, percent); err != nil {
		return err
	}
	if goal.ParentGoalID == nil {
		return nil
	}
	err = s.progress.RefreshProgress(ctx, goal.OwnerID, *goal.ParentGoalID)
	if err != nil && !errors.Is(err, domain.ErrGoalNotFound) {
		return err
	}
	return nil
}

func (s *CheckInService) RecordsForGoal(ctx context.Context, ownerID, goalID string) ([]domain.DailyCheckIn, error) {
	return s.checkIns.ListByGoal(ctx, ownerID, goalID)
}

func (s *CheckInService) RecordForDate(ctx context.Context, ownerID, goalID string, date time.Time) (domain.DailyCheckIn, bool, error) {
	return s.checkIns.GetByGoalAndDate(ctx, ownerID, goalID, domain.NormalizeDay(date))
}

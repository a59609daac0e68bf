package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goaltracker/internal/core/domain"
	"goaltracker/internal/core/ports"
)

type GoalService struct {
	goals    ports.GoalRepository
	todos    ports.TodoRepository
	checkIns ports.CheckInRepository
	now      func() time.Time
}

func NewGoalService(goals ports.GoalRepository, todos ports.TodoRepository, checkIns ports.CheckInRepository) *GoalService {
	return &GoalService{goals: goals, todos: todos, checkIns: checkIns, now: time.Now}
}

var _ ports.GoalService = (*GoalService)(nil)

func (s *GoalService) Create(ctx context.Context, ownerID string, input domain.CreateGoalInput) (domain.Goal, error) {
	if input.ParentGoalID != nil {
		parent, err := s.goals.GetByID(ctx, ownerID, *input.ParentGoalID)
		if err != nil {
			return domain.Goal{}, err
		}
		if !domain.ValidParentTier(input.Tier, parent.Tier) {
			return domain.Goal{}, domain.ErrInvalidParentTier
		}
	}

	now := s.now().UTC()
	goal := domain.Goal{
		ID:                uuid.NewString(),
		OwnerID:           ownerID,
		Title:             input.Title,
		Description:       input.Description,
		Tier:              input.Tier,
		Status:            input.Status,
		Priority:          input.Priority,
		Progress:          input.Progress,
		ParentGoalID:      input.ParentGoalID,
		StartDate:         input.StartDate,
		TargetDate:        input.TargetDate,
		TrackingMode:      input.TrackingMode,
		TargetDays:        input.TargetDays,
		TrackingStartDate: input.TrackingStartDate,
		Tags:              input.Tags,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if goal.Status == "" {
		goal.Status = domain.GoalStatusNotStarted
	}
	if goal.TrackingMode == "" {
		goal.TrackingMode = domain.TrackingManual
	}
	if input.CategoryID != nil {
		goal.Category = &domain.Category{ID: *input.CategoryID}
	}

	if err := s.goals.Create(ctx, goal); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

func (s *GoalService) Get(ctx context.Context, ownerID, goalID string) (domain.Goal, error) {
	return s.goals.GetByID(ctx, ownerID, goalID)
}

func (s *GoalService) List(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	return s.goals.ListByOwner(ctx, ownerID)
}

func (s *GoalService) Update(ctx context.Context, ownerID, goalID string, input domain.UpdateGoalInput) (domain.Goal, error) {
	goal, err := s.goals.GetByID(ctx, ownerID, goalID)
	if err != nil {
		return domain.Goal{}, err
	}

	applyGoalUpdate(&goal, input)

	if goal.ParentGoalID != nil {
		parent, err := s.goals.GetByID(ctx, ownerID, *goal.ParentGoalID)
		if err != nil {
			if errors.Is(err, domain.ErrGoalNotFound) {
				// Dangling parent after a delete: tolerated, surfaced on read.
				parent = domain.Goal{}
			} else {
				return domain.Goal{}, err
			}
		}
		if parent.ID != "" && !domain.ValidParentTier(goal.Tier, parent.Tier) {
			return domain.Goal{}, domain.ErrInvalidParentTier
		}
	}

	if input.Status != nil && *input.Status == domain.GoalStatusCompleted && goal.CompletedDate == nil {
		completed := s.now().UTC()
		goal.CompletedDate = &completed
	}

	goal.UpdatedAt = s.now().UTC()
	if err := s.goals.Update(ctx, goal); err != nil {
		return domain.Goal{}, err
	}

	if err := s.RefreshProgress(ctx, ownerID, goalID); err != nil && !errors.Is(err, domain.ErrGoalNotFound) {
		zap.L().Warn("progress refresh after goal update failed",
			zap.String("goal_id", goalID), zap.Error(err))
	}

	return s.goals.GetByID(ctx, ownerID, goalID)
}

func applyGoalUpdate(goal *domain.Goal, input domain.UpdateGoalInput) {
	if input.Title != nil {
		goal.Title = *input.Title
	}
	if input.DescriptionSet {
		goal.Description = input.Description
	}
	if input.Tier != nil {
		goal.Tier = *input.Tier
	}
	if input.Status != nil {
		goal.Status = *input.Status
	}
	if input.Priority != nil {
		goal.Priority = *input.Priority
	}
	if input.Progress != nil {
		goal.Progress = *input.Progress
	}
	if input.ParentGoalIDSet {
		goal.ParentGoalID = input.ParentGoalID
	}
	if input.CategoryIDSet {
		if input.CategoryID == nil {
			goal.Category = nil
		} else {
			goal.Category = &domain.Category{ID: *input.CategoryID}
		}
	}
	if input.StartDateSet {
		goal.StartDate = input.StartDate
	}
	if input.TargetDateSet {
		goal.TargetDate = input.TargetDate
	}
	if input.CompletedDateSet {
		goal.CompletedDate = input.CompletedDate
	}
	if input.TrackingMode != nil {
		goal.TrackingMode = *input.TrackingMode
	}
	if input.TargetDaysSet {
		goal.TargetDays = input.TargetDays
	}
	if input.TrackingStartSet {
		goal.TrackingStartDate = input.TrackingStartDate
	}
	if input.TagsSet {
		goal.Tags = input.Tags
	}
}

func (s *GoalService) Delete(ctx context.Context, ownerID, goalID string) (int, error) {
	if _, err := s.goals.GetByID(ctx, ownerID, goalID); err != nil {
		return 0, err
	}
	children, err := s.goals.ListChildren(ctx, ownerID, goalID)
	if err != nil {
		return 0, err
	}
	if err := s.goals.Delete(ctx, ownerID, goalID); err != nil {
		return 0, err
	}
	// No cascade: children keep their dangling parent reference and the
	// count is surfaced so the caller can warn the user.
	return len(children), nil
}

func (s *GoalService) Progress(ctx context.Context, ownerID, goalID string) (domain.GoalProgressReport, error) {
	goal, err := s.goals.GetByID(ctx, ownerID, goalID)
	if err != nil {
		return domain.GoalProgressReport{}, err
	}

	graph, err := s.snapshot(ctx, ownerID)
	if err != nil {
		return domain.GoalProgressReport{}, err
	}
	effective, err := domain.EffectiveProgress(graph, goalID)
	if err != nil {
		return domain.GoalProgressReport{}, err
	}

	report := domain.GoalProgressReport{
		GoalID:            goalID,
		EffectiveProgress: effective,
		StoredProgress:    goal.Progress,
	}

	if goal.TrackingMode == domain.TrackingAutomatic {
		records, err := s.checkIns.ListByGoal(ctx, ownerID, goalID)
		if err != nil {
			return domain.GoalProgressReport{}, err
		}
		report.CompletedCheckIns = domain.CompletedCount(records)
		report.CurrentStreak = domain.CurrentStreak(records, s.now())
		if goal.TargetDays != nil {
			report.PercentComplete = domain.PercentComplete(report.CompletedCheckIns, *goal.TargetDays)
		}
	}

	return report, nil
}

// RefreshProgress recomputes the goal's effective progress, persists it when
// it differs from the stored snapshot, and walks the parent chain upward
// doing the same. The chain is resolved once up front so a cyclic hierarchy
// fails fast instead of recursing.
func (s *GoalService) RefreshProgress(ctx context.Context, ownerID, goalID string) error {
	graph, err := s.snapshot(ctx, ownerID)
	if err != nil {
		return err
	}

	chain, err := domain.ParentChain(graph, goalID)
	if err != nil {
		return err
	}

	for _, id := range append([]string{goalID}, chain...) {
		changed, err := s.refreshOne(ctx, graph, ownerID, id)
		if err != nil {
			return err
		}
		if !changed {
			// Parent values derive from child values: once a level is
			// unchanged the levels above it are too.
			break
		}
	}
	return nil
}

// RefreshAll recomputes every goal for the owner, most granular tier first,
// so parent aggregation sees fresh child values within the pass.
func (s *GoalService) RefreshAll(ctx context.Context, ownerID string) error {
	graph, err := s.snapshot(ctx, ownerID)
	if err != nil {
		return err
	}

	ordered := make([]*domain.Goal, 0, len(graph.Goals))
	for _, goal := range graph.Goals {
		ordered = append(ordered, goal)
	}
	sort.Slice(ordered, func(i, j int) bool {
		ri, rj := domain.TierRank(ordered[i].Tier), domain.TierRank(ordered[j].Tier)
		if ri != rj {
			return ri > rj
		}
		return ordered[i].ID < ordered[j].ID
	})

	for _, goal := range ordered {
		if _, err := s.refreshOne(ctx, graph, ownerID, goal.ID); err != nil {
			if errors.Is(err, domain.ErrCyclicHierarchy) {
				zap.L().Warn("skipping goal in cyclic hierarchy", zap.String("goal_id", goal.ID))
				continue
			}
			return err
		}
	}
	return nil
}

func (s *GoalService) refreshOne(ctx context.Context, graph *domain.GoalGraph, ownerID, goalID string) (bool, error) {
	effective, err := domain.EffectiveProgress(graph, goalID)
	if err != nil {
		return false, err
	}
	goal := graph.Goals[goalID]
	if goal.Progress == effective {
		return false, nil
	}
	if err := s.goals.UpdateProgress(ctx, ownerID, goalID, effective); err != nil {
		return false, err
	}
	goal.Progress = effective
	return true, nil
}

func (s *GoalService) snapshot(ctx context.Context, ownerID string) (*domain.GoalGraph, error) {
	goals, err := s.goals.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	todos, err := s.todos.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return domain.NewGoalGraph(goals, todos), nil
}

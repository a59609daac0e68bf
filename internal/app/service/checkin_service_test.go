package service_test

import (
	"context"
	"testing"
	"time"

	"goaltracker/internal/app/service"
	"goaltracker/internal/core/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const trackedGoalID = "b6d1f9fe-1c0a-4f37-9a7d-8f3d2e6c5a41"

func manualGoal() domain.Goal {
	return domain.Goal{
		ID:           trackedGoalID,
		OwnerID:      ownerID,
		Title:        "Meditate every day",
		Tier:         domain.GoalTierDaily,
		Status:       domain.GoalStatusInProgress,
		TrackingMode: domain.TrackingManual,
	}
}

func automaticGoal(targetDays int) domain.Goal {
	goal := manualGoal()
	goal.TrackingMode = domain.TrackingAutomatic
	goal.TargetDays = &targetDays
	return goal
}

func TestCheckInService_Toggle_CreatesCompletedRecord(t *testing.T) {
	date := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	goals := new(goalRepoMock)
	checkIns := new(checkInRepoMock)
	goals.On("GetByID", mock.Anything, ownerID, trackedGoalID).Return(manualGoal(), nil).Once()
	checkIns.On("GetByGoalAndDate", mock.Anything, ownerID, trackedGoalID, day).
		Return(domain.DailyCheckIn{}, false, nil).Once()
	checkIns.On("Create", mock.Anything, mock.MatchedBy(func(record domain.DailyCheckIn) bool {
		return record.GoalID == trackedGoalID && record.Date.Equal(day) && record.Completed
	})).Return(nil).Once()

	svc := service.NewCheckInService(checkIns, goals, new(goalServicePortMock))

	completed, err := svc.Toggle(context.Background(), ownerID, trackedGoalID, date)
	require.NoError(t, err)
	require.True(t, completed)
	checkIns.AssertExpectations(t)
}

func TestCheckInService_Toggle_DeletesCompletedRecord(t *testing.T) {
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	existing := domain.DailyCheckIn{
		ID:        "3f1a9c2e-7b4d-42f8-a6e1-0c5d8b9a7e63",
		OwnerID:   ownerID,
		GoalID:    trackedGoalID,
		Date:      day,
		Completed: true,
	}

	goals := new(goalRepoMock)
	checkIns := new(checkInRepoMock)
	goals.On("GetByID", mock.Anything, ownerID, trackedGoalID).Return(manualGoal(), nil).Once()
	checkIns.On("GetByGoalAndDate", mock.Anything, ownerID, trackedGoalID, day).
		Return(existing, true, nil).Once()
	checkIns.On("Delete", mock.Anything, ownerID, existing.ID).Return(nil).Once()

	svc := service.NewCheckInService(checkIns, goals, new(goalServicePortMock))

	completed, err := svc.Toggle(context.Background(), ownerID, trackedGoalID, day)
	require.NoError(t, err)
	require.False(t, completed)
	checkIns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckInService_Toggle_IncompleteRecordFlipsToCompleted(t *testing.T) {
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	existing := domain.DailyCheckIn{
		ID:        "3f1a9c2e-7b4d-42f8-a6e1-0c5d8b9a7e63",
		GoalID:    trackedGoalID,
		Date:      day,
		Completed: false,
	}

	goals := new(goalRepoMock)
	checkIns := new(checkInRepoMock)
	goals.On("GetByID", mock.Anything, ownerID, trackedGoalID).Return(manualGoal(), nil).Once()
	checkIns.On("GetByGoalAndDate", mock.Anything, ownerID, trackedGoalID, day).
		Return(existing, true, nil).Once()
	checkIns.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc := service.NewCheckInService(checkIns, goals, new(goalServicePortMock))

	completed, err := svc.Toggle(context.Background(), ownerID, trackedGoalID, day)
	require.NoError(t, err)
	require.True(t, completed)
	checkIns.AssertExpectations(t)
}

func TestCheckInService_Toggle_SyncsAutomaticProgressToParent(t *testing.T) {
	parentID := "6a2e8f00-4a1b-47e3-b0b6-9d9c1a2b3c4d"
	goal := automaticGoal(30)
	goal.ParentGoalID = &parentID
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	records := []domain.DailyCheckIn{
		{GoalID: trackedGoalID, Date: day, Completed: true},
		{GoalID: trackedGoalID, Date: day.AddDate(0, 0, -1), Completed: true},
		{GoalID: trackedGoalID, Date: day.AddDate(0, 0, -2), Completed: true},
	}

	goals := new(goalRepoMock)
	checkIns := new(checkInRepoMock)
	progress := new(goalServicePortMock)
	goals.On("GetByID", mock.Anything, ownerID, trackedGoalID).Return(goal, nil).Once()
	checkIns.On("GetByGoalAndDate", mock.Anything, ownerID, trackedGoalID, day).
		Return(domain.DailyCheckIn{}, false, nil).Once()
	checkIns.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	checkIns.On("ListByGoal", mock.Anything, ownerID, trackedGoalID).Return(records, nil).Once()
	// 3 of 30 days.
	goals.On("UpdateProgress", mock.Anything, ownerID, trackedGoalID, 10).Return(nil).Once()
	progress.On("RefreshProgress", mock.Anything, ownerID, parentID).Return(nil).Once()

	svc := service.NewCheckInService(checkIns, goals, progress)

	completed, err := svc.Toggle(context.Background(), ownerID, trackedGoalID, day)
	require.NoError(t, err)
	require.True(t, completed)
	goals.AssertExpectations(t)
	progress.AssertExpectations(t)
}

func TestCheckInService_Toggle_ManualGoalSkipsProgressSync(t *testing.T) {
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	goals := new(goalRepoMock)
	checkIns := new(checkInRepoMock)
	progress := new(goalServicePortMock)
	goals.On("GetByID", mock.Anything, ownerID, trackedGoalID).Return(manualGoal(), nil).Once()
	checkIns.On("GetByGoalAndDate", mock.Anything, ownerID, trackedGoalID, day).
		Return(domain.DailyCheckIn{}, false, nil).Once()
	checkIns.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc := service.NewCheckInService(checkIns, goals, progress)

	_, err := svc.Toggle(context.Background(), ownerID, trackedGoalID, day)
	require.NoError(t, err)
	goals.AssertNotCalled(t, "UpdateProgress", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	progress.AssertNotCalled(t, "RefreshProgress", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckInService_Toggle_UnknownGoal(t *testing.T) {
	goals := new(goalRepoMock)
	goals.On("GetByID", mock.Anything, ownerID, trackedGoalID).
		Return(domain.Goal{}, domain.ErrGoalNotFound).Once()

	svc := service.NewCheckInService(new(checkInRepoMock), goals, new(goalServicePortMock))

	_, err := svc.Toggle(context.Background(), ownerID, trackedGoalID, time.Now())
	require.ErrorIs(t, err, domain.ErrGoalNotFound)
}

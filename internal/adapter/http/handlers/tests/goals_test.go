package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"goaltracker/internal/adapter/http/dto"
	"goaltracker/internal/adapter/http/handlers"
	"goaltracker/internal/adapter/http/middleware"
	"goaltracker/internal/core/domain"
	"goaltracker/pkg/apierrors"
	"goaltracker/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type goalServiceMock struct {
	mock.Mock
}

func (m *goalServiceMock) Create(ctx context.Context, ownerID string, input domain.CreateGoalInput) (domain.Goal, error) {
	args := m.Called(ctx, ownerID, input)
	return args.Get(0).(domain.Goal), args.Error(1)
}

func (m *goalServiceMock) Get(ctx context.Context, ownerID, goalID string) (domain.Goal, error) {
	args := m.Called(ctx, ownerID, goalID)
	return args.Get(0).(domain.Goal), args.Error(1)
}

func (m *goalServiceMock) List(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	args := m.Called(ctx, ownerID)

	var goals []domain.Goal
	if value := args.Get(0); value != nil {
		goals = value.([]domain.Goal)
	}
	return goals, args.Error(1)
}

func (m *goalServiceMock) Update(ctx context.Context, ownerID, goalID string, input domain.UpdateGoalInput) (domain.Goal, error) {
	args := m.Called(ctx, ownerID, goalID, input)
	return args.Get(0).(domain.Goal), args.Error(1)
}

func (m *goalServiceMock) Delete(ctx context.Context, ownerID, goalID string) (int, error) {
	args := m.Called(ctx, ownerID, goalID)
	return args.Int(0), args.Error(1)
}

func (m *goalServiceMock) Progress(ctx context.Context, ownerID, goalID string) (domain.GoalProgressReport, error) {
	args := m.Called(ctx, ownerID, goalID)
	return args.Get(0).(domain.GoalProgressReport), args.Error(1)
}

func (m *goalServiceMock) RefreshProgress(ctx context.Context, ownerID, goalID string) error {
	args := m.Called(ctx, ownerID, goalID)
	return args.Error(0)
}

func (m *goalServiceMock) RefreshAll(ctx context.Context, ownerID string) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

type checkInServiceMock struct {
	mock.Mock
}

func (m *checkInServiceMock) Toggle(ctx context.Context, ownerID, goalID string, date time.Time) (bool, error) {
	args := m.Called(ctx, ownerID, goalID, date)
	return args.Bool(0), args.Error(1)
}

func (m *checkInServiceMock) RecordsForGoal(ctx context.Context, ownerID, goalID string) ([]domain.DailyCheckIn, error) {
	args := m.Called(ctx, ownerID, goalID)

	var records []domain.DailyCheckIn
	if value := args.Get(0); value != nil {
		records = value.([]domain.DailyCheckIn)
	}
	return records, args.Error(1)
}

func (m *checkInServiceMock) RecordForDate(ctx context.Context, ownerID, goalID string, date time.Time) (domain.DailyCheckIn, bool, error) {
	args := m.Called(ctx, ownerID, goalID, date)
	return args.Get(0).(domain.DailyCheckIn), args.Bool(1), args.Error(2)
}

func newGoalRouter(goals *goalServiceMock, checkIns *checkInServiceMock) *gin.Engine {
	handler := handlers.NewGoalHandler(goals, checkIns)

	router := gin.New()
	secured := router.Group("/api", middleware.LanguageMiddleware(), authAs(testOwnerID))
	secured.GET("/goals", handler.ListGoals)
	secured.POST("/goals", handler.CreateGoal)
	secured.GET("/goals/:id", handler.GetGoal)
	secured.PATCH("/goals/:id", handler.UpdateGoal)
	secured.DELETE("/goals/:id", handler.DeleteGoal)
	secured.GET("/goals/:id/progress", handler.GetGoalProgress)
	secured.POST("/goals/:id/checkins/toggle", handler.ToggleCheckIn)
	secured.GET("/goals/:id/checkins", handler.ListCheckIns)
	return router
}

const testGoalID = "b6d1f9fe-1c0a-4f37-9a7d-8f3d2e6c5a41"

func TestGoalHandler_ListGoals_Success(t *testing.T) {
	description := "run a marathon before the year ends"
	createdAt := time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC)
	updatedAt := time.Date(2026, 3, 4, 18, 30, 0, 0, time.UTC)

	goals := new(goalServiceMock)
	goals.On("List", mock.Anything, testOwnerID).Return(
		[]domain.Goal{
			{
				ID:           testGoalID,
				OwnerID:      testOwnerID,
				Title:        "Run a marathon",
				Description:  &description,
				Tier:         domain.GoalTierLongTerm,
				Status:       domain.GoalStatusInProgress,
				Priority:     2,
				Progress:     40,
				TrackingMode: domain.TrackingManual,
				Tags:         []string{"health"},
				CreatedAt:    createdAt,
				UpdatedAt:    updatedAt,
			},
		},
		nil,
	).Once()
	router := newGoalRouter(goals, new(checkInServiceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.GoalItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, testGoalID, got[0].ID)
	require.Equal(t, "Run a marathon", got[0].Title)
	require.Equal(t, "long_term", got[0].Tier)
	require.Equal(t, "in_progress", got[0].Status)
	require.Equal(t, 40, got[0].Progress)
	require.Equal(t, "manual", got[0].TrackingMode)
	require.Equal(t, []string{"health"}, got[0].Tags)
	require.Equal(t, "2026-03-02T09:15:00Z", got[0].CreatedAt)
	goals.AssertExpectations(t)
}

func TestGoalHandler_ListGoals_Error(t *testing.T) {
	goals := new(goalServiceMock)
	goals.On("List", mock.Anything, testOwnerID).Return(nil, errors.New("db is down")).Once()
	router := newGoalRouter(goals, new(checkInServiceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusInternalServerError, got.ErrDetails.Code)
	require.Equal(t, "Could not retrieve goals.", got.ErrDetails.Message)
	goals.AssertExpectations(t)
}

func TestGoalHandler_CreateGoal_Success(t *testing.T) {
	createdAt := time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC)

	goals := new(goalServiceMock)
	goals.On("Create", mock.Anything, testOwnerID, mock.MatchedBy(func(input domain.CreateGoalInput) bool {
		return input.Title == "Read 12 books" &&
			input.Tier == domain.GoalTierMidTerm &&
			input.TrackingMode == domain.TrackingManual
	})).Return(
		domain.Goal{
			ID:           testGoalID,
			OwnerID:      testOwnerID,
			Title:        "Read 12 books",
			Tier:         domain.GoalTierMidTerm,
			Status:       domain.GoalStatusNotStarted,
			TrackingMode: domain.TrackingManual,
			CreatedAt:    createdAt,
			UpdatedAt:    createdAt,
		},
		nil,
	).Once()
	router := newGoalRouter(goals, new(checkInServiceMock))

	body := `{"title":"Read 12 books","tier":"mid_term"}`
	req := httptest.NewRequest(http.MethodPost, "/api/goals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.GoalItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, testGoalID, got.ID)
	require.Equal(t, "not_started", got.Status)
	goals.AssertExpectations(t)
}

func TestGoalHandler_CreateGoal_InvalidTier(t *testing.T) {
	goals := new(goalServiceMock)
	router := newGoalRouter(goals, new(checkInServiceMock))

	body := `{"title":"Read 12 books","tier":"quarterly"}`
	req := httptest.NewRequest(http.MethodPost, "/api/goals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The goal payload failed validation.", got.ErrDetails.Message)
}

func TestGoalHandler_CreateGoal_InvalidParentTier(t *testing.T) {
	parentID := "6a2e8f00-4a1b-47e3-b0b6-9d9c1a2b3c4d"

	goals := new(goalServiceMock)
	goals.On("Create", mock.Anything, testOwnerID, mock.Anything).
		Return(domain.Goal{}, domain.ErrInvalidParentTier).Once()
	router := newGoalRouter(goals, new(checkInServiceMock))

	body := `{"title":"Morning run","tier":"long_term","parent_goal_id":"` + parentID + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/goals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The parent goal tier cannot contain this goal.", got.ErrDetails.Message)
	goals.AssertExpectations(t)
}

func TestGoalHandler_GetGoal_NotFound(t *testing.T) {
	goals := new(goalServiceMock)
	goals.On("Get", mock.Anything, testOwnerID, testGoalID).
		Return(domain.Goal{}, domain.ErrGoalNotFound).Once()
	router := newGoalRouter(goals, new(checkInServiceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/goals/"+testGoalID, nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Goal not found.", got.ErrDetails.Message)
	goals.AssertExpectations(t)
}

func TestGoalHandler_GetGoal_InvalidID(t *testing.T) {
	goals := new(goalServiceMock)
	router := newGoalRouter(goals, new(checkInServiceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/goals/not-a-uuid", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The goal id is not a valid identifier.", got.ErrDetails.Message)
}

func TestGoalHandler_DeleteGoal_ReportsOrphans(t *testing.T) {
	goals := new(goalServiceMock)
	goals.On("Delete", mock.Anything, testOwnerID, testGoalID).Return(3, nil).Once()
	router := newGoalRouter(goals, new(checkInServiceMock))

	req := httptest.NewRequest(http.MethodDelete, "/api/goals/"+testGoalID, nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.GoalDeleteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Deleted)
	require.Equal(t, 3, got.OrphanedGoals)
	goals.AssertExpectations(t)
}

func TestGoalHandler_GetGoalProgress_Success(t *testing.T) {
	goals := new(goalServiceMock)
	goals.On("Progress", mock.Anything, testOwnerID, testGoalID).Return(
		domain.GoalProgressReport{
			GoalID:            testGoalID,
			EffectiveProgress: 67,
			StoredProgress:    50,
			CurrentStreak:     5,
			PercentComplete:   67,
			CompletedCheckIns: 20,
		},
		nil,
	).Once()
	router := newGoalRouter(goals, new(checkInServiceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/goals/"+testGoalID+"/progress", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.GoalProgressResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 67, got.EffectiveProgress)
	require.Equal(t, 5, got.CurrentStreak)
	require.Equal(t, 20, got.CompletedCheckIns)
	goals.AssertExpectations(t)
}

func TestGoalHandler_GetGoalProgress_CyclicHierarchy(t *testing.T) {
	goals := new(goalServiceMock)
	goals.On("Progress", mock.Anything, testOwnerID, testGoalID).
		Return(domain.GoalProgressReport{}, domain.ErrCyclicHierarchy).Once()
	router := newGoalRouter(goals, new(checkInServiceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/goals/"+testGoalID+"/progress", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "This parent assignment would create a cycle in the goal hierarchy.", got.ErrDetails.Message)
	goals.AssertExpectations(t)
}

func TestGoalHandler_ToggleCheckIn_Success(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	checkIns := new(checkInServiceMock)
	checkIns.On("Toggle", mock.Anything, testOwnerID, testGoalID, date).Return(true, nil).Once()
	router := newGoalRouter(new(goalServiceMock), checkIns)

	body := `{"date":"2026-03-04"}`
	req := httptest.NewRequest(http.MethodPost, "/api/goals/"+testGoalID+"/checkins/toggle", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.ToggleCheckInResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, testGoalID, got.GoalID)
	require.Equal(t, "2026-03-04", got.Date)
	require.True(t, got.Completed)
	checkIns.AssertExpectations(t)
}

func TestGoalHandler_ToggleCheckIn_FutureDate(t *testing.T) {
	checkIns := new(checkInServiceMock)
	router := newGoalRouter(new(goalServiceMock), checkIns)

	body := `{"date":"2999-01-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/goals/"+testGoalID+"/checkins/toggle", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Check-ins cannot be recorded for a future date.", got.ErrDetails.Message)
	checkIns.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGoalHandler_ToggleCheckIn_InvalidDate(t *testing.T) {
	router := newGoalRouter(new(goalServiceMock), new(checkInServiceMock))

	body := `{"date":"04/03/2026"}`
	req := httptest.NewRequest(http.MethodPost, "/api/goals/"+testGoalID+"/checkins/toggle", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The check-in date is not a valid date.", got.ErrDetails.Message)
}

func TestGoalHandler_ListCheckIns_Success(t *testing.T) {
	createdAt := time.Date(2026, 3, 4, 7, 0, 0, 0, time.UTC)

	checkIns := new(checkInServiceMock)
	checkIns.On("RecordsForGoal", mock.Anything, testOwnerID, testGoalID).Return(
		[]domain.DailyCheckIn{
			{
				ID:        "3f1a9c2e-7b4d-42f8-a6e1-0c5d8b9a7e63",
				OwnerID:   testOwnerID,
				GoalID:    testGoalID,
				Date:      time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
				Completed: true,
				CreatedAt: createdAt,
			},
		},
		nil,
	).Once()
	router := newGoalRouter(new(goalServiceMock), checkIns)

	req := httptest.NewRequest(http.MethodGet, "/api/goals/"+testGoalID+"/checkins", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.CheckInItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "2026-03-04", got[0].Date)
	require.True(t, got[0].Completed)
	checkIns.AssertExpectations(t)
}

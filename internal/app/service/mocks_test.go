package service_test

import (
	"context"
	"time"

	"goaltracker/internal/core/domain"
	"goaltracker/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type goalRepoMock struct {
	mock.Mock
}

func (m *goalRepoMock) Create(ctx context.Context, goal domain.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

func (m *goalRepoMock) GetByID(ctx context.Context, ownerID, goalID string) (domain.Goal, error) {
	args := m.Called(ctx, ownerID, goalID)
	return args.Get(0).(domain.Goal), args.Error(1)
}

func (m *goalRepoMock) ListByOwner(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	args := m.Called(ctx, ownerID)

	var goals []domain.Goal
	if value := args.Get(0); value != nil {
		goals = value.([]domain.Goal)
	}
	return goals, args.Error(1)
}

func (m *goalRepoMock) ListChildren(ctx context.Context, ownerID, parentGoalID string) ([]domain.Goal, error) {
	args := m.Called(ctx, ownerID, parentGoalID)

	var goals []domain.Goal
	if value := args.Get(0); value != nil {
		goals = value.([]domain.Goal)
	}
	return goals, args.Error(1)
}

func (m *goalRepoMock) Update(ctx context.Context, goal domain.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

func (m *goalRepoMock) UpdateProgress(ctx context.Context, ownerID, goalID string, progress int) error {
	return m.Called(ctx, ownerID, goalID, progress).Error(0)
}

func (m *goalRepoMock) Delete(ctx context.Context, ownerID, goalID string) error {
	return m.Called(ctx, ownerID, goalID).Error(0)
}

type todoRepoMock struct {
	mock.Mock
}

func (m *todoRepoMock) Create(ctx context.Context, todo domain.Todo) error {
	return m.Called(ctx, todo).Error(0)
}

func (m *todoRepoMock) GetByID(ctx context.Context, ownerID, todoID string) (domain.Todo, error) {
	args := m.Called(ctx, ownerID, todoID)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoRepoMock) ListByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	args := m.Called(ctx, ownerID)

	var todos []domain.Todo
	if value := args.Get(0); value != nil {
		todos = value.([]domain.Todo)
	}
	return todos, args.Error(1)
}

func (m *todoRepoMock) ListByGoal(ctx context.Context, ownerID, goalID string) ([]domain.Todo, error) {
	args := m.Called(ctx, ownerID, goalID)

	var todos []domain.Todo
	if value := args.Get(0); value != nil {
		todos = value.([]domain.Todo)
	}
	return todos, args.Error(1)
}

func (m *todoRepoMock) Update(ctx context.Context, todo domain.Todo) error {
	return m.Called(ctx, todo).Error(0)
}

func (m *todoRepoMock) Delete(ctx context.Context, ownerID, todoID string) error {
	return m.Called(ctx, ownerID, todoID).Error(0)
}

type checkInRepoMock struct {
	mock.Mock
}

func (m *checkInRepoMock) Create(ctx context.Context, checkIn domain.DailyCheckIn) error {
	return m.Called(ctx, checkIn).Error(0)
}

func (m *checkInRepoMock) ListByGoal(ctx context.Context, ownerID, goalID string) ([]domain.DailyCheckIn, error) {
	args := m.Called(ctx, ownerID, goalID)

	var records []domain.DailyCheckIn
	if value := args.Get(0); value != nil {
		records = value.([]domain.DailyCheckIn)
	}
	return records, args.Error(1)
}

func (m *checkInRepoMock) GetByGoalAndDate(ctx context.Context, ownerID, goalID string, day time.Time) (domain.DailyCheckIn, bool, error) {
	args := m.Called(ctx, ownerID, goalID, day)
	return args.Get(0).(domain.DailyCheckIn), args.Bool(1), args.Error(2)
}

func (m *checkInRepoMock) Delete(ctx context.Context, ownerID, checkInID string) error {
	return m.Called(ctx, ownerID, checkInID).Error(0)
}

type inboxRepoMock struct {
	mock.Mock
}

func (m *inboxRepoMock) Create(ctx context.Context, item domain.InboxItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *inboxRepoMock) GetByID(ctx context.Context, ownerID, itemID string) (domain.InboxItem, error) {
	args := m.Called(ctx, ownerID, itemID)
	return args.Get(0).(domain.InboxItem), args.Error(1)
}

func (m *inboxRepoMock) ListByOwner(ctx context.Context, ownerID string, status *domain.InboxStatus) ([]domain.InboxItem, error) {
	args := m.Called(ctx, ownerID, status)

	var items []domain.InboxItem
	if value := args.Get(0); value != nil {
		items = value.([]domain.InboxItem)
	}
	return items, args.Error(1)
}

func (m *inboxRepoMock) FindBySourceID(ctx context.Context, ownerID string, source domain.InboxSource, sourceID string) (domain.InboxItem, bool, error) {
	args := m.Called(ctx, ownerID, source, sourceID)
	return args.Get(0).(domain.InboxItem), args.Bool(1), args.Error(2)
}

func (m *inboxRepoMock) UpdateStatus(ctx context.Context, item domain.InboxItem) error {
	return m.Called(ctx, item).Error(0)
}

type slackLinkRepoMock struct {
	mock.Mock
}

func (m *slackLinkRepoMock) Upsert(ctx context.Context, link domain.SlackLink) error {
	return m.Called(ctx, link).Error(0)
}

func (m *slackLinkRepoMock) FindBySlackUserID(ctx context.Context, slackUserID string) (domain.SlackLink, bool, error) {
	args := m.Called(ctx, slackUserID)
	return args.Get(0).(domain.SlackLink), args.Bool(1), args.Error(2)
}

func (m *slackLinkRepoMock) FindByOwner(ctx context.Context, ownerID string) (domain.SlackLink, bool, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.SlackLink), args.Bool(1), args.Error(2)
}

type inboxServicePortMock struct {
	mock.Mock
}

func (m *inboxServicePortMock) List(ctx context.Context, ownerID string, status *domain.InboxStatus) ([]domain.InboxItem, error) {
	args := m.Called(ctx, ownerID, status)

	var items []domain.InboxItem
	if value := args.Get(0); value != nil {
		items = value.([]domain.InboxItem)
	}
	return items, args.Error(1)
}

func (m *inboxServicePortMock) Ingest(ctx context.Context, arrival domain.InboxArrival) (bool, error) {
	args := m.Called(ctx, arrival)
	return args.Bool(0), args.Error(1)
}

func (m *inboxServicePortMock) Dismiss(ctx context.Context, ownerID, itemID string) error {
	return m.Called(ctx, ownerID, itemID).Error(0)
}

func (m *inboxServicePortMock) Convert(ctx context.Context, ownerID, itemID string, fields domain.ConvertFields) (string, error) {
	args := m.Called(ctx, ownerID, itemID, fields)
	return args.String(0), args.Error(1)
}

type goalServicePortMock struct {
	mock.Mock
}

func (m *goalServicePortMock) Create(ctx context.Context, ownerID string, input domain.CreateGoalInput) (domain.Goal, error) {
	args := m.Called(ctx, ownerID, input)
	return args.Get(0).(domain.Goal), args.Error(1)
}

func (m *goalServicePortMock) Get(ctx context.Context, ownerID, goalID string) (domain.Goal, error) {
	args := m.Called(ctx, ownerID, goalID)
	return args.Get(0).(domain.Goal), args.Error(1)
}

func (m *goalServicePortMock) List(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	args := m.Called(ctx, ownerID)

	var goals []domain.Goal
	if value := args.Get(0); value != nil {
		goals = value.([]domain.Goal)
	}
	return goals, args.Error(1)
}

func (m *goalServicePortMock) Update(ctx context.Context, ownerID, goalID string, input domain.UpdateGoalInput) (domain.Goal, error) {
	args := m.Called(ctx, ownerID, goalID, input)
	return args.Get(0).(domain.Goal), args.Error(1)
}

func (m *goalServicePortMock) Delete(ctx context.Context, ownerID, goalID string) (int, error) {
	args := m.Called(ctx, ownerID, goalID)
	return args.Int(0), args.Error(1)
}

func (m *goalServicePortMock) Progress(ctx context.Context, ownerID, goalID string) (domain.GoalProgressReport, error) {
	args := m.Called(ctx, ownerID, goalID)
	return args.Get(0).(domain.GoalProgressReport), args.Error(1)
}

func (m *goalServicePortMock) RefreshProgress(ctx context.Context, ownerID, goalID string) error {
	return m.Called(ctx, ownerID, goalID).Error(0)
}

func (m *goalServicePortMock) RefreshAll(ctx context.Context, ownerID string) error {
	return m.Called(ctx, ownerID).Error(0)
}

type tokenExchangerMock struct {
	mock.Mock
}

func (m *tokenExchangerMock) Exchange(ctx context.Context, code string) (ports.SlackTokenResult, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(ports.SlackTokenResult), args.Error(1)
}

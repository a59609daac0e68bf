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

// conversionNamespace seeds the deterministic todo id minted for an inbox
// conversion, so a retried convert after a half-failure recreates the same
// id instead of a duplicate.
var conversionNamespace = uuid.MustParse("7f1cc33e-9a2d-4c47-8a6e-2b0d5d1a9c31")

type InboxService struct {
	inbox ports.InboxRepository
	todos ports.TodoRepository
	now   func() time.Time
}

func NewInboxService(inbox ports.InboxRepository, todos ports.TodoRepository) *InboxService {
	return &InboxService{inbox: inbox, todos: todos, now: time.Now}
}

var _ ports.InboxService = (*InboxService)(nil)

func (s *InboxService) List(ctx context.Context, ownerID string, status *domain.InboxStatus) ([]domain.InboxItem, error) {
	return s.inbox.ListByOwner(ctx, ownerID, status)
}

// Ingest drops arrivals whose source id already exists for the owner. The
// check is read-then-write with no transactional guard: two near
// simultaneous deliveries of one event can both pass, an accepted race.
func (s *InboxService) Ingest(ctx context.Context, arrival domain.InboxArrival) (bool, error) {
	_, exists, err := s.inbox.FindBySourceID(ctx, arrival.OwnerID, arrival.Source, arrival.SourceID)
	if err != nil {
		return false, err
	}
	if exists {
		zap.L().Debug("duplicate inbox arrival discarded",
			zap.String("source", string(arrival.Source)),
			zap.String("source_id", arrival.SourceID))
		return false, nil
	}

	item := domain.InboxItem{
		ID:          uuid.NewString(),
		OwnerID:     arrival.OwnerID,
		Source:      arrival.Source,
		Status:      domain.InboxStatusPending,
		Title:       arrival.Title,
		Description: arrival.Description,
		RawPayload:  arrival.RawPayload,
		SourceID:    arrival.SourceID,
		SourceURL:   arrival.SourceURL,
		Sender:      arrival.Sender,
		Channel:     arrival.Channel,
		SourceTime:  arrival.SourceTime,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.inbox.Create(ctx, item); err != nil {
		return false, err
	}
	return true, nil
}

// Dismiss is terminal. Re-dismissing is a harmless no-op.
func (s *InboxService) Dismiss(ctx context.Context, ownerID, itemID string) error {
	item, err := s.inbox.GetByID(ctx, ownerID, itemID)
	if err != nil {
		return err
	}
	if item.Status == domain.InboxStatusDismissed {
		return nil
	}
	item.Status = domain.InboxStatusDismissed
	return s.inbox.UpdateStatus(ctx, item)
}

// Convert creates the todo first and marks the item converted second. The
// two steps are not transactional; the todo id is derived from the item id
// so a retry after a failure between them lands on the same todo.
func (s *InboxService) Convert(ctx context.Context, ownerID, itemID string, fields domain.ConvertFields) (string, error) {
	item, err := s.inbox.GetByID(ctx, ownerID, itemID)
	if err != nil {
		return "", err
	}
	if item.Status == domain.InboxStatusConverted && item.ConvertedToID != nil {
		return *item.ConvertedToID, nil
	}
	if item.Status == domain.InboxStatusDismissed {
		return "", domain.ErrItemDismissed
	}

	now := s.now().UTC()
	todo := domain.Todo{
		ID:            uuid.NewSHA1(conversionNamespace, []byte(item.ID)).String(),
		OwnerID:       ownerID,
		GoalID:        fields.GoalID,
		Title:         item.Title,
		Description:   item.Description,
		Status:        domain.TodoStatusPending,
		DueDate:       fields.DueDate,
		ScheduledDate: fields.ScheduledDate,
		Source:        domain.TodoSourceInbox,
		SourceID:      &item.ID,
		Tags:          fields.Tags,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if fields.Title != nil {
		todo.Title = *fields.Title
	}
	if fields.Description != nil {
		todo.Description = fields.Description
	}
	if fields.Priority != nil {
		todo.Priority = *fields.Priority
	}
	if fields.CategoryID != nil {
		todo.Category = &domain.Category{ID: *fields.CategoryID}
	}

	// A todo under the deterministic id means a previous convert failed
	// after step one; skip straight to marking the item.
	if _, err := s.todos.GetByID(ctx, ownerID, todo.ID); err != nil {
		if !errors.Is(err, domain.ErrTodoNotFound) {
			return "", err
		}
		if err := s.todos.Create(ctx, todo); err != nil {
			return "", err
		}
	}

	item.Status = domain.InboxStatusConverted
	item.ConvertedToID = &todo.ID
	item.ConvertedAt = &now
	if err := s.inbox.UpdateStatus(ctx, item); err != nil {
		// The todo exists but the item is still pending; a retried
		// convert recreates the same deterministic id, so surface the
		// error and let the caller retry.
		return "", err
	}

	return todo.ID, nil
}

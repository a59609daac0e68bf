package ports

import (
	"context"

	"goaltracker/internal/core/domain"
)

type InboxRepository interface {
	Create(ctx context.Context, item domain.InboxItem) error
	GetByID(ctx context.Context, ownerID, itemID string) (domain.InboxItem, error)
	ListByOwner(ctx context.Context, ownerID string, status *domain.InboxStatus) ([]domain.InboxItem, error)
	// FindBySourceID matches (owner, source, sourceID), the dedup key.
	FindBySourceID(ctx context.Context, ownerID string, source domain.InboxSource, sourceID string) (domain.InboxItem, bool, error)
	UpdateStatus(ctx context.Context, item domain.InboxItem) error
}

type InboxService interface {
	List(ctx context.Context, ownerID string, status *domain.InboxStatus) ([]domain.InboxItem, error)
	// Ingest persists an arrival unless an item with the same source id
	// already exists; reports whether a new item was created.
	Ingest(ctx context.Context, arrival domain.InboxArrival) (bool, error)
	Dismiss(ctx context.Context, ownerID, itemID string) error
	// Convert turns a pending item into a todo and returns the todo id.
	// Converting an already converted item returns the existing id.
	Convert(ctx context.Context, ownerID, itemID string, fields domain.ConvertFields) (string, error)
}

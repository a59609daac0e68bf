package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"goaltracker/internal/core/domain"
	"goaltracker/internal/core/ports"
)

const insertInboxItemQuery = `
INSERT INTO inbox_items (
  id, owner_id, source, status, title, description, raw_payload, source_id,
  source_url, sender, channel, source_time, converted_to_id, converted_at, created_at
) VALUES (
  :id, :owner_id, :source, :status, :title, :description, :raw_payload, :source_id,
  :source_url, :sender, :channel, :source_time, :converted_to_id, :converted_at, :created_at
);
`

type InboxRepository struct {
	db *sqlx.DB
}

type inboxItemRow struct {
	ID            string         `db:"id"`
	OwnerID       string         `db:"owner_id"`
	Source        string         `db:"source"`
	Status        string         `db:"status"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	RawPayload    string         `db:"raw_payload"`
	SourceID      string         `db:"source_id"`
	SourceURL     sql.NullString `db:"source_url"`
	Sender        sql.NullString `db:"sender"`
	Channel       sql.NullString `db:"channel"`
	SourceTime    time.Time      `db:"source_time"`
	ConvertedToID sql.NullString `db:"converted_to_id"`
	ConvertedAt   sql.NullTime   `db:"converted_at"`
	CreatedAt     time.Time      `db:"created_at"`
}

var _ ports.InboxRepository = (*InboxRepository)(nil)

func NewInboxRepository(db *sqlx.DB) *InboxRepository {
	return &InboxRepository{db: db}
}

func (r *InboxRepository) Create(ctx context.Context, item domain.InboxItem) error {
	_, err := r.db.NamedExecContext(ctx, insertInboxItemQuery, map[string]any{
		"id":              item.ID,
		"owner_id":        item.OwnerID,
		"source":          string(item.Source),
		"status":          string(item.Status),
		"title":           item.Title,
		"description":     item.Description,
		"raw_payload":     item.RawPayload,
		"source_id":       item.SourceID,
		"source_url":      item.SourceURL,
		"sender":          item.Sender,
		"channel":         item.Channel,
		"source_time":     item.SourceTime,
		"converted_to_id": item.ConvertedToID,
		"converted_at":    item.ConvertedAt,
		"created_at":      item.CreatedAt,
	})
	return err
}

func (r *InboxRepository) GetByID(ctx context.Context, ownerID, itemID string) (domain.InboxItem, error) {
	var row inboxItemRow
	err := r.db.GetContext(ctx, &row,
		"SELECT * FROM inbox_items WHERE id = ? AND owner_id = ?;", itemID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.InboxItem{}, domain.ErrInboxItemNotFound
		}
		return domain.InboxItem{}, err
	}
	return mapInboxItemRow(row), nil
}

func (r *InboxRepository) ListByOwner(ctx context.Context, ownerID string, status *domain.InboxStatus) ([]domain.InboxItem, error) {
	query := "SELECT * FROM inbox_items WHERE owner_id = ? ORDER BY source_time DESC, id;"
	args := []any{ownerID}
	if status != nil {
		query = "SELECT * FROM inbox_items WHERE owner_id = ? AND status = ? ORDER BY source_time DESC, id;"
		args = append(args, string(*status))
	}

	var rows []inboxItemRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	items := make([]domain.InboxItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapInboxItemRow(row))
	}
	return items, nil
}

func (r *InboxRepository) FindBySourceID(ctx context.Context, ownerID string, source domain.InboxSource, sourceID string) (domain.InboxItem, bool, error) {
	var row inboxItemRow
	err := r.db.GetContext(ctx, &row,
		"SELECT * FROM inbox_items WHERE owner_id = ? AND source = ? AND source_id = ? LIMIT 1;",
		ownerID, string(source), sourceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.InboxItem{}, false, nil
		}
		return domain.InboxItem{}, false, err
	}
	return mapInboxItemRow(row), true, nil
}

func (r *InboxRepository) UpdateStatus(ctx context.Context, item domain.InboxItem) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE inbox_items SET status = ?, converted_to_id = ?, converted_at = ? WHERE id = ? AND owner_id = ?;",
		string(item.Status), item.ConvertedToID, item.ConvertedAt, item.ID, item.OwnerID)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrInboxItemNotFound)
}

func mapInboxItemRow(row inboxItemRow) domain.InboxItem {
	return domain.InboxItem{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		Source:        domain.InboxSource(row.Source),
		Status:        domain.InboxStatus(row.Status),
		Title:         row.Title,
		Description:   nullableString(row.Description),
		RawPayload:    row.RawPayload,
		SourceID:      row.SourceID,
		SourceURL:     nullableString(row.SourceURL),
		Sender:        nullableString(row.Sender),
		Channel:       nullableString(row.Channel),
		SourceTime:    row.SourceTime,
		ConvertedToID: nullableString(row.ConvertedToID),
		ConvertedAt:   nullableTime(row.ConvertedAt),
		CreatedAt:     row.CreatedAt,
	}
}

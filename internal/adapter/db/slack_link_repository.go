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

const upsertSlackLinkQuery = `
INSERT INTO slack_links (id, owner_id, slack_user_id, team_id, bot_token, user_token, created_at, updated_at)
VALUES (:id, :owner_id, :slack_user_id, :team_id, :bot_token, :user_token, :created_at, :updated_at)
ON DUPLICATE KEY UPDATE
  slack_user_id = VALUES(slack_user_id),
  team_id = VALUES(team_id),
  bot_token = VALUES(bot_token),
  user_token = VALUES(user_token),
  updated_at = VALUES(updated_at);
`

type SlackLinkRepository struct {
	db *sqlx.DB
}

type slackLinkRow struct {
	ID          string         `db:"id"`
	OwnerID     string         `db:"owner_id"`
	SlackUserID string         `db:"slack_user_id"`
	TeamID      sql.NullString `db:"team_id"`
	BotToken    sql.NullString `db:"bot_token"`
	UserToken   sql.NullString `db:"user_token"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.SlackLinkRepository = (*SlackLinkRepository)(nil)

func NewSlackLinkRepository(db *sqlx.DB) *SlackLinkRepository {
	return &SlackLinkRepository{db: db}
}

func (r *SlackLinkRepository) Upsert(ctx context.Context, link domain.SlackLink) error {
	_, err := r.db.NamedExecContext(ctx, upsertSlackLinkQuery, map[string]any{
		"id":            link.ID,
		"owner_id":      link.OwnerID,
		"slack_user_id": link.SlackUserID,
		"team_id":       link.TeamID,
		"bot_token":     link.BotToken,
		"user_token":    link.UserToken,
		"created_at":    link.CreatedAt,
		"updated_at":    link.UpdatedAt,
	})
	return err
}

func (r *SlackLinkRepository) FindBySlackUserID(ctx context.Context, slackUserID string) (domain.SlackLink, bool, error) {
	return r.findOne(ctx, "SELECT * FROM slack_links WHERE slack_user_id = ? LIMIT 1;", slackUserID)
}

func (r *SlackLinkRepository) FindByOwner(ctx context.Context, ownerID string) (domain.SlackLink, bool, error) {
	return r.findOne(ctx, "SELECT * FROM slack_links WHERE owner_id = ? LIMIT 1;", ownerID)
}

func (r *SlackLinkRepository) findOne(ctx context.Context, query string, arg any) (domain.SlackLink, bool, error) {
	var row slackLinkRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SlackLink{}, false, nil
		}
		return domain.SlackLink{}, false, err
	}
	return domain.SlackLink{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		SlackUserID: row.SlackUserID,
		TeamID:      nullableString(row.TeamID),
		BotToken:    nullableString(row.BotToken),
		UserToken:   nullableString(row.UserToken),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, true, nil
}

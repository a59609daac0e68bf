package ports

import (
	"context"

	"goaltracker/internal/core/domain"
)

type SlackLinkRepository interface {
	// Upsert inserts or refreshes the link keyed by (owner, slack user).
	Upsert(ctx context.Context, link domain.SlackLink) error
	FindBySlackUserID(ctx context.Context, slackUserID string) (domain.SlackLink, bool, error)
	FindByOwner(ctx context.Context, ownerID string) (domain.SlackLink, bool, error)
}

// SlackTokenExchanger exchanges an OAuth authorization code at the
// platform's token endpoint.
type SlackTokenExchanger interface {
	Exchange(ctx context.Context, code string) (SlackTokenResult, error)
}

type SlackTokenResult struct {
	AccessToken     string
	TeamID          string
	AuthedUserID    string
	AuthedUserToken string
}

type SlackService interface {
	// HandleEvent ingests one inbox arrival per locally linked user
	// mentioned in the message; returns the number of items created.
	HandleEvent(ctx context.Context, event domain.SlackMessageEvent) (int, error)
	// CompleteOAuth exchanges the code and persists tokens against the
	// local user extracted from the state string.
	CompleteOAuth(ctx context.Context, code, state string) error
}

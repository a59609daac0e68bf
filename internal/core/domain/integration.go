package domain

import "time"

// SlackMessageEvent is the parsed form of an inbound Slack message or
// app_mention event. Timestamp is the platform's message ts and doubles as
// the dedup source id.
type SlackMessageEvent struct {
	Type        string
	Text        string
	SlackUserID string
	Channel     string
	Timestamp   string
	TeamID      string
}

// SlackLink ties a Slack user to a local account and holds the tokens
// obtained through the OAuth flow.
type SlackLink struct {
	ID          string
	OwnerID     string
	SlackUserID string
	TeamID      *string
	BotToken    *string
	UserToken   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

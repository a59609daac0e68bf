package domain

import "time"

type InboxStatus string

const (
	InboxStatusPending   InboxStatus = "pending"
	InboxStatusConverted InboxStatus = "converted"
	InboxStatusDismissed InboxStatus = "dismissed"
)

type InboxSource string

const (
	InboxSourceSlack    InboxSource = "slack"
	InboxSourceCalendar InboxSource = "calendar"
	InboxSourceEmail    InboxSource = "email"
)

type InboxItem struct {
	ID            string
	OwnerID       string
	Source        InboxSource
	Status        InboxStatus
	Title         string
	Description   *string
	RawPayload    string
	SourceID      string // originating system's message/event id, dedup key
	SourceURL     *string
	Sender        *string
	Channel       *string
	SourceTime    time.Time
	ConvertedToID *string
	ConvertedAt   *time.Time
	CreatedAt     time.Time
}

// InboxArrival is an inbound item before it has been deduplicated and
// persisted.
type InboxArrival struct {
	OwnerID     string
	Source      InboxSource
	Title       string
	Description *string
	RawPayload  string
	SourceID    string
	SourceURL   *string
	Sender      *string
	Channel     *string
	SourceTime  time.Time
}

// ConvertFields are the caller-supplied overrides applied when an inbox
// item becomes a todo. Unset title/description fall back to the item's own.
type ConvertFields struct {
	Title         *string
	Description   *string
	GoalID        *string
	Priority      *int
	DueDate       *time.Time
	ScheduledDate *time.Time
	CategoryID    *string
	Tags          []string
}

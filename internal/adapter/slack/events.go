package slack

import (
	"encoding/json"

	"goaltracker/internal/core/domain"
)

const (
	PayloadTypeURLVerification = "url_verification"
	PayloadTypeEventCallback   = "event_callback"
)

// EventPayload is the outer envelope Slack posts to the events endpoint.
type EventPayload struct {
	Type      string     `json:"type"`
	Challenge string     `json:"challenge"`
	TeamID    string     `json:"team_id"`
	Event     InnerEvent `json:"event"`
}

// InnerEvent is the message-level event inside an event_callback.
type InnerEvent struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	User    string `json:"user"`
	Channel string `json:"channel"`
	TS      string `json:"ts"`
	Subtype string `json:"subtype"`
	BotID   string `json:"bot_id"`
}

// ParsePayload decodes the raw webhook body.
func ParsePayload(body []byte) (EventPayload, error) {
	var payload EventPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return EventPayload{}, err
	}
	return payload, nil
}

// MessageEvent maps an event_callback to the domain event the service
// consumes. Bot messages and subtyped messages (edits, joins) yield no
// event.
func (p EventPayload) MessageEvent() (domain.SlackMessageEvent, bool) {
	if p.Type != PayloadTypeEventCallback {
		return domain.SlackMessageEvent{}, false
	}
	if p.Event.Type != "app_mention" && p.Event.Type != "message" {
		return domain.SlackMessageEvent{}, false
	}
	if p.Event.BotID != "" || p.Event.Subtype != "" {
		return domain.SlackMessageEvent{}, false
	}
	return domain.SlackMessageEvent{
		Type:        p.Event.Type,
		Text:        p.Event.Text,
		SlackUserID: p.Event.User,
		Channel:     p.Event.Channel,
		Timestamp:   p.Event.TS,
		TeamID:      p.TeamID,
	}, true
}

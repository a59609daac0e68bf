package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goaltracker/internal/core/domain"
	"goaltracker/internal/core/ports"
)

var mentionPattern = regexp.MustCompile(`<@([A-Z0-9]+)>`)

type SlackService struct {
	links     ports.SlackLinkRepository
	inbox     ports.InboxService
	exchanger ports.SlackTokenExchanger
	now       func() time.Time
}

func NewSlackService(links ports.SlackLinkRepository, inbox ports.InboxService, exchanger ports.SlackTokenExchanger) *SlackService {
	return &SlackService{links: links, inbox: inbox, exchanger: exchanger, now: time.Now}
}

var _ ports.SlackService = (*SlackService)(nil)

// HandleEvent resolves every <@USER_ID> mention in the message to a linked
// local account and ingests one inbox arrival per resolved user. The
// message ts doubles as the dedup source id, so a redelivered event is
// discarded downstream.
func (s *SlackService) HandleEvent(ctx context.Context, event domain.SlackMessageEvent) (int, error) {
	if event.Type != "app_mention" && event.Type != "message" {
		return 0, nil
	}

	created := 0
	for _, match := range mentionPattern.FindAllStringSubmatch(event.Text, -1) {
		slackUserID := match[1]
		link, found, err := s.links.FindBySlackUserID(ctx, slackUserID)
		if err != nil {
			return created, err
		}
		if !found {
			zap.L().Debug("mention of unlinked slack user skipped",
				zap.String("slack_user_id", slackUserID))
			continue
		}

		arrival := domain.InboxArrival{
			OwnerID:    link.OwnerID,
			Source:     domain.InboxSourceSlack,
			Title:      mentionTitle(event.Text),
			RawPayload: event.Text,
			SourceID:   event.Timestamp,
			Sender:     optional(event.SlackUserID),
			Channel:    optional(event.Channel),
			SourceTime: slackTimestamp(event.Timestamp, s.now()),
		}
		fresh, err := s.inbox.Ingest(ctx, arrival)
		if err != nil {
			return created, err
		}
		if fresh {
			created++
		}
	}
	return created, nil
}

// CompleteOAuth finishes the token exchange. The state carries the local
// user id before the first colon; the remainder is an opaque nonce.
func (s *SlackService) CompleteOAuth(ctx context.Context, code, state string) error {
	ownerID, _, found := strings.Cut(state, ":")
	if !found || ownerID == "" {
		return fmt.Errorf("malformed oauth state")
	}

	result, err := s.exchanger.Exchange(ctx, code)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	link := domain.SlackLink{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		SlackUserID: result.AuthedUserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if result.TeamID != "" {
		link.TeamID = &result.TeamID
	}
	if result.AccessToken != "" {
		link.BotToken = &result.AccessToken
	}
	if result.AuthedUserToken != "" {
		link.UserToken = &result.AuthedUserToken
	}
	return s.links.Upsert(ctx, link)
}

// mentionTitle trims mention tokens out of the message text for use as the
// inbox item title, keeping it to a single line.
func mentionTitle(text string) string {
	title := strings.TrimSpace(mentionPattern.ReplaceAllString(text, ""))
	if idx := strings.IndexByte(title, '\n'); idx >= 0 {
		title = strings.TrimSpace(title[:idx])
	}
	if title == "" {
		title = "Slack mention"
	}
	return title
}

// slackTimestamp parses the "1712345678.000200" message ts; the fallback is
// the receive time.
func slackTimestamp(ts string, fallback time.Time) time.Time {
	seconds, _, _ := strings.Cut(ts, ".")
	unix, err := strconv.ParseInt(seconds, 10, 64)
	if err != nil {
		return fallback
	}
	return time.Unix(unix, 0).UTC()
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

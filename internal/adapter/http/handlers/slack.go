package handlers

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goaltracker/internal/adapter/slack"
	"goaltracker/internal/core/ports"
)

const (
	slackSignatureHeader = "X-Slack-Signature"
	slackTimestampHeader = "X-Slack-Request-Timestamp"
)

type SlackHandler struct {
	slackService  ports.SlackService
	signingSecret string
	appBaseURL    string
	now           func() time.Time
}

func NewSlackHandler(slackService ports.SlackService, signingSecret, appBaseURL string) *SlackHandler {
	return &SlackHandler{
		slackService:  slackService,
		signingSecret: signingSecret,
		appBaseURL:    appBaseURL,
		now:           time.Now,
	}
}

// HandleEvent is the events endpoint. Internal failures after signature
// verification still answer 200 so the platform does not storm retries;
// the detail goes to the log.
func (h *SlackHandler) HandleEvent(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if !slack.VerifySignature(
		h.signingSecret,
		c.GetHeader(slackTimestampHeader),
		c.GetHeader(slackSignatureHeader),
		body,
		h.now(),
	) {
		zap.L().Warn("slack event rejected: bad signature or stale timestamp")
		c.Status(http.StatusUnauthorized)
		return
	}

	payload, err := slack.ParsePayload(body)
	if err != nil {
		zap.L().Warn("slack event rejected: malformed payload", zap.Error(err))
		c.Status(http.StatusBadRequest)
		return
	}

	if payload.Type == slack.PayloadTypeURLVerification {
		c.JSON(http.StatusOK, gin.H{"challenge": payload.Challenge})
		return
	}

	event, ok := payload.MessageEvent()
	if !ok {
		c.Status(http.StatusOK)
		return
	}

	created, err := h.slackService.HandleEvent(c.Request.Context(), event)
	if err != nil {
		zap.L().Error("slack event processing failed", zap.Error(err))
		c.Status(http.StatusOK)
		return
	}

	zap.L().Info("slack event processed",
		zap.String("event_type", event.Type),
		zap.Int("inbox_items_created", created))
	c.Status(http.StatusOK)
}

// HandleOAuthCallback finishes the install flow. Every failure redirects
// back to the application with an error indicator instead of surfacing a
// raw error page.
func (h *SlackHandler) HandleOAuthCallback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		h.redirectWithError(c, "missing_code_or_state")
		return
	}

	if err := h.slackService.CompleteOAuth(c.Request.Context(), code, state); err != nil {
		zap.L().Error("slack oauth exchange failed", zap.Error(err))
		h.redirectWithError(c, "exchange_failed")
		return
	}

	c.Redirect(http.StatusFound, h.appBaseURL+"?slack=connected")
}

func (h *SlackHandler) redirectWithError(c *gin.Context, reason string) {
	c.Redirect(http.StatusFound, h.appBaseURL+"?slack=error&reason="+url.QueryEscape(reason))
}

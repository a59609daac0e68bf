package tests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"goaltracker/internal/adapter/http/handlers"
	"goaltracker/internal/adapter/http/middleware"
	slackadapter "goaltracker/internal/adapter/slack"
	"goaltracker/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type slackServiceMock struct {
	mock.Mock
}

func (m *slackServiceMock) HandleEvent(ctx context.Context, event domain.SlackMessageEvent) (int, error) {
	args := m.Called(ctx, event)
	return args.Int(0), args.Error(1)
}

func (m *slackServiceMock) CompleteOAuth(ctx context.Context, code, state string) error {
	return m.Called(ctx, code, state).Error(0)
}

const webhookSigningSecret = "test-signing-secret"

func newSlackRouter(service *slackServiceMock) *gin.Engine {
	handler := handlers.NewSlackHandler(service, webhookSigningSecret, "http://localhost:3000")

	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.POST("/integrations/slack/events", handler.HandleEvent)
	api.GET("/integrations/slack/oauth/callback", handler.HandleOAuthCallback)
	return router
}

func signedEventRequest(body string) *http.Request {
	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	req := httptest.NewRequest(http.MethodPost, "/api/integrations/slack/events", strings.NewReader(body))
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", slackadapter.ComputeSignature(webhookSigningSecret, timestamp, []byte(body)))
	return req
}

func TestSlackHandler_HandleEvent_RejectsBadSignature(t *testing.T) {
	service := new(slackServiceMock)
	router := newSlackRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/integrations/slack/events", strings.NewReader(`{}`))
	req.Header.Set("X-Slack-Request-Timestamp", fmt.Sprintf("%d", time.Now().Unix()))
	req.Header.Set("X-Slack-Signature", "v0=deadbeef")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	service.AssertNotCalled(t, "HandleEvent", mock.Anything, mock.Anything)
}

func TestSlackHandler_HandleEvent_RejectsStaleTimestamp(t *testing.T) {
	service := new(slackServiceMock)
	router := newSlackRouter(service)

	body := `{}`
	timestamp := fmt.Sprintf("%d", time.Now().Add(-10*time.Minute).Unix())
	req := httptest.NewRequest(http.MethodPost, "/api/integrations/slack/events", strings.NewReader(body))
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", slackadapter.ComputeSignature(webhookSigningSecret, timestamp, []byte(body)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSlackHandler_HandleEvent_EchoesChallenge(t *testing.T) {
	service := new(slackServiceMock)
	router := newSlackRouter(service)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, signedEventRequest(`{"type":"url_verification","challenge":"c-123"}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "c-123", got["challenge"])
	service.AssertNotCalled(t, "HandleEvent", mock.Anything, mock.Anything)
}

func TestSlackHandler_HandleEvent_ForwardsMessageEvent(t *testing.T) {
	service := new(slackServiceMock)
	service.On("HandleEvent", mock.Anything, mock.MatchedBy(func(event domain.SlackMessageEvent) bool {
		return event.Type == "app_mention" && event.Timestamp == "1767456000.000200"
	})).Return(1, nil).Once()
	router := newSlackRouter(service)

	body := `{
		"type":"event_callback",
		"team_id":"T012345",
		"event":{"type":"app_mention","text":"<@U0AAA11BB> hello","user":"U0SENDER1","channel":"C0GENERAL","ts":"1767456000.000200"}
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, signedEventRequest(body))

	require.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestSlackHandler_HandleEvent_InternalErrorStillAnswersOK(t *testing.T) {
	service := new(slackServiceMock)
	service.On("HandleEvent", mock.Anything, mock.Anything).
		Return(0, errors.New("db is down")).Once()
	router := newSlackRouter(service)

	body := `{
		"type":"event_callback",
		"event":{"type":"message","text":"hello","user":"U0SENDER1","ts":"1.2"}
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, signedEventRequest(body))

	require.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestSlackHandler_OAuthCallback_Success(t *testing.T) {
	service := new(slackServiceMock)
	service.On("CompleteOAuth", mock.Anything, "auth-code", testOwnerID+":nonce").Return(nil).Once()
	router := newSlackRouter(service)

	req := httptest.NewRequest(http.MethodGet,
		"/api/integrations/slack/oauth/callback?code=auth-code&state="+testOwnerID+"%3Anonce", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "http://localhost:3000?slack=connected", rec.Header().Get("Location"))
	service.AssertExpectations(t)
}

func TestSlackHandler_OAuthCallback_MissingParams(t *testing.T) {
	service := new(slackServiceMock)
	router := newSlackRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/integrations/slack/oauth/callback?code=auth-code", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Contains(t, rec.Header().Get("Location"), "slack=error")
	service.AssertNotCalled(t, "CompleteOAuth", mock.Anything, mock.Anything, mock.Anything)
}

func TestSlackHandler_OAuthCallback_ExchangeFailure(t *testing.T) {
	service := new(slackServiceMock)
	service.On("CompleteOAuth", mock.Anything, "auth-code", mock.Anything).
		Return(errors.New("invalid_code")).Once()
	router := newSlackRouter(service)

	req := httptest.NewRequest(http.MethodGet,
		"/api/integrations/slack/oauth/callback?code=auth-code&state=abc:def", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Contains(t, rec.Header().Get("Location"), "reason=exchange_failed")
	service.AssertExpectations(t)
}

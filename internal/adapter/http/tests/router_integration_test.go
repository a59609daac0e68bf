//go:build integration
// +build integration

package tests

import (
	"testing"
	"time"

	dbadapter "goaltracker/internal/adapter/db"
	httpadapter "goaltracker/internal/adapter/http"
	"goaltracker/internal/adapter/http/handlers"
	slackadapter "goaltracker/internal/adapter/slack"
	appservice "goaltracker/internal/app/service"
	"goaltracker/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

const (
	integrationJWTSecret     = "integration-secret"
	integrationSigningSecret = "integration-slack-signing"
	integrationOwnerID       = "4f6e1c2a-8b3d-4e5f-9a0b-1c2d3e4f5a6b"
)

func buildIntegrationRouter(t *testing.T, db *sqlx.DB) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  projectRoot(t) + "/pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	goalRepo := dbadapter.NewGoalRepository(db)
	todoRepo := dbadapter.NewTodoRepository(db)
	checkInRepo := dbadapter.NewCheckInRepository(db)
	inboxRepo := dbadapter.NewInboxRepository(db)
	slackLinkRepo := dbadapter.NewSlackLinkRepository(db)

	goalService := appservice.NewGoalService(goalRepo, todoRepo, checkInRepo)
	todoService := appservice.NewTodoService(todoRepo, goalService)
	checkInService := appservice.NewCheckInService(checkInRepo, goalRepo, goalService)
	inboxService := appservice.NewInboxService(inboxRepo, todoRepo)
	oauthClient := slackadapter.NewOAuthClient("client-id", "client-secret", "http://localhost/callback")
	slackService := appservice.NewSlackService(slackLinkRepo, inboxService, oauthClient)

	router := gin.New()
	httpadapter.RegisterRoutes(
		router,
		integrationJWTSecret,
		handlers.NewHealthHandler(db),
		handlers.NewGoalHandler(goalService, checkInService),
		handlers.NewTodoHandler(todoService),
		handlers.NewInboxHandler(inboxService),
		handlers.NewSlackHandler(slackService, integrationSigningSecret, "http://localhost:3000"),
	)
	return router
}

func bearerToken(t *testing.T, subject string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(integrationJWTSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

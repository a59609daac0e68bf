package main

import (
	"goaltracker/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "goaltracker/internal/adapter/db"
	httpadapter "goaltracker/internal/adapter/http"
	"goaltracker/internal/adapter/http/handlers"
	httpmiddleware "goaltracker/internal/adapter/http/middleware"
	slackadapter "goaltracker/internal/adapter/slack"
	"goaltracker/internal/app/service"
	"goaltracker/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	goalRepo := dbadapter.NewGoalRepository(db)
	todoRepo := dbadapter.NewTodoRepository(db)
	checkInRepo := dbadapter.NewCheckInRepository(db)
	inboxRepo := dbadapter.NewInboxRepository(db)
	slackLinkRepo := dbadapter.NewSlackLinkRepository(db)

	goalService := service.NewGoalService(goalRepo, todoRepo, checkInRepo)
	todoService := service.NewTodoService(todoRepo, goalService)
	checkInService := service.NewCheckInService(checkInRepo, goalRepo, goalService)
	inboxService := service.NewInboxService(inboxRepo, todoRepo)
	oauthClient := slackadapter.NewOAuthClient(cfg.SlackClientID, cfg.SlackClientSecret, cfg.SlackRedirectURL)
	slackService := service.NewSlackService(slackLinkRepo, inboxService, oauthClient)

	healthHandler := handlers.NewHealthHandler(db)
	goalHandler := handlers.NewGoalHandler(goalService, checkInService)
	todoHandler := handlers.NewTodoHandler(todoService)
	inboxHandler := handlers.NewInboxHandler(inboxService)
	slackHandler := handlers.NewSlackHandler(slackService, cfg.SlackSigningSecret, cfg.AppBaseURL)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}
	httpadapter.RegisterRoutes(r, cfg.JWTSecret, healthHandler, goalHandler, todoHandler, inboxHandler, slackHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

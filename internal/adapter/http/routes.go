package http

import (
	"goaltracker/internal/adapter/http/handlers"
	"goaltracker/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.Engine,
	jwtSecret string,
	healthHandler *handlers.HealthHandler,
	goalHandler *handlers.GoalHandler,
	todoHandler *handlers.TodoHandler,
	inboxHandler *handlers.InboxHandler,
	slackHandler *handlers.SlackHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		// Webhooks authenticate with the platform signature, not a user token.
		api.POST("/integrations/slack/events", slackHandler.HandleEvent)
		api.GET("/integrations/slack/oauth/callback", slackHandler.HandleOAuthCallback)

		secured := api.Group("")
		secured.Use(middleware.AuthMiddleware(jwtSecret))
		{
			secured.GET("/goals", goalHandler.ListGoals)
			secured.POST("/goals", goalHandler.CreateGoal)
			secured.GET("/goals/:id", goalHandler.GetGoal)
			secured.PATCH("/goals/:id", goalHandler.UpdateGoal)
			secured.DELETE("/goals/:id", goalHandler.DeleteGoal)
			secured.GET("/goals/:id/progress", goalHandler.GetGoalProgress)
			secured.POST("/goals/:id/progress/refresh", goalHandler.RefreshGoalProgress)
			secured.POST("/progress/refresh", goalHandler.RefreshAllProgress)
			secured.POST("/goals/:id/checkins/toggle", goalHandler.ToggleCheckIn)
			secured.GET("/goals/:id/checkins", goalHandler.ListCheckIns)

			secured.GET("/todos", todoHandler.ListTodos)
			secured.POST("/todos", todoHandler.CreateTodo)
			secured.GET("/todos/:id", todoHandler.GetTodo)
			secured.PATCH("/todos/:id", todoHandler.UpdateTodo)
			secured.DELETE("/todos/:id", todoHandler.DeleteTodo)
			secured.POST("/todos/:id/complete", todoHandler.CompleteTodo)

			secured.GET("/inbox", inboxHandler.ListItems)
			secured.POST("/inbox/:id/dismiss", inboxHandler.DismissItem)
			secured.POST("/inbox/:id/convert", inboxHandler.ConvertItem)
		}
	}
}

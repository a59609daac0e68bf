package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"goaltracker/internal/adapter/http/dto"
	"goaltracker/internal/adapter/http/mapper"
	"goaltracker/internal/adapter/http/middleware"
	"goaltracker/internal/adapter/http/validation"
	"goaltracker/internal/core/domain"
	"goaltracker/internal/core/ports"
	"goaltracker/pkg/apierrors"
)

type GoalHandler struct {
	goalService    ports.GoalService
	checkInService ports.CheckInService
	now            func() time.Time
}

func NewGoalHandler(goalService ports.GoalService, checkInService ports.CheckInService) *GoalHandler {
	return &GoalHandler{goalService: goalService, checkInService: checkInService, now: time.Now}
}

func (h *GoalHandler) ListGoals(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	goals, err := h.goalService.List(c.Request.Context(), ownerID)
	if err != nil {
		zap.L().Error("failed to list goals", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListGoals, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToGoalItems(goals))
}

func (h *GoalHandler) GetGoal(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	goalID, ok := parseGoalID(c, lang)
	if !ok {
		return
	}

	goal, err := h.goalService.Get(c.Request.Context(), ownerID, goalID)
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgGoalNotFound, lang),
			)
			return
		}
		zap.L().Error("failed to get goal", zap.String("goal_id", goalID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListGoals, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToGoalItem(goal))
}

func (h *GoalHandler) CreateGoal(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGoalPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateGoalInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGoalPayload, lang),
		)
		return
	}

	goal, err := h.goalService.Create(c.Request.Context(), ownerID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGoalNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgGoalNotFound, lang),
			)
		case errors.Is(err, domain.ErrInvalidParentTier):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidParentTier, lang),
			)
		default:
			zap.L().Error("failed to create goal", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateGoal, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, mapper.ToGoalItem(goal))
}

func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	goalID, ok := parseGoalID(c, lang)
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGoalPayload, lang),
		)
		return
	}
	var req dto.UpdateGoalRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGoalPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateGoalInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGoalPayload, lang),
		)
		return
	}

	goal, err := h.goalService.Update(c.Request.Context(), ownerID, goalID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGoalNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgGoalNotFound, lang),
			)
		case errors.Is(err, domain.ErrInvalidParentTier):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidParentTier, lang),
			)
		default:
			zap.L().Error("failed to update goal", zap.String("goal_id", goalID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateGoal, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToGoalItem(goal))
}

func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	goalID, ok := parseGoalID(c, lang)
	if !ok {
		return
	}

	orphaned, err := h.goalService.Delete(c.Request.Context(), ownerID, goalID)
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgGoalNotFound, lang),
			)
			return
		}
		zap.L().Error("failed to delete goal", zap.String("goal_id", goalID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteGoal, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.GoalDeleteResponse{Deleted: true, OrphanedGoals: orphaned})
}

func (h *GoalHandler) GetGoalProgress(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	goalID, ok := parseGoalID(c, lang)
	if !ok {
		return
	}

	report, err := h.goalService.Progress(c.Request.Context(), ownerID, goalID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGoalNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgGoalNotFound, lang),
			)
		case errors.Is(err, domain.ErrCyclicHierarchy):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgCyclicHierarchy, lang),
			)
		default:
			zap.L().Error("failed to compute goal progress", zap.String("goal_id", goalID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGoalProgress, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToGoalProgressResponse(report))
}

func (h *GoalHandler) RefreshGoalProgress(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	goalID, ok := parseGoalID(c, lang)
	if !ok {
		return
	}

	if err := h.goalService.RefreshProgress(c.Request.Context(), ownerID, goalID); err != nil {
		switch {
		case errors.Is(err, domain.ErrGoalNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgGoalNotFound, lang),
			)
		case errors.Is(err, domain.ErrCyclicHierarchy):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgCyclicHierarchy, lang),
			)
		default:
			zap.L().Error("failed to refresh goal progress", zap.String("goal_id", goalID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGoalProgress, lang),
			)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GoalHandler) RefreshAllProgress(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	if err := h.goalService.RefreshAll(c.Request.Context(), ownerID); err != nil {
		zap.L().Error("failed to refresh goal progress", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGoalProgress, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GoalHandler) ToggleCheckIn(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	goalID, ok := parseGoalID(c, lang)
	if !ok {
		return
	}

	var req dto.ToggleCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCheckInDate, lang),
		)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCheckInDate, lang),
		)
		return
	}

	// The ledger does not police the calendar; rejecting future days is
	// this layer's responsibility.
	if domain.NormalizeDay(date).After(domain.NormalizeDay(h.now())) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgFutureCheckIn, lang),
		)
		return
	}

	completed, err := h.checkInService.Toggle(c.Request.Context(), ownerID, goalID, date)
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgGoalNotFound, lang),
			)
			return
		}
		zap.L().Error("failed to toggle check-in", zap.String("goal_id", goalID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailToggleCheckIn, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.ToggleCheckInResponse{
		GoalID:    goalID,
		Date:      domain.NormalizeDay(date).Format("2006-01-02"),
		Completed: completed,
	})
}

func (h *GoalHandler) ListCheckIns(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	goalID, ok := parseGoalID(c, lang)
	if !ok {
		return
	}

	records, err := h.checkInService.RecordsForGoal(c.Request.Context(), ownerID, goalID)
	if err != nil {
		zap.L().Error("failed to list check-ins", zap.String("goal_id", goalID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListCheckIns, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCheckInItems(records))
}

func parseGoalID(c *gin.Context, lang string) (string, bool) {
	goalID := c.Param("id")
	if _, err := uuid.Parse(goalID); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGoalID, lang),
		)
		return "", false
	}
	return goalID, true
}

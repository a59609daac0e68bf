package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"goaltracker/internal/adapter/http/dto"
	"goaltracker/internal/adapter/http/mapper"
	"goaltracker/internal/adapter/http/middleware"
	"goaltracker/internal/core/domain"
	"goaltracker/internal/core/ports"
	"goaltracker/pkg/apierrors"
)

type InboxHandler struct {
	inboxService ports.InboxService
}

func NewInboxHandler(inboxService ports.InboxService) *InboxHandler {
	return &InboxHandler{inboxService: inboxService}
}

func (h *InboxHandler) ListItems(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	var status *domain.InboxStatus
	if value := c.Query("status"); value != "" {
		parsed := domain.InboxStatus(value)
		switch parsed {
		case domain.InboxStatusPending, domain.InboxStatusConverted, domain.InboxStatusDismissed:
			status = &parsed
		default:
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidInboxPayload, lang),
			)
			return
		}
	}

	items, err := h.inboxService.List(c.Request.Context(), ownerID, status)
	if err != nil {
		zap.L().Error("failed to list inbox items", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListInbox, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToInboxItemViews(items))
}

func (h *InboxHandler) DismissItem(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	itemID, ok := parseInboxItemID(c, lang)
	if !ok {
		return
	}

	if err := h.inboxService.Dismiss(c.Request.Context(), ownerID, itemID); err != nil {
		if errors.Is(err, domain.ErrInboxItemNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgInboxItemNotFound, lang),
			)
			return
		}
		zap.L().Error("failed to dismiss inbox item", zap.String("item_id", itemID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDismissItem, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *InboxHandler) ConvertItem(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	itemID, ok := parseInboxItemID(c, lang)
	if !ok {
		return
	}

	var req dto.ConvertInboxItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidInboxPayload, lang),
		)
		return
	}

	fields, err := buildConvertFields(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidInboxPayload, lang),
		)
		return
	}

	todoID, err := h.inboxService.Convert(c.Request.Context(), ownerID, itemID, fields)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInboxItemNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgInboxItemNotFound, lang),
			)
		case errors.Is(err, domain.ErrItemDismissed):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgInboxItemDismissed, lang),
			)
		default:
			zap.L().Error("failed to convert inbox item", zap.String("item_id", itemID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailConvertItem, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ConvertInboxItemResponse{ItemID: itemID, TodoID: todoID})
}

func buildConvertFields(req dto.ConvertInboxItemRequest) (domain.ConvertFields, error) {
	fields := domain.ConvertFields{
		Title:       req.Title,
		Description: req.Description,
		GoalID:      req.GoalID,
		Priority:    req.Priority,
		CategoryID:  req.CategoryID,
		Tags:        req.Tags,
	}

	var err error
	if fields.DueDate, err = parseDate(req.DueDate); err != nil {
		return domain.ConvertFields{}, err
	}
	if fields.ScheduledDate, err = parseDate(req.ScheduledDate); err != nil {
		return domain.ConvertFields{}, err
	}
	return fields, nil
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseInboxItemID(c *gin.Context, lang string) (string, bool) {
	itemID := c.Param("id")
	if _, err := uuid.Parse(itemID); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidInboxPayload, lang),
		)
		return "", false
	}
	return itemID, true
}

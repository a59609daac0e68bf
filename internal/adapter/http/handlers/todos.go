package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

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

type TodoHandler struct {
	todoService ports.TodoService
}

func NewTodoHandler(todoService ports.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	todos, err := h.todoService.List(c.Request.Context(), ownerID)
	if err != nil {
		zap.L().Error("failed to list todos", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTodos, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItems(todos))
}

func (h *TodoHandler) GetTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	todo, err := h.todoService.Get(c.Request.Context(), ownerID, todoID)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, lang),
			)
			return
		}
		zap.L().Error("failed to get todo", zap.String("todo_id", todoID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTodos, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTodoInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), ownerID, input)
	if err != nil {
		zap.L().Error("failed to create todo", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTodo, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTodoInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	todo, err := h.todoService.Update(c.Request.Context(), ownerID, todoID, input)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, lang),
			)
			return
		}
		zap.L().Error("failed to update todo", zap.String("todo_id", todoID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTodo, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	if err := h.todoService.Delete(c.Request.Context(), ownerID, todoID); err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, lang),
			)
			return
		}
		zap.L().Error("failed to delete todo", zap.String("todo_id", todoID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTodo, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TodoHandler) CompleteTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	todo, next, err := h.todoService.Complete(c.Request.Context(), ownerID, todoID)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, lang),
			)
			return
		}
		zap.L().Error("failed to complete todo", zap.String("todo_id", todoID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCompleteTodo, lang),
		)
		return
	}

	response := dto.CompleteTodoResponse{Todo: mapper.ToTodoItem(todo)}
	if next != nil {
		item := mapper.ToTodoItem(*next)
		response.NextOccurrence = &item
	}

	c.JSON(http.StatusOK, response)
}

func parseTodoID(c *gin.Context, lang string) (string, bool) {
	todoID := c.Param("id")
	if _, err := uuid.Parse(todoID); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoID, lang),
		)
		return "", false
	}
	return todoID, true
}

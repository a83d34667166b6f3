package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkyfahmi/todoauth/internal/application"
	"github.com/rizkyfahmi/todoauth/internal/domain/repository"
	"github.com/rizkyfahmi/todoauth/internal/interface/middleware"
	"github.com/rizkyfahmi/todoauth/pkg/response"
	"github.com/rizkyfahmi/todoauth/pkg/validation"
)

type TodoHandler struct {
	Svc    *application.TodoService
	Logger *logrus.Logger
}

func NewTodoHandler(svc *application.TodoService, logger *logrus.Logger) *TodoHandler {
	return &TodoHandler{Svc: svc, Logger: logger}
}

type createTodoRequest struct {
	Title     string `json:"title" binding:"required"`
	Completed bool   `json:"completed"`
}

type todoResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// List GET /todos/
func (h *TodoHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	todos, err := h.Svc.ListForUser(uid)
	if err != nil {
		h.Logger.WithError(err).Error("list todos failed")
		response.Detail(c, http.StatusInternalServerError, "list failed")
		return
	}
	out := make([]todoResponse, 0, len(todos))
	for _, t := range todos {
		out = append(out, todoResponse{ID: t.ID, Title: t.Title, Completed: t.Completed})
	}
	c.JSON(http.StatusOK, out)
}

// Create POST /todos/
func (h *TodoHandler) Create(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Svc.CreateForUser(uid, req.Title, req.Completed)
	if err != nil {
		h.Logger.WithError(err).Error("create todo failed")
		response.Detail(c, http.StatusInternalServerError, "create failed")
		return
	}
	c.JSON(http.StatusCreated, todoResponse{ID: t.ID, Title: t.Title, Completed: t.Completed})
}

// Delete DELETE /todos/:id
func (h *TodoHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.DeleteForUser(uid, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Detail(c, http.StatusNotFound, "Todo not found")
			return
		}
		h.Logger.WithError(err).Error("delete todo failed")
		response.Detail(c, http.StatusInternalServerError, "delete failed")
		return
	}
	c.Status(http.StatusNoContent)
}

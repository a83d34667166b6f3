package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rizkyfahmi/todoauth/internal/interface/http"
	"github.com/rizkyfahmi/todoauth/internal/interface/middleware"
	"github.com/rizkyfahmi/todoauth/pkg/helpers"
)

// TodoModule wires the todo service routes.
// Public: GET /healthz
// Protected (bearer token): GET /todos/, POST /todos/, DELETE /todos/:id

type TodoModule struct {
	Handler *handlers.TodoHandler
	Tokens  *helpers.TokenManager
}

func NewTodoModule(h *handlers.TodoHandler, tokens *helpers.TokenManager) *TodoModule {
	return &TodoModule{Handler: h, Tokens: tokens}
}

func (m *TodoModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", handlers.Healthz)

	todos := rg.Group("/todos")
	todos.Use(middleware.Auth(m.Tokens))
	{
		todos.GET("/", m.Handler.List)
		todos.POST("/", m.Handler.Create)
		todos.DELETE("/:id", m.Handler.Delete)
	}
}

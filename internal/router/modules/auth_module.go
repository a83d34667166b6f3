package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rizkyfahmi/todoauth/internal/interface/http"
)

// AuthModule wires the auth service routes.
// Public: POST /register, POST /login, GET /healthz

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)
	rg.GET("/healthz", handlers.Healthz)
}

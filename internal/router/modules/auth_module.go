package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/diligence-app/diligence-backend/internal/domain/repository"
	handlers "github.com/diligence-app/diligence-backend/internal/interface/http"
	"github.com/diligence-app/diligence-backend/internal/interface/middleware"
	"github.com/diligence-app/diligence-backend/pkg/helpers"
)

// AuthModule wires account routes.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: GET /api/auth/me
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
	Users   repository.UserRepository
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager, users repository.UserRepository) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt, Users: users}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/login", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, m.Users))
	{
		auth.GET("/auth/me", m.Handler.Me)
	}
}

package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/diligence-app/diligence-backend/internal/domain/repository"
	handlers "github.com/diligence-app/diligence-backend/internal/interface/http"
	"github.com/diligence-app/diligence-backend/internal/interface/middleware"
	"github.com/diligence-app/diligence-backend/pkg/helpers"
)

// TaskModule wires task CRUD routes; everything requires a bearer token.
type TaskModule struct {
	Handler *handlers.TaskHandler
	JWT     *helpers.JWTManager
	Users   repository.UserRepository
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager, users repository.UserRepository) *TaskModule {
	return &TaskModule{Handler: h, JWT: jwt, Users: users}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/tasks")
	auth.Use(middleware.Auth(m.JWT, m.Users))
	{
		auth.GET("", m.Handler.List)
		auth.POST("", m.Handler.Create)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}

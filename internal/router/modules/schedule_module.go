package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/diligence-app/diligence-backend/internal/domain/repository"
	handlers "github.com/diligence-app/diligence-backend/internal/interface/http"
	"github.com/diligence-app/diligence-backend/internal/interface/middleware"
	"github.com/diligence-app/diligence-backend/pkg/helpers"
)

// ScheduleModule wires scheduled-task routes; everything requires a bearer token.
type ScheduleModule struct {
	Handler *handlers.ScheduleHandler
	JWT     *helpers.JWTManager
	Users   repository.UserRepository
}

func NewScheduleModule(h *handlers.ScheduleHandler, jwt *helpers.JWTManager, users repository.UserRepository) *ScheduleModule {
	return &ScheduleModule{Handler: h, JWT: jwt, Users: users}
}

func (m *ScheduleModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/scheduled-tasks")
	auth.Use(middleware.Auth(m.JWT, m.Users))
	{
		auth.GET("", m.Handler.List)
		auth.POST("", m.Handler.Create)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}

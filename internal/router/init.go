package router

import (
	"github.com/diligence-app/diligence-backend/internal/application"
	"github.com/diligence-app/diligence-backend/internal/container"
	pginfra "github.com/diligence-app/diligence-backend/internal/infrastructure/postgres"
	handlers "github.com/diligence-app/diligence-backend/internal/interface/http"
	"github.com/diligence-app/diligence-backend/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during application startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()
	jwt := container.GetJWT()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	tasks := pginfra.NewTaskRepository(pool)
	schedules := pginfra.NewScheduleRepository(pool)

	authSvc := application.NewAuthService(users, jwt, logger)
	taskSvc := application.NewTaskService(tasks, logger)
	schedSvc := application.NewScheduleService(schedules, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt, users))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), jwt, users))
	r.Add(modules.NewScheduleModule(handlers.NewScheduleHandler(schedSvc, logger), jwt, users))
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/diligence-app/diligence-backend/internal/application"
	"github.com/diligence-app/diligence-backend/internal/domain/entity"
	repo "github.com/diligence-app/diligence-backend/internal/domain/repository"
	"github.com/diligence-app/diligence-backend/pkg/response"
	"github.com/diligence-app/diligence-backend/pkg/validation"
)

type ScheduleHandler struct {
	Svc    *application.ScheduleService
	Logger *logrus.Logger
}

func NewScheduleHandler(svc *application.ScheduleService, logger *logrus.Logger) *ScheduleHandler {
	return &ScheduleHandler{Svc: svc, Logger: logger}
}

type createScheduleRequest struct {
	TaskID    string `json:"task_id" binding:"required,uuid"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	StartHour int    `json:"start_hour" binding:"min=0,max=23"`
	EndHour   int    `json:"end_hour" binding:"required,min=1,max=24"`
}

func scheduleJSON(s *entity.ScheduledTask) gin.H {
	out := gin.H{
		"id":         s.ID,
		"task_id":    s.TaskID,
		"date":       s.Date,
		"start_time": s.StartTime,
		"end_time":   s.EndTime,
		"created_at": s.CreatedAt,
	}
	// task display fields are only hydrated by the list join
	if s.TaskTitle != "" {
		out["task"] = gin.H{
			"title":            s.TaskTitle,
			"color":            s.TaskColor,
			"category":         s.TaskCategory,
			"duration_minutes": s.TaskDurationMinutes,
		}
	}
	return out
}

// List GET /api/scheduled-tasks?start_date=...&end_date=...
func (h *ScheduleHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	start := c.Query("start_date")
	end := c.Query("end_date")
	if start == "" || end == "" {
		response.Error[any](c, http.StatusBadRequest, "start_date and end_date are required", nil)
		return
	}
	items, err := h.Svc.List(c.Request.Context(), uid, start, end)
	if err != nil {
		if errors.Is(err, application.ErrInvalidDateRange) || errors.Is(err, application.ErrInvalidDate) {
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("list scheduled tasks failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to list scheduled tasks", nil)
		return
	}
	out := make([]gin.H, 0, len(items))
	for i := range items {
		out = append(out, scheduleJSON(&items[i]))
	}
	response.Success(c, http.StatusOK, out, "scheduled tasks", gin.H{"count": len(out)})
}

// Create POST /api/scheduled-tasks
func (h *ScheduleHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	s, err := h.Svc.Create(c.Request.Context(), uid, application.ScheduleInput{
		TaskID:    req.TaskID,
		Date:      req.Date,
		StartHour: req.StartHour,
		EndHour:   req.EndHour,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidTimeRange), errors.Is(err, application.ErrInvalidDate):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, repo.ErrNotFound):
			// unknown task and someone else's task look the same
			response.Error[any](c, http.StatusNotFound, "task not found", nil)
		default:
			h.Logger.WithError(err).Error("create scheduled task failed")
			response.Error[any](c, http.StatusInternalServerError, "failed to schedule task", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, scheduleJSON(s), "task scheduled", nil)
}

// Delete DELETE /api/scheduled-tasks/:id
func (h *ScheduleHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	id, ok := pathID(c)
	if !ok {
		response.Error[any](c, http.StatusNotFound, "scheduled task not found", nil)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), uid, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "scheduled task not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete scheduled task failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to delete scheduled task", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "scheduled task deleted", nil)
}

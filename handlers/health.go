package handlers

import (
	"net/http"

	"attendance_dashboard/attendance"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	store *attendance.Store
}

func NewHealthHandler(store *attendance.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	// Healthy once the attendance list has been loaded at least once
	status := h.store.Status()
	if !status.Loaded {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "Attendance data not loaded",
			"detail": status.LastError,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"attendance_records": status.Records,
		"skipped_records":    status.Skipped,
		"loaded_at":          status.LoadedAt,
		"last_error":         status.LastError,
	})
}

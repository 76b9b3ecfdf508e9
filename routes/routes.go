package routes

import (
	"net/http"

	"attendance_dashboard/attendance"
	"attendance_dashboard/handlers"
	"attendance_dashboard/metrics"
	"attendance_dashboard/middleware"
	"attendance_dashboard/temperature"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, store *attendance.Store, loader *temperature.Loader, m *metrics.Metrics, threshold float64) error {
	tmpl, err := handlers.LoadTemplates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	r.Use(middleware.RequestID())
	if m != nil {
		r.Use(middleware.Metrics(m))
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Initialize handlers
	attendanceHandler := handlers.NewAttendanceHandler(store, threshold)
	temperatureHandler := handlers.NewTemperatureHandler(loader)
	healthHandler := handlers.NewHealthHandler(store)

	r.GET("/health", healthHandler.HealthCheck)

	// Views
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/attendance")
	})
	r.GET("/attendance", attendanceHandler.AttendancePage)
	r.GET("/temperature", temperatureHandler.TemperaturePage)
	r.GET("/temperature/chart.svg", temperatureHandler.GetChart)

	api := r.Group("/api")
	{
		// Attendance routes
		api.GET("/timeslots", attendanceHandler.GetTimeSlots)
		api.GET("/attendance", attendanceHandler.GetAttendances)
		api.GET("/attendance/roster", attendanceHandler.GetRoster)
		api.GET("/attendance/defaulters", attendanceHandler.GetDefaulters)
		api.GET("/attendance/defaulters.csv", attendanceHandler.ExportDefaulters)
		api.POST("/attendance/refresh", attendanceHandler.RefreshAttendances)

		// Temperature routes
		api.GET("/temperature", temperatureHandler.GetSeries)
	}

	return nil
}

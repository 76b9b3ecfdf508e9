package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"attendance_dashboard/attendance"
	"attendance_dashboard/config"
	"attendance_dashboard/metrics"
	"attendance_dashboard/routes"
	"attendance_dashboard/temperature"
	"attendance_dashboard/upstream"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()
	client := upstream.NewClient(
		cfg.AttendanceAPIURL,
		cfg.HealthAPIURL,
		upstream.DefaultHTTPClient(cfg.UpstreamTimeout),
		m,
	)

	store := attendance.NewStore(client)
	loader := temperature.NewLoader(client)
	m.TrackAttendanceRecords(func() int { return store.Status().Records })

	// Load attendance once up front; lookups filter this snapshot
	ctx, cancel := context.WithTimeout(context.Background(), cfg.UpstreamTimeout)
	if _, err := store.Load(ctx); err != nil {
		log.Printf("Warning: initial attendance load failed: %v", err) // Served empty until refreshed
	}
	cancel()

	// Initialize router; requests are logged by middleware.RequestID
	r := gin.New()
	r.Use(gin.Recovery())

	// Setup CORS - read-only dashboard API
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		"X-Request-ID",
	}
	corsConfig.AllowMethods = []string{
		"GET",
		"POST",
	}
	r.Use(cors.New(corsConfig))

	// Setup routes
	if err := routes.SetupRoutes(r, store, loader, m, cfg.DefaulterThreshold); err != nil {
		log.Fatalf("Error setting up routes: %v", err)
	}

	// Run server
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Listening on :%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
}

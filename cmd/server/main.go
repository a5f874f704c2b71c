package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-management-api/internal/config"
	"hospital-management-api/internal/database"
	"hospital-management-api/internal/repository"
	"hospital-management-api/internal/router"
	"hospital-management-api/internal/service"
	"hospital-management-api/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// 1. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Println("Configuration loaded successfully")

	// 2. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Tracing
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.Server.AppName)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}

	// 4. Data source. The database worker keeps retrying the connection and
	// attaches the store once it is up, so health checks answer meanwhile.
	hospitalService := service.NewHospitalService(nil, cfg.Database.QueryTimeout)
	var worker *service.WorkerService
	workerDone := make(chan struct{})
	switch cfg.Database.Source {
	case config.DataSourceFixture:
		log.Println("Serving built-in fixture data")
		hospitalService.SetStore(repository.NewFixtureStore(time.Now()))
		close(workerDone)
	default:
		// 5. Connection and schema bootstrap run in the background
		worker = service.NewWorkerService(cfg, hospitalService, service.DefaultBootstrapRetry)
		go func() {
			defer close(workerDone)
			worker.Start(ctx)
		}()
	}

	// 6. Router
	r := router.NewRouter(cfg, hospitalService)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           otelhttp.NewHandler(r, "http.server"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 7. Setup graceful shutdown
	go func() {
		log.Printf("%s server running on port %s", cfg.Server.AppName, cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Stop the schema worker
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("Tracing shutdown error: %v", err)
	}
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
	}
	if worker != nil {
		database.Close(worker.DB())
	}

	log.Println("Server exited")
}

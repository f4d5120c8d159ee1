package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pressly/goose/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/eventum-app/eventum-api/api/swagger"
	"github.com/eventum-app/eventum-api/internal/handler"
	internalmiddleware "github.com/eventum-app/eventum-api/internal/middleware"
	"github.com/eventum-app/eventum-api/internal/repository"
	"github.com/eventum-app/eventum-api/internal/service"
	"github.com/eventum-app/eventum-api/migrations"
	"github.com/eventum-app/eventum-api/pkg/config"
	"github.com/eventum-app/eventum-api/pkg/database"
	"github.com/eventum-app/eventum-api/pkg/logger"
	corsmiddleware "github.com/eventum-app/eventum-api/pkg/middleware/cors"
	reqidmiddleware "github.com/eventum-app/eventum-api/pkg/middleware/requestid"
)

// @title Eventum API
// @version 1.0.0
// @description Calendar event CRUD with range-overlap queries and day-grid layout
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		logr.Sugar().Fatalw("failed to set migration dialect", "error", err)
	}
	if err := goose.Up(db.DB, "."); err != nil {
		logr.Sugar().Fatalw("failed to apply migrations", "error", err)
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()
	eventRepo := repository.NewEventRepository(db)
	eventSvc := service.NewEventService(eventRepo, validate, logr)
	exportSvc := service.NewExportService(eventSvc, logr)

	eventHandler := handler.NewEventHandler(eventSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	healthHandler := handler.NewHealthHandler(db)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	if cfg.Metrics.Enabled {
		metricsSvc := service.NewMetricsService()
		r.Use(internalmiddleware.Metrics(metricsSvc))
		r.GET("/metrics", handler.NewMetricsHandler(metricsSvc).Scrape)
	}

	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/events", eventHandler.List)
		api.POST("/events", eventHandler.Create)
		api.GET("/events/:id", eventHandler.Get)
		api.PUT("/events/:id", eventHandler.Update)
		api.DELETE("/events/:id", eventHandler.Delete)
		api.GET("/day-grid", eventHandler.DayGrid)
		if cfg.Export.Enabled {
			api.GET("/exports/events", exportHandler.Export)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Sugar().Errorw("server shutdown failed", "error", err)
	}
	logr.Sugar().Infow("server stopped")
}

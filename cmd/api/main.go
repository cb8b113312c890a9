package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"study-deadline-engine/config"
	_ "study-deadline-engine/docs" // Swagger docs
	authUsecase "study-deadline-engine/internal/auth/usecase"
	completionStore "study-deadline-engine/internal/completion/store"
	"study-deadline-engine/internal/deadline/repository/coursestore"
	deadlineUsecase "study-deadline-engine/internal/deadline/usecase"
	"study-deadline-engine/internal/httpserver"
	"study-deadline-engine/internal/middleware"
	"study-deadline-engine/pkg/datemath"
	"study-deadline-engine/pkg/docstore"
	"study-deadline-engine/pkg/googleauth"
	"study-deadline-engine/pkg/log"
	"study-deadline-engine/pkg/scope"
)

// @title       Study Deadline Engine API
// @description Deadline aggregation, prioritization, and completion sync for course tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Study Deadline Engine...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Course store URL: %s", cfg.CourseStore.URL)

	// 3. Shared infrastructure
	dateMathParser, dtErr := datemath.NewParser(cfg.Engine.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Engine.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	sessions, err := scope.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Fatalf(ctx, "Failed to init session manager: %v", err)
	}

	// 4. Deadline domain
	storeClient := docstore.NewClient(cfg.CourseStore.URL, cfg.CourseStore.AccessToken)
	courseRepo := coursestore.New(storeClient, cfg.CourseStore.Collection, logger)

	localStore, err := completionStore.OpenLocalStore(cfg.Completion.DBPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open completion cache: %v", err)
	}
	defer localStore.Close()

	completionFacade := completionStore.New(logger, localStore, completionStore.NewRemoteStore(courseRepo))
	deadlineUC := deadlineUsecase.New(logger, courseRepo, completionFacade, dateMathParser)

	// 5. Auth domain
	googleClient := googleauth.NewClient(cfg.Auth.GoogleClientID, cfg.Auth.GoogleClientSecret)
	authUC := authUsecase.New(logger, googleClient, sessions)

	// 6. HTTP server
	mw := middleware.New(logger, sessions, cfg.HTTPServer.RateLimitPerMin)

	srv, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		DeadlineUseCase: deadlineUC,
		AuthUseCase:     authUC,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to init HTTP server: %v", err)
	}

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutdown signal received")
		os.Exit(0)
	}()

	logger.Infof(ctx, "Listening on :%d", cfg.HTTPServer.Port)
	if err := srv.Run(); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}
}

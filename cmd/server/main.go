package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"leskita/internal/config"
	"leskita/internal/email/noop"
	"leskita/internal/email/ses"
	"leskita/internal/handler"
	"leskita/internal/port"
	"leskita/internal/repository/postgres"
	"leskita/internal/router"
	"leskita/internal/service"
	s3storage "leskita/internal/storage/s3"
)

// @title LesKita API
// @version 1.0
// @description Multi-tenant dashboard backend for private tutoring businesses.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	tenantRepo := postgres.NewTenantRepo(db)
	userRepo := postgres.NewUserRepo(db)
	studentRepo := postgres.NewStudentRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	scheduleRepo := postgres.NewScheduleRepo(db)
	noteRepo := postgres.NewLessonNoteRepo(db)
	materialRepo := postgres.NewMaterialRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, tenantRepo, cfg.JWT)
	tenantSvc := service.NewTenantService(tenantRepo)
	userSvc := service.NewUserService(userRepo)
	studentSvc := service.NewStudentService(studentRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, studentRepo, emailSender)
	scheduleSvc := service.NewScheduleService(scheduleRepo)
	noteSvc := service.NewLessonNoteService(noteRepo)
	materialSvc := service.NewMaterialService(materialRepo, s3Client, &cfg.S3)
	reportSvc := service.NewReportService(paymentRepo, scheduleRepo, studentRepo, cfg.Report)

	// Initialize handlers
	h := router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc, userSvc),
		Tenant:     handler.NewTenantHandler(tenantSvc),
		User:       handler.NewUserHandler(userSvc),
		Student:    handler.NewStudentHandler(studentSvc),
		Payment:    handler.NewPaymentHandler(paymentSvc),
		Schedule:   handler.NewScheduleHandler(scheduleSvc),
		LessonNote: handler.NewLessonNoteHandler(noteSvc),
		Material:   handler.NewMaterialHandler(materialSvc),
		Report:     handler.NewReportHandler(reportSvc),
		Export:     handler.NewExportHandler(paymentSvc, tenantSvc),
		Health:     handler.NewHealthHandler(db),
	}

	r := router.Setup(authSvc, h, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

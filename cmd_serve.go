package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"Mainu/middleware"
	v1 "Mainu/routes/v1"
	"Mainu/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := services.NewSessionService()
	analytics := services.NewLoggingAnalyticsTracker(logger)
	scan, err := newScanService(cfg, sessions, analytics, logger)
	if err != nil {
		return err
	}

	storage := services.NewCaptureStorage(cfg.Capture.Directory)
	var recognizer services.TextRecognizer
	if cfg.Capture.RecognizerCommand != "" {
		recognizer = services.CommandTextRecognizer{Command: cfg.Capture.RecognizerCommand}
	}
	captures := services.NewCaptureService(storage, recognizer, logger)
	defer captures.Close()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.ErrorHandlerMiddleware(logger))

	// CORS Middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	v1.RegisterRoutes(r, v1.Dependencies{
		Scan:       scan,
		Sessions:   sessions,
		Captures:   captures,
		ShareLinks: services.NewMockShareLinkGenerator(cfg.Share.BaseURL, cfg.Share.TTL),
		Analytics:  analytics,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", zap.String("port", cfg.Server.Port), zap.String("backend", cfg.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripplanner/config"
	"tripplanner/database"
	"tripplanner/handlers"
	"tripplanner/services"
)

func main() {
	cfg, cfgErr := config.Load()

	log := newLogger(cfg)
	defer log.Sync()

	if cfgErr != nil {
		log.Fatal("invalid configuration", zap.Error(cfgErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	completer, err := newCompleter(ctx, cfg)
	if err != nil {
		log.Fatal("failed to initialize AI provider", zap.Error(err))
	}
	log.Info("AI provider initialized", zap.String("provider", cfg.AIProvider))

	store, err := database.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer store.Close()

	var maps handlers.RouteFinder
	if cfg.MapsAPIKey != "" {
		directions, err := services.NewDirectionsService(cfg.MapsAPIKey, cfg.DirectionsCacheTTL)
		if err != nil {
			log.Fatal("failed to initialize maps client", zap.Error(err))
		}
		maps = directions
	} else {
		log.Warn("GOOGLE_MAPS_API_KEY not set, /api/directions disabled")
	}

	var mailer services.Mailer
	if cfg.MailEnabled() {
		mailer = services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPassword, cfg.RecipientEmail)
	} else {
		log.Warn("SMTP credentials not set, feedback will be stored but not mailed")
	}

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	h := handlers.New(services.NewPlanner(completer, log), store, maps, mailer, log)
	router := handlers.NewRouter(h, cfg.AllowedOrigins())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("trip planner backend starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}

func newLogger(cfg *config.Config) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if cfg != nil && cfg.GinMode == gin.ReleaseMode {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func newCompleter(ctx context.Context, cfg *config.Config) (services.Completer, error) {
	if cfg.AIProvider == "huggingface" {
		return services.NewHuggingFaceClient(cfg.HFAPIKey, cfg.HFModel, cfg.AITimeout), nil
	}
	return services.NewGeminiClient(ctx, services.GeminiOptions{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: cfg.AITimeout,
	})
}

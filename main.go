package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	
	"github.com/katatrina/feature-dashboard/api"
	"github.com/katatrina/feature-dashboard/internal/event"
	"github.com/katatrina/feature-dashboard/internal/feature"
	"github.com/katatrina/feature-dashboard/internal/notification"
	"github.com/katatrina/feature-dashboard/internal/theme"
	"github.com/katatrina/feature-dashboard/internal/util"
	"github.com/rs/zerolog"
	
	"github.com/rs/zerolog/log"
	
	_ "github.com/katatrina/feature-dashboard/docs"
)

//	@title			Feature Dashboard API
//	@version		1.0.0
//	@description	API documentation for the feature development dashboard

//	@host		localhost:8080
//	@BasePath	/v1
//	@schemes	http https
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	
	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}
	
	level, _ := zerolog.ParseLevel(config.LogLevel)
	zerolog.SetGlobalLevel(level)
	
	log.Info().Msg("configurations loaded successfully ✅")
	
	eventSender := event.NewSSEServer()
	go eventSender.Run()
	defer eventSender.Close()
	
	scheduler, err := notification.NewCronScheduler()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create notification scheduler 😣")
	}
	scheduler.Start()
	defer func() {
		log.Info().Int("pending_jobs", scheduler.Pending()).Msg("stopping notification scheduler")
		if err := scheduler.Shutdown(); err != nil {
			log.Error().Err(err).Msg("failed to shut down notification scheduler")
		}
	}()
	log.Info().Msg("notification scheduler started ✅")
	
	notifications := notification.NewRegistry(
		scheduler,
		notification.WithDefaultDuration(config.NotificationDefaultDuration),
		notification.WithBroadcaster(eventSender),
	)
	
	featureStore := feature.NewSeededStore()
	themeStore := theme.NewStore(theme.Theme(config.DefaultTheme))
	
	runHTTPServer(config, featureStore, notifications, themeStore, eventSender)
}

func runHTTPServer(config util.Config, featureStore *feature.Store, notifications *notification.Registry, themeStore *theme.Store, eventSender event.EventSender) {
	server, err := api.NewServer(config, featureStore, notifications, themeStore, eventSender)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}
	
	httpServer := &http.Server{
		Addr:              config.HTTPServerAddress,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	
	go func() {
		log.Info().Str("address", config.HTTPServerAddress).Msg("HTTP server started ✅")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
		}
	}()
	
	<-ctx.Done()
	log.Info().Msg("shutting down HTTP server")
	
	// Open event streams never go idle, so the wait is bounded.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down HTTP server gracefully")
	}
}

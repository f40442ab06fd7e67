package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"condoYaAdmin/internal/config"
	authinfra "condoYaAdmin/internal/modules/auth/infrastructure"
	authtransport "condoYaAdmin/internal/modules/auth/interface"
	consoleinfra "condoYaAdmin/internal/modules/console/infrastructure"
	consoletransport "condoYaAdmin/internal/modules/console/interface"
	rthandler "condoYaAdmin/internal/modules/realtime/application/handler"
	rtinfra "condoYaAdmin/internal/modules/realtime/infrastructure"
	rttransport "condoYaAdmin/internal/modules/realtime/interface"
	"condoYaAdmin/internal/platform/broker"
	"condoYaAdmin/internal/shared/logging"

	authusecase "condoYaAdmin/internal/modules/auth/application/usecase"
	consoleusecase "condoYaAdmin/internal/modules/console/application/usecase"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))
	slog.Info("backend config resolved", slog.String("baseURL", cfg.Backend.BaseURL), slog.Duration("timeout", cfg.Backend.Timeout))

	// Auth stack: token endpoints, login, refresh-on-401 guard, cookie sessions.
	tokens := authinfra.NewTokenHTTPClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, nil)
	loginUC := authusecase.NewLoginUseCase(tokens)
	guard := authusecase.NewSessionGuard(tokens)
	sessions := authtransport.NewSessionManager(cfg.Session.Secret, cfg.Session.CookieName, cfg.Session.MaxAge, cfg.Session.Secure)

	// Console stack: directory client plus the browse/mutate/report use cases.
	directory := consoleinfra.NewDirectoryHTTPClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, cfg.Backend.BulkPageSize, cfg.Backend.PageCap, nil)
	browseUC := consoleusecase.NewBrowseUseCase(directory)
	mutateUC := consoleusecase.NewMutateUseCase(directory, browseUC)
	reportUC := consoleusecase.NewUsageReportUseCase(directory)

	// Realtime stack: Kafka change events fan out to open browser tabs.
	hub := rtinfra.NewHub()
	registry := rtinfra.NewHandlerRegistry()
	for entity, topics := range cfg.Kafka.Topics {
		for _, topic := range topics {
			registry.Register(rthandler.NewEntityStreamHandler(entity, topic, cfg.Websocket.AllowedActions, hub, browseUC))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Kafka.Enabled {
		broker.StartKafkaConsumers(ctx, registry, cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	}

	renderer, err := consoletransport.NewRenderer()
	if err != nil {
		slog.Error("template setup failed", slog.Any("error", err))
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Logger.SetOutput(log.Writer())
	e.Use(middleware.Recover())

	authtransport.NewAuthHandler(sessions, loginUC).Register(e)
	consoletransport.NewConsoleHandler(sessions, guard, browseUC, mutateUC, reportUC).Register(e)
	e.GET("/ws/notifications", rttransport.NewNotificationsWebsocketHandler(hub, sessions, cfg.Websocket.SendBuffer))

	go func() {
		slog.Info("http server starting", slog.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Warn("http shutdown", slog.Any("error", err))
		e.Close()
	}
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	file, err := logging.OpenDailyFile(cfg.Directory)
	if err != nil {
		return nil, nil, err
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}

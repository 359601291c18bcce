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
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mkravets/storefront/internal/config"
	"github.com/mkravets/storefront/internal/httpserver"
	"github.com/mkravets/storefront/internal/logging"
	authmw "github.com/mkravets/storefront/internal/middleware/auth"
	loggingmw "github.com/mkravets/storefront/internal/middleware/logging"
	"github.com/mkravets/storefront/internal/models"
	"github.com/mkravets/storefront/internal/mykafka"
	"github.com/mkravets/storefront/internal/repo"
	"github.com/mkravets/storefront/internal/service"
	"github.com/mkravets/storefront/pkg/db"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)

	ctx := context.Background()
	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := database.AutoMigrate(models.All()...); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	producer := mykafka.NewProducer(cfg.KafkaBrokers)
	if producer == nil {
		logger.Warn("kafka disabled: no brokers configured")
	}

	r := repo.New(database)

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := &httpserver.Deps{
		AuthHandler:     &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: r, Producer: producer}, JWTSecret: cfg.JWTSecret},
		OrderHandler:    &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: r, Producer: producer}},
		CatalogHandler:  &httpserver.CatalogHTTP{Svc: &service.CatalogService{Repo: r}},
		CustomerHandler: &httpserver.CustomerHTTP{Svc: &service.CustomerService{Repo: r}},
		ProfileHandler:  &httpserver.ProfileHTTP{Svc: &service.ProfileService{Repo: r}},
		WishlistHandler: &httpserver.WishlistHTTP{Svc: &service.WishlistService{Repo: r}},
		AdminHandler: &httpserver.AdminHTTP{
			Catalog:  &service.CatalogService{Repo: r},
			Settings: &service.SettingsService{Repo: r},
		},
		AuthMW: authmw.New(cfg.JWTSecret),
	}
	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()
	logger.Info("server started", "port", cfg.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"stockroom/docs"
	"stockroom/internal/auth"
	"stockroom/internal/cache"
	"stockroom/internal/config"
	"stockroom/internal/handler"
	"stockroom/internal/log"
	"stockroom/internal/router"
	"stockroom/internal/service"
)

// @title Stockroom API
// @version 1.0
// @description User registration and login with JWT, and authenticated product inventory management.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := run(); err != nil {
		fmt.Printf("error running server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	st, err := openStores(cfg, logger)
	if err != nil {
		return err
	}
	defer st.close()

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, logger)
	defer cacheClient.Close()
	if cacheClient == nil {
		logger.Info("REDIS_ADDR not set, token revocation disabled")
	}

	// Initialize auth components
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(st.users, hasher, jwtService, tokenStore)
	userService := service.NewUserService(st.users, hasher)
	productService := service.NewProductService(st.products)

	e := router.New(router.Deps{
		Logger:         logger,
		JWTService:     jwtService,
		TokenStore:     tokenStore,
		AuthHandler:    handler.NewAuthHandler(authService),
		UserHandler:    handler.NewUserHandler(userService),
		ProductHandler: handler.NewProductHandler(productService),
		HealthCheck:    st.ping,
		SwaggerEnabled: cfg.SwaggerEnabled,
	})

	if cfg.SwaggerEnabled {
		if cfg.SwaggerHost != "" {
			docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
		}
		logger.Info("swagger documentation available", slog.String("url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html"))
	}

	addr := ":" + cfg.ServerPort
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting http server", slog.String("addr", addr), slog.String("storage", cfg.Storage))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server start: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

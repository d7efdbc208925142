package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/accadex/accadex/config"
	"github.com/accadex/accadex/internal/container"
	"github.com/accadex/accadex/internal/router"
	"github.com/accadex/accadex/pkg/helpers"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	c, err := container.Build(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("startup failed")
	}
	logger.WithFields(logrus.Fields{
		"db_driver":     cfg.DBDriver,
		"rate_limit":    c.Redis != nil,
		"video_uploads": c.GCS != nil,
		"user_search":   c.ES != nil,
		"welcome_email": c.RabbitPub != nil && cfg.MailSendEnabled,
		"chat_demo":     c.Gemini == nil,
	}).Info("components ready")

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router.New(c)}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.WithError(err).Error("server forced to shutdown")
	}
	if err := c.Close(ctxShutdown); err != nil {
		logger.WithError(err).Warn("closing store")
	}
	logger.Info("server exited properly")
}

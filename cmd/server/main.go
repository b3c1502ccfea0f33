package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"codetext-backend/internal/config"
	"codetext-backend/internal/routes"
	"codetext-backend/internal/store"
	"codetext-backend/internal/workers"
	"codetext-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logCloser := logger.Init(cfg.Log)
	defer logCloser.Close()

	gin.SetMode(cfg.Server.Mode)

	st, err := store.Open(cfg)
	if err != nil {
		logrus.WithError(err).WithField("driver", cfg.Store.Driver).Fatal("Failed to open share store")
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if purger, ok := st.(workers.Purger); ok && cfg.Share.TTL > 0 {
		go workers.NewExpirySweeper(purger, cfg.Store.CleanupInterval).Run(ctx)
	}

	router := routes.Setup(st, cfg, ctx.Done())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logrus.WithField("addr", srv.Addr).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Failed to start server")
			stop()
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
		return
	}

	logrus.Info("Server stopped")
}

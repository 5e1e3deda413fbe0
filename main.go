package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/filmly/internal/config"
	"github.com/example/filmly/internal/store"
	"github.com/example/filmly/internal/token"
)

const apiPrefix = "/api/v1"

type App struct {
	Config *config.Config
	DB     store.DB
	Tokens *token.Service
	logger *logrus.Logger
}

func newLogger(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	l.SetLevel(level)
	return l
}

func newApp(c *config.Config, db store.DB, logger *logrus.Logger) *App {
	return &App{
		Config: c,
		DB:     db,
		Tokens: token.New(c.JwtSecret, c.TokenTTL()),
		logger: logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("write json")
	}
}

func main() {
	c, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
	logger := newLogger(c.Level())

	if c.JwtSecret == config.DefaultJwtSecret {
		logger.Warn("JWT_SECRET is not set; using the development signing key")
	}

	app := newApp(c, store.NewSeededMemoryDB(), logger)
	handler, err := app.routes()
	if err != nil {
		logger.WithError(err).Fatal("routes")
	}

	srv := &http.Server{
		Handler:      handler,
		Addr:         ":" + c.Port,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  time.Minute,
	}

	go func() {
		logger.WithFields(logrus.Fields{"addr": srv.Addr, "env": c.Env}).Info("Filmly API is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	s := <-quit
	logger.WithField("signal", s.String()).Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("shutdown failed")
	}
	logger.Info("server exited properly")
}

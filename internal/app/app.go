package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	server "tablestage/server"
	"tablestage/server/internal/assets"
	servernet "tablestage/server/internal/net"
)

// Config is read once from the environment at startup.
type Config struct {
	Addr           string   `env:"ADDR" envDefault:":8888"`
	StaticDir      string   `env:"STATIC_DIR" envDefault:"static"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
}

func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Run wires the session state, hub, asset store and router together and
// serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := ParseConfig()
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(level)

	store, err := assets.NewStore(cfg.StaticDir, logger)
	if err != nil {
		return err
	}

	state := server.NewSessionState()
	hub := server.NewHub(state, store, logger)

	router := servernet.NewRouter(hub, store, servernet.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         logger,
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	logger.Info().Str("addr", cfg.Addr).Str("static", store.Root()).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

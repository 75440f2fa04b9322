package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"metrodms/auth"
	"metrodms/config"
	"metrodms/crypto"
	"metrodms/db"
	"metrodms/handlers"
	"metrodms/i18n"
	"metrodms/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load("config.json")
	if err != nil {
		log := logger.Init(logger.Options{})
		log.Fatal().Err(err).Msg("loading config")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	if cfg.GeneratedSessionKey {
		log.Warn().Msg("no session_key configured, using a random one; sessions end with the process")
	}

	if err := i18n.LoadTranslations(); err != nil {
		log.Fatal().Err(err).Msg("loading translations")
	}

	store, err := db.InitDB(cfg.DatabasePath, db.DefaultSeeds)
	if err != nil {
		log.Fatal().Err(err).Str("database", cfg.DatabasePath).Msg("initializing credential store")
	}
	defer store.Close()

	keys := crypto.DeriveKeys(cfg.SessionKey)
	server := handlers.NewServer(
		auth.NewGate(store),
		auth.NewSessionStore(keys, cfg.SecureCookies),
		handlers.Options{
			AppName:              cfg.AppName,
			CaptchaAfterFailures: cfg.CaptchaAfterFailures,
			Logger:               log,
		},
	)

	mux := http.NewServeMux()
	server.RegisterHandlers(mux)
	mux.Handle("/metrics", promhttp.Handler())

	handler := handlers.Chain(mux,
		handlers.RequestID,
		handlers.RequestLogger(log),
		handlers.MetricsMiddleware,
		handlers.SecurityHeadersMiddleware,
		handlers.CORSMiddleware,
		handlers.CSRFMiddleware(keys.CSRF, cfg.SecureCookies),
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", srv.Addr).Str("app", cfg.AppName).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"moviecatalog/httpserver"
	"moviecatalog/memory"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/pkg/sentry"

	sentrygo "github.com/getsentry/sentry-go"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalw("cannot init sentry", "error", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	seed, err := memory.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		sentry.Fatal(err)
		log.Fatalw("cannot load seed", "error", err, "file", cfg.SeedFile)
	}
	repo := memory.NewMovieRepository(seed)

	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(log),
		httpserver.WithMovieService(movie.NewUsecase(repo)),
	)
	if err != nil {
		log.Fatalw("cannot create server", "error", err)
	}
	server.Addr = fmt.Sprintf(":%d", cfg.Port)

	go func() {
		log.Infow("server listening", "addr", fmt.Sprintf("http://localhost:%d", cfg.Port), "movies", len(seed))
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sentry.Fatal(err)
			log.Fatalw("server stopped with error", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server shutdown failed", "error", err)
		return
	}
	log.Info("server stopped")
}

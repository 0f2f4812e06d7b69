package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"gigbook/config"
	httpdelivery "gigbook/internal/delivery/http"
	"gigbook/internal/delivery/http/middleware"
	"gigbook/internal/repository/postgres"
	"gigbook/internal/services"
)

const serviceTimeout = 5 * time.Second

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "error", err)
		os.Exit(1)
	}

	venueRepo := postgres.NewVenueRepository(db)
	artistRepo := postgres.NewArtistRepository(db)
	showRepo := postgres.NewShowRepository(db)

	venueSvc := services.NewVenueService(venueRepo, showRepo, time.Now, serviceTimeout)
	artistSvc := services.NewArtistService(artistRepo, showRepo, time.Now, serviceTimeout)
	showSvc := services.NewShowService(showRepo, venueRepo, artistRepo, serviceTimeout)

	flash := httpdelivery.NewFlashCodec(cfg.SecretKey)
	renderer, err := httpdelivery.NewRenderer(logger, flash)
	if err != nil {
		logger.Error("parse templates", "error", err)
		os.Exit(1)
	}

	venueCtrl := httpdelivery.NewVenueController(logger, venueSvc, renderer, flash)
	artistCtrl := httpdelivery.NewArtistController(logger, artistSvc, renderer, flash)
	showCtrl := httpdelivery.NewShowController(logger, showSvc, renderer, flash)

	mux := httpdelivery.NewRouter(renderer, venueCtrl, artistCtrl, showCtrl)
	handler := middleware.RecoverMiddleware(logger, renderer.ServerError,
		middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", server.Addr, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fcja/agendamentos/internal/api/handlers"
	healthzHandler "github.com/fcja/agendamentos/internal/api/handlers/healthz"
	pagesHandler "github.com/fcja/agendamentos/internal/api/handlers/pages"
	recentBookingsHandler "github.com/fcja/agendamentos/internal/api/handlers/recent_bookings"
	submitBookingHandler "github.com/fcja/agendamentos/internal/api/handlers/submit_booking"
	"github.com/fcja/agendamentos/internal/api/middleware"
	"github.com/fcja/agendamentos/internal/config"
	"github.com/fcja/agendamentos/internal/infra/storage/factory"
	authService "github.com/fcja/agendamentos/internal/service/auth"
	bookingsService "github.com/fcja/agendamentos/internal/service/bookings"
	"github.com/fcja/agendamentos/pkg/logger"
	"github.com/fcja/agendamentos/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting agendamentos server...")
	log.Info("Configuration loaded from %s", *configPath)

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	store, err := factory.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to open storage backend: %v", err)
	}
	defer store.Close()

	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelInit()
	if err := store.Init(initCtx); err != nil {
		log.Fatal("Failed to initialize schema: %v", err)
	}

	authSvc := authService.NewService(store, log)
	if err := authSvc.EnsureDefaultAdmin(initCtx); err != nil {
		log.Fatal("Failed to ensure admin account: %v", err)
	}

	bookingSvc := bookingsService.NewService(store, log)

	renderer, err := handlers.NewRenderer(cfg.Server.TemplatesDir)
	if err != nil {
		log.Fatal("Failed to parse templates: %v", err)
	}

	pages := pagesHandler.NewHandler(renderer, log)
	submitBooking := submitBookingHandler.NewHandler(bookingSvc, log)
	recentBookings := recentBookingsHandler.NewHandler(bookingSvc, renderer, log)
	healthz := healthzHandler.NewHandler(store, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/", pages.Index).Methods(http.MethodGet)
	r.HandleFunc("/agendar/{categoria}", pages.BookingForm).Methods(http.MethodGet)
	r.HandleFunc("/agendar/{categoria}", submitBooking.Handle).Methods(http.MethodPost)
	r.HandleFunc("/ultimos", recentBookings.Handle).Methods(http.MethodGet)
	r.HandleFunc("/healthz", healthz.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed: %v", err)
	}

	log.Info("Server stopped")
}

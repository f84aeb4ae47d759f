package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Pratikshinde2410/container-event-processing-engine/internal/anomaly"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/api"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/config"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/engine"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/metrics"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/store"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/ws"
)

func thresholdsFrom(cfg *config.Config) anomaly.Thresholds {
	return anomaly.Thresholds{
		LateArrival:     cfg.Server.Rules.LateArrivalDelay,
		Gap:             cfg.Server.Rules.UnusualGap,
		DuplicateWindow: cfg.Server.Rules.DuplicateWindow,
	}
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	slog.Info("tracking-server starting", "config", *configPath)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	slog.Info("config loaded",
		"http_port", cfg.Server.HTTPPort,
		"retention_ttl", cfg.Server.Retention.TTL,
		"broadcast_interval", cfg.Server.Broadcast.Interval,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Summary store with background TTL eviction.
	st := store.New(cfg.Server.Retention.TTL)
	go st.Run(ctx)

	m := metrics.New(prometheus.DefaultRegisterer, func() float64 {
		return float64(st.Count())
	})

	handler := api.New(engine.New(thresholdsFrom(cfg)), st, m)

	// Watch the config file and swap anomaly thresholds without restart.
	go func() {
		if err := config.Watch(ctx, *configPath, func(updated *config.Config) {
			handler.UpdateThresholds(thresholdsFrom(updated))
		}); err != nil {
			slog.Error("config watcher stopped", "err", err)
		}
	}()

	// WebSocket hub broadcasting live summaries to dashboard clients.
	hub := ws.New(st, cfg.Server.Broadcast.Interval)
	go hub.Run(ctx)

	httpMux := http.NewServeMux()
	httpMux.Handle("/api/", handler)
	httpMux.Handle("/ws/stream", hub)
	httpMux.Handle("/metrics", promhttp.Handler())

	httpSrv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: handlers.RecoveryHandler()(
			handlers.CombinedLoggingHandler(os.Stdout, httpMux),
		),
	}
	go func() {
		slog.Info("HTTP server listening", "port", cfg.Server.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server stopped", "err", err)
		}
	}()

	<-ctx.Done()
	slog.Info("tracking-server shutting down")
	httpSrv.Shutdown(context.Background()) //nolint:errcheck
}

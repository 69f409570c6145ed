package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "net/http/pprof" // Register pprof handlers

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"query-cache-service/internal/core/service"
	"query-cache-service/internal/engine"
	"query-cache-service/internal/strategy"
	"query-cache-service/internal/txn"
)

func main() {
	var (
		httpAddr = flag.String("http_addr", ":8080", "HTTP server address")
		capacity = flag.Int("capacity", 5, "Result cache capacity per strategy")
		delay    = flag.Duration("exec_delay", 150*time.Millisecond, "Base simulated execution latency")
		jitter   = flag.Duration("exec_jitter", 150*time.Millisecond, "Random latency added on top of exec_delay")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	manager := strategy.NewManager(*capacity, logger)
	executor := engine.NewEngine(engine.WithLatency(*delay, *jitter))
	svc := service.New(manager, executor, txn.NewTransactionManager(logger), txn.NewLockManager(logger), logger)

	// HTTP handlers
	http.HandleFunc("/query", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			http.Error(w, "missing q", http.StatusBadRequest)
			return
		}

		res, err := svc.Process(r.Context(), query)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, res)
	})

	http.HandleFunc("/strategy", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			http.Error(w, "missing name", http.StatusBadRequest)
			return
		}

		applied := svc.SetStrategy(name)
		writeJSON(w, map[string]string{"strategy": string(applied)})
	})

	http.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Stats())
	})

	http.HandleFunc("/benchmark", func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.Benchmark(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, report)
	})

	http.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: *httpAddr}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server listening on %s...", *httpAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

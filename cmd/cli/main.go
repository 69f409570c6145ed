package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"query-cache-service/internal/core/service"
	"query-cache-service/internal/engine"
	"query-cache-service/internal/strategy"
	"query-cache-service/internal/txn"
)

const menu = `
====== Database Management System Simulation ======
1. Set Caching Strategy (LIRS, TinyFLU, S3-FIFO)
2. Enter and Process SQL Query
3. Run Benchmark Simulation
4. Show Cache Statistics
5. Exit
=====================================================`

func main() {
	var (
		capacity = flag.Int("capacity", 5, "Result cache capacity per strategy")
		delay    = flag.Duration("exec_delay", 150*time.Millisecond, "Base simulated execution latency")
		jitter   = flag.Duration("exec_jitter", 150*time.Millisecond, "Random latency added on top of exec_delay")
	)
	flag.Parse()

	// Pipeline status lines go to stderr so menu output stays readable.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	manager := strategy.NewManager(*capacity, logger)
	executor := engine.NewEngine(engine.WithLatency(*delay, *jitter))
	svc := service.New(manager, executor, txn.NewTransactionManager(logger), txn.NewLockManager(logger), logger)

	ctx := context.Background()
	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println(menu)
		fmt.Print("Enter your choice: ")
		if !in.Scan() {
			return
		}

		switch strings.TrimSpace(in.Text()) {
		case "1":
			fmt.Print("Enter caching strategy (LIRS/TinyFLU/S3-FIFO): ")
			if !in.Scan() {
				return
			}
			applied := svc.SetStrategy(in.Text())
			fmt.Printf("Caching strategy set to %s.\n", applied)

		case "2":
			fmt.Print("Enter SQL query: ")
			if !in.Scan() {
				return
			}
			res, err := svc.Process(ctx, in.Text())
			if err != nil {
				fmt.Printf("Query failed: %v\n", err)
				continue
			}
			if res.Hit {
				fmt.Println("Cache hit!")
			} else {
				fmt.Println("Cache miss! Query executed.")
			}
			fmt.Printf("Query Result: %s\n", res.Value)

		case "3":
			fmt.Println("Running benchmark...")
			report, err := svc.Benchmark(ctx)
			if err != nil {
				fmt.Printf("Benchmark failed: %v\n", err)
				continue
			}
			fmt.Printf("Benchmark completed in %s (%d hits, %d misses).\n",
				report.Elapsed, report.Hits, report.Misses)

		case "4":
			stats := svc.Stats()
			fmt.Printf("Cache Hits: %d\n", stats.Hits)
			fmt.Printf("Cache Misses: %d\n", stats.Misses)
			fmt.Printf("Current Cache Size: %d\n", stats.Size)
			fmt.Println("Cached Queries:")
			for _, key := range stats.Keys {
				fmt.Printf(" - %s\n", key)
			}

		case "5":
			fmt.Println("Exiting simulation. Goodbye!")
			return

		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

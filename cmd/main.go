package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"github.com/prometheus/client_golang/prometheus"
	"nextdraw/internal/config"
	"nextdraw/internal/handlers"
	"nextdraw/internal/metrics"
	"nextdraw/internal/services"
)

type query struct {
	from string
	zone string
}

func main() {
	var (
		from     = flag.String("from", "", "reference time, YYYY-MM-DD HH:MM:SS (default now)")
		zone     = flag.String("tz", "", "timezone to report the draw in")
		schedule = flag.Bool("schedule", false, "print the three-week draw schedule as JSON")
		serve    = flag.Bool("serve", false, "run the HTTP server")
		queries  []query
	)
	flag.Func("q", `extra query "FROM|ZONE"; may be repeated`, func(v string) error {
		f, z, _ := strings.Cut(v, "|")
		queries = append(queries, query{from: strings.TrimSpace(f), zone: strings.TrimSpace(z)})
		return nil
	})
	flag.Parse()

	// 1. Initialize logging, then load configuration
	dotEnvErr := config.LoadDotEnv()
	verbose, logFile := logTargets(*serve, config.Verbose())
	defer logger.Init("nextdraw", verbose, false, logFile).Close()
	if dotEnvErr != nil {
		logger.Warningf("config: could not read .env: %v", dotEnvErr)
	}

	cfg := config.Load()
	if err := config.Validate(cfg); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Initialize the Lottery Service
	lotteryService, err := services.NewLotteryService(cfg)
	if err != nil {
		logger.Fatalf("Failed to create lottery service: %v", err)
	}

	if *serve {
		runServer(cfg, lotteryService)
		return
	}

	if *schedule {
		sched, err := lotteryService.Schedule(*from)
		if err != nil {
			logger.Fatalf("Failed to build schedule: %v", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sched); err != nil {
			logger.Fatalf("Failed to write schedule: %v", err)
		}
		return
	}

	if len(queries) == 0 {
		queries = append(queries, query{from: *from, zone: *zone})
	}

	if failed := runQueries(os.Stdout, lotteryService, queries); failed > 0 {
		os.Exit(1)
	}
}

// logTargets picks the google/logger verbosity and log file. Errors always
// reach stderr through the library itself, so the file is never stderr.
// Verbose copies INFO and WARNING to stdout, which only the server allows;
// CLI stdout carries result lines alone.
func logTargets(serve, verbose bool) (bool, io.Writer) {
	return serve && verbose, io.Discard
}

// runQueries answers each query on w, one line per success. A failure is
// logged and the remaining queries still run. It returns the failure count.
func runQueries(w io.Writer, lotteryService *services.LotteryService, queries []query) int {
	failed := 0
	for _, q := range queries {
		line, err := lotteryService.GetNextDrawDay(q.from, q.zone)
		if err != nil {
			logger.Errorf("Query from=%q tz=%q failed: %v", q.from, q.zone, err)
			failed++
			continue
		}
		fmt.Fprintln(w, line)
	}
	return failed
}

func runServer(cfg config.Config, lotteryService *services.LotteryService) {
	gin.SetMode(cfg.GinMode)

	// 3. Initialize metrics and the HTTP Handler
	reg := prometheus.NewRegistry()
	httpHandler := handlers.NewHTTPHandler(lotteryService, metrics.NewPrometheusSink(reg), reg)

	// 4. Set up the Gin router
	r := gin.Default()
	httpHandler.RegisterRoutes(r)

	// 5. Run the server
	logger.Infof("Server starting on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatalf("Failed to run server: %v", err)
	}
}

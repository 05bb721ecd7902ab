// Package main is the entry point for the craftprofit analyzer.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/goblinomics/craftprofit/business/catalog"
	catalogDomain "github.com/goblinomics/craftprofit/business/catalog/domain"
	"github.com/goblinomics/craftprofit/business/market"
	marketDI "github.com/goblinomics/craftprofit/business/market/di"
	"github.com/goblinomics/craftprofit/business/profit"
	profitApp "github.com/goblinomics/craftprofit/business/profit/app"
	profitDI "github.com/goblinomics/craftprofit/business/profit/di"
	"github.com/goblinomics/craftprofit/internal/apm"
	"github.com/goblinomics/craftprofit/internal/config"
	"github.com/goblinomics/craftprofit/internal/health"
	"github.com/goblinomics/craftprofit/internal/logger"
	"github.com/goblinomics/craftprofit/internal/metrics"
	"github.com/goblinomics/craftprofit/internal/monolith"
	"github.com/goblinomics/craftprofit/internal/server"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Path to configuration file")
	itemFlag := flag.String("item", "", "Item to analyze: numeric id or display name")
	quantity := flag.Int64("quantity", 1, "How many to craft")
	realmFlag := flag.String("realm", "", "Connected realm: numeric id or slug (overrides config)")
	professionsFlag := flag.String("professions", "", "Comma-separated known professions (overrides config)")
	inventoryPath := flag.String("inventory", "", "Path to a JSON file of on-hand stock (item id to count)")
	serve := flag.Bool("serve", false, "Run the HTTP API instead of a one-shot analysis")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("craftprofit %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(os.Stderr, "received shutdown signal: %v\n", sig)
		cancel()
	}()

	opts := runOptions{
		configPath:    *configPath,
		item:          *itemFlag,
		quantity:      *quantity,
		realm:         *realmFlag,
		professions:   *professionsFlag,
		inventoryPath: *inventoryPath,
		serve:         *serve,
	}
	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type runOptions struct {
	configPath    string
	item          string
	quantity      int64
	realm         string
	professions   string
	inventoryPath string
	serve         bool
}

func run(ctx context.Context, opts runOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(os.Stderr, logger.ParseLevel(cfg.App.LogLevel), cfg.App.Name, nil)
	log.Info(ctx, "starting craftprofit",
		"version", version,
		"environment", cfg.App.Environment,
	)

	var traceProvider apm.TraceProvider
	if cfg.Telemetry.Enabled {
		if cfg.Telemetry.ServiceName != "" {
			os.Setenv("OTEL_SERVICE_NAME", cfg.Telemetry.ServiceName)
		}
		if cfg.Telemetry.OTLPEndpoint != "" {
			os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Telemetry.OTLPEndpoint)
		}

		traceProvider = apm.NewTraceProvider(log, apm.WithProvider(apm.OTLPProvider, log))
		log.Info(ctx, "tracing initialized", "endpoint", cfg.Telemetry.OTLPEndpoint)

		metrics.NewMetricProvider(
			metrics.WithServiceName(cfg.Telemetry.ServiceName),
			metrics.WithProviderConfig(metrics.ProviderCfg{
				Provider: metrics.PrometheusProvider,
			}),
		)

		port := cfg.Telemetry.PrometheusPort
		if port == 0 {
			port = 9090
		}
		go metrics.ServePrometheusMetrics(metrics.WithPort(strconv.Itoa(port)))
		log.Info(ctx, "prometheus metrics server started", "port", port)
	}
	defer func() {
		if traceProvider != nil {
			traceProvider.Stop()
		}
	}()

	mono, err := monolith.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create monolith: %w", err)
	}
	defer mono.Close()

	marketModule := &market.Module{}
	modules := []monolith.Module{
		&catalog.Module{}, // must be first - provides the API client
		marketModule,      // depends on catalog for the client
		&profit.Module{},  // depends on catalog and market
	}
	defer marketModule.Close()

	if err := mono.RegisterModules(modules...); err != nil {
		return fmt.Errorf("failed to register modules: %w", err)
	}
	if err := mono.StartModules(ctx, modules...); err != nil {
		return fmt.Errorf("failed to start modules: %w", err)
	}

	analyzer := profitDI.GetAnalyzer(mono.Services())

	if opts.serve {
		return runServer(ctx, cfg, analyzer, mono, log)
	}
	return runAnalysis(ctx, cfg, analyzer, opts)
}

func runServer(ctx context.Context, cfg *config.Config, analyzer *profitApp.Analyzer, mono monolith.Monolith, log *logger.Logger) error {
	healthServer := health.NewServer(cfg.Server.Port+1, version)
	healthServer.RegisterCheck("cache", func(ctx context.Context) (bool, string) {
		return true, fmt.Sprintf("%d entries", mono.Cache().ItemCount())
	})
	if err := healthServer.Start(); err != nil {
		log.Warn(ctx, "failed to start health server", "error", err)
	}
	defer healthServer.Stop(ctx)

	srv := server.New(
		cfg.Server.Port,
		cfg.API.Region,
		analyzer,
		marketDI.GetMarketService(mono.Services()),
		log,
	)

	go func() {
		<-ctx.Done()
		log.Info(context.Background(), "shutting down api server")
		if err := srv.Stop(context.Background()); err != nil {
			log.Error(context.Background(), "shutdown failed", "error", err)
		}
	}()

	return srv.Start()
}

func runAnalysis(ctx context.Context, cfg *config.Config, analyzer *profitApp.Analyzer, opts runOptions) error {
	if opts.item == "" {
		return fmt.Errorf("an item is required: -item <id or name>")
	}

	realm := cfg.Analysis.Realm
	if opts.realm != "" {
		realm = opts.realm
	}
	if realm == "" {
		return fmt.Errorf("a realm is required: -realm <id or slug>")
	}

	professions := cfg.Analysis.Professions
	if opts.professions != "" {
		professions = strings.Split(opts.professions, ",")
		for i := range professions {
			professions[i] = strings.TrimSpace(professions[i])
		}
	}

	inventory, err := loadInventory(opts.inventoryPath)
	if err != nil {
		return err
	}

	result, err := analyzer.Run(ctx, profitApp.RunParams{
		Region:      cfg.API.Region,
		Realm:       catalogDomain.ParseRealmRef(realm),
		Professions: professions,
		Item:        catalogDomain.ParseItemRef(opts.item),
		Quantity:    opts.quantity,
		Inventory:   inventory,
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Report)
	return nil
}

// loadInventory reads a JSON object of item id to on-hand count.
func loadInventory(path string) (map[int64]int64, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file: %w", err)
	}

	byKey := make(map[string]int64)
	if err := json.Unmarshal(raw, &byKey); err != nil {
		return nil, fmt.Errorf("failed to parse inventory file: %w", err)
	}

	inventory := make(map[int64]int64, len(byKey))
	for key, count := range byKey {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("inventory key %q is not an item id", key)
		}
		inventory[id] = count
	}
	return inventory, nil
}

// Command unitstream runs the unit normalization pipeline: a NATS-fed
// normalizer that rewrites measurements into canonical units, an HTTP API
// for conversion, parsing and arithmetic, and a Prometheus metrics endpoint.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/c360/unitstream/component"
	"github.com/c360/unitstream/config"
	"github.com/c360/unitstream/gateway"
	"github.com/c360/unitstream/metric"
	"github.com/c360/unitstream/natsclient"
	"github.com/c360/unitstream/processor/normalize"
	"github.com/c360/unitstream/service"
	"github.com/c360/unitstream/units"
	"github.com/c360/unitstream/units/catalog"
)

const appName = "unitstream"

// Set at build time via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run() error {
	cli := parseFlags()

	if cli.ShowHelp {
		printDetailedHelp()
		return nil
	}
	if cli.ShowVersion {
		fmt.Printf("%s %s (built %s)\n", appName, Version, BuildTime)
		return nil
	}
	if err := validateFlags(cli); err != nil {
		return err
	}

	logger := setupLogger(cli)
	slog.SetDefault(logger)

	cfg, err := config.LoadOrDefault(cli.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if cli.Validate {
		fmt.Printf("configuration valid (platform %s/%s)\n", cfg.Platform.Org, cfg.Platform.ID)
		return nil
	}

	logger.Info("Starting unitstream",
		"version", Version,
		"config", cli.ConfigPath,
		"nats_url", cfg.NATS.URL,
		"http_addr", cfg.HTTP.Addr,
		"metrics_port", cfg.HTTP.MetricsPort)

	registry := metric.NewMetricsRegistry()

	natsClient, err := buildNATSClient(cfg, registry, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	err = natsClient.Connect(connectCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to NATS at %s: %w", cfg.NATS.URL, err)
	}

	metricsServer := metric.NewServer(cfg.HTTP.MetricsPort, "/metrics", registry)
	if err := metricsServer.Start(); err != nil {
		return fmt.Errorf("starting metrics server: %w", err)
	}
	defer func() {
		if err := metricsServer.Stop(); err != nil {
			logger.Error("Metrics server shutdown failed", "error", err)
		}
	}()

	unitReg := catalog.Default()
	deps := component.Dependencies{
		NATSClient:      natsClient,
		MetricsRegistry: registry,
		Logger:          logger,
	}

	manager := service.NewManager(logger)
	if err := registerComponents(manager, cfg, unitReg, deps, metricsServer); err != nil {
		return err
	}

	if err := manager.StartAll(ctx); err != nil {
		return fmt.Errorf("starting components: %w", err)
	}
	logger.Info("All components started", "components", len(manager.Components()))

	<-ctx.Done()
	logger.Info("Shutdown signal received", "timeout", cli.ShutdownTimeout)

	var shutdownErr error
	if err := manager.StopAll(cli.ShutdownTimeout); err != nil {
		shutdownErr = err
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := natsClient.Close(closeCtx); err != nil {
		logger.Error("NATS close failed", "error", err)
	}

	if shutdownErr != nil {
		return fmt.Errorf("shutdown incomplete: %w", shutdownErr)
	}
	logger.Info("Shutdown complete")
	return nil
}

func buildNATSClient(cfg *config.Config, registry *metric.MetricsRegistry, logger *slog.Logger) (*natsclient.Client, error) {
	opts := []natsclient.ClientOption{
		natsclient.WithName(appName + "-" + cfg.Platform.InstanceID),
		natsclient.WithMaxReconnects(cfg.NATS.MaxReconnects),
		natsclient.WithMetrics(registry),
		natsclient.WithLogger(slogAdapter{logger.With("component", "nats-client")}),
	}
	if cfg.NATS.ReconnectWait.Std() > 0 {
		opts = append(opts, natsclient.WithReconnectWait(cfg.NATS.ReconnectWait.Std()))
	}
	if cfg.NATS.Username != "" {
		opts = append(opts, natsclient.WithCredentials(cfg.NATS.Username, cfg.NATS.Password))
	}
	if cfg.NATS.Token != "" {
		opts = append(opts, natsclient.WithToken(cfg.NATS.Token))
	}

	client, err := natsclient.NewClient(cfg.NATS.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating NATS client: %w", err)
	}
	return client, nil
}

func registerComponents(manager *service.Manager, cfg *config.Config, unitReg *units.Registry, deps component.Dependencies, metricsServer *metric.Server) error {
	if cfg.Normalizer.Enabled {
		proc, err := normalize.NewProcessor(normalize.Config{
			InputSubjects: cfg.Normalizer.InputSubjects,
			OutputSubject: cfg.Normalizer.OutputSubject,
			Targets:       cfg.Normalizer.Targets,
		}, unitReg, deps)
		if err != nil {
			return fmt.Errorf("creating normalizer: %w", err)
		}
		manager.Add(proc)
	}

	gwCfg := gateway.DefaultConfig()
	gwCfg.Addr = cfg.HTTP.Addr
	gwCfg.ReadTimeout = cfg.HTTP.ReadTimeout.Std()
	gwCfg.WriteTimeout = cfg.HTTP.WriteTimeout.Std()
	gwCfg.RateLimitRPS = cfg.HTTP.RateLimitRPS
	gwCfg.RateLimitBurst = cfg.HTTP.RateLimitBurst
	if cfg.Normalizer.Enabled {
		gwCfg.StreamSubject = cfg.Normalizer.OutputSubject
	}

	gw, err := gateway.NewGateway(gwCfg, unitReg, deps)
	if err != nil {
		return fmt.Errorf("creating gateway: %w", err)
	}
	gw.MountMetrics(metricsServer)
	manager.Add(gw)
	return nil
}

// slogAdapter bridges slog to the natsclient Logger interface.
type slogAdapter struct {
	l *slog.Logger
}

func (a slogAdapter) Printf(format string, v ...any) { a.l.Info(fmt.Sprintf(format, v...)) }
func (a slogAdapter) Errorf(format string, v ...any) { a.l.Error(fmt.Sprintf(format, v...)) }
func (a slogAdapter) Debugf(format string, v ...any) { a.l.Debug(fmt.Sprintf(format, v...)) }

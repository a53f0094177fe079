package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// CLIConfig holds command-line options. Every flag has an UNITSTREAM_*
// environment variable fallback so deployments can avoid long argv lines.
type CLIConfig struct {
	ConfigPath      string
	LogLevel        string
	LogFormat       string
	Debug           bool
	ShutdownTimeout time.Duration
	ShowVersion     bool
	ShowHelp        bool
	Validate        bool
}

func parseFlags() *CLIConfig {
	cli := &CLIConfig{}

	flag.StringVar(&cli.ConfigPath, "config", getEnv("UNITSTREAM_CONFIG", ""),
		"Path to configuration file (JSON or YAML)")
	flag.StringVar(&cli.LogLevel, "log-level", getEnv("UNITSTREAM_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error")
	flag.StringVar(&cli.LogFormat, "log-format", getEnv("UNITSTREAM_LOG_FORMAT", "json"),
		"Log format: json or text")
	flag.BoolVar(&cli.Debug, "debug", getEnvBool("UNITSTREAM_DEBUG", false),
		"Enable debug logging with source locations")
	flag.DurationVar(&cli.ShutdownTimeout, "shutdown-timeout",
		getEnvDuration("UNITSTREAM_SHUTDOWN_TIMEOUT", 30*time.Second),
		"Maximum time to wait for graceful shutdown")
	flag.BoolVar(&cli.ShowVersion, "version", false, "Print version and exit")
	flag.BoolVar(&cli.Validate, "validate", false, "Validate configuration and exit")
	flag.BoolVar(&cli.ShowHelp, "help", false, "Show detailed help")

	flag.Parse()
	return cli
}

func validateFlags(cli *CLIConfig) error {
	switch cli.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (want debug, info, warn or error)", cli.LogLevel)
	}
	switch cli.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q (want json or text)", cli.LogFormat)
	}
	if cli.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", cli.ShutdownTimeout)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func printDetailedHelp() {
	fmt.Printf(`%s %s - unit normalization pipeline

USAGE:
  unitstream [flags]

FLAGS:
  --config PATH             Configuration file, JSON or YAML (UNITSTREAM_CONFIG)
  --log-level LEVEL         debug, info, warn, error (UNITSTREAM_LOG_LEVEL, default info)
  --log-format FORMAT       json or text (UNITSTREAM_LOG_FORMAT, default json)
  --debug                   Debug logging with source locations (UNITSTREAM_DEBUG)
  --shutdown-timeout DUR    Graceful shutdown budget (UNITSTREAM_SHUTDOWN_TIMEOUT, default 30s)
  --validate                Validate configuration and exit
  --version                 Print version and exit
  --help                    Show this help

Without --config the built-in defaults are used: NATS at nats://localhost:4222,
the HTTP API on :8080 and Prometheus metrics on :9090.
`, appName, Version)
}

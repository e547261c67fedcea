package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/2beens/gymload/internal"
	"github.com/2beens/gymload/internal/config"
	"github.com/2beens/gymload/internal/logging"

	log "github.com/sirupsen/logrus"
)

// version is set at build time with -ldflags "-X main.version=...".
var version string

type secrets struct {
	postgresUser     string
	postgresPassword string
	redisPassword    string
	sentryDSN        string
}

func secretsFromEnv() secrets {
	s := secrets{
		postgresUser:     os.Getenv("GYMLOAD_POSTGRES_USER"),
		postgresPassword: os.Getenv("GYMLOAD_POSTGRES_PASS"),
		redisPassword:    os.Getenv("GYMLOAD_REDIS_PASS"),
		sentryDSN:        os.Getenv("SENTRY_DSN"),
	}
	if s.postgresPassword == "" {
		log.Warnln("postgres password not set, use GYMLOAD_POSTGRES_PASS")
	}
	if s.redisPassword == "" {
		log.Warnln("redis password not set, use GYMLOAD_REDIS_PASS")
	}
	return s
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	printVersion := flag.Bool("version", false, "print the service version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(resolveVersion())
		return
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %s\n", err)
		os.Exit(1)
	}

	sec := secretsFromEnv()
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled && sec.sentryDSN != "",
		SentryDSN:        sec.sentryDSN,
		SentryServerName: "gymload-service",
	})

	versionInfo := resolveVersion()
	log.WithFields(log.Fields{
		"env":           cfg.Environment,
		"port":          cfg.Port,
		"version":       versionInfo,
		"cache_backend": cfg.Analysis.CacheBackend,
	}).Info("starting gymload service")

	honeycombEnabled := cfg.HoneycombEnabled || os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled && os.Getenv("HONEYCOMB_API_KEY") == "" {
		log.Warnln("honeycomb tracing enabled but HONEYCOMB_API_KEY is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := internal.NewServer(ctx, internal.NewServerParams{
		Config:                  cfg,
		PostgresUser:            sec.postgresUser,
		PostgresPassword:        sec.postgresPassword,
		RedisPassword:           sec.redisPassword,
		VersionInfo:             versionInfo,
		HoneycombTracingEnabled: honeycombEnabled,
	})
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	<-ctx.Done()
	log.Warnln("shutdown signal received, draining ...")
	server.GracefulShutdown()
}

// resolveVersion prefers the build time version and falls back to the
// commit hash of a checkout the binary runs from.
func resolveVersion() string {
	if version != "" {
		return version
	}
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		log.Tracef("no version info: %s", err)
		return ""
	}
	return strings.TrimSpace(string(out))
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/ytgebes/biospace/pkg/config"
	"github.com/ytgebes/biospace/pkg/content"
	"github.com/ytgebes/biospace/pkg/dashboard"
	"github.com/ytgebes/biospace/pkg/dataset"
	"github.com/ytgebes/biospace/pkg/llm"
	"github.com/ytgebes/biospace/pkg/session"
	"github.com/ytgebes/biospace/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	Data   string `long:"data" env:"DATA" description:"publications CSV file, overrides config"`
	APIKey string `long:"api-key" env:"GEMINI_API_KEY" description:"model API key, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	SetupLog(opts.Debug, opts.APIKey)

	log.Printf("[INFO] starting biospace version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and serves until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.LLM.APIKey != opts.APIKey {
		// key came from the config file, keep it out of the logs as well
		SetupLog(opts.Debug, cfg.LLM.APIKey)
	}

	table, err := dataset.NewLoader(cfg.Dataset.RequiredColumns...).Load(cfg.Dataset.Path)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	log.Printf("[INFO] loaded %d publications from %s", table.Len(), cfg.Dataset.Path)

	extraction := cfg.GetExtractionConfig()
	fetcher := content.NewFetcher(content.Options{
		Timeout:      extraction.Timeout,
		UserAgent:    extraction.UserAgent,
		MaxChars:     extraction.MaxChars,
		MaxBodyBytes: extraction.MaxBodyBytes,
		Mode:         extraction.Mode,
		CacheSize:    cfg.Cache.MaxKeys,
		CacheTTL:     cfg.Cache.TTL,
	})
	defer func() { log.Printf("[DEBUG] fetch cache stats: %+v", fetcher.Stat()) }()
	assistant := llm.NewAssistant(cfg.GetLLMConfig())

	store, err := session.New(ctx, session.Config{DSN: cfg.Session.DSN})
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("[WARN] failed to close session store: %v", err)
		}
	}()

	janitor := session.NewJanitor(store, cfg.Session.TTL, cfg.Session.CleanupInterval)
	janitor.Start(ctx)
	defer janitor.Stop()

	svc := dashboard.New(table, fetcher, assistant, store, dashboard.Options{
		SearchLimit:     cfg.Search.Limit,
		ChatContextSize: cfg.LLM.ChatContextSize,
		MaxConcurrent:   cfg.LLM.MaxConcurrent,
	})

	srv, err := server.New(cfg, svc, revision, opts.Debug)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	log.Printf("[INFO] dashboard available at %s", cfg.Server.BaseURL)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// loadConfig reads the config file and applies command line overrides before validation
func loadConfig(opts Opts) (*config.Config, error) {
	cfg, err := config.Parse(opts.Config)
	if err != nil {
		return nil, err
	}

	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.Data != "" {
		cfg.Dataset.Path = opts.Data
	}
	if opts.APIKey != "" {
		cfg.LLM.APIKey = opts.APIKey
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// SetupLog configures the global and standard loggers, secrets are masked in the output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	secrets := make([]string, 0, len(secs))
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

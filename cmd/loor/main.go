// Package main provides the Loor.tv funding automator CLI.
// It logs in with credentials from the environment, claims the daily LOOT
// reward, and funds the shows listed in the YAML config, in one sequential
// browser session.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Gagege/loor-automator/pkg/browser"
	"github.com/Gagege/loor-automator/pkg/config"
	"github.com/Gagege/loor-automator/pkg/logging"
	"github.com/Gagege/loor-automator/pkg/loor"
)

const version = "0.1.0"

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	SecretsPath string
	BaseURL     string
	Debug       bool
	DryRun      bool
	ClaimOnly   bool
	Timeout     time.Duration
	ShowVersion bool
}

func main() {
	cfg := parseFlags()

	if cfg.ShowVersion {
		fmt.Printf("loor-automator v%s\n", version)
		return
	}

	// Create context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nshutting down...")
		cancel()
	}()

	logger := logging.New(os.Stdout, "loor", cfg.Debug)
	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf("run failed: %v", err)
		os.Exit(1)
	}
}

// parseFlags parses command line flags
func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	flag.StringVar(&cfg.ConfigPath, "config", "config.yml", "Path to the YAML target list")
	flag.StringVar(&cfg.SecretsPath, "secrets", ".secrets", "Path to the env file holding credentials")
	flag.StringVar(&cfg.BaseURL, "base-url", loor.DefaultBaseURL, "Site root URL")
	flag.BoolVar(&cfg.Debug, "debug", false, "Debug mode: visible browser and screenshots")
	flag.BoolVar(&cfg.DryRun, "dryrun", false, "Simulate funding and claiming without committing actions")
	flag.BoolVar(&cfg.ClaimOnly, "claim-only", false, "Claim the daily LOOT and exit without funding")
	flag.DurationVar(&cfg.Timeout, "timeout", 0, "Per-action wait budget override (e.g. 10s)")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Loor.tv Funding Automator\n\n")
		fmt.Fprintf(os.Stderr, "Usage: loor [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  LOOR_EMAIL     account email (also read from the secrets file)\n")
		fmt.Fprintf(os.Stderr, "  LOOR_PASSWORD  account password\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Fund everything in config.yml after claiming the daily reward\n")
		fmt.Fprintf(os.Stderr, "  loor\n\n")
		fmt.Fprintf(os.Stderr, "  # See what a run would do without spending LOOT\n")
		fmt.Fprintf(os.Stderr, "  loor -dryrun\n\n")
		fmt.Fprintf(os.Stderr, "  # Claim only, with a visible browser\n")
		fmt.Fprintf(os.Stderr, "  loor -claim-only -debug\n\n")
	}

	flag.Parse()
	return cfg
}

// run executes one automator pass: login, claim, fund.
func run(ctx context.Context, cfg *CLIConfig, logger *logging.Logger) error {
	// Credentials come from the secrets file or the environment
	if err := godotenv.Load(cfg.SecretsPath); err != nil && !os.IsNotExist(err) {
		logger.Warnf("loading %s: %v", cfg.SecretsPath, err)
	}
	creds := loor.Credentials{
		Email:    os.Getenv("LOOR_EMAIL"),
		Password: os.Getenv("LOOR_PASSWORD"),
	}
	if creds.Email == "" || creds.Password == "" {
		return fmt.Errorf("%w: LOOR_EMAIL and LOOR_PASSWORD must be set", config.ErrConfig)
	}

	// The target list is only needed for funding runs
	var targets *config.Config
	if !cfg.ClaimOnly {
		var err error
		targets, err = config.Load(cfg.ConfigPath)
		if err != nil {
			return err
		}
		logger.Infof("loaded %d funding targets (%d LOOT requested)",
			len(targets.Media), targets.TotalRequested())
	}

	manager := browser.NewManager()
	if err := manager.Initialize(); err != nil {
		return err
	}
	defer func() {
		if err := manager.Shutdown(); err != nil {
			logger.Warnf("browser shutdown: %v", err)
		}
	}()

	session, err := manager.Start(browser.SessionOptions{
		Headless: !cfg.Debug,
	})
	if err != nil {
		return err
	}

	var timeoutMs float64
	if cfg.Timeout > 0 {
		timeoutMs = float64(cfg.Timeout.Milliseconds())
	}

	client := loor.NewClient(session, logger.WithComponent("driver"), loor.Options{
		BaseURL: cfg.BaseURL,
		Debug:   cfg.Debug,
		DryRun:  cfg.DryRun,
		Timeout: timeoutMs,
	})

	if cfg.DryRun {
		logger.Infof("dry-run mode: no state-changing clicks will be performed")
	}

	if err := client.Login(creds); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// A failed claim is logged but never blocks funding
	if err := client.ClaimLoot(); err != nil {
		logger.Errorf("claiming daily LOOT: %v", err)
	}

	if cfg.ClaimOnly {
		logger.Infof("claim-only run complete")
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return client.FundAll(targets.Media)
}

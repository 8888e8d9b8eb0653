package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jessevdk/go-flags"

	"github.com/wootools/wooadmin/pkg/audit"
	"github.com/wootools/wooadmin/pkg/bot"
	"github.com/wootools/wooadmin/pkg/config"
	"github.com/wootools/wooadmin/pkg/monitor"
	"github.com/wootools/wooadmin/pkg/settings"
	"github.com/wootools/wooadmin/pkg/store"
	"github.com/wootools/wooadmin/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
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

	cfg, err := config.Load(opts.Config)
	if err != nil {
		lgr.Printf("[ERROR] can't load config %s: %v", opts.Config, err)
		os.Exit(1)
	}

	setupLog(opts.Debug, opts.NoColor, cfg.Telegram.Token, cfg.Store.Key, cfg.Store.Secret)

	lgr.Printf("[INFO] starting wooadmin version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, debug bool) error {
	settingsStore, err := settings.NewStore(cfg.SettingsFile)
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}

	auditLog, err := audit.Open(ctx, cfg.Audit.DSN)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer func() {
		if cerr := auditLog.Close(); cerr != nil {
			lgr.Printf("[WARN] audit log close failed: %v", cerr)
		}
	}()

	client := store.NewClient(store.Config{
		URL:      cfg.Store.URL,
		Key:      cfg.Store.Key,
		Secret:   cfg.Store.Secret,
		Timeout:  cfg.Store.Timeout,
		PageSize: cfg.Store.PageSize,
	})

	// connectivity probe, a failure is reported but not fatal
	if products, perr := client.Products(ctx); perr != nil {
		lgr.Printf("[WARN] store connectivity check failed: %v", perr)
	} else {
		lgr.Printf("[INFO] store connection ok, %d products visible", len(products))
	}

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return fmt.Errorf("telegram authorization: %w", err)
	}
	api.Debug = debug
	lgr.Printf("[INFO] authorized on telegram account %s", api.Self.UserName)

	tgBot := bot.New(bot.Params{
		API:         api,
		Store:       client,
		Settings:    settingsStore,
		Audit:       auditLog,
		AdminIDs:    cfg.Telegram.AdminIDs,
		AlertChatID: cfg.Telegram.ChatID,
	})

	// mark the bot live for the monitor, clear on shutdown
	if err := settingsStore.Update(func(s *settings.Settings) { s.IsRunning = true }); err != nil {
		return fmt.Errorf("mark bot running: %w", err)
	}
	defer func() {
		if serr := settingsStore.Update(func(s *settings.Settings) { s.IsRunning = false }); serr != nil {
			lgr.Printf("[WARN] failed to clear running flag: %v", serr)
		}
	}()

	mon := monitor.New(monitor.Params{
		Products:     client,
		Notifier:     tgBot,
		Settings:     settingsStore,
		Audit:        auditLog,
		Interval:     cfg.Monitor.Interval,
		StartupDelay: cfg.Monitor.StartupDelay,
		Attempts:     cfg.Monitor.Attempts,
	})
	mon.Start(ctx)
	defer mon.Stop()

	srv := server.New(cfg, settingsStore, auditLog, revision, debug)
	go func() {
		if serr := srv.Run(ctx); serr != nil {
			lgr.Printf("[ERROR] status server failed: %v", serr)
		}
	}()

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 60
	updates := api.GetUpdatesChan(updateCfg)

	return tgBot.Run(ctx, updates)
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

// OneClickFood — a terminal client for the recipe catalog service.
//
// Usage:
//
//	oneclick [-verbose] [-quiet]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/oneclickfood/oneclick/internal/api"
	"github.com/oneclickfood/oneclick/internal/config"
	"github.com/oneclickfood/oneclick/internal/display"
	"github.com/oneclickfood/oneclick/internal/form"
	"github.com/oneclickfood/oneclick/internal/logger"
	"github.com/oneclickfood/oneclick/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "oneclick: %v\n", err)
		os.Exit(1)
	}

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", cfg.LogFile, "file to write logs to (use \"stderr\" to log to console)")
	apiURL := flag.String("api", cfg.APIBaseURL, "base URL of the recipe service")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the TUI stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package to the same output so nothing
	// scribbles over the alternate screen.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	// Set up context — cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	client := api.NewClient(*apiURL, log, api.WithHTTPTimeout(cfg.HTTPTimeout))

	users := store.NewUserStore(log)
	categories := store.NewCategoryStore(client, log)
	recipes := store.NewRecipeStore(client, log)

	ui := display.NewUI(ctx)
	submitter := form.NewSubmitter(client, users, categories, ui, log)
	accounts := form.NewAccountFlow(client, users, ui, log)

	// Fetch the shared catalogs in the background; the UI renders the
	// loading state until they land and surfaces failures in place.
	go func() {
		if err := categories.Load(ctx); err != nil {
			log.Error("category catalog load: %v", err)
		}
	}()
	go func() {
		if err := recipes.Load(ctx); err != nil {
			log.Error("recipe catalog load: %v", err)
		}
	}()

	log.Info("oneclick starting (api=%s)", *apiURL)

	if err := ui.Run(&display.Deps{
		Users:      users,
		Categories: categories,
		Recipes:    recipes,
		Submitter:  submitter,
		Accounts:   accounts,
		Log:        log,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "oneclick: %v\n", err)
		os.Exit(1)
	}
}

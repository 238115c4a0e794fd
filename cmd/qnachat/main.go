// ABOUTME: CLI entry point for qnachat
// ABOUTME: Loads settings, builds the server client and dispatches to print or interactive mode

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/qnachat/internal/termfix"

	"github.com/mauromedda/qnachat/internal/api"
	"github.com/mauromedda/qnachat/internal/config"
	"github.com/mauromedda/qnachat/internal/git"
	qlog "github.com/mauromedda/qnachat/internal/log"
	"github.com/mauromedda/qnachat/internal/mode/interactive/btea"
	"github.com/mauromedda/qnachat/internal/mode/print"
	"github.com/mauromedda/qnachat/internal/storage"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("qnachat %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration and dispatches to the selected mode.
func run(args cliArgs) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	root := git.ProjectRoot(context.Background(), cwd)

	settings, err := config.Load(root, config.Overrides{
		ServerURL:      args.server,
		StorageBackend: args.storage,
		StoragePath:    args.storagePath,
		LogLevel:       args.logLevel,
	})
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	switch {
	case args.verbose:
		qlog.SetLevel(slog.LevelDebug)
	case settings.LogLevel != "":
		if lvl, ok := qlog.ParseLevel(settings.LogLevel); ok {
			qlog.SetLevel(lvl)
		}
	}

	client, err := api.New(settings.ServerURL, api.Options{
		Timeout:          settings.RequestTimeout,
		AutocompleteRate: settings.AutocompleteRate,
	})
	if err != nil {
		return err
	}

	if args.print || args.suggest {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg := print.Config{
			OutputFormat: print.FormatText,
			ForceLLM:     args.llm,
			Suggest:      args.suggest,
			Limit:        settings.SuggestionLimit,
			Theme:        settings.Theme,
		}
		if args.json {
			cfg.OutputFormat = print.FormatJSON
		}
		return print.Run(ctx, cfg, client, strings.Join(args.remaining(), " "), print.Streams{})
	}

	store, err := storage.Open(settings.Storage.Backend, settings.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer store.Close()

	keys, err := config.LoadKeybindingsLayered(root)
	if err != nil {
		return fmt.Errorf("loading keybindings: %w", err)
	}

	qlog.Debug("qnachat %s: server=%s storage=%s", version, settings.ServerURL, settings.Storage.Backend)
	return btea.Run(btea.AppDeps{
		Backend:     client,
		Store:       store,
		Settings:    settings,
		Version:     version,
		ProjectRoot: root,
		Keybindings: keys,
	})
}

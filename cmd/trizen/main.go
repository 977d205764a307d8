package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trizenhq/trizen/internal/config"
	"github.com/trizenhq/trizen/internal/kvstore"
	"github.com/trizenhq/trizen/internal/lifecycle"
	"github.com/trizenhq/trizen/internal/prefs"
	"github.com/trizenhq/trizen/internal/tasks"
	"github.com/trizenhq/trizen/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "trizen failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	store, watcher, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	repo := tasks.NewRepository(store, logger)
	ctrl := lifecycle.NewController(repo, logger)
	theme := prefs.NewThemeStore(store, logger)

	if watcher != nil {
		defer watcher.Close()
		go func() {
			for key := range watcher.Keys() {
				if key == kvstore.KeyTasks {
					repo.NotifyExternal()
				}
			}
		}()
	}

	m := update.NewModel(update.Deps{
		Repo:         repo,
		Ctrl:         ctrl,
		Theme:        theme,
		Logger:       logger,
		PollInterval: time.Duration(cfg.PollIntervalSeconds) * time.Second,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// openLogger writes structured logs to a file; the terminal belongs to the
// TUI.
func openLogger(cfg config.Config) (*slog.Logger, func(), error) {
	path := cfg.LogFile
	if path == "" {
		path = filepath.Join(cfg.StateDir, "trizen.log")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, nil))
	return logger, func() { _ = f.Close() }, nil
}

func openStore(cfg config.Config, logger *slog.Logger) (kvstore.Store, *kvstore.Watcher, error) {
	switch cfg.Backend {
	case config.BackendFile:
		fs, err := kvstore.NewFileStore(filepath.Join(cfg.StateDir, "store"))
		if err != nil {
			return nil, nil, err
		}
		watcher, err := kvstore.WatchFileStore(fs, logger)
		if err != nil {
			logger.Warn("store watcher unavailable", "error", err)
			return fs, nil, nil
		}
		return fs, watcher, nil
	default:
		store, err := kvstore.OpenSQLite(filepath.Join(cfg.StateDir, "trizen.db"))
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	}
}

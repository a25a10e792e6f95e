package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/holocron/internal/config"
	"github.com/five82/holocron/internal/labels"
	"github.com/five82/holocron/internal/logging"
	"github.com/five82/holocron/internal/prefs"
	"github.com/five82/holocron/internal/state"
	"github.com/five82/holocron/internal/swapi"
	"github.com/five82/holocron/internal/ui"
)

// Options configure a Holocron run. Non-zero fields override the config
// file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/holocron/prefs.toml
	BaseURL    string
	Language   string
	LogLevel   string
}

// LoadConfig reads the config file and applies the option overrides.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(opts.Language); v != "" {
		cfg.Language = v
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.Log.Level = v
	}
	return cfg, nil
}

// NewClient builds the SWAPI client described by cfg.
func NewClient(cfg config.Config, logger *slog.Logger) (*swapi.Client, error) {
	client, err := swapi.NewClient(swapi.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init swapi client: %w", err)
	}
	return client, nil
}

// Run boots the Holocron TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	prefsPath := opts.PrefsPath
	if strings.TrimSpace(prefsPath) == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	logger, closeLog, err := logging.OpenFile(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := NewClient(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("holocron starting",
		slog.String("base_url", cfg.BaseURL),
		slog.String("language", cfg.Language))

	err = ui.Run(ui.Options{
		Context:    ctx,
		Repository: client,
		Collection: state.NewCollection(),
		Detail:     state.NewDetail(),
		Labels:     chooseLabels(opts.Language, userPrefs.Language, cfg.Language),
		ThemeName:  userPrefs.Theme,
		PrefsPath:  prefsPath,
		Logger:     logger,
	})
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled)) {
		logger.Info("holocron stopped", slog.Any("reason", err))
		return nil
	}
	return err
}

// chooseLabels picks the label set: an explicit flag wins, then the
// persisted preference, then the configured or environment locale.
func chooseLabels(flag, saved, configured string) labels.Set {
	for _, candidate := range []string{flag, saved} {
		if strings.TrimSpace(candidate) != "" {
			return labels.For(candidate)
		}
	}
	return labels.For(configured)
}

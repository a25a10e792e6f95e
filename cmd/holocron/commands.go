package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/holocron/internal/app"
	"github.com/five82/holocron/internal/labels"
	"github.com/five82/holocron/internal/logging"
)

var errNotTerminal = errors.New("stdout is not a terminal; use the list or show commands")

// interactive reports whether stdout can host the TUI.
func interactive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newRootCommand() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "holocron",
		Short: "Browse Star Wars characters from SWAPI in the terminal",
		Long: `Holocron lists, searches and opens characters from the Star Wars API.
Edits made in the detail view stay in memory for the session only.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive() {
				return errNotTerminal
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/holocron/config.toml)")
	flags.StringVar(&opts.BaseURL, "base-url", "", "SWAPI base URL")
	flags.StringVar(&opts.Language, "lang", "", "interface language (ru, en)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.Flags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/holocron/prefs.toml)")

	root.AddCommand(
		newListCommand(&opts),
		newShowCommand(&opts),
		newLogsCommand(&opts),
		newVersionCommand(),
	)
	return root
}

// newReporter builds a Reporter that logs to stderr.
func newReporter(opts *app.Options) (app.Reporter, error) {
	cfg, err := app.LoadConfig(*opts)
	if err != nil {
		return app.Reporter{}, err
	}
	logger := logging.New(os.Stderr, cfg.Log)
	client, err := app.NewClient(cfg, logger)
	if err != nil {
		return app.Reporter{}, err
	}
	return app.Reporter{
		Repo:   client,
		Labels: labels.For(cfg.Language),
		Out:    os.Stdout,
	}, nil
}

func newListCommand(opts *app.Options) *cobra.Command {
	var (
		page   int
		search string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of characters",
		Long: `Print one page of characters and the pagination line.

Examples:
  holocron list
  holocron list --page 3
  holocron list --search sky`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newReporter(opts)
			if err != nil {
				return err
			}
			return r.List(cmd.Context(), page, search)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().StringVarP(&search, "search", "s", "", "search term")
	return cmd
}

func newShowCommand(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if id == "" {
				return fmt.Errorf("id is required")
			}
			r, err := newReporter(opts)
			if err != nil {
				return err
			}
			return r.Show(cmd.Context(), id)
		},
	}
}

func newLogsCommand(opts *app.Options) *cobra.Command {
	var lines int
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the tail of the TUI log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(*opts)
			if err != nil {
				return err
			}
			return app.Logs(cmd.OutOrStdout(), cfg.Log.File, lines, cfg.Log.Level)
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines (0 for all)")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of Holocron",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "holocron %s\n", version)
		},
	}
}

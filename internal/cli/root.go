// Package cli implements the bookshelf command line.
package cli

import (
	"log/slog"

	"bookshelf/internal/config"
	"bookshelf/internal/logging"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	EnvFile string
	Store   string
	Path    string

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCommand creates the root command for the bookshelf CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bookshelf",
		Short: "Bookshelf - a personal book list",
		Long: `Keep a personal list of books (title, author, ISBN).

Serve the bookshelf page over HTTP or manage the list from the terminal.
Settings come from the environment and from .env / .env.local.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "load settings from this file instead of .env and .env.local")
	cmd.PersistentFlags().StringVar(&opts.Store, "store", "", "storage backend (memory|file|sqlite|postgres), overrides BOOKSHELF_STORE")
	cmd.PersistentFlags().StringVar(&opts.Path, "path", "", "file or sqlite database path, overrides BOOKSHELF_PATH")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	cmd.AddCommand(NewLookupCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}

// load resolves the configuration. A --store flag resets the path to --path
// or that backend's default.
func (o *RootOptions) load() error {
	if o.EnvFile != "" {
		config.LoadEnvFiles(o.EnvFile)
	} else {
		config.LoadEnvFiles()
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if o.Store != "" {
		cfg.Store = o.Store
		cfg.Path = o.Path
	} else if o.Path != "" {
		cfg.Path = o.Path
	}
	if cfg, err = cfg.Resolve(); err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logging.New(cfg.LogLevel)
	slog.SetDefault(o.logger)
	return nil
}

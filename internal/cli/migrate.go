package cli

import (
	"fmt"

	"bookshelf/internal/config"
	"bookshelf/internal/store"

	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Manage the kv_slots schema of the sqlite and postgres stores",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}
			ctx := cmd.Context()
			cfg := rootOpts.cfg

			switch cfg.Store {
			case config.StoreSQLite:
				db, err := store.ConnectSQLite(ctx, cfg.Path)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := store.Migrate(ctx, db, store.DialectSQLite, command); err != nil {
					return err
				}
			case config.StorePostgres:
				pool, err := store.ConnectPostgres(ctx, cfg.DSN)
				if err != nil {
					return err
				}
				defer pool.Close()
				if err := store.MigratePostgres(ctx, pool, command); err != nil {
					return err
				}
			default:
				return fmt.Errorf("store %q has no schema to migrate", cfg.Store)
			}

			rootOpts.logger.Info("migrate finished", "store", cfg.Store, "command", command)
			return nil
		},
	}
}

// Package cli wires configuration, storage and the registry behind the
// roster command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/msomdec/roster/internal/config"
	"github.com/msomdec/roster/internal/domain"
	"github.com/msomdec/roster/internal/logging"
	"github.com/msomdec/roster/internal/repository/memory"
	"github.com/msomdec/roster/internal/repository/sqlite"
	"github.com/msomdec/roster/internal/service"
	"github.com/spf13/cobra"
)

var version = "dev" // set by the linker

// NewRootCmd builds the roster command. Regular output goes to out; lookup
// failures and diagnostics go to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "roster",
		Short:         "Run the in-memory user registry demonstration",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{
				Level: logging.SlogLevel(cfg.LogLevel),
			})))

			ctx := cmd.Context()
			users, closeStore, err := openStore(ctx, cfg.Store)
			if err != nil {
				return err
			}
			defer closeStore()

			var opts []logging.ConsoleOption
			if cfg.NoColor {
				opts = append(opts, logging.WithoutColor())
			}
			reg := service.NewRegistry(users, logging.NewConsole(out, opts...), cfg.LogLevel)
			return RunDemo(ctx, reg, out, errOut)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.Flags().String("log-level", "debug", "minimum registry log level (debug, info, warning, error)")
	cmd.Flags().String("store", config.StoreMemory, "user store backend (memory, sqlite)")
	cmd.Flags().String("config", "", "path to a roster.yaml config file")
	cmd.Flags().Bool("no-color", false, "disable colored log levels")

	return cmd
}

func openStore(ctx context.Context, name string) (domain.UserRepository, func() error, error) {
	switch name {
	case config.StoreSQLite:
		db, err := sqlite.New()
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate sqlite store: %w", err)
		}
		slog.Debug("store ready", "store", name)
		return db.Users(), db.Close, nil
	default:
		slog.Debug("store ready", "store", config.StoreMemory)
		return memory.NewUserRepository(), func() error { return nil }, nil
	}
}

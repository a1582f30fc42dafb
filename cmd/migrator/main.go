package main

import (
	"campusEvents/internal/config"
	"campusEvents/internal/lib/logger/handlers/slogpretty"
	"campusEvents/internal/lib/logger/sl"
	"campusEvents/internal/storage/postgres"
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
	"strconv"
)

type options struct {
	storageURL string
}

func main() {
	_ = godotenv.Load()

	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelInfo},
	}
	log := slog.New(opts.NewPrettyHandler(os.Stdout))

	if err := newRootCommand(log).Execute(); err != nil {
		log.Error("migration failed", sl.Err(err))
		os.Exit(1)
	}
}

func newRootCommand(log *slog.Logger) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "migrator",
		Short:         "Apply the campus events database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			url, err := resolveStorageURL(opts.storageURL)
			if err != nil {
				return err
			}
			opts.storageURL = url
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.storageURL, "storage-url", "",
		"postgres URL, defaults to STORAGE_URL or the file at CONFIG_PATH")

	cmd.AddCommand(newUpCommand(log, opts))
	cmd.AddCommand(newDownCommand(log, opts))
	cmd.AddCommand(newVersionCommand(log, opts))

	return cmd
}

func newUpCommand(log *slog.Logger, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(opts.storageURL, func(m *migrate.Migrate) error {
				if err := m.Up(); err != nil {
					if errors.Is(err, migrate.ErrNoChange) {
						log.Info("no migrations to apply")
						return nil
					}
					return err
				}

				log.Info("migrations applied")
				return nil
			})
		},
	}
}

func newDownCommand(log *slog.Logger, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back the given number of migrations, one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("steps must be a positive integer, got %q", args[0])
				}
				steps = n
			}

			return withMigrator(opts.storageURL, func(m *migrate.Migrate) error {
				if err := m.Steps(-steps); err != nil {
					return err
				}

				log.Info("migrations rolled back", slog.Int("steps", steps))
				return nil
			})
		},
	}
}

func newVersionCommand(log *slog.Logger, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(opts.storageURL, func(m *migrate.Migrate) error {
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					log.Info("no migrations applied yet")
					return nil
				}
				if err != nil {
					return err
				}

				log.Info("schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
				return nil
			})
		},
	}
}

func withMigrator(storageURL string, fn func(m *migrate.Migrate) error) error {
	m, err := postgres.NewMigrator(storageURL)
	if err != nil {
		return err
	}

	runErr := fn(m)

	srcErr, dbErr := m.Close()

	return errors.Join(runErr, srcErr, dbErr)
}

func resolveStorageURL(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}

	if url := os.Getenv("STORAGE_URL"); url != "" {
		return url, nil
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return "", err
		}
		return cfg.StorageURL, nil
	}

	return "", errors.New("storage url is not set, use --storage-url, STORAGE_URL or CONFIG_PATH")
}

// Command seed drops the news tables and reloads the development dataset
// into the database selected by the DB_* environment variables or flags.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tbourn/go-news-backend/internal/config"
	"github.com/tbourn/go-news-backend/internal/repo"
	"github.com/tbourn/go-news-backend/internal/seed"
	"github.com/tbourn/go-news-backend/internal/sysutil"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("seed failed")
		os.Exit(1)
	}
}

// newRootCmd builds the seed command. Flags bind to the env keys so an
// explicit flag beats the environment and an absent one defers to it.
func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Reload the NC News development dataset",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFrom(v)
			if err != nil {
				return err
			}
			sysutil.ConfigureLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogPretty)
			return run(cmd.Context(), cfg.DB)
		},
	}

	f := cmd.Flags()
	f.String("driver", "", "database driver: sqlite or postgres (DB_DRIVER)")
	f.String("path", "", "SQLite database file (DB_PATH)")
	f.String("url", "", "Postgres DSN (DATABASE_URL)")
	_ = v.BindPFlag("DB_DRIVER", f.Lookup("driver"))
	_ = v.BindPFlag("DB_PATH", f.Lookup("path"))
	_ = v.BindPFlag("DATABASE_URL", f.Lookup("url"))
	return cmd
}

func run(ctx context.Context, cfg config.DBConfig) error {
	db, err := repo.Open(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := seed.Run(ctx, db); err != nil {
		return err
	}
	log.Info().
		Str("driver", cfg.Driver).
		Int("topics", len(seed.Topics)).
		Int("users", len(seed.Users)).
		Int("articles", len(seed.Articles)).
		Int("comments", len(seed.Comments)).
		Msg("seeded")
	return nil
}

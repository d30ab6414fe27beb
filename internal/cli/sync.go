package cli

import (
	"github.com/spf13/cobra"

	"github.com/mhollis/dealscout/internal/config"
	"github.com/mhollis/dealscout/internal/repository/postgres"
	"github.com/mhollis/dealscout/internal/service"
	"github.com/mhollis/dealscout/internal/steam"
	"github.com/mhollis/dealscout/pkg/logger"
)

func newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Sync your owned Steam library into the local database",
		RunE:  runSync,
	}
}

func runSync(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateSync(); err != nil {
		return err
	}

	l := logger.New(cfg.LogLevel)

	db, err := config.NewDatabase(cfg.DatabaseURL, l)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate("migrations"); err != nil {
		return err
	}

	svc := service.New(
		steam.NewClient(cfg.SteamAPIKey, cfg.SteamID, l),
		postgres.NewOwnedGameRepository(db.DB),
		cfg.SteamAppsPath,
		l,
	)

	_, err = svc.SyncLibrary(cmd.Context())
	return err
}

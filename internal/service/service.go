package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/mhollis/dealscout/internal/models"
	"github.com/mhollis/dealscout/internal/repository"
)

// LibraryService provides the user's owned game library.
type LibraryService interface {
	OwnedGames(ctx context.Context) ([]models.OwnedGame, error)
}

// Service is the business logic layer for the library sync command. It is
// independent of the deal pipeline; the owned-games table never feeds it.
type Service struct {
	library       LibraryService
	owned         repository.OwnedGameRepository
	steamAppsPath string
	logger        *logrus.Logger
}

// New creates a new Service with all required dependencies.
func New(library LibraryService, owned repository.OwnedGameRepository, steamAppsPath string, logger *logrus.Logger) *Service {
	return &Service{
		library:       library,
		owned:         owned,
		steamAppsPath: steamAppsPath,
		logger:        logger,
	}
}

// SyncLibrary fetches the owned library and upserts every game into the
// local table, marking games whose app manifest exists on disk as installed.
// It returns the number of games written.
func (s *Service) SyncLibrary(ctx context.Context) (int, error) {
	games, err := s.library.OwnedGames(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch owned games: %w", err)
	}

	for i := range games {
		game := &games[i]
		game.Installed = s.isInstalled(game.AppID)
		if err := s.owned.Upsert(ctx, game); err != nil {
			return 0, err
		}
	}

	s.logger.Infof("Updated %d games in the local library", len(games))
	return len(games), nil
}

// isInstalled checks for the game's app manifest under the steamapps
// directory. A missing directory just means nothing is installed.
func (s *Service) isInstalled(appID int64) bool {
	manifest := filepath.Join(s.steamAppsPath, fmt.Sprintf("appmanifest_%d.acf", appID))
	_, err := os.Stat(manifest)
	return err == nil
}

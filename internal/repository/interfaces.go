package repository

import (
	"context"

	"github.com/mhollis/dealscout/internal/models"
)

// OwnedGameRepository defines the interface for owned-library persistence
type OwnedGameRepository interface {
	Upsert(ctx context.Context, game *models.OwnedGame) error
	GetByAppID(ctx context.Context, appID int64) (*models.OwnedGame, error)
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mhollis/dealscout/internal/models"
	"github.com/mhollis/dealscout/internal/repository"
)

type ownedGameRepository struct {
	db *sql.DB
}

// NewOwnedGameRepository creates a new owned game repository
func NewOwnedGameRepository(db *sql.DB) repository.OwnedGameRepository {
	return &ownedGameRepository{db: db}
}

func (r *ownedGameRepository) Upsert(ctx context.Context, game *models.OwnedGame) error {
	query := `
		INSERT INTO owned_games (app_id, name, playtime_forever, last_played, installed, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (app_id) DO UPDATE SET
			name = EXCLUDED.name,
			playtime_forever = EXCLUDED.playtime_forever,
			last_played = EXCLUDED.last_played,
			installed = EXCLUDED.installed,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		game.AppID,
		game.Name,
		game.PlaytimeForever,
		game.LastPlayed,
		game.Installed,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert owned game %d: %w", game.AppID, err)
	}

	return nil
}

func (r *ownedGameRepository) GetByAppID(ctx context.Context, appID int64) (*models.OwnedGame, error) {
	query := `
		SELECT app_id, name, playtime_forever, last_played, installed
		FROM owned_games
		WHERE app_id = $1`

	game := &models.OwnedGame{}
	err := r.db.QueryRowContext(ctx, query, appID).Scan(
		&game.AppID,
		&game.Name,
		&game.PlaytimeForever,
		&game.LastPlayed,
		&game.Installed,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get owned game by app ID: %w", err)
	}

	return game, nil
}

package storage

import (
	"context"

	"github.com/mcoot/fairychess/internal/model"
)

// Storage defines the interface for keeping hosted games
type Storage interface {
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	// ListGames returns games oldest first
	ListGames(ctx context.Context) ([]*model.Game, error)
	CountGames(ctx context.Context) (int, error)
}

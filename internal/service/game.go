package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

type GameService interface {
	CreateGame(ctx context.Context, input CreateGameInput) (*entity.Game, error)
	UpdateGame(ctx context.Context, id string, input UpdateGameInput) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) (*entity.Game, error)

	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	ListGames(ctx context.Context) ([]*entity.Game, error)
}

type CreateGameInput struct {
	Name       string
	Difficulty string
	// Board is optional; nil means an empty board.
	Board []string
}

// UpdateGameInput holds the fields to change; nil leaves a field as it is.
type UpdateGameInput struct {
	Name       *string
	Difficulty *string
	Board      []string
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error

	GetByID(ctx context.Context, id string) (*entity.Game, error)
	List(ctx context.Context) ([]*entity.Game, error)

	DeleteByID(ctx context.Context, id string) error
}

type gameService struct {
	logger *slog.Logger

	gameRepo gameRepo

	newID func() string
	now   func() time.Time
}

func NewGameService(logger *slog.Logger, gameRepo gameRepo) GameService {
	return &gameService{
		logger:   logger.With("component", "game_service"),
		gameRepo: gameRepo,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

func (that *gameService) CreateGame(ctx context.Context, input CreateGameInput) (*entity.Game, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.ErrNameRequired
	}

	difficulty, err := entity.NormalizeDifficulty(input.Difficulty)
	if err != nil {
		return nil, err
	}

	board, err := parseBoard(input.Board)
	if err != nil {
		return nil, err
	}

	game := entity.NewGame(that.newID(), name, difficulty, board, that.now())
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game in storage: %w", err)
	}

	that.logger.Debug("game created", "gameID", game.UUID, "state", game.GameState)

	return game, nil
}

func (that *gameService) UpdateGame(ctx context.Context, id string, input UpdateGameInput) (*entity.Game, error) {
	log := that.logger.With("method", "UpdateGame", "gameID", id)

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.ErrNameRequired
		}
		game.Name = name
	}

	if input.Difficulty != nil {
		difficulty, err := entity.NormalizeDifficulty(*input.Difficulty)
		if err != nil {
			return nil, err
		}
		game.Difficulty = difficulty
	}

	now := that.now()
	if input.Board != nil {
		board, err := gomoku.ParseBoard(input.Board)
		if err != nil {
			return nil, err
		}

		previous := game.GameState
		game.SetBoard(board, now)

		if game.GameState != previous {
			log.Info("game state changed", "from", previous, "to", game.GameState)
		}
	} else {
		game.UpdatedAt = now.UnixMilli()
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Debug("game reached the endgame")
	}

	return game, nil
}

func (that *gameService) DeleteGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	if err = that.gameRepo.DeleteByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}

	return game, nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) ListGames(ctx context.Context) ([]*entity.Game, error) {
	games, err := that.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games from storage: %w", err)
	}

	return games, nil
}

func parseBoard(rows []string) (gomoku.Board, error) {
	if rows == nil {
		return gomoku.EmptyBoard(), nil
	}

	return gomoku.ParseBoard(rows)
}

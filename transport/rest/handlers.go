package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/service"
)

type gameService interface {
	CreateGame(ctx context.Context, input service.CreateGameInput) (*entity.Game, error)
	UpdateGame(ctx context.Context, id string, input service.UpdateGameInput) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) (*entity.Game, error)

	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	ListGames(ctx context.Context) ([]*entity.Game, error)
}

type createGameRequest struct {
	Name       string   `json:"name"`
	Difficulty string   `json:"difficulty"`
	Board      []string `json:"board"`
}

type updateGameRequest struct {
	Name       *string  `json:"name"`
	Difficulty *string  `json:"difficulty"`
	Board      []string `json:"board"`
}

type GameHandler struct {
	logger *slog.Logger
	games  gameService
}

func NewGameHandler(logger *slog.Logger, games gameService) *GameHandler {
	return &GameHandler{
		logger: logger.With("handler", "games"),
		games:  games,
	}
}

func registerGameRoutes(group *echo.Group, handler *GameHandler) {
	group.GET("/games", handler.List)
	group.POST("/games", handler.Create)
	group.GET("/games/:uuid", handler.Get)
	group.PUT("/games/:uuid", handler.Update)
	group.DELETE("/games/:uuid", handler.Delete)
}

func (that *GameHandler) List(ctx echo.Context) error {
	games, err := that.games.ListGames(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, games)
}

func (that *GameHandler) Get(ctx echo.Context) error {
	game, err := that.games.GetGameByID(ctx.Request().Context(), ctx.Param("uuid"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *GameHandler) Create(ctx echo.Context) error {
	var req createGameRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	game, err := that.games.CreateGame(ctx.Request().Context(), service.CreateGameInput{
		Name:       req.Name,
		Difficulty: req.Difficulty,
		Board:      req.Board,
	})
	if err != nil {
		return err
	}

	that.logger.Info("game created", "gameID", game.UUID, "state", game.GameState)

	return ctx.JSON(http.StatusCreated, game)
}

func (that *GameHandler) Update(ctx echo.Context) error {
	var req updateGameRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	game, err := that.games.UpdateGame(ctx.Request().Context(), ctx.Param("uuid"), service.UpdateGameInput{
		Name:       req.Name,
		Difficulty: req.Difficulty,
		Board:      req.Board,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *GameHandler) Delete(ctx echo.Context) error {
	game, err := that.games.DeleteGame(ctx.Request().Context(), ctx.Param("uuid"))
	if err != nil {
		return err
	}

	that.logger.Info("game deleted", "gameID", game.UUID)

	return ctx.JSON(http.StatusOK, game)
}

package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	DefaultDifficulty = DifficultyMedium
)

// Game is a stored five-in-a-row record. GameState always matches Board; use
// NewGame and SetBoard rather than assigning Board directly.
type Game struct {
	UUID       string       `json:"uuid"`
	CreatedAt  int64        `json:"createdAt"`
	UpdatedAt  int64        `json:"updatedAt"`
	Name       string       `json:"name"`
	Difficulty string       `json:"difficulty"`
	GameState  gomoku.Phase `json:"gameState"`
	Board      []string     `json:"board"`
}

func NewGame(id, name, difficulty string, board gomoku.Board, now time.Time) *Game {
	game := &Game{
		UUID:       id,
		CreatedAt:  now.UnixMilli(),
		Name:       name,
		Difficulty: difficulty,
	}
	game.SetBoard(board, now)

	return game
}

// SetBoard replaces the board and recomputes the phase.
func (that *Game) SetBoard(board gomoku.Board, now time.Time) {
	that.Board = board.Rows()
	that.GameState = gomoku.Classify(&board)
	that.UpdatedAt = now.UnixMilli()
}

// ParsedBoard validates the stored rows and returns them as a Board.
func (that *Game) ParsedBoard() (gomoku.Board, error) {
	board, err := gomoku.ParseBoard(that.Board)
	if err != nil {
		return gomoku.Board{}, fmt.Errorf("game %s: %w", that.UUID, err)
	}

	return board, nil
}

func (that *Game) IsFinished() bool {
	return that.GameState == gomoku.PhaseEndgame
}

// NormalizeDifficulty returns the default for an empty value and rejects
// anything outside easy/medium/hard.
func NormalizeDifficulty(difficulty string) (string, error) {
	switch difficulty {
	case "":
		return DefaultDifficulty, nil
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return difficulty, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}
}

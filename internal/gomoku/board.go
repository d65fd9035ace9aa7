package gomoku

import "strings"

// Size is the side length of the board.
const Size = 15

// Cell is a single board square. Any rune other than the three constants below
// is an illegal symbol and is rejected by ValidateShapeAndSymbols.
type Cell rune

const (
	Empty Cell = '-'
	MarkA Cell = 'X' // first player
	MarkB Cell = 'O'
)

func (c Cell) IsValid() bool {
	return c == Empty || c == MarkA || c == MarkB
}

func (c Cell) IsMark() bool {
	return c == MarkA || c == MarkB
}

// Opponent returns the other player's mark, or Empty for non-marks.
func (c Cell) Opponent() Cell {
	switch c {
	case MarkA:
		return MarkB
	case MarkB:
		return MarkA
	default:
		return Empty
	}
}

// Board is a validated 15x15 grid, row-major.
type Board [Size][Size]Cell

func EmptyBoard() Board {
	var board Board
	for row := range board {
		for col := range board[row] {
			board[row][col] = Empty
		}
	}

	return board
}

// Count returns the number of MarkA and MarkB cells.
func (that *Board) Count() (int, int) {
	var countA, countB int
	for row := range that {
		for _, cell := range that[row] {
			switch cell {
			case MarkA:
				countA++
			case MarkB:
				countB++
			}
		}
	}

	return countA, countB
}

// Rows renders the board as one string per row, the form used in JSON bodies.
func (that *Board) Rows() []string {
	rows := make([]string, Size)
	for row := range that {
		var sb strings.Builder
		for _, cell := range that[row] {
			sb.WriteRune(rune(cell))
		}
		rows[row] = sb.String()
	}

	return rows
}

func (that *Board) String() string {
	var sb strings.Builder
	for row := range that {
		for col, cell := range that[row] {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(rune(cell))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (that *Board) inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// SplitRows converts textual rows into an unvalidated grid, keeping every rune
// so that an illegal symbol can be reported as-is.
func SplitRows(rows []string) [][]Cell {
	grid := make([][]Cell, len(rows))
	for i, row := range rows {
		runes := []rune(row)
		grid[i] = make([]Cell, len(runes))
		for j, r := range runes {
			grid[i][j] = Cell(r)
		}
	}

	return grid
}

// ParseBoard is SplitRows followed by Validate.
func ParseBoard(rows []string) (Board, error) {
	return Validate(SplitRows(rows))
}

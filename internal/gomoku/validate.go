package gomoku

// ValidateShapeAndSymbols checks that grid is exactly Size x Size and holds
// only legal symbols. Shape is checked for every row before any symbol.
func ValidateShapeAndSymbols(grid [][]Cell) error {
	if len(grid) != Size {
		return &ValidationError{Kind: ErrBadBoardSize, Row: -1, Expected: Size, Actual: len(grid)}
	}

	for row, cells := range grid {
		if len(cells) != Size {
			return &ValidationError{Kind: ErrBadBoardSize, Row: row, Expected: Size, Actual: len(cells)}
		}
	}

	for row, cells := range grid {
		for col, cell := range cells {
			if !cell.IsValid() {
				return &ValidationError{Kind: ErrInvalidSymbol, Row: row, Col: col, Symbol: cell}
			}
		}
	}

	return nil
}

// CheckMoveParity requires MarkA to have moved first and the players to have
// alternated: countA == countB or countA == countB+1.
func CheckMoveParity(board *Board) error {
	countA, countB := board.Count()
	if countA != countB && countA != countB+1 {
		return &ValidationError{Kind: ErrInvalidMoveParity, CountA: countA, CountB: countB}
	}

	return nil
}

// Validate runs ValidateShapeAndSymbols and then CheckMoveParity, stopping at
// the first failure. On success the grid is returned as a Board.
func Validate(grid [][]Cell) (Board, error) {
	if err := ValidateShapeAndSymbols(grid); err != nil {
		return Board{}, err
	}

	var board Board
	for row := range board {
		copy(board[row][:], grid[row])
	}

	if err := CheckMoveParity(&board); err != nil {
		return Board{}, err
	}

	return board, nil
}

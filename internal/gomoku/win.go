package gomoku

// RunLength is the number of aligned marks that ends a game.
const RunLength = 5

// directions only go "forward"; the backward halves are covered because every
// occupied cell is tried as the start of a run.
var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal
	{1, -1}, // anti-diagonal
}

// FindUnblockedFive reports whether the board holds five identical marks in a
// row that are not sealed on both ends.
//
// A run is sealed when each of its two extension cells, one step before the
// first mark and one step after the last, is off the board or holds the
// opponent's mark. This differs from classic gomoku, where any five wins: here
// a sealed five does not end the game.
func FindUnblockedFive(board *Board) bool {
	for row := range board {
		for col, mark := range board[row] {
			if !mark.IsMark() {
				continue
			}

			for _, dir := range directions {
				if isRun(board, row, col, dir[0], dir[1], mark) && !isSealed(board, row, col, dir[0], dir[1], mark) {
					return true
				}
			}
		}
	}

	return false
}

func isRun(board *Board, row, col, dRow, dCol int, mark Cell) bool {
	for step := 1; step < RunLength; step++ {
		r, c := row+step*dRow, col+step*dCol
		if !board.inBounds(r, c) || board[r][c] != mark {
			return false
		}
	}

	return true
}

func isSealed(board *Board, row, col, dRow, dCol int, mark Cell) bool {
	opponent := mark.Opponent()

	blocks := func(r, c int) bool {
		return !board.inBounds(r, c) || board[r][c] == opponent
	}

	return blocks(row-dRow, col-dCol) && blocks(row+RunLength*dRow, col+RunLength*dCol)
}

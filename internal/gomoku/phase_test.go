package gomoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stone struct {
	row, col int
	cell     Cell
}

func boardWith(marks ...stone) Board {
	board := EmptyBoard()
	for _, m := range marks {
		board[m.row][m.col] = m.cell
	}
	return board
}

// line returns n marks starting at (row, col) and stepping by (dRow, dCol).
func line(row, col, dRow, dCol, n int, cell Cell) []stone {
	marks := make([]stone, 0, n)
	for i := 0; i < n; i++ {
		marks = append(marks, stone{row: row + i*dRow, col: col + i*dCol, cell: cell})
	}
	return marks
}

// filler returns O marks in the bottom-right corner, far from any test line.
func filler(n int) []stone {
	spots := []stone{
		{14, 14, MarkB}, {14, 12, MarkB}, {12, 14, MarkB}, {12, 12, MarkB}, {14, 10, MarkB},
	}
	return spots[:n]
}

func TestFindUnblockedFive(t *testing.T) {
	tests := []struct {
		name  string
		marks []stone
		want  bool
	}{
		{
			name:  "empty board",
			marks: nil,
			want:  false,
		},
		{
			name:  "open horizontal five at the left edge",
			marks: line(7, 0, 0, 1, 5, MarkA),
			want:  true,
		},
		{
			name:  "open vertical five",
			marks: line(3, 4, 1, 0, 5, MarkA),
			want:  true,
		},
		{
			name:  "open diagonal five",
			marks: line(2, 2, 1, 1, 5, MarkB),
			want:  true,
		},
		{
			name:  "open anti-diagonal five",
			marks: line(0, 10, 1, -1, 5, MarkA),
			want:  true,
		},
		{
			name:  "four in a row is not enough",
			marks: line(7, 3, 0, 1, 4, MarkA),
			want:  false,
		},
		{
			name: "five with one end blocked by the opponent",
			marks: append(line(7, 3, 0, 1, 5, MarkA),
				stone{7, 2, MarkB}),
			want: true,
		},
		{
			name: "five sealed by the opponent on both ends",
			marks: append(line(7, 3, 0, 1, 5, MarkA),
				stone{7, 2, MarkB}, stone{7, 8, MarkB}),
			want: false,
		},
		{
			name: "five sealed by the board edge and the opponent",
			marks: append(line(7, 0, 0, 1, 5, MarkA),
				stone{7, 5, MarkB}),
			want: false,
		},
		{
			name:  "five ending in the corner is open at its start",
			marks: line(10, 10, 1, 1, 5, MarkA),
			want:  true,
		},
		{
			name: "sealed diagonal five",
			marks: append(line(4, 4, 1, 1, 5, MarkB),
				stone{3, 3, MarkA}, stone{9, 9, MarkA}),
			want: false,
		},
		{
			name: "sealed five still loses to an open five elsewhere",
			marks: append(append(line(7, 3, 0, 1, 5, MarkA),
				stone{7, 2, MarkB}, stone{7, 8, MarkB}),
				line(0, 0, 1, 0, 5, MarkB)...),
			want: true,
		},
		{
			name: "six in a row with the far end blocked",
			marks: append(line(7, 0, 0, 1, 6, MarkA),
				stone{7, 6, MarkB}),
			want: true,
		},
		{
			name: "own mark beyond the run does not seal it",
			marks: append(line(1, 1, 0, 1, 5, MarkA),
				stone{1, 0, MarkB}, stone{1, 6, MarkA}, stone{1, 7, MarkB}),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board holding the listed marks
			board := boardWith(tt.marks...)

			// When: scanning for an unblocked five
			got := FindUnblockedFive(&board)

			// Then: the result matches the blocking rule
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify(t *testing.T) {
	t.Run("Empty board is the opening", func(t *testing.T) {
		// Given: an empty board
		board := EmptyBoard()

		// When: classifying it
		phase := Classify(&board)

		// Then: the phase is opening
		assert.Equal(t, PhaseOpening, phase)
	})

	t.Run("Five marks without a run is still the opening", func(t *testing.T) {
		// Given: three X and two O marks
		board := boardWith(
			stone{7, 7, MarkA}, stone{7, 8, MarkB}, stone{8, 7, MarkA}, stone{8, 8, MarkB}, stone{0, 0, MarkA},
		)

		// When: classifying it
		phase := Classify(&board)

		// Then: the phase is opening
		assert.Equal(t, PhaseOpening, phase)
	})

	t.Run("Six marks without a run is the midgame", func(t *testing.T) {
		// Given: three X and three O marks
		board := boardWith(
			stone{7, 7, MarkA}, stone{7, 8, MarkB}, stone{8, 7, MarkA}, stone{8, 8, MarkB}, stone{0, 0, MarkA}, stone{0, 1, MarkB},
		)

		// When: classifying it
		phase := Classify(&board)

		// Then: the phase is midgame
		assert.Equal(t, PhaseMidgame, phase)
	})

	t.Run("Open five with balanced parity is the endgame", func(t *testing.T) {
		// Given: X at (7,0)..(7,4), (7,5) empty, and four O marks elsewhere
		rows := emptyRows()
		for _, m := range append(line(7, 0, 0, 1, 5, MarkA), filler(4)...) {
			setRow(rows, m.row, m.col, m.cell)
		}

		// When: validating and classifying
		board, err := ParseBoard(rows)

		// Then: the board is valid and the phase is endgame
		assert.NoError(t, err)
		assert.Equal(t, PhaseEndgame, Classify(&board))
	})

	t.Run("Sealed five is not an endgame", func(t *testing.T) {
		// Given: X at (7,0)..(7,4) sealed by the edge and an O at (7,5)
		board := boardWith(append(append(line(7, 0, 0, 1, 5, MarkA), stone{7, 5, MarkB}), filler(3)...)...)

		// When: classifying it
		phase := Classify(&board)

		// Then: this deliberately differs from classic gomoku and stays midgame
		assert.Equal(t, PhaseMidgame, phase)
	})

	t.Run("Endgame wins over the opening threshold", func(t *testing.T) {
		// Given: an open five and a mark count inside the opening range
		board := boardWith(line(7, 5, 0, 1, 5, MarkA)...)

		// When: classifying with a total of five marks
		phase := ClassifyCount(&board, 5)

		// Then: the phase is endgame
		assert.Equal(t, PhaseEndgame, phase)
	})

	t.Run("Classify is idempotent", func(t *testing.T) {
		// Given: a midgame board
		board := boardWith(line(0, 0, 1, 1, 3, MarkA)...)
		board[5][0], board[6][0], board[7][0] = MarkB, MarkB, MarkB

		// When: classifying twice
		first := Classify(&board)
		second := Classify(&board)

		// Then: both calls agree and the board is untouched
		assert.Equal(t, first, second)
		assert.Equal(t, PhaseMidgame, first)
		assert.Equal(t, MarkB, board[5][0])
	})
}

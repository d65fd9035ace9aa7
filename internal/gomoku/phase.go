package gomoku

// Phase is the coarse lifecycle stage of a game, derived from its board.
type Phase string

const (
	PhaseOpening Phase = "opening"
	PhaseMidgame Phase = "midgame"
	PhaseEndgame Phase = "endgame"
)

// OpeningMarks is the largest mark count still classified as the opening.
const OpeningMarks = 5

// ClassifyCount derives the phase from the board and its total number of
// marks. An unblocked five wins over the mark count.
func ClassifyCount(board *Board, totalMarks int) Phase {
	switch {
	case FindUnblockedFive(board):
		return PhaseEndgame
	case totalMarks <= OpeningMarks:
		return PhaseOpening
	default:
		return PhaseMidgame
	}
}

// Classify expects a board that already passed Validate.
func Classify(board *Board) Phase {
	countA, countB := board.Count()
	return ClassifyCount(board, countA+countB)
}

package bot

import (
	"github.com/akarsh17/reversi/internal/domain"
)

const (
	// Placement weights (corners first, then the rest of the outer ring)
	WEIGHT_CORNER = 0.8
	WEIGHT_EDGE   = 0.4

	// Per-disk capture payoffs
	SCORE_EDGE_FLIP  = 2.0
	SCORE_INNER_FLIP = 1.0
)

// positionalWeight scores the placement cell itself: corners highest,
// other outer-ring cells next, interior cells nothing.
func positionalWeight(index int) float64 {
	if isCorner(index) {
		return WEIGHT_CORNER
	}
	if isEdge(index) {
		return WEIGHT_EDGE
	}
	return 0
}

// captureScore walks the run of disks that placing player at index
// would flip in one direction. Edge disks count double, inner disks
// single. A direction without a valid capture contributes nothing.
func captureScore(board *domain.Board, index int, player domain.Disk, dir domain.Direction) float64 {
	score := 0.0
	for _, flip := range domain.CaptureRun(board, index, player, dir) {
		if isEdge(flip) {
			score += SCORE_EDGE_FLIP
		} else {
			score += SCORE_INNER_FLIP
		}
	}
	return score
}

// Evaluate scores a candidate placement for player on a board
// snapshot: the positional weight of the cell plus the capture payoff
// over all 8 directions.
func Evaluate(board *domain.Board, index int, player domain.Disk) float64 {
	score := positionalWeight(index)
	for _, dir := range domain.Directions {
		score += captureScore(board, index, player, dir)
	}
	return score
}

// BestMove returns the legal move with the highest Evaluate score.
// Moves are scanned in the order given and only a strictly greater
// score replaces the current pick, so ties keep the earliest move.
// Returns -1 when legalMoves is empty.
func BestMove(board *domain.Board, legalMoves []int, player domain.Disk) int {
	best := -1
	bestScore := 0.0
	for _, move := range legalMoves {
		score := Evaluate(board, move, player)
		if best == -1 || score > bestScore {
			best = move
			bestScore = score
		}
	}
	return best
}

func isCorner(index int) bool {
	switch index {
	case 0, 7, 56, 63:
		return true
	}
	return false
}

// isEdge reports whether index sits on the outer ring, corners
// excluded.
func isEdge(index int) bool {
	if isCorner(index) {
		return false
	}
	row, col := domain.Row(index), domain.Col(index)
	return row == 0 || row == domain.BoardSize-1 || col == 0 || col == domain.BoardSize-1
}
